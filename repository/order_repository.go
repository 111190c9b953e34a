package repository

import (
	"time"

	"github.com/phatapon77/food-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// GET /admin/orders → รายการออเดอร์ทุกร้าน เอาชื่อลูกค้า/ร้านไปโชว์ด้วย
type OrderSummary struct {
	ID             uint      `json:"id"`
	CustomerName   string    `json:"customerName"`
	RestaurantName string    `json:"restaurantName"`
	RestaurantID   uint      `json:"restaurantId"`
	Total          int64     `json:"total"`
	Status         string    `json:"status"`
	PaymentMethod  string    `json:"paymentMethod"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, u.name AS customer_name, rs.name AS restaurant_name, o.restaurant_id, o.total, o.status, o.payment_method, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN restaurants rs ON rs.id = o.restaurant_id").
		Where("o.deleted_at IS NULL").
		Order("o.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /orders (ลูกค้า) → ออเดอร์ของตัวเอง
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard อัปเดตสถานะแบบ compare-and-set
// affected == 0 แปลว่าสถานะปัจจุบันไม่ใช่ from แล้ว (มีคนเปลี่ยนตัดหน้า หรือ transition ผิด)
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------- validate ตอนสร้างออเดอร์ ----------

func (r *OrderRepository) RestaurantExists(restID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).Count(&n).Error
	return n > 0, err
}

func (r *OrderRepository) GetMenuBasics(menuID uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Select("id, price, restaurant_id, name").First(&m, menuID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderRepository) ValidateMenusBelongToRestaurant(menuIDs []uint, restID uint) (bool, error) {
	if len(menuIDs) == 0 {
		return false, nil
	}
	var n int64
	err := r.DB.Model(&entity.Menu{}).
		Where("id IN ? AND restaurant_id = ?", menuIDs, restID).
		Count(&n).Error
	return n == int64(len(menuIDs)), err
}
