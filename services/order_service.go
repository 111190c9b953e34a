package services

import (
	"context"
	"errors"
	"sync"

	"github.com/phatapon77/food-backend/entity"
	"github.com/phatapon77/food-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnknownStatus       = errors.New("unknown status")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuNotInRestaurant = errors.New("menu not in this restaurant")
)

// transition ที่ยอมให้: Pending ไปปิดงานได้สองทาง ปิดแล้วห้ามขยับอีก
var transitions = map[string][]string{
	entity.StatusPending:   {entity.StatusCompleted, entity.StatusCancelled},
	entity.StatusCompleted: {},
	entity.StatusCancelled: {},
}

func canTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// OrderEvent ยิงให้ admin feed หลัง commit แล้วเท่านั้น (write-through)
type OrderEvent struct {
	OrderID      uint   `json:"orderId"`
	RestaurantID uint   `json:"restaurantId"`
	Status       string `json:"status"`
	Total        int64  `json:"total"`
}

// OrderService เป็นเจ้าของสถานะออเดอร์ฝั่ง server
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository

	notify func(OrderEvent)

	mu    sync.Mutex
	locks map[uint]*sync.Mutex // serialize การเปลี่ยนสถานะรายออเดอร์
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, locks: make(map[uint]*sync.Mutex)}
}

// SetNotifier ต่อ feed แจ้งเตือน (เช่น websocket hub) เรียกครั้งเดียวตอน wiring
func (s *OrderService) SetNotifier(fn func(OrderEvent)) { s.notify = fn }

func (s *OrderService) emit(e OrderEvent) {
	if s.notify != nil {
		s.notify(e)
	}
}

// CreateOrder รับ payload จาก checkout มาเขียนเป็นออเดอร์ Pending
// ยอดรวมคิดใหม่ฝั่งนี้จากรายการจริง กัน client ยัดยอดมาเอง
func (s *OrderService) CreateOrder(ctx context.Context, p *CheckoutPayload) (*OrderRef, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if !p.PaymentMethod.Valid() {
		return nil, ErrBadPaymentMethod
	}

	ok, err := s.Repo.RestaurantExists(p.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	menuIDs := make([]uint, 0, len(p.Items))
	for _, it := range p.Items {
		menuIDs = append(menuIDs, it.MenuID)
	}
	ok, err = s.Repo.ValidateMenusBelongToRestaurant(menuIDs, p.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMenuNotInRestaurant
	}

	var total int64
	for _, it := range p.Items {
		total += it.UnitPrice * int64(it.Qty)
	}

	var out OrderRef
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Total:         total,
			Status:        entity.StatusPending,
			PaymentMethod: string(p.PaymentMethod),
			UserID:        p.CustomerRef,
			RestaurantID:  p.RestaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range p.Items {
			oi := entity.OrderItem{
				Qty: it.Qty, UnitPrice: it.UnitPrice, Total: it.UnitPrice * int64(it.Qty),
				OrderID: order.ID, MenuID: it.MenuID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		out = OrderRef{ID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(OrderEvent{OrderID: out.ID, RestaurantID: p.RestaurantID, Status: entity.StatusPending, Total: out.Total})
	return &out, nil
}

// SetStatus เปลี่ยนสถานะแบบ read-validate-write กับสถานะใน DB ตอนนี้
// สองคนแย่งกันเปลี่ยนออเดอร์เดียว → คนแรก commit ชนะ อีกคนได้ ErrInvalidTransition
func (s *OrderService) SetStatus(orderID uint, target string) (*entity.Order, error) {
	if _, ok := transitions[target]; !ok {
		return nil, ErrUnknownStatus
	}

	lock := s.lockFor(orderID)
	lock.Lock()
	defer lock.Unlock()

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(o.Status, target) {
		return nil, ErrInvalidTransition
	}

	// CAS กันเผื่อมีตัวเขียนอื่นนอก lock นี้ (เช่นอีก process)
	affected, err := s.Repo.UpdateStatusGuard(s.DB, orderID, o.Status, target)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	o.Status = target
	s.emit(OrderEvent{OrderID: o.ID, RestaurantID: o.RestaurantID, Status: o.Status, Total: o.Total})
	return o, nil
}

func (s *OrderService) lockFor(orderID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[orderID] = m
	}
	return m
}

func (s *OrderService) List(limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrders(limit)
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
