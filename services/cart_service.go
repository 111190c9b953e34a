package services

import (
	"github.com/phatapon77/food-backend/cart"
	"github.com/phatapon77/food-backend/repository"
)

// CartService เป็นทางผ่านเดียวของการแก้ตะกร้า:
// โหลด snapshot ล่าสุด → เรียก method ของ aggregate → เซฟกลับทั้งใบ
// ไม่มี global state ตะกร้าผูกกับ user id ของ session เท่านั้น
type CartService struct {
	Store    cart.Store
	MenuRepo *repository.MenuRepository
}

func NewCartService(store cart.Store, mr *repository.MenuRepository) *CartService {
	return &CartService{Store: store, MenuRepo: mr}
}

// CartView = รูปที่ส่งให้หน้าเว็บ
type CartView struct {
	RestaurantID uint        `json:"restaurantId"`
	Lines        []cart.Line `json:"lines"`
	Total        int64       `json:"total"`
	ItemCount    int         `json:"itemCount"`
}

func view(c *cart.Cart) *CartView {
	return &CartView{
		RestaurantID: c.RestaurantID(),
		Lines:        c.Lines(),
		Total:        c.Total(),
		ItemCount:    c.ItemCount(),
	}
}

func (s *CartService) load(userID uint) (*cart.Cart, error) {
	snap, ok, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cart.New(), nil
	}
	return cart.FromSnapshot(snap), nil
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return view(c), nil
}

// Add หยิบเมนูใส่ตะกร้า ราคา/ชื่ออ่านจากเมนูตอนนี้แล้ว snapshot เก็บไว้
// ถ้าข้ามร้านและยังไม่ confirm จะไม่แตะตะกร้าเลย (ไม่เซฟด้วย)
func (s *CartService) Add(userID, menuID uint, confirmReplace bool) (cart.AddOutcome, *CartView, error) {
	m, err := s.MenuRepo.Get(menuID)
	if err != nil {
		return cart.Added, nil, err
	}

	c, err := s.load(userID)
	if err != nil {
		return cart.Added, nil, err
	}

	out := c.Add(cart.Item{MenuID: m.ID, Name: m.Name, UnitPrice: m.Price}, m.RestaurantID, confirmReplace)
	if out == cart.NeedsConfirm {
		return out, view(c), nil
	}

	if err := s.Store.Save(userID, c.Snapshot()); err != nil {
		return cart.Added, nil, err
	}
	return out, view(c), nil
}

// Increment/Decrement/Remove: ไม่เจอแถวก็เฉย ๆ ตะกร้ามาจาก state ล่าสุดเสมอ
// UI ที่ค้างอยู่กดมาก็ไม่พัง

func (s *CartService) Increment(userID, menuID uint) (*CartView, error) {
	return s.mutate(userID, func(c *cart.Cart) { c.Increment(menuID) })
}

func (s *CartService) Decrement(userID, menuID uint) (*CartView, error) {
	return s.mutate(userID, func(c *cart.Cart) { c.Decrement(menuID) })
}

func (s *CartService) Remove(userID, menuID uint) (*CartView, error) {
	return s.mutate(userID, func(c *cart.Cart) { c.Remove(menuID) })
}

func (s *CartService) mutate(userID uint, fn func(*cart.Cart)) (*CartView, error) {
	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := s.Store.Save(userID, c.Snapshot()); err != nil {
		return nil, err
	}
	return view(c), nil
}

func (s *CartService) Clear(userID uint) error {
	return s.Store.Delete(userID)
}
