package services

import (
	"context"
	"errors"
	"time"

	"github.com/phatapon77/food-backend/cart"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrBadPaymentMethod = errors.New("unknown payment method")
)

type PaymentMethod string

const (
	PaymentQR   PaymentMethod = "QR"
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentQR, PaymentCash, PaymentCard:
		return true
	}
	return false
}

type PayloadItem struct {
	MenuID    uint  `json:"menuId"`
	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
}

// CheckoutPayload คือตะกร้าที่แพ็กเสร็จพร้อมยิงไปสร้างออเดอร์
type CheckoutPayload struct {
	RestaurantID  uint          `json:"restaurantId"`
	CustomerRef   uint          `json:"customerRef"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalAmount   int64         `json:"totalAmount"`
	Items         []PayloadItem `json:"items"`
}

type OrderRef struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// OrderSubmitter = ฝั่งที่รับออเดอร์จริง (OrderService ในโปรเซสนี้)
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, p *CheckoutPayload) (*OrderRef, error)
}

// CheckoutService แปลงตะกร้าเป็น payload แล้วส่งออเดอร์
type CheckoutService struct {
	Store     cart.Store
	Submitter OrderSubmitter
	Timeout   time.Duration // กันค้าง default 10s
	QRRef     string        // เลขอ้างอิงจ่ายเงินแบบ QR (โชว์เฉย ๆ ไม่ได้ตัดเงินจริง)
}

func NewCheckoutService(store cart.Store, sub OrderSubmitter, timeout time.Duration, qrRef string) *CheckoutService {
	return &CheckoutService{Store: store, Submitter: sub, Timeout: timeout, QRRef: qrRef}
}

// ComposePayload แพ็กตะกร้า ณ ตอนนี้ pure ไม่แตะตะกร้า
// ยอดรวมคำนวณใหม่จากแถวจริงเสมอ ไม่เชื่อค่า cache ที่ไหน
func (s *CheckoutService) ComposePayload(c *cart.Cart, customerRef uint, method PaymentMethod) (*CheckoutPayload, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if !method.Valid() {
		return nil, ErrBadPaymentMethod
	}

	lines := c.Lines()
	items := make([]PayloadItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, PayloadItem{MenuID: l.MenuID, Qty: l.Qty, UnitPrice: l.UnitPrice})
	}

	return &CheckoutPayload{
		RestaurantID:  c.RestaurantID(),
		CustomerRef:   customerRef,
		PaymentMethod: method,
		TotalAmount:   c.Total(),
		Items:         items,
	}, nil
}

type CheckoutResult struct {
	Order      OrderRef `json:"order"`
	PaymentRef string   `json:"paymentRef,omitempty"`
}

// Submit ยิงออเดอร์ สำเร็จแล้วค่อยล้างตะกร้า
// พลาดตรงไหนตะกร้าคงเดิมให้ลองใหม่ได้ error ส่งกลับไม่กลืน
// NOTE: ถ้า timeout แต่ฝั่งโน้นสร้างสำเร็จ จะมีสิทธิ์สั่งซ้ำตอน retry
// ยังไม่ได้ทำ idempotency key ตรงนี้
func (s *CheckoutService) Submit(ctx context.Context, userID uint, p *CheckoutPayload) (*CheckoutResult, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ref, err := s.Submitter.CreateOrder(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Delete(userID); err != nil {
		// ออเดอร์สร้างแล้ว แต่ล้างตะกร้าไม่สำเร็จ ให้ caller รู้
		return &CheckoutResult{Order: *ref}, err
	}

	res := &CheckoutResult{Order: *ref}
	if p.PaymentMethod == PaymentQR {
		res.PaymentRef = s.QRRef
	}
	return res, nil
}

// Checkout = โหลดตะกร้า → Compose → Submit ในคำสั่งเดียว ใช้จาก controller
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, method PaymentMethod) (*CheckoutResult, error) {
	snap, ok, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	c := cart.New()
	if ok {
		c = cart.FromSnapshot(snap)
	}

	p, err := s.ComposePayload(c, userID, method)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, userID, p)
}
