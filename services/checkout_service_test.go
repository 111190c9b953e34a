package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phatapon77/food-backend/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore = cart.Store ในหน่วยความจำ ใช้เทสอย่างเดียว
type memStore struct {
	snaps map[uint]cart.Snapshot
}

func newMemStore() *memStore { return &memStore{snaps: make(map[uint]cart.Snapshot)} }

func (m *memStore) Load(key uint) (cart.Snapshot, bool, error) {
	s, ok := m.snaps[key]
	return s, ok, nil
}
func (m *memStore) Save(key uint, s cart.Snapshot) error {
	m.snaps[key] = s
	return nil
}
func (m *memStore) Delete(key uint) error {
	delete(m.snaps, key)
	return nil
}

type fakeSubmitter struct {
	got  *CheckoutPayload
	ref  *OrderRef
	err  error
	ctxs []context.Context
}

func (f *fakeSubmitter) CreateOrder(ctx context.Context, p *CheckoutPayload) (*OrderRef, error) {
	f.got = p
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.ref, nil
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	c.Add(cart.Item{MenuID: 101, Name: "กะเพราหมูกรอบ", UnitPrice: 159}, 1, false)
	c.Add(cart.Item{MenuID: 102, Name: "ไข่เจียว", UnitPrice: 59}, 1, false)
	c.Add(cart.Item{MenuID: 101, Name: "กะเพราหมูกรอบ", UnitPrice: 159}, 1, false)
	return c
}

func TestComposePayloadEmptyCartRejected(t *testing.T) {
	svc := NewCheckoutService(newMemStore(), &fakeSubmitter{}, 0, "")
	_, err := svc.ComposePayload(cart.New(), 7, PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestComposePayloadBadMethodRejected(t *testing.T) {
	svc := NewCheckoutService(newMemStore(), &fakeSubmitter{}, 0, "")
	_, err := svc.ComposePayload(filledCart(t), 7, "BANK_TRANSFER")
	assert.ErrorIs(t, err, ErrBadPaymentMethod)
}

func TestComposePayloadMatchesCart(t *testing.T) {
	svc := NewCheckoutService(newMemStore(), &fakeSubmitter{}, 0, "")
	c := filledCart(t)

	p, err := svc.ComposePayload(c, 7, PaymentQR)
	require.NoError(t, err)

	assert.Equal(t, c.Total(), p.TotalAmount)
	assert.Equal(t, int64(377), p.TotalAmount)
	assert.Equal(t, c.RestaurantID(), p.RestaurantID)
	assert.Equal(t, uint(7), p.CustomerRef)
	require.Len(t, p.Items, 2)
	assert.Equal(t, PayloadItem{MenuID: 101, Qty: 2, UnitPrice: 159}, p.Items[0])
	assert.Equal(t, PayloadItem{MenuID: 102, Qty: 1, UnitPrice: 59}, p.Items[1])

	// compose เป็น pure transform ตะกร้าต้องไม่ถูกแตะ
	assert.Equal(t, 3, c.ItemCount())
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	store := newMemStore()
	sub := &fakeSubmitter{ref: &OrderRef{ID: 42, Total: 377}}
	svc := NewCheckoutService(store, sub, time.Second, "004999999999999")

	c := filledCart(t)
	require.NoError(t, store.Save(7, c.Snapshot()))

	p, err := svc.ComposePayload(c, 7, PaymentQR)
	require.NoError(t, err)
	res, err := svc.Submit(context.Background(), 7, p)
	require.NoError(t, err)

	assert.Equal(t, uint(42), res.Order.ID)
	assert.Equal(t, "004999999999999", res.PaymentRef) // จ่ายแบบ QR โชว์เลขอ้างอิง
	_, ok, _ := store.Load(7)
	assert.False(t, ok, "cart should be cleared after successful submit")
}

func TestSubmitFailureKeepsCartForRetry(t *testing.T) {
	store := newMemStore()
	boom := errors.New("upstream down")
	svc := NewCheckoutService(store, &fakeSubmitter{err: boom}, time.Second, "")

	c := filledCart(t)
	require.NoError(t, store.Save(7, c.Snapshot()))

	p, err := svc.ComposePayload(c, 7, PaymentCash)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 7, p)
	assert.ErrorIs(t, err, boom)

	snap, ok, _ := store.Load(7)
	require.True(t, ok, "cart must survive a failed submit")
	assert.Equal(t, c.Snapshot(), snap)
}

func TestSubmitAppliesTimeout(t *testing.T) {
	sub := &fakeSubmitter{ref: &OrderRef{ID: 1}}
	svc := NewCheckoutService(newMemStore(), sub, 50*time.Millisecond, "")

	p, err := svc.ComposePayload(filledCart(t), 7, PaymentCash)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 7, p)
	require.NoError(t, err)

	require.Len(t, sub.ctxs, 1)
	deadline, ok := sub.ctxs[0].Deadline()
	require.True(t, ok, "submitter must get a bounded context")
	assert.LessOrEqual(t, time.Until(deadline), 50*time.Millisecond)
}

func TestCheckoutFromStoredCart(t *testing.T) {
	store := newMemStore()
	sub := &fakeSubmitter{ref: &OrderRef{ID: 9, Total: 377}}
	svc := NewCheckoutService(store, sub, time.Second, "")

	// ตะกร้าว่าง → ปฏิเสธ ไม่มีการยิงออเดอร์
	_, err := svc.Checkout(context.Background(), 7, PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, sub.got)

	require.NoError(t, store.Save(7, filledCart(t).Snapshot()))
	res, err := svc.Checkout(context.Background(), 7, PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, uint(9), res.Order.ID)
	assert.Empty(t, res.PaymentRef) // ไม่ใช่ QR ไม่ต้องโชว์เลขอ้างอิง
	require.NotNil(t, sub.got)
	assert.Equal(t, int64(377), sub.got.TotalAmount)
}
