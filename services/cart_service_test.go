package services

import (
	"testing"

	"github.com/phatapon77/food-backend/cart"
	"github.com/phatapon77/food-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewCartSnapshotRepository(db),
		repository.NewMenuRepository(db),
	)
}

func TestCartPersistsAcrossSessions(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, _, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)
	_, _, err = svc.Add(f.user.ID, f.omelet.ID, false)
	require.NoError(t, err)
	_, v, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(377), v.Total)

	// session ใหม่ (service ตัวใหม่ DB เดิม) ต้องเห็นตะกร้าเดิมครบ
	again := newCartService(db)
	v2, err := again.Get(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, v.Lines, v2.Lines)
	assert.Equal(t, int64(377), v2.Total)
	assert.Equal(t, 3, v2.ItemCount)
	assert.Equal(t, f.rest.ID, v2.RestaurantID)
}

func TestAddAcrossRestaurantsTwoPhase(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, _, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)

	// เฟสแรก: ไม่ confirm → NeedsConfirm และ snapshot ใน DB ต้องไม่ขยับ
	out, _, err := svc.Add(f.user.ID, f.burger.ID, false)
	require.NoError(t, err)
	assert.Equal(t, cart.NeedsConfirm, out)

	v, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, f.kaprao.ID, v.Lines[0].MenuID)
	assert.Equal(t, f.rest.ID, v.RestaurantID)

	// เฟสสอง: confirm → ตะกร้าเป็นของร้านใหม่ล้วน ๆ
	out, v2, err := svc.Add(f.user.ID, f.burger.ID, true)
	require.NoError(t, err)
	assert.Equal(t, cart.Replaced, out)
	require.Len(t, v2.Lines, 1)
	assert.Equal(t, f.burger.ID, v2.Lines[0].MenuID)
	assert.Equal(t, 1, v2.Lines[0].Qty)
	assert.Equal(t, f.other.ID, v2.RestaurantID)
}

func TestAddUnknownMenu(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, _, err := svc.Add(f.user.ID, 9999, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDecrementToZeroPersistsRemoval(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, _, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)
	v, err := svc.Decrement(f.user.ID, f.kaprao.ID)
	require.NoError(t, err)
	assert.Len(t, v.Lines, 0)
	assert.Equal(t, uint(0), v.RestaurantID)

	// อ่านใหม่จาก DB ก็ต้องว่างเหมือนกัน
	v2, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, v2.Lines, 0)
	assert.Equal(t, int64(0), v2.Total)
}

func TestStaleItemOpsAreSilentNoOps(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, before, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)

	v, err := svc.Increment(f.user.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, before.Lines, v.Lines)

	v, err = svc.Decrement(f.user.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, before.Lines, v.Lines)

	v, err = svc.Remove(f.user.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, before.Lines, v.Lines)
}

func TestClearThenRebind(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCartService(db)

	_, _, err := svc.Add(f.user.ID, f.kaprao.ID, false)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(f.user.ID))

	v, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, v.Lines, 0)

	// ล้างแล้วหยิบร้านใหม่ได้เลย ไม่ต้อง confirm
	out, v2, err := svc.Add(f.user.ID, f.burger.ID, false)
	require.NoError(t, err)
	assert.Equal(t, cart.Added, out)
	assert.Equal(t, f.other.ID, v2.RestaurantID)
}
