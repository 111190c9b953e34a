package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kaprao = Item{MenuID: 101, Name: "กะเพราหมูกรอบ", UnitPrice: 159}
	omelet = Item{MenuID: 102, Name: "ไข่เจียว", UnitPrice: 59}
	burger = Item{MenuID: 201, Name: "Cheese Burger", UnitPrice: 129}
)

func TestAddMergesRepeatedSelections(t *testing.T) {
	c := New()

	assert.Equal(t, Added, c.Add(kaprao, 1, false))
	assert.Equal(t, Added, c.Add(omelet, 1, false))
	assert.Equal(t, Added, c.Add(kaprao, 1, false))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(101), lines[0].MenuID)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, int64(159), lines[0].UnitPrice)
	assert.Equal(t, uint(102), lines[1].MenuID)
	assert.Equal(t, 1, lines[1].Qty)

	assert.Equal(t, int64(377), c.Total())
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, uint(1), c.RestaurantID())
}

func TestAddKeepsPriceSnapshotOnMerge(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)

	// ราคาเมนูขึ้นระหว่างทาง แต่แถวเดิมต้องใช้ราคาตอนหยิบครั้งแรก
	pricier := kaprao
	pricier.UnitPrice = 999
	c.Add(pricier, 1, false)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, int64(159), lines[0].UnitPrice)
}

func TestCrossRestaurantAddNeedsConfirm(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)
	c.Add(omelet, 1, false)
	before := c.Snapshot()

	// ยังไม่ confirm → ตะกร้าห้ามขยับแม้แต่นิดเดียว
	out := c.Add(burger, 2, false)
	assert.Equal(t, NeedsConfirm, out)
	assert.Equal(t, before, c.Snapshot())

	// confirm แล้ว → เหลือของร้านใหม่อย่างเดียว qty 1
	out = c.Add(burger, 2, true)
	assert.Equal(t, Replaced, out)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(201), lines[0].MenuID)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, uint(2), c.RestaurantID())
}

func TestDecrementRemovesAtQtyOne(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)
	c.Increment(101)
	assert.Equal(t, 2, c.ItemCount())

	c.Decrement(101)
	assert.Equal(t, 1, c.ItemCount())

	// เหลือ 1 แล้วกดลดอีก = ลบแถว ไม่ใช่ qty 0
	c.Decrement(101)
	assert.True(t, c.IsEmpty())
	assert.Len(t, c.Lines(), 0)
	assert.Equal(t, uint(0), c.RestaurantID())
}

func TestMissingItemOpsAreNoOps(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)
	before := c.Snapshot()

	c.Increment(999)
	c.Decrement(999)
	c.Remove(999)

	assert.Equal(t, before, c.Snapshot())
}

func TestAddThenRemoveRestoresTotal(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)
	prev := c.Total()

	c.Add(omelet, 1, false)
	c.Remove(102)

	assert.Equal(t, prev, c.Total())
}

func TestRestaurantUnboundIffEmpty(t *testing.T) {
	c := New()
	assert.Equal(t, uint(0), c.RestaurantID())

	c.Add(kaprao, 1, false)
	assert.Equal(t, uint(1), c.RestaurantID())

	c.Remove(101)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, uint(0), c.RestaurantID())

	c.Add(omelet, 1, false)
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, uint(0), c.RestaurantID())
}

func TestEmptyCartTotals(t *testing.T) {
	c := New()
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, 0, c.ItemCount())
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Add(kaprao, 1, false)
	c.Add(omelet, 1, false)
	c.Increment(101)

	restored := FromSnapshot(c.Snapshot())
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, c.RestaurantID(), restored.RestaurantID())
	assert.Equal(t, c.Total(), restored.Total())
}

func TestFromSnapshotDropsBadLines(t *testing.T) {
	s := Snapshot{
		RestaurantID: 1,
		Lines: []Line{
			{MenuID: 101, UnitPrice: 159, Qty: 0}, // ข้อมูลเพี้ยน ต้องถูกทิ้ง
			{MenuID: 102, UnitPrice: 59, Qty: 2},
		},
	}
	c := FromSnapshot(s)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, uint(102), c.Lines()[0].MenuID)

	// snapshot ที่เหลือแต่แถวเสีย → ตะกร้าว่างและไม่ผูกร้าน
	empty := FromSnapshot(Snapshot{RestaurantID: 1, Lines: []Line{{MenuID: 1, Qty: 0}}})
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, uint(0), empty.RestaurantID())
}
