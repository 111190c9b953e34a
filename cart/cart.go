package cart

// Line คือรายการเมนูหนึ่งรายการในตะกร้า ราคาเป็น snapshot ตอนหยิบใส่
type Line struct {
	MenuID    uint   `json:"menuId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
}

// Item = ข้อมูลเมนูตอนกดเพิ่ม (จากหน้าเมนูของร้าน)
type Item struct {
	MenuID    uint
	Name      string
	UnitPrice int64
}

// AddOutcome บอกผลของ Add
type AddOutcome int

const (
	// Added = ใส่ลงตะกร้าแล้ว (แถวใหม่ หรือรวมจำนวนกับแถวเดิม)
	Added AddOutcome = iota
	// Replaced = ตะกร้าถูกล้างแล้วเริ่มร้านใหม่ (ผู้ใช้ยืนยันแล้ว)
	Replaced
	// NeedsConfirm = คนละร้านกับของในตะกร้า ต้องถามผู้ใช้ก่อน
	// เรียก Add ซ้ำด้วย confirmReplace=true ถ้าผู้ใช้ตกลง
	NeedsConfirm
)

// Cart คือตะกร้าของ session เดียว ผูกได้ทีละร้าน
// invariant: restaurantID == 0 ก็ต่อเมื่อตะกร้าว่าง
type Cart struct {
	restaurantID uint
	lines        []Line
}

func New() *Cart { return &Cart{} }

// Add หยิบเมนูใส่ตะกร้า
// - ตะกร้าว่าง → ผูกร้านแล้วใส่ qty 1
// - ร้านเดิม เมนูเดิม → qty +1 (ราคาใช้ snapshot เดิม ไม่อ่านใหม่)
// - ร้านเดิม เมนูใหม่ → แถวใหม่ qty 1
// - คนละร้าน → NeedsConfirm ตะกร้าไม่เปลี่ยน เว้นแต่ confirmReplace=true
func (c *Cart) Add(it Item, restaurantID uint, confirmReplace bool) AddOutcome {
	out := Added
	if c.restaurantID != 0 && c.restaurantID != restaurantID {
		if !confirmReplace {
			return NeedsConfirm
		}
		c.Clear()
		out = Replaced
	}

	c.restaurantID = restaurantID
	if i := c.find(it.MenuID); i >= 0 {
		c.lines[i].Qty++
		return out
	}
	c.lines = append(c.lines, Line{
		MenuID:    it.MenuID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Qty:       1,
	})
	return out
}

// Increment เพิ่มจำนวน 1 ถ้าไม่มีแถวนั้นก็เฉย ๆ (no-op)
func (c *Cart) Increment(menuID uint) {
	if i := c.find(menuID); i >= 0 {
		c.lines[i].Qty++
	}
}

// Decrement ลดจำนวน 1 ถ้าเหลือ 0 จะลบแถวทิ้ง (กดลบจากปุ่มลดจำนวน)
func (c *Cart) Decrement(menuID uint) {
	i := c.find(menuID)
	if i < 0 {
		return
	}
	c.lines[i].Qty--
	if c.lines[i].Qty <= 0 {
		c.removeAt(i)
	}
}

// Remove ลบทั้งแถวไม่ว่าจำนวนเท่าไร
func (c *Cart) Remove(menuID uint) {
	if i := c.find(menuID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear ล้างตะกร้าและปลดร้าน
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = 0
}

// Total = Σ unitPrice × qty
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.UnitPrice * int64(l.Qty)
	}
	return sum
}

// ItemCount = Σ qty ใช้โชว์ badge
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) RestaurantID() uint { return c.restaurantID }

// Lines คืนสำเนา เรียงตามลำดับที่หยิบ
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) find(menuID uint) int {
	for i, l := range c.lines {
		if l.MenuID == menuID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	if len(c.lines) == 0 {
		c.restaurantID = 0
	}
}
