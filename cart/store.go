package cart

// Snapshot คือภาพรวมตะกร้าทั้งใบสำหรับเก็บลง storage
// เขียนทับทั้งก้อนทุกครั้ง ไม่มี partial patch → อ่านกลับมาได้สภาพ consistent เสมอ
type Snapshot struct {
	RestaurantID uint   `json:"restaurantId"`
	Lines        []Line `json:"lines"`
}

// Store เก็บ/อ่าน snapshot ของตะกร้า key = เจ้าของ session (user id)
type Store interface {
	// Load คืน ok=false ถ้าไม่เคยมีตะกร้า (ไม่ใช่ error)
	Load(key uint) (Snapshot, bool, error)
	Save(key uint, s Snapshot) error
	Delete(key uint) error
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{RestaurantID: c.restaurantID, Lines: c.Lines()}
}

// FromSnapshot สร้างตะกร้าจาก snapshot ล่าสุด
// กันข้อมูลเพี้ยน: ทิ้งแถว qty < 1 และถ้าไม่เหลือแถวก็ปลดร้าน
func FromSnapshot(s Snapshot) *Cart {
	c := New()
	for _, l := range s.Lines {
		if l.Qty < 1 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	if len(c.lines) > 0 {
		c.restaurantID = s.RestaurantID
	}
	return c
}
