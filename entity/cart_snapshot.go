package entity

import (
	"gorm.io/gorm"
)

// CartSnapshot เก็บตะกร้าทั้งใบของ user หนึ่งคน (แถวเดียวต่อคน)
// Lines เป็น JSON ของ []cart.Line — เขียนทับทั้งก้อนทุกครั้งที่ตะกร้าเปลี่ยน
type CartSnapshot struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex" json:"userId"`
	RestaurantID uint   `json:"restaurantId"`
	Lines        []byte `gorm:"type:blob" json:"-"`
}
