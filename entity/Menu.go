package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name    string `json:"name"`
	Detail  string `json:"detail"`
	Price   int64  `json:"price"` // หน่วยเป็นบาทเต็ม ตามราคาหน้าร้าน
	Picture string `json:"picture"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	OrderItems []OrderItem `json:"-"`
}
