package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // snapshot ราคาตอนสั่ง
	Total     int64 `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}
