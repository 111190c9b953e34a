package entity

import (
	"gorm.io/gorm"
)

// สถานะออเดอร์: Pending เป็นค่าเริ่ม ส่วน Completed/Cancelled เป็นสถานะปลายทาง
// (ปิดแล้วปิดเลย ห้ามย้อน — กันเคสรับออเดอร์ซ้ำ/คืนเงินซ้ำ)
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Order struct {
	gorm.Model
	Total         int64  `json:"total"`
	Status        string `gorm:"index;not null;default:Pending" json:"status"`
	PaymentMethod string `json:"paymentMethod"` // QR | CASH | CARD

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"items"`
}
