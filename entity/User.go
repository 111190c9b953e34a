package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"` // customer | admin

	Orders []Order `json:"-"` // preload เฉพาะตอนต้องการ
}
