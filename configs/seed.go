package configs

import (
	"log"

	"github.com/phatapon77/food-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรกจาก env
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed ร้านตัวอย่างไว้ลองระบบ (เปิดด้วย DEMO_SEED=true)
func SeedDemo() error {
	if getEnv("DEMO_SEED", "") != "true" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	shops := []struct {
		rest  entity.Restaurant
		menus []entity.Menu
	}{
		{
			rest: entity.Restaurant{Name: "ครัวคุณยาย", Description: "อาหารตามสั่ง", Address: "ซอยอารีย์ 1"},
			menus: []entity.Menu{
				{Name: "กะเพราหมูกรอบ", Price: 159},
				{Name: "ไข่เจียว", Price: 59},
			},
		},
		{
			rest: entity.Restaurant{Name: "Burger House", Description: "เบอร์เกอร์โฮมเมด", Address: "ถนนข้าวสาร"},
			menus: []entity.Menu{
				{Name: "Cheese Burger", Price: 129},
				{Name: "French Fries", Price: 69},
			},
		},
	}

	for _, s := range shops {
		if err := db.Create(&s.rest).Error; err != nil {
			return err
		}
		for _, m := range s.menus {
			m.RestaurantID = s.rest.ID
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}
	log.Println("seeded demo restaurants")
	return nil
}
