package repository

import (
	"encoding/json"
	"errors"

	"github.com/phatapon77/food-backend/cart"
	"github.com/phatapon77/food-backend/entity"

	"gorm.io/gorm"
)

// CartSnapshotRepository เก็บตะกร้าลง DB ทั้งใบ (implement cart.Store)
type CartSnapshotRepository struct{ DB *gorm.DB }

func NewCartSnapshotRepository(db *gorm.DB) *CartSnapshotRepository {
	return &CartSnapshotRepository{DB: db}
}

func (r *CartSnapshotRepository) Load(userID uint) (cart.Snapshot, bool, error) {
	var row entity.CartSnapshot
	err := r.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.Snapshot{}, false, nil
	}
	if err != nil {
		return cart.Snapshot{}, false, err
	}

	var lines []cart.Line
	if len(row.Lines) > 0 {
		if err := json.Unmarshal(row.Lines, &lines); err != nil {
			return cart.Snapshot{}, false, err
		}
	}
	return cart.Snapshot{RestaurantID: row.RestaurantID, Lines: lines}, true, nil
}

// Save เขียนทับแถวเดิมทั้งก้อน (แถวเดียวต่อ user)
func (r *CartSnapshotRepository) Save(userID uint, s cart.Snapshot) error {
	data, err := json.Marshal(s.Lines)
	if err != nil {
		return err
	}

	var row entity.CartSnapshot
	err = r.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = entity.CartSnapshot{UserID: userID, RestaurantID: s.RestaurantID, Lines: data}
		return r.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}

	row.RestaurantID = s.RestaurantID
	row.Lines = data
	return r.DB.Save(&row).Error
}

func (r *CartSnapshotRepository) Delete(userID uint) error {
	// Unscoped กัน soft delete ค้างแล้วชน uniqueIndex ตอนสร้างใหม่
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartSnapshot{}).Error
}
