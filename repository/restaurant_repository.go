package repository

import (
	"github.com/phatapon77/food-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}
