package repository

import (
	"github.com/phatapon77/food-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListByRestaurant(restID uint) ([]entity.Menu, error) {
	var out []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Get(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}
