package repository

import (
	"github.com/IEarari/Seeds/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Order("name").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByName(name string) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.Where("name = ?", name).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Save(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}
