package repository

import (
	"github.com/IEarari/Seeds/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	if err := tx.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateColumnsTx writes only the given columns so concurrent writers of
// disjoint columns (role assignment vs lifecycle pointer) never clobber
// each other; conflicts on the same column are last-write-wins.
func (r *UserRepository) UpdateColumnsTx(tx *gorm.DB, userID uint, updates map[string]any) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) UpdateRole(userID uint, role string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("role", role).Error
}

func (r *UserRepository) ListRecent(limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}
