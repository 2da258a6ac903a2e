package repository

import (
	"github.com/IEarari/Seeds/entity"
	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Append(log *entity.AuditLog) error {
	return r.DB.Create(log).Error
}
