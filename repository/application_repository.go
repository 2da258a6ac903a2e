package repository

import (
	"fmt"
	"strings"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(tx *gorm.DB, app *entity.Application) error {
	return tx.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id string) (*entity.Application, error) {
	return r.FindByIDTx(r.DB, id)
}

func (r *ApplicationRepository) FindByIDTx(tx *gorm.DB, id string) (*entity.Application, error) {
	var app entity.Application
	if err := tx.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) UpdateProfileTx(tx *gorm.DB, id string, profile entity.Profile) error {
	return tx.Model(&entity.Application{}).Where("id = ?", id).
		Update("profile", profile).Error
}

// UpdateStatusGuard flips status from->to together with extra columns, only
// when the row is still in the from status. RowsAffected == 0 means another
// transition won the race (or the status never matched).
func (r *ApplicationRepository) UpdateStatusGuard(tx *gorm.DB, id, from, to string, extra map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ListByStatus pages the reviewer queue newest-first. The after row, when
// given, is the exclusive cursor position. INDEXED BY pins the composite
// index: a database missing it reports "no such index" instead of silently
// scanning, and callers fall back via ErrMissingIndex.
func (r *ApplicationRepository) ListByStatus(status string, limit int, after *entity.Application) ([]entity.Application, error) {
	var apps []entity.Application
	q := r.DB.Table("applications INDEXED BY idx_applications_status_created").
		Where("status = ?", status)
	q = applyCursor(q, after).Limit(limit)
	if err := q.Find(&apps).Error; err != nil {
		return nil, storageErr(err)
	}
	return apps, nil
}

// ListRecent is the unfiltered over-fetch path used when the composite
// status index is unavailable.
func (r *ApplicationRepository) ListRecent(limit int, after *entity.Application) ([]entity.Application, error) {
	var apps []entity.Application
	q := applyCursor(r.DB.Model(&entity.Application{}), after).Limit(limit)
	if err := q.Find(&apps).Error; err != nil {
		return nil, storageErr(err)
	}
	return apps, nil
}

func applyCursor(q *gorm.DB, after *entity.Application) *gorm.DB {
	if after != nil {
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)",
			after.CreatedAt, after.CreatedAt, after.ID)
	}
	return q.Order("created_at DESC").Order("id DESC")
}

// storageErr converts the engine's missing-index report into a structured
// kind. This is the only place query error text is inspected.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such index") || strings.Contains(msg, "requires an index") {
		return fmt.Errorf("%w: %v", apperr.ErrMissingIndex, err)
	}
	return err
}
