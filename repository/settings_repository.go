package repository

import (
	"github.com/IEarari/Seeds/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get() (*entity.VolunteeringSettings, error) {
	return r.GetTx(r.DB)
}

func (r *SettingsRepository) GetTx(tx *gorm.DB) (*entity.VolunteeringSettings, error) {
	var s entity.VolunteeringSettings
	if err := tx.First(&s, entity.SettingsSingletonID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *entity.VolunteeringSettings) error {
	s.ID = entity.SettingsSingletonID
	return r.DB.Save(s).Error
}
