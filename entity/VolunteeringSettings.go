package entity

import (
	"time"
)

// VolunteeringSettings is a singleton row (ID is always SettingsSingletonID).
// A missing row reads as closed. OpenFrom/OpenTo are advisory display dates;
// only IsApplicationOpen gates the lifecycle.
type VolunteeringSettings struct {
	ID                uint       `gorm:"primaryKey" json:"-"`
	IsApplicationOpen bool       `gorm:"not null;default:false" json:"isApplicationOpen"`
	OpenFrom          *time.Time `json:"openFrom,omitempty"`
	OpenTo            *time.Time `json:"openTo,omitempty"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	UpdatedBy         *uint      `json:"updatedBy,omitempty"`
}

const SettingsSingletonID uint = 1
