package entity

import (
	"time"
)

// Menu is a named, ordered lookup list used to populate form dropdowns
// (education_levels, education_branches, ...). Items are unique strings.
type Menu struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Items     []string  `gorm:"serializer:json" json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy *uint     `json:"updatedBy,omitempty"`
}
