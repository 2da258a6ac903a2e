package entity

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
)

// Roles are a flat list, not a hierarchy. Every endpoint enumerates its own
// allowed set; super_admin is never implied by a check for admin.
const (
	RoleApplicant   = "applicant"
	RoleVolunteer   = "volunteer"
	RoleReviewAdmin = "review_admin"
	RoleAdmin       = "admin"
	RoleSuperAdmin  = "super_admin"
)

func IsKnownRole(role string) bool {
	switch role {
	case RoleApplicant, RoleVolunteer, RoleReviewAdmin, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ProfileSummary is the denormalized snapshot stamped onto the user at submit
// so reviewer listings never need to load the full application.
type ProfileSummary struct {
	FullName     string `json:"fullName"`
	Mobile       string `json:"mobile"`
	WhatsappE164 string `json:"whatsappE164"`
}

// Value marshals the summary for database/sql. GORM does not run field
// serializers for values passed inside map-based Updates, so the column
// type has to be driver-compatible on its own.
func (p ProfileSummary) Value() (driver.Value, error) {
	return json.Marshal(p)
}

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:applicant" json:"role"`

	// Denormalized pointer to the active application. Kept equal to the
	// application's own status by updating both rows in one transaction.
	CurrentApplicationID     *string `json:"currentApplicationId,omitempty"`
	CurrentApplicationStatus *string `json:"currentApplicationStatus,omitempty"`

	// High-water mark used to assign the next application version.
	LastApplicationVersion int `gorm:"not null;default:0" json:"lastApplicationVersion"`

	ProfileSummary *ProfileSummary `gorm:"serializer:json" json:"profileSummary,omitempty"`
}
