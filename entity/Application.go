package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Application status lifecycle: draft -> submitted -> approved | rejected.
// approved and rejected are terminal; resubmission after a rejection creates
// a brand new application with version+1, it never reopens this row.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

type Referee struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Profile is the applicant-provided form payload. Stored as a single JSON
// column; it is only mutable while the application is a draft.
type Profile struct {
	FirstName       string  `json:"firstName"`
	FatherName      string  `json:"fatherName"`
	GrandFatherName string  `json:"grandFatherName"`
	LastName        string  `json:"lastName"`
	NationalID      string  `json:"nationalId"`
	DateOfBirth     string  `json:"dateOfBirth"` // YYYY-MM-DD
	Mobile          string  `json:"mobile"`
	WhatsappE164    string  `json:"whatsappE164"`
	FacebookID      *string `json:"facebookId"`
	InstagramID     *string `json:"instagramId"`
	EmergencyPhone  string  `json:"emergencyPhone"`

	Referees []Referee `json:"referees"` // exactly two

	EducationLevel  string `json:"educationLevel"`
	EducationBranch string `json:"educationBranch"`
	EducationPlace  string `json:"educationPlace"`

	Hobbies              []string `json:"hobbies"`              // max 10
	Skills               []string `json:"skills"`               // max 10
	PreviousVolunteering []string `json:"previousVolunteering"` // max 3
}

// EmptyProfile is the skeleton written when a draft is first created.
func EmptyProfile() Profile {
	return Profile{
		Referees:             []Referee{{}, {}},
		Hobbies:              []string{},
		Skills:               []string{},
		PreviousVolunteering: []string{},
	}
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.FatherName + " " + p.GrandFatherName + " " + p.LastName
}

// Value marshals the profile for database/sql. GORM does not run field
// serializers for values passed inside map-based Updates, so the column
// type has to be driver-compatible on its own.
func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

type Application struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	Status  string  `gorm:"not null;default:draft;index:idx_applications_status_created,priority:1" json:"status"`
	Version int     `gorm:"not null" json:"version"`
	Profile Profile `gorm:"serializer:json" json:"profile"`

	CreatedAt time.Time `gorm:"index:idx_applications_status_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
	DecisionAt     *time.Time `json:"decisionAt,omitempty"`
	DecisionBy     *uint      `json:"decisionBy,omitempty"`
	DecisionReason *string    `json:"decisionReason,omitempty"`
	ReviewNotes    *string    `json:"reviewNotes,omitempty"`
}

// ActiveStatus reports whether an application in this status still occupies
// the user's "current application" slot for draft-creation purposes.
func ActiveStatus(status string) bool {
	return status == StatusDraft || status == StatusSubmitted
}
