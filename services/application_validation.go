package services

import (
	"regexp"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
)

var (
	dobRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	whatsappRe = regexp.MustCompile(`^\+\d{8,15}$`)
)

const (
	maxHobbies              = 10
	maxSkills               = 10
	maxPreviousVolunteering = 3
)

// ValidateProfile applies the submit rules. The first failing rule wins;
// errors are never aggregated. Drafts are saved without any of this.
func ValidateProfile(p entity.Profile) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", p.FirstName},
		{"fatherName", p.FatherName},
		{"grandFatherName", p.GrandFatherName},
		{"lastName", p.LastName},
		{"nationalId", p.NationalID},
		{"dateOfBirth", p.DateOfBirth},
		{"mobile", p.Mobile},
		{"whatsappE164", p.WhatsappE164},
		{"emergencyPhone", p.EmergencyPhone},
		{"educationLevel", p.EducationLevel},
		{"educationPlace", p.EducationPlace},
	}
	for _, r := range required {
		if r.value == "" {
			return apperr.Validation("required field: %s", r.field)
		}
	}

	if !dobRe.MatchString(p.DateOfBirth) {
		return apperr.Validation("invalid dateOfBirth, expected YYYY-MM-DD")
	}

	if !whatsappRe.MatchString(p.WhatsappE164) {
		return apperr.Validation("invalid whatsappE164, expected + followed by 8-15 digits")
	}

	if len(p.Referees) != 2 {
		return apperr.Validation("exactly two referees are required")
	}
	for _, ref := range p.Referees {
		if ref.Name == "" || ref.Phone == "" {
			return apperr.Validation("each referee needs a name and a phone")
		}
	}

	if len(p.Hobbies) > maxHobbies {
		return apperr.Validation("at most %d hobbies", maxHobbies)
	}
	if len(p.Skills) > maxSkills {
		return apperr.Validation("at most %d skills", maxSkills)
	}
	if len(p.PreviousVolunteering) > maxPreviousVolunteering {
		return apperr.Validation("at most %d previous volunteering institutions", maxPreviousVolunteering)
	}

	return nil
}
