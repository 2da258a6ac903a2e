package services

import (
	"strings"
	"testing"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
)

func TestValidateProfileAccepts(t *testing.T) {
	if err := ValidateProfile(validProfile()); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}
}

func TestValidateProfileRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(p *entity.Profile)
	}{
		{"firstName", func(p *entity.Profile) { p.FirstName = "" }},
		{"fatherName", func(p *entity.Profile) { p.FatherName = "" }},
		{"grandFatherName", func(p *entity.Profile) { p.GrandFatherName = "" }},
		{"lastName", func(p *entity.Profile) { p.LastName = "" }},
		{"nationalId", func(p *entity.Profile) { p.NationalID = "" }},
		{"dateOfBirth", func(p *entity.Profile) { p.DateOfBirth = "" }},
		{"mobile", func(p *entity.Profile) { p.Mobile = "" }},
		{"whatsappE164", func(p *entity.Profile) { p.WhatsappE164 = "" }},
		{"emergencyPhone", func(p *entity.Profile) { p.EmergencyPhone = "" }},
		{"educationLevel", func(p *entity.Profile) { p.EducationLevel = "" }},
		{"educationPlace", func(p *entity.Profile) { p.EducationPlace = "" }},
	}

	for _, tc := range cases {
		p := validProfile()
		tc.mutate(&p)
		err := ValidateProfile(p)
		if !apperr.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.field, err)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Fatalf("%s: message should name the field, got %q", tc.field, err.Error())
		}
	}
}

func TestValidateProfileFirstFailureWins(t *testing.T) {
	p := validProfile()
	p.FirstName = ""
	p.WhatsappE164 = "garbage"

	err := ValidateProfile(p)
	if err == nil || !strings.Contains(err.Error(), "firstName") {
		t.Fatalf("expected the first failing rule to win, got %v", err)
	}
}

func TestValidateProfileDateOfBirth(t *testing.T) {
	for _, bad := range []string{"17-04-2001", "2001/04/17", "2001-4-7", "yesterday"} {
		p := validProfile()
		p.DateOfBirth = bad
		if err := ValidateProfile(p); !apperr.IsValidation(err) {
			t.Fatalf("dateOfBirth %q: expected validation error, got %v", bad, err)
		}
	}
}

func TestValidateProfileWhatsapp(t *testing.T) {
	bad := []string{
		"0599123456",       // missing leading +
		"+1234567",         // 7 digits, too short
		"+1234567890123456", // 16 digits, too long
		"+970-599123456",   // separator
	}
	for _, v := range bad {
		p := validProfile()
		p.WhatsappE164 = v
		if err := ValidateProfile(p); !apperr.IsValidation(err) {
			t.Fatalf("whatsapp %q: expected validation error, got %v", v, err)
		}
	}

	good := []string{"+97059912345", "+970599123456", "+123456789012345"}
	for _, v := range good {
		p := validProfile()
		p.WhatsappE164 = v
		if err := ValidateProfile(p); err != nil {
			t.Fatalf("whatsapp %q: expected valid, got %v", v, err)
		}
	}
}

func TestValidateProfileReferees(t *testing.T) {
	p := validProfile()
	p.Referees = p.Referees[:1]
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("one referee: expected validation error, got %v", err)
	}

	p = validProfile()
	p.Referees = append(p.Referees, entity.Referee{Name: "Third", Phone: "0598555666"})
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("three referees: expected validation error, got %v", err)
	}

	p = validProfile()
	p.Referees[1].Phone = ""
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("referee without phone: expected validation error, got %v", err)
	}
}

func TestValidateProfileBoundedLists(t *testing.T) {
	many := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = strings.Repeat("x", i+1)
		}
		return out
	}

	p := validProfile()
	p.Hobbies = many(11)
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("11 hobbies: expected validation error, got %v", err)
	}

	p = validProfile()
	p.Skills = many(11)
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("11 skills: expected validation error, got %v", err)
	}

	p = validProfile()
	p.PreviousVolunteering = many(4)
	if err := ValidateProfile(p); !apperr.IsValidation(err) {
		t.Fatalf("4 institutions: expected validation error, got %v", err)
	}

	p = validProfile()
	p.Hobbies = many(10)
	p.Skills = many(10)
	p.PreviousVolunteering = many(3)
	if err := ValidateProfile(p); err != nil {
		t.Fatalf("lists at the limit: expected valid, got %v", err)
	}
}
