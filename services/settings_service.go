package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/IEarari/Seeds/repository"
	"gorm.io/gorm"
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SettingsView is the API shape of the window settings; dates are date-only
// strings. The dates are advisory: nothing compares them with the clock,
// only IsApplicationOpen gates the lifecycle.
type SettingsView struct {
	IsApplicationOpen bool    `json:"isApplicationOpen"`
	OpenFrom          *string `json:"openFrom"`
	OpenTo            *string `json:"openTo"`
}

// SettingsUpdate carries a merge update; nil date pointers leave the stored
// value untouched, empty strings clear it.
type SettingsUpdate struct {
	IsApplicationOpen bool    `json:"isApplicationOpen"`
	OpenFrom          *string `json:"openFrom"`
	OpenTo            *string `json:"openTo"`
}

type SettingsService struct {
	Repo  *repository.SettingsRepository
	Audit *AuditService
}

func NewSettingsService(repo *repository.SettingsRepository, audit *AuditService) *SettingsService {
	return &SettingsService{Repo: repo, Audit: audit}
}

// Get reads the singleton; a missing row reads as closed.
func (s *SettingsService) Get() (*SettingsView, error) {
	stored, err := s.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &SettingsView{IsApplicationOpen: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return viewOf(stored), nil
}

// Set merge-upserts the singleton and audits the change.
func (s *SettingsService) Set(actorID uint, update SettingsUpdate) (*SettingsView, error) {
	stored, err := s.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stored = &entity.VolunteeringSettings{ID: entity.SettingsSingletonID}
	} else if err != nil {
		return nil, err
	}

	stored.IsApplicationOpen = update.IsApplicationOpen
	if update.OpenFrom != nil {
		t, err := parseDate(*update.OpenFrom)
		if err != nil {
			return nil, err
		}
		stored.OpenFrom = t
	}
	if update.OpenTo != nil {
		t, err := parseDate(*update.OpenTo)
		if err != nil {
			return nil, err
		}
		stored.OpenTo = t
	}
	stored.UpdatedBy = &actorID

	if err := s.Repo.Save(stored); err != nil {
		return nil, err
	}

	s.Audit.Write(entity.AuditSettingsChange, actorID, "settings/volunteering", map[string]any{
		"isApplicationOpen": update.IsApplicationOpen,
		"openFrom":          update.OpenFrom,
		"openTo":            update.OpenTo,
	})

	return viewOf(stored), nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if !dateOnlyRe.MatchString(v) {
		return nil, apperr.Validation("invalid date, expected YYYY-MM-DD: %s", v)
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return nil, apperr.Validation("invalid date, expected YYYY-MM-DD: %s", v)
	}
	return &t, nil
}

func viewOf(s *entity.VolunteeringSettings) *SettingsView {
	view := &SettingsView{IsApplicationOpen: s.IsApplicationOpen}
	if s.OpenFrom != nil {
		d := s.OpenFrom.Format("2006-01-02")
		view.OpenFrom = &d
	}
	if s.OpenTo != nil {
		d := s.OpenTo.Format("2006-01-02")
		view.OpenTo = &d
	}
	return view
}
