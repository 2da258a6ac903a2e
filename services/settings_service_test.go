package services

import (
	"testing"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/IEarari/Seeds/repository"
	"gorm.io/gorm"
)

func newSettingsService(t *testing.T, db *gorm.DB) *SettingsService {
	t.Helper()
	audit := NewAuditService(repository.NewAuditRepository(db))
	return NewSettingsService(repository.NewSettingsRepository(db), audit)
}

func TestGetSettingsFailClosed(t *testing.T) {
	db := openTestDB(t)
	svc := newSettingsService(t, db)

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsApplicationOpen {
		t.Fatal("missing settings row must read as closed")
	}
	if got.OpenFrom != nil || got.OpenTo != nil {
		t.Fatal("missing settings row must have nil dates")
	}
}

func TestSetSettingsUpsertAndMerge(t *testing.T) {
	db := openTestDB(t)
	svc := newSettingsService(t, db)

	from := "2026-09-01"
	if _, err := svc.Set(7, SettingsUpdate{IsApplicationOpen: true, OpenFrom: &from}); err != nil {
		t.Fatalf("first set: %v", err)
	}

	// Unspecified dates stay untouched on the next write.
	got, err := svc.Set(7, SettingsUpdate{IsApplicationOpen: false})
	if err != nil {
		t.Fatalf("second set: %v", err)
	}
	if got.IsApplicationOpen {
		t.Fatal("flag not updated")
	}
	if got.OpenFrom == nil || *got.OpenFrom != from {
		t.Fatalf("merge must keep openFrom, got %v", got.OpenFrom)
	}

	// An empty string clears a date.
	empty := ""
	got, err = svc.Set(7, SettingsUpdate{IsApplicationOpen: false, OpenFrom: &empty})
	if err != nil {
		t.Fatalf("third set: %v", err)
	}
	if got.OpenFrom != nil {
		t.Fatalf("empty string must clear openFrom, got %v", got.OpenFrom)
	}

	var stored entity.VolunteeringSettings
	if err := db.First(&stored, entity.SettingsSingletonID).Error; err != nil {
		t.Fatalf("load singleton: %v", err)
	}
	if stored.UpdatedBy == nil || *stored.UpdatedBy != 7 {
		t.Fatal("updatedBy not stamped")
	}

	var audits int64
	db.Model(&entity.AuditLog{}).Where("type = ?", entity.AuditSettingsChange).Count(&audits)
	if audits != 3 {
		t.Fatalf("expected 3 settings audit entries, got %d", audits)
	}
}

func TestSetSettingsRejectsBadDate(t *testing.T) {
	db := openTestDB(t)
	svc := newSettingsService(t, db)

	bad := "01/09/2026"
	if _, err := svc.Set(1, SettingsUpdate{IsApplicationOpen: true, OpenTo: &bad}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
