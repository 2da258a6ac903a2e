package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seedApplications inserts n applications with the given status, oldest
// first, with distinct creation times so ordering is deterministic.
func seedApplications(t *testing.T, db *gorm.DB, user *entity.User, status string, n int) []string {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		app := entity.Application{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Status:    status,
			Version:   i + 1,
			Profile:   entity.EmptyProfile(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&app).Error; err != nil {
			t.Fatalf("seed application: %v", err)
		}
		ids[i] = app.ID
	}
	return ids
}

func TestListDefaultsToSubmitted(t *testing.T) {
	db := openTestDB(t)
	svc := newApplicationService(t, db)
	user := createUser(t, db, "a@example.com", entity.RoleApplicant)

	seedApplications(t, db, user, entity.StatusSubmitted, 3)
	seedApplications(t, db, user, entity.StatusDraft, 2)

	page, err := svc.List("", 0, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 submitted applications, got %d", len(page.Items))
	}
	for _, app := range page.Items {
		if app.Status != entity.StatusSubmitted {
			t.Fatalf("unexpected status %s in default listing", app.Status)
		}
	}
}

func TestListNewestFirstWithCursor(t *testing.T) {
	db := openTestDB(t)
	svc := newApplicationService(t, db)
	user := createUser(t, db, "a@example.com", entity.RoleApplicant)

	ids := seedApplications(t, db, user, entity.StatusSubmitted, 5)

	var walked []string
	cursor := ""
	for {
		page, err := svc.List(entity.StatusSubmitted, 2, cursor)
		if err != nil {
			t.Fatalf("list page: %v", err)
		}
		if len(page.Items) == 0 {
			break
		}
		for _, app := range page.Items {
			walked = append(walked, app.ID)
		}
		cursor = page.NextCursor
	}

	if len(walked) != 5 {
		t.Fatalf("expected to walk 5 applications, got %d", len(walked))
	}
	// Newest first: the seed order reversed.
	for i, id := range walked {
		if want := ids[len(ids)-1-i]; id != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, id)
		}
	}
}

func TestListUnknownCursorStartsFromTop(t *testing.T) {
	db := openTestDB(t)
	svc := newApplicationService(t, db)
	user := createUser(t, db, "a@example.com", entity.RoleApplicant)

	seedApplications(t, db, user, entity.StatusSubmitted, 2)

	page, err := svc.List(entity.StatusSubmitted, 10, "no-such-cursor")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("unknown cursor should be ignored, got %d items", len(page.Items))
	}
}

func TestListCapsPageSize(t *testing.T) {
	db := openTestDB(t)
	svc := newApplicationService(t, db)
	user := createUser(t, db, "a@example.com", entity.RoleApplicant)

	seedApplications(t, db, user, entity.StatusSubmitted, 105)

	page, err := svc.List(entity.StatusSubmitted, 1000, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 100 {
		t.Fatalf("page size must cap at 100, got %d", len(page.Items))
	}
}

func TestListFallsBackWithoutStatusIndex(t *testing.T) {
	db := openTestDB(t)
	svc := newApplicationService(t, db)
	user := createUser(t, db, "a@example.com", entity.RoleApplicant)

	ids := seedApplications(t, db, user, entity.StatusSubmitted, 4)
	seedApplications(t, db, user, entity.StatusDraft, 3)

	if err := db.Exec("DROP INDEX idx_applications_status_created").Error; err != nil {
		t.Fatalf("drop index: %v", err)
	}

	// The pinned query now reports the missing index as a sentinel.
	if _, err := svc.Apps.ListByStatus(entity.StatusSubmitted, 2, nil); !errors.Is(err, apperr.ErrMissingIndex) {
		t.Fatalf("expected missing-index sentinel, got %v", err)
	}

	// List falls back: over-fetch unfiltered, filter in memory, truncate.
	page, err := svc.List(entity.StatusSubmitted, 2, "")
	if err != nil {
		t.Fatalf("fallback list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items from the fallback, got %d", len(page.Items))
	}
	if page.Items[0].ID != ids[3] || page.Items[1].ID != ids[2] {
		t.Fatalf("fallback must keep newest-first order, got %s, %s", page.Items[0].ID, page.Items[1].ID)
	}
	if page.NextCursor != ids[2] {
		t.Fatalf("nextCursor must come from the truncated set, got %s", page.NextCursor)
	}

	// The over-fetch is bounded at 5x the page size, so enough newer rows
	// of another status can shadow the requested one entirely.
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		app := entity.Application{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Status:    entity.StatusDraft,
			Version:   i + 1,
			Profile:   entity.EmptyProfile(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&app).Error; err != nil {
			t.Fatalf("seed shadowing draft: %v", err)
		}
	}
	page, err = svc.List(entity.StatusSubmitted, 1, "")
	if err != nil {
		t.Fatalf("fallback list with shadowing drafts: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("bounded over-fetch should see only newer drafts, got %d items", len(page.Items))
	}
}

func TestFallbackFilterTruncates(t *testing.T) {
	// The missing-index fallback over-fetches unfiltered and filters in
	// memory; this covers the filter-and-truncate step.
	apps := make([]entity.Application, 0, 12)
	for i := 0; i < 12; i++ {
		status := entity.StatusSubmitted
		if i%3 == 0 {
			status = entity.StatusDraft
		}
		apps = append(apps, entity.Application{
			ID:     fmt.Sprintf("app-%02d", i),
			Status: status,
		})
	}

	got := filterByStatus(apps, entity.StatusSubmitted, 5)
	if len(got) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(got))
	}
	for _, app := range got {
		if app.Status != entity.StatusSubmitted {
			t.Fatalf("fallback must filter by status, got %s", app.Status)
		}
	}
	// Order preserved from the over-fetched slice.
	if got[0].ID != "app-01" || got[1].ID != "app-02" {
		t.Fatalf("fallback must preserve input order, got %s, %s", got[0].ID, got[1].ID)
	}
}
