package services

import (
	"errors"
	"time"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/IEarari/Seeds/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusNotifier receives application status changes after they commit.
// Implemented by the websocket hub; nil means nobody is listening.
type StatusNotifier interface {
	NotifyStatus(userID uint, applicationID, status string)
}

// ApplicationService owns the application lifecycle. Every transition that
// touches both the application row and the user's denormalized pointer runs
// in a single transaction, so no reader ever observes them out of step.
type ApplicationService struct {
	DB       *gorm.DB
	Apps     *repository.ApplicationRepository
	Users    *repository.UserRepository
	Settings *repository.SettingsRepository
	Audit    *AuditService
	Notifier StatusNotifier
}

func NewApplicationService(
	db *gorm.DB,
	apps *repository.ApplicationRepository,
	users *repository.UserRepository,
	settings *repository.SettingsRepository,
	audit *AuditService,
) *ApplicationService {
	return &ApplicationService{DB: db, Apps: apps, Users: users, Settings: settings, Audit: audit}
}

// EnsureDraft is the idempotent get-or-create. While the window is open, a
// user with an active (draft or submitted) application gets that id back;
// otherwise a fresh draft is created with the next version and the user's
// pointer columns move in the same transaction.
func (s *ApplicationService) EnsureDraft(uid uint) (applicationID string, created bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.requireOpenTx(tx); err != nil {
			return err
		}

		user, err := s.Users.FindByIDTx(tx, uid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		if err != nil {
			return err
		}

		if user.CurrentApplicationID != nil && user.CurrentApplicationStatus != nil &&
			entity.ActiveStatus(*user.CurrentApplicationStatus) {
			applicationID = *user.CurrentApplicationID
			created = false
			return nil
		}

		version := user.LastApplicationVersion + 1
		app := &entity.Application{
			ID:      uuid.NewString(),
			UserID:  uid,
			Status:  entity.StatusDraft,
			Version: version,
			Profile: entity.EmptyProfile(),
		}
		if err := s.Apps.Create(tx, app); err != nil {
			return err
		}

		if err := s.Users.UpdateColumnsTx(tx, uid, map[string]any{
			"current_application_id":     app.ID,
			"current_application_status": entity.StatusDraft,
			"last_application_version":   version,
		}); err != nil {
			return err
		}

		applicationID = app.ID
		created = true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	if created {
		s.notify(uid, applicationID, entity.StatusDraft)
	}
	return applicationID, created, nil
}

// SaveDraft replaces the profile payload of the owner's draft. No content
// validation here: partial profiles are what drafts are for.
func (s *ApplicationService) SaveDraft(uid uint, applicationID string, profile entity.Profile) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		app, err := s.findTx(tx, applicationID)
		if err != nil {
			return err
		}
		if app.UserID != uid {
			return apperr.ErrForbidden
		}
		if app.Status != entity.StatusDraft {
			return apperr.ErrInvalidStatus
		}
		return s.Apps.UpdateProfileTx(tx, applicationID, profile)
	})
}

// Submit validates the full profile before any storage is touched, then
// atomically flips draft->submitted, persists the profile, and stamps the
// user's pointer plus the denormalized profile summary.
func (s *ApplicationService) Submit(uid uint, applicationID string, profile entity.Profile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// The window may have closed between page-load and submit.
		if err := s.requireOpenTx(tx); err != nil {
			return err
		}

		app, err := s.findTx(tx, applicationID)
		if err != nil {
			return err
		}
		if app.UserID != uid {
			return apperr.ErrForbidden
		}
		if app.Status != entity.StatusDraft {
			return apperr.ErrInvalidStatus
		}

		now := time.Now()
		affected, err := s.Apps.UpdateStatusGuard(tx, applicationID, entity.StatusDraft, entity.StatusSubmitted, map[string]any{
			"profile":      profile,
			"submitted_at": now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidStatus
		}

		summary := &entity.ProfileSummary{
			FullName:     profile.FullName(),
			Mobile:       profile.Mobile,
			WhatsappE164: profile.WhatsappE164,
		}
		return s.Users.UpdateColumnsTx(tx, uid, map[string]any{
			"current_application_id":     applicationID,
			"current_application_status": entity.StatusSubmitted,
			"profile_summary":            summary,
		})
	})
	if err != nil {
		return err
	}

	s.notify(uid, applicationID, entity.StatusSubmitted)
	return nil
}

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Decide moves a submitted application to its terminal state. The guarded
// status flip makes double decisions impossible: the second transaction
// matches zero rows and fails with ErrInvalidStatus. Approval also promotes
// the applicant to volunteer inside the same transaction. The audit write
// happens after commit and is best-effort.
func (s *ApplicationService) Decide(reviewerID uint, applicationID, decision string, reviewNotes, decisionReason *string) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return apperr.Validation("unknown decision: %s", decision)
	}
	if decision == DecisionReject && (decisionReason == nil || *decisionReason == "") {
		return apperr.Validation("decisionReason is required")
	}

	var ownerID uint
	target := entity.StatusApproved
	if decision == DecisionReject {
		target = entity.StatusRejected
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		app, err := s.findTx(tx, applicationID)
		if err != nil {
			return err
		}
		ownerID = app.UserID

		now := time.Now()
		extra := map[string]any{
			"decision_at":  now,
			"decision_by":  reviewerID,
			"review_notes": reviewNotes,
		}
		if decision == DecisionReject {
			extra["decision_reason"] = *decisionReason
		}

		affected, err := s.Apps.UpdateStatusGuard(tx, applicationID, entity.StatusSubmitted, target, extra)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrInvalidStatus
		}

		userUpdates := map[string]any{
			"current_application_id":     applicationID,
			"current_application_status": target,
		}
		if decision == DecisionApprove {
			userUpdates["role"] = entity.RoleVolunteer
		}
		return s.Users.UpdateColumnsTx(tx, app.UserID, userUpdates)
	})
	if err != nil {
		return err
	}

	payload := map[string]any{"decision": target}
	if decision == DecisionReject {
		payload["decisionReason"] = *decisionReason
	}
	s.Audit.Write(entity.AuditAppDecision, reviewerID, applicationID, payload)

	s.notify(ownerID, applicationID, target)
	return nil
}

// Get loads a single application for reviewers.
func (s *ApplicationService) Get(applicationID string) (*entity.Application, error) {
	return s.find(applicationID)
}

// GetAuthorized loads an application for its owner or for a reviewer role.
func (s *ApplicationService) GetAuthorized(uid uint, role, applicationID string) (*entity.Application, error) {
	app, err := s.find(applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != uid && !isReviewerRole(role) {
		return nil, apperr.ErrForbidden
	}
	return app, nil
}

func isReviewerRole(role string) bool {
	switch role {
	case entity.RoleReviewAdmin, entity.RoleAdmin, entity.RoleSuperAdmin:
		return true
	}
	return false
}

func (s *ApplicationService) find(applicationID string) (*entity.Application, error) {
	return s.findTx(s.DB, applicationID)
}

func (s *ApplicationService) findTx(tx *gorm.DB, applicationID string) (*entity.Application, error) {
	app, err := s.Apps.FindByIDTx(tx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// requireOpenTx reads the window gate inside the caller's transaction. A
// missing settings row is closed. OpenFrom/OpenTo are deliberately not
// compared with the clock; only the boolean gates.
func (s *ApplicationService) requireOpenTx(tx *gorm.DB) error {
	settings, err := s.Settings.GetTx(tx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrApplicationsClosed
	}
	if err != nil {
		return err
	}
	if !settings.IsApplicationOpen {
		return apperr.ErrApplicationsClosed
	}
	return nil
}

func (s *ApplicationService) notify(userID uint, applicationID, status string) {
	if s.Notifier != nil {
		s.Notifier.NotifyStatus(userID, applicationID, status)
	}
}
