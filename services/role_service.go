package services

import (
	"errors"
	"strconv"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/IEarari/Seeds/repository"
	"gorm.io/gorm"
)

type RoleService struct {
	Users *repository.UserRepository
	Audit *AuditService
}

func NewRoleService(users *repository.UserRepository, audit *AuditService) *RoleService {
	return &RoleService{Users: users, Audit: audit}
}

// Assign changes the target user's role. An admin may not grant super_admin;
// only the role column is written, so a concurrent lifecycle transaction on
// the same user row is never clobbered.
func (s *RoleService) Assign(actorID uint, actorRole string, targetUserID uint, newRole string) error {
	if !entity.IsKnownRole(newRole) {
		return apperr.Validation("unknown role: %s", newRole)
	}
	if actorRole == entity.RoleAdmin && newRole == entity.RoleSuperAdmin {
		return apperr.ErrForbidden
	}

	if _, err := s.Users.FindByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	if err := s.Users.UpdateRole(targetUserID, newRole); err != nil {
		return err
	}

	s.Audit.Write(entity.AuditRoleAssign, actorID, strconv.FormatUint(uint64(targetUserID), 10), map[string]any{
		"newRole": newRole,
	})
	return nil
}

func (s *RoleService) ListUsers(limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Users.ListRecent(limit)
}
