package services

import (
	"log"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/repository"
)

// AuditService is a fire-and-forget sink. A failed audit write is logged and
// swallowed: the privileged action it records has already committed and its
// success is reported to the caller regardless.
type AuditService struct {
	Repo *repository.AuditRepository
}

func NewAuditService(repo *repository.AuditRepository) *AuditService {
	return &AuditService{Repo: repo}
}

func (s *AuditService) Write(logType string, actorID uint, targetID string, payload map[string]any) {
	entry := &entity.AuditLog{
		Type:     logType,
		ActorID:  actorID,
		TargetID: targetID,
		Payload:  payload,
	}
	if err := s.Repo.Append(entry); err != nil {
		log.Printf("audit write failed (type=%s target=%s): %v", logType, targetID, err)
	}
}
