package entity

import (
	"time"
)

// Audit entry types.
const (
	AuditAppDecision    = "APP_DECISION"
	AuditSettingsChange = "SETTINGS_CHANGE"
	AuditRoleAssign     = "ROLE_ASSIGN"
	AuditMenuChange     = "MENU_CHANGE"
	AuditMenuItemAdd    = "MENU_ITEM_ADD"
	AuditMenuItemDelete = "MENU_ITEM_DELETE"
)

// AuditLog is an append-only record of privileged actions. It is write-only
// from this system's point of view; nothing here reads it back.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      string         `gorm:"not null;index" json:"type"`
	ActorID   uint           `gorm:"not null" json:"actorId"`
	TargetID  string         `json:"targetId"`
	Payload   map[string]any `gorm:"serializer:json" json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}
