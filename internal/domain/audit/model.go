package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records admin mutations (ticket dispositions, portfolio changes)
// with before/after snapshots serialized as JSON.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:50" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:json" json:"old_data"`
	NewData      datatypes.JSON `gorm:"type:json" json:"new_data"`
	Description  string         `gorm:"size:255" json:"description"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// LogEntry is an AuditLog joined with the acting user's email for the admin
// dashboard. UserEmail is empty when the account no longer exists.
type LogEntry struct {
	AuditLog
	UserEmail string `json:"user_email"`
}
