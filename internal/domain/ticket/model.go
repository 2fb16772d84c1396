package ticket

import (
	"time"

	"github.com/cortylix/site-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether a ticket in this status accepts no further
// transitions. Approved and rejected are final; only the admin note text
// may still change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Ticket is a user-submitted support request. TicketNumber is the
// human-readable identifier generated server-side at creation; it is
// distinct from the primary key and never changes afterwards.
type Ticket struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketNumber string    `gorm:"size:40;not null;uniqueIndex" json:"ticket_number"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Priority     string    `gorm:"size:20;default:'medium';not null" json:"priority"`
	Status       string    `gorm:"size:20;default:'pending';not null;index" json:"status"`
	AdminNotes   *string   `gorm:"type:text" json:"admin_notes"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID" json:"user"`
}

func (Ticket) TableName() string {
	return "tickets"
}
