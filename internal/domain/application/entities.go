package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrDuplicate         = errors.New("trainer already applied to this shift")
	ErrNotPending        = errors.New("application is not pending")
	ErrInvalidTransition = errors.New("invalid application status transition")
)

// transitions: pending and approved are the only non-terminal states.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled, StatusCompleted, StatusNoShow},
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type ShiftApplication struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_application_id_active" json:"application_id"`
	TrainerID     uint64 `gorm:"index:idx_applications_trainer_shift" json:"-"`
	ShiftID       uint64 `gorm:"index:idx_applications_trainer_shift" json:"-"`
	// ConfirmedRate and RateBreakdown are frozen at creation; later config
	// edits never touch them.
	ConfirmedRate   float64        `gorm:"type:decimal(10,2)" json:"confirmed_rate"`
	RateBreakdown   string         `gorm:"type:text" json:"rate_breakdown"`
	Status          Status         `gorm:"type:enum('pending','approved','rejected','cancelled','completed','no_show');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	ReviewedBy      string         `gorm:"size:32" json:"reviewed_by,omitempty"`
	CancelReason    string         `gorm:"size:255" json:"cancel_reason,omitempty"`
	CancelledBy     string         `gorm:"size:32" json:"cancelled_by,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ShiftApplication) TableName() string { return "shift_applications" }
