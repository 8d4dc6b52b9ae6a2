package shift

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusOpen            Status = "open"
	StatusClosed          Status = "closed"
	StatusCancelled       Status = "cancelled"
	StatusCompleted       Status = "completed"
)

var (
	ErrNotFound          = errors.New("shift not found")
	ErrNotOpen           = errors.New("shift is not open")
	ErrFull              = errors.New("shift has no remaining slots")
	ErrInvalidTransition = errors.New("invalid shift status transition")
)

// transitions is the closed set of legal status moves.
var transitions = map[Status][]Status{
	StatusPendingApproval: {StatusOpen, StatusCancelled},
	StatusOpen:            {StatusClosed, StatusCancelled, StatusCompleted},
	StatusClosed:          {StatusOpen, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type ShiftRequest struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ShiftID       string    `gorm:"size:32;uniqueIndex:ux_shift_requests_shift_id_active" json:"shift_id"`
	StoreID       uint64    `gorm:"index:idx_shift_requests_store" json:"-"`
	ShiftDate     time.Time `gorm:"type:date" json:"shift_date"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	BreakMinutes  int       `gorm:"default:0" json:"break_minutes"`
	RequiredCount int       `json:"required_count"`
	// FilledCount is only ever mutated through the conditional
	// reserve/release updates; 0 <= filled_count <= required_count holds.
	FilledCount int    `gorm:"default:0" json:"filled_count"`
	Status      Status `gorm:"type:enum('pending_approval','open','closed','cancelled','completed');default:'pending_approval'" json:"status"`
	// IsEmergency is monotonic: once set it is never cleared.
	IsEmergency          bool           `gorm:"default:false" json:"is_emergency"`
	EmergencyBonusAmount float64        `gorm:"type:decimal(10,2);default:0" json:"emergency_bonus_amount"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ShiftRequest) TableName() string { return "shift_requests" }

// FillRate treats required_count == 0 as fully staffed.
func (s *ShiftRequest) FillRate() float64 {
	if s.RequiredCount <= 0 {
		return 1
	}
	return float64(s.FilledCount) / float64(s.RequiredCount)
}
