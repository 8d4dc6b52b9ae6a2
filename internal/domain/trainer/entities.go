package trainer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// BlankStatus is the eligibility tier derived from days elapsed since the
// trainer's last completed shift.
type BlankStatus string

const (
	BlankOK                 BlankStatus = "ok"
	BlankAlert60            BlankStatus = "alert_60"
	BlankSkillCheckRequired BlankStatus = "skill_check_required"
	BlankTrainingRequired   BlankStatus = "training_required"
)

// Blocked reports whether the status prevents new shift applications.
func (b BlankStatus) Blocked() bool {
	return b == BlankSkillCheckRequired || b == BlankTrainingRequired
}

// MinTenureYears is the floor for submitting shift applications.
const MinTenureYears = 2.0

var (
	ErrNotFound           = errors.New("trainer not found")
	ErrInactive           = errors.New("trainer is not active")
	ErrBlankBlocked       = errors.New("trainer is blocked by blank status")
	ErrInsufficientTenure = errors.New("trainer tenure is below the minimum")
)

type Trainer struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	TrainerID      string         `gorm:"size:32;uniqueIndex:ux_trainers_trainer_id_active" json:"trainer_id"`
	Name           string         `gorm:"size:128" json:"name"`
	Email          string         `gorm:"size:255" json:"email"`
	TenureYears    float64        `gorm:"type:decimal(5,2)" json:"tenure_years"`
	Status         Status         `gorm:"type:enum('active','pending','inactive','suspended');default:'pending'" json:"status"`
	BlankStatus    BlankStatus    `gorm:"type:enum('ok','alert_60','skill_check_required','training_required');default:'ok'" json:"blank_status"`
	LastShiftDate  *time.Time     `gorm:"type:date" json:"last_shift_date,omitempty"`
	PreferredAreas string         `gorm:"size:255" json:"preferred_areas"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Trainer) TableName() string { return "trainers" }
