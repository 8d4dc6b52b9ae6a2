package attendance

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusClockedIn  Status = "clocked_in"
	StatusClockedOut Status = "clocked_out"
	StatusVerified   Status = "verified"
	StatusDisputed   Status = "disputed"
)

var (
	ErrNotFound     = errors.New("attendance record not found")
	ErrNotClockedIn = errors.New("attendance record is not clocked in")
	ErrInvalidState = errors.New("invalid attendance state for this action")
)

// transitions: disputed is reachable from every post-scheduled state;
// only scheduled records may be deleted.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusClockedIn},
	StatusClockedIn:  {StatusClockedOut, StatusDisputed},
	StatusClockedOut: {StatusVerified, StatusDisputed},
	StatusVerified:   {StatusDisputed},
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type Record struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	RecordID string `gorm:"size:32;uniqueIndex:ux_attendance_records_record_id_active" json:"record_id"`
	// One record per approved application.
	ApplicationID    uint64     `gorm:"uniqueIndex:ux_attendance_records_application" json:"-"`
	TrainerID        uint64     `gorm:"index:idx_attendance_records_trainer_date" json:"-"`
	ShiftDate        time.Time  `gorm:"type:date;index:idx_attendance_records_trainer_date" json:"shift_date"`
	ScheduledStartAt time.Time  `json:"scheduled_start_at"`
	ScheduledEndAt   time.Time  `json:"scheduled_end_at"`
	BreakMinutes     int        `gorm:"default:0" json:"break_minutes"`
	Status           Status     `gorm:"type:enum('scheduled','clocked_in','clocked_out','verified','disputed');default:'scheduled'" json:"status"`
	ClockInAt        *time.Time `json:"clock_in_at,omitempty"`
	ClockOutAt       *time.Time `json:"clock_out_at,omitempty"`
	// LocationVerified is set when a supplied geolocation fell inside the
	// store's geofence; absence of coordinates never blocks a clock action.
	LocationVerified  bool           `gorm:"default:false" json:"location_verified"`
	ActualWorkMinutes int            `gorm:"default:0" json:"actual_work_minutes"`
	Note              string         `gorm:"size:512" json:"note,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Record) TableName() string { return "attendance_records" }
