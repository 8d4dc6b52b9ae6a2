package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type trainerSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	TrainerID      string         `gorm:"size:32;column:trainer_id"`
	Name           string         `gorm:"column:name"`
	Email          string         `gorm:"column:email"`
	TenureYears    float64        `gorm:"column:tenure_years"`
	Status         string         `gorm:"type:text;column:status"` // ← no enum
	BlankStatus    string         `gorm:"type:text;column:blank_status"`
	LastShiftDate  *time.Time     `gorm:"column:last_shift_date"`
	PreferredAreas string         `gorm:"column:preferred_areas"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (trainerSQLite) TableName() string { return "trainers" }

type storeSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	StoreID         string         `gorm:"size:32;column:store_id"`
	Name            string         `gorm:"column:name"`
	Area            string         `gorm:"column:area"`
	AutoConfirm     bool           `gorm:"column:auto_confirm"`
	Latitude        *float64       `gorm:"column:latitude"`
	Longitude       *float64       `gorm:"column:longitude"`
	GeofenceRadiusM float64        `gorm:"column:geofence_radius_m"`
	MaxHourlyRate   *float64       `gorm:"column:max_hourly_rate"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (storeSQLite) TableName() string { return "stores" }

type shiftSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	ShiftID              string         `gorm:"size:32;column:shift_id"`
	StoreID              uint64         `gorm:"column:store_id"`
	ShiftDate            time.Time      `gorm:"column:shift_date"`
	StartAt              time.Time      `gorm:"column:start_at"`
	EndAt                time.Time      `gorm:"column:end_at"`
	BreakMinutes         int            `gorm:"column:break_minutes"`
	RequiredCount        int            `gorm:"column:required_count"`
	FilledCount          int            `gorm:"column:filled_count"`
	Status               string         `gorm:"type:text;column:status"`
	IsEmergency          bool           `gorm:"column:is_emergency"`
	EmergencyBonusAmount float64        `gorm:"column:emergency_bonus_amount"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (shiftSQLite) TableName() string { return "shift_requests" }

type applicationSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ApplicationID   string         `gorm:"size:32;column:application_id"`
	TrainerID       uint64         `gorm:"column:trainer_id"`
	ShiftID         uint64         `gorm:"column:shift_id"`
	ConfirmedRate   float64        `gorm:"column:confirmed_rate"`
	RateBreakdown   string         `gorm:"column:rate_breakdown"`
	Status          string         `gorm:"type:text;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	ReviewedBy      string         `gorm:"column:reviewed_by"`
	CancelReason    string         `gorm:"column:cancel_reason"`
	CancelledBy     string         `gorm:"column:cancelled_by"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "shift_applications" }

type attendanceSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	RecordID          string         `gorm:"size:32;column:record_id"`
	ApplicationID     uint64         `gorm:"column:application_id"`
	TrainerID         uint64         `gorm:"column:trainer_id"`
	ShiftDate         time.Time      `gorm:"column:shift_date"`
	ScheduledStartAt  time.Time      `gorm:"column:scheduled_start_at"`
	ScheduledEndAt    time.Time      `gorm:"column:scheduled_end_at"`
	BreakMinutes      int            `gorm:"column:break_minutes"`
	Status            string         `gorm:"type:text;column:status"`
	ClockInAt         *time.Time     `gorm:"column:clock_in_at"`
	ClockOutAt        *time.Time     `gorm:"column:clock_out_at"`
	LocationVerified  bool           `gorm:"column:location_verified"`
	ActualWorkMinutes int            `gorm:"column:actual_work_minutes"`
	Note              string         `gorm:"column:note"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (attendanceSQLite) TableName() string { return "attendance_records" }

type qrTokenSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	ApplicationID uint64     `gorm:"column:application_id"`
	Token         string     `gorm:"size:64;column:token"`
	Type          string     `gorm:"type:text;column:type"`
	UsedAt        *time.Time `gorm:"column:used_at"`
	ExpiresAt     time.Time  `gorm:"column:expires_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (qrTokenSQLite) TableName() string { return "qr_tokens" }

type rateConfigSQLite struct {
	ID                       uint64    `gorm:"primaryKey;column:id"`
	TenureMinYears           float64   `gorm:"column:tenure_min_years"`
	TenureMaxYears           *float64  `gorm:"column:tenure_max_years"`
	BaseRate                 float64   `gorm:"column:base_rate"`
	AttendanceBonusThreshold int       `gorm:"column:attendance_bonus_threshold"`
	AttendanceBonusAmount    float64   `gorm:"column:attendance_bonus_amount"`
	EffectiveFrom            time.Time `gorm:"column:effective_from"`
	IsActive                 bool      `gorm:"column:is_active"`
	CreatedAt                time.Time `gorm:"column:created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at"`
}

func (rateConfigSQLite) TableName() string { return "rate_configs" }

type costCeilingSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	MaxHourlyRate float64   `gorm:"column:max_hourly_rate"`
	IsActive      bool      `gorm:"column:is_active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (costCeilingSQLite) TableName() string { return "cost_ceiling_configs" }

type blankRuleSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ThresholdDays int       `gorm:"column:threshold_days"`
	Status        string    `gorm:"type:text;column:status"`
	IsActive      bool      `gorm:"column:is_active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (blankRuleSQLite) TableName() string { return "blank_rule_configs" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&trainerSQLite{}, &storeSQLite{}, &shiftSQLite{}, &applicationSQLite{},
		&attendanceSQLite{}, &qrTokenSQLite{}, &rateConfigSQLite{},
		&costCeilingSQLite{}, &blankRuleSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
