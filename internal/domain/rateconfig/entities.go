package rateconfig

import (
	"errors"
	"time"
)

// ErrNoRateConfig is a fatal misconfiguration: a trainer's tenure matched
// no active band. Surfaced to the caller, never silently defaulted.
var ErrNoRateConfig = errors.New("no active rate config matches tenure")

// RateConfig is one tenure band [tenure_min_years, tenure_max_years).
// Bands are curated to be non-overlapping; see Match/tie-break on the
// calculator for the deterministic selection when they are not.
type RateConfig struct {
	ID                       uint64     `gorm:"primaryKey;column:id" json:"-"`
	TenureMinYears           float64    `gorm:"type:decimal(5,2)" json:"tenure_min_years"`
	TenureMaxYears           *float64   `gorm:"type:decimal(5,2)" json:"tenure_max_years,omitempty"`
	BaseRate                 float64    `gorm:"type:decimal(10,2)" json:"base_rate"`
	AttendanceBonusThreshold int        `json:"attendance_bonus_threshold"`
	AttendanceBonusAmount    float64    `gorm:"type:decimal(10,2)" json:"attendance_bonus_amount"`
	EffectiveFrom            time.Time  `gorm:"type:date" json:"effective_from"`
	IsActive                 bool       `gorm:"default:true" json:"is_active"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RateConfig) TableName() string { return "rate_configs" }

// Matches reports whether tenure falls inside the band.
func (c *RateConfig) Matches(tenure float64) bool {
	if tenure < c.TenureMinYears {
		return false
	}
	return c.TenureMaxYears == nil || tenure < *c.TenureMaxYears
}

// CostCeiling is the global max hourly rate; stores may carry their own
// override. Read-only to this service.
type CostCeiling struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	MaxHourlyRate float64   `gorm:"type:decimal(10,2)" json:"max_hourly_rate"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CostCeiling) TableName() string { return "cost_ceiling_configs" }
