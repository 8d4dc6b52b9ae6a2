package blankrule

import (
	"time"

	"trainershift-backend/internal/domain/trainer"
)

// BlankRule maps days elapsed since a trainer's last shift to the blank
// status that must be applied. Rules form an ordered ladder; the highest
// matching threshold wins. Read-only to this service.
type BlankRule struct {
	ID            uint64              `gorm:"primaryKey;column:id" json:"-"`
	ThresholdDays int                 `json:"threshold_days"`
	Status        trainer.BlankStatus `gorm:"type:enum('ok','alert_60','skill_check_required','training_required')" json:"status"`
	IsActive      bool                `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlankRule) TableName() string { return "blank_rule_configs" }
