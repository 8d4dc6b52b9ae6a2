package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("store not found")

// DefaultGeofenceRadiusM applies when a store has coordinates but no
// explicit radius configured.
const DefaultGeofenceRadiusM = 200.0

type Store struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	StoreID string `gorm:"size:32;uniqueIndex:ux_stores_store_id_active" json:"store_id"`
	Name    string `gorm:"size:128" json:"name"`
	Area    string `gorm:"size:64" json:"area"`
	// AutoConfirm approves applications at submission without HR review.
	AutoConfirm bool `gorm:"default:false" json:"auto_confirm"`
	// Geofence anchor; nil coordinates disable location verification.
	Latitude        *float64 `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude       *float64 `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`
	GeofenceRadiusM float64  `gorm:"default:200" json:"geofence_radius_m"`
	// MaxHourlyRate overrides the global cost ceiling when set.
	MaxHourlyRate *float64       `gorm:"type:decimal(10,2)" json:"max_hourly_rate,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Store) TableName() string { return "stores" }
