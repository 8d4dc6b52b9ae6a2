package qrtoken

import (
	"errors"
	"time"
)

type Type string

const (
	TypeClockIn  Type = "clock_in"
	TypeClockOut Type = "clock_out"
)

func (t Type) Valid() bool { return t == TypeClockIn || t == TypeClockOut }

// TokenTTL is the lifetime of an issued token.
const TokenTTL = 15 * time.Minute

var (
	ErrInvalidToken = errors.New("qr token not found")
	ErrAlreadyUsed  = errors.New("qr token already used")
	ErrExpired      = errors.New("qr token expired")
	ErrInvalidType  = errors.New("qr token type must be clock_in or clock_out")
	ErrNotIssuable  = errors.New("application is not eligible for qr tokens")
)

type QrToken struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64 `gorm:"index:idx_qr_tokens_application_type" json:"-"`
	Token         string `gorm:"size:64;uniqueIndex:ux_qr_tokens_token" json:"token"`
	Type          Type   `gorm:"type:enum('clock_in','clock_out');index:idx_qr_tokens_application_type" json:"type"`
	// UsedAt is set exactly once, through the conditional mark-used update.
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (QrToken) TableName() string { return "qr_tokens" }

func (t *QrToken) Expired(now time.Time) bool { return t.ExpiresAt.Before(now) }
