package application

import (
	"time"

	"trainershift-backend/internal/usecase/rate"
)

type SubmitInput struct {
	TrainerID string `json:"trainer_id"`
	ShiftID   string `json:"shift_id"`
}

type CancelInput struct {
	ApplicationID string
	Reason        string
	ActorID       string // trainer or HR principal
}

type ApplicationDTO struct {
	ApplicationID string          `json:"application_id"`
	TrainerID     string          `json:"trainer_id"`
	ShiftID       string          `json:"shift_id"`
	Status        string          `json:"status"`
	ConfirmedRate float64         `json:"confirmed_rate"`
	RateBreakdown *rate.Breakdown `json:"rate_breakdown,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
