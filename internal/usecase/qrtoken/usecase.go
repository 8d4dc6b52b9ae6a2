package qrtoken

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainApp "trainershift-backend/internal/domain/application"
	domainAtt "trainershift-backend/internal/domain/attendance"
	domain "trainershift-backend/internal/domain/qrtoken"
	"trainershift-backend/internal/domain/uow"
	attuc "trainershift-backend/internal/usecase/attendance"
	"trainershift-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

type IssueDTO struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RedeemDTO struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	RecordID      string `json:"record_id"`
}

// Issue creates a fresh 15-minute token for the application, first
// invalidating any unused token of the same type so at most one live
// token exists per (application, type).
func (u *Usecase) Issue(ctx context.Context, applicationID string, typ domain.Type) (*IssueDTO, error) {
	if !typ.Valid() {
		return nil, domain.ErrInvalidType
	}

	var dto *IssueDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		if app.Status != domainApp.StatusApproved && app.Status != domainApp.StatusCompleted {
			return domain.ErrNotIssuable
		}

		now := time.Now().UTC()
		// Prior unused tokens are marked used without performing their
		// action.
		if err := r.QrTokens.InvalidateUnused(ctx, app.ID, typ, now); err != nil {
			return err
		}

		tok := &domain.QrToken{
			ApplicationID: app.ID,
			Token:         uuid.NewString(),
			Type:          typ,
			ExpiresAt:     now.Add(domain.TokenTTL),
		}
		if err := r.QrTokens.Create(ctx, tok); err != nil {
			return err
		}
		dto = &IssueDTO{Token: tok.Token, Type: string(tok.Type), ExpiresAt: tok.ExpiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Redeem marks the token used (conditional update — two racing redeems
// yield exactly one success) and then drives the attendance transition in
// the same transaction, so a downstream failure also rolls the mark back.
func (u *Usecase) Redeem(ctx context.Context, tokenValue string) (*RedeemDTO, error) {
	var dto *RedeemDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		tok, err := r.QrTokens.GetByToken(ctx, tokenValue)
		if err != nil {
			return domain.ErrInvalidToken
		}
		now := time.Now().UTC()
		if tok.UsedAt != nil {
			return domain.ErrAlreadyUsed
		}
		if tok.Expired(now) {
			return domain.ErrExpired
		}
		ok, err := r.QrTokens.TryMarkUsed(ctx, tok.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyUsed
		}

		app, err := r.Applications.GetByID(ctx, tok.ApplicationID)
		if err != nil {
			return err
		}

		rec, err := r.Attendances.GetByApplicationID(ctx, app.ID)
		switch tok.Type {
		case domain.TypeClockIn:
			if errors.Is(err, domainAtt.ErrNotFound) {
				rec, err = createRecordFromShift(ctx, r, app)
			}
			if err != nil {
				return err
			}
			if err := attuc.ClockInTx(ctx, r, rec, nil); err != nil {
				return err
			}
		case domain.TypeClockOut:
			if errors.Is(err, domainAtt.ErrNotFound) {
				return domainAtt.ErrNotClockedIn
			}
			if err != nil {
				return err
			}
			if err := attuc.ClockOutTx(ctx, r, rec, nil); err != nil {
				return err
			}
		default:
			return domain.ErrInvalidType
		}

		dto = &RedeemDTO{
			Type:          string(tok.Type),
			ApplicationID: app.ApplicationID,
			RecordID:      rec.RecordID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// createRecordFromShift builds the attendance record from the shift's
// schedule when a clock-in token arrives before the record exists.
func createRecordFromShift(ctx context.Context, r uow.Repos, app *domainApp.ShiftApplication) (*domainAtt.Record, error) {
	sh, err := r.Shifts.GetByID(ctx, app.ShiftID)
	if err != nil {
		return nil, err
	}
	rec := &domainAtt.Record{
		RecordID:         id.NewID32(),
		ApplicationID:    app.ID,
		TrainerID:        app.TrainerID,
		ShiftDate:        sh.ShiftDate,
		ScheduledStartAt: sh.StartAt,
		ScheduledEndAt:   sh.EndAt,
		BreakMinutes:     sh.BreakMinutes,
		Status:           domainAtt.StatusScheduled,
	}
	if err := r.Attendances.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
