package attendance

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	domain "trainershift-backend/internal/domain/attendance"
	"trainershift-backend/internal/domain/store"
	"trainershift-backend/internal/domain/uow"
	appuc "trainershift-backend/internal/usecase/application"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

type RecordDTO struct {
	RecordID          string     `json:"record_id"`
	Status            string     `json:"status"`
	ClockInAt         *time.Time `json:"clock_in_at,omitempty"`
	ClockOutAt        *time.Time `json:"clock_out_at,omitempty"`
	LocationVerified  bool       `json:"location_verified"`
	ActualWorkMinutes int        `json:"actual_work_minutes"`
	Note              string     `json:"note,omitempty"`
}

// ClockIn: scheduled → clocked_in. Geolocation is optional; when present
// and inside the store geofence the record is flagged location-verified.
func (u *Usecase) ClockIn(ctx context.Context, recordID string, geo *Geo) (*RecordDTO, error) {
	var dto *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Attendances.GetByRecordIDForUpdate(ctx, recordID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := ClockInTx(ctx, r, rec, geo); err != nil {
			return err
		}
		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ClockOut: clocked_in → clocked_out; derives actual work minutes and
// completes the application in the same transaction.
func (u *Usecase) ClockOut(ctx context.Context, recordID string, geo *Geo) (*RecordDTO, error) {
	var dto *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Attendances.GetByRecordIDForUpdate(ctx, recordID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := ClockOutTx(ctx, r, rec, geo); err != nil {
			return err
		}
		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Verify: manager confirmation of a clocked_out record. Not reachable by
// the trainer.
func (u *Usecase) Verify(ctx context.Context, recordID, note string) (*RecordDTO, error) {
	var dto *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Attendances.GetByRecordIDForUpdate(ctx, recordID)
		if err != nil {
			return domain.ErrNotFound
		}
		if !domain.CanTransition(rec.Status, domain.StatusVerified) {
			return domain.ErrInvalidState
		}
		rec.Status = domain.StatusVerified
		if note != "" {
			rec.Note = note
		}
		if err := r.Attendances.Save(ctx, rec); err != nil {
			return err
		}
		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Dispute flags any post-scheduled record for manual resolution.
func (u *Usecase) Dispute(ctx context.Context, recordID, note string) (*RecordDTO, error) {
	var dto *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Attendances.GetByRecordIDForUpdate(ctx, recordID)
		if err != nil {
			return domain.ErrNotFound
		}
		if !domain.CanTransition(rec.Status, domain.StatusDisputed) {
			return domain.ErrInvalidState
		}
		rec.Status = domain.StatusDisputed
		rec.Note = note
		if err := r.Attendances.Save(ctx, rec); err != nil {
			return err
		}
		dto = toDTO(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ClockInTx performs the clock-in transition against an already-loaded,
// locked record. Shared with QR redemption.
func ClockInTx(ctx context.Context, r uow.Repos, rec *domain.Record, geo *Geo) error {
	if !domain.CanTransition(rec.Status, domain.StatusClockedIn) {
		return domain.ErrInvalidState
	}
	now := time.Now().UTC()
	rec.Status = domain.StatusClockedIn
	rec.ClockInAt = &now
	rec.LocationVerified = withinGeofence(storeForRecord(ctx, r, rec), geo)
	return r.Attendances.Save(ctx, rec)
}

// ClockOutTx performs the clock-out transition and completes the backing
// application inside the same transaction. Shared with QR redemption.
func ClockOutTx(ctx context.Context, r uow.Repos, rec *domain.Record, geo *Geo) error {
	if rec.Status == domain.StatusScheduled {
		return domain.ErrNotClockedIn
	}
	if !domain.CanTransition(rec.Status, domain.StatusClockedOut) {
		return domain.ErrInvalidState
	}
	now := time.Now().UTC()
	rec.Status = domain.StatusClockedOut
	rec.ClockOutAt = &now
	rec.ActualWorkMinutes = workMinutes(*rec.ClockInAt, now, rec.BreakMinutes)
	if !rec.LocationVerified && geo != nil {
		rec.LocationVerified = withinGeofence(storeForRecord(ctx, r, rec), geo)
	}
	if err := r.Attendances.Save(ctx, rec); err != nil {
		return err
	}

	app, err := r.Applications.GetByID(ctx, rec.ApplicationID)
	if err != nil {
		return err
	}
	return appuc.ApplyCompletion(ctx, r, app, rec.ShiftDate)
}

// workMinutes rounds the elapsed time to whole minutes, subtracts the
// scheduled break and never goes negative.
func workMinutes(clockIn, clockOut time.Time, breakMinutes int) int {
	mins := int(math.Round(clockOut.Sub(clockIn).Minutes())) - breakMinutes
	if mins < 0 {
		return 0
	}
	return mins
}

// storeForRecord walks record → application → shift → store; any gap in
// the chain disables location verification rather than failing the clock.
func storeForRecord(ctx context.Context, r uow.Repos, rec *domain.Record) *store.Store {
	app, err := r.Applications.GetByID(ctx, rec.ApplicationID)
	if err != nil {
		return nil
	}
	sh, err := r.Shifts.GetByID(ctx, app.ShiftID)
	if err != nil {
		return nil
	}
	st, err := r.Stores.GetByID(ctx, sh.StoreID)
	if err != nil {
		return nil
	}
	return st
}

func toDTO(rec *domain.Record) *RecordDTO {
	return &RecordDTO{
		RecordID:          rec.RecordID,
		Status:            string(rec.Status),
		ClockInAt:         rec.ClockInAt,
		ClockOutAt:        rec.ClockOutAt,
		LocationVerified:  rec.LocationVerified,
		ActualWorkMinutes: rec.ActualWorkMinutes,
		Note:              rec.Note,
	}
}
