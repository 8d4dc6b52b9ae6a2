package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domainApp "trainershift-backend/internal/domain/application"
	domainAtt "trainershift-backend/internal/domain/attendance"
	domainShift "trainershift-backend/internal/domain/shift"
	domainTrainer "trainershift-backend/internal/domain/trainer"
	"trainershift-backend/internal/domain/uow"
	"trainershift-backend/internal/notify"
	"trainershift-backend/internal/usecase/rate"
	"trainershift-backend/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	notifier notify.Notifier
	log      *zap.Logger
}

// NewUsecase: every operation runs inside a UoW transaction; notifications
// go out post-commit only.
func NewUsecase(tx uow.UnitOfWork, n notify.Notifier, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, notifier: n, log: log}
}

// Submit applies a trainer to an open shift. The rate is computed and
// frozen here; for auto-confirm stores the slot is reserved immediately
// and a scheduled attendance record is created, otherwise the application
// waits pending and capacity is taken at approval.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	var (
		dto       *ApplicationDTO
		trainerID string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		tr, err := r.Trainers.GetByTrainerID(ctx, in.TrainerID)
		if err != nil {
			return domainTrainer.ErrNotFound
		}
		if tr.Status != domainTrainer.StatusActive {
			return domainTrainer.ErrInactive
		}
		if tr.BlankStatus.Blocked() {
			return domainTrainer.ErrBlankBlocked
		}
		if tr.TenureYears < domainTrainer.MinTenureYears {
			return domainTrainer.ErrInsufficientTenure
		}

		sh, err := r.Shifts.GetByShiftIDForUpdate(ctx, in.ShiftID)
		if err != nil {
			return domainShift.ErrNotFound
		}
		if sh.Status != domainShift.StatusOpen {
			return domainShift.ErrNotOpen
		}

		if _, err := r.Applications.GetActiveByTrainerAndShift(ctx, tr.ID, sh.ID); err == nil {
			return domainApp.ErrDuplicate
		} else if !errors.Is(err, domainApp.ErrNotFound) {
			return err
		}

		st, err := r.Stores.GetByID(ctx, sh.StoreID)
		if err != nil {
			return err
		}

		bd, err := rate.ComputeFor(ctx, r, tr, sh, st)
		if err != nil {
			return err
		}

		status := domainApp.StatusPending
		if st.AutoConfirm {
			// Atomic slot reservation; rolls back with the tx on any
			// later failure.
			if err := r.Shifts.TryReserveSlot(ctx, sh.ID); err != nil {
				return err
			}
			status = domainApp.StatusApproved
		}

		app := &domainApp.ShiftApplication{
			ApplicationID:   id.NewID32(),
			TrainerID:       tr.ID,
			ShiftID:         sh.ID,
			ConfirmedRate:   bd.Total,
			RateBreakdown:   bd.JSON(),
			Status:          status,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		if status == domainApp.StatusApproved {
			if err := createScheduledRecord(ctx, r, app, sh); err != nil {
				return err
			}
		}

		trainerID = tr.TrainerID
		dto = &ApplicationDTO{
			ApplicationID: app.ApplicationID,
			TrainerID:     tr.TrainerID,
			ShiftID:       sh.ShiftID,
			Status:        string(app.Status),
			ConfirmedRate: app.ConfirmedRate,
			RateBreakdown: bd,
			CreatedAt:     app.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if dto.Status == string(domainApp.StatusApproved) {
		u.dispatch(ctx, trainerID, notify.CategoryApplicationApproved, map[string]any{
			"application_id": dto.ApplicationID,
			"shift_id":       dto.ShiftID,
			"confirmed_rate": dto.ConfirmedRate,
		})
	}
	return dto, nil
}

// Approve moves a pending application to approved: re-checks capacity via
// the conditional reserve (it may have filled since submission), creates
// the scheduled attendance record, then notifies the trainer.
func (u *Usecase) Approve(ctx context.Context, applicationID, reviewerID string) (*ApplicationDTO, error) {
	var (
		dto       *ApplicationDTO
		trainerID string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		if app.Status != domainApp.StatusPending {
			return domainApp.ErrNotPending
		}

		sh, err := r.Shifts.GetByID(ctx, app.ShiftID)
		if err != nil {
			return err
		}
		if err := r.Shifts.TryReserveSlot(ctx, sh.ID); err != nil {
			return err
		}

		app.Status = domainApp.StatusApproved
		app.StatusUpdatedAt = time.Now().UTC()
		app.ReviewedBy = reviewerID
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		if err := createScheduledRecord(ctx, r, app, sh); err != nil {
			return err
		}

		dto, trainerID, err = u.buildDTO(ctx, r, app, sh)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, trainerID, notify.CategoryApplicationApproved, map[string]any{
		"application_id": dto.ApplicationID,
		"shift_id":       dto.ShiftID,
		"confirmed_rate": dto.ConfirmedRate,
	})
	return dto, nil
}

// Reject is terminal and touches no capacity (none was reserved while
// pending).
func (u *Usecase) Reject(ctx context.Context, applicationID, reviewerID string) (*ApplicationDTO, error) {
	var (
		dto       *ApplicationDTO
		trainerID string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		if app.Status != domainApp.StatusPending {
			return domainApp.ErrNotPending
		}

		app.Status = domainApp.StatusRejected
		app.StatusUpdatedAt = time.Now().UTC()
		app.ReviewedBy = reviewerID
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		dto, trainerID, err = u.buildDTO(ctx, r, app, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, trainerID, notify.CategoryApplicationRejected, map[string]any{
		"application_id": dto.ApplicationID,
		"shift_id":       dto.ShiftID,
	})
	return dto, nil
}

// Cancel is legal from pending or approved. Cancelling an approved
// application releases its reserved slot and deletes the still-scheduled
// attendance record; once the trainer has clocked in, cancel is rejected.
func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, in.ApplicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		if !domainApp.CanTransition(app.Status, domainApp.StatusCancelled) {
			return domainApp.ErrInvalidTransition
		}
		wasApproved := app.Status == domainApp.StatusApproved

		if wasApproved {
			rec, err := r.Attendances.GetByApplicationID(ctx, app.ID)
			switch {
			case err == nil && rec.Status == domainAtt.StatusScheduled:
				if err := r.Attendances.DeleteScheduled(ctx, rec.ID); err != nil {
					return err
				}
			case err == nil:
				// already clocked in (or later); the shift happened
				return domainAtt.ErrInvalidState
			case !errors.Is(err, domainAtt.ErrNotFound):
				return err
			}
			if err := r.Shifts.ReleaseSlot(ctx, app.ShiftID); err != nil {
				return err
			}
		}

		app.Status = domainApp.StatusCancelled
		app.StatusUpdatedAt = time.Now().UTC()
		app.CancelReason = in.Reason
		app.CancelledBy = in.ActorID
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		dto, _, err = u.buildDTO(ctx, r, app, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Complete is the HR evaluation path; the usual route is the clock-out
// transition calling ApplyCompletion inside the attendance transaction.
func (u *Usecase) Complete(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		sh, err := r.Shifts.GetByID(ctx, app.ShiftID)
		if err != nil {
			return err
		}
		if err := ApplyCompletion(ctx, r, app, sh.ShiftDate); err != nil {
			return err
		}
		dto, _, err = u.buildDTO(ctx, r, app, sh)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MarkNoShow records that an approved trainer never clocked in. Capacity
// is not released; the shift window has already passed.
func (u *Usecase) MarkNoShow(ctx context.Context, applicationID, reviewerID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		if !domainApp.CanTransition(app.Status, domainApp.StatusNoShow) {
			return domainApp.ErrInvalidTransition
		}

		rec, err := r.Attendances.GetByApplicationID(ctx, app.ID)
		switch {
		case err == nil && rec.Status == domainAtt.StatusScheduled:
			if err := r.Attendances.DeleteScheduled(ctx, rec.ID); err != nil {
				return err
			}
		case err == nil:
			return domainAtt.ErrInvalidState
		case !errors.Is(err, domainAtt.ErrNotFound):
			return err
		}

		app.Status = domainApp.StatusNoShow
		app.StatusUpdatedAt = time.Now().UTC()
		app.ReviewedBy = reviewerID
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		dto, _, err = u.buildDTO(ctx, r, app, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Get returns the application by public id.
func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return domainApp.ErrNotFound
		}
		dto, _, err = u.buildDTO(ctx, r, app, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ApplyCompletion finalizes an approved application inside an already-open
// transaction: approved → completed, then the trainer's last_shift_date is
// stamped and blank status reset to ok.
func ApplyCompletion(ctx context.Context, r uow.Repos, app *domainApp.ShiftApplication, day time.Time) error {
	if !domainApp.CanTransition(app.Status, domainApp.StatusCompleted) {
		return domainApp.ErrInvalidTransition
	}
	app.Status = domainApp.StatusCompleted
	app.StatusUpdatedAt = time.Now().UTC()
	if err := r.Applications.Save(ctx, app); err != nil {
		return err
	}
	return r.Trainers.StampLastShift(ctx, app.TrainerID, day)
}

func createScheduledRecord(ctx context.Context, r uow.Repos, app *domainApp.ShiftApplication, sh *domainShift.ShiftRequest) error {
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
	return r.Attendances.Create(ctx, rec)
}

// buildDTO resolves public identifiers for the response. sh may be nil.
func (u *Usecase) buildDTO(ctx context.Context, r uow.Repos, app *domainApp.ShiftApplication, sh *domainShift.ShiftRequest) (*ApplicationDTO, string, error) {
	var err error
	if sh == nil {
		sh, err = r.Shifts.GetByID(ctx, app.ShiftID)
		if err != nil {
			return nil, "", err
		}
	}
	// numeric → public trainer id
	trID := ""
	if tr, err := r.Trainers.GetByID(ctx, app.TrainerID); err == nil {
		trID = tr.TrainerID
	}
	return &ApplicationDTO{
		ApplicationID: app.ApplicationID,
		TrainerID:     trID,
		ShiftID:       sh.ShiftID,
		Status:        string(app.Status),
		ConfirmedRate: app.ConfirmedRate,
		CreatedAt:     app.CreatedAt,
	}, trID, nil
}

func (u *Usecase) dispatch(ctx context.Context, recipientID, category string, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, recipientID, category, payload); err != nil && u.log != nil {
		u.log.Warn("notification dispatch failed",
			zap.String("category", category), zap.Error(err))
	}
}
