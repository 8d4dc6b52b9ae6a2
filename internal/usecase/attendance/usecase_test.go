package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	domainApp "trainershift-backend/internal/domain/application"
	domain "trainershift-backend/internal/domain/attendance"
	domainShift "trainershift-backend/internal/domain/shift"
	domainStore "trainershift-backend/internal/domain/store"
	"trainershift-backend/internal/domain/uow"
	"trainershift-backend/internal/testutil/repomock"
	"trainershift-backend/internal/testutil/uowmock"
)

const recordHex = "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

type attFixture struct {
	rec     *domain.Record
	app     *domainApp.ShiftApplication
	shift   *domainShift.ShiftRequest
	store   *domainStore.Store
	stamped bool
}

func newAttFixture(status domain.Status) *attFixture {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	f := &attFixture{
		shift: &domainShift.ShiftRequest{ID: 10, StoreID: 20, ShiftDate: day},
		store: &domainStore.Store{
			ID: 20, Latitude: f64(anchorLat), Longitude: f64(anchorLon), GeofenceRadiusM: 200,
		},
		app: &domainApp.ShiftApplication{
			ID: 100, ApplicationID: "cccccccccccccccccccccccccccccccc",
			TrainerID: 1, ShiftID: 10, Status: domainApp.StatusApproved,
		},
	}
	f.rec = &domain.Record{
		ID: 200, RecordID: recordHex, ApplicationID: 100, TrainerID: 1,
		ShiftDate: day, BreakMinutes: 60, Status: status,
	}
	if status != domain.StatusScheduled {
		in := time.Now().UTC().Add(-8 * time.Hour)
		f.rec.ClockInAt = &in
	}
	return f
}

func (f *attFixture) repos() uow.Repos {
	return uow.Repos{
		Trainers: &repomock.TrainerRepo{
			StampLastShiftFn: func(ctx context.Context, id uint64, day time.Time) error {
				f.stamped = true
				return nil
			},
		},
		Stores: &repomock.StoreRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainStore.Store, error) {
				return f.store, nil
			},
		},
		Shifts: &repomock.ShiftRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainShift.ShiftRequest, error) {
				return f.shift, nil
			},
		},
		Applications: &repomock.ApplicationRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainApp.ShiftApplication, error) {
				return f.app, nil
			},
		},
		Attendances: &repomock.AttendanceRepo{
			GetByRecordIDForUpdateFn: func(ctx context.Context, recordID string) (*domain.Record, error) {
				if recordID != f.rec.RecordID {
					return nil, domain.ErrNotFound
				}
				return f.rec, nil
			},
		},
		QrTokens:    &repomock.QrTokenRepo{},
		RateConfigs: &repomock.RateConfigRepo{},
		BlankRules:  &repomock.BlankRuleRepo{},
	}
}

func newAttUsecase(f *attFixture) *Usecase {
	return NewUsecase(uowmock.Passthrough(f.repos()), zap.NewNop())
}

func TestClockIn(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	uc := newAttUsecase(f)

	dto, err := uc.ClockIn(context.Background(), recordHex, &Geo{Lat: anchorLat, Lon: anchorLon})
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if dto.Status != string(domain.StatusClockedIn) || f.rec.ClockInAt == nil {
		t.Fatalf("clock-in not recorded: %+v", dto)
	}
	if !dto.LocationVerified {
		t.Fatalf("position at the store anchor must verify")
	}
}

func TestClockIn_OutsideGeofenceStillSucceeds(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	uc := newAttUsecase(f)

	dto, err := uc.ClockIn(context.Background(), recordHex, &Geo{Lat: anchorLat + 0.01, Lon: anchorLon})
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if dto.LocationVerified {
		t.Fatalf("~1.1km out must not verify")
	}
	if dto.Status != string(domain.StatusClockedIn) {
		t.Fatalf("clock-in must still succeed, got %s", dto.Status)
	}
}

func TestClockIn_NoCoordinatesConfigured(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	f.store.Latitude, f.store.Longitude = nil, nil
	uc := newAttUsecase(f)

	dto, err := uc.ClockIn(context.Background(), recordHex, &Geo{Lat: anchorLat, Lon: anchorLon})
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if dto.LocationVerified {
		t.Fatalf("no anchor, nothing to verify against")
	}
}

func TestClockIn_Twice(t *testing.T) {
	f := newAttFixture(domain.StatusClockedIn)
	uc := newAttUsecase(f)

	if _, err := uc.ClockIn(context.Background(), recordHex, nil); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}

func TestClockIn_UnknownRecord(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	uc := newAttUsecase(f)

	if _, err := uc.ClockIn(context.Background(), "ffffffffffffffffffffffffffffffff", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestClockOut_CompletesApplication(t *testing.T) {
	f := newAttFixture(domain.StatusClockedIn)
	uc := newAttUsecase(f)

	dto, err := uc.ClockOut(context.Background(), recordHex, nil)
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if dto.Status != string(domain.StatusClockedOut) || f.rec.ClockOutAt == nil {
		t.Fatalf("clock-out not recorded: %+v", dto)
	}
	// 8h elapsed minus 60min break, allow rounding drift
	if dto.ActualWorkMinutes < 419 || dto.ActualWorkMinutes > 421 {
		t.Fatalf("want ~420 work minutes, got %d", dto.ActualWorkMinutes)
	}
	if f.app.Status != domainApp.StatusCompleted {
		t.Fatalf("application must complete with clock-out, got %s", f.app.Status)
	}
	if !f.stamped {
		t.Fatalf("last shift date not stamped")
	}
}

func TestClockOut_BeforeClockIn(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	uc := newAttUsecase(f)

	if _, err := uc.ClockOut(context.Background(), recordHex, nil); !errors.Is(err, domain.ErrNotClockedIn) {
		t.Fatalf("want ErrNotClockedIn, got %v", err)
	}
}

func TestClockOut_Twice(t *testing.T) {
	f := newAttFixture(domain.StatusClockedOut)
	uc := newAttUsecase(f)

	if _, err := uc.ClockOut(context.Background(), recordHex, nil); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	f := newAttFixture(domain.StatusClockedOut)
	uc := newAttUsecase(f)

	dto, err := uc.Verify(context.Background(), recordHex, "checked against roster")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if dto.Status != string(domain.StatusVerified) || dto.Note != "checked against roster" {
		t.Fatalf("verify mismatch: %+v", dto)
	}
}

func TestVerify_RequiresClockedOut(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusScheduled, domain.StatusClockedIn,
		domain.StatusVerified, domain.StatusDisputed,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newAttFixture(status)
			uc := newAttUsecase(f)
			if _, err := uc.Verify(context.Background(), recordHex, ""); !errors.Is(err, domain.ErrInvalidState) {
				t.Fatalf("want ErrInvalidState, got %v", err)
			}
		})
	}
}

func TestDispute(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusClockedIn, domain.StatusClockedOut, domain.StatusVerified,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newAttFixture(status)
			uc := newAttUsecase(f)

			dto, err := uc.Dispute(context.Background(), recordHex, "times look wrong")
			if err != nil {
				t.Fatalf("Dispute: %v", err)
			}
			if dto.Status != string(domain.StatusDisputed) {
				t.Fatalf("want disputed, got %s", dto.Status)
			}
		})
	}
}

func TestDispute_NotFromScheduled(t *testing.T) {
	f := newAttFixture(domain.StatusScheduled)
	uc := newAttUsecase(f)

	if _, err := uc.Dispute(context.Background(), recordHex, "x"); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}
