package qrtoken

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	domainApp "trainershift-backend/internal/domain/application"
	domainAtt "trainershift-backend/internal/domain/attendance"
	domain "trainershift-backend/internal/domain/qrtoken"
	domainShift "trainershift-backend/internal/domain/shift"
	domainStore "trainershift-backend/internal/domain/store"
	"trainershift-backend/internal/domain/uow"
	"trainershift-backend/internal/testutil/repomock"
	"trainershift-backend/internal/testutil/uowmock"
)

const appHex = "cccccccccccccccccccccccccccccccc"

type qrFixture struct {
	app   *domainApp.ShiftApplication
	shift *domainShift.ShiftRequest
	rec   *domainAtt.Record // nil until created
	tok   *domain.QrToken   // nil until issued/seeded

	invalidated int
	created     []*domain.QrToken
}

func newQrFixture(appStatus domainApp.Status) *qrFixture {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &qrFixture{
		app: &domainApp.ShiftApplication{
			ID: 100, ApplicationID: appHex, TrainerID: 1, ShiftID: 10, Status: appStatus,
		},
		shift: &domainShift.ShiftRequest{
			ID: 10, StoreID: 20, ShiftDate: day,
			StartAt: day.Add(9 * time.Hour), EndAt: day.Add(17 * time.Hour), BreakMinutes: 60,
		},
	}
}

func (f *qrFixture) repos() uow.Repos {
	return uow.Repos{
		Trainers: &repomock.TrainerRepo{
			StampLastShiftFn: func(ctx context.Context, id uint64, day time.Time) error { return nil },
		},
		Stores: &repomock.StoreRepo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainStore.Store, error) {
				return &domainStore.Store{ID: 20}, nil
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
			GetByApplicationIDFn: func(ctx context.Context, id string) (*domainApp.ShiftApplication, error) {
				if id != f.app.ApplicationID {
					return nil, domainApp.ErrNotFound
				}
				return f.app, nil
			},
		},
		Attendances: &repomock.AttendanceRepo{
			CreateFn: func(ctx context.Context, rec *domainAtt.Record) error {
				rec.ID = 200
				f.rec = rec
				return nil
			},
			GetByApplicationIDFn: func(ctx context.Context, applicationID uint64) (*domainAtt.Record, error) {
				if f.rec == nil {
					return nil, domainAtt.ErrNotFound
				}
				return f.rec, nil
			},
		},
		QrTokens: &repomock.QrTokenRepo{
			CreateFn: func(ctx context.Context, tok *domain.QrToken) error {
				tok.ID = uint64(300 + len(f.created))
				f.created = append(f.created, tok)
				f.tok = tok
				return nil
			},
			GetByTokenFn: func(ctx context.Context, token string) (*domain.QrToken, error) {
				if f.tok == nil || f.tok.Token != token {
					return nil, domain.ErrInvalidToken
				}
				return f.tok, nil
			},
			InvalidateUnusedFn: func(ctx context.Context, applicationID uint64, typ domain.Type, now time.Time) error {
				f.invalidated++
				return nil
			},
			TryMarkUsedFn: func(ctx context.Context, id uint64, now time.Time) (bool, error) {
				if f.tok.UsedAt != nil {
					return false, nil
				}
				f.tok.UsedAt = &now
				return true, nil
			},
		},
		RateConfigs: &repomock.RateConfigRepo{},
		BlankRules:  &repomock.BlankRuleRepo{},
	}
}

func newQrUsecase(f *qrFixture) *Usecase {
	return NewUsecase(uowmock.Passthrough(f.repos()), zap.NewNop())
}

func TestIssue(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	uc := newQrUsecase(f)

	before := time.Now().UTC()
	dto, err := uc.Issue(context.Background(), appHex, domain.TypeClockIn)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if dto.Token == "" || dto.Type != string(domain.TypeClockIn) {
		t.Fatalf("bad token dto: %+v", dto)
	}
	ttl := dto.ExpiresAt.Sub(before)
	if ttl < 14*time.Minute || ttl > 16*time.Minute {
		t.Fatalf("want ~15m ttl, got %v", ttl)
	}
	if f.invalidated != 1 {
		t.Fatalf("prior unused tokens must be invalidated")
	}
}

func TestIssue_RotationInvalidatesPrior(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	uc := newQrUsecase(f)

	first, err := uc.Issue(context.Background(), appHex, domain.TypeClockIn)
	if err != nil {
		t.Fatalf("Issue 1: %v", err)
	}
	second, err := uc.Issue(context.Background(), appHex, domain.TypeClockIn)
	if err != nil {
		t.Fatalf("Issue 2: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("token values must be unique")
	}
	if f.invalidated != 2 {
		t.Fatalf("each issue invalidates its predecessors, got %d", f.invalidated)
	}
}

func TestIssue_Guards(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		f := newQrFixture(domainApp.StatusApproved)
		uc := newQrUsecase(f)
		if _, err := uc.Issue(context.Background(), appHex, domain.Type("selfie")); !errors.Is(err, domain.ErrInvalidType) {
			t.Fatalf("want ErrInvalidType, got %v", err)
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newQrFixture(domainApp.StatusApproved)
		uc := newQrUsecase(f)
		if _, err := uc.Issue(context.Background(), "ffffffffffffffffffffffffffffffff", domain.TypeClockIn); !errors.Is(err, domainApp.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	for _, status := range []domainApp.Status{
		domainApp.StatusPending, domainApp.StatusRejected,
		domainApp.StatusCancelled, domainApp.StatusNoShow,
	} {
		t.Run("status "+string(status), func(t *testing.T) {
			f := newQrFixture(status)
			uc := newQrUsecase(f)
			if _, err := uc.Issue(context.Background(), appHex, domain.TypeClockIn); !errors.Is(err, domain.ErrNotIssuable) {
				t.Fatalf("want ErrNotIssuable, got %v", err)
			}
		})
	}
}

func TestRedeem_ClockIn(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	uc := newQrUsecase(f)

	issued, err := uc.Issue(context.Background(), appHex, domain.TypeClockIn)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	dto, err := uc.Redeem(context.Background(), issued.Token)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if dto.Type != string(domain.TypeClockIn) || dto.ApplicationID != appHex {
		t.Fatalf("bad redeem dto: %+v", dto)
	}
	// record is created on the fly and clocked in
	if f.rec == nil || f.rec.Status != domainAtt.StatusClockedIn {
		t.Fatalf("record not clocked in: %+v", f.rec)
	}
	if f.tok.UsedAt == nil {
		t.Fatalf("token must be burned")
	}
}

func TestRedeem_ClockOut(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	in := time.Now().UTC().Add(-8 * time.Hour)
	f.rec = &domainAtt.Record{
		ID: 200, RecordID: "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", ApplicationID: 100,
		TrainerID: 1, Status: domainAtt.StatusClockedIn, ClockInAt: &in, BreakMinutes: 60,
		ShiftDate: f.shift.ShiftDate,
	}
	uc := newQrUsecase(f)

	issued, err := uc.Issue(context.Background(), appHex, domain.TypeClockOut)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	dto, err := uc.Redeem(context.Background(), issued.Token)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if dto.Type != string(domain.TypeClockOut) {
		t.Fatalf("bad redeem dto: %+v", dto)
	}
	if f.rec.Status != domainAtt.StatusClockedOut {
		t.Fatalf("record not clocked out: %+v", f.rec)
	}
	if f.app.Status != domainApp.StatusCompleted {
		t.Fatalf("application must complete on clock-out, got %s", f.app.Status)
	}
}

func TestRedeem_ClockOutWithoutClockIn(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	uc := newQrUsecase(f)

	issued, err := uc.Issue(context.Background(), appHex, domain.TypeClockOut)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := uc.Redeem(context.Background(), issued.Token); !errors.Is(err, domainAtt.ErrNotClockedIn) {
		t.Fatalf("want ErrNotClockedIn, got %v", err)
	}
}

func TestRedeem_Guards(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		f := newQrFixture(domainApp.StatusApproved)
		uc := newQrUsecase(f)
		if _, err := uc.Redeem(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("want ErrInvalidToken, got %v", err)
		}
	})

	t.Run("already used", func(t *testing.T) {
		f := newQrFixture(domainApp.StatusApproved)
		used := time.Now().UTC()
		f.tok = &domain.QrToken{
			ID: 300, ApplicationID: 100, Token: "t-used", Type: domain.TypeClockIn,
			UsedAt: &used, ExpiresAt: used.Add(10 * time.Minute),
		}
		uc := newQrUsecase(f)
		if _, err := uc.Redeem(context.Background(), "t-used"); !errors.Is(err, domain.ErrAlreadyUsed) {
			t.Fatalf("want ErrAlreadyUsed, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newQrFixture(domainApp.StatusApproved)
		f.tok = &domain.QrToken{
			ID: 300, ApplicationID: 100, Token: "t-old", Type: domain.TypeClockIn,
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}
		uc := newQrUsecase(f)
		if _, err := uc.Redeem(context.Background(), "t-old"); !errors.Is(err, domain.ErrExpired) {
			t.Fatalf("want ErrExpired, got %v", err)
		}
	})
}

// Two concurrent redemptions of the same token: the conditional mark-used
// admits exactly one.
func TestRedeem_Race(t *testing.T) {
	f := newQrFixture(domainApp.StatusApproved)
	var mu sync.Mutex
	used := false

	r := f.repos()
	qr, ok := r.QrTokens.(*repomock.QrTokenRepo)
	if !ok {
		t.Fatal("unexpected qr token mock type")
	}
	// Hand each caller its own copy, the way a DB read would; the shared
	// state is only the conditional flip below.
	qr.GetByTokenFn = func(ctx context.Context, token string) (*domain.QrToken, error) {
		if token != "t-race" {
			return nil, domain.ErrInvalidToken
		}
		mu.Lock()
		defer mu.Unlock()
		tok := domain.QrToken{
			ID: 300, ApplicationID: 100, Token: "t-race", Type: domain.TypeClockIn,
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}
		if used {
			now := time.Now().UTC()
			tok.UsedAt = &now
		}
		return &tok, nil
	}
	qr.TryMarkUsedFn = func(ctx context.Context, id uint64, now time.Time) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		if used {
			return false, nil
		}
		used = true
		return true, nil
	}
	uc := NewUsecase(uowmock.Passthrough(r), zap.NewNop())

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Redeem(context.Background(), "t-race")
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrAlreadyUsed):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("want exactly one winner, got wins=%d losses=%d", wins, losses)
	}
}
