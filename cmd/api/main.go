package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "trainershift-backend/internal/adapter/http"
	"trainershift-backend/internal/adapter/middleware"
	"trainershift-backend/internal/adapter/repository/mysql"
	"trainershift-backend/internal/config"
	"trainershift-backend/internal/infrastructure/cache"
	"trainershift-backend/internal/infrastructure/db"
	"trainershift-backend/internal/notify"
	appuc "trainershift-backend/internal/usecase/application"
	attuc "trainershift-backend/internal/usecase/attendance"
	"trainershift-backend/internal/usecase/blankstatus"
	"trainershift-backend/internal/usecase/escalation"
	qruc "trainershift-backend/internal/usecase/qrtoken"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	uow := mysql.NewGormUoW(gdb)
	notifier := notify.NewLogNotifier(logger)

	applications := appuc.NewUsecase(uow, notifier, logger)
	attendances := attuc.NewUsecase(uow, logger)
	qrTokens := qruc.NewUsecase(uow, logger)
	blankSweep := blankstatus.NewUsecase(
		mysql.NewTrainerRepository(gdb), mysql.NewBlankRuleRepository(gdb), logger)
	emergencySweep := escalation.NewUsecase(
		mysql.NewShiftRepository(gdb), notifier, logger, cfg.EmergencyBonusDefault)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(applications)
	attH := httpadp.NewAttendanceHandler(attendances)
	qrH := httpadp.NewQrTokenHandler(qrTokens)
	sweepH := httpadp.NewSweepHandler(blankSweep, emergencySweep)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	// routes
	e.GET("/health", h.Health)

	apps := e.Group("/applications")
	apps.POST("", appH.SubmitApplication, idemp)
	apps.GET("/:application_id", appH.GetApplication)
	apps.POST("/:application_id/approve", appH.ApproveApplication, idemp)
	apps.POST("/:application_id/reject", appH.RejectApplication, idemp)
	apps.POST("/:application_id/cancel", appH.CancelApplication, idemp)
	apps.POST("/:application_id/complete", appH.CompleteApplication, idemp)
	apps.POST("/:application_id/no-show", appH.MarkNoShow, idemp)
	apps.POST("/:application_id/qr-tokens", qrH.IssueToken, idemp)

	atts := e.Group("/attendances")
	atts.POST("/:attendance_id/clock-in", attH.ClockIn, idemp)
	atts.POST("/:attendance_id/clock-out", attH.ClockOut, idemp)
	atts.POST("/:attendance_id/verify", attH.VerifyAttendance, idemp)
	atts.POST("/:attendance_id/dispute", attH.DisputeAttendance, idemp)

	e.POST("/qr-tokens/redeem", qrH.RedeemToken)

	// scheduler-facing; keep off the public gateway
	internal := e.Group("/internal/sweeps")
	internal.POST("/blank-status", sweepH.RunBlankStatusSweep)
	internal.POST("/emergency", sweepH.RunEmergencySweep)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
