package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainApp "trainershift-backend/internal/domain/application"
	domainAtt "trainershift-backend/internal/domain/attendance"
	domainQr "trainershift-backend/internal/domain/qrtoken"
	"trainershift-backend/internal/domain/rateconfig"
	domainShift "trainershift-backend/internal/domain/shift"
	domainStore "trainershift-backend/internal/domain/store"
	domainTrainer "trainershift-backend/internal/domain/trainer"
)

// writeDomainError maps usecase sentinels onto the HTTP taxonomy:
// not-found → 404, state/capacity conflicts → 409, eligibility → 422,
// misconfiguration and unknowns → 500.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainTrainer.ErrNotFound),
		errors.Is(err, domainShift.ErrNotFound),
		errors.Is(err, domainApp.ErrNotFound),
		errors.Is(err, domainAtt.ErrNotFound),
		errors.Is(err, domainStore.ErrNotFound),
		errors.Is(err, domainQr.ErrInvalidToken):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainShift.ErrFull),
		errors.Is(err, domainShift.ErrNotOpen),
		errors.Is(err, domainApp.ErrDuplicate),
		errors.Is(err, domainApp.ErrNotPending),
		errors.Is(err, domainApp.ErrInvalidTransition),
		errors.Is(err, domainAtt.ErrInvalidState),
		errors.Is(err, domainAtt.ErrNotClockedIn),
		errors.Is(err, domainQr.ErrAlreadyUsed),
		errors.Is(err, domainQr.ErrExpired):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainTrainer.ErrInactive),
		errors.Is(err, domainTrainer.ErrBlankBlocked),
		errors.Is(err, domainTrainer.ErrInsufficientTenure),
		errors.Is(err, domainQr.ErrInvalidType),
		errors.Is(err, domainQr.ErrNotIssuable):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})

	case errors.Is(err, rateconfig.ErrNoRateConfig):
		// fatal misconfiguration, not a client problem
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
