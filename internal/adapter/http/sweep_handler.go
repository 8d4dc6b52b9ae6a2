package http

import (
	"net/http"

	"trainershift-backend/internal/usecase/blankstatus"
	"trainershift-backend/internal/usecase/escalation"

	"github.com/labstack/echo/v4"
)

// SweepHandler exposes the scheduler-triggered maintenance jobs under
// /internal; in production these sit behind network-level auth.
type SweepHandler struct {
	blank      *blankstatus.Usecase
	escalation *escalation.Usecase
}

func NewSweepHandler(blank *blankstatus.Usecase, esc *escalation.Usecase) *SweepHandler {
	return &SweepHandler{blank: blank, escalation: esc}
}

func (h *SweepHandler) RunBlankStatusSweep(c echo.Context) error {
	updated, err := h.blank.RunSweep(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": updated})
}

func (h *SweepHandler) RunEmergencySweep(c echo.Context) error {
	escalated, err := h.escalation.RunSweep(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"escalated": escalated})
}
