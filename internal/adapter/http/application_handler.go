package http

import (
	"net/http"

	"trainershift-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	TrainerID string `json:"trainer_id" validate:"required,hex32"`
	ShiftID   string `json:"shift_id" validate:"required,hex32"`
}

func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		TrainerID: req.TrainerID,
		ShiftID:   req.ShiftID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type reviewApplicationReq struct {
	ReviewerID string `json:"reviewer_id" validate:"required"`
}

func (h *ApplicationHandler) ApproveApplication(c echo.Context) error {
	var req reviewApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("application_id"), req.ReviewerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) RejectApplication(c echo.Context) error {
	var req reviewApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("application_id"), req.ReviewerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelApplicationReq struct {
	ActorID string `json:"actor_id" validate:"required"`
	Reason  string `json:"reason"`
}

func (h *ApplicationHandler) CancelApplication(c echo.Context) error {
	var req cancelApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Cancel(c.Request().Context(), application.CancelInput{
		ApplicationID: c.Param("application_id"),
		Reason:        req.Reason,
		ActorID:       req.ActorID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) CompleteApplication(c echo.Context) error {
	dto, err := h.uc.Complete(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) MarkNoShow(c echo.Context) error {
	var req reviewApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.MarkNoShow(c.Request().Context(), c.Param("application_id"), req.ReviewerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
