package http

import (
	"net/http"

	domain "trainershift-backend/internal/domain/qrtoken"
	"trainershift-backend/internal/usecase/qrtoken"

	"github.com/labstack/echo/v4"
)

type QrTokenHandler struct{ uc *qrtoken.Usecase }

func NewQrTokenHandler(uc *qrtoken.Usecase) *QrTokenHandler {
	return &QrTokenHandler{uc: uc}
}

type issueTokenReq struct {
	Type string `json:"type" validate:"required,oneof=clock_in clock_out"`
}

func (h *QrTokenHandler) IssueToken(c echo.Context) error {
	var req issueTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Issue(c.Request().Context(), c.Param("application_id"), domain.Type(req.Type))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type redeemTokenReq struct {
	Token string `json:"token" validate:"required"`
}

func (h *QrTokenHandler) RedeemToken(c echo.Context) error {
	var req redeemTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Redeem(c.Request().Context(), req.Token)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
