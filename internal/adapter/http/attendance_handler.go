package http

import (
	"net/http"

	"trainershift-backend/internal/usecase/attendance"

	"github.com/labstack/echo/v4"
)

type AttendanceHandler struct{ uc *attendance.Usecase }

func NewAttendanceHandler(uc *attendance.Usecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type clockReq struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// geo returns the optional location; both coordinates must be present for
// it to count.
func (r clockReq) geo() *attendance.Geo {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &attendance.Geo{Lat: *r.Latitude, Lon: *r.Longitude}
}

func (h *AttendanceHandler) ClockIn(c echo.Context) error {
	var req clockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ClockIn(c.Request().Context(), c.Param("attendance_id"), req.geo())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AttendanceHandler) ClockOut(c echo.Context) error {
	var req clockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ClockOut(c.Request().Context(), c.Param("attendance_id"), req.geo())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type attendanceNoteReq struct {
	Note string `json:"note"`
}

func (h *AttendanceHandler) VerifyAttendance(c echo.Context) error {
	var req attendanceNoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Verify(c.Request().Context(), c.Param("attendance_id"), req.Note)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type disputeReq struct {
	Note string `json:"note" validate:"required"`
}

func (h *AttendanceHandler) DisputeAttendance(c echo.Context) error {
	var req disputeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Dispute(c.Request().Context(), c.Param("attendance_id"), req.Note)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
