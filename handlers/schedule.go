package handlers

import (
	"net/http"

	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the availability and appointment endpoints.
type ScheduleHandler struct {
	Svc    schedule.ScheduleService
	Logger *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

// respondScheduleError translates a scheduling error into an HTTP response.
// Anything without a known code is an internal failure and is reported
// generically, never echoed to the caller.
func respondScheduleError(c *gin.Context, logger *zap.Logger, err error) {
	code := schedule.CodeOf(err)
	switch code {
	case schedule.CodeInvalidDate, schedule.CodeInvalidTime, schedule.CodeInvalidName,
		schedule.CodeInvalidPhone, schedule.CodeInvalidReason, schedule.CodeInvalidStatus:
		utils.JSONError(c, http.StatusBadRequest, code, err.Error())
	case schedule.CodeDateOutOfRange, schedule.CodeInvalidSlot:
		utils.JSONError(c, http.StatusUnprocessableEntity, code, err.Error())
	case schedule.CodeSlotTaken:
		utils.JSONError(c, http.StatusConflict, code, err.Error())
	case schedule.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, code, err.Error())
	default:
		logger.Error("schedule operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
		})
	}
}

// GetAvailability handles GET /api/availability/:date.
func (h *ScheduleHandler) GetAvailability(c *gin.Context) {
	date := c.Param("date")
	if !dateRe.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, schedule.CodeInvalidDate, "date must be YYYY-MM-DD")
		return
	}

	day, err := h.Svc.GetAvailability(c.Request.Context(), date)
	if err != nil {
		respondScheduleError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// DaySchedule handles GET /api/appointments/day/:date, the staff view of a
// day's appointments ordered by start time.
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	date := c.Param("date")
	if !dateRe.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, schedule.CodeInvalidDate, "date must be YYYY-MM-DD")
		return
	}

	appts, err := h.Svc.DaySchedule(c.Request.Context(), date)
	if err != nil {
		respondScheduleError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}

// UpdateStatus handles PATCH /api/appointments/:id/status.
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, schedule.CodeInvalidStatus, "invalid request body")
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondScheduleError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
