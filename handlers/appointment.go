package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// Boundary validation. The scheduling engine assumes these already hold
// before it runs, so every rule is enforced here, ahead of any store access.
var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9 \-]{7,15}$`)
)

const maxReasonLength = 500

func validateAppointmentRequest(req *models.AppointmentRequest) *schedule.Error {
	if !dateRe.MatchString(req.Date) {
		return schedule.ErrInvalidDate
	}
	if !timeRe.MatchString(req.StartTime) {
		return schedule.ErrInvalidTime
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.PatientName)) < 2 {
		return schedule.ErrInvalidName
	}
	if !phoneRe.MatchString(strings.TrimSpace(req.Phone)) {
		return schedule.ErrInvalidPhone
	}
	if utf8.RuneCountInString(req.Reason) > maxReasonLength {
		return schedule.ErrInvalidReason
	}
	return nil
}

// CreateAppointment handles POST /api/appointments.
func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if verr := validateAppointmentRequest(&req); verr != nil {
		utils.JSONError(c, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		respondScheduleError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointmentId": appt.ID,
		"slotKey":       appt.SlotKey,
	})
}
