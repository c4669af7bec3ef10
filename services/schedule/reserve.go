package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultScheduleService) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	cfg, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	window, err := dayWindow(cfg)
	if err != nil {
		return nil, err
	}
	if err := window.Validate(req.Date); err != nil {
		return nil, err
	}

	// Re-derive the day's slots and require an exact start-time match. The
	// slot's end time comes from the generator, never from the caller.
	slots, err := daySlots(req.Date, cfg)
	if err != nil {
		return nil, err
	}
	var chosen *models.Slot
	for i := range slots {
		if slots[i].StartTime == req.StartTime {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrInvalidSlot
	}

	now := time.Now().UTC()
	appt := models.Appointment{
		ID:            uuid.New().String(),
		Date:          req.Date,
		StartTime:     chosen.StartTime,
		EndTime:       chosen.EndTime,
		Status:        models.StatusBooked,
		PatientName:   strings.TrimSpace(req.PatientName),
		Phone:         strings.TrimSpace(req.Phone),
		Reason:        strings.TrimSpace(req.Reason),
		Source:        "patient",
		SlotKey:       chosen.Key,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	marker := models.ReservationMarker{SlotKey: chosen.Key, CreatedAt: now}

	if err := s.Repo.Reserve(ctx, marker, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrMarkerExists) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("reserve slot %s: %w", chosen.Key, err)
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("slotKey", appt.SlotKey))
	return &appt, nil
}
