package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"

	"clinicbook/models"
)

// dayWindow builds the DateWindow for the clinic's configured timezone.
func dayWindow(cfg *models.ClinicSettings) (DateWindow, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid clinic timezone %q: %w", cfg.Timezone, err)
	}
	return DateWindow{Loc: loc, MaxDaysAhead: cfg.MaxDaysAhead}, nil
}

// daySlots re-derives the candidate slots for a date from the settings.
// Malformed work-hour or break values are operator misconfiguration, surfaced
// as a plain error rather than a coded input error.
func daySlots(dateISO string, cfg *models.ClinicSettings) ([]models.Slot, error) {
	workStart, err := ParseClock(cfg.WorkHours.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid work hours start: %w", err)
	}
	workEnd, err := ParseClock(cfg.WorkHours.End)
	if err != nil {
		return nil, fmt.Errorf("invalid work hours end: %w", err)
	}

	breaks := make([]MinuteRange, 0, len(cfg.Breaks))
	for _, b := range cfg.Breaks {
		start, err := ParseClock(b.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid break start: %w", err)
		}
		end, err := ParseClock(b.End)
		if err != nil {
			return nil, fmt.Errorf("invalid break end: %w", err)
		}
		breaks = append(breaks, MinuteRange{Start: start, End: end})
	}

	return GenerateSlots(dateISO, MinuteRange{Start: workStart, End: workEnd}, breaks, cfg.SlotMinutes), nil
}

func (s *DefaultScheduleService) DaySchedule(ctx context.Context, dateISO string) ([]models.Appointment, error) {
	if !isoDateRe.MatchString(dateISO) {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", dateISO); err != nil {
		return nil, ErrInvalidDate
	}
	appts, err := s.Repo.ListByDate(ctx, dateISO)
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", dateISO, err)
	}
	return appts, nil
}

func (s *DefaultScheduleService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	appt, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update appointment %s: %w", id, err)
	}
	return appt, nil
}
