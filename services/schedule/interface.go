package schedule

import (
	"context"

	appointmentRepo "clinicbook/database/repository/appointment"

	"clinicbook/models"
)

// ScheduleService is the scheduling and reservation engine. All operations
// are request-scoped and stateless; clinic settings are loaded fresh (through
// the settings provider) at the top of every call.
type ScheduleService interface {
	// GetAvailability returns the date's candidate slots annotated with their
	// current availability. The result is a best-effort snapshot; the
	// authoritative check happens again inside CreateAppointment.
	GetAvailability(ctx context.Context, dateISO string) (*models.DayAvailability, error)

	// CreateAppointment atomically claims the slot starting at req.StartTime
	// on req.Date. At most one call ever succeeds per slot; concurrent losers
	// get ErrSlotTaken.
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)

	// DaySchedule returns all appointments for a date ordered by start time.
	DaySchedule(ctx context.Context, dateISO string) ([]models.Appointment, error)

	// UpdateStatus moves an appointment to a new status. Transitions are
	// unconstrained, and moving to cancelled or no_show does not release the
	// slot's reservation marker.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Settings SettingsProvider
	Repo     appointmentRepo.AppointmentRepository

	// BatchLimit caps the key count of a single store membership query.
	// Zero means the default.
	BatchLimit int
}

const defaultBatchLimit = 50

func (s *DefaultScheduleService) batchLimit() int {
	if s.BatchLimit > 0 {
		return s.BatchLimit
	}
	return defaultBatchLimit
}
