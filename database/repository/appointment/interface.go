package appointmentRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrMarkerExists signals that the reservation marker for a slot key already
// existed when a reservation was attempted. It is the expected outcome of a
// lost race, not a store failure.
var ErrMarkerExists = errors.New("reservation marker already exists")

// ErrNotFound signals a missing appointment record.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository persists reservation markers and appointment records.
//
// ExistingMarkerKeys and ActiveSlotKeys are membership queries; callers must
// keep each call's key set within the store's batch arity limit and merge
// results across chunks themselves.
type AppointmentRepository interface {
	// Reserve atomically creates the marker and the appointment. Both writes
	// commit together or not at all; if the marker already exists (read before
	// write, or a concurrent insert winning the race) it returns
	// ErrMarkerExists and persists nothing.
	Reserve(ctx context.Context, marker models.ReservationMarker, appt models.Appointment) error

	// ExistingMarkerKeys returns the subset of slotKeys that have a marker.
	ExistingMarkerKeys(ctx context.Context, slotKeys []string) (map[string]struct{}, error)

	// ActiveSlotKeys returns the subset of slotKeys referenced by an
	// appointment whose status still occupies the slot (booked or completed).
	ActiveSlotKeys(ctx context.Context, slotKeys []string) (map[string]struct{}, error)

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// ListByDate returns a date's appointments ordered by start time.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	// UpdateStatus sets the status of an appointment and returns the updated
	// record. Returns ErrNotFound for an unknown id.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}
