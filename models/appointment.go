package models

import "time"

// Appointment statuses. "booked" and "completed" count against a slot's
// availability; "cancelled" and "no_show" do not.
const (
	StatusBooked    = "booked"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// ActiveStatuses are the statuses that keep a slot occupied.
var ActiveStatuses = []string{StatusBooked, StatusCompleted}

// IsValidStatus reports whether s is one of the known appointment statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment is a confirmed booking record. It is created only inside the
// reservation transaction, together with its marker; afterwards only Status
// (and LastUpdatedAt) change, through the staff workflow.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime     string    `bson:"startTime" json:"startTime"`
	EndTime       string    `bson:"endTime" json:"endTime"`
	Status        string    `bson:"status" json:"status"`
	PatientName   string    `bson:"patientName" json:"patientName"`
	Phone         string    `bson:"phone" json:"phone"`
	Reason        string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Source        string    `bson:"source" json:"source"` // e.g. "patient", "staff"
	SlotKey       string    `bson:"slotKey" json:"slotKey"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	LastUpdatedAt time.Time `bson:"lastUpdatedAt" json:"lastUpdatedAt"`
}

// AppointmentRequest carries the patient-facing booking input.
type AppointmentRequest struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	PatientName string `json:"patientName"`
	Phone       string `json:"phone"`
	Reason      string `json:"reason,omitempty"`
}
