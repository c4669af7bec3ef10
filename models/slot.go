package models

// Slot is a bookable interval on a single date. Slots are recomputed per
// request and never persisted; Key is the canonical "<date>_<HH:MM>" identity
// shared with the reservation marker and the appointment that claims it.
type Slot struct {
	Key       string `json:"key"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// AvailableSlot is a Slot annotated with its current availability.
type AvailableSlot struct {
	Key       string `json:"key"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// DayAvailability is the response payload for a day's availability query.
type DayAvailability struct {
	Date        string          `json:"date"`
	SlotMinutes int             `json:"slotMinutes"`
	Slots       []AvailableSlot `json:"slots"`
}
