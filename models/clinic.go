package models

// ClockRange is a same-day time window expressed as "HH:MM" wall-clock values.
type ClockRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// ClinicSettings is the singleton configuration record driving slot
// generation and the booking window. It is loaded fresh for every request
// (through the settings cache); a missing record is an operator error.
type ClinicSettings struct {
	SlotMinutes  int          `bson:"slotMinutes" json:"slotMinutes"`
	Timezone     string       `bson:"timezone" json:"timezone"` // IANA name, e.g. "America/Mexico_City"
	WorkHours    ClockRange   `bson:"workHours" json:"workHours"`
	Breaks       []ClockRange `bson:"breaks,omitempty" json:"breaks,omitempty"`
	MaxDaysAhead int          `bson:"maxDaysAhead" json:"maxDaysAhead"`
}
