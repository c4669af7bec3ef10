package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"clinicbook/models"
)

// MinuteRange is a half-open-ish minute-of-day interval used for work hours
// and break windows once the "HH:MM" settings values have been parsed.
type MinuteRange struct {
	Start int
	End   int
}

// GenerateSlots produces the ordered candidate slots for one date: steps of
// slotMinutes covering [workStart, workEnd], earliest first. A slot is kept
// only if it fits entirely before workEnd and does not intersect any break.
// Breaks may be unsorted, duplicated or overlapping; each one is applied
// independently. The function is pure: identical input yields identical
// output, which lets the reservation path re-derive a chosen slot's bounds.
func GenerateSlots(dateISO string, work MinuteRange, breaks []MinuteRange, slotMinutes int) []models.Slot {
	if slotMinutes <= 0 || work.Start >= work.End {
		return nil
	}

	var slots []models.Slot
	for start := work.Start; start+slotMinutes <= work.End; start += slotMinutes {
		end := start + slotMinutes
		if intersectsAnyBreak(start, end, breaks) {
			continue
		}
		startClock := FormatClock(start)
		slots = append(slots, models.Slot{
			Key:       dateISO + "_" + startClock,
			StartTime: startClock,
			EndTime:   FormatClock(end),
		})
	}
	return slots
}

// intersectsAnyBreak applies the open-overlap test: touching a break at an
// endpoint does not count as an intersection.
func intersectsAnyBreak(start, end int, breaks []MinuteRange) bool {
	for _, b := range breaks {
		if start < b.End && end > b.Start {
			return true
		}
	}
	return false
}

// ParseClock converts an "HH:MM" value to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes from midnight as a zero-padded "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
