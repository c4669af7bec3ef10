package schedule

import (
	"regexp"
	"time"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateWindow computes the permitted booking horizon [today, today+MaxDaysAhead]
// as civil dates in the clinic's timezone. Now is injectable for tests and
// defaults to time.Now.
type DateWindow struct {
	Loc          *time.Location
	MaxDaysAhead int
	Now          func() time.Time
}

func (w DateWindow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// TodayISO returns the current civil date in the clinic timezone.
func (w DateWindow) TodayISO() string {
	return w.now().In(w.Loc).Format("2006-01-02")
}

// LastAllowedISO returns the last bookable civil date. The arithmetic is on
// calendar days, so month and year boundaries roll over and daylight-saving
// shifts cannot skip or repeat a date.
func (w DateWindow) LastAllowedISO() string {
	n := w.now().In(w.Loc)
	return time.Date(n.Year(), n.Month(), n.Day()+w.MaxDaysAhead, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Validate rejects malformed dates with ErrInvalidDate and dates outside the
// horizon with ErrDateOutOfRange. Both sides of the comparison are zero-padded
// ISO dates, so plain string ordering is the date ordering.
func (w DateWindow) Validate(dateISO string) error {
	if !isoDateRe.MatchString(dateISO) {
		return ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", dateISO); err != nil {
		return ErrInvalidDate
	}
	if dateISO < w.TodayISO() || dateISO > w.LastAllowedISO() {
		return ErrDateOutOfRange
	}
	return nil
}
