package schedule

import (
	"testing"
	"time"
)

func fixedNow(iso string) func() time.Time {
	t, err := time.Parse("2006-01-02T15:04:05Z07:00", iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestDateWindowBoundaries(t *testing.T) {
	w := DateWindow{
		Loc:          time.UTC,
		MaxDaysAhead: 30,
		Now:          fixedNow("2024-01-01T12:00:00Z"),
	}

	cases := []struct {
		date     string
		wantCode string
	}{
		{"2024-01-01", ""},
		{"2024-01-31", ""},
		{"2024-02-01", CodeDateOutOfRange},
		{"2023-12-31", CodeDateOutOfRange},
		{"2024-1-5", CodeInvalidDate},
		{"01-01-2024", CodeInvalidDate},
		{"2024-02-30", CodeInvalidDate},
		{"", CodeInvalidDate},
	}
	for _, tc := range cases {
		err := w.Validate(tc.date)
		if tc.wantCode == "" {
			if err != nil {
				t.Errorf("Validate(%q): unexpected error %v", tc.date, err)
			}
			continue
		}
		if CodeOf(err) != tc.wantCode {
			t.Errorf("Validate(%q) = %v, want code %s", tc.date, err, tc.wantCode)
		}
	}
}

func TestDateWindowCrossesYearBoundary(t *testing.T) {
	w := DateWindow{
		Loc:          time.UTC,
		MaxDaysAhead: 20,
		Now:          fixedNow("2023-12-20T08:00:00Z"),
	}

	if got := w.LastAllowedISO(); got != "2024-01-09" {
		t.Fatalf("LastAllowedISO() = %q, want 2024-01-09", got)
	}
	if err := w.Validate("2024-01-09"); err != nil {
		t.Fatalf("last allowed date rejected: %v", err)
	}
	if err := w.Validate("2024-01-10"); CodeOf(err) != CodeDateOutOfRange {
		t.Fatalf("expected DATE_OUT_OF_RANGE, got %v", err)
	}
}

func TestDateWindowZeroDaysAhead(t *testing.T) {
	w := DateWindow{
		Loc:          time.UTC,
		MaxDaysAhead: 0,
		Now:          fixedNow("2024-03-15T23:30:00Z"),
	}

	if err := w.Validate("2024-03-15"); err != nil {
		t.Fatalf("today rejected: %v", err)
	}
	if err := w.Validate("2024-03-16"); CodeOf(err) != CodeDateOutOfRange {
		t.Fatalf("expected DATE_OUT_OF_RANGE for tomorrow, got %v", err)
	}
}

func TestDateWindowUsesClinicTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	// 02:00 UTC is still the previous civil day in Mexico City.
	w := DateWindow{
		Loc:          loc,
		MaxDaysAhead: 7,
		Now:          fixedNow("2024-06-15T02:00:00Z"),
	}

	if got := w.TodayISO(); got != "2024-06-14" {
		t.Fatalf("TodayISO() = %q, want 2024-06-14", got)
	}
	if err := w.Validate("2024-06-14"); err != nil {
		t.Fatalf("clinic-local today rejected: %v", err)
	}
}
