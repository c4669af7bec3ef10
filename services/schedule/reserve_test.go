package schedule

import (
	"context"
	"sync"
	"testing"

	"clinicbook/models"
)

func bookingRequest(date, startTime string) models.AppointmentRequest {
	return models.AppointmentRequest{
		Date:        date,
		StartTime:   startTime,
		PatientName: "Maria Lopez",
		Phone:       "+52 55 1234 5678",
		Reason:      "general checkup",
	}
}

func TestCreateAppointmentSucceeds(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	appt, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "09:00"))
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if appt.ID == "" {
		t.Fatalf("appointment id not assigned")
	}
	if appt.SlotKey != date+"_09:00" {
		t.Fatalf("unexpected slot key %q", appt.SlotKey)
	}
	if appt.EndTime != "09:15" {
		t.Fatalf("end time %q not derived from the generated slot", appt.EndTime)
	}
	if appt.Status != models.StatusBooked || appt.Source != "patient" {
		t.Fatalf("unexpected status/source %s/%s", appt.Status, appt.Source)
	}
	if _, ok := repo.markers[appt.SlotKey]; !ok {
		t.Fatalf("reservation marker not persisted")
	}
}

func TestCreateAppointmentRejectsOffGridTime(t *testing.T) {
	svc := newTestService(newMockAppointmentRepo(), testSettings())

	// 09:05 is not on the 15-minute grid, regardless of availability.
	_, err := svc.CreateAppointment(context.Background(), bookingRequest(todayISO(), "09:05"))
	if CodeOf(err) != CodeInvalidSlot {
		t.Fatalf("expected INVALID_SLOT, got %v", err)
	}
}

func TestCreateAppointmentRejectsOutOfWindowDate(t *testing.T) {
	svc := newTestService(newMockAppointmentRepo(), testSettings())

	_, err := svc.CreateAppointment(context.Background(), bookingRequest("2020-01-01", "09:00"))
	if CodeOf(err) != CodeDateOutOfRange {
		t.Fatalf("expected DATE_OUT_OF_RANGE, got %v", err)
	}
}

func TestCreateAppointmentSecondClaimFails(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	if _, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "10:00")); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	_, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "10:00"))
	if CodeOf(err) != CodeSlotTaken {
		t.Fatalf("expected SLOT_TAKEN, got %v", err)
	}
}

func TestCreateAppointmentMutualExclusionUnderConcurrency(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	ids := make(chan string, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			appt, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "12:30"))
			results <- err
			if err == nil {
				ids <- appt.ID
			}
		}()
	}
	wg.Wait()
	close(results)
	close(ids)

	var successes, taken int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case CodeOf(err) == CodeSlotTaken:
			taken++
		default:
			t.Fatalf("unexpected error under contention: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 successful claim, got %d", successes)
	}
	if taken != attempts-1 {
		t.Fatalf("expected %d SLOT_TAKEN failures, got %d", attempts-1, taken)
	}

	active := repo.activeAppointmentsFor(date + "_12:30")
	if len(active) != 1 {
		t.Fatalf("expected exactly 1 active appointment after settling, got %d", len(active))
	}
	if id := <-ids; active[0].ID != id {
		t.Fatalf("winner id mismatch: %s vs %s", active[0].ID, id)
	}
}

func TestAvailabilityReflectsReservation(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	appt, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "14:15"))
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	day, err := svc.GetAvailability(context.Background(), date)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	for _, slot := range day.Slots {
		wantAvailable := slot.Key != appt.SlotKey
		if slot.Available != wantAvailable {
			t.Errorf("slot %s: available=%v, want %v", slot.Key, slot.Available, wantAvailable)
		}
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	appt, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "15:00"))
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("status not updated: %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, "archived"); CodeOf(err) != CodeInvalidStatus {
		t.Fatalf("expected INVALID_STATUS, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing-id", models.StatusCompleted); CodeOf(err) != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	// Cancellation does not release the marker; rebooking the slot still fails.
	if _, err := svc.CreateAppointment(context.Background(), bookingRequest(date, "15:00")); CodeOf(err) != CodeSlotTaken {
		t.Fatalf("expected SLOT_TAKEN after cancellation, got %v", err)
	}
}

func TestDayScheduleOrdersByStartTime(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := newTestService(repo, testSettings())
	date := todayISO()

	for _, start := range []string{"14:00", "09:15", "11:30"} {
		if _, err := svc.CreateAppointment(context.Background(), bookingRequest(date, start)); err != nil {
			t.Fatalf("CreateAppointment(%s): %v", start, err)
		}
	}

	appts, err := svc.DaySchedule(context.Background(), date)
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}
	if len(appts) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(appts))
	}
	want := []string{"09:15", "11:30", "14:00"}
	for i, appt := range appts {
		if appt.StartTime != want[i] {
			t.Fatalf("appointment %d starts at %s, want %s", i, appt.StartTime, want[i])
		}
	}

	if _, err := svc.DaySchedule(context.Background(), "31-12-2024"); CodeOf(err) != CodeInvalidDate {
		t.Fatalf("expected INVALID_DATE, got %v", err)
	}
}
