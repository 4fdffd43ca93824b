package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

func stamp(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := model.ParseStamp(s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestClockInOutAlternation(t *testing.T) {
	// Noa clocks in at 09:00, is rejected at 09:30, clocks out at
	// 17:30 for 8.5 hours.
	var shifts []model.Shift
	var err error

	shifts, err = ledger.ClockIn(shifts, "Noa", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatalf("first clock-in: %v", err)
	}

	_, err = ledger.ClockIn(shifts, "Noa", stamp(t, "2024-01-01 09:30"))
	if !errors.Is(err, ledger.ErrAlreadyActive) {
		t.Fatalf("second clock-in: err = %v, want ErrAlreadyActive", err)
	}

	shifts, idx, err := ledger.ClockOut(shifts, "Noa", stamp(t, "2024-01-01 17:30"))
	if err != nil {
		t.Fatalf("clock-out: %v", err)
	}
	if got := *shifts[idx].TotalHours; got != 8.5 {
		t.Errorf("TotalHours = %v, want 8.5", got)
	}

	// Out again: rejected, then a fresh clock-in is accepted.
	_, _, err = ledger.ClockOut(shifts, "Noa", stamp(t, "2024-01-01 18:00"))
	if !errors.Is(err, ledger.ErrNoActiveShift) {
		t.Fatalf("clock-out while out: err = %v, want ErrNoActiveShift", err)
	}
	if _, err := ledger.ClockIn(shifts, "Noa", stamp(t, "2024-01-02 09:00")); err != nil {
		t.Fatalf("clock-in after clock-out: %v", err)
	}
}

func TestClockOutBeforeClockIn(t *testing.T) {
	shifts, err := ledger.ClockIn(nil, "Noa", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = ledger.ClockOut(shifts, "Noa", stamp(t, "2024-01-01 08:00"))
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if !shifts[0].Open() {
		t.Error("rejected clock-out must leave the shift open")
	}
}

func TestFindActiveNormalizesNames(t *testing.T) {
	shifts, err := ledger.ClockIn(nil, "Dana", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}

	if i := ledger.FindActive(shifts, "dana "); i != 0 {
		t.Errorf("FindActive(%q) = %d, want 0", "dana ", i)
	}
	if i := ledger.FindActive(shifts, "Omer"); i != -1 {
		t.Errorf("FindActive(%q) = %d, want -1", "Omer", i)
	}
}

func TestWorkersTrackIndependently(t *testing.T) {
	var shifts []model.Shift
	var err error

	shifts, err = ledger.ClockIn(shifts, "Dana", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}
	shifts, err = ledger.ClockIn(shifts, "Omer", stamp(t, "2024-01-01 10:00"))
	if err != nil {
		t.Fatalf("second worker's clock-in: %v", err)
	}

	shifts, _, err = ledger.ClockOut(shifts, "Dana", stamp(t, "2024-01-01 17:00"))
	if err != nil {
		t.Fatal(err)
	}
	if i := ledger.FindActive(shifts, "Omer"); i != 1 {
		t.Errorf("Omer's shift should still be active, FindActive = %d", i)
	}
}

func TestCorrect(t *testing.T) {
	shifts, err := ledger.ClockIn(nil, "Dana", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}
	shifts, _, err = ledger.ClockOut(shifts, "Dana", stamp(t, "2024-01-01 17:00"))
	if err != nil {
		t.Fatal(err)
	}

	shifts, err = ledger.Correct(shifts, 0, stamp(t, "2024-01-01 08:00"), stamp(t, "2024-01-01 16:30"))
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if got := *shifts[0].TotalHours; got != 8.5 {
		t.Errorf("TotalHours after correction = %v, want 8.5", got)
	}
}

func TestCorrectRejectsInvalidRange(t *testing.T) {
	shifts, err := ledger.ClockIn(nil, "Dana", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}
	shifts, _, err = ledger.ClockOut(shifts, "Dana", stamp(t, "2024-01-01 17:00"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ledger.Correct(shifts, 0, stamp(t, "2024-01-01 18:00"), stamp(t, "2024-01-01 10:00"))
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if !shifts[0].ClockIn.Equal(stamp(t, "2024-01-01 09:00")) || *shifts[0].TotalHours != 8 {
		t.Error("rejected correction must leave the record unchanged")
	}
}

func TestCorrectRejectsUnknownRow(t *testing.T) {
	for _, id := range []int{-1, 0, 5} {
		_, err := ledger.Correct(nil, id, stamp(t, "2024-01-01 09:00"), stamp(t, "2024-01-01 10:00"))
		if !errors.Is(err, ledger.ErrNoSuchShift) {
			t.Errorf("Correct(row %d): err = %v, want ErrNoSuchShift", id, err)
		}
	}
}

func TestPunchAt(t *testing.T) {
	shifts, action, err := ledger.PunchAt(nil, "Dana", stamp(t, "2024-01-01 09:00"))
	if err != nil {
		t.Fatal(err)
	}
	if action != ledger.ActionClockIn {
		t.Errorf("first punch action = %v, want clock-in", action)
	}

	shifts, action, err = ledger.PunchAt(shifts, "Dana", stamp(t, "2024-01-01 17:00"))
	if err != nil {
		t.Fatal(err)
	}
	if action != ledger.ActionClockOut {
		t.Errorf("second punch action = %v, want clock-out", action)
	}
	if *shifts[0].TotalHours != 8 {
		t.Errorf("TotalHours = %v, want 8", *shifts[0].TotalHours)
	}

	// Punch at a time before the open shift is rejected like clock-out.
	shifts, _, err = ledger.PunchAt(shifts, "Dana", stamp(t, "2024-01-02 09:00"))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ledger.PunchAt(shifts, "Dana", stamp(t, "2024-01-02 08:00"))
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}
