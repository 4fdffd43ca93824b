// Package ledger implements the shift lifecycle over the in-memory
// attendance ledger. Every operation is a pure function on a shift
// slice; persistence is the caller's concern.
//
// Per worker the ledger is a two-state machine, OUT and ACTIVE:
// clocking in while ACTIVE and clocking out while OUT are both
// rejected, so at most one open shift exists per worker at any time.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shiftclock/shiftclock/internal/model"
)

var (
	// ErrAlreadyActive rejects a clock-in while a shift is open.
	ErrAlreadyActive = errors.New("shift already active")
	// ErrNoActiveShift rejects a clock-out with no open shift.
	ErrNoActiveShift = errors.New("no active shift")
	// ErrNoSuchShift rejects a correction aimed at a row that does
	// not exist.
	ErrNoSuchShift = errors.New("no such shift")
)

// FindActive returns the index of the most recent open shift for the
// worker, or -1 when the worker is clocked out. Matching uses the
// normalized name.
func FindActive(shifts []model.Shift, worker string) int {
	key := model.NormalizeName(worker)
	for i := len(shifts) - 1; i >= 0; i-- {
		if shifts[i].Open() && model.NormalizeName(shifts[i].Worker) == key {
			return i
		}
	}
	return -1
}

// ClockIn appends a new open shift for the worker starting at the
// given time.
func ClockIn(shifts []model.Shift, worker string, at time.Time) ([]model.Shift, error) {
	name := strings.TrimSpace(worker)
	if FindActive(shifts, name) >= 0 {
		return shifts, fmt.Errorf("%s: %w", name, ErrAlreadyActive)
	}
	return append(shifts, model.Shift{Worker: name, ClockIn: at}), nil
}

// ClockOut closes the worker's active shift at the given time and
// returns the index of the closed row.
func ClockOut(shifts []model.Shift, worker string, at time.Time) ([]model.Shift, int, error) {
	i := FindActive(shifts, worker)
	if i < 0 {
		return shifts, -1, fmt.Errorf("%s: %w", strings.TrimSpace(worker), ErrNoActiveShift)
	}
	if err := shifts[i].Close(at); err != nil {
		return shifts, -1, err
	}
	return shifts, i, nil
}

// Correct rewrites both boundaries of the shift at row id and
// recomputes its total. The prior values are not retained. On any
// failure the ledger is returned unchanged.
func Correct(shifts []model.Shift, id int, newIn, newOut time.Time) ([]model.Shift, error) {
	if id < 0 || id >= len(shifts) {
		return shifts, fmt.Errorf("row %d: %w", id, ErrNoSuchShift)
	}
	// Rebuild the row on a copy so a rejected range leaves it intact.
	s := shifts[id]
	s.ClockIn = newIn
	s.ClockOut = nil
	s.TotalHours = nil
	if err := s.Close(newOut); err != nil {
		return shifts, err
	}
	shifts[id] = s
	return shifts, nil
}

// Action describes which punch PunchAt performed.
type Action int

const (
	ActionClockIn Action = iota
	ActionClockOut
)

// String returns the action name for display.
func (a Action) String() string {
	if a == ActionClockOut {
		return "clock-out"
	}
	return "clock-in"
}

// PunchAt clocks the worker in or out at an arbitrary time, chosen by
// whether a shift is currently active. Validation matches ClockIn and
// ClockOut.
func PunchAt(shifts []model.Shift, worker string, at time.Time) ([]model.Shift, Action, error) {
	if FindActive(shifts, worker) >= 0 {
		out, _, err := ClockOut(shifts, worker, at)
		return out, ActionClockOut, err
	}
	out, err := ClockIn(shifts, worker, at)
	return out, ActionClockIn, err
}
