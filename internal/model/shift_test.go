package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shiftclock/shiftclock/internal/model"
)

func TestHours(t *testing.T) {
	tests := []struct {
		in   string
		out  string
		want float64
	}{
		{"2024-01-01 09:00", "2024-01-01 17:30", 8.5},
		{"2024-01-01 09:00", "2024-01-01 09:00", 0},
		{"2024-01-01 09:00", "2024-01-01 09:10", 0.17},
		{"2024-01-06 23:00", "2024-01-07 07:00", 8},
		{"2024-01-01 00:00", "2024-01-02 00:00", 24},
	}
	for _, tt := range tests {
		in := mustStamp(t, tt.in)
		out := mustStamp(t, tt.out)
		if got := model.Hours(in, out); got != tt.want {
			t.Errorf("Hours(%s, %s) = %v, want %v", tt.in, tt.out, got, tt.want)
		}
	}
}

func TestCloseComputesTotal(t *testing.T) {
	sh := model.Shift{Worker: "Noa", ClockIn: mustStamp(t, "2024-01-01 09:00")}
	if !sh.Open() {
		t.Fatal("new shift should be open")
	}
	if err := sh.Close(mustStamp(t, "2024-01-01 17:30")); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if sh.Open() {
		t.Error("closed shift reported open")
	}
	if sh.TotalHours == nil || *sh.TotalHours != 8.5 {
		t.Errorf("TotalHours = %v, want 8.5", sh.TotalHours)
	}
}

func TestCloseRejectsEarlierTime(t *testing.T) {
	sh := model.Shift{Worker: "Noa", ClockIn: mustStamp(t, "2024-01-01 09:00")}
	err := sh.Close(mustStamp(t, "2024-01-01 08:00"))
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Fatalf("Close with earlier time: err = %v, want ErrInvalidRange", err)
	}
	if !sh.Open() || sh.TotalHours != nil {
		t.Error("rejected close must leave the shift unchanged")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Dana", "dana"},
		{"dana ", "dana"},
		{"  OMER  ", "omer"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := model.NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStamp(t *testing.T) {
	ts, err := model.ParseStamp("2024-01-01 09:00")
	if err != nil {
		t.Fatalf("ParseStamp: %v", err)
	}
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("ParseStamp = %v, want %v", ts, want)
	}

	for _, bad := range []string{"", "2024-01-01", "01/01/2024 09:00", "2024-01-01 09:00:30"} {
		if _, err := model.ParseStamp(bad); err == nil {
			t.Errorf("ParseStamp(%q) should fail", bad)
		}
	}
}

func mustStamp(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := model.ParseStamp(s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}
