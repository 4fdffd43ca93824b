// Package report aggregates and filters closed shifts for the manager
// views. Open shifts stay in the raw ledger but never appear in
// summaries or filtered listings.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shiftclock/shiftclock/internal/model"
)

// Period selects the grouping granularity of a summary.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod converts a user-supplied grouping name.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("unknown period %q (want day, week or month)", s)
}

// Total is one summary bucket: a worker's summed hours for one period.
type Total struct {
	Worker string
	Key    string // "2006-01-02" for day and week (week start), "2006-01" for month
	Hours  float64
}

// WeekStart returns midnight of the Sunday on or before t. The week
// boundary is fixed at Sunday, so a shift clocked in late Saturday
// belongs to the week that started the previous Sunday.
func WeekStart(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func periodKey(p Period, t time.Time) string {
	switch p {
	case PeriodWeek:
		return WeekStart(t).Format("2006-01-02")
	case PeriodMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// Summarize groups closed shifts by worker and by the period of their
// clock-in, summing total hours. Results are sorted by worker then
// period key.
func Summarize(shifts []model.Shift, p Period) []Total {
	type bucket struct {
		worker string // normalized
		key    string
	}
	sums := map[bucket]float64{}
	display := map[string]string{}
	for _, sh := range shifts {
		if sh.Open() || sh.TotalHours == nil {
			continue
		}
		norm := model.NormalizeName(sh.Worker)
		if _, ok := display[norm]; !ok {
			display[norm] = strings.TrimSpace(sh.Worker)
		}
		sums[bucket{norm, periodKey(p, sh.ClockIn)}] += *sh.TotalHours
	}

	totals := make([]Total, 0, len(sums))
	for b, h := range sums {
		totals = append(totals, Total{
			Worker: display[b.worker],
			Key:    b.key,
			Hours:  math.Round(h*100) / 100,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Worker != b.Worker {
			return model.NormalizeName(a.Worker) < model.NormalizeName(b.Worker)
		}
		return a.Key < b.Key
	})
	return totals
}

// Options narrows a listing of closed shifts. Zero fields match
// everything.
type Options struct {
	Worker  string        // match by normalized name
	Month   string        // "2006-01"
	Weekday *time.Weekday // weekday of the clock-in
}

// Matches reports whether a closed shift passes every set option.
// Open shifts never match.
func Matches(sh model.Shift, opts Options) bool {
	if sh.Open() {
		return false
	}
	if key := model.NormalizeName(opts.Worker); key != "" && model.NormalizeName(sh.Worker) != key {
		return false
	}
	if opts.Month != "" && sh.ClockIn.Format("2006-01") != opts.Month {
		return false
	}
	if opts.Weekday != nil && sh.ClockIn.Weekday() != *opts.Weekday {
		return false
	}
	return true
}

// Filter returns the closed shifts matching every set option, in
// ledger order.
func Filter(shifts []model.Shift, opts Options) []model.Shift {
	var out []model.Shift
	for _, sh := range shifts {
		if Matches(sh, opts) {
			out = append(out, sh)
		}
	}
	return out
}

// ParseWeekday converts a weekday name ("sunday" .. "saturday").
func ParseWeekday(s string) (time.Weekday, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == want {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// FlagAnomalies returns the closed shifts whose total strictly exceeds
// the threshold, for the excessive-shift-length indicator.
func FlagAnomalies(shifts []model.Shift, thresholdHours float64) []model.Shift {
	var out []model.Shift
	for _, sh := range shifts {
		if IsAnomaly(sh, thresholdHours) {
			out = append(out, sh)
		}
	}
	return out
}

// IsAnomaly reports whether one closed shift exceeds the threshold.
func IsAnomaly(sh model.Shift, thresholdHours float64) bool {
	return !sh.Open() && sh.TotalHours != nil && *sh.TotalHours > thresholdHours
}
