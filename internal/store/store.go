// Package store persists the attendance ledger and the
// authorized-worker whitelist as CSV files under a single data
// directory. Expected write volume is a handful of events per day, so
// every save is a full overwrite of the file; there is no journal and
// no cross-process locking, and concurrent writers race last-wins.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shiftclock/shiftclock/internal/model"
)

// ErrStorage wraps any failure to read or parse a persisted file.
var ErrStorage = errors.New("storage error")

const (
	ledgerFile  = "attendance.csv"
	workersFile = "workers.csv"
)

var (
	ledgerHeader  = []string{"worker_name", "clock_in", "clock_out", "total_hours"}
	workersHeader = []string{"worker_name"}

	// DefaultWorkers seeds the whitelist on first run.
	DefaultWorkers = []string{"Dana", "Omer"}
)

// Store reads and writes the two persisted tables.
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default data directory (~/.shiftclock).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".shiftclock"), nil
}

// LoadLedger reads the persisted ledger. A missing file is an empty
// ledger; a file that cannot be parsed is a storage error.
func (s *Store) LoadLedger() ([]model.Shift, error) {
	path := filepath.Join(s.dir, ledgerFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Shift{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, path, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStorage, path, err)
	}
	if len(rows) == 0 {
		return []model.Shift{}, nil
	}
	if !equalRow(rows[0], ledgerHeader) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", ErrStorage, path, rows[0])
	}

	shifts := make([]model.Shift, 0, len(rows)-1)
	for n, row := range rows[1:] {
		sh, err := parseShiftRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", ErrStorage, path, n+2, err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, nil
}

func parseShiftRow(row []string) (model.Shift, error) {
	in, err := model.ParseStamp(row[1])
	if err != nil {
		return model.Shift{}, err
	}
	sh := model.Shift{Worker: strings.TrimSpace(row[0]), ClockIn: in}

	if strings.TrimSpace(row[2]) != "" {
		out, err := model.ParseStamp(row[2])
		if err != nil {
			return model.Shift{}, err
		}
		sh.ClockOut = &out
	}
	if strings.TrimSpace(row[3]) != "" {
		h, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return model.Shift{}, fmt.Errorf("invalid total_hours %q: %v", row[3], err)
		}
		sh.TotalHours = &h
	} else if sh.ClockOut != nil {
		// Hand-edited closed row missing its total: rederive it so a
		// closed shift always carries one.
		h := model.Hours(sh.ClockIn, *sh.ClockOut)
		sh.TotalHours = &h
	}
	return sh, nil
}

// SaveLedger sanitizes the records and performs a full overwrite of
// the persisted ledger. Sanitation drops rows with an empty worker
// name or missing clock-in and clamps a negative total to zero;
// invalid ranges are already rejected at the mutating operation, so
// the clamp only backstops hand-edited files.
func (s *Store) SaveLedger(shifts []model.Shift) error {
	clean := Sanitize(shifts)
	data, err := MarshalLedger(clean)
	if err != nil {
		return err
	}
	return s.writeFile(ledgerFile, data)
}

// Sanitize applies the save-time cleaning rules and returns the
// cleaned copy.
func Sanitize(shifts []model.Shift) []model.Shift {
	clean := make([]model.Shift, 0, len(shifts))
	for _, sh := range shifts {
		if model.NormalizeName(sh.Worker) == "" || sh.ClockIn.IsZero() {
			continue
		}
		if sh.TotalHours != nil && *sh.TotalHours < 0 {
			zero := 0.0
			sh.TotalHours = &zero
		}
		clean = append(clean, sh)
	}
	return clean
}

// MarshalLedger renders shifts in the persisted CSV format. The same
// bytes are written to disk, exported, and embedded in assistant
// prompts.
func MarshalLedger(shifts []model.Shift) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLedger(&buf, shifts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLedger(w io.Writer, shifts []model.Shift) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("writing ledger header: %w", err)
	}
	for _, sh := range shifts {
		row := []string{strings.TrimSpace(sh.Worker), model.FormatStamp(sh.ClockIn), "", ""}
		if sh.ClockOut != nil {
			row[2] = model.FormatStamp(*sh.ClockOut)
		}
		if sh.TotalHours != nil {
			row[3] = strconv.FormatFloat(*sh.TotalHours, 'f', 2, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing ledger row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadAuthorized reads the whitelist. On first run the file is seeded
// with the default names and the seed is persisted.
func (s *Store) LoadAuthorized() ([]string, error) {
	path := filepath.Join(s.dir, workersFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.SaveAuthorized(DefaultWorkers); err != nil {
			return nil, err
		}
		return append([]string(nil), DefaultWorkers...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, path, err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStorage, path, err)
	}
	if len(rows) == 0 || !equalRow(rows[0], workersHeader) {
		return nil, fmt.Errorf("%w: %s: unexpected header", ErrStorage, path)
	}

	names := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// SaveAuthorized performs a full overwrite of the whitelist, keeping
// one entry per normalized name (first spelling wins).
func (s *Store) SaveAuthorized(names []string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(workersHeader); err != nil {
		return fmt.Errorf("writing whitelist header: %w", err)
	}
	seen := map[string]bool{}
	for _, name := range names {
		key := model.NormalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if err := cw.Write([]string{strings.TrimSpace(name)}); err != nil {
			return fmt.Errorf("writing whitelist row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return s.writeFile(workersFile, buf.Bytes())
}

// writeFile atomically replaces the named file: write to a temp file,
// then rename over the target.
func (s *Store) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func equalRow(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}
