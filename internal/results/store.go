// Package results persists trial records to the comma-delimited
// columnar result file consumed by downstream ML training.
package results

// #region imports
import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// #endregion imports

// #region header

// Header is the exact result-file column order. Written once on file
// creation, never again.
var Header = []string{
	"Position X", "Position Y", "Position Z",
	"Orientation Roll", "Orientation Pitch", "Orientation Yaw",
	"Initial Z", "Final Z", "Delta Z",
	"Success",
}

// FileName is the per-combination result file naming convention.
func FileName(gripperVariant, objectVariant string) string {
	return fmt.Sprintf("grasp_data_%s_%s.csv", gripperVariant, objectVariant)
}

// #endregion header

// #region store

// Store appends trial records to one result file, rejecting exact
// duplicates. The file is append-only: rows are never rewritten or
// compacted. The duplicate-check-then-append is serialized under a
// mutex so concurrent batch workers sharing a store cannot interleave
// it.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open creates the store, writing the file with its header row if it
// does not exist yet.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("results: create dir: %w", err)
		}
	}

	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeHeader(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("results: stat %s: %w", path, err)
	}
	return s, nil
}

// Load opens an existing result file without creating anything on
// disk. For read-only consumers; a missing file is an error.
func Load(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("results: stat %s: %w", path, err)
	}
	return &Store{path: path}, nil
}

// Path returns the on-disk location of the result file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) writeHeader() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("results: create %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("results: write header: %w", err)
	}
	w.Flush()
	return w.Error()
}

// #endregion store

// #region record

// Record appends one stringified trial record. An exact duplicate of
// an existing row is skipped with a warning: it guards against
// re-running the same deterministic trial, not against float-adjacent
// near-duplicates.
func (s *Store) Record(fields []string) error {
	if len(fields) != len(Header) {
		return fmt.Errorf("results: record has %d fields, want %d", len(fields), len(Header))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.loadRowSet()
	if err != nil {
		return err
	}

	key := strings.Join(fields, "\x1f")
	if _, dup := existing[key]; dup {
		log.Printf("[RESULTS] duplicate record skipped: %v", fields)
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("results: open for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("results: append row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// loadRowSet reads the existing rows (excluding the header) into a set
// of joined string tuples. Caller holds the mutex.
func (s *Store) loadRowSet() (map[string]struct{}, error) {
	rows, err := s.readAll()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		set[strings.Join(row, "\x1f")] = struct{}{}
	}
	return set, nil
}

// #endregion record

// #region read

// Rows returns all data rows, excluding the header. Used by the
// inspect tool and tests.
func (s *Store) Rows() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *Store) readAll() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", s.path, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[1:], nil
}

// #endregion read
