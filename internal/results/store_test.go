package results

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleRow(tier string) []string {
	return []string{
		"-0.25", "0.03", "0.3",
		"-0.12", "1.5707963267948966", "0",
		"0.4", "0.7", "0.3",
		tier,
	}
}

func TestFileName(t *testing.T) {
	got := FileName("two_finger", "box")
	if got != "grasp_data_two_finger_box.csv" {
		t.Errorf("got %q, want grasp_data_two_finger_box.csv", got)
	}
}

func TestOpenWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", FileName("two_finger", "box"))

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(sampleRow("1")); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Reopening an existing file must not rewrite the header or lose
	// rows.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	rows, err := store.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows after reopen: got %d, want 1", len(rows))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	wantFirst := "Position X,Position Y,Position Z," +
		"Orientation Roll,Orientation Pitch,Orientation Yaw," +
		"Initial Z,Final Z,Delta Z,Success\n"
	if len(raw) < len(wantFirst) || string(raw[:len(wantFirst)]) != wantFirst {
		t.Errorf("header line: got %q, want prefix %q", raw, wantFirst)
	}
}

func TestLoadRequiresExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	if _, err := Load(path); err == nil {
		t.Fatal("missing file: expected error")
	}
	// A read-only open must leave nothing behind.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Load created %s", path)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(sampleRow("1")); err != nil {
		t.Fatalf("record: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load existing: %v", err)
	}
	rows, err := loaded.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows: got %d, want 1", len(rows))
	}
}

func TestRecordRejectsShortRow(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "out.csv"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record([]string{"1", "2"}); err == nil {
		t.Error("short row: expected error")
	}
}

func TestRecordSkipsDuplicates(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "out.csv"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	row := sampleRow("1")
	for i := 0; i < 3; i++ {
		if err := store.Record(row); err != nil {
			t.Fatalf("record attempt %d: %v", i, err)
		}
	}
	// A row differing in any column is not a duplicate.
	if err := store.Record(sampleRow("2")); err != nil {
		t.Fatalf("record variant: %v", err)
	}

	rows, err := store.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows: got %d, want 2", len(rows))
	}
}

func TestDuplicateCheckSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(sampleRow("1")); err != nil {
		t.Fatalf("record: %v", err)
	}

	// The dedup set is rebuilt from the file, not held in memory.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := store.Record(sampleRow("1")); err != nil {
		t.Fatalf("record after reopen: %v", err)
	}

	rows, err := store.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows: got %d, want 1", len(rows))
	}
}
