package archive

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "trials.db"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func entry(runID, g, o string, delta float64, tier int, at time.Time) Entry {
	return Entry{
		RunID:     runID,
		Gripper:   g,
		Object:    o,
		InitialZ:  0.4,
		FinalZ:    0.4 + delta,
		DeltaZ:    delta,
		Tier:      tier,
		CreatedAt: at,
	}
}

func TestSummarize(t *testing.T) {
	a := openTestArchive(t)
	run := NewRunID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []Entry{
		entry(run, "two_finger", "box", 0.3, 1, base),
		entry(run, "two_finger", "box", 0.07, 2, base.Add(time.Second)),
		entry(run, "two_finger", "box", 0.02, 0, base.Add(2*time.Second)),
		entry(run, "multi_finger", "cylinder", 0.3, 1, base.Add(3*time.Second)),
	}
	for i, e := range records {
		if err := a.RecordTrial(e); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	sum, err := a.Summarize("two_finger", "box")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Trials != 3 || sum.Successes != 1 || sum.Partials != 1 || sum.Failures != 1 {
		t.Errorf("counts: got %+v, want 3 trials, 1/1/1 split", sum)
	}
	wantMean := (0.3 + 0.07 + 0.02) / 3
	if math.Abs(sum.MeanDelta-wantMean) > 1e-12 {
		t.Errorf("mean delta: got %v, want %v", sum.MeanDelta, wantMean)
	}

	// A combination with no trials summarizes to zeros, not an error.
	empty, err := a.Summarize("two_finger", "cylinder")
	if err != nil {
		t.Fatalf("summarize empty: %v", err)
	}
	if empty.Trials != 0 || empty.MeanDelta != 0 {
		t.Errorf("empty summary: got %+v, want zeros", empty)
	}
}

func TestDeltas(t *testing.T) {
	a := openTestArchive(t)
	run := NewRunID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := a.RecordTrial(entry(run, "two_finger", "box", 0.3, 1, base)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := a.RecordTrial(entry(run, "two_finger", "box", 0.01, 0, base.Add(time.Second))); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := a.RecordTrial(entry(run, "multi_finger", "box", 0.06, 2, base.Add(2*time.Second))); err != nil {
		t.Fatalf("record: %v", err)
	}

	tests := []struct {
		name    string
		gripper string
		object  string
		want    []float64
	}{
		{"one-combo", "two_finger", "box", []float64{0.3, 0.01}},
		{"all", "", "", []float64{0.3, 0.01, 0.06}},
		{"by-gripper", "multi_finger", "", []float64{0.06}},
		{"no-match", "two_finger", "cylinder", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Deltas(tt.gripper, tt.object)
			if err != nil {
				t.Fatalf("deltas: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("delta %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordTrialFillsDefaults(t *testing.T) {
	a := openTestArchive(t)

	e := entry(NewRunID(), "two_finger", "box", 0.3, 1, time.Time{})
	e.TrialID = ""
	if err := a.RecordTrial(e); err != nil {
		t.Fatalf("record: %v", err)
	}

	sum, err := a.Summarize("two_finger", "box")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Trials != 1 {
		t.Errorf("trials: got %d, want 1", sum.Trials)
	}
}

func TestNewRunIDUnique(t *testing.T) {
	if NewRunID() == NewRunID() {
		t.Error("consecutive run IDs collided")
	}
}
