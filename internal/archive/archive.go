// Package archive keeps a SQLite provenance log of every completed
// trial. The CSV result file remains the canonical ML artifact; the
// archive exists so runs can be attributed and inspected after the
// fact.
package archive

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion imports

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS trial_log (
	trial_id    TEXT PRIMARY KEY,
	run_id      TEXT NOT NULL,
	gripper     TEXT NOT NULL,
	object      TEXT NOT NULL,
	pos_x       REAL NOT NULL,
	pos_y       REAL NOT NULL,
	pos_z       REAL NOT NULL,
	roll        REAL NOT NULL,
	pitch       REAL NOT NULL,
	yaw         REAL NOT NULL,
	initial_z   REAL NOT NULL,
	final_z     REAL NOT NULL,
	delta_z     REAL NOT NULL,
	tier        INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trial_log_combo
ON trial_log(gripper, object);
`

// #endregion schema

// #region types

// Entry is one archived trial.
type Entry struct {
	TrialID   string
	RunID     string
	Gripper   string
	Object    string
	PosX      float64
	PosY      float64
	PosZ      float64
	Roll      float64
	Pitch     float64
	Yaw       float64
	InitialZ  float64
	FinalZ    float64
	DeltaZ    float64
	Tier      int
	CreatedAt time.Time
}

// Summary aggregates archived trials for one gripper/object
// combination.
type Summary struct {
	Trials    int
	Successes int
	Partials  int
	Failures  int
	MeanDelta float64
}

// #endregion types

// #region archive

// Archive wraps the SQLite trial log.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("archive: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("archive: migrate: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// NewRunID mints an identifier shared by all trials of one run.
func NewRunID() string {
	return uuid.New().String()
}

// #endregion archive

// #region record

// RecordTrial inserts one entry. A zero TrialID or CreatedAt is filled
// in here.
func (a *Archive) RecordTrial(e Entry) error {
	if e.TrialID == "" {
		e.TrialID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := a.db.Exec(`
		INSERT INTO trial_log
		(trial_id, run_id, gripper, object,
		 pos_x, pos_y, pos_z, roll, pitch, yaw,
		 initial_z, final_z, delta_z, tier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.TrialID, e.RunID, e.Gripper, e.Object,
		e.PosX, e.PosY, e.PosZ, e.Roll, e.Pitch, e.Yaw,
		e.InitialZ, e.FinalZ, e.DeltaZ, e.Tier,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("archive: insert trial: %w", err)
	}
	return nil
}

// #endregion record

// #region summarize

// Summarize aggregates the archived trials for one combination.
func (a *Archive) Summarize(gripperVariant, objectVariant string) (Summary, error) {
	var s Summary
	err := a.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN tier = 1 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN tier = 2 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN tier = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(delta_z), 0)
		FROM trial_log WHERE gripper = ? AND object = ?`,
		gripperVariant, objectVariant,
	).Scan(&s.Trials, &s.Successes, &s.Partials, &s.Failures, &s.MeanDelta)
	if err != nil {
		return Summary{}, fmt.Errorf("archive: summarize: %w", err)
	}
	return s, nil
}

// Deltas returns every recorded delta-Z for a combination, oldest
// first. Empty variant filters match everything.
func (a *Archive) Deltas(gripperVariant, objectVariant string) ([]float64, error) {
	rows, err := a.db.Query(`
		SELECT delta_z FROM trial_log
		WHERE (? = '' OR gripper = ?) AND (? = '' OR object = ?)
		ORDER BY created_at ASC`,
		gripperVariant, gripperVariant, objectVariant, objectVariant,
	)
	if err != nil {
		return nil, fmt.Errorf("archive: deltas: %w", err)
	}
	defer rows.Close()

	var deltas []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("archive: scan delta: %w", err)
		}
		deltas = append(deltas, d)
	}
	return deltas, rows.Err()
}

// #endregion summarize
