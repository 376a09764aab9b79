// Package batch runs grasp generation across gripper/object
// combinations sequentially, accumulating per-combination result files
// and an aggregate summary.
package batch

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/openmanip/graspbench/go-controller/internal/archive"
	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
	"github.com/openmanip/graspbench/go-controller/internal/pose"
	"github.com/openmanip/graspbench/go-controller/internal/results"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
	"github.com/openmanip/graspbench/go-controller/internal/trial"
)

// #endregion imports

// #region combinations

// Combination is one gripper/object pairing.
type Combination struct {
	Gripper gripper.Variant
	Object  object.Variant
}

// Name is the "<gripper>-<object>" form used on the command line and
// in override files.
func (c Combination) Name() string {
	return fmt.Sprintf("%s-%s", c.Gripper, c.Object)
}

// AllCombinations returns the full generation matrix: every actuated
// gripper variant against every object variant. The placeholder
// gripper is excluded; it never grasps.
func AllCombinations() []Combination {
	var combos []Combination
	for _, g := range []gripper.Variant{gripper.VariantTwoFinger, gripper.VariantMultiFinger} {
		for _, o := range object.Variants() {
			combos = append(combos, Combination{Gripper: g, Object: o})
		}
	}
	return combos
}

// ParseCombinations resolves "<gripper>-<object>" names against the
// generation matrix. An unknown name is a configuration error.
func ParseCombinations(names []string) ([]Combination, error) {
	byName := make(map[string]Combination)
	for _, c := range AllCombinations() {
		byName[c.Name()] = c
	}

	var combos []Combination
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("batch: unknown combination %q (available: %s)",
				name, strings.Join(availableNames(), ", "))
		}
		combos = append(combos, c)
	}
	if len(combos) == 0 {
		return nil, errors.New("batch: no combinations selected")
	}
	return combos, nil
}

func availableNames() []string {
	var names []string
	for _, c := range AllCombinations() {
		names = append(names, c.Name())
	}
	return names
}

// #endregion combinations

// #region config

// Config parameterizes a batch run.
type Config struct {
	Combinations   []Combination
	GraspsPerCombo int
	OutDir         string
	Seed           int64
	Overrides      pose.Overrides
	Trial          trial.Config
	Archive        *archive.Archive // optional
}

// #endregion config

// #region results

// ComboResult records how one combination fared.
type ComboResult struct {
	Combination Combination
	Grasps      int
	Duration    time.Duration
	Status      string // "ok" | "interrupted" | "failed"
	Err         error
}

// Summary aggregates a batch run.
type Summary struct {
	Total       int
	Succeeded   int
	Interrupted int
	Failed      int
	TotalGrasps int
	Duration    time.Duration
}

// Summarize folds combination results into an aggregate.
func Summarize(results []ComboResult) Summary {
	var s Summary
	s.Total = len(results)
	for _, r := range results {
		s.TotalGrasps += r.Grasps
		s.Duration += r.Duration
		switch r.Status {
		case "ok":
			s.Succeeded++
		case "interrupted":
			s.Interrupted++
		default:
			s.Failed++
		}
	}
	return s
}

// #endregion results

// #region run

// Run executes every configured combination in order against a single
// engine instance. Combinations never interleave: one trial is in
// flight at a time. Cancellation aborts the remaining combinations and
// is reported per-combination, not as an error.
func Run(ctx context.Context, engine sim.Engine, cfg Config) ([]ComboResult, error) {
	if cfg.GraspsPerCombo < 1 {
		return nil, fmt.Errorf("batch: grasps per combination must be at least 1, got %d", cfg.GraspsPerCombo)
	}
	combos := cfg.Combinations
	if len(combos) == 0 {
		combos = AllCombinations()
	}

	var out []ComboResult
	for i, combo := range combos {
		log.Printf("[BATCH] combination %d/%d: %s", i+1, len(combos), combo.Name())

		env, err := cfg.Overrides.EnvelopeFor(combo.Gripper, combo.Object)
		if err != nil {
			return out, err
		}

		store, err := results.Open(filepath.Join(cfg.OutDir,
			results.FileName(string(combo.Gripper), string(combo.Object))))
		if err != nil {
			return out, err
		}

		runner := trial.NewRunner(engine, store, cfg.Archive, cfg.Trial)
		start := time.Now()
		err = runner.Run(ctx, trial.Spec{
			GripperVariant: combo.Gripper,
			ObjectVariant:  combo.Object,
			Envelope:       env,
			NumGrasps:      cfg.GraspsPerCombo,
			Seed:           cfg.Seed + int64(i),
		})
		elapsed := time.Since(start)

		switch {
		case err == nil:
			out = append(out, ComboResult{combo, cfg.GraspsPerCombo, elapsed, "ok", nil})
		case errors.Is(err, trial.ErrInterrupted):
			out = append(out, ComboResult{combo, 0, elapsed, "interrupted", err})
			log.Printf("[BATCH] interrupted during %s, skipping remaining combinations", combo.Name())
			return out, nil
		default:
			out = append(out, ComboResult{combo, 0, elapsed, "failed", err})
			log.Printf("[BATCH] %s failed: %v", combo.Name(), err)
		}
	}
	return out, nil
}

// #endregion run
