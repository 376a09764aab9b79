// Command inspect summarizes recorded grasp data: outcome rates and
// delta-Z statistics from a result file or the trial archive, with an
// optional histogram plot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/openmanip/graspbench/go-controller/internal/archive"
	"github.com/openmanip/graspbench/go-controller/internal/results"
	"github.com/openmanip/graspbench/go-controller/internal/trial"
)

// #region main

func main() {
	csvPath := flag.String("csv", "", "result file to inspect")
	dbPath := flag.String("db", "", "trial archive to inspect")
	gripperFilter := flag.String("gripper", "", "archive mode: filter by gripper variant")
	objectFilter := flag.String("object", "", "archive mode: filter by object variant")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	plotPath := flag.String("plot", "", "write a delta-Z histogram PNG to this path")
	flag.Parse()

	if (*csvPath == "" && *dbPath == "") || (*csvPath != "" && *dbPath != "") {
		fmt.Fprintln(os.Stderr, "usage: inspect --csv data/grasp_data_two_finger_box.csv [--plot out.png] [--json]")
		fmt.Fprintln(os.Stderr, "       inspect --db data/trial_archive.db [--gripper g] [--object o] [--plot out.png] [--json]")
		os.Exit(2)
	}

	var (
		deltas []float64
		tiers  []trial.Tier
		err    error
	)
	if *csvPath != "" {
		deltas, tiers, err = loadCSV(*csvPath)
	} else {
		deltas, tiers, err = loadArchive(*dbPath, *gripperFilter, *objectFilter)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(deltas) == 0 {
		fmt.Fprintln(os.Stderr, "no trials recorded")
		os.Exit(1)
	}

	report := buildReport(deltas, tiers)

	if *plotPath != "" {
		if err := writeHistogram(deltas, *plotPath); err != nil {
			fmt.Fprintf(os.Stderr, "plot: %v\n", err)
			os.Exit(1)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("trials:       %d\n", report.Trials)
	fmt.Printf("success rate: %.1f%% (%d)\n", report.SuccessRate*100, report.Successes)
	fmt.Printf("partial rate: %.1f%% (%d)\n", report.PartialRate*100, report.Partials)
	fmt.Printf("failure rate: %.1f%% (%d)\n", report.FailureRate*100, report.Failures)
	fmt.Printf("delta-z mean: %.4f m\n", report.DeltaMean)
	fmt.Printf("delta-z std:  %.4f m\n", report.DeltaStdDev)
}

// #endregion main

// #region report

type report struct {
	Trials      int     `json:"trials"`
	Successes   int     `json:"successes"`
	Partials    int     `json:"partials"`
	Failures    int     `json:"failures"`
	SuccessRate float64 `json:"success_rate"`
	PartialRate float64 `json:"partial_rate"`
	FailureRate float64 `json:"failure_rate"`
	DeltaMean   float64 `json:"delta_mean"`
	DeltaStdDev float64 `json:"delta_stddev"`
}

func buildReport(deltas []float64, tiers []trial.Tier) report {
	var r report
	r.Trials = len(deltas)
	for _, t := range tiers {
		switch t {
		case trial.TierSuccess:
			r.Successes++
		case trial.TierPartial:
			r.Partials++
		default:
			r.Failures++
		}
	}
	n := float64(r.Trials)
	r.SuccessRate = float64(r.Successes) / n
	r.PartialRate = float64(r.Partials) / n
	r.FailureRate = float64(r.Failures) / n
	r.DeltaMean, r.DeltaStdDev = stat.MeanStdDev(deltas, nil)
	return r
}

// #endregion report

// #region load

func loadCSV(path string) ([]float64, []trial.Tier, error) {
	store, err := results.Load(path)
	if err != nil {
		return nil, nil, err
	}
	rows, err := store.Rows()
	if err != nil {
		return nil, nil, err
	}

	var deltas []float64
	var tiers []trial.Tier
	for i, row := range rows {
		if len(row) != len(results.Header) {
			return nil, nil, fmt.Errorf("row %d has %d columns, want %d", i+1, len(row), len(results.Header))
		}
		delta, err := strconv.ParseFloat(row[8], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d delta: %w", i+1, err)
		}
		code, err := strconv.Atoi(row[9])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d success code: %w", i+1, err)
		}
		deltas = append(deltas, delta)
		tiers = append(tiers, trial.Tier(code))
	}
	return deltas, tiers, nil
}

func loadArchive(path, gripperFilter, objectFilter string) ([]float64, []trial.Tier, error) {
	arch, err := archive.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer arch.Close()

	deltas, err := arch.Deltas(gripperFilter, objectFilter)
	if err != nil {
		return nil, nil, err
	}

	// Tiers re-derived from deltas with the default thresholds so
	// filtered archive views stay consistent with the classifier.
	th := trial.DefaultThresholds()
	tiers := make([]trial.Tier, len(deltas))
	for i, d := range deltas {
		tiers[i] = th.Classify(d)
	}
	return deltas, tiers, nil
}

// #endregion load

// #region plot

func writeHistogram(deltas []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Vertical displacement per trial"
	p.X.Label.Text = "delta Z (m)"
	p.Y.Label.Text = "trials"

	h, err := plotter.NewHist(plotter.Values(deltas), 20)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// #endregion plot
