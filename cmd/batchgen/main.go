// Command batchgen runs grasp generation for every gripper/object
// combination (or a selected subset) sequentially, accumulating
// per-combination result files across runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/openmanip/graspbench/go-controller/internal/archive"
	"github.com/openmanip/graspbench/go-controller/internal/batch"
	"github.com/openmanip/graspbench/go-controller/internal/memsim"
	"github.com/openmanip/graspbench/go-controller/internal/pose"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
	"github.com/openmanip/graspbench/go-controller/internal/simbridge"
	"github.com/openmanip/graspbench/go-controller/internal/trial"
)

// #region main

func main() {
	grasps := flag.Int("grasps", 0, "grasps per combination (required)")
	combosFlag := flag.String("combinations", "", "comma-separated subset, e.g. two_finger-box,multi_finger-cylinder (default: all)")
	engineKind := flag.String("engine", "grpc", "physics engine: grpc (sidecar) or mem (kinematic dry run)")
	simAddr := flag.String("sim", envOr("SIM_ADDR", "localhost:50061"), "sidecar gRPC address")
	outDir := flag.String("out", envOr("GRASP_DATA_DIR", "data"), "result file directory")
	configPath := flag.String("config", "", "YAML envelope override file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "pose sampling seed")
	gui := flag.Bool("gui", false, "pace playback for a rendered viewport")
	flag.Parse()

	if *grasps < 1 {
		fmt.Fprintln(os.Stderr, "usage: batchgen --grasps N [--combinations a-b,c-d] [--engine grpc|mem]")
		os.Exit(2)
	}

	var combos []batch.Combination
	if *combosFlag != "" {
		var err error
		combos, err = batch.ParseCombinations(strings.Split(*combosFlag, ","))
		if err != nil {
			log.Fatalf("combinations: %v", err)
		}
	}

	var overrides pose.Overrides
	if *configPath != "" {
		var err error
		overrides, err = pose.LoadOverrides(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	engine, cleanup, err := buildEngine(*engineKind, *simAddr, *gui)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer cleanup()

	arch, err := archive.Open(filepath.Join(*outDir, "trial_archive.db"))
	if err != nil {
		log.Printf("archive disabled: %v", err)
		arch = nil
	} else {
		defer arch.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	comboResults, err := batch.Run(ctx, engine, batch.Config{
		Combinations:   combos,
		GraspsPerCombo: *grasps,
		OutDir:         *outDir,
		Seed:           *seed,
		Overrides:      overrides,
		Trial:          trial.DefaultConfig(),
		Archive:        arch,
	})
	if err != nil {
		log.Fatalf("batch: %v", err)
	}

	printSummary(comboResults, time.Since(start), *outDir)
}

// #endregion main

// #region summary

func printSummary(comboResults []batch.ComboResult, elapsed time.Duration, outDir string) {
	summary := batch.Summarize(comboResults)

	fmt.Println()
	fmt.Println("batch generation summary")
	fmt.Printf("  total time: %s\n", elapsed.Round(time.Second))
	fmt.Printf("  combinations: %d ok, %d failed, %d interrupted\n",
		summary.Succeeded, summary.Failed, summary.Interrupted)
	fmt.Printf("  grasps generated: %d\n", summary.TotalGrasps)
	fmt.Println()
	for _, r := range comboResults {
		status := r.Status
		if r.Err != nil && r.Status == "failed" {
			status = fmt.Sprintf("failed: %v", r.Err)
		}
		fmt.Printf("  %-26s grasps=%-5d duration=%-8s %s\n",
			r.Combination.Name(), r.Grasps, r.Duration.Round(time.Second), status)
	}
	fmt.Printf("\nresult files: %s/grasp_data_<gripper>_<object>.csv\n", outDir)
}

// #endregion summary

// #region engine

func buildEngine(kind, addr string, gui bool) (sim.Engine, func(), error) {
	switch kind {
	case "mem":
		cfg := memsim.DefaultConfig()
		if gui {
			cfg.StepDelay = time.Millisecond
		}
		return memsim.NewEngine(cfg), func() {}, nil
	case "grpc":
		client, err := simbridge.NewClient(addr)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown engine %q (grpc, mem)", kind)
	}
}

// #endregion engine

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
