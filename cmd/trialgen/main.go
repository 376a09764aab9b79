// Command trialgen generates grasp data for a single gripper/object
// combination.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/openmanip/graspbench/go-controller/internal/archive"
	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/memsim"
	"github.com/openmanip/graspbench/go-controller/internal/object"
	"github.com/openmanip/graspbench/go-controller/internal/pose"
	"github.com/openmanip/graspbench/go-controller/internal/results"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
	"github.com/openmanip/graspbench/go-controller/internal/simbridge"
	"github.com/openmanip/graspbench/go-controller/internal/trial"
)

// #region main

func main() {
	objectVariant := flag.String("object", "box", "object variant (box, cylinder)")
	gripperVariant := flag.String("gripper", "two_finger", "gripper variant (two_finger, multi_finger, placeholder)")
	grasps := flag.Int("grasps", 10, "number of grasps to generate")
	engineKind := flag.String("engine", "grpc", "physics engine: grpc (sidecar) or mem (kinematic dry run)")
	simAddr := flag.String("sim", envOr("SIM_ADDR", "localhost:50061"), "sidecar gRPC address")
	outDir := flag.String("out", envOr("GRASP_DATA_DIR", "data"), "result file directory")
	dbPath := flag.String("db", "", "trial archive database (default <out>/trial_archive.db, \"none\" disables)")
	configPath := flag.String("config", "", "YAML envelope override file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "pose sampling seed")
	gui := flag.Bool("gui", false, "pace playback for a rendered viewport")
	flag.Parse()

	if *grasps < 1 {
		fmt.Fprintln(os.Stderr, "trialgen: --grasps must be at least 1")
		os.Exit(2)
	}

	// Configuration errors surface before any engine resource exists.
	var overrides pose.Overrides
	if *configPath != "" {
		var err error
		overrides, err = pose.LoadOverrides(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	env, err := overrides.EnvelopeFor(gripper.Variant(*gripperVariant), object.Variant(*objectVariant))
	if err != nil {
		log.Fatalf("resolve envelope: %v", err)
	}
	if err := env.Validate(); err != nil {
		log.Fatalf("invalid envelope: %v", err)
	}

	engine, cleanup, err := buildEngine(*engineKind, *simAddr, *gui)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer cleanup()

	store, err := results.Open(filepath.Join(*outDir,
		results.FileName(*gripperVariant, *objectVariant)))
	if err != nil {
		log.Fatalf("open result store: %v", err)
	}

	var arch *archive.Archive
	if archPath, enabled := resolveArchivePath(*dbPath, *outDir); enabled {
		arch, err = archive.Open(archPath)
		if err != nil {
			log.Printf("archive disabled: %v", err)
			arch = nil
		} else {
			defer arch.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := trial.NewRunner(engine, store, arch, trial.DefaultConfig())
	err = runner.Run(ctx, trial.Spec{
		GripperVariant: gripper.Variant(*gripperVariant),
		ObjectVariant:  object.Variant(*objectVariant),
		Envelope:       env,
		NumGrasps:      *grasps,
		Seed:           *seed,
	})
	switch {
	case errors.Is(err, trial.ErrInterrupted):
		log.Printf("interrupted; partial results kept in %s", store.Path())
		os.Exit(130)
	case err != nil:
		log.Fatalf("run: %v", err)
	}

	fmt.Printf("done: %d grasps recorded in %s\n", *grasps, store.Path())
}

// #endregion main

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
		if gui {
			log.Printf("[TRIAL] rendering is sidecar-side; launch the sidecar with its GUI flag")
		}
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

// resolveArchivePath maps the --db flag to an archive location: "none"
// disables archiving, empty takes the default under the output
// directory.
func resolveArchivePath(db, outDir string) (string, bool) {
	switch db {
	case "none":
		return "", false
	case "":
		return filepath.Join(outDir, "trial_archive.db"), true
	default:
		return db, true
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
