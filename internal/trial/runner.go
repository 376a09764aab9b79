package trial

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/openmanip/graspbench/go-controller/internal/archive"
	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
	"github.com/openmanip/graspbench/go-controller/internal/pose"
	"github.com/openmanip/graspbench/go-controller/internal/results"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region spec

// Spec describes one generation run: a gripper/object combination, the
// sampling envelope, and how many grasps to attempt.
type Spec struct {
	GripperVariant gripper.Variant
	ObjectVariant  object.Variant
	ObjectParams   object.Params
	Envelope       pose.Envelope
	NumGrasps      int
	Seed           int64
}

// Validate surfaces configuration errors before any engine resource is
// allocated.
func (s Spec) Validate() error {
	if s.NumGrasps < 1 {
		return fmt.Errorf("trial: num grasps must be at least 1, got %d", s.NumGrasps)
	}
	if !slices.Contains(gripper.Variants(), s.GripperVariant) {
		return fmt.Errorf("trial: unsupported gripper variant %q (supported: %v)",
			s.GripperVariant, gripper.Variants())
	}
	if !slices.Contains(object.Variants(), s.ObjectVariant) {
		return fmt.Errorf("trial: unsupported object variant %q (supported: %v)",
			s.ObjectVariant, object.Variants())
	}
	return s.Envelope.Validate()
}

// #endregion spec

// #region runner

// Runner is the seam the batch orchestration calls into: it owns the
// manipulator/object pair for a combination and loops sampled trials,
// pushing each completed record to the result store and the archive.
// Its only observable effect is on those stores.
type Runner struct {
	engine  sim.Engine
	store   *results.Store
	archive *archive.Archive // optional
	cfg     Config
}

// NewRunner wires a runner. The archive may be nil; archive failures
// never fail a trial either way.
func NewRunner(engine sim.Engine, store *results.Store, arch *archive.Archive, cfg Config) *Runner {
	return &Runner{engine: engine, store: store, archive: arch, cfg: cfg}
}

// Run generates spec.NumGrasps trials for one combination. The
// manipulator and object are constructed once and relocated between
// trials. Cancellation aborts the in-flight trial without a record and
// returns ErrInterrupted; any other per-trial condition is absorbed
// into the record's tier.
func (r *Runner) Run(ctx context.Context, spec Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	runID := archive.NewRunID()
	log.Printf("[TRIAL] run %s: %s x %s, %d grasps",
		runID, spec.GripperVariant, spec.ObjectVariant, spec.NumGrasps)

	obj, err := object.New(ctx, r.engine, spec.ObjectVariant, spec.ObjectParams)
	if err != nil {
		return err
	}
	defer r.removeBody(obj.Body())

	graspCenter := obj.SpawnPose().Position
	sampler := pose.NewSampler(spec.Seed)
	first := sampler.Sample(spec.Envelope, graspCenter)

	manip, err := gripper.New(ctx, r.engine, spec.GripperVariant, first.Pose)
	if err != nil {
		return err
	}
	defer r.removeBody(manip.Body())

	seq := NewSequencer(r.engine, manip, obj, r.cfg)

	sampled := first
	for i := 0; i < spec.NumGrasps; i++ {
		rec, err := seq.Run(ctx, sampled)
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				log.Printf("[TRIAL] run %s interrupted at grasp %d/%d", runID, i+1, spec.NumGrasps)
			}
			return err
		}

		if err := r.store.Record(rec.Fields()); err != nil {
			return fmt.Errorf("trial: record grasp %d: %w", i+1, err)
		}
		r.archiveTrial(runID, spec, rec)

		log.Printf("[TRIAL] grasp %d/%d: tier=%s delta=%.4f",
			i+1, spec.NumGrasps, rec.Tier, rec.DeltaZ)

		sampled = sampler.Sample(spec.Envelope, graspCenter)
	}
	return nil
}

// archiveTrial logs the trial to the provenance archive. Best effort.
func (r *Runner) archiveTrial(runID string, spec Spec, rec Record) {
	if r.archive == nil {
		return
	}
	err := r.archive.RecordTrial(archive.Entry{
		TrialID:  uuid.New().String(),
		RunID:    runID,
		Gripper:  string(spec.GripperVariant),
		Object:   string(spec.ObjectVariant),
		PosX:     rec.PositionX,
		PosY:     rec.PositionY,
		PosZ:     rec.PositionZ,
		Roll:     rec.Roll,
		Pitch:    rec.Pitch,
		Yaw:      rec.Yaw,
		InitialZ: rec.InitialZ,
		FinalZ:   rec.FinalZ,
		DeltaZ:   rec.DeltaZ,
		Tier:     rec.Tier.Code(),
	})
	if err != nil {
		log.Printf("[TRIAL] archive write failed: %v", err)
	}
}

// removeBody discards trial bodies at the end of a run. The engine may
// already be gone; that is fine.
func (r *Runner) removeBody(id sim.BodyID) {
	if err := r.engine.RemoveBody(context.Background(), id); err != nil &&
		!errors.Is(err, sim.ErrDisconnected) {
		log.Printf("[TRIAL] remove body %d: %v", id, err)
	}
}

// #endregion runner
