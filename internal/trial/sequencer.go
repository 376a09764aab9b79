package trial

// #region imports
import (
	"context"
	"fmt"

	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
	"github.com/openmanip/graspbench/go-controller/internal/pose"
	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region sequencer

// Sequencer drives one trial through its fixed state order:
// spawn → open → approach → close → settle → lift → assess.
// States execute strictly sequentially, no backward transitions;
// cancellation is honored at every state boundary and aborts the trial
// without emitting a record. The sequencer owns the manipulator and
// object for the duration of the run.
type Sequencer struct {
	engine sim.Engine
	manip  gripper.Manipulator
	obj    object.Graspable
	cfg    Config
}

// NewSequencer wires a sequencer over already-constructed instances.
func NewSequencer(engine sim.Engine, manip gripper.Manipulator, obj object.Graspable, cfg Config) *Sequencer {
	return &Sequencer{engine: engine, manip: manip, obj: obj, cfg: cfg}
}

// Run executes one trial at the sampled spawn pose and returns the
// completed record. An interrupted trial returns ErrInterrupted and no
// record; engine loss during assessment is downgraded to a failure
// tier, not an error.
func (s *Sequencer) Run(ctx context.Context, sp pose.Sampled) (Record, error) {
	// Spawn: object back to rest, manipulator at the sampled pose.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	if err := s.obj.ResetPose(ctx, nil); err != nil {
		return Record{}, fmt.Errorf("trial: spawn object: %w", err)
	}
	if err := s.manip.Relocate(ctx, sp.Pose); err != nil {
		return Record{}, fmt.Errorf("trial: spawn manipulator: %w", err)
	}
	initialPose, err := s.engine.BasePose(ctx, s.obj.Body())
	if err != nil {
		return Record{}, fmt.Errorf("trial: initial position: %w", err)
	}
	initial := initialPose.Position

	// Open.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	if err := s.manip.Activate(ctx); err != nil {
		return Record{}, fmt.Errorf("trial: open: %w", err)
	}
	if err := s.advance(ctx, s.cfg.StabilizeTicks); err != nil {
		return Record{}, err
	}

	// Approach: optional per envelope.
	if sp.ApproachDistance > 0 {
		if err := s.checkpoint(ctx); err != nil {
			return Record{}, err
		}
		target := s.obj.SpawnPose().Position.Z + sp.ApproachDistance
		if err := s.manip.VerticalMotion(ctx, target, s.cfg.MotionSteps, s.cfg.MotionStepTime); err != nil {
			return Record{}, fmt.Errorf("trial: approach: %w", err)
		}
	}

	// Close.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	if err := s.manip.Deactivate(ctx); err != nil {
		return Record{}, fmt.Errorf("trial: close: %w", err)
	}
	if err := s.advance(ctx, s.cfg.StabilizeTicks); err != nil {
		return Record{}, err
	}

	// Settle: let contact forces resolve before measuring anything.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	if err := s.advance(ctx, s.cfg.SettleTicks); err != nil {
		return Record{}, err
	}

	// Lift.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	manipPose, err := s.engine.BasePose(ctx, s.manip.Body())
	if err != nil {
		return Record{}, fmt.Errorf("trial: lift: %w", err)
	}
	liftTarget := manipPose.Position.Z + s.cfg.LiftHeight
	if err := s.manip.VerticalMotion(ctx, liftTarget, s.cfg.MotionSteps, s.cfg.MotionStepTime); err != nil {
		return Record{}, fmt.Errorf("trial: lift: %w", err)
	}

	// Assess. Never fails: a dead engine classifies as tier failure.
	if err := s.checkpoint(ctx); err != nil {
		return Record{}, err
	}
	outcome := Assess(ctx, s.engine, s.obj.Body(), initial, s.cfg.Thresholds)

	return Record{
		PositionX: sp.Pose.Position.X,
		PositionY: sp.Pose.Position.Y,
		PositionZ: sp.Pose.Position.Z,
		Roll:      sp.Roll,
		Pitch:     sp.Pitch,
		Yaw:       sp.Yaw,
		InitialZ:  initial.Z,
		FinalZ:    outcome.Final.Z,
		DeltaZ:    outcome.Delta,
		Tier:      outcome.Tier,
	}, nil
}

// checkpoint aborts at a state boundary when the trial was cancelled.
func (s *Sequencer) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	return nil
}

// advance steps the engine n ticks.
func (s *Sequencer) advance(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := s.engine.Step(ctx); err != nil {
			return fmt.Errorf("trial: step: %w", err)
		}
	}
	return nil
}

// #endregion sequencer
