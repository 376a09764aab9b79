package trial

// #region imports
import (
	"context"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region thresholds

// Thresholds are the lift-height cutoffs of the outcome classifier, in
// the same length unit as the simulation coordinates (meters). They
// encode the domain assumption that lift height correlates with grasp
// quality.
type Thresholds struct {
	// FullLift: delta strictly above this is a full success.
	FullLift float64
	// PartialLift: delta in [PartialLift, FullLift] is a partial
	// success. Both boundary values classify as partial.
	PartialLift float64
}

// DefaultThresholds returns the reference cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{FullLift: 0.1, PartialLift: 0.05}
}

// Classify maps a vertical displacement to a success tier. Pure
// function of the delta.
func (t Thresholds) Classify(delta float64) Tier {
	switch {
	case delta > t.FullLift:
		return TierSuccess
	case delta >= t.PartialLift:
		return TierPartial
	default:
		return TierFailure
	}
}

// #endregion thresholds

// #region outcome

// Outcome is the classified result of one assessment.
type Outcome struct {
	Tier  Tier
	Delta float64
	Final sim.Vec3
}

// Assess captures the object's position after the lift and classifies
// the displacement. If the engine reports itself disconnected the
// grasp is a failure with zero delta and the unchanged initial
// position as the final position; Assess never fails on a dead engine.
func Assess(ctx context.Context, engine sim.Engine, body sim.BodyID, initial sim.Vec3, thresholds Thresholds) Outcome {
	if !engine.Connected(ctx) {
		return Outcome{Tier: TierFailure, Delta: 0, Final: initial}
	}

	pose, err := engine.BasePose(ctx, body)
	if err != nil {
		return Outcome{Tier: TierFailure, Delta: 0, Final: initial}
	}

	delta := pose.Position.Z - initial.Z
	return Outcome{
		Tier:  thresholds.Classify(delta),
		Delta: delta,
		Final: pose.Position,
	}
}

// #endregion outcome
