package trial

// #region imports
import (
	"errors"
	"strconv"
	"time"
)

// #endregion imports

// #region tier

// Tier is the three-level outcome classification. The numeric values
// are the CSV success codes of the result file format.
type Tier int

const (
	TierFailure Tier = 0
	TierSuccess Tier = 1
	TierPartial Tier = 2
)

func (t Tier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierPartial:
		return "partial"
	default:
		return "failure"
	}
}

// Code is the integer written to the Success column.
func (t Tier) Code() int {
	return int(t)
}

// #endregion tier

// #region record

// Record is the immutable tuple emitted for one completed trial.
// DeltaZ is exactly FinalZ - InitialZ; the tier is a pure function of
// DeltaZ.
type Record struct {
	PositionX float64
	PositionY float64
	PositionZ float64
	Roll      float64
	Pitch     float64
	Yaw       float64
	InitialZ  float64
	FinalZ    float64
	DeltaZ    float64
	Tier      Tier
}

// Fields stringifies the record in result-file column order. The
// formatting is stable: writing and re-reading a record yields the
// same strings, which is what the duplicate check compares.
func (r Record) Fields() []string {
	return []string{
		formatFloat(r.PositionX),
		formatFloat(r.PositionY),
		formatFloat(r.PositionZ),
		formatFloat(r.Roll),
		formatFloat(r.Pitch),
		formatFloat(r.Yaw),
		formatFloat(r.InitialZ),
		formatFloat(r.FinalZ),
		formatFloat(r.DeltaZ),
		strconv.Itoa(r.Tier.Code()),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// #endregion record

// #region config

// Config bundles the tunable constants of the trial sequence. The
// settle duration and lift thresholds are empirically chosen domain
// parameters, not physical truths; they are configuration, never
// literals in the pipeline.
type Config struct {
	Thresholds Thresholds

	// StabilizeTicks advances the sim after an open or close command
	// so the joint motors reach their targets.
	StabilizeTicks int

	// SettleTicks is the fixed pause after closing that lets contact
	// forces resolve before the lift (0.5 s-equivalent by default).
	SettleTicks int

	// LiftHeight is how far the manipulator ascends in the lift state.
	LiftHeight float64

	// MotionSteps and MotionStepTime parameterize velocity-controlled
	// vertical moves.
	MotionSteps    int
	MotionStepTime time.Duration
}

// DefaultConfig returns the reference trial parameters.
func DefaultConfig() Config {
	return Config{
		Thresholds:     DefaultThresholds(),
		StabilizeTicks: 200,
		SettleTicks:    50, // 0.5s at the 10ms tick
		LiftHeight:     0.3,
		MotionSteps:    200,
		MotionStepTime: 10 * time.Millisecond,
	}
}

// #endregion config

// #region errors

// ErrInterrupted reports that a trial was cancelled at a state
// boundary. No record is emitted for an interrupted trial.
var ErrInterrupted = errors.New("trial: interrupted")

// #endregion errors
