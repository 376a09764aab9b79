// Package pose generates randomized manipulator spawn poses inside a
// configured envelope around an object's grasp reference point.
package pose

// #region imports
import (
	"math/rand"

	"github.com/openmanip/graspbench/go-controller/internal/sim"
)

// #endregion imports

// #region sampled-pose

// Sampled is one draw from an envelope: the engine-ready pose plus the
// raw sampled values that go into the trial record.
type Sampled struct {
	Pose   sim.Pose
	Radius float64
	Roll   float64
	Pitch  float64
	Yaw    float64

	// ApproachDistance is carried through from the envelope so the
	// sequencer can decide whether to run the approach state.
	ApproachDistance float64
}

// #endregion sampled-pose

// #region sampler

// Sampler draws spawn poses. Seeded explicitly so batch runs are
// reproducible.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler with its own RNG stream.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws one spawn pose relative to the object's grasp center in
// world coordinates. The manipulator is placed on the -X side of the
// object at the sampled radius, facing it along the canonical approach
// axis; pitch and yaw come fixed from the envelope.
func (s *Sampler) Sample(env Envelope, graspCenter sim.Vec3) Sampled {
	radius := env.BaseRadius + s.uniform(env.RadiusJitterMin, env.RadiusJitterMax)
	yOffset := s.uniform(env.YOffsetMin, env.YOffsetMax)
	zOffset := env.ZBaseOffset + s.uniform(env.ZVariationMin, env.ZVariationMax)
	roll := s.uniform(env.RollMin, env.RollMax)

	position := sim.Vec3{
		X: graspCenter.X - radius,
		Y: graspCenter.Y + yOffset,
		Z: graspCenter.Z + zOffset,
	}

	return Sampled{
		Pose: sim.Pose{
			Position:    position,
			Orientation: sim.QuatFromEuler(roll, env.Pitch, env.Yaw),
		},
		Radius:           radius,
		Roll:             roll,
		Pitch:            env.Pitch,
		Yaw:              env.Yaw,
		ApproachDistance: env.ApproachDistance,
	}
}

// uniform draws from [min, max). min == max returns min.
func (s *Sampler) uniform(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// #endregion sampler
