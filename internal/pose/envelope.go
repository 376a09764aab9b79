package pose

// #region imports
import (
	"fmt"

	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
)

// #endregion imports

// #region envelope

// Envelope bounds the randomized spawn pose of a manipulator relative
// to the object's grasp center. All lengths are meters, angles
// radians. Envelopes are plain configuration: the sampler never reads
// anything the envelope does not carry.
type Envelope struct {
	BaseRadius       float64 `yaml:"base_radius"`
	RadiusJitterMin  float64 `yaml:"radius_jitter_min"`
	RadiusJitterMax  float64 `yaml:"radius_jitter_max"`
	YOffsetMin       float64 `yaml:"y_offset_min"`
	YOffsetMax       float64 `yaml:"y_offset_max"`
	ZBaseOffset      float64 `yaml:"z_base_offset"`
	ZVariationMin    float64 `yaml:"z_variation_min"`
	ZVariationMax    float64 `yaml:"z_variation_max"`
	RollMin          float64 `yaml:"roll_min"`
	RollMax          float64 `yaml:"roll_max"`
	Pitch            float64 `yaml:"pitch"`
	Yaw              float64 `yaml:"yaw"`
	ApproachDistance float64 `yaml:"approach_distance"`
}

// Validate rejects any inverted range. A bad envelope is a fatal
// configuration error at startup; sampling itself cannot fail.
func (e Envelope) Validate() error {
	ranges := []struct {
		name     string
		min, max float64
	}{
		{"radius_jitter", e.RadiusJitterMin, e.RadiusJitterMax},
		{"y_offset", e.YOffsetMin, e.YOffsetMax},
		{"z_variation", e.ZVariationMin, e.ZVariationMax},
		{"roll", e.RollMin, e.RollMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("pose: envelope %s range inverted: min %v > max %v", r.name, r.min, r.max)
		}
	}
	if e.BaseRadius <= 0 {
		return fmt.Errorf("pose: envelope base_radius must be positive, got %v", e.BaseRadius)
	}
	return nil
}

// #endregion envelope

// #region defaults

// halfPi is the fixed pitch of the canonical approach axis: the
// manipulator faces the object side-on.
const halfPi = 1.5707963267948966

// defaultEnvelopes is the built-in envelope table, keyed by gripper
// variant with a per-object base radius. Wider hands get a larger
// standoff and a deeper vertical search band.
var defaultEnvelopes = map[gripper.Variant]struct {
	radii map[object.Variant]float64
	env   Envelope
}{
	gripper.VariantTwoFinger: {
		radii: map[object.Variant]float64{
			object.VariantBox:      0.25,
			object.VariantCylinder: 0.22,
		},
		env: Envelope{
			RadiusJitterMin: -0.05,
			RadiusJitterMax: 0.05,
			YOffsetMin:      -0.05,
			YOffsetMax:      0.05,
			ZBaseOffset:     -0.1,
			ZVariationMin:   -0.1,
			ZVariationMax:   0.1,
			RollMin:         -0.5,
			RollMax:         0.5,
			Pitch:           halfPi,
		},
	},
	gripper.VariantMultiFinger: {
		radii: map[object.Variant]float64{
			object.VariantBox:      0.35,
			object.VariantCylinder: 0.30,
		},
		env: Envelope{
			RadiusJitterMin:  -0.08,
			RadiusJitterMax:  0.08,
			YOffsetMin:       -0.08,
			YOffsetMax:       0.08,
			ZBaseOffset:      -0.15,
			ZVariationMin:    -0.15,
			ZVariationMax:    0.15,
			RollMin:          -0.3,
			RollMax:          0.3,
			Pitch:            halfPi,
			ApproachDistance: 0.05,
		},
	},
	gripper.VariantPlaceholder: {
		radii: map[object.Variant]float64{
			object.VariantBox:      0.25,
			object.VariantCylinder: 0.22,
		},
		env: Envelope{
			RadiusJitterMin: -0.05,
			RadiusJitterMax: 0.05,
			YOffsetMin:      -0.05,
			YOffsetMax:      0.05,
			ZBaseOffset:     -0.1,
			ZVariationMin:   -0.1,
			ZVariationMax:   0.1,
			RollMin:         -0.5,
			RollMax:         0.5,
			Pitch:           halfPi,
		},
	},
}

// DefaultEnvelope returns the built-in envelope for a gripper/object
// combination.
func DefaultEnvelope(g gripper.Variant, o object.Variant) (Envelope, error) {
	entry, ok := defaultEnvelopes[g]
	if !ok {
		return Envelope{}, fmt.Errorf("pose: no envelope for gripper variant %q", g)
	}
	radius, ok := entry.radii[o]
	if !ok {
		return Envelope{}, fmt.Errorf("pose: no base radius for object variant %q", o)
	}
	env := entry.env
	env.BaseRadius = radius
	return env, nil
}

// #endregion defaults
