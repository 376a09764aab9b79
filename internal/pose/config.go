package pose

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
)

// #endregion imports

// #region overrides

// Overrides maps "<gripper>-<object>" combination names to envelopes
// loaded from a YAML file. Combinations absent from the file keep the
// built-in defaults.
type Overrides map[string]Envelope

// LoadOverrides reads and validates an envelope override file.
func LoadOverrides(path string) (Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pose: read overrides: %w", err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("pose: parse overrides: %w", err)
	}

	for name, env := range overrides {
		if err := env.Validate(); err != nil {
			return nil, fmt.Errorf("pose: override %q: %w", name, err)
		}
	}
	return overrides, nil
}

// EnvelopeFor resolves the envelope for a combination: the override if
// present, else the built-in default.
func (o Overrides) EnvelopeFor(g gripper.Variant, obj object.Variant) (Envelope, error) {
	if o != nil {
		if env, ok := o[fmt.Sprintf("%s-%s", g, obj)]; ok {
			return env, nil
		}
	}
	return DefaultEnvelope(g, obj)
}

// #endregion overrides
