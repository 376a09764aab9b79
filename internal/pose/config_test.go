package pose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openmanip/graspbench/go-controller/internal/gripper"
	"github.com/openmanip/graspbench/go-controller/internal/object"
)

const overridesYAML = `
two_finger-box:
  base_radius: 0.3
  radius_jitter_min: -0.02
  radius_jitter_max: 0.02
  z_base_offset: -0.05
  pitch: 1.5707963267948966
`

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "envelopes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	overrides, err := LoadOverrides(writeOverrides(t, overridesYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	env, err := overrides.EnvelopeFor(gripper.VariantTwoFinger, object.VariantBox)
	if err != nil {
		t.Fatalf("envelope for overridden combo: %v", err)
	}
	if env.BaseRadius != 0.3 {
		t.Errorf("overridden base radius: got %v, want 0.3", env.BaseRadius)
	}
	if env.ZBaseOffset != -0.05 {
		t.Errorf("overridden z base offset: got %v, want -0.05", env.ZBaseOffset)
	}

	// Combos absent from the file fall back to the built-ins.
	env, err = overrides.EnvelopeFor(gripper.VariantTwoFinger, object.VariantCylinder)
	if err != nil {
		t.Fatalf("envelope for default combo: %v", err)
	}
	if env.BaseRadius != 0.22 {
		t.Errorf("default base radius: got %v, want 0.22", env.BaseRadius)
	}
}

func TestLoadOverridesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad-yaml", "two_finger-box: [", "parse overrides"},
		{"invalid-envelope", "two_finger-box:\n  base_radius: -1\n", "base_radius"},
		{"inverted-range", "two_finger-box:\n  base_radius: 0.25\n  roll_min: 1\n  roll_max: -1\n", "roll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOverrides(writeOverrides(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestNilOverridesFallBack(t *testing.T) {
	var overrides Overrides
	env, err := overrides.EnvelopeFor(gripper.VariantMultiFinger, object.VariantBox)
	if err != nil {
		t.Fatalf("nil overrides: %v", err)
	}
	if env.BaseRadius != 0.35 {
		t.Errorf("base radius: got %v, want 0.35", env.BaseRadius)
	}
}
