package main

import (
	"path/filepath"
	"testing"
)

func TestResolveArchivePath(t *testing.T) {
	tests := []struct {
		name     string
		db       string
		wantPath string
		enabled  bool
	}{
		{"default-under-out", "", filepath.Join("data", "trial_archive.db"), true},
		{"explicit-path", "/tmp/trials.db", "/tmp/trials.db", true},
		{"disabled", "none", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, enabled := resolveArchivePath(tt.db, "data")
			if enabled != tt.enabled {
				t.Errorf("enabled: got %v, want %v", enabled, tt.enabled)
			}
			if path != tt.wantPath {
				t.Errorf("path: got %q, want %q", path, tt.wantPath)
			}
		})
	}
}
