package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if MinRestDuration <= 0 || MaxRestDuration <= MinRestDuration {
		t.Fatalf("rest duration bounds are inconsistent")
	}
	if DefaultRestDuration < MinRestDuration || DefaultRestDuration > MaxRestDuration {
		t.Fatalf("DefaultRestDuration outside allowed range")
	}
	if MinTotalSets != 1 || MaxTotalSets <= MinTotalSets {
		t.Fatalf("unexpected set count limits")
	}
	if AppName == "" || DBFileName == "" {
		t.Fatalf("AppName and DBFileName should not be empty")
	}
}

func TestLoadFileMissing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if f != DefaultFile() {
		t.Fatalf("missing file should yield defaults, got %+v", f)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "default_rest_seconds = 90\nauto_advance_on_rest_expiry = false\ntheme = \"dracula\"\nsound = \"double\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if f.RestDuration() != 90*time.Second {
		t.Errorf("RestDuration = %v, want 90s", f.RestDuration())
	}
	if f.AutoAdvanceOnRestExpiry {
		t.Errorf("expected auto advance disabled")
	}
	if f.Theme != "dracula" || f.Sound != "double" {
		t.Errorf("unexpected theme/sound: %q %q", f.Theme, f.Sound)
	}
}

func TestLoadFileClampsRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_rest_seconds = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if f.RestDuration() != MinRestDuration {
		t.Errorf("RestDuration = %v, want clamped to %v", f.RestDuration(), MinRestDuration)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_rest_seconds = \"oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	f, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if f != DefaultFile() {
		t.Fatalf("malformed file should fall back to defaults, got %+v", f)
	}
}
