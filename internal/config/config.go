// Package config holds application constants and the optional file
// configuration loaded from the data directory.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// File is the optional on-disk configuration. Every field has a sane
// default; malformed or out-of-range values are clamped rather than
// rejected.
type File struct {
	DefaultRestSeconds      int    `toml:"default_rest_seconds"`
	AutoAdvanceOnRestExpiry bool   `toml:"auto_advance_on_rest_expiry"`
	Theme                   string `toml:"theme"`
	Sound                   string `toml:"sound"`
}

// DefaultFile returns the configuration used when no config file exists.
func DefaultFile() File {
	return File{
		DefaultRestSeconds:      int(DefaultRestDuration.Seconds()),
		AutoAdvanceOnRestExpiry: true,
		Theme:                   "default",
		Sound:                   "chime",
	}
}

// LoadFile reads the TOML config at path. A missing file yields the
// defaults; a malformed file yields the defaults plus the parse error
// so the caller can log it without aborting startup.
func LoadFile(path string) (File, error) {
	f := DefaultFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, err
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return DefaultFile(), err
	}
	f.clamp()
	return f, nil
}

// RestDuration returns the configured default rest period.
func (f File) RestDuration() time.Duration {
	return time.Duration(f.DefaultRestSeconds) * time.Second
}

func (f *File) clamp() {
	if f.DefaultRestSeconds < int(MinRestDuration.Seconds()) {
		f.DefaultRestSeconds = int(MinRestDuration.Seconds())
	}
	if f.DefaultRestSeconds > int(MaxRestDuration.Seconds()) {
		f.DefaultRestSeconds = int(MaxRestDuration.Seconds())
	}
	if f.Theme == "" {
		f.Theme = "default"
	}
	if f.Sound == "" {
		f.Sound = "chime"
	}
}
