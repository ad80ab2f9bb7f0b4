package config

import "time"

// Timer parameters.
const (
	// TickInterval is the countdown refresh cadence. A UI-smoothness
	// target, not a correctness requirement: expiry is detected by
	// comparing the wall-clock target time against now.
	TickInterval = 100 * time.Millisecond

	DefaultRestDuration = 60 * time.Second
	MinRestDuration     = 15 * time.Second
	MaxRestDuration     = 300 * time.Second
)

// Set count limits enforced at the input boundary.
const (
	MinTotalSets = 1
	MaxTotalSets = 20
)

// Settings keys.
const (
	SettingNotificationSound = "notification_sound"
	SettingColorTheme        = "color_theme"
)

// Database/application settings.
const (
	AppName        = "simpletimer"
	DBFileName     = "workouts.db"
	LogFileName    = "simpletimer.log"
	ConfigFileName = "config.toml"
)

// Display limits.
const (
	MaxExerciseNameLength = 100
	MaxRecentNames        = 5
)
