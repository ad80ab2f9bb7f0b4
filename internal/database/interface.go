package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
)

// SessionStore defines workout-session persistence operations.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.WorkoutSession) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
	GetSessions(ctx context.Context) ([]models.WorkoutSession, error)
	RecentExerciseNames(ctx context.Context, limit int) ([]string, error)
}

// SettingsStore defines key-value settings operations.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Store combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	SessionStore
	SettingsStore
}

var _ Store = (*Database)(nil)
