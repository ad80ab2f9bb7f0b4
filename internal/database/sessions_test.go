package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/testutil"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

func TestSaveAndGetSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	session := testutil.NewSession().
		WithExercise("Squats",
			testutil.NewSetLog(1).WithReps(8).WithWeight("100kg").Build(),
			testutil.NewSetLog(2).WithReps(6).WithWeight("100kg").WithNotes("grindy").Build(),
			testutil.NewSetLog(3).Build(),
		).
		WithDuration(10 * time.Minute).
		Build()

	if err := db.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := db.GetSessions(ctx)
	if err != nil {
		t.Fatalf("GetSessions failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].ID != session.ID {
		t.Errorf("ID = %v, want %v", got[0].ID, session.ID)
	}
	if got[0].Duration != 10*time.Minute {
		t.Errorf("Duration = %v, want 10m", got[0].Duration)
	}
	if len(got[0].Exercises) != 1 {
		t.Fatalf("expected 1 exercise log, got %d", len(got[0].Exercises))
	}
	ex := got[0].Exercises[0]
	if ex.Name != "Squats" {
		t.Errorf("exercise name = %q", ex.Name)
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(ex.Sets))
	}
	if util.Deref(ex.Sets[0].Reps) != 8 || ex.Sets[0].WeightResistance != "100kg" {
		t.Errorf("set 1 round-trip mismatch: %+v", ex.Sets[0])
	}
	if ex.Sets[1].Notes != "grindy" {
		t.Errorf("set 2 notes = %q", ex.Sets[1].Notes)
	}
	if ex.Sets[2].Reps != nil {
		t.Errorf("set 3 reps should stay nil, got %v", *ex.Sets[2].Reps)
	}
}

func TestGetSessionsOrderedByDateDesc(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	older := testutil.NewSession().WithDate(time.Now().Add(-48 * time.Hour)).WithExercise("Bench").Build()
	newer := testutil.NewSession().WithDate(time.Now().Add(-1 * time.Hour)).WithExercise("Deadlift").Build()
	for _, s := range []*models.WorkoutSession{older, newer} {
		if err := db.SaveSession(ctx, s); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	got, err := db.GetSessions(ctx)
	if err != nil {
		t.Fatalf("GetSessions failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("sessions not ordered newest first")
	}
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	session := testutil.NewSession().
		WithExercise("Rows", testutil.NewSetLog(1).WithReps(10).Build()).
		Build()
	if err := db.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	if err := db.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	got, err := db.GetSessions(ctx)
	if err != nil {
		t.Fatalf("GetSessions failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 sessions after delete, got %d", len(got))
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM set_logs").Scan(&count); err != nil {
		t.Fatalf("count set_logs: %v", err)
	}
	if count != 0 {
		t.Errorf("expected set_logs cleaned up, got %d rows", count)
	}
}

func TestSaveSessionDuplicateID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	session := testutil.NewSession().WithExercise("Press").Build()
	if err := db.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	err := db.SaveSession(ctx, session)
	if err == nil {
		t.Fatalf("expected duplicate insert to fail")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Errorf("expected *OpError, got %T", err)
	}
}

func TestRecentExerciseNames(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	sessions := []*models.WorkoutSession{
		testutil.NewSession().WithDate(time.Now().Add(-72 * time.Hour)).WithExercise("Squats").Build(),
		testutil.NewSession().WithDate(time.Now().Add(-48 * time.Hour)).WithExercise("Bench").Build(),
		testutil.NewSession().WithDate(time.Now().Add(-24 * time.Hour)).WithExercise("Squats").Build(),
	}
	for _, s := range sessions {
		if err := db.SaveSession(ctx, s); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	names, err := db.RecentExerciseNames(ctx, 5)
	if err != nil {
		t.Fatalf("RecentExerciseNames failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 distinct names, got %v", names)
	}
	if names[0] != "Squats" || names[1] != "Bench" {
		t.Errorf("names = %v, want [Squats Bench]", names)
	}

	names, err = db.RecentExerciseNames(ctx, 1)
	if err != nil {
		t.Fatalf("RecentExerciseNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Squats" {
		t.Errorf("limited names = %v, want [Squats]", names)
	}

	names, err = db.RecentExerciseNames(ctx, 0)
	if err != nil || names != nil {
		t.Errorf("limit 0 should yield nil, nil; got %v, %v", names, err)
	}
}
