package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
)

// SaveSession persists a completed workout session with its exercise
// and set logs in a single transaction.
func (d *Database) SaveSession(ctx context.Context, session *models.WorkoutSession) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapSessionErr("save", session.ID.String(), err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, date, duration_seconds) VALUES (?, ?, ?)",
		session.ID.String(), session.Date.UTC(), int(session.Duration.Seconds()))
	if err != nil {
		return wrapSessionErr("save", session.ID.String(), rollbackWithLog(tx, err))
	}

	for pos, ex := range session.Exercises {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO exercise_logs (session_id, position, name) VALUES (?, ?, ?)",
			session.ID.String(), pos, ex.Name)
		if err != nil {
			return wrapSessionErr("save", session.ID.String(), rollbackWithLog(tx, err))
		}
		logID, err := res.LastInsertId()
		if err != nil {
			return wrapSessionErr("save", session.ID.String(), rollbackWithLog(tx, err))
		}
		for _, set := range ex.Sets {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO set_logs (exercise_log_id, set_number, reps, weight_resistance, notes, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				logID, set.SetNumber, toNullableArg(set.Reps), set.WeightResistance, set.Notes, set.CreatedAt.UTC())
			if err != nil {
				return wrapSessionErr("save", session.ID.String(), rollbackWithLog(tx, err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapSessionErr("save", session.ID.String(), err)
	}
	return nil
}

// DeleteSession removes a stored session and its logs.
func (d *Database) DeleteSession(ctx context.Context, id uuid.UUID) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapSessionErr("delete", id.String(), err)
	}
	_, err = tx.ExecContext(ctx,
		`DELETE FROM set_logs WHERE exercise_log_id IN
		 (SELECT id FROM exercise_logs WHERE session_id = ?)`, id.String())
	if err != nil {
		return wrapSessionErr("delete", id.String(), rollbackWithLog(tx, err))
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM exercise_logs WHERE session_id = ?", id.String())
	if err != nil {
		return wrapSessionErr("delete", id.String(), rollbackWithLog(tx, err))
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id.String())
	if err != nil {
		return wrapSessionErr("delete", id.String(), rollbackWithLog(tx, err))
	}
	if err := tx.Commit(); err != nil {
		return wrapSessionErr("delete", id.String(), err)
	}
	return nil
}

// GetSessions returns all stored sessions, newest first, with their
// exercise and set logs attached.
func (d *Database) GetSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, date, duration_seconds FROM sessions ORDER BY date DESC")
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		var (
			idStr   string
			date    time.Time
			seconds int
		)
		if err := rows.Scan(&idStr, &date, &seconds); err != nil {
			return nil, wrapSessionErr("list", "", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, wrapSessionErr("list", idStr, err)
		}
		sessions = append(sessions, models.WorkoutSession{
			ID:       id,
			Date:     date,
			Duration: time.Duration(seconds) * time.Second,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", "", err)
	}

	for i := range sessions {
		exercises, err := d.exercisesForSession(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Exercises = exercises
	}
	return sessions, nil
}

func (d *Database) exercisesForSession(ctx context.Context, sessionID uuid.UUID) ([]models.ExerciseLog, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, name FROM exercise_logs WHERE session_id = ? ORDER BY position ASC",
		sessionID.String())
	if err != nil {
		return nil, wrapSessionErr("list", sessionID.String(), err)
	}
	defer rows.Close()

	var (
		logs   []models.ExerciseLog
		logIDs []int64
	)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, wrapSessionErr("list", sessionID.String(), err)
		}
		logs = append(logs, models.ExerciseLog{Name: name})
		logIDs = append(logIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", sessionID.String(), err)
	}

	for i, logID := range logIDs {
		sets, err := d.setsForExerciseLog(ctx, logID)
		if err != nil {
			return nil, wrapSessionErr("list", sessionID.String(), err)
		}
		logs[i].Sets = sets
	}
	return logs, nil
}

func (d *Database) setsForExerciseLog(ctx context.Context, logID int64) ([]models.SetLog, error) {
	rows, err := d.DB.QueryContext(ctx,
		`SELECT set_number, reps, weight_resistance, notes, created_at
		 FROM set_logs WHERE exercise_log_id = ? ORDER BY set_number ASC, id ASC`, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []models.SetLog
	for rows.Next() {
		var (
			set    models.SetLog
			weight *string
			notes  *string
		)
		if err := rows.Scan(&set.SetNumber, &set.Reps, &weight, &notes, &set.CreatedAt); err != nil {
			return nil, err
		}
		if weight != nil {
			set.WeightResistance = *weight
		}
		if notes != nil {
			set.Notes = *notes
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// RecentExerciseNames returns distinct exercise names, most recently
// used first, for input suggestions.
func (d *Database) RecentExerciseNames(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := d.DB.QueryContext(ctx,
		`SELECT e.name, MAX(s.date) AS last_used
		 FROM exercise_logs e JOIN sessions s ON s.id = e.session_id
		 GROUP BY e.name ORDER BY last_used DESC LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSessionErr("recent-names", "", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var (
			name     string
			lastUsed time.Time
		)
		if err := rows.Scan(&name, &lastUsed); err != nil {
			return nil, wrapSessionErr("recent-names", "", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
