package sqlite

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// sqliteWorkoutRepository implements repository.WorkoutRepository
type sqliteWorkoutRepository struct {
	db *DB
}

// NewWorkoutRepository creates a new Workout repository backed by the
// embedded database.
func NewWorkoutRepository(db *DB) repository.WorkoutRepository {
	return &sqliteWorkoutRepository{db: db}
}

// List returns every planned workout in primary key order.
func (r *sqliteWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT doc FROM workouts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var w domain.Workout
		if err := json.Unmarshal(doc, &w); err != nil {
			return nil, fmt.Errorf("failed to decode workout document: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// GetByID retrieves a workout by its ID.
func (r *sqliteWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var doc []byte
	err := r.db.conn.QueryRowContext(ctx, `SELECT doc FROM workouts WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var w domain.Workout
	if err := json.Unmarshal(doc, &w); err != nil {
		return nil, fmt.Errorf("failed to decode workout document: %w", err)
	}
	return &w, nil
}

// Create inserts a new workout, stamping timestamps. Fails with
// ErrDuplicateKey when the id already exists. Blocos may be empty but
// must be present structurally, so a nil slice is normalized.
func (r *sqliteWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.ID == "" {
		return nil, errors.New("workout id is required")
	}
	if workout.Blocos == nil {
		workout.Blocos = []domain.WorkoutBlock{}
	}

	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	doc, err := json.Marshal(workout)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workout document: %w", err)
	}

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM workouts WHERE id = ?)`, workout.ID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateKey
	}

	ts := now.Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO workouts (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		workout.ID, doc, ts, ts); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update shallow-merges partial fields over the stored document.
func (r *sqliteWorkoutRepository) Update(ctx context.Context, id string, fields repository.Fields) (*domain.Workout, error) {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var doc []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM workouts WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	merged, err := mergeDoc(doc, fields, id, now)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE workouts SET doc = ?, updated_at = ? WHERE id = ?`,
		merged, now.Format(time.RFC3339Nano), id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var w domain.Workout
	if err := json.Unmarshal(merged, &w); err != nil {
		return nil, fmt.Errorf("failed to decode merged workout: %w", err)
	}
	return &w, nil
}

// Delete removes a workout. Not exercised by the offline flow.
func (r *sqliteWorkoutRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.conn.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
