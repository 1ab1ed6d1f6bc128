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

// sqliteExerciseRepository implements repository.ExerciseRepository
type sqliteExerciseRepository struct {
	db *DB
}

// NewExerciseRepository creates a new Exercise repository backed by the
// embedded database.
func NewExerciseRepository(db *DB) repository.ExerciseRepository {
	return &sqliteExerciseRepository{db: db}
}

// List returns every catalog entry. Order is stable within a session
// (primary key order) but otherwise unspecified.
func (r *sqliteExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT doc FROM exercises ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var ex domain.Exercise
		if err := json.Unmarshal(doc, &ex); err != nil {
			return nil, fmt.Errorf("failed to decode exercise document: %w", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

// GetByID retrieves an exercise by its ID.
func (r *sqliteExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var doc []byte
	err := r.db.conn.QueryRowContext(ctx, `SELECT doc FROM exercises WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var ex domain.Exercise
	if err := json.Unmarshal(doc, &ex); err != nil {
		return nil, fmt.Errorf("failed to decode exercise document: %w", err)
	}
	return &ex, nil
}

// Create inserts a new exercise, stamping CreatedAt/UpdatedAt. It fails
// with ErrDuplicateKey when the id already exists; the existing record
// is never overwritten.
func (r *sqliteExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Nome == "" || len(exercise.GruposMusculares) == 0 {
		return nil, errors.New("exercise id, nome and gruposMusculares are required")
	}

	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	doc, err := json.Marshal(exercise)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exercise document: %w", err)
	}

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM exercises WHERE id = ?)`, exercise.ID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateKey
	}

	ts := now.Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO exercises (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		exercise.ID, doc, ts, ts); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return exercise, nil
}

// Update shallow-merges partial fields over the stored document and
// refreshes UpdatedAt. It fails with ErrNotFound when the id is absent
// and leaves the collection unchanged.
func (r *sqliteExerciseRepository) Update(ctx context.Context, id string, fields repository.Fields) (*domain.Exercise, error) {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var doc []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM exercises WHERE id = ?`, id).Scan(&doc)
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

	res, err := tx.ExecContext(ctx,
		`UPDATE exercises SET doc = ?, updated_at = ? WHERE id = ?`,
		merged, now.Format(time.RFC3339Nano), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, repository.ErrUpdateFailed
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var ex domain.Exercise
	if err := json.Unmarshal(merged, &ex); err != nil {
		return nil, fmt.Errorf("failed to decode merged exercise: %w", err)
	}
	return &ex, nil
}

// Delete removes a catalog entry. It exists for completeness; the
// offline flow never exercises it.
func (r *sqliteExerciseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.conn.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
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

// Count reports how many catalog entries exist. The seed loader uses it
// as its "already seeded" check.
func (r *sqliteExerciseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
