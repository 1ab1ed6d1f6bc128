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

// sqliteLogRepository implements repository.LogRepository
type sqliteLogRepository struct {
	db *DB
}

// NewLogRepository creates a new execution-log repository backed by the
// embedded database.
func NewLogRepository(db *DB) repository.LogRepository {
	return &sqliteLogRepository{db: db}
}

// List returns every log entry in insertion order.
func (r *sqliteLogRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT id, doc FROM logs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var id int64
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		var e domain.LogEntry
		if err := json.Unmarshal(doc, &e); err != nil {
			return nil, fmt.Errorf("failed to decode log document: %w", err)
		}
		e.ID = id
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a single log entry by its store-assigned id.
func (r *sqliteLogRepository) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	var doc []byte
	err := r.db.conn.QueryRowContext(ctx, `SELECT doc FROM logs WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var e domain.LogEntry
	if err := json.Unmarshal(doc, &e); err != nil {
		return nil, fmt.Errorf("failed to decode log document: %w", err)
	}
	e.ID = id
	return &e, nil
}

// Create appends a log entry. The id is assigned by the store
// (autoincrement) and CreatedAt is stamped with the current time.
// Logs are append-only: there is no uniqueness check, so inserting the
// same payload twice produces two entries.
func (r *sqliteLogRepository) Create(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error) {
	if entry.WorkoutID == "" || entry.DataRealizada == "" {
		return nil, errors.New("log workoutId and dataRealizada are required")
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.ID = 0 // always store-assigned

	doc, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode log document: %w", err)
	}

	res, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO logs (doc, workout_id, data_realizada, created_at) VALUES (?, ?, ?, ?)`,
		doc, entry.WorkoutID, entry.DataRealizada, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}
