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

// sqliteUserRepository implements repository.UserRepository
type sqliteUserRepository struct {
	db *DB
}

// NewUserRepository creates a new User repository backed by the embedded
// database.
func NewUserRepository(db *DB) repository.UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT doc FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var u domain.User
		if err := json.Unmarshal(doc, &u); err != nil {
			return nil, fmt.Errorf("failed to decode user document: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *sqliteUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var doc []byte
	err := r.db.conn.QueryRowContext(ctx, `SELECT doc FROM users WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(doc, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	return &u, nil
}

func (r *sqliteUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, errors.New("user id is required")
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user document: %w", err)
	}

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, user.ID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateKey
	}

	ts := now.Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		user.ID, doc, ts, ts); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *sqliteUserRepository) Update(ctx context.Context, id string, fields repository.Fields) (*domain.User, error) {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var doc []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM users WHERE id = ?`, id).Scan(&doc)
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
		`UPDATE users SET doc = ?, updated_at = ? WHERE id = ?`,
		merged, now.Format(time.RFC3339Nano), id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var u domain.User
	if err := json.Unmarshal(merged, &u); err != nil {
		return nil, fmt.Errorf("failed to decode merged user: %w", err)
	}
	return &u, nil
}
