package repository

import (
	"academia/workout-app/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Fields is a partial record for shallow-merge updates, keyed by the
// JSON field names of the stored document.
type Fields map[string]any

// ExerciseRepository defines the interface for interacting with the
// exercise catalog.
type ExerciseRepository interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	Update(ctx context.Context, id string, fields Fields) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// WorkoutRepository defines the interface for interacting with planned
// workouts.
type WorkoutRepository interface {
	List(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	Update(ctx context.Context, id string, fields Fields) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

// LogRepository defines the interface for the append-only execution log.
// Logs have no update or delete; ids are store-assigned.
type LogRepository interface {
	List(ctx context.Context) ([]domain.LogEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.LogEntry, error)
	Create(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error)
}

// UserRepository defines the interface for interacting with local user
// profiles.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, fields Fields) (*domain.User, error)
}
