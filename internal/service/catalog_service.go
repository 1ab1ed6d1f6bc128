package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository" // Import repository package
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("an exercise with this id already exists")
	ErrValidationFailed  = errors.New("exercise validation failed")
)

// MutationRecorder mirrors successful local mutations into the offline
// sync queue. Implementations decide whether the write actually needs to
// be queued (e.g. only while disconnected). A nil recorder is allowed.
type MutationRecorder interface {
	Record(endpoint, method string, payload any)
}

// ExerciseFilter is the filter specification for catalog searches. Every
// predicate is optional; empty values impose no constraint and supplied
// predicates are ANDed.
type ExerciseFilter struct {
	Muscle    string
	Equipment string
	Level     string
	Query     string
}

// FilterExercises applies the filter to a catalog list. It is a pure
// function over the list: muscle is set membership on gruposMusculares,
// equipment and level are exact matches, query is a case-insensitive
// substring match on nome.
func FilterExercises(exercises []domain.Exercise, filter ExerciseFilter) []domain.Exercise {
	matched := make([]domain.Exercise, 0, len(exercises))
	query := strings.ToLower(filter.Query)
	for _, ex := range exercises {
		if filter.Muscle != "" && !ex.HasMuscleGroup(filter.Muscle) {
			continue
		}
		if filter.Equipment != "" && ex.Equipamento != filter.Equipment {
			continue
		}
		if filter.Level != "" && string(ex.Nivel) != filter.Level {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(ex.Nome), query) {
			continue
		}
		matched = append(matched, ex)
	}
	return matched
}

// --- Service Interface ---
type CatalogService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	SearchExercises(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, id string, fields repository.Fields) (*domain.Exercise, error)
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	recorder     MutationRecorder
}

// NewCatalogService creates a new instance of catalogService. recorder
// may be nil when offline mirroring is not wanted (tests, CLI).
func NewCatalogService(exerciseRepo repository.ExerciseRepository, recorder MutationRecorder) CatalogService {
	return &catalogService{
		exerciseRepo: exerciseRepo,
		recorder:     recorder,
	}
}

// CreateExercise validates and stores a new catalog entry. An empty id
// gets a generated one; nome and gruposMusculares are required.
func (s *catalogService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Nome == "" || len(exercise.GruposMusculares) == 0 {
		return nil, ErrValidationFailed
	}
	if exercise.Nivel != "" && !exercise.Nivel.Valid() {
		return nil, ErrValidationFailed
	}
	if exercise.ID == "" {
		exercise.ID = "ex-" + uuid.NewString()
	}

	created, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateExercise
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Record("/api/v1/exercises", "POST", created)
	}
	return created, nil
}

// GetExerciseByID retrieves a single exercise.
func (s *catalogService) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err // Propagate other repository errors
	}
	return exercise, nil
}

// ListExercises returns the full catalog.
func (s *catalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// SearchExercises filters the current catalog in memory. No pagination;
// the full matching set is returned.
func (s *catalogService) SearchExercises(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterExercises(exercises, filter), nil
}

// UpdateExercise shallow-merges partial fields over an existing entry.
func (s *catalogService) UpdateExercise(ctx context.Context, id string, fields repository.Fields) (*domain.Exercise, error) {
	updated, err := s.exerciseRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Record("/api/v1/exercises/"+id, "PUT", updated)
	}
	return updated, nil
}
