package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrDuplicateWorkout = errors.New("a workout with this id already exists")
)

// --- Service Interface ---
type WorkoutService interface {
	CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetWorkoutByID(ctx context.Context, id string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, id string, fields repository.Fields) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	recorder    MutationRecorder
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, recorder MutationRecorder) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		recorder:    recorder,
	}
}

// CreateWorkout stores a new planned workout. An empty id gets a
// generated one. Blocos may be empty; block and exercise order within
// the workout is execution order and is preserved as given.
func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.ID == "" {
		workout.ID = "wk-" + uuid.NewString()
	}

	created, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateWorkout
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Record("/api/v1/workouts", "POST", created)
	}
	return created, nil
}

// GetWorkoutByID retrieves a single planned workout.
func (s *workoutService) GetWorkoutByID(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// ListWorkouts returns every planned workout.
func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

// UpdateWorkout shallow-merges partial fields over an existing workout.
func (s *workoutService) UpdateWorkout(ctx context.Context, id string, fields repository.Fields) (*domain.Workout, error) {
	updated, err := s.workoutRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Record("/api/v1/workouts/"+id, "PUT", updated)
	}
	return updated, nil
}
