package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"errors"
	"time"
)

var (
	ErrLogNotFound         = errors.New("log entry not found")
	ErrLogValidationFailed = errors.New("log entry validation failed")
)

// ProgressStats aggregates the execution log for the progress view.
// Volume is tonnage: reps x load summed over every performed set that
// carries a load.
type ProgressStats struct {
	TotalWorkouts   int                `json:"totalWorkouts"`
	TotalSets       int                `json:"totalSets"`
	TotalVolumeKg   float64            `json:"totalVolumeKg"`
	MuscleFrequency map[string]int     `json:"muscleFrequency,omitempty"`
	BestLoadKg      map[string]float64 `json:"bestLoadKg,omitempty"`
}

// --- Service Interface ---
type LogbookService interface {
	RecordExecution(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error)
	GetLogByID(ctx context.Context, id int64) (*domain.LogEntry, error)
	ListLogs(ctx context.Context) ([]domain.LogEntry, error)
	Stats(ctx context.Context, since time.Time) (*ProgressStats, error)
}

// logbookService implements the LogbookService interface.
type logbookService struct {
	logRepo      repository.LogRepository
	exerciseRepo repository.ExerciseRepository
	recorder     MutationRecorder
}

// NewLogbookService creates a new instance of logbookService.
func NewLogbookService(logRepo repository.LogRepository, exerciseRepo repository.ExerciseRepository, recorder MutationRecorder) LogbookService {
	return &logbookService{
		logRepo:      logRepo,
		exerciseRepo: exerciseRepo,
		recorder:     recorder,
	}
}

// RecordExecution appends one completed workout execution. WorkoutID is
// a soft reference: the referenced workout is not required to exist.
func (s *logbookService) RecordExecution(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error) {
	if entry.WorkoutID == "" || entry.DataRealizada == "" {
		return nil, ErrLogValidationFailed
	}

	created, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Record("/api/v1/logs", "POST", created)
	}
	return created, nil
}

// GetLogByID retrieves one log entry.
func (s *logbookService) GetLogByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	entry, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ListLogs returns the whole execution log in insertion order.
func (s *logbookService) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	return s.logRepo.List(ctx)
}

// Stats aggregates log entries performed at or after since. Entries
// whose dataRealizada does not parse are counted for totals but skipped
// for the date cutoff. Muscle frequency resolves each performed set's
// exercise through the catalog; a missing referent simply contributes
// nothing (soft reference, degrade gracefully).
func (s *logbookService) Stats(ctx context.Context, since time.Time) (*ProgressStats, error) {
	logs, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	musclesByExercise := make(map[string][]string, len(exercises))
	for _, ex := range exercises {
		musclesByExercise[ex.ID] = ex.GruposMusculares
	}

	stats := &ProgressStats{
		MuscleFrequency: make(map[string]int),
		BestLoadKg:      make(map[string]float64),
	}
	for _, entry := range logs {
		if !since.IsZero() {
			performed, err := time.Parse(time.RFC3339, entry.DataRealizada)
			if err == nil && performed.Before(since) {
				continue
			}
		}

		stats.TotalWorkouts++
		stats.TotalSets += len(entry.SetsRealizados)
		for _, set := range entry.SetsRealizados {
			if set.CargaKg != nil {
				stats.TotalVolumeKg += float64(set.Reps) * *set.CargaKg
				if *set.CargaKg > stats.BestLoadKg[set.ExerciseID] {
					stats.BestLoadKg[set.ExerciseID] = *set.CargaKg
				}
			}
			for _, muscle := range musclesByExercise[set.ExerciseID] {
				stats.MuscleFrequency[muscle]++
			}
		}
	}
	return stats, nil
}
