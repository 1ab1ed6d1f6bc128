package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"errors"
	"testing"
	"time"
)

// mockLogRepo is a func-field fake for repository.LogRepository.
type mockLogRepo struct {
	listFn   func(ctx context.Context) ([]domain.LogEntry, error)
	getFn    func(ctx context.Context, id int64) (*domain.LogEntry, error)
	createFn func(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error)
}

func (m *mockLogRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	return m.listFn(ctx)
}
func (m *mockLogRepo) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	return m.getFn(ctx, id)
}
func (m *mockLogRepo) Create(ctx context.Context, entry *domain.LogEntry) (*domain.LogEntry, error) {
	return m.createFn(ctx, entry)
}

func floatPtr(v float64) *float64 { return &v }

func TestRecordExecutionValidates(t *testing.T) {
	svc := NewLogbookService(&mockLogRepo{}, &mockExerciseRepo{}, nil)
	ctx := context.Background()

	_, err := svc.RecordExecution(ctx, &domain.LogEntry{DataRealizada: "2026-08-30"})
	if !errors.Is(err, ErrLogValidationFailed) {
		t.Errorf("missing workoutId: err = %v, want ErrLogValidationFailed", err)
	}
	_, err = svc.RecordExecution(ctx, &domain.LogEntry{WorkoutID: "wk-1"})
	if !errors.Is(err, ErrLogValidationFailed) {
		t.Errorf("missing dataRealizada: err = %v, want ErrLogValidationFailed", err)
	}
}

func TestStatsAggregatesVolumeAndMuscles(t *testing.T) {
	logs := []domain.LogEntry{
		{
			ID: 1, WorkoutID: "wk-1", DataRealizada: "2026-08-20T10:00:00Z",
			SetsRealizados: []domain.PerformedSet{
				{ExerciseID: "ex-supino", Reps: 10, CargaKg: floatPtr(60)},
				{ExerciseID: "ex-supino", Reps: 8, CargaKg: floatPtr(70)},
			},
		},
		{
			ID: 2, WorkoutID: "wk-2", DataRealizada: "2026-08-25T10:00:00Z",
			SetsRealizados: []domain.PerformedSet{
				// No load: counts as a set but adds no volume.
				{ExerciseID: "ex-prancha", Reps: 1},
				// Unknown exercise: soft reference, contributes no muscles.
				{ExerciseID: "ex-fantasma", Reps: 12, CargaKg: floatPtr(20)},
			},
		},
	}
	exercises := []domain.Exercise{
		{ID: "ex-supino", Nome: "Supino Reto", GruposMusculares: []string{"peito", "tríceps"}},
		{ID: "ex-prancha", Nome: "Prancha", GruposMusculares: []string{"core"}},
	}

	svc := NewLogbookService(
		&mockLogRepo{listFn: func(ctx context.Context) ([]domain.LogEntry, error) { return logs, nil }},
		&mockExerciseRepo{listFn: func(ctx context.Context) ([]domain.Exercise, error) { return exercises, nil }},
		nil,
	)

	stats, err := svc.Stats(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", stats.TotalWorkouts)
	}
	if stats.TotalSets != 4 {
		t.Errorf("TotalSets = %d, want 4", stats.TotalSets)
	}
	wantVolume := 10*60.0 + 8*70.0 + 12*20.0
	if stats.TotalVolumeKg != wantVolume {
		t.Errorf("TotalVolumeKg = %v, want %v", stats.TotalVolumeKg, wantVolume)
	}
	if stats.MuscleFrequency["peito"] != 2 || stats.MuscleFrequency["core"] != 1 {
		t.Errorf("MuscleFrequency = %v", stats.MuscleFrequency)
	}
	if _, ok := stats.MuscleFrequency["fantasma"]; ok {
		t.Error("unknown exercise contributed muscle frequency")
	}
	if stats.BestLoadKg["ex-supino"] != 70 {
		t.Errorf("BestLoadKg[ex-supino] = %v, want 70", stats.BestLoadKg["ex-supino"])
	}
}

func TestStatsSinceCutoff(t *testing.T) {
	logs := []domain.LogEntry{
		{ID: 1, WorkoutID: "wk-1", DataRealizada: "2026-08-01T10:00:00Z"},
		{ID: 2, WorkoutID: "wk-1", DataRealizada: "2026-08-20T10:00:00Z"},
	}
	svc := NewLogbookService(
		&mockLogRepo{listFn: func(ctx context.Context) ([]domain.LogEntry, error) { return logs, nil }},
		&mockExerciseRepo{listFn: func(ctx context.Context) ([]domain.Exercise, error) { return nil, nil }},
		nil,
	)

	since := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	stats, err := svc.Stats(context.Background(), since)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1 (entry before cutoff excluded)", stats.TotalWorkouts)
	}
}

func TestGetLogMapsNotFound(t *testing.T) {
	svc := NewLogbookService(
		&mockLogRepo{getFn: func(ctx context.Context, id int64) (*domain.LogEntry, error) {
			return nil, repository.ErrNotFound
		}},
		&mockExerciseRepo{},
		nil,
	)
	if _, err := svc.GetLogByID(context.Background(), 9); !errors.Is(err, ErrLogNotFound) {
		t.Errorf("err = %v, want ErrLogNotFound", err)
	}
}
