package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SnapshotVersion is the format version written into every export.
const SnapshotVersion = "1.0.0"

// Scope selects which collections an export includes.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeCatalog  Scope = "catalog"
	ScopeWorkouts Scope = "workouts"
	ScopeLogs     Scope = "logs"
)

var ErrInvalidScope = errors.New("invalid export scope")

// Snapshot is the versioned export document. Collection fields are
// pointers so that an included-but-empty collection still serializes its
// key, while scopes that exclude a collection omit the key entirely.
type Snapshot struct {
	Version    string              `json:"version"`
	ExportedAt time.Time           `json:"exportedAt"`
	Catalog    *[]domain.Exercise  `json:"catalog,omitempty"`
	Workouts   *[]domain.Workout   `json:"workouts,omitempty"`
	Logs       *[]domain.LogEntry  `json:"logs,omitempty"`
}

// ImportResult reports the outcome of an import. Success is true only
// when no record produced an error.
type ImportResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ExportFilename builds the download filename convention for a
// user-initiated export: <app-name>-export-<YYYY-MM-DD>.json.
func ExportFilename(appName string, t time.Time) string {
	return fmt.Sprintf("%s-export-%s.json", appName, t.Format("2006-01-02"))
}

// --- Service Interface ---
type TransferService interface {
	Export(ctx context.Context, scope Scope) (*Snapshot, error)
	Import(ctx context.Context, raw []byte) *ImportResult
}

// transferService implements the TransferService interface.
type transferService struct {
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
	logRepo      repository.LogRepository
}

// NewTransferService creates a new instance of transferService.
func NewTransferService(exerciseRepo repository.ExerciseRepository, workoutRepo repository.WorkoutRepository, logRepo repository.LogRepository) TransferService {
	return &transferService{
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
		logRepo:      logRepo,
	}
}

// Export serializes the selected collections into a snapshot. A scope
// other than "all" includes only its own key.
func (s *transferService) Export(ctx context.Context, scope Scope) (*Snapshot, error) {
	switch scope {
	case ScopeAll, ScopeCatalog, ScopeWorkouts, ScopeLogs:
	default:
		return nil, ErrInvalidScope
	}

	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
	}

	if scope == ScopeAll || scope == ScopeCatalog {
		exercises, err := s.exerciseRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if exercises == nil {
			exercises = []domain.Exercise{}
		}
		snapshot.Catalog = &exercises
	}
	if scope == ScopeAll || scope == ScopeWorkouts {
		workouts, err := s.workoutRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if workouts == nil {
			workouts = []domain.Workout{}
		}
		snapshot.Workouts = &workouts
	}
	if scope == ScopeAll || scope == ScopeLogs {
		logs, err := s.logRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if logs == nil {
			logs = []domain.LogEntry{}
		}
		snapshot.Logs = &logs
	}

	return snapshot, nil
}

// snapshotEnvelope keeps every candidate record raw so one bad record
// never aborts decoding of its siblings.
type snapshotEnvelope struct {
	Version  string            `json:"version"`
	Catalog  []json.RawMessage `json:"catalog"`
	Workouts []json.RawMessage `json:"workouts"`
	Logs     []json.RawMessage `json:"logs"`
}

// Import processes each present top-level key independently and
// tolerantly. Catalog and workout records are validated, silently
// skipped when the id already exists (import never overwrites), and
// inserted otherwise. Logs are validated and always inserted: duplicate
// imports append duplicate log entries. That asymmetry is the documented
// behavior, not an oversight.
//
// The call never fails past its own boundary: malformed top-level JSON
// is the only terminal condition, reported as a single error entry.
func (s *transferService) Import(ctx context.Context, raw []byte) *ImportResult {
	errs := []string{}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &ImportResult{Success: false, Errors: []string{fmt.Sprintf("malformed snapshot: %v", err)}}
	}

	for i, rec := range envelope.Catalog {
		var ex domain.Exercise
		if err := json.Unmarshal(rec, &ex); err != nil {
			errs = append(errs, fmt.Sprintf("catalog record %d: %v", i, err))
			continue
		}
		if ex.ID == "" || ex.Nome == "" || len(ex.GruposMusculares) == 0 {
			errs = append(errs, fmt.Sprintf("invalid exercise %q: missing required fields", ex.Nome))
			continue
		}
		_, err := s.exerciseRepo.GetByID(ctx, ex.ID)
		if err == nil {
			continue // already present, never overwrite
		}
		if !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Sprintf("exercise %q: %v", ex.Nome, err))
			continue
		}
		if _, err := s.exerciseRepo.Create(ctx, &ex); err != nil {
			errs = append(errs, fmt.Sprintf("exercise %q: %v", ex.Nome, err))
		}
	}

	for i, rec := range envelope.Workouts {
		var w domain.Workout
		if err := json.Unmarshal(rec, &w); err != nil {
			errs = append(errs, fmt.Sprintf("workout record %d: %v", i, err))
			continue
		}
		// Blocos is structurally required: an empty array is fine, but
		// an absent or null value is not. Both decode to a nil slice.
		if w.ID == "" || w.Blocos == nil {
			errs = append(errs, fmt.Sprintf("invalid workout %q: missing required fields", w.Nome))
			continue
		}
		_, err := s.workoutRepo.GetByID(ctx, w.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Sprintf("workout %q: %v", w.Nome, err))
			continue
		}
		if _, err := s.workoutRepo.Create(ctx, &w); err != nil {
			errs = append(errs, fmt.Sprintf("workout %q: %v", w.Nome, err))
		}
	}

	for i, rec := range envelope.Logs {
		var entry domain.LogEntry
		if err := json.Unmarshal(rec, &entry); err != nil {
			errs = append(errs, fmt.Sprintf("log record %d: %v", i, err))
			continue
		}
		if entry.WorkoutID == "" || entry.DataRealizada == "" {
			errs = append(errs, fmt.Sprintf("invalid log record %d: missing required fields", i))
			continue
		}
		if _, err := s.logRepo.Create(ctx, &entry); err != nil {
			errs = append(errs, fmt.Sprintf("log record %d: %v", i, err))
		}
	}

	return &ImportResult{Success: len(errs) == 0, Errors: errs}
}
