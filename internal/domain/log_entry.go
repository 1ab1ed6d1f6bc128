// internal/domain/log_entry.go
package domain

import (
	"time"
)

// PerformedSet records one executed set inside a log entry.
type PerformedSet struct {
	ExerciseID string   `json:"exerciseId"`
	SerieIndex int      `json:"serieIndex"`
	Reps       int      `json:"reps"`
	CargaKg    *float64 `json:"cargaKg,omitempty"`
	TempoSeg   *int     `json:"tempoSeg,omitempty"`
	RPE        *float64 `json:"rpe,omitempty"`
}

// LogEntry is the append-only record of one completed workout execution.
//
// WorkoutID is a soft reference to a Workout; referential integrity is
// not enforced. ID is store-assigned (autoincrement) rather than
// caller-supplied, and logs are never updated or deleted.
type LogEntry struct {
	ID             int64          `json:"id,omitempty"`
	WorkoutID      string         `json:"workoutId"`
	DataRealizada  string         `json:"dataRealizada"`
	SetsRealizados []PerformedSet `json:"setsRealizados"`
	Observacoes    string         `json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
