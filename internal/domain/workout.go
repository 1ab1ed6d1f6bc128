// internal/domain/workout.go
package domain

import (
	"time"
)

// SetType identifies the prescription style of a planned set.
type SetType string

const (
	SetPadrao      SetType = "padrão"
	SetAmrap       SetType = "amrap"
	SetEmom        SetType = "emom"
	SetIntervalado SetType = "intervalado"
	SetDrop        SetType = "drop"
	SetSuperset    SetType = "superset"
	SetPiramide    SetType = "pirâmide"
)

// BlockType identifies the training purpose of a workout block.
type BlockType string

const (
	BlockAquecimento BlockType = "aquecimento"
	BlockPrincipal   BlockType = "principal"
	BlockAcessorio   BlockType = "acessorio"
	BlockMobilidade  BlockType = "mobilidade"
)

// Set is one planned unit of work within an exercise prescription.
// No field is individually required; a set is meaningful when at least
// one load/rep/time descriptor is present.
type Set struct {
	TipoSerie    SetType  `json:"tipoSerie"`
	Reps         *int     `json:"reps,omitempty"`
	RepsMin      *int     `json:"repsMin,omitempty"`
	RepsMax      *int     `json:"repsMax,omitempty"`
	CargaKg      *float64 `json:"cargaKg,omitempty"`
	PercentOneRM *float64 `json:"%1rm,omitempty"`
	TempoSeg     *int     `json:"tempoSeg,omitempty"`
	DistanciaM   *float64 `json:"distanciaM,omitempty"`
	RIR          *int     `json:"rir,omitempty"`
	RPE          *float64 `json:"rpe,omitempty"`
	DescansoSeg  *int     `json:"descansoSeg,omitempty"`
}

// WorkoutExercise is one exercise prescription inside a block.
// ExerciseID is a soft reference into the catalog: lookups may miss and
// readers must degrade gracefully (placeholder name, not an error).
type WorkoutExercise struct {
	ExerciseID        string `json:"exerciseId"`
	Observacoes       string `json:"observacoes,omitempty"`
	RegrasProgressaoID string `json:"regrasProgressaoId,omitempty"`
	Series            []Set  `json:"series"`
}

// WorkoutBlock groups exercises sharing a training purpose.
// Order of Exercicios is execution order and is significant.
type WorkoutBlock struct {
	Tipo       BlockType         `json:"tipo"`
	Exercicios []WorkoutExercise `json:"exercicios"`
}

// Workout is a planned training session composed of ordered blocks.
// ID must be unique within the collection. Blocos may be empty but is
// structurally required.
type Workout struct {
	ID            string         `json:"id"`
	Nome          string         `json:"nome,omitempty"`
	DataPlanejada string         `json:"dataPlanejada,omitempty"`
	Blocos        []WorkoutBlock `json:"blocos"`
	Notas         string         `json:"notas,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
