// internal/domain/exercise.go
package domain

import (
	"time"
)

// Level classifies how experienced a trainee should be before attempting
// an exercise.
type Level string

const (
	LevelIniciante     Level = "iniciante"
	LevelIntermediario Level = "intermediario"
	LevelAvancado      Level = "avancado"
)

// Valid reports whether the level is one of the three known values.
func (l Level) Valid() bool {
	switch l {
	case LevelIniciante, LevelIntermediario, LevelAvancado:
		return true
	}
	return false
}

// Midia holds optional media attachments for an exercise.
type Midia struct {
	ImagemURL string `json:"imagemUrl,omitempty"`
	VideoURL  string `json:"videoUrl,omitempty"`
}

// Exercise represents a single entry in the exercise catalog.
//
// ID is caller- or system-assigned and must be unique within the catalog.
// Nome and GruposMusculares are required for a record to be considered
// valid; everything else is optional. CreatedAt/UpdatedAt are stamped by
// the store, never by the caller.
type Exercise struct {
	ID               string   `json:"id"`
	Nome             string   `json:"nome"`
	GruposMusculares []string `json:"gruposMusculares"`
	Equipamento      string   `json:"equipamento,omitempty"`
	Nivel            Level    `json:"nivel"`
	Midia            *Midia   `json:"midia,omitempty"`
	Instrucoes       []string `json:"instrucoes,omitempty"`
	Variacoes        []string `json:"variacoes,omitempty"`
	Tags             []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasMuscleGroup reports whether the exercise targets the given muscle
// group (set membership, not equality).
func (e *Exercise) HasMuscleGroup(muscle string) bool {
	for _, g := range e.GruposMusculares {
		if g == muscle {
			return true
		}
	}
	return false
}
