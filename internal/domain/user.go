package domain

import (
	"time"
)

// Role type to distinguish between user profiles
type Role string

// Define constants for roles
const (
	RoleAluno Role = "aluno"
	RolePT    Role = "pt"
	RoleAdmin Role = "admin"
)

// Fisiologia holds optional body measurements for a user.
type Fisiologia struct {
	Altura  *float64           `json:"altura,omitempty"`
	Peso    *float64           `json:"peso,omitempty"`
	Medidas map[string]float64 `json:"medidas,omitempty"`
}

// User represents a local profile (a trainee, a personal trainer or an
// admin). PRs maps exercise ids to personal-record loads; the keys are
// soft references into the catalog.
type User struct {
	ID           string             `json:"id"`
	Perfil       Role               `json:"perfil"`
	Preferencias map[string]any     `json:"preferencias,omitempty"`
	Fisiologia   *Fisiologia        `json:"fisiologia,omitempty"`
	PRs          map[string]float64 `json:"prs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Helper methods (Optional but can be useful)
func (u *User) IsPersonalTrainer() bool {
	return u.Perfil == RolePT
}

func (u *User) IsAdmin() bool {
	return u.Perfil == RoleAdmin
}
