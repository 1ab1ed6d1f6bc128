package service

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
)

// SeedCatalog populates an empty store with the starter exercise
// catalog. The "already seeded" check is simply "the collection is not
// empty", so running it on every startup is effectively once per empty
// store. Individual insert failures are collected, not fatal: a partial
// seed still leaves a usable catalog.
func SeedCatalog(ctx context.Context, exerciseRepo repository.ExerciseRepository) error {
	count, err := exerciseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog size before seeding: %w", err)
	}
	if count > 0 {
		return nil // already has data
	}

	var failures []error
	for i := range starterCatalog {
		if _, err := exerciseRepo.Create(ctx, &starterCatalog[i]); err != nil {
			// A concurrent first-caller may have seeded this id already.
			if errors.Is(err, repository.ErrDuplicateKey) {
				continue
			}
			failures = append(failures, fmt.Errorf("seed %s: %w", starterCatalog[i].ID, err))
		}
	}
	if len(failures) > 0 {
		log.Printf("WARN: %d starter exercise(s) failed to seed: %v", len(failures), errors.Join(failures...))
	}
	return nil
}

// starterCatalog is the fixed hand-authored list inserted on first run.
// It spans all three levels and several equipment/muscle-group tags.
var starterCatalog = []domain.Exercise{
	{
		ID:               "ex-supino-reto",
		Nome:             "Supino Reto",
		GruposMusculares: []string{"peito", "tríceps", "ombros"},
		Equipamento:      "barra",
		Nivel:            domain.LevelIntermediario,
		Tags:             []string{"força", "hipertrofia"},
		Instrucoes: []string{
			"Deite no banco com os pés firmes no chão",
			"Segure a barra com pegada ligeiramente mais larga que os ombros",
			"Desça a barra controladamente até o peito",
			"Empurre a barra para cima explosivamente",
		},
	},
	{
		ID:               "ex-agachamento-livre",
		Nome:             "Agachamento Livre",
		GruposMusculares: []string{"quadríceps", "glúteos", "core"},
		Equipamento:      "barra",
		Nivel:            domain.LevelIntermediario,
		Tags:             []string{"força", "hipertrofia"},
		Instrucoes: []string{
			"Posicione a barra no trapézio",
			"Pés na largura dos ombros",
			"Desça até 90 graus nos joelhos",
			"Suba empurrando pelos calcanhares",
		},
	},
	{
		ID:               "ex-flexao",
		Nome:             "Flexão de Braço",
		GruposMusculares: []string{"peito", "tríceps", "ombros"},
		Equipamento:      "peso corporal",
		Nivel:            domain.LevelIniciante,
		Tags:             []string{"força", "hipertrofia", "cardio"},
		Instrucoes: []string{
			"Apoie as mãos no chão na largura dos ombros",
			"Mantenha o corpo reto",
			"Desça até quase tocar o peito no chão",
			"Empurre para cima até estender os braços",
		},
	},
	{
		ID:               "ex-rosca-biceps",
		Nome:             "Rosca Bíceps",
		GruposMusculares: []string{"bíceps"},
		Equipamento:      "halteres",
		Nivel:            domain.LevelIniciante,
		Tags:             []string{"hipertrofia"},
		Instrucoes: []string{
			"Fique em pé com um halter em cada mão",
			"Mantenha os cotovelos próximos ao corpo",
			"Flexione os braços controladamente",
			"Desça lentamente até a posição inicial",
		},
	},
	{
		ID:               "ex-terra",
		Nome:             "Levantamento Terra",
		GruposMusculares: []string{"lombar", "glúteos", "isquiotibiais"},
		Equipamento:      "barra",
		Nivel:            domain.LevelAvancado,
		Tags:             []string{"força"},
		Instrucoes: []string{
			"Posicione a barra no chão",
			"Pés na largura dos quadris",
			"Segure a barra com pegada pronada",
			"Levante mantendo as costas retas",
		},
	},
	{
		ID:               "ex-prancha",
		Nome:             "Prancha",
		GruposMusculares: []string{"core"},
		Equipamento:      "peso corporal",
		Nivel:            domain.LevelIniciante,
		Tags:             []string{"resistência", "mobilidade"},
		Instrucoes: []string{
			"Apoie antebraços e pontas dos pés no chão",
			"Mantenha o corpo em linha reta",
			"Contraia o abdômen",
			"Respire normalmente",
		},
	},
	{
		ID:               "ex-burpee",
		Nome:             "Burpee",
		GruposMusculares: []string{"peito", "ombros", "quadríceps", "core"},
		Equipamento:      "peso corporal",
		Nivel:            domain.LevelIntermediario,
		Tags:             []string{"cardio", "explosão"},
		Instrucoes: []string{
			"Agache e apoie as mãos no chão",
			"Estenda as pernas para trás em prancha",
			"Faça uma flexão",
			"Puxe as pernas e salte para cima",
		},
	},
	{
		ID:               "ex-polichinelo",
		Nome:             "Polichinelo",
		GruposMusculares: []string{"panturrilha", "quadríceps", "ombros"},
		Equipamento:      "peso corporal",
		Nivel:            domain.LevelIniciante,
		Tags:             []string{"cardio"},
		Instrucoes: []string{
			"Fique em pé com pés juntos e braços ao lado",
			"Salte abrindo pernas e levantando braços",
			"Retorne à posição inicial",
			"Mantenha ritmo constante",
		},
	},
}
