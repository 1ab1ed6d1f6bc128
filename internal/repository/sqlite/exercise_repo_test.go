package sqlite

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.InitSchema(); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return db
}

func sampleExercise() *domain.Exercise {
	return &domain.Exercise{
		ID:               "ex-supino-reto",
		Nome:             "Supino Reto",
		GruposMusculares: []string{"peito", "tríceps"},
		Equipamento:      "barra",
		Nivel:            domain.LevelIntermediario,
	}
}

func TestExerciseCreateAndGet(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleExercise())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped on create")
	}

	got, err := repo.GetByID(ctx, "ex-supino-reto")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Nome != "Supino Reto" {
		t.Errorf("Nome = %q, want %q", got.Nome, "Supino Reto")
	}
	if len(got.GruposMusculares) != 2 {
		t.Errorf("GruposMusculares = %v, want 2 entries", got.GruposMusculares)
	}
}

func TestExerciseCreateDuplicateKeepsOriginal(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleExercise()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := sampleExercise()
	dup.Nome = "Supino Inclinado"
	if _, err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("Create duplicate: err = %v, want ErrDuplicateKey", err)
	}

	got, err := repo.GetByID(ctx, "ex-supino-reto")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Nome != "Supino Reto" {
		t.Errorf("existing record was overwritten: Nome = %q", got.Nome)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestExerciseCreateRequiresFields(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))

	ex := sampleExercise()
	ex.GruposMusculares = nil
	if _, err := repo.Create(context.Background(), ex); err == nil {
		t.Error("expected error for missing gruposMusculares")
	}
}

func TestExerciseUpdatePartial(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleExercise())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.Update(ctx, created.ID, repository.Fields{"equipamento": "halteres"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Equipamento != "halteres" {
		t.Errorf("Equipamento = %q, want %q", updated.Equipamento, "halteres")
	}
	if updated.Nome != created.Nome {
		t.Errorf("Nome changed on partial update: %q", updated.Nome)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %q", updated.ID)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt went backwards")
	}

	// Merge must be persisted, not just returned.
	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Equipamento != "halteres" {
		t.Errorf("persisted Equipamento = %q, want %q", got.Equipamento, "halteres")
	}
}

func TestExerciseUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleExercise()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.Update(ctx, "ex-nope", repository.Fields{"nome": "X"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Update missing: err = %v, want ErrNotFound", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestExerciseDelete(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleExercise()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, "ex-supino-reto"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "ex-supino-reto"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "ex-supino-reto"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrNotFound", err)
	}
}
