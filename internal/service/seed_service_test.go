package service

import (
	"academia/workout-app/internal/domain"
	"context"
	"testing"
)

func TestSeedCatalogPopulatesEmptyStore(t *testing.T) {
	exerciseRepo, _, _ := newTestRepos(t)
	ctx := context.Background()

	if err := SeedCatalog(ctx, exerciseRepo); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	n, err := exerciseRepo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != len(starterCatalog) {
		t.Errorf("Count = %d, want %d", n, len(starterCatalog))
	}
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	exerciseRepo, _, _ := newTestRepos(t)
	ctx := context.Background()

	if err := SeedCatalog(ctx, exerciseRepo); err != nil {
		t.Fatalf("first SeedCatalog: %v", err)
	}
	if err := SeedCatalog(ctx, exerciseRepo); err != nil {
		t.Fatalf("second SeedCatalog: %v", err)
	}
	if n, _ := exerciseRepo.Count(ctx); n != len(starterCatalog) {
		t.Errorf("Count = %d after reseed, want %d", n, len(starterCatalog))
	}
}

// Any existing data, even a single user-created entry, means the store
// is not empty and the seed must stay out.
func TestSeedCatalogSkipsNonEmptyStore(t *testing.T) {
	exerciseRepo, _, _ := newTestRepos(t)
	ctx := context.Background()

	if _, err := exerciseRepo.Create(ctx, &domain.Exercise{
		ID: "ex-meu", Nome: "Meu Exercício", GruposMusculares: []string{"costas"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := SeedCatalog(ctx, exerciseRepo); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	if n, _ := exerciseRepo.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1 (seed must not run on non-empty store)", n)
	}
}
