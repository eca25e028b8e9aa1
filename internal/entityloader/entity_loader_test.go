package entityloader

import (
	"context"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
)

func TestEntityLoaderResolvesBatchedKeys(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	orgID := uuid.New()
	effective := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	parent, err := store.PutEntity(ctx, domain.NewEntity(orgID, "Parent Inc", "PRNT", domain.EntityTypeCorporation, "US-DE", effective), effective)
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	child, err := store.PutEntity(ctx, domain.NewEntity(orgID, "Child LLC", "CHLD", domain.EntityTypeLLC, "US-DE", effective), effective)
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}

	loader := NewEntityLoader(store)

	// Issue all loads up front; the loader collects them into one batch.
	parentThunk := loader.Loader.Load(ctx, Key(parent.ID, asOf))
	childThunk := loader.Loader.Load(ctx, Key(child.ID, asOf))
	missingThunk := loader.Loader.Load(ctx, Key(uuid.New(), asOf))

	data, err := parentThunk()
	if err != nil {
		t.Fatalf("load parent: %v", err)
	}
	if got, ok := data.(domain.Entity); !ok || got.Name != "Parent Inc" {
		t.Errorf("parent = %+v", data)
	}

	data, err = childThunk()
	if err != nil {
		t.Fatalf("load child: %v", err)
	}
	if got, ok := data.(domain.Entity); !ok || got.Name != "Child LLC" {
		t.Errorf("child = %+v", data)
	}

	data, err = missingThunk()
	if err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if data != nil {
		t.Errorf("unknown id = %+v, want nil", data)
	}
}

func TestEntityLoaderKeysAreDateScoped(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	orgID := uuid.New()
	effective := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	entity, err := store.PutEntity(ctx, domain.NewEntity(orgID, "Globex GmbH", "GLOBEX", domain.EntityTypeGmbH, "DE", effective), effective)
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	if _, err := store.PutEntity(ctx, entity.WithJurisdiction("AT"), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("PutEntity update: %v", err)
	}

	loader := NewEntityLoader(store)
	beforeThunk := loader.Loader.Load(ctx, Key(entity.ID, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	afterThunk := loader.Loader.Load(ctx, Key(entity.ID, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))

	data, err := beforeThunk()
	if err != nil {
		t.Fatalf("load before update: %v", err)
	}
	if got := data.(domain.Entity); got.Jurisdiction != "DE" {
		t.Errorf("as of 2021: jurisdiction = %q, want DE", got.Jurisdiction)
	}

	data, err = afterThunk()
	if err != nil {
		t.Fatalf("load after update: %v", err)
	}
	if got := data.(domain.Entity); got.Jurisdiction != "AT" {
		t.Errorf("as of 2023: jurisdiction = %q, want AT", got.Jurisdiction)
	}
}
