package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/auth"
	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository/memory"

	"github.com/google/uuid"
)

func TestRecordHistoryDiffRoundTrip(t *testing.T) {
	svc := NewService(memory.NewStore().ChangeLog())
	ctx := auth.ContextWithActor(context.Background(), "analyst@example.com")
	entityID := uuid.New()

	t0 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

	if _, err := svc.Record(ctx, entityID, domain.ChangeOpCreate, []domain.FieldChange{
		{Field: "name", Old: "", New: "Acme LLC"},
		{Field: "jurisdiction", Old: "", New: "US-DE"},
	}, t0); err != nil {
		t.Fatalf("record create: %v", err)
	}
	if _, err := svc.Record(ctx, entityID, domain.ChangeOpUpdate, []domain.FieldChange{
		{Field: "jurisdiction", Old: "US-DE", New: "UK"},
	}, t1); err != nil {
		t.Fatalf("record update: %v", err)
	}

	history, err := svc.History(ctx, entityID, 0, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if !history[0].RecordedAt.Before(history[1].RecordedAt) {
		t.Errorf("history not chronological")
	}
	if history[0].Actor != "analyst@example.com" {
		t.Errorf("actor not captured: %q", history[0].Actor)
	}

	// Diff between the two recorded timestamps reproduces exactly the field
	// deltas that were applied.
	diffs, err := svc.DiffVersions(ctx, entityID, t0, t1)
	if err != nil {
		t.Fatalf("diff versions: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("expected 1 field diff, got %d: %+v", len(diffs), diffs)
	}
	if diffs[0].Field != "jurisdiction" || diffs[0].Old != "US-DE" || diffs[0].New != "UK" {
		t.Errorf("unexpected diff: %+v", diffs[0])
	}
}

func TestHistoryIsRestartable(t *testing.T) {
	svc := NewService(memory.NewStore().ChangeLog())
	ctx := context.Background()
	entityID := uuid.New()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := svc.Record(ctx, entityID, domain.ChangeOpUpdate, []domain.FieldChange{
			{Field: "version", Old: "", New: string(rune('a' + i))},
		}, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	first, err := svc.History(ctx, entityID, 0, 2)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	rest, err := svc.History(ctx, entityID, 2, 0)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(first) != 2 || len(rest) != 3 {
		t.Fatalf("unexpected page sizes %d/%d", len(first), len(rest))
	}
	if !first[1].RecordedAt.Before(rest[0].RecordedAt) {
		t.Errorf("restarted sequence out of order")
	}
}

func TestDiffUsesNearestRecordAtOrBefore(t *testing.T) {
	svc := NewService(memory.NewStore().ChangeLog())
	ctx := context.Background()
	entityID := uuid.New()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Record(ctx, entityID, domain.ChangeOpCreate, []domain.FieldChange{
		{Field: "name", Old: "", New: "Acme LLC"},
	}, t0); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record(ctx, entityID, domain.ChangeOpUpdate, []domain.FieldChange{
		{Field: "name", Old: "Acme LLC", New: "Acme Holdings LLC"},
	}, t1); err != nil {
		t.Fatal(err)
	}

	// Query timestamps that fall between records.
	diffs, err := svc.DiffVersions(ctx, entityID, t0.Add(24*time.Hour), t1.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("diff versions: %v", err)
	}
	if len(diffs) != 1 || diffs[0].New != "Acme Holdings LLC" {
		t.Errorf("unexpected diffs: %+v", diffs)
	}
}

func TestRecordRequiresEntityID(t *testing.T) {
	svc := NewService(memory.NewStore().ChangeLog())
	if _, err := svc.Record(context.Background(), uuid.Nil, domain.ChangeOpCreate, nil, time.Now()); err == nil {
		t.Fatalf("expected validation error for nil entity id")
	}
}
