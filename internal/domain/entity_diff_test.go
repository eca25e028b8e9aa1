package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEntitySnapshotCanonicalText(t *testing.T) {
	entity := NewEntity(uuid.New(), "Acme LLC", "ACME", EntityTypeLLC, "US-DE", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	entity.Attributes = map[string]any{
		"industry": "manufacturing",
		"metadata": map[string]any{
			"region": "North America",
			"staff":  float64(120),
		},
		"tags": []any{"core", "audited"},
	}

	lines, err := NewEntitySnapshot(entity).CanonicalText()
	if err != nil {
		t.Fatalf("unexpected error generating canonical text: %v", err)
	}

	expected := []string{
		"Name: Acme LLC",
		"Code: ACME",
		"EntityType: LLC",
		"Jurisdiction: US-DE",
		"EffectiveFrom: 2020-01-01",
		"Version: 1",
		"Attributes:",
		"  industry: \"manufacturing\"",
		"  metadata.region: \"North America\"",
		"  metadata.staff: 120",
		"  tags[0]: \"core\"",
		"  tags[1]: \"audited\"",
	}

	if len(lines) != len(expected) {
		t.Fatalf("expected %d canonical lines, got %d\n%v", len(expected), len(lines), lines)
	}
	for idx, line := range expected {
		if lines[idx] != line {
			t.Errorf("line %d mismatch: expected %q got %q", idx, line, lines[idx])
		}
	}
}

func TestDiffEntitySnapshots(t *testing.T) {
	entity := NewEntity(uuid.New(), "Acme LLC", "ACME", EntityTypeLLC, "US-DE", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	base := NewEntitySnapshot(entity)

	moved := entity.WithJurisdiction("UK")
	moved.Version = 2
	target := NewEntitySnapshot(moved)

	diff, err := DiffEntitySnapshots("v1", &base, "v2", &target)
	if err != nil {
		t.Fatalf("unexpected error diffing snapshots: %v", err)
	}

	if !strings.Contains(diff, "-Jurisdiction: US-DE") {
		t.Errorf("diff missing removed jurisdiction line:\n%s", diff)
	}
	if !strings.Contains(diff, "+Jurisdiction: UK") {
		t.Errorf("diff missing added jurisdiction line:\n%s", diff)
	}
	if !strings.Contains(diff, " Name: Acme LLC") {
		t.Errorf("diff should keep unchanged name as context:\n%s", diff)
	}
}

func TestComputeFieldChanges(t *testing.T) {
	entity := NewEntity(uuid.New(), "Acme LLC", "ACME", EntityTypeLLC, "US-DE", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	entity.Attributes = map[string]any{"industry": "manufacturing"}

	updated := entity.WithJurisdiction("UK").WithAttribute("industry", "logistics")

	changes, err := ComputeFieldChanges(&entity, &updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 field changes, got %d: %+v", len(changes), changes)
	}
	// Sorted by field name: attributes.industry before jurisdiction.
	if changes[0].Field != "attributes.industry" || changes[0].New != "\"logistics\"" {
		t.Errorf("unexpected first change: %+v", changes[0])
	}
	if changes[1].Field != "jurisdiction" || changes[1].Old != "US-DE" || changes[1].New != "UK" {
		t.Errorf("unexpected second change: %+v", changes[1])
	}
}

func TestComputeFieldChangesCreateAndDelete(t *testing.T) {
	entity := NewEntity(uuid.New(), "Acme LLC", "ACME", EntityTypeLLC, "US-DE", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	created, err := ComputeFieldChanges(nil, &entity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) == 0 {
		t.Fatalf("expected create diff to list populated fields")
	}
	for _, change := range created {
		if change.Old != "" {
			t.Errorf("create diff should have empty old values: %+v", change)
		}
	}

	deleted, err := ComputeFieldChanges(&entity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, change := range deleted {
		if change.New != "" {
			t.Errorf("delete diff should have empty new values: %+v", change)
		}
	}
}
