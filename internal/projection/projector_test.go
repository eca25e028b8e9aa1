package projection

import (
	"context"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/scenario"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectionReflectsAsOfDate(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	projector := NewProjector(store, mem.OwnershipEdges(), nil)
	orgID := uuid.New()

	parent := domain.NewEntity(orgID, "Group Holdings", "GRP", domain.EntityTypeCorporation, "US-DE", date(2020, 1, 1))
	parent, err := store.PutEntity(ctx, parent, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	sub := domain.NewEntity(orgID, "Late Arrival GmbH", "LATE", domain.EntityTypeGmbH, "DE", date(2023, 1, 1))
	sub, err = store.PutEntity(ctx, sub, date(2023, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	edge := domain.NewOwnershipEdge(orgID, parent.ID, sub.ID, decimal.NewFromInt(100), date(2023, 1, 1))
	if _, err := mem.OwnershipEdges().Create(ctx, edge); err != nil {
		t.Fatalf("Create edge: %v", err)
	}

	early, err := projector.Project(ctx, orgID, date(2022, 6, 1), nil)
	if err != nil {
		t.Fatalf("Project early: %v", err)
	}
	if len(early.Nodes()) != 1 || len(early.Edges()) != 0 {
		t.Errorf("as of 2022-06-01: %d nodes, %d edges; want 1, 0", len(early.Nodes()), len(early.Edges()))
	}

	late, err := projector.Project(ctx, orgID, date(2024, 1, 1), nil)
	if err != nil {
		t.Fatalf("Project late: %v", err)
	}
	if len(late.Nodes()) != 2 || len(late.Edges()) != 1 {
		t.Errorf("as of 2024-01-01: %d nodes, %d edges; want 2, 1", len(late.Nodes()), len(late.Edges()))
	}
}

func TestScenarioProjectionUsesOverlay(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	manager := scenario.NewManager(mem.Workspaces(), store, mem.OwnershipEdges())
	projector := NewProjector(store, mem.OwnershipEdges(), manager)
	orgID := uuid.New()
	asOf := date(2024, 1, 1)

	parent := domain.NewEntity(orgID, "Group Holdings", "GRP", domain.EntityTypeCorporation, "US-DE", date(2020, 1, 1))
	parent, err := store.PutEntity(ctx, parent, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	sub := domain.NewEntity(orgID, "Ops LLC", "OPS", domain.EntityTypeLLC, "US-DE", date(2020, 1, 1))
	sub, err = store.PutEntity(ctx, sub, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	edge := domain.NewOwnershipEdge(orgID, parent.ID, sub.ID, decimal.NewFromInt(90), date(2020, 1, 1)).WithPrimary(true)
	edge, err = mem.OwnershipEdges().Create(ctx, edge)
	if err != nil {
		t.Fatalf("Create edge: %v", err)
	}

	workspace, err := manager.CreateWorkspace(ctx, scenario.CreateWorkspaceInput{OrganizationID: orgID, Name: "what-if"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	sc, err := manager.CreateScenario(ctx, scenario.CreateScenarioInput{WorkspaceID: workspace.ID, Name: "full buyout"})
	if err != nil {
		t.Fatalf("CreateScenario: %v", err)
	}
	bought := edge.WithPercent(decimal.NewFromInt(100))
	if _, err := manager.ApplyDelta(ctx, sc.ID, domain.NewEdgeDelta(sc.ID, domain.DeltaOpUpsert, bought.ID, &bought)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	mainStake, _, err := projector.EffectiveOwnership(ctx, orgID, sub.ID, asOf, nil)
	if err != nil {
		t.Fatalf("EffectiveOwnership main: %v", err)
	}
	if !mainStake.Equal(decimal.NewFromInt(90)) {
		t.Errorf("main stake = %s, want 90", mainStake)
	}

	scenarioStake, _, err := projector.EffectiveOwnership(ctx, orgID, sub.ID, asOf, &sc.ID)
	if err != nil {
		t.Fatalf("EffectiveOwnership scenario: %v", err)
	}
	if !scenarioStake.Equal(decimal.NewFromInt(100)) {
		t.Errorf("scenario stake = %s, want 100", scenarioStake)
	}

	graph, err := projector.Project(ctx, orgID, asOf, &sc.ID)
	if err != nil {
		t.Fatalf("Project scenario: %v", err)
	}
	if graph.ScenarioID == nil || *graph.ScenarioID != sc.ID {
		t.Errorf("graph should carry the scenario id it was projected through")
	}
}
