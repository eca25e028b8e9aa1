package scenario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	manager *Manager
	store   *temporal.Store
	mem     *memory.Store
	orgID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	return &fixture{
		manager: NewManager(mem.Workspaces(), store, mem.OwnershipEdges()),
		store:   store,
		mem:     mem,
		orgID:   uuid.New(),
	}
}

func (f *fixture) seedEntity(t *testing.T, name, code string) domain.Entity {
	t.Helper()
	entity := domain.NewEntity(f.orgID, name, code, domain.EntityTypeCorporation, "US-DE", date(2020, 1, 1))
	created, err := f.store.PutEntity(context.Background(), entity, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity %s: %v", code, err)
	}
	return created
}

func (f *fixture) seedEdge(t *testing.T, ownerID, ownedID uuid.UUID, percent int64) domain.OwnershipEdge {
	t.Helper()
	edge := domain.NewOwnershipEdge(f.orgID, ownerID, ownedID, decimal.NewFromInt(percent), date(2020, 1, 1))
	created, err := f.mem.OwnershipEdges().Create(context.Background(), edge)
	if err != nil {
		t.Fatalf("Create edge: %v", err)
	}
	return created
}

func (f *fixture) newScenario(t *testing.T, workspaceID uuid.UUID, name string, base *uuid.UUID) domain.Scenario {
	t.Helper()
	scenario, err := f.manager.CreateScenario(context.Background(), CreateScenarioInput{
		WorkspaceID:    workspaceID,
		Name:           name,
		BaseScenarioID: base,
	})
	if err != nil {
		t.Fatalf("CreateScenario %s: %v", name, err)
	}
	return scenario
}

func (f *fixture) newWorkspace(t *testing.T, name string) domain.Workspace {
	t.Helper()
	workspace, err := f.manager.CreateWorkspace(context.Background(), CreateWorkspaceInput{
		OrganizationID: f.orgID,
		Name:           name,
		Members:        []string{"alex@corp.example"},
	})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	return workspace
}

func TestScenarioOverlayDoesNotTouchMainUniverse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	asOf := date(2024, 1, 1)

	parent := f.seedEntity(t, "Holdings Inc", "HOLD")
	sub := f.seedEntity(t, "Operating LLC", "OPS")
	f.seedEdge(t, parent.ID, sub.ID, 100)

	workspace := f.newWorkspace(t, "restructuring")
	scenario := f.newScenario(t, workspace.ID, "sell ops", nil)

	if _, err := f.manager.ApplyDelta(ctx, scenario.ID, domain.NewEntityDelta(scenario.ID, domain.DeltaOpDelete, sub.ID, nil)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	main, err := f.manager.Resolve(ctx, f.orgID, nil, asOf)
	if err != nil {
		t.Fatalf("Resolve main: %v", err)
	}
	if len(main.Entities) != 2 {
		t.Errorf("main universe changed: %d entities, want 2", len(main.Entities))
	}

	overlay, err := f.manager.Resolve(ctx, f.orgID, &scenario.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve scenario: %v", err)
	}
	if len(overlay.Entities) != 1 {
		t.Fatalf("scenario universe: %d entities, want 1", len(overlay.Entities))
	}
	if overlay.Entities[0].ID != parent.ID {
		t.Errorf("scenario kept wrong entity: %s", overlay.Entities[0].Name)
	}
}

func TestSiblingScenariosAreIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	asOf := date(2024, 1, 1)

	parent := f.seedEntity(t, "Holdings Inc", "HOLD")
	sub := f.seedEntity(t, "Operating LLC", "OPS")
	edge := f.seedEdge(t, parent.ID, sub.ID, 100)

	workspace := f.newWorkspace(t, "plans")
	left := f.newScenario(t, workspace.ID, "plan a", nil)
	right := f.newScenario(t, workspace.ID, "plan b", nil)

	reduced := edge.WithPercent(decimal.NewFromInt(60))
	if _, err := f.manager.ApplyDelta(ctx, left.ID, domain.NewEdgeDelta(left.ID, domain.DeltaOpUpsert, reduced.ID, &reduced)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	leftView, err := f.manager.Resolve(ctx, f.orgID, &left.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve left: %v", err)
	}
	if !leftView.Edges[0].Percent.Equal(decimal.NewFromInt(60)) {
		t.Errorf("plan a edge percent = %s, want 60", leftView.Edges[0].Percent)
	}

	rightView, err := f.manager.Resolve(ctx, f.orgID, &right.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve right: %v", err)
	}
	if !rightView.Edges[0].Percent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("plan b sees plan a's change: percent = %s", rightView.Edges[0].Percent)
	}
}

func TestForkedScenarioSeesBaseChangesUntilItDiverges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	asOf := date(2024, 1, 1)

	parent := f.seedEntity(t, "Holdings Inc", "HOLD")

	workspace := f.newWorkspace(t, "chain")
	base := f.newScenario(t, workspace.ID, "base case", nil)
	fork := f.newScenario(t, workspace.ID, "variant", &base.ID)

	renamed := parent.WithName("Holdings International Inc")
	if _, err := f.manager.ApplyDelta(ctx, base.ID, domain.NewEntityDelta(base.ID, domain.DeltaOpUpsert, renamed.ID, &renamed)); err != nil {
		t.Fatalf("ApplyDelta to base: %v", err)
	}

	forkView, err := f.manager.Resolve(ctx, f.orgID, &fork.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve fork: %v", err)
	}
	if forkView.Entities[0].Name != "Holdings International Inc" {
		t.Errorf("fork does not see base edit: name = %q", forkView.Entities[0].Name)
	}

	diverged := parent.WithName("Holdings Divested Inc")
	if _, err := f.manager.ApplyDelta(ctx, fork.ID, domain.NewEntityDelta(fork.ID, domain.DeltaOpUpsert, diverged.ID, &diverged)); err != nil {
		t.Fatalf("ApplyDelta to fork: %v", err)
	}

	forkView, err = f.manager.Resolve(ctx, f.orgID, &fork.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve fork after divergence: %v", err)
	}
	if forkView.Entities[0].Name != "Holdings Divested Inc" {
		t.Errorf("fork's own delta must win: name = %q", forkView.Entities[0].Name)
	}

	baseView, err := f.manager.Resolve(ctx, f.orgID, &base.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve base: %v", err)
	}
	if baseView.Entities[0].Name != "Holdings International Inc" {
		t.Errorf("fork's delta leaked into base: name = %q", baseView.Entities[0].Name)
	}
}

func TestForkIsIdenticalToBaseBeforeDivergence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	asOf := date(2024, 1, 1)

	parent := f.seedEntity(t, "Holdings Inc", "HOLD")
	sub := f.seedEntity(t, "Operating LLC", "OPS")
	f.seedEdge(t, parent.ID, sub.ID, 80)

	workspace := f.newWorkspace(t, "chain")
	base := f.newScenario(t, workspace.ID, "base case", nil)

	removed := sub
	terminated := removed.WithTermination(date(2022, 1, 1))
	if _, err := f.manager.ApplyDelta(ctx, base.ID, domain.NewEntityDelta(base.ID, domain.DeltaOpUpsert, terminated.ID, &terminated)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	fork := f.newScenario(t, workspace.ID, "variant", &base.ID)

	baseView, err := f.manager.Resolve(ctx, f.orgID, &base.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve base: %v", err)
	}
	forkView, err := f.manager.Resolve(ctx, f.orgID, &fork.ID, asOf)
	if err != nil {
		t.Fatalf("Resolve fork: %v", err)
	}

	if len(forkView.Entities) != len(baseView.Entities) || len(forkView.Edges) != len(baseView.Edges) {
		t.Fatalf("fresh fork differs from base: %d/%d entities, %d/%d edges",
			len(forkView.Entities), len(baseView.Entities), len(forkView.Edges), len(baseView.Edges))
	}
	for i := range baseView.Entities {
		if forkView.Entities[i].ID != baseView.Entities[i].ID {
			t.Errorf("entity %d differs between base and fresh fork", i)
		}
	}
}

func TestCreateScenarioRejectsCrossWorkspaceBase(t *testing.T) {
	f := newFixture(t)

	first := f.newWorkspace(t, "one")
	second := f.newWorkspace(t, "two")
	foreign := f.newScenario(t, first.ID, "elsewhere", nil)

	_, err := f.manager.CreateScenario(context.Background(), CreateScenarioInput{
		WorkspaceID:    second.ID,
		Name:           "invalid",
		BaseScenarioID: &foreign.ID,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("cross-workspace base: err = %v, want ErrValidation", err)
	}
}

func TestCreateWorkspaceValidatesInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.CreateWorkspace(context.Background(), CreateWorkspaceInput{
		OrganizationID: f.orgID,
		Name:           "",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty name: err = %v, want ErrValidation", err)
	}
}
