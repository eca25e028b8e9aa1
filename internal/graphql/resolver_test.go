package graphql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/entityloader"
	"github.com/pwallin/corpgraph/internal/ledger"
	"github.com/pwallin/corpgraph/internal/middleware"
	"github.com/pwallin/corpgraph/internal/projection"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/scenario"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
)

func newTestResolver() *Resolver {
	mem := memory.NewStore()
	ledgerSvc := ledger.NewService(mem.ChangeLog())
	store := temporal.NewStore(mem.EntityVersions(), ledgerSvc)
	manager := scenario.NewManager(mem.Workspaces(), store, mem.OwnershipEdges())
	projector := projection.NewProjector(store, mem.OwnershipEdges(), manager)
	return NewResolver(
		mem.Organizations(), store, mem.OwnershipEdges(),
		projector, manager, ledgerSvc, mem.Filings(), mem.Transactions(),
	)
}

func createTestOrg(t *testing.T, r *Resolver) *graph.Organization {
	t.Helper()
	org, err := r.CreateOrganization(context.Background(), "Test Group", nil)
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	return org
}

func createTestEntity(t *testing.T, r *Resolver, orgID, name, code, effectiveFrom string) *graph.Entity {
	t.Helper()
	entity, err := r.CreateEntity(context.Background(), graph.CreateEntityInput{
		OrganizationID: orgID,
		Name:           name,
		Code:           code,
		EntityType:     "CORPORATION",
		Jurisdiction:   "US-DE",
		EffectiveFrom:  effectiveFrom,
	})
	if err != nil {
		t.Fatalf("CreateEntity %s: %v", code, err)
	}
	return entity
}

func TestEntityLifecycleThroughResolver(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)

	created := createTestEntity(t, r, org.ID, "Acme LLC", "ACME", "2020-01-01")

	uk := "UK"
	updated, err := r.UpdateEntity(ctx, created.ID, graph.UpdateEntityInput{Jurisdiction: &uk}, "2021-06-01")
	if err != nil {
		t.Fatalf("UpdateEntity: %v", err)
	}
	if updated.Version != 2 || updated.Jurisdiction != "UK" {
		t.Errorf("updated entity: version=%d jurisdiction=%q", updated.Version, updated.Jurisdiction)
	}

	before, err := r.Entity(ctx, created.ID, "2020-12-31")
	if err != nil {
		t.Fatalf("Entity as of 2020-12-31: %v", err)
	}
	if before.Jurisdiction != "US-DE" {
		t.Errorf("as-of read saw later version: jurisdiction=%q", before.Jurisdiction)
	}

	versions, err := r.EntityVersions(ctx, created.ID)
	if err != nil {
		t.Fatalf("EntityVersions: %v", err)
	}
	if len(versions) != 2 {
		t.Errorf("versions = %d, want 2", len(versions))
	}

	records, err := r.ChangeLog(ctx, created.ID, nil, nil)
	if err != nil {
		t.Fatalf("ChangeLog: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("change log records = %d, want 2", len(records))
	}
	if records[0].Operation != "CREATE" || records[1].Operation != "UPDATE" {
		t.Errorf("operations = %s, %s", records[0].Operation, records[1].Operation)
	}
}

func TestEntityDiffProducesUnifiedDiff(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)
	created := createTestEntity(t, r, org.ID, "Acme LLC", "ACME", "2020-01-01")

	uk := "UK"
	if _, err := r.UpdateEntity(ctx, created.ID, graph.UpdateEntityInput{Jurisdiction: &uk}, "2021-06-01"); err != nil {
		t.Fatalf("UpdateEntity: %v", err)
	}

	diff, err := r.EntityDiff(ctx, created.ID, 1, 2)
	if err != nil {
		t.Fatalf("EntityDiff: %v", err)
	}
	if diff.Base == nil || diff.Target == nil {
		t.Fatal("expected both snapshots")
	}
	if diff.UnifiedDiff == nil {
		t.Fatal("expected a unified diff")
	}
	if !strings.Contains(*diff.UnifiedDiff, "-Jurisdiction: US-DE") || !strings.Contains(*diff.UnifiedDiff, "+Jurisdiction: UK") {
		t.Errorf("diff missing jurisdiction change:\n%s", *diff.UnifiedDiff)
	}
}

func TestOwnershipGraphResolverSurfacesFindings(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)

	parent := createTestEntity(t, r, org.ID, "Parent Inc", "PRNT", "2020-01-01")
	child := createTestEntity(t, r, org.ID, "Child LLC", "CHLD", "2020-01-01")

	primary := true
	if _, err := r.CreateOwnershipEdge(ctx, graph.OwnershipEdgeInput{
		OrganizationID: org.ID,
		OwnerID:        parent.ID,
		OwnedID:        child.ID,
		Percent:        "80",
		Primary:        &primary,
		EffectiveFrom:  "2020-01-01",
	}); err != nil {
		t.Fatalf("CreateOwnershipEdge: %v", err)
	}

	result, err := r.OwnershipGraph(ctx, org.ID, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("OwnershipGraph: %v", err)
	}
	if len(result.Nodes) != 2 || len(result.Edges) != 1 {
		t.Fatalf("graph: %d nodes, %d edges", len(result.Nodes), len(result.Edges))
	}

	var sawUnder bool
	for _, finding := range result.Findings {
		if finding.Kind == "OWNERSHIP_SUM_UNDER_100" {
			sawUnder = true
		}
	}
	if !sawUnder {
		t.Errorf("expected an under-100 finding, got %+v", result.Findings)
	}

	stake, err := r.EffectiveOwnership(ctx, org.ID, child.ID, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("EffectiveOwnership: %v", err)
	}
	if stake.Percent != "80.0000" {
		t.Errorf("effective stake = %s, want 80.0000", stake.Percent)
	}
	if len(stake.Chain) != 2 || stake.Chain[0] != parent.ID {
		t.Errorf("chain = %v, want root first", stake.Chain)
	}
}

func TestEffectiveOwnershipHydratesChainEntities(t *testing.T) {
	r := newTestResolver()
	org := createTestOrg(t, r)

	parent := createTestEntity(t, r, org.ID, "Parent Inc", "PRNT", "2020-01-01")
	child := createTestEntity(t, r, org.ID, "Child LLC", "CHLD", "2020-01-01")

	primary := true
	if _, err := r.CreateOwnershipEdge(context.Background(), graph.OwnershipEdgeInput{
		OrganizationID: org.ID,
		OwnerID:        parent.ID,
		OwnedID:        child.ID,
		Percent:        "80",
		Primary:        &primary,
		EffectiveFrom:  "2020-01-01",
	}); err != nil {
		t.Fatalf("CreateOwnershipEdge: %v", err)
	}

	loader := entityloader.NewEntityLoader(r.store)
	ctx := middleware.ContextWithEntityLoader(context.Background(), loader.Loader)

	stake, err := r.EffectiveOwnership(ctx, org.ID, child.ID, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("EffectiveOwnership: %v", err)
	}
	if len(stake.ChainEntities) != 2 {
		t.Fatalf("chain entities = %d, want 2", len(stake.ChainEntities))
	}
	if stake.ChainEntities[0].Name != "Parent Inc" || stake.ChainEntities[1].Name != "Child LLC" {
		t.Errorf("chain entities = %q, %q; want root first", stake.ChainEntities[0].Name, stake.ChainEntities[1].Name)
	}

	// Without a request loader the resolver reads the store directly and
	// must produce the same hydration.
	direct, err := r.EffectiveOwnership(context.Background(), org.ID, child.ID, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("EffectiveOwnership without loader: %v", err)
	}
	if len(direct.ChainEntities) != 2 || direct.ChainEntities[0].Name != "Parent Inc" {
		t.Errorf("direct hydration = %+v", direct.ChainEntities)
	}
}

func TestUpdateOwnershipEdgePreservesEntryDate(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)

	parent := createTestEntity(t, r, org.ID, "Parent Inc", "PRNT", "2020-01-01")
	child := createTestEntity(t, r, org.ID, "Child LLC", "CHLD", "2020-01-01")

	created, err := r.CreateOwnershipEdge(ctx, graph.OwnershipEdgeInput{
		OrganizationID: org.ID,
		OwnerID:        parent.ID,
		OwnedID:        child.ID,
		Percent:        "80",
		EffectiveFrom:  "2020-01-01",
	})
	if err != nil {
		t.Fatalf("CreateOwnershipEdge: %v", err)
	}

	primary := true
	updated, err := r.UpdateOwnershipEdge(ctx, created.ID, graph.OwnershipEdgeInput{
		OrganizationID: org.ID,
		OwnerID:        parent.ID,
		OwnedID:        child.ID,
		Percent:        "95",
		Primary:        &primary,
		EffectiveFrom:  "2020-01-01",
	})
	if err != nil {
		t.Fatalf("UpdateOwnershipEdge: %v", err)
	}
	if updated.Percent != "95.0000" || !updated.Primary {
		t.Errorf("updated edge: percent=%s primary=%v", updated.Percent, updated.Primary)
	}
	if updated.EntryDate != created.EntryDate {
		t.Errorf("entry date changed on update: %s -> %s", created.EntryDate, updated.EntryDate)
	}

	edgeID, err := uuid.Parse(created.ID)
	if err != nil {
		t.Fatalf("parse edge id: %v", err)
	}
	stored, err := r.edgeRepo.GetByID(ctx, edgeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.EntryDate.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("stored entry date = %s, want the original 2020-01-01", stored.EntryDate)
	}
	if stored.CreatedAt.IsZero() || stored.CreatedAt.After(stored.UpdatedAt) {
		t.Errorf("creation timestamp reset: created=%s updated=%s", stored.CreatedAt, stored.UpdatedAt)
	}
}

func TestScenarioWorkflowThroughResolver(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)

	parent := createTestEntity(t, r, org.ID, "Parent Inc", "PRNT", "2020-01-01")
	child := createTestEntity(t, r, org.ID, "Child LLC", "CHLD", "2020-01-01")

	primary := true
	if _, err := r.CreateOwnershipEdge(ctx, graph.OwnershipEdgeInput{
		OrganizationID: org.ID,
		OwnerID:        parent.ID,
		OwnedID:        child.ID,
		Percent:        "100",
		Primary:        &primary,
		EffectiveFrom:  "2020-01-01",
	}); err != nil {
		t.Fatalf("CreateOwnershipEdge: %v", err)
	}

	workspace, err := r.CreateWorkspace(ctx, org.ID, "restructuring", []string{"alex@corp.example"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	sc, err := r.CreateScenario(ctx, workspace.ID, "divest child", nil)
	if err != nil {
		t.Fatalf("CreateScenario: %v", err)
	}

	if _, err := r.ApplyScenarioDelta(ctx, sc.ID, graph.ScenarioDeltaInput{
		Kind:     "ENTITY",
		Op:       "DELETE",
		TargetID: &child.ID,
	}); err != nil {
		t.Fatalf("ApplyScenarioDelta: %v", err)
	}

	scenarioGraph, err := r.OwnershipGraph(ctx, org.ID, "2024-01-01", &sc.ID)
	if err != nil {
		t.Fatalf("OwnershipGraph scenario: %v", err)
	}
	if len(scenarioGraph.Nodes) != 1 {
		t.Errorf("scenario graph nodes = %d, want 1", len(scenarioGraph.Nodes))
	}

	mainGraph, err := r.OwnershipGraph(ctx, org.ID, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("OwnershipGraph main: %v", err)
	}
	if len(mainGraph.Nodes) != 2 {
		t.Errorf("main graph nodes = %d, want 2", len(mainGraph.Nodes))
	}
}

func TestFilingGroupLeaderRule(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()
	org := createTestOrg(t, r)
	first := createTestEntity(t, r, org.ID, "Parent Inc", "PRNT", "2020-01-01")
	second := createTestEntity(t, r, org.ID, "Child LLC", "CHLD", "2020-01-01")

	leader := true
	if _, err := r.UpsertFiling(ctx, graph.FilingInput{
		OrganizationID: org.ID,
		EntityID:       first.ID,
		Jurisdiction:   "US-DE",
		FilingGroup:    "us-consolidated",
		GroupLeader:    &leader,
	}); err != nil {
		t.Fatalf("UpsertFiling: %v", err)
	}

	if _, err := r.UpsertFiling(ctx, graph.FilingInput{
		OrganizationID: org.ID,
		EntityID:       second.ID,
		Jurisdiction:   "US-DE",
		FilingGroup:    "us-consolidated",
		GroupLeader:    &leader,
	}); err == nil {
		t.Fatal("second leader in the same filing group must be rejected")
	}
}
