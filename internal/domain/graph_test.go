package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var graphAsOf = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func testEntity(org uuid.UUID, name, code string) Entity {
	return NewEntity(org, name, code, EntityTypeCorporation, "US-DE", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
}

func testEdge(org uuid.UUID, owner, owned Entity, percent string, primary bool) OwnershipEdge {
	edge := NewOwnershipEdge(org, owner.ID, owned.ID, decimal.RequireFromString(percent), owner.EffectiveFrom)
	edge.Primary = primary
	return edge
}

func TestEffectiveOwnershipComposition(t *testing.T) {
	org := uuid.New()
	z := testEntity(org, "Zenith Holdings", "ZH")
	y := testEntity(org, "Yard Intermediate", "YI")
	x := testEntity(org, "Xavier Operating", "XO")

	edges := []OwnershipEdge{
		testEdge(org, z, y, "80", true),
		testEdge(org, y, x, "90", true),
	}

	g := NewGraph(org, graphAsOf, nil, []Entity{z, y, x}, edges)

	effective, chain, err := g.EffectiveOwnership(x.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !effective.Equal(decimal.RequireFromString("72")) {
		t.Errorf("expected 72%% effective ownership, got %s", effective)
	}
	if len(chain) != 3 || chain[0] != z.ID || chain[2] != x.ID {
		t.Errorf("unexpected chain: %v", chain)
	}

	stake, ok := g.EffectiveStake(z.ID, x.ID)
	if !ok {
		t.Fatalf("expected z to be on x's primary chain")
	}
	if !stake.Equal(decimal.RequireFromString("72")) {
		t.Errorf("expected 72%% stake, got %s", stake)
	}
}

func TestCycleDetectionIsAFindingNotACrash(t *testing.T) {
	org := uuid.New()
	a := testEntity(org, "Alpha", "A")
	b := testEntity(org, "Bravo", "B")
	c := testEntity(org, "Charlie", "C")

	edges := []OwnershipEdge{
		testEdge(org, a, b, "100", true),
		testEdge(org, b, c, "100", true),
		testEdge(org, c, a, "100", true),
	}

	g := NewGraph(org, graphAsOf, nil, []Entity{a, b, c}, edges)

	if !g.HasCycle() {
		t.Fatalf("expected cycle finding, got findings: %+v", g.Findings)
	}

	// A cyclic primary chain must error cleanly rather than loop.
	if _, _, err := g.EffectiveOwnership(a.ID); err == nil {
		t.Errorf("expected error computing effective ownership through a cycle")
	}
}

func TestPrimaryParentAndMultiParentView(t *testing.T) {
	org := uuid.New()
	parent := testEntity(org, "Parent Corp", "PC")
	minority := testEntity(org, "Minority Investor", "MI")
	child := testEntity(org, "Child LLC", "CL")

	edges := []OwnershipEdge{
		testEdge(org, parent, child, "80", true),
		testEdge(org, minority, child, "15", false),
	}

	g := NewGraph(org, graphAsOf, nil, []Entity{parent, minority, child}, edges)

	primary, ok := g.PrimaryParent(child.ID)
	if !ok {
		t.Fatalf("expected a primary parent")
	}
	if primary.OwnerID != parent.ID {
		t.Errorf("wrong primary parent: %s", primary.OwnerID)
	}

	node, _ := g.Node(child.ID)
	if len(node.ParentEdges) != 2 {
		t.Errorf("expected 2 parent edges for multi-parent view, got %d", len(node.ParentEdges))
	}

	// 95% aggregate is a valid state surfaced as an under-100 finding.
	total := g.AggregateOwnership(child.ID)
	if !total.Equal(decimal.RequireFromString("95")) {
		t.Errorf("expected aggregate 95, got %s", total)
	}
	under := false
	for _, finding := range g.Findings {
		if finding.Kind == FindingOwnershipUnder {
			under = true
		}
	}
	if !under {
		t.Errorf("expected under-100 ownership finding, got %+v", g.Findings)
	}
}

func TestMultiplePrimaryOwnersFlagged(t *testing.T) {
	org := uuid.New()
	p1 := testEntity(org, "First Owner", "O1")
	p2 := testEntity(org, "Second Owner", "O2")
	child := testEntity(org, "Contested", "CT")

	edges := []OwnershipEdge{
		testEdge(org, p1, child, "50", true),
		testEdge(org, p2, child, "50", true),
	}

	g := NewGraph(org, graphAsOf, nil, []Entity{p1, p2, child}, edges)

	found := false
	for _, finding := range g.Findings {
		if finding.Kind == FindingMultiplePrimary {
			found = true
		}
	}
	if !found {
		t.Errorf("expected multiple-primary finding, got %+v", g.Findings)
	}
}

func TestDanglingEdgeReported(t *testing.T) {
	org := uuid.New()
	only := testEntity(org, "Only Visible", "OV")
	ghost := testEntity(org, "Ghost", "GH")

	edges := []OwnershipEdge{testEdge(org, ghost, only, "100", true)}

	g := NewGraph(org, graphAsOf, nil, []Entity{only}, edges)

	if len(g.Edges()) != 0 {
		t.Errorf("dangling edge should not materialize")
	}
	found := false
	for _, finding := range g.Findings {
		if finding.Kind == FindingDanglingEdge {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dangling-edge finding, got %+v", g.Findings)
	}
}

func TestRootsExcludeEntitiesWithPrimaryParents(t *testing.T) {
	org := uuid.New()
	root := testEntity(org, "Root Holdco", "RH")
	sub := testEntity(org, "Sub", "SB")

	g := NewGraph(org, graphAsOf, nil, []Entity{root, sub}, []OwnershipEdge{
		testEdge(org, root, sub, "100", true),
	})

	roots := g.Roots()
	if len(roots) != 1 || roots[0].Entity.ID != root.ID {
		t.Errorf("expected single root %s, got %d roots", root.Code, len(roots))
	}
}
