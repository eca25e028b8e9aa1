package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FindingKind classifies a data-integrity finding on a projected graph.
type FindingKind string

const (
	FindingCycle           FindingKind = "OWNERSHIP_CYCLE"
	FindingMultiplePrimary FindingKind = "MULTIPLE_PRIMARY_OWNERS"
	FindingOwnershipOver   FindingKind = "OWNERSHIP_SUM_OVER_100"
	FindingOwnershipUnder  FindingKind = "OWNERSHIP_SUM_UNDER_100"
	FindingDanglingEdge    FindingKind = "DANGLING_EDGE"
)

// Finding is a non-fatal integrity issue surfaced to the caller. Partial or
// excess ownership sums and cycles are reportable states, never rejections.
type Finding struct {
	Kind      FindingKind `json:"kind"`
	EntityIDs []uuid.UUID `json:"entity_ids"`
	Detail    string      `json:"detail"`
}

// GraphNode is one entity in a projected graph with its incident edges.
type GraphNode struct {
	Entity      Entity
	ParentEdges []OwnershipEdge // edges owning this entity
	ChildEdges  []OwnershipEdge // edges this entity owns
}

// Graph is an ownership graph projected at a single as-of date, optionally
// through a scenario overlay. It is immutable once built; all queries over it
// are pure.
type Graph struct {
	OrganizationID uuid.UUID
	AsOf           time.Time
	ScenarioID     *uuid.UUID
	Findings       []Finding

	nodes map[uuid.UUID]*GraphNode
	order []uuid.UUID
}

var hundred = decimal.NewFromInt(100)

// NewGraph materializes a graph from the entities and edges visible at the
// as-of date. Edges referencing entities outside the node set are dropped and
// reported as dangling.
func NewGraph(organizationID uuid.UUID, asOf time.Time, scenarioID *uuid.UUID, entities []Entity, edges []OwnershipEdge) *Graph {
	g := &Graph{
		OrganizationID: organizationID,
		AsOf:           asOf,
		ScenarioID:     scenarioID,
		nodes:          make(map[uuid.UUID]*GraphNode, len(entities)),
	}

	for _, entity := range entities {
		if _, ok := g.nodes[entity.ID]; ok {
			continue
		}
		g.nodes[entity.ID] = &GraphNode{Entity: entity}
		g.order = append(g.order, entity.ID)
	}

	sort.Slice(g.order, func(i, j int) bool {
		a, b := g.nodes[g.order[i]].Entity, g.nodes[g.order[j]].Entity
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Code < b.Code
	})

	for _, edge := range edges {
		owned, ownedOK := g.nodes[edge.OwnedID]
		owner, ownerOK := g.nodes[edge.OwnerID]
		if !ownedOK || !ownerOK {
			g.Findings = append(g.Findings, Finding{
				Kind:      FindingDanglingEdge,
				EntityIDs: []uuid.UUID{edge.OwnerID, edge.OwnedID},
				Detail:    fmt.Sprintf("edge %s references an entity not visible at %s", edge.ID, asOf.Format("2006-01-02")),
			})
			continue
		}
		owned.ParentEdges = append(owned.ParentEdges, edge)
		owner.ChildEdges = append(owner.ChildEdges, edge)
	}

	g.collectFindings()
	return g
}

// Nodes returns all nodes ordered by (name, code).
func (g *Graph) Nodes() []*GraphNode {
	nodes := make([]*GraphNode, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Node returns the node for an entity id.
func (g *Graph) Node(id uuid.UUID) (*GraphNode, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Edges returns every edge in the graph, keyed once by owned entity.
func (g *Graph) Edges() []OwnershipEdge {
	var edges []OwnershipEdge
	for _, id := range g.order {
		edges = append(edges, g.nodes[id].ParentEdges...)
	}
	return edges
}

// PrimaryParent returns the edge flagged primary for the entity, used for
// single-parent chart layouts. The full parent set stays available on the
// node for the multiple-parents view.
func (g *Graph) PrimaryParent(id uuid.UUID) (OwnershipEdge, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return OwnershipEdge{}, false
	}
	for _, edge := range node.ParentEdges {
		if edge.Primary {
			return edge, true
		}
	}
	return OwnershipEdge{}, false
}

// AggregateOwnership sums the percentages of all edges targeting the entity.
// Sums over or under 100 are valid states; see Findings.
func (g *Graph) AggregateOwnership(id uuid.UUID) decimal.Decimal {
	node, ok := g.nodes[id]
	if !ok {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, edge := range node.ParentEdges {
		total = total.Add(edge.Percent)
	}
	return total
}

// EffectiveOwnership composes percentages multiplicatively along the
// primary-parent chain from the chain root down to the entity. A 90% stake in
// an entity that holds 80% of its child yields 72% effective ownership of the
// child. The returned chain lists entity ids root first.
func (g *Graph) EffectiveOwnership(id uuid.UUID) (decimal.Decimal, []uuid.UUID, error) {
	if _, ok := g.nodes[id]; !ok {
		return decimal.Zero, nil, fmt.Errorf("%w: entity %s not in graph", ErrNotFound, id)
	}

	chain := []uuid.UUID{id}
	effective := hundred
	visited := map[uuid.UUID]struct{}{id: {}}

	current := id
	for {
		edge, ok := g.PrimaryParent(current)
		if !ok {
			break
		}
		if _, seen := visited[edge.OwnerID]; seen {
			return decimal.Zero, nil, fmt.Errorf("%w: ownership cycle through entity %s", ErrValidation, edge.OwnerID)
		}
		visited[edge.OwnerID] = struct{}{}
		effective = effective.Mul(edge.Percent).Div(hundred)
		chain = append(chain, edge.OwnerID)
		current = edge.OwnerID
	}

	// Reverse so the root comes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return effective, chain, nil
}

// EffectiveStake composes percentages along owned's primary-parent chain
// upward until it reaches owner. The second return is false when owner is not
// on that chain.
func (g *Graph) EffectiveStake(ownerID, ownedID uuid.UUID) (decimal.Decimal, bool) {
	if ownerID == ownedID {
		return hundred, true
	}

	effective := hundred
	visited := map[uuid.UUID]struct{}{ownedID: {}}
	current := ownedID
	for {
		edge, ok := g.PrimaryParent(current)
		if !ok {
			return decimal.Zero, false
		}
		if _, seen := visited[edge.OwnerID]; seen {
			return decimal.Zero, false
		}
		visited[edge.OwnerID] = struct{}{}
		effective = effective.Mul(edge.Percent).Div(hundred)
		if edge.OwnerID == ownerID {
			return effective, true
		}
		current = edge.OwnerID
	}
}

// Roots returns entities without a primary parent, ordered like Nodes.
func (g *Graph) Roots() []*GraphNode {
	var roots []*GraphNode
	for _, id := range g.order {
		if _, ok := g.PrimaryParent(id); !ok {
			roots = append(roots, g.nodes[id])
		}
	}
	return roots
}

func (g *Graph) collectFindings() {
	for _, id := range g.order {
		node := g.nodes[id]

		primaries := 0
		for _, edge := range node.ParentEdges {
			if edge.Primary {
				primaries++
			}
		}
		if primaries > 1 {
			g.Findings = append(g.Findings, Finding{
				Kind:      FindingMultiplePrimary,
				EntityIDs: []uuid.UUID{id},
				Detail:    fmt.Sprintf("%s has %d edges flagged primary", node.Entity.Name, primaries),
			})
		}

		if len(node.ParentEdges) > 0 {
			total := g.AggregateOwnership(id)
			switch {
			case total.GreaterThan(hundred):
				g.Findings = append(g.Findings, Finding{
					Kind:      FindingOwnershipOver,
					EntityIDs: []uuid.UUID{id},
					Detail:    fmt.Sprintf("%s ownership sums to %s%%", node.Entity.Name, total.String()),
				})
			case total.LessThan(hundred):
				g.Findings = append(g.Findings, Finding{
					Kind:      FindingOwnershipUnder,
					EntityIDs: []uuid.UUID{id},
					Detail:    fmt.Sprintf("%s ownership sums to %s%%", node.Entity.Name, total.String()),
				})
			}
		}
	}

	for _, cycle := range g.findCycles() {
		names := make([]string, len(cycle))
		for i, id := range cycle {
			names[i] = g.nodes[id].Entity.Code
		}
		g.Findings = append(g.Findings, Finding{
			Kind:      FindingCycle,
			EntityIDs: cycle,
			Detail:    fmt.Sprintf("ownership cycle: %v", names),
		})
	}
}

// findCycles runs a colored depth-first search over all ownership edges (not
// just primary ones) and reports each cycle once.
func (g *Graph) findCycles() [][]uuid.UUID {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[uuid.UUID]int, len(g.nodes))
	var cycles [][]uuid.UUID
	var stack []uuid.UUID

	var visit func(id uuid.UUID)
	visit = func(id uuid.UUID) {
		color[id] = gray
		stack = append(stack, id)

		for _, edge := range g.nodes[id].ChildEdges {
			next := edge.OwnedID
			switch color[next] {
			case white:
				visit(next)
			case gray:
				// Found a back edge; slice the cycle out of the stack.
				start := len(stack) - 1
				for start >= 0 && stack[start] != next {
					start--
				}
				if start >= 0 {
					cycle := make([]uuid.UUID, len(stack)-start)
					copy(cycle, stack[start:])
					cycles = append(cycles, cycle)
				}
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			visit(id)
		}
	}

	return cycles
}

// HasCycle reports whether any ownership cycle finding is present.
func (g *Graph) HasCycle() bool {
	for _, finding := range g.Findings {
		if finding.Kind == FindingCycle {
			return true
		}
	}
	return false
}
