package graphql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/entityloader"
	"github.com/pwallin/corpgraph/internal/middleware"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"
)

// OwnershipGraph projects the ownership graph at an as-of date, optionally
// through a scenario overlay. Integrity findings ride along on the result.
func (r *Resolver) OwnershipGraph(ctx context.Context, organizationID, asOf string, scenarioID *string) (*graph.OwnershipGraph, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	asOfDate, err := parseDate(asOf)
	if err != nil {
		return nil, err
	}
	scenarioUUID, err := optionalUUID(scenarioID)
	if err != nil {
		return nil, err
	}

	projected, err := r.projector.Project(ctx, orgID, asOfDate, scenarioUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to project ownership graph: %w", err)
	}

	return toGraphOwnership(projected)
}

// EffectiveOwnership returns the group's effective stake in an entity along
// its primary-parent chain.
func (r *Resolver) EffectiveOwnership(ctx context.Context, organizationID, entityID, asOf string, scenarioID *string) (*graph.EffectiveOwnership, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	targetID, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}
	asOfDate, err := parseDate(asOf)
	if err != nil {
		return nil, err
	}
	scenarioUUID, err := optionalUUID(scenarioID)
	if err != nil {
		return nil, err
	}

	percent, chain, err := r.projector.EffectiveOwnership(ctx, orgID, targetID, asOfDate, scenarioUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute effective ownership: %w", err)
	}

	ids := make([]string, len(chain))
	for i, id := range chain {
		ids[i] = id.String()
	}

	entities, err := r.entitiesAt(ctx, chain, asOfDate)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate ownership chain: %w", err)
	}

	return &graph.EffectiveOwnership{
		Percent:       percent.StringFixed(4),
		Chain:         ids,
		ChainEntities: entities,
	}, nil
}

// entitiesAt resolves entity versions for a set of ids at one as-of date.
// When the request carries a batching loader the n reads collapse into one
// batched load; without one it falls back to direct store reads. Ids that
// resolve to nothing at the date are dropped rather than erroring, matching
// how projections treat dangling references.
func (r *Resolver) entitiesAt(ctx context.Context, ids []uuid.UUID, asOf time.Time) ([]*graph.Entity, error) {
	result := make([]*graph.Entity, 0, len(ids))

	loader := middleware.EntityLoaderFromContext(ctx)
	if loader == nil {
		for _, id := range ids {
			entity, err := r.store.GetEntity(ctx, id, asOf)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to load entity %s: %w", id, err)
			}
			mapped, err := toGraphEntity(entity)
			if err != nil {
				return nil, err
			}
			result = append(result, mapped)
		}
		return result, nil
	}

	// Issue every load before resolving the first thunk so the loader can
	// batch them.
	thunks := make([]dataloader.Thunk, len(ids))
	for i, id := range ids {
		thunks[i] = loader.Load(ctx, entityloader.Key(id, asOf))
	}
	for i, thunk := range thunks {
		data, err := thunk()
		if err != nil {
			return nil, fmt.Errorf("failed to load entity %s: %w", ids[i], err)
		}
		entity, ok := data.(domain.Entity)
		if !ok {
			continue
		}
		mapped, err := toGraphEntity(entity)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

func toGraphOwnership(projected *domain.Graph) (*graph.OwnershipGraph, error) {
	nodes := projected.Nodes()
	result := &graph.OwnershipGraph{
		OrganizationID: projected.OrganizationID.String(),
		AsOf:           projected.AsOf.Format("2006-01-02"),
		Nodes:          make([]*graph.GraphNode, 0, len(nodes)),
		Edges:          make([]*graph.OwnershipEdge, 0),
		Roots:          make([]*graph.GraphNode, 0),
		Findings:       make([]*graph.Finding, 0, len(projected.Findings)),
	}
	if projected.ScenarioID != nil {
		result.ScenarioID = strPtr(projected.ScenarioID.String())
	}

	for _, node := range nodes {
		mapped, err := toGraphNode(projected, node)
		if err != nil {
			return nil, err
		}
		result.Nodes = append(result.Nodes, mapped)
	}

	for _, edge := range projected.Edges() {
		result.Edges = append(result.Edges, toGraphEdge(edge))
	}

	for _, root := range projected.Roots() {
		mapped, err := toGraphNode(projected, root)
		if err != nil {
			return nil, err
		}
		result.Roots = append(result.Roots, mapped)
	}

	for _, finding := range projected.Findings {
		ids := make([]string, len(finding.EntityIDs))
		for i, id := range finding.EntityIDs {
			ids[i] = id.String()
		}
		result.Findings = append(result.Findings, &graph.Finding{
			Kind:      string(finding.Kind),
			EntityIds: ids,
			Detail:    finding.Detail,
		})
	}

	return result, nil
}

func toGraphNode(projected *domain.Graph, node *domain.GraphNode) (*graph.GraphNode, error) {
	entity, err := toGraphEntity(node.Entity)
	if err != nil {
		return nil, err
	}

	parents := make([]*graph.OwnershipEdge, len(node.ParentEdges))
	for i, edge := range node.ParentEdges {
		parents[i] = toGraphEdge(edge)
	}
	children := make([]*graph.OwnershipEdge, len(node.ChildEdges))
	for i, edge := range node.ChildEdges {
		children[i] = toGraphEdge(edge)
	}

	return &graph.GraphNode{
		Entity:             entity,
		ParentEdges:        parents,
		ChildEdges:         children,
		AggregateOwnership: projected.AggregateOwnership(node.Entity.ID).StringFixed(4),
	}, nil
}
