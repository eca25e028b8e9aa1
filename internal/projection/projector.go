// Package projection materializes ownership graphs from the temporal store,
// optionally through a scenario overlay.
package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository"
	"github.com/pwallin/corpgraph/internal/scenario"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Projector builds point-in-time ownership graphs. Projections are pure
// reads: nothing they compute is written back, and integrity problems in the
// data surface as findings on the graph rather than errors.
type Projector struct {
	store     *temporal.Store
	edges     repository.OwnershipEdgeRepository
	scenarios *scenario.Manager
}

// NewProjector creates a projector. The scenario manager may be nil when only
// main-universe projections are needed.
func NewProjector(store *temporal.Store, edges repository.OwnershipEdgeRepository, scenarios *scenario.Manager) *Projector {
	return &Projector{store: store, edges: edges, scenarios: scenarios}
}

// Project builds the ownership graph visible at asOf. With a scenario id the
// graph reflects the scenario's resolved universe; without one it reflects
// the main universe.
func (p *Projector) Project(ctx context.Context, organizationID uuid.UUID, asOf time.Time, scenarioID *uuid.UUID) (*domain.Graph, error) {
	if scenarioID != nil {
		if p.scenarios == nil {
			return nil, fmt.Errorf("%w: scenario projections are not configured", domain.ErrValidation)
		}
		universe, err := p.scenarios.Resolve(ctx, organizationID, scenarioID, asOf)
		if err != nil {
			return nil, err
		}
		return domain.NewGraph(organizationID, asOf, scenarioID, universe.Entities, universe.Edges), nil
	}

	entities, err := p.store.ListEntities(ctx, organizationID, asOf, nil)
	if err != nil {
		return nil, err
	}
	edges, err := p.edges.ListAt(ctx, organizationID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list ownership edges: %w", err)
	}
	return domain.NewGraph(organizationID, asOf, nil, entities, edges), nil
}

// EffectiveOwnership returns the group's effective stake in an entity along
// its primary-parent chain, plus the chain itself topmost ancestor first.
func (p *Projector) EffectiveOwnership(ctx context.Context, organizationID, entityID uuid.UUID, asOf time.Time, scenarioID *uuid.UUID) (decimal.Decimal, []uuid.UUID, error) {
	graph, err := p.Project(ctx, organizationID, asOf, scenarioID)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	return graph.EffectiveOwnership(entityID)
}
