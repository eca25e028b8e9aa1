// Package scenario manages workspaces and copy-on-write scenario overlays on
// top of the main entity universe.
package scenario

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EntitySource yields the main universe's entities at a business date.
// Satisfied by the temporal store.
type EntitySource interface {
	EntitiesAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.Entity, error)
}

// Universe is a resolved view: base chain plus overlays, ready for
// projection.
type Universe struct {
	Entities []domain.Entity
	Edges    []domain.OwnershipEdge
}

// Manager resolves scenarios against their base chain. Scenarios store only
// their own deltas; resolution walks base scenarios recursively down to the
// main universe and applies each overlay in order, the requested scenario
// last.
type Manager struct {
	workspaces repository.WorkspaceRepository
	entities   EntitySource
	edges      repository.OwnershipEdgeRepository
	validate   *validator.Validate
}

// NewManager creates a scenario manager over the given base universe.
func NewManager(workspaces repository.WorkspaceRepository, entities EntitySource, edges repository.OwnershipEdgeRepository) *Manager {
	return &Manager{
		workspaces: workspaces,
		entities:   entities,
		edges:      edges,
		validate:   validator.New(),
	}
}

// CreateWorkspaceInput carries the fields for a new workspace.
type CreateWorkspaceInput struct {
	OrganizationID uuid.UUID `validate:"required"`
	Name           string    `validate:"required,min=1,max=200"`
	Members        []string  `validate:"dive,required"`
}

// CreateWorkspace creates an empty workspace.
func (m *Manager) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (domain.Workspace, error) {
	if err := m.validate.Struct(input); err != nil {
		return domain.Workspace{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	workspace := domain.NewWorkspace(input.OrganizationID, input.Name, input.Members)
	created, err := m.workspaces.CreateWorkspace(ctx, workspace)
	if err != nil {
		return domain.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}
	return created, nil
}

// CreateScenarioInput carries the fields for a new scenario. A nil
// BaseScenarioID bases the scenario on the main universe.
type CreateScenarioInput struct {
	WorkspaceID    uuid.UUID `validate:"required"`
	Name           string    `validate:"required,min=1,max=200"`
	BaseScenarioID *uuid.UUID
}

// CreateScenario creates a scenario, optionally forked from another scenario
// in the same workspace. Forking copies nothing; the new scenario starts with
// an empty overlay and sees its base live until it diverges.
func (m *Manager) CreateScenario(ctx context.Context, input CreateScenarioInput) (domain.Scenario, error) {
	if err := m.validate.Struct(input); err != nil {
		return domain.Scenario{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if _, err := m.workspaces.GetWorkspace(ctx, input.WorkspaceID); err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to load workspace %s: %w", input.WorkspaceID, err)
	}
	if input.BaseScenarioID != nil {
		base, err := m.workspaces.GetScenario(ctx, *input.BaseScenarioID)
		if err != nil {
			return domain.Scenario{}, fmt.Errorf("failed to load base scenario %s: %w", *input.BaseScenarioID, err)
		}
		if base.WorkspaceID != input.WorkspaceID {
			return domain.Scenario{}, fmt.Errorf("%w: base scenario belongs to a different workspace", domain.ErrValidation)
		}
	}

	siblings, err := m.workspaces.ListScenarios(ctx, input.WorkspaceID)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to list scenarios: %w", err)
	}

	scenario := domain.NewScenario(input.WorkspaceID, input.Name, input.BaseScenarioID, len(siblings))
	created, err := m.workspaces.CreateScenario(ctx, scenario)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to create scenario: %w", err)
	}
	return created, nil
}

// ApplyDelta appends an overlay change to a scenario. The base universe and
// all other scenarios are untouched.
func (m *Manager) ApplyDelta(ctx context.Context, scenarioID uuid.UUID, delta domain.ScenarioDelta) (domain.ScenarioDelta, error) {
	if _, err := m.workspaces.GetScenario(ctx, scenarioID); err != nil {
		return domain.ScenarioDelta{}, fmt.Errorf("failed to load scenario %s: %w", scenarioID, err)
	}
	delta.ScenarioID = scenarioID
	if delta.ID == uuid.Nil {
		delta.ID = uuid.New()
	}
	if delta.AppliedAt.IsZero() {
		delta.AppliedAt = time.Now()
	}
	if err := delta.Validate(); err != nil {
		return domain.ScenarioDelta{}, err
	}
	if delta.Op == domain.DeltaOpUpsert {
		switch delta.Kind {
		case domain.DeltaKindEntity:
			if err := delta.Entity.Validate(); err != nil {
				return domain.ScenarioDelta{}, err
			}
			delta.TargetID = delta.Entity.ID
		case domain.DeltaKindEdge:
			if err := delta.Edge.Validate(); err != nil {
				return domain.ScenarioDelta{}, err
			}
			delta.TargetID = delta.Edge.ID
		}
	}

	appended, err := m.workspaces.AppendDelta(ctx, delta)
	if err != nil {
		return domain.ScenarioDelta{}, fmt.Errorf("failed to append scenario delta: %w", err)
	}
	return appended, nil
}

// Chain returns the scenario's base chain root-first, ending with the
// scenario itself. A base loop is reported as a validation error.
func (m *Manager) Chain(ctx context.Context, scenarioID uuid.UUID) ([]domain.Scenario, error) {
	var chain []domain.Scenario
	seen := map[uuid.UUID]bool{}

	current := &scenarioID
	for current != nil {
		if seen[*current] {
			return nil, fmt.Errorf("%w: scenario base chain contains a loop at %s", domain.ErrValidation, *current)
		}
		seen[*current] = true

		scenario, err := m.workspaces.GetScenario(ctx, *current)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario %s: %w", *current, err)
		}
		chain = append(chain, scenario)
		current = scenario.BaseScenarioID
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Resolve materializes the universe a scenario sees at asOf. A nil scenario
// id resolves the main universe unchanged. Overlays apply base-most first, so
// a scenario's own deltas win over anything inherited.
func (m *Manager) Resolve(ctx context.Context, organizationID uuid.UUID, scenarioID *uuid.UUID, asOf time.Time) (Universe, error) {
	baseEntities, err := m.entities.EntitiesAt(ctx, organizationID, asOf)
	if err != nil {
		return Universe{}, fmt.Errorf("failed to load base entities: %w", err)
	}
	baseEdges, err := m.edges.ListAt(ctx, organizationID, asOf)
	if err != nil {
		return Universe{}, fmt.Errorf("failed to load base edges: %w", err)
	}

	entities := make(map[uuid.UUID]domain.Entity, len(baseEntities))
	for _, entity := range baseEntities {
		entities[entity.ID] = entity
	}
	edges := make(map[uuid.UUID]domain.OwnershipEdge, len(baseEdges))
	for _, edge := range baseEdges {
		edges[edge.ID] = edge
	}

	if scenarioID != nil {
		chain, err := m.Chain(ctx, *scenarioID)
		if err != nil {
			return Universe{}, err
		}
		for _, scenario := range chain {
			deltas, err := m.workspaces.ListDeltas(ctx, scenario.ID)
			if err != nil {
				return Universe{}, fmt.Errorf("failed to load deltas for scenario %s: %w", scenario.ID, err)
			}
			for _, delta := range deltas {
				applyDelta(entities, edges, delta, asOf)
			}
		}
	}

	return collectUniverse(entities, edges), nil
}

func applyDelta(entities map[uuid.UUID]domain.Entity, edges map[uuid.UUID]domain.OwnershipEdge, delta domain.ScenarioDelta, asOf time.Time) {
	switch delta.Kind {
	case domain.DeltaKindEntity:
		switch delta.Op {
		case domain.DeltaOpUpsert:
			if delta.Entity != nil && delta.Entity.VisibleAt(asOf) {
				entities[delta.Entity.ID] = *delta.Entity
			} else if delta.Entity != nil {
				delete(entities, delta.Entity.ID)
			}
		case domain.DeltaOpDelete:
			delete(entities, delta.TargetID)
		}
	case domain.DeltaKindEdge:
		switch delta.Op {
		case domain.DeltaOpUpsert:
			if delta.Edge != nil && delta.Edge.VisibleAt(asOf) {
				edges[delta.Edge.ID] = *delta.Edge
			} else if delta.Edge != nil {
				delete(edges, delta.Edge.ID)
			}
		case domain.DeltaOpDelete:
			delete(edges, delta.TargetID)
		}
	}
}

func collectUniverse(entities map[uuid.UUID]domain.Entity, edges map[uuid.UUID]domain.OwnershipEdge) Universe {
	universe := Universe{
		Entities: make([]domain.Entity, 0, len(entities)),
		Edges:    make([]domain.OwnershipEdge, 0, len(edges)),
	}
	for _, entity := range entities {
		universe.Entities = append(universe.Entities, entity)
	}
	for _, edge := range edges {
		universe.Edges = append(universe.Edges, edge)
	}
	sort.Slice(universe.Entities, func(i, j int) bool {
		if universe.Entities[i].Name != universe.Entities[j].Name {
			return universe.Entities[i].Name < universe.Entities[j].Name
		}
		return universe.Entities[i].Code < universe.Entities[j].Code
	})
	sort.Slice(universe.Edges, func(i, j int) bool {
		return universe.Edges[i].ID.String() < universe.Edges[j].ID.String()
	})
	return universe
}

// Workspaces lists an organization's workspaces.
func (m *Manager) Workspaces(ctx context.Context, organizationID uuid.UUID) ([]domain.Workspace, error) {
	return m.workspaces.ListWorkspaces(ctx, organizationID)
}

// Scenarios lists a workspace's scenarios in position order.
func (m *Manager) Scenarios(ctx context.Context, workspaceID uuid.UUID) ([]domain.Scenario, error) {
	return m.workspaces.ListScenarios(ctx, workspaceID)
}

// Deltas lists a scenario's recorded overlay changes in applied order.
func (m *Manager) Deltas(ctx context.Context, scenarioID uuid.UUID) ([]domain.ScenarioDelta, error) {
	return m.workspaces.ListDeltas(ctx, scenarioID)
}
