package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Workspace groups an ordered set of scenarios for a team of members.
type Workspace struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Members        []string  `json:"members"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewWorkspace creates a workspace for the given members.
func NewWorkspace(organizationID uuid.UUID, name string, members []string) Workspace {
	now := time.Now()
	return Workspace{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Name:           name,
		Members:        append([]string(nil), members...),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Scenario is a named copy-on-write overlay of entity and edge changes. Its
// base is either the main universe (BaseScenarioID nil) or another scenario.
// Scenarios hold only the deltas they introduce; everything else resolves
// through the base chain at read time.
type Scenario struct {
	ID             uuid.UUID  `json:"id"`
	WorkspaceID    uuid.UUID  `json:"workspace_id"`
	Name           string     `json:"name"`
	BaseScenarioID *uuid.UUID `json:"base_scenario_id,omitempty"`
	Position       int        `json:"position"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewScenario creates a scenario in a workspace, optionally forked from an
// existing scenario.
func NewScenario(workspaceID uuid.UUID, name string, baseScenarioID *uuid.UUID, position int) Scenario {
	now := time.Now()
	var base *uuid.UUID
	if baseScenarioID != nil {
		id := *baseScenarioID
		base = &id
	}
	return Scenario{
		ID:             uuid.New(),
		WorkspaceID:    workspaceID,
		Name:           name,
		BaseScenarioID: base,
		Position:       position,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// DeltaKind distinguishes entity deltas from ownership edge deltas.
type DeltaKind string

const (
	DeltaKindEntity DeltaKind = "ENTITY"
	DeltaKindEdge   DeltaKind = "EDGE"
)

// DeltaOp is the overlay operation a delta performs.
type DeltaOp string

const (
	DeltaOpUpsert DeltaOp = "UPSERT"
	DeltaOpDelete DeltaOp = "DELETE"
)

// ScenarioDelta is one recorded change inside a scenario overlay. Upserts
// carry the full replacement record; deletes carry only the target id.
type ScenarioDelta struct {
	ID         uuid.UUID      `json:"id"`
	ScenarioID uuid.UUID      `json:"scenario_id"`
	Kind       DeltaKind      `json:"kind"`
	Op         DeltaOp        `json:"op"`
	TargetID   uuid.UUID      `json:"target_id"`
	Entity     *Entity        `json:"entity,omitempty"`
	Edge       *OwnershipEdge `json:"edge,omitempty"`
	AppliedAt  time.Time      `json:"applied_at"`
}

// NewEntityDelta records an entity upsert or delete in a scenario.
func NewEntityDelta(scenarioID uuid.UUID, op DeltaOp, targetID uuid.UUID, entity *Entity) ScenarioDelta {
	return ScenarioDelta{
		ID:         uuid.New(),
		ScenarioID: scenarioID,
		Kind:       DeltaKindEntity,
		Op:         op,
		TargetID:   targetID,
		Entity:     entity,
		AppliedAt:  time.Now(),
	}
}

// NewEdgeDelta records an ownership edge upsert or delete in a scenario.
func NewEdgeDelta(scenarioID uuid.UUID, op DeltaOp, targetID uuid.UUID, edge *OwnershipEdge) ScenarioDelta {
	return ScenarioDelta{
		ID:         uuid.New(),
		ScenarioID: scenarioID,
		Kind:       DeltaKindEdge,
		Op:         op,
		TargetID:   targetID,
		Edge:       edge,
		AppliedAt:  time.Now(),
	}
}

// Validate checks delta shape: upserts need a record, deletes need a target.
func (d ScenarioDelta) Validate() error {
	switch d.Op {
	case DeltaOpUpsert:
		if d.Kind == DeltaKindEntity && d.Entity == nil {
			return fmt.Errorf("%w: entity upsert delta requires an entity", ErrValidation)
		}
		if d.Kind == DeltaKindEdge && d.Edge == nil {
			return fmt.Errorf("%w: edge upsert delta requires an edge", ErrValidation)
		}
	case DeltaOpDelete:
		if d.TargetID == uuid.Nil {
			return fmt.Errorf("%w: delete delta requires a target id", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown delta op %q", ErrValidation, d.Op)
	}
	switch d.Kind {
	case DeltaKindEntity, DeltaKindEdge:
		return nil
	default:
		return fmt.Errorf("%w: unknown delta kind %q", ErrValidation, d.Kind)
	}
}
