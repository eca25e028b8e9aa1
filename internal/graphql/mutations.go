package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/scenario"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mutation resolvers

// CreateOrganization creates a new organization
func (r *Resolver) CreateOrganization(ctx context.Context, name string, description *string) (*graph.Organization, error) {
	desc := ""
	if description != nil {
		desc = *description
	}
	org := domain.NewOrganization(name, desc)

	created, err := r.orgRepo.Create(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return toGraphOrganization(created), nil
}

// UpdateOrganization updates the name and/or description of an organization.
func (r *Resolver) UpdateOrganization(ctx context.Context, id string, name, description *string) (*graph.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	org, err := r.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if name != nil {
		org = org.WithName(*name)
	}
	if description != nil {
		org = org.WithDescription(*description)
	}
	updated, err := r.orgRepo.Update(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toGraphOrganization(updated), nil
}

// DeleteOrganization removes an organization.
func (r *Resolver) DeleteOrganization(ctx context.Context, id string) (bool, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Errorf("invalid organization ID: %w", err)
	}
	if err := r.orgRepo.Delete(ctx, orgID); err != nil {
		return false, fmt.Errorf("failed to delete organization: %w", err)
	}
	return true, nil
}

// CreateEntity appends the first version of a new entity.
func (r *Resolver) CreateEntity(ctx context.Context, input graph.CreateEntityInput) (*graph.Entity, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	entityType, err := domain.ParseEntityType(input.EntityType)
	if err != nil {
		return nil, err
	}
	effectiveFrom, err := parseDate(input.EffectiveFrom)
	if err != nil {
		return nil, err
	}

	entity := domain.NewEntity(orgID, input.Name, input.Code, entityType, input.Jurisdiction, effectiveFrom)

	local, functional, reporting := entity.LocalCurrency, entity.FunctionalCurrency, entity.ReportingCurrency
	if input.LocalCurrency != nil {
		local = *input.LocalCurrency
	}
	if input.FunctionalCurrency != nil {
		functional = *input.FunctionalCurrency
	}
	if input.ReportingCurrency != nil {
		reporting = *input.ReportingCurrency
	}
	entity = entity.WithCurrencies(local, functional, reporting)

	attrs, err := decodeAttributes(input.Attributes)
	if err != nil {
		return nil, err
	}
	if attrs != nil {
		entity = entity.WithAttributes(attrs)
	}

	created, err := r.store.PutEntity(ctx, entity, effectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}
	return toGraphEntity(created)
}

// UpdateEntity appends a new version of an entity effective at the given
// business date. Earlier versions stay queryable.
func (r *Resolver) UpdateEntity(ctx context.Context, id string, input graph.UpdateEntityInput, effectiveAsOf string) (*graph.Entity, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}
	effective, err := parseDate(effectiveAsOf)
	if err != nil {
		return nil, err
	}

	entity, err := r.store.GetEntity(ctx, entityID, effective)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity: %w", err)
	}

	if input.Name != nil {
		entity = entity.WithName(*input.Name)
	}
	if input.Code != nil {
		entity = entity.WithCode(*input.Code)
	}
	if input.EntityType != nil {
		entityType, err := domain.ParseEntityType(*input.EntityType)
		if err != nil {
			return nil, err
		}
		entity = entity.WithEntityType(entityType)
	}
	if input.Jurisdiction != nil {
		entity = entity.WithJurisdiction(*input.Jurisdiction)
	}
	if input.LocalCurrency != nil || input.FunctionalCurrency != nil || input.ReportingCurrency != nil {
		local, functional, reporting := entity.LocalCurrency, entity.FunctionalCurrency, entity.ReportingCurrency
		if input.LocalCurrency != nil {
			local = *input.LocalCurrency
		}
		if input.FunctionalCurrency != nil {
			functional = *input.FunctionalCurrency
		}
		if input.ReportingCurrency != nil {
			reporting = *input.ReportingCurrency
		}
		entity = entity.WithCurrencies(local, functional, reporting)
	}
	if input.Attributes != nil {
		attrs, err := decodeAttributes(input.Attributes)
		if err != nil {
			return nil, err
		}
		entity = entity.WithAttributes(attrs)
	}

	updated, err := r.store.PutEntity(ctx, entity, effective)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}
	return toGraphEntity(updated)
}

// TerminateEntity appends a termination version; the entity disappears from
// projections dated on or after the termination date.
func (r *Resolver) TerminateEntity(ctx context.Context, id, terminationDate string) (*graph.Entity, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}
	terminated, err := parseDate(terminationDate)
	if err != nil {
		return nil, err
	}

	entity, err := r.store.TerminateEntity(ctx, entityID, terminated)
	if err != nil {
		return nil, fmt.Errorf("failed to terminate entity: %w", err)
	}
	return toGraphEntity(entity)
}

func edgeFromInput(input graph.OwnershipEdgeInput) (domain.OwnershipEdge, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("invalid organization ID: %w", err)
	}
	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("invalid owner ID: %w", err)
	}
	ownedID, err := uuid.Parse(input.OwnedID)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("invalid owned ID: %w", err)
	}
	percent, err := decimal.NewFromString(input.Percent)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("invalid percent %q: %w", input.Percent, err)
	}
	effectiveFrom, err := parseDate(input.EffectiveFrom)
	if err != nil {
		return domain.OwnershipEdge{}, err
	}

	edge := domain.NewOwnershipEdge(orgID, ownerID, ownedID, percent, effectiveFrom)
	if input.ShareClass != nil {
		edge = edge.WithShareClass(*input.ShareClass)
	}
	if input.OwnershipType != nil {
		edge.OwnershipType = *input.OwnershipType
	}
	if input.Primary != nil {
		edge = edge.WithPrimary(*input.Primary)
	}
	return edge, nil
}

// CreateOwnershipEdge adds an ownership relation to the main universe.
func (r *Resolver) CreateOwnershipEdge(ctx context.Context, input graph.OwnershipEdgeInput) (*graph.OwnershipEdge, error) {
	edge, err := edgeFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := edge.Validate(); err != nil {
		return nil, err
	}

	created, err := r.edgeRepo.Create(ctx, edge)
	if err != nil {
		return nil, fmt.Errorf("failed to create ownership edge: %w", err)
	}
	return toGraphEdge(created), nil
}

// UpdateOwnershipEdge applies the input to an existing edge. The edge keeps
// its identity, entry date and creation timestamp; only the relation fields
// change.
func (r *Resolver) UpdateOwnershipEdge(ctx context.Context, id string, input graph.OwnershipEdgeInput) (*graph.OwnershipEdge, error) {
	edgeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid edge ID: %w", err)
	}
	edge, err := r.edgeRepo.GetByID(ctx, edgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ownership edge: %w", err)
	}

	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID: %w", err)
	}
	ownedID, err := uuid.Parse(input.OwnedID)
	if err != nil {
		return nil, fmt.Errorf("invalid owned ID: %w", err)
	}
	percent, err := decimal.NewFromString(input.Percent)
	if err != nil {
		return nil, fmt.Errorf("invalid percent %q: %w", input.Percent, err)
	}
	effectiveFrom, err := parseDate(input.EffectiveFrom)
	if err != nil {
		return nil, err
	}

	edge.OwnerID = ownerID
	edge.OwnedID = ownedID
	edge.EffectiveFrom = effectiveFrom
	edge = edge.WithPercent(percent)
	if input.ShareClass != nil {
		edge = edge.WithShareClass(*input.ShareClass)
	}
	if input.OwnershipType != nil {
		edge.OwnershipType = *input.OwnershipType
	}
	if input.Primary != nil {
		edge = edge.WithPrimary(*input.Primary)
	}
	if err := edge.Validate(); err != nil {
		return nil, err
	}

	updated, err := r.edgeRepo.Update(ctx, edge)
	if err != nil {
		return nil, fmt.Errorf("failed to update ownership edge: %w", err)
	}
	return toGraphEdge(updated), nil
}

// DeleteOwnershipEdge removes an ownership relation.
func (r *Resolver) DeleteOwnershipEdge(ctx context.Context, id string) (bool, error) {
	edgeID, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Errorf("invalid edge ID: %w", err)
	}
	if err := r.edgeRepo.Delete(ctx, edgeID); err != nil {
		return false, fmt.Errorf("failed to delete ownership edge: %w", err)
	}
	return true, nil
}

// CreateWorkspace creates a scenario workspace.
func (r *Resolver) CreateWorkspace(ctx context.Context, organizationID, name string, members []string) (*graph.Workspace, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}

	workspace, err := r.scenarios.CreateWorkspace(ctx, scenario.CreateWorkspaceInput{
		OrganizationID: orgID,
		Name:           name,
		Members:        members,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return toGraphWorkspace(workspace), nil
}

// CreateScenario creates a scenario, optionally forked from another scenario.
func (r *Resolver) CreateScenario(ctx context.Context, workspaceID, name string, baseScenarioID *string) (*graph.Scenario, error) {
	wsID, err := uuid.Parse(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace ID: %w", err)
	}
	baseID, err := optionalUUID(baseScenarioID)
	if err != nil {
		return nil, err
	}

	created, err := r.scenarios.CreateScenario(ctx, scenario.CreateScenarioInput{
		WorkspaceID:    wsID,
		Name:           name,
		BaseScenarioID: baseID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario: %w", err)
	}
	return toGraphScenario(created), nil
}

// ApplyScenarioDelta records an overlay change in a scenario. Upserts carry
// the replacement record as JSON; deletes carry only the target id.
func (r *Resolver) ApplyScenarioDelta(ctx context.Context, scenarioID string, input graph.ScenarioDeltaInput) (*graph.ScenarioDelta, error) {
	scID, err := uuid.Parse(scenarioID)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario ID: %w", err)
	}

	delta := domain.ScenarioDelta{
		ScenarioID: scID,
		Kind:       domain.DeltaKind(input.Kind),
		Op:         domain.DeltaOp(input.Op),
	}
	if input.TargetID != nil {
		targetID, err := uuid.Parse(*input.TargetID)
		if err != nil {
			return nil, fmt.Errorf("invalid target ID: %w", err)
		}
		delta.TargetID = targetID
	}
	if input.Entity != nil {
		var entity domain.Entity
		if err := json.Unmarshal([]byte(*input.Entity), &entity); err != nil {
			return nil, fmt.Errorf("invalid entity payload: %w", err)
		}
		delta.Entity = &entity
	}
	if input.Edge != nil {
		var edge domain.OwnershipEdge
		if err := json.Unmarshal([]byte(*input.Edge), &edge); err != nil {
			return nil, fmt.Errorf("invalid edge payload: %w", err)
		}
		delta.Edge = &edge
	}

	applied, err := r.scenarios.ApplyDelta(ctx, scID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply scenario delta: %w", err)
	}
	return toGraphDelta(applied), nil
}

// UpsertFiling declares or updates an entity's filing obligations in a
// jurisdiction. The one-leader-per-group rule is enforced here.
func (r *Resolver) UpsertFiling(ctx context.Context, input graph.FilingInput) (*graph.JurisdictionFiling, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	entityID, err := uuid.Parse(input.EntityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	level := 0
	if input.HierarchyLevel != nil {
		level = *input.HierarchyLevel
	}
	leader := false
	if input.GroupLeader != nil {
		leader = *input.GroupLeader
	}

	filing := domain.NewJurisdictionFiling(orgID, entityID, input.Jurisdiction, input.FilingGroup, level, leader)
	if err := filing.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.filingRepo.ListByGroup(ctx, orgID, input.FilingGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to load filing group: %w", err)
	}
	if err := domain.CheckGroupLeader(existing, filing); err != nil {
		return nil, err
	}

	saved, err := r.filingRepo.Upsert(ctx, filing)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert filing: %w", err)
	}
	return toGraphFiling(saved), nil
}

// CreateTransaction records an intercompany transaction annotation.
func (r *Resolver) CreateTransaction(ctx context.Context, input graph.TransactionInput) (*graph.IntercompanyTransaction, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	sourceID, err := uuid.Parse(input.SourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid source ID: %w", err)
	}
	targetID, err := uuid.Parse(input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("invalid target ID: %w", err)
	}

	amounts := make([]domain.TransactionAmount, 0, len(input.Amounts))
	for _, raw := range input.Amounts {
		if raw == nil {
			continue
		}
		amount, err := decimal.NewFromString(raw.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", raw.Amount, err)
		}
		amounts = append(amounts, domain.TransactionAmount{
			Amount:     amount,
			AmountType: raw.AmountType,
			Currency:   raw.Currency,
		})
	}

	period := ""
	if input.FilingPeriod != nil {
		period = *input.FilingPeriod
	}

	txn := domain.NewIntercompanyTransaction(orgID, sourceID, targetID, input.TransactionType, period, amounts)
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	created, err := r.transactionRepo.Create(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return toGraphTransaction(created), nil
}
