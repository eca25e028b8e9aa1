package graph

// THIS CODE WILL BE UPDATED WITH SCHEMA CHANGES. PREVIOUS IMPLEMENTATION FOR SCHEMA CHANGES WILL BE KEPT IN THE COMMENT SECTION. IMPLEMENTATION FOR UNCHANGED SCHEMA WILL BE KEPT.

import (
	"context"
)

type Resolver struct{}

// CreateOrganization is the resolver for the createOrganization field.
func (r *mutationResolver) CreateOrganization(ctx context.Context, name string, description *string) (*Organization, error) {
	panic("not implemented")
}

// UpdateOrganization is the resolver for the updateOrganization field.
func (r *mutationResolver) UpdateOrganization(ctx context.Context, id string, name *string, description *string) (*Organization, error) {
	panic("not implemented")
}

// DeleteOrganization is the resolver for the deleteOrganization field.
func (r *mutationResolver) DeleteOrganization(ctx context.Context, id string) (bool, error) {
	panic("not implemented")
}

// CreateEntity is the resolver for the createEntity field.
func (r *mutationResolver) CreateEntity(ctx context.Context, input CreateEntityInput) (*Entity, error) {
	panic("not implemented")
}

// UpdateEntity is the resolver for the updateEntity field.
func (r *mutationResolver) UpdateEntity(ctx context.Context, id string, input UpdateEntityInput, effectiveAsOf string) (*Entity, error) {
	panic("not implemented")
}

// TerminateEntity is the resolver for the terminateEntity field.
func (r *mutationResolver) TerminateEntity(ctx context.Context, id string, terminationDate string) (*Entity, error) {
	panic("not implemented")
}

// CreateOwnershipEdge is the resolver for the createOwnershipEdge field.
func (r *mutationResolver) CreateOwnershipEdge(ctx context.Context, input OwnershipEdgeInput) (*OwnershipEdge, error) {
	panic("not implemented")
}

// UpdateOwnershipEdge is the resolver for the updateOwnershipEdge field.
func (r *mutationResolver) UpdateOwnershipEdge(ctx context.Context, id string, input OwnershipEdgeInput) (*OwnershipEdge, error) {
	panic("not implemented")
}

// DeleteOwnershipEdge is the resolver for the deleteOwnershipEdge field.
func (r *mutationResolver) DeleteOwnershipEdge(ctx context.Context, id string) (bool, error) {
	panic("not implemented")
}

// CreateWorkspace is the resolver for the createWorkspace field.
func (r *mutationResolver) CreateWorkspace(ctx context.Context, organizationID string, name string, members []string) (*Workspace, error) {
	panic("not implemented")
}

// CreateScenario is the resolver for the createScenario field.
func (r *mutationResolver) CreateScenario(ctx context.Context, workspaceID string, name string, baseScenarioID *string) (*Scenario, error) {
	panic("not implemented")
}

// ApplyScenarioDelta is the resolver for the applyScenarioDelta field.
func (r *mutationResolver) ApplyScenarioDelta(ctx context.Context, scenarioID string, input ScenarioDeltaInput) (*ScenarioDelta, error) {
	panic("not implemented")
}

// UpsertFiling is the resolver for the upsertFiling field.
func (r *mutationResolver) UpsertFiling(ctx context.Context, input FilingInput) (*JurisdictionFiling, error) {
	panic("not implemented")
}

// CreateTransaction is the resolver for the createTransaction field.
func (r *mutationResolver) CreateTransaction(ctx context.Context, input TransactionInput) (*IntercompanyTransaction, error) {
	panic("not implemented")
}

// Organizations is the resolver for the organizations field.
func (r *queryResolver) Organizations(ctx context.Context) ([]*Organization, error) {
	panic("not implemented")
}

// Organization is the resolver for the organization field.
func (r *queryResolver) Organization(ctx context.Context, id string) (*Organization, error) {
	panic("not implemented")
}

// OrganizationByName is the resolver for the organizationByName field.
func (r *queryResolver) OrganizationByName(ctx context.Context, name string) (*Organization, error) {
	panic("not implemented")
}

// Entities is the resolver for the entities field.
func (r *queryResolver) Entities(ctx context.Context, organizationID string, asOf string, filter *EntityFilter) ([]*Entity, error) {
	panic("not implemented")
}

// Entity is the resolver for the entity field.
func (r *queryResolver) Entity(ctx context.Context, id string, asOf string) (*Entity, error) {
	panic("not implemented")
}

// EntityVersions is the resolver for the entityVersions field.
func (r *queryResolver) EntityVersions(ctx context.Context, id string) ([]*Entity, error) {
	panic("not implemented")
}

// EntityHistory is the resolver for the entityHistory field.
func (r *queryResolver) EntityHistory(ctx context.Context, id string) ([]*EntitySnapshotView, error) {
	panic("not implemented")
}

// EntityDiff is the resolver for the entityDiff field.
func (r *queryResolver) EntityDiff(ctx context.Context, id string, baseVersion int, targetVersion int) (*EntityDiffResult, error) {
	panic("not implemented")
}

// OwnershipGraph is the resolver for the ownershipGraph field.
func (r *queryResolver) OwnershipGraph(ctx context.Context, organizationID string, asOf string, scenarioID *string) (*OwnershipGraph, error) {
	panic("not implemented")
}

// EffectiveOwnership is the resolver for the effectiveOwnership field.
func (r *queryResolver) EffectiveOwnership(ctx context.Context, organizationID string, entityID string, asOf string, scenarioID *string) (*EffectiveOwnership, error) {
	panic("not implemented")
}

// Workspaces is the resolver for the workspaces field.
func (r *queryResolver) Workspaces(ctx context.Context, organizationID string) ([]*Workspace, error) {
	panic("not implemented")
}

// Scenarios is the resolver for the scenarios field.
func (r *queryResolver) Scenarios(ctx context.Context, workspaceID string) ([]*Scenario, error) {
	panic("not implemented")
}

// ScenarioDeltas is the resolver for the scenarioDeltas field.
func (r *queryResolver) ScenarioDeltas(ctx context.Context, scenarioID string) ([]*ScenarioDelta, error) {
	panic("not implemented")
}

// ChangeLog is the resolver for the changeLog field.
func (r *queryResolver) ChangeLog(ctx context.Context, entityID string, offset *int, limit *int) ([]*ChangeRecord, error) {
	panic("not implemented")
}

// ChangeDiff is the resolver for the changeDiff field.
func (r *queryResolver) ChangeDiff(ctx context.Context, entityID string, timestampA string, timestampB string) ([]*FieldChange, error) {
	panic("not implemented")
}

// Filings is the resolver for the filings field.
func (r *queryResolver) Filings(ctx context.Context, entityID string) ([]*JurisdictionFiling, error) {
	panic("not implemented")
}

// FilingGroup is the resolver for the filingGroup field.
func (r *queryResolver) FilingGroup(ctx context.Context, organizationID string, filingGroup string) ([]*JurisdictionFiling, error) {
	panic("not implemented")
}

// Transactions is the resolver for the transactions field.
func (r *queryResolver) Transactions(ctx context.Context, organizationID string) ([]*IntercompanyTransaction, error) {
	panic("not implemented")
}

// TransactionsForEntity is the resolver for the transactionsForEntity field.
func (r *queryResolver) TransactionsForEntity(ctx context.Context, entityID string) ([]*IntercompanyTransaction, error) {
	panic("not implemented")
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
