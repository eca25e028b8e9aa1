package graphql

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/ledger"
	"github.com/pwallin/corpgraph/internal/projection"
	"github.com/pwallin/corpgraph/internal/repository"
	"github.com/pwallin/corpgraph/internal/scenario"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
)

// Resolver handles GraphQL queries and mutations
type Resolver struct {
	orgRepo         repository.OrganizationRepository
	store           *temporal.Store
	edgeRepo        repository.OwnershipEdgeRepository
	projector       *projection.Projector
	scenarios       *scenario.Manager
	ledger          *ledger.Service
	filingRepo      repository.FilingRepository
	transactionRepo repository.TransactionRepository
}

// NewResolver creates a new GraphQL resolver
func NewResolver(
	orgRepo repository.OrganizationRepository,
	store *temporal.Store,
	edgeRepo repository.OwnershipEdgeRepository,
	projector *projection.Projector,
	scenarios *scenario.Manager,
	ledgerSvc *ledger.Service,
	filingRepo repository.FilingRepository,
	transactionRepo repository.TransactionRepository,
) *Resolver {
	return &Resolver{
		orgRepo:         orgRepo,
		store:           store,
		edgeRepo:        edgeRepo,
		projector:       projector,
		scenarios:       scenarios,
		ledger:          ledgerSvc,
		filingRepo:      filingRepo,
		transactionRepo: transactionRepo,
	}
}

// Query returns the resolver for query fields.
func (r *Resolver) Query() graph.QueryResolver { return r }

// Mutation returns the resolver for mutation fields.
func (r *Resolver) Mutation() graph.MutationResolver { return r }

// Query resolvers

// Organizations returns all organizations
func (r *Resolver) Organizations(ctx context.Context) ([]*graph.Organization, error) {
	orgs, err := r.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	result := make([]*graph.Organization, len(orgs))
	for i, org := range orgs {
		result[i] = toGraphOrganization(org)
	}
	return result, nil
}

// Organization returns a specific organization by ID
func (r *Resolver) Organization(ctx context.Context, id string) (*graph.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}

	org, err := r.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return toGraphOrganization(org), nil
}

// OrganizationByName returns a specific organization by name
func (r *Resolver) OrganizationByName(ctx context.Context, name string) (*graph.Organization, error) {
	org, err := r.orgRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization by name: %w", err)
	}
	return toGraphOrganization(org), nil
}

// Entities returns the entities visible at an as-of date, optionally filtered.
func (r *Resolver) Entities(ctx context.Context, organizationID, asOf string, filter *graph.EntityFilter) ([]*graph.Entity, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}
	asOfDate, err := parseDate(asOf)
	if err != nil {
		return nil, err
	}
	domainFilter, err := convertEntityFilter(filter)
	if err != nil {
		return nil, err
	}

	entities, err := r.store.ListEntities(ctx, orgID, asOfDate, domainFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	result := make([]*graph.Entity, 0, len(entities))
	var errs []error
	for _, entity := range entities {
		mapped, err := toGraphEntity(entity)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result = append(result, mapped)
	}
	if err := combineErrors(errs); err != nil {
		return nil, err
	}
	return result, nil
}

// Entity returns the version of an entity visible at an as-of date.
func (r *Resolver) Entity(ctx context.Context, id, asOf string) (*graph.Entity, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}
	asOfDate, err := parseDate(asOf)
	if err != nil {
		return nil, err
	}

	entity, err := r.store.GetEntity(ctx, entityID, asOfDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return toGraphEntity(entity)
}

// EntityVersions returns the full append-only history of an entity.
func (r *Resolver) EntityVersions(ctx context.Context, id string) ([]*graph.Entity, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	versions, err := r.store.Versions(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity versions: %w", err)
	}

	result := make([]*graph.Entity, 0, len(versions))
	for _, version := range versions {
		mapped, err := toGraphEntity(version)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

// EntityHistory returns the canonical snapshots of every version of an entity.
func (r *Resolver) EntityHistory(ctx context.Context, id string) ([]*graph.EntitySnapshotView, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	versions, err := r.store.Versions(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity versions: %w", err)
	}

	snapshots := make([]*graph.EntitySnapshotView, 0, len(versions))
	for _, version := range versions {
		snapshot := domain.NewEntitySnapshot(version)
		view, err := snapshotToGraph(&snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare snapshot: %w", err)
		}
		snapshots = append(snapshots, view)
	}
	return snapshots, nil
}

// EntityDiff compares two versions of an entity and returns a structured diff response.
func (r *Resolver) EntityDiff(ctx context.Context, id string, baseVersion, targetVersion int) (*graph.EntityDiffResult, error) {
	entityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	versions, err := r.store.Versions(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity versions: %w", err)
	}

	var baseSnapshot, targetSnapshot *domain.EntitySnapshot
	for _, version := range versions {
		if version.Version == int64(baseVersion) {
			snapshot := domain.NewEntitySnapshot(version)
			baseSnapshot = &snapshot
		}
		if version.Version == int64(targetVersion) {
			snapshot := domain.NewEntitySnapshot(version)
			targetSnapshot = &snapshot
		}
	}

	result := &graph.EntityDiffResult{}

	baseView, err := snapshotToGraph(baseSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare base snapshot: %w", err)
	}
	result.Base = baseView

	targetView, err := snapshotToGraph(targetSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare target snapshot: %w", err)
	}
	result.Target = targetView

	if baseSnapshot != nil && targetSnapshot != nil {
		diff, err := domain.DiffEntitySnapshots(
			fmt.Sprintf("version-%d", baseSnapshot.Version),
			baseSnapshot,
			fmt.Sprintf("version-%d", targetSnapshot.Version),
			targetSnapshot,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to compute entity diff: %w", err)
		}
		result.UnifiedDiff = &diff
	}

	return result, nil
}
