package repository

import (
	"context"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
)

// OrganizationRepository defines the interface for organization operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Organization, error)
	GetByName(ctx context.Context, name string) (domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org domain.Organization) (domain.Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntityVersionRepository stores the append-only temporal history of
// entities. Versions are never overwritten; as-of selection picks the latest
// version whose effective date is on or before the query date.
type EntityVersionRepository interface {
	Append(ctx context.Context, entity domain.Entity) (domain.Entity, error)
	// AppendWithChange persists a version together with its activity ledger
	// record. Either both land or neither does.
	AppendWithChange(ctx context.Context, entity domain.Entity, record domain.ChangeRecord) (domain.Entity, error)
	Latest(ctx context.Context, id uuid.UUID) (domain.Entity, error)
	At(ctx context.Context, id uuid.UUID, asOf time.Time) (domain.Entity, error)
	// ListAt returns, per entity identity in the organization, the version
	// selected at asOf. Ordering is by (name, code) for stable output but is
	// not semantically meaningful; callers must not depend on it.
	ListAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.Entity, error)
	Versions(ctx context.Context, id uuid.UUID) ([]domain.Entity, error)
	// NameCodeInUse reports whether another entity identity in the
	// organization holds the (name, code) pair in any validity window that
	// ends after from. A version's window closes when a later version
	// supersedes it or at its termination date, whichever comes first, so a
	// version appended effective at from conflicts with every identity that
	// carries the pair at from or at any later date.
	NameCodeInUse(ctx context.Context, organizationID uuid.UUID, name, code string, excludeID uuid.UUID, from time.Time) (bool, error)
}

// OwnershipEdgeRepository stores ownership edges of the main universe.
type OwnershipEdgeRepository interface {
	Create(ctx context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.OwnershipEdge, error)
	Update(ctx context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error)
	ListByOwned(ctx context.Context, ownedID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error)
}

// WorkspaceRepository stores workspaces, scenarios and scenario overlays.
type WorkspaceRepository interface {
	CreateWorkspace(ctx context.Context, workspace domain.Workspace) (domain.Workspace, error)
	GetWorkspace(ctx context.Context, id uuid.UUID) (domain.Workspace, error)
	ListWorkspaces(ctx context.Context, organizationID uuid.UUID) ([]domain.Workspace, error)
	CreateScenario(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error)
	GetScenario(ctx context.Context, id uuid.UUID) (domain.Scenario, error)
	ListScenarios(ctx context.Context, workspaceID uuid.UUID) ([]domain.Scenario, error)
	AppendDelta(ctx context.Context, delta domain.ScenarioDelta) (domain.ScenarioDelta, error)
	ListDeltas(ctx context.Context, scenarioID uuid.UUID) ([]domain.ScenarioDelta, error)
}

// ChangeLogRepository stores the append-only activity ledger.
type ChangeLogRepository interface {
	Append(ctx context.Context, record domain.ChangeRecord) (domain.ChangeRecord, error)
	// List returns records for one entity in chronological order. The
	// offset/limit pair makes the sequence restartable; limit <= 0 means no
	// limit.
	List(ctx context.Context, entityID uuid.UUID, offset, limit int) ([]domain.ChangeRecord, error)
}

// FilingRepository stores jurisdiction filing declarations.
type FilingRepository interface {
	Upsert(ctx context.Context, filing domain.JurisdictionFiling) (domain.JurisdictionFiling, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.JurisdictionFiling, error)
	ListByGroup(ctx context.Context, organizationID uuid.UUID, filingGroup string) ([]domain.JurisdictionFiling, error)
}

// TransactionRepository stores intercompany transaction annotations.
type TransactionRepository interface {
	Create(ctx context.Context, txn domain.IntercompanyTransaction) (domain.IntercompanyTransaction, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]domain.IntercompanyTransaction, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.IntercompanyTransaction, error)
}
