// Package memory provides in-memory implementations of the repository
// interfaces. They back the unit tests and the zero-dependency dev mode; the
// pgsql repositories are the production path.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository"

	"github.com/google/uuid"
)

// Store holds every in-memory repository behind one lock.
type Store struct {
	mu sync.RWMutex

	organizations map[uuid.UUID]domain.Organization
	versions      map[uuid.UUID][]domain.Entity // entity id -> versions, append order
	edges         map[uuid.UUID]domain.OwnershipEdge
	workspaces    map[uuid.UUID]domain.Workspace
	scenarios     map[uuid.UUID]domain.Scenario
	deltas        map[uuid.UUID][]domain.ScenarioDelta // scenario id -> deltas, append order
	changes       map[uuid.UUID][]domain.ChangeRecord  // entity id -> records, append order
	filings       map[uuid.UUID]domain.JurisdictionFiling
	transactions  map[uuid.UUID]domain.IntercompanyTransaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		organizations: map[uuid.UUID]domain.Organization{},
		versions:      map[uuid.UUID][]domain.Entity{},
		edges:         map[uuid.UUID]domain.OwnershipEdge{},
		workspaces:    map[uuid.UUID]domain.Workspace{},
		scenarios:     map[uuid.UUID]domain.Scenario{},
		deltas:        map[uuid.UUID][]domain.ScenarioDelta{},
		changes:       map[uuid.UUID][]domain.ChangeRecord{},
		filings:       map[uuid.UUID]domain.JurisdictionFiling{},
		transactions:  map[uuid.UUID]domain.IntercompanyTransaction{},
	}
}

// Organizations returns the organization repository view of the store.
func (s *Store) Organizations() repository.OrganizationRepository { return (*orgRepo)(s) }

// EntityVersions returns the temporal entity repository view of the store.
func (s *Store) EntityVersions() repository.EntityVersionRepository { return (*entityRepo)(s) }

// OwnershipEdges returns the edge repository view of the store.
func (s *Store) OwnershipEdges() repository.OwnershipEdgeRepository { return (*edgeRepo)(s) }

// Workspaces returns the workspace repository view of the store.
func (s *Store) Workspaces() repository.WorkspaceRepository { return (*workspaceRepo)(s) }

// ChangeLog returns the change log repository view of the store.
func (s *Store) ChangeLog() repository.ChangeLogRepository { return (*changeLogRepo)(s) }

// Filings returns the filing repository view of the store.
func (s *Store) Filings() repository.FilingRepository { return (*filingRepo)(s) }

// Transactions returns the transaction repository view of the store.
func (s *Store) Transactions() repository.TransactionRepository { return (*transactionRepo)(s) }

type orgRepo Store

func (r *orgRepo) Create(_ context.Context, org domain.Organization) (domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.organizations {
		if existing.Name == org.Name {
			return domain.Organization{}, fmt.Errorf("organization %s: %w", org.Name, domain.ErrDuplicate)
		}
	}
	r.organizations[org.ID] = org
	return org, nil
}

func (r *orgRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	org, ok := r.organizations[id]
	if !ok {
		return domain.Organization{}, fmt.Errorf("organization %s: %w", id, domain.ErrNotFound)
	}
	return org, nil
}

func (r *orgRepo) GetByName(_ context.Context, name string) (domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, org := range r.organizations {
		if org.Name == name {
			return org, nil
		}
	}
	return domain.Organization{}, fmt.Errorf("organization %s: %w", name, domain.ErrNotFound)
}

func (r *orgRepo) List(_ context.Context) ([]domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orgs := make([]domain.Organization, 0, len(r.organizations))
	for _, org := range r.organizations {
		orgs = append(orgs, org)
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })
	return orgs, nil
}

func (r *orgRepo) Update(_ context.Context, org domain.Organization) (domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.organizations[org.ID]; !ok {
		return domain.Organization{}, fmt.Errorf("organization %s: %w", org.ID, domain.ErrNotFound)
	}
	r.organizations[org.ID] = org
	return org, nil
}

func (r *orgRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.organizations[id]; !ok {
		return fmt.Errorf("organization %s: %w", id, domain.ErrNotFound)
	}
	delete(r.organizations, id)
	return nil
}

type entityRepo Store

func (r *entityRepo) Append(_ context.Context, entity domain.Entity) (domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[entity.ID] = append(r.versions[entity.ID], entity)
	return entity, nil
}

// AppendWithChange writes the version and its ledger record under one lock,
// so a reader never sees one without the other.
func (r *entityRepo) AppendWithChange(_ context.Context, entity domain.Entity, record domain.ChangeRecord) (domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[entity.ID] = append(r.versions[entity.ID], entity)
	r.changes[record.EntityID] = append(r.changes[record.EntityID], record)
	return entity, nil
}

func (r *entityRepo) Latest(_ context.Context, id uuid.UUID) (domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	versions := r.versions[id]
	if len(versions) == 0 {
		return domain.Entity{}, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
	}
	return versions[len(versions)-1], nil
}

func (r *entityRepo) At(_ context.Context, id uuid.UUID, asOf time.Time) (domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	version, ok := selectVersion(r.versions[id], asOf)
	if !ok {
		return domain.Entity{}, fmt.Errorf("entity %s at %s: %w", id, asOf.Format("2006-01-02"), domain.ErrNotFound)
	}
	return version, nil
}

func (r *entityRepo) ListAt(_ context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entities []domain.Entity
	for _, versions := range r.versions {
		if len(versions) == 0 || versions[0].OrganizationID != organizationID {
			continue
		}
		if version, ok := selectVersion(versions, asOf); ok {
			entities = append(entities, version)
		}
	}
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Name != entities[j].Name {
			return entities[i].Name < entities[j].Name
		}
		return entities[i].Code < entities[j].Code
	})
	return entities, nil
}

func (r *entityRepo) Versions(_ context.Context, id uuid.UUID) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	versions := r.versions[id]
	if len(versions) == 0 {
		return nil, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
	}
	return append([]domain.Entity(nil), versions...), nil
}

func (r *entityRepo) NameCodeInUse(_ context.Context, organizationID uuid.UUID, name, code string, excludeID uuid.UUID, from time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, versions := range r.versions {
		if id == excludeID || len(versions) == 0 || versions[0].OrganizationID != organizationID {
			continue
		}
		for i, version := range versions {
			if version.Name != name || version.Code != code {
				continue
			}
			// The version holds the pair until a later version supersedes it
			// or until its termination date. Only windows that extend past
			// from conflict; an empty window (same-day supersession) never
			// does.
			if i+1 < len(versions) {
				superseded := versions[i+1].EffectiveFrom
				if !superseded.After(from) || !superseded.After(version.EffectiveFrom) {
					continue
				}
			}
			if version.TerminationDate != nil && !version.TerminationDate.After(from) {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

// selectVersion returns the latest version whose effective date is on or
// before asOf. Termination filtering is the caller's concern.
func selectVersion(versions []domain.Entity, asOf time.Time) (domain.Entity, bool) {
	for i := len(versions) - 1; i >= 0; i-- {
		if !versions[i].EffectiveFrom.After(asOf) {
			return versions[i], true
		}
	}
	return domain.Entity{}, false
}

type edgeRepo Store

func (r *edgeRepo) Create(_ context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.edges[edge.ID]; ok {
		return domain.OwnershipEdge{}, fmt.Errorf("edge %s: %w", edge.ID, domain.ErrDuplicate)
	}
	r.edges[edge.ID] = edge
	return edge, nil
}

func (r *edgeRepo) GetByID(_ context.Context, id uuid.UUID) (domain.OwnershipEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	edge, ok := r.edges[id]
	if !ok {
		return domain.OwnershipEdge{}, fmt.Errorf("edge %s: %w", id, domain.ErrNotFound)
	}
	return edge, nil
}

func (r *edgeRepo) Update(_ context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.edges[edge.ID]; !ok {
		return domain.OwnershipEdge{}, fmt.Errorf("edge %s: %w", edge.ID, domain.ErrNotFound)
	}
	r.edges[edge.ID] = edge
	return edge, nil
}

func (r *edgeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.edges[id]; !ok {
		return fmt.Errorf("edge %s: %w", id, domain.ErrNotFound)
	}
	delete(r.edges, id)
	return nil
}

func (r *edgeRepo) ListAt(_ context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var edges []domain.OwnershipEdge
	for _, edge := range r.edges {
		if edge.OrganizationID == organizationID && edge.VisibleAt(asOf) {
			edges = append(edges, edge)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID.String() < edges[j].ID.String() })
	return edges, nil
}

func (r *edgeRepo) ListByOwned(_ context.Context, ownedID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var edges []domain.OwnershipEdge
	for _, edge := range r.edges {
		if edge.OwnedID == ownedID && edge.VisibleAt(asOf) {
			edges = append(edges, edge)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID.String() < edges[j].ID.String() })
	return edges, nil
}

type workspaceRepo Store

func (r *workspaceRepo) CreateWorkspace(_ context.Context, workspace domain.Workspace) (domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[workspace.ID] = workspace
	return workspace, nil
}

func (r *workspaceRepo) GetWorkspace(_ context.Context, id uuid.UUID) (domain.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	workspace, ok := r.workspaces[id]
	if !ok {
		return domain.Workspace{}, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}
	return workspace, nil
}

func (r *workspaceRepo) ListWorkspaces(_ context.Context, organizationID uuid.UUID) ([]domain.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var workspaces []domain.Workspace
	for _, workspace := range r.workspaces {
		if workspace.OrganizationID == organizationID {
			workspaces = append(workspaces, workspace)
		}
	}
	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i].Name < workspaces[j].Name })
	return workspaces, nil
}

func (r *workspaceRepo) CreateScenario(_ context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workspaces[scenario.WorkspaceID]; !ok {
		return domain.Scenario{}, fmt.Errorf("workspace %s: %w", scenario.WorkspaceID, domain.ErrNotFound)
	}
	r.scenarios[scenario.ID] = scenario
	return scenario, nil
}

func (r *workspaceRepo) GetScenario(_ context.Context, id uuid.UUID) (domain.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scenario, ok := r.scenarios[id]
	if !ok {
		return domain.Scenario{}, fmt.Errorf("scenario %s: %w", id, domain.ErrNotFound)
	}
	return scenario, nil
}

func (r *workspaceRepo) ListScenarios(_ context.Context, workspaceID uuid.UUID) ([]domain.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var scenarios []domain.Scenario
	for _, scenario := range r.scenarios {
		if scenario.WorkspaceID == workspaceID {
			scenarios = append(scenarios, scenario)
		}
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Position < scenarios[j].Position })
	return scenarios, nil
}

func (r *workspaceRepo) AppendDelta(_ context.Context, delta domain.ScenarioDelta) (domain.ScenarioDelta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.scenarios[delta.ScenarioID]; !ok {
		return domain.ScenarioDelta{}, fmt.Errorf("scenario %s: %w", delta.ScenarioID, domain.ErrNotFound)
	}
	r.deltas[delta.ScenarioID] = append(r.deltas[delta.ScenarioID], delta)
	return delta, nil
}

func (r *workspaceRepo) ListDeltas(_ context.Context, scenarioID uuid.UUID) ([]domain.ScenarioDelta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ScenarioDelta(nil), r.deltas[scenarioID]...), nil
}

type changeLogRepo Store

func (r *changeLogRepo) Append(_ context.Context, record domain.ChangeRecord) (domain.ChangeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes[record.EntityID] = append(r.changes[record.EntityID], record)
	return record, nil
}

func (r *changeLogRepo) List(_ context.Context, entityID uuid.UUID, offset, limit int) ([]domain.ChangeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := append([]domain.ChangeRecord(nil), r.changes[entityID]...)
	sort.SliceStable(records, func(i, j int) bool { return records[i].RecordedAt.Before(records[j].RecordedAt) })
	if offset >= len(records) {
		return nil, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

type filingRepo Store

func (r *filingRepo) Upsert(_ context.Context, filing domain.JurisdictionFiling) (domain.JurisdictionFiling, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// One filing per (entity, jurisdiction); replace in place.
	for id, existing := range r.filings {
		if existing.EntityID == filing.EntityID && existing.Jurisdiction == filing.Jurisdiction {
			filing.ID = existing.ID
			r.filings[id] = filing
			return filing, nil
		}
	}
	r.filings[filing.ID] = filing
	return filing, nil
}

func (r *filingRepo) ListByEntity(_ context.Context, entityID uuid.UUID) ([]domain.JurisdictionFiling, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filings []domain.JurisdictionFiling
	for _, filing := range r.filings {
		if filing.EntityID == entityID {
			filings = append(filings, filing)
		}
	}
	sort.Slice(filings, func(i, j int) bool { return filings[i].Jurisdiction < filings[j].Jurisdiction })
	return filings, nil
}

func (r *filingRepo) ListByGroup(_ context.Context, organizationID uuid.UUID, filingGroup string) ([]domain.JurisdictionFiling, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filings []domain.JurisdictionFiling
	for _, filing := range r.filings {
		if filing.OrganizationID == organizationID && filing.FilingGroup == filingGroup {
			filings = append(filings, filing)
		}
	}
	sort.Slice(filings, func(i, j int) bool { return filings[i].HierarchyLevel < filings[j].HierarchyLevel })
	return filings, nil
}

type transactionRepo Store

func (r *transactionRepo) Create(_ context.Context, txn domain.IntercompanyTransaction) (domain.IntercompanyTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[txn.ID] = txn
	return txn, nil
}

func (r *transactionRepo) ListByOrganization(_ context.Context, organizationID uuid.UUID) ([]domain.IntercompanyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var txns []domain.IntercompanyTransaction
	for _, txn := range r.transactions {
		if txn.OrganizationID == organizationID {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CreatedAt.Before(txns[j].CreatedAt) })
	return txns, nil
}

func (r *transactionRepo) ListByEntity(_ context.Context, entityID uuid.UUID) ([]domain.IntercompanyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var txns []domain.IntercompanyTransaction
	for _, txn := range r.transactions {
		if txn.SourceID == entityID || txn.TargetID == entityID {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CreatedAt.Before(txns[j].CreatedAt) })
	return txns, nil
}
