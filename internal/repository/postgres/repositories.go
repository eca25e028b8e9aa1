// Package postgres implements the repository interfaces over pgx.
package postgres

import (
	"github.com/pwallin/corpgraph/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all pgx-backed repositories over one pool.
type Repositories struct {
	pool *pgxpool.Pool
}

// New creates the repository bundle.
func New(pool *pgxpool.Pool) *Repositories {
	return &Repositories{pool: pool}
}

func (r *Repositories) Organizations() repository.OrganizationRepository {
	return &organizationRepository{pool: r.pool}
}

func (r *Repositories) EntityVersions() repository.EntityVersionRepository {
	return &entityVersionRepository{pool: r.pool}
}

func (r *Repositories) OwnershipEdges() repository.OwnershipEdgeRepository {
	return &ownershipEdgeRepository{pool: r.pool}
}

func (r *Repositories) Workspaces() repository.WorkspaceRepository {
	return &workspaceRepository{pool: r.pool}
}

func (r *Repositories) ChangeLog() repository.ChangeLogRepository {
	return &changeLogRepository{pool: r.pool}
}

func (r *Repositories) Filings() repository.FilingRepository {
	return &filingRepository{pool: r.pool}
}

func (r *Repositories) Transactions() repository.TransactionRepository {
	return &transactionRepository{pool: r.pool}
}
