package postgres

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type filingRepository struct {
	pool *pgxpool.Pool
}

const filingColumns = `
	id, organization_id, entity_id, jurisdiction, filing_group,
	hierarchy_level, group_leader, created_at, updated_at
`

func scanFiling(row pgx.Row) (domain.JurisdictionFiling, error) {
	var filing domain.JurisdictionFiling
	err := row.Scan(
		&filing.ID, &filing.OrganizationID, &filing.EntityID, &filing.Jurisdiction,
		&filing.FilingGroup, &filing.HierarchyLevel, &filing.GroupLeader,
		&filing.CreatedAt, &filing.UpdatedAt,
	)
	return filing, err
}

// Upsert inserts or replaces the filing declaration for (entity,
// jurisdiction).
func (r *filingRepository) Upsert(ctx context.Context, filing domain.JurisdictionFiling) (domain.JurisdictionFiling, error) {
	query := `
		INSERT INTO jurisdiction_filings (` + filingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (entity_id, jurisdiction) DO UPDATE SET
			filing_group = EXCLUDED.filing_group,
			hierarchy_level = EXCLUDED.hierarchy_level,
			group_leader = EXCLUDED.group_leader,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		filing.ID, filing.OrganizationID, filing.EntityID, filing.Jurisdiction,
		filing.FilingGroup, filing.HierarchyLevel, filing.GroupLeader,
		filing.CreatedAt, filing.UpdatedAt,
	)
	if err != nil {
		return domain.JurisdictionFiling{}, fmt.Errorf("failed to upsert filing: %w", err)
	}
	return filing, nil
}

func (r *filingRepository) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.JurisdictionFiling, error) {
	query := `
		SELECT ` + filingColumns + `
		FROM jurisdiction_filings
		WHERE entity_id = $1
		ORDER BY jurisdiction
	`
	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings by entity: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JurisdictionFiling, error) {
		return scanFiling(row)
	})
}

func (r *filingRepository) ListByGroup(ctx context.Context, organizationID uuid.UUID, filingGroup string) ([]domain.JurisdictionFiling, error) {
	query := `
		SELECT ` + filingColumns + `
		FROM jurisdiction_filings
		WHERE organization_id = $1 AND filing_group = $2
		ORDER BY hierarchy_level, jurisdiction
	`
	rows, err := r.pool.Query(ctx, query, organizationID, filingGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings by group: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JurisdictionFiling, error) {
		return scanFiling(row)
	})
}
