package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ownershipEdgeRepository struct {
	pool *pgxpool.Pool
}

const ownershipEdgeColumns = `
	id, organization_id, owner_id, owned_id, percent, share_class,
	ownership_type, entry_date, is_primary, effective_from,
	termination_date, created_at, updated_at
`

func scanEdge(row pgx.Row) (domain.OwnershipEdge, error) {
	var edge domain.OwnershipEdge
	err := row.Scan(
		&edge.ID, &edge.OrganizationID, &edge.OwnerID, &edge.OwnedID,
		&edge.Percent, &edge.ShareClass, &edge.OwnershipType, &edge.EntryDate,
		&edge.Primary, &edge.EffectiveFrom, &edge.TerminationDate,
		&edge.CreatedAt, &edge.UpdatedAt,
	)
	return edge, err
}

func (r *ownershipEdgeRepository) Create(ctx context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error) {
	query := `
		INSERT INTO ownership_edges (` + ownershipEdgeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		edge.ID, edge.OrganizationID, edge.OwnerID, edge.OwnedID,
		edge.Percent, edge.ShareClass, edge.OwnershipType, edge.EntryDate,
		edge.Primary, edge.EffectiveFrom, edge.TerminationDate,
		edge.CreatedAt, edge.UpdatedAt,
	)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("failed to create ownership edge: %w", err)
	}
	return edge, nil
}

func (r *ownershipEdgeRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.OwnershipEdge, error) {
	query := `
		SELECT ` + ownershipEdgeColumns + `
		FROM ownership_edges
		WHERE id = $1
	`
	edge, err := scanEdge(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.OwnershipEdge{}, fmt.Errorf("ownership edge %s: %w", id, domain.ErrNotFound)
		}
		return domain.OwnershipEdge{}, fmt.Errorf("failed to get ownership edge: %w", err)
	}
	return edge, nil
}

func (r *ownershipEdgeRepository) Update(ctx context.Context, edge domain.OwnershipEdge) (domain.OwnershipEdge, error) {
	query := `
		UPDATE ownership_edges
		SET percent = $2, share_class = $3, ownership_type = $4,
		    is_primary = $5, effective_from = $6, termination_date = $7,
		    updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		edge.ID, edge.Percent, edge.ShareClass, edge.OwnershipType,
		edge.Primary, edge.EffectiveFrom, edge.TerminationDate, edge.UpdatedAt,
	)
	if err != nil {
		return domain.OwnershipEdge{}, fmt.Errorf("failed to update ownership edge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.OwnershipEdge{}, fmt.Errorf("ownership edge %s: %w", edge.ID, domain.ErrNotFound)
	}
	return edge, nil
}

func (r *ownershipEdgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ownership_edges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ownership edge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ownership edge %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *ownershipEdgeRepository) ListAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error) {
	query := `
		SELECT ` + ownershipEdgeColumns + `
		FROM ownership_edges
		WHERE organization_id = $1
		  AND effective_from <= $2
		  AND (termination_date IS NULL OR termination_date > $2)
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, organizationID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list ownership edges: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OwnershipEdge, error) {
		return scanEdge(row)
	})
}

func (r *ownershipEdgeRepository) ListByOwned(ctx context.Context, ownedID uuid.UUID, asOf time.Time) ([]domain.OwnershipEdge, error) {
	query := `
		SELECT ` + ownershipEdgeColumns + `
		FROM ownership_edges
		WHERE owned_id = $1
		  AND effective_from <= $2
		  AND (termination_date IS NULL OR termination_date > $2)
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, ownedID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list ownership edges by owned entity: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OwnershipEdge, error) {
		return scanEdge(row)
	})
}
