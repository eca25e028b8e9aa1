package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRepository struct {
	pool *pgxpool.Pool
}

func scanTransaction(row pgx.Row) (domain.IntercompanyTransaction, error) {
	var txn domain.IntercompanyTransaction
	var amounts []byte
	err := row.Scan(
		&txn.ID, &txn.OrganizationID, &txn.SourceID, &txn.TargetID,
		&txn.TransactionType, &txn.FilingPeriod, &amounts, &txn.CreatedAt,
	)
	if err != nil {
		return domain.IntercompanyTransaction{}, err
	}
	if len(amounts) > 0 {
		if err := json.Unmarshal(amounts, &txn.Amounts); err != nil {
			return domain.IntercompanyTransaction{}, fmt.Errorf("failed to decode transaction amounts: %w", err)
		}
	}
	return txn, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn domain.IntercompanyTransaction) (domain.IntercompanyTransaction, error) {
	amounts, err := json.Marshal(txn.Amounts)
	if err != nil {
		return domain.IntercompanyTransaction{}, fmt.Errorf("failed to encode transaction amounts: %w", err)
	}

	query := `
		INSERT INTO intercompany_transactions
			(id, organization_id, source_id, target_id, transaction_type, filing_period, amounts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		txn.ID, txn.OrganizationID, txn.SourceID, txn.TargetID,
		txn.TransactionType, txn.FilingPeriod, amounts, txn.CreatedAt,
	)
	if err != nil {
		return domain.IntercompanyTransaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

func (r *transactionRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]domain.IntercompanyTransaction, error) {
	query := `
		SELECT id, organization_id, source_id, target_id, transaction_type, filing_period, amounts, created_at
		FROM intercompany_transactions
		WHERE organization_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IntercompanyTransaction, error) {
		return scanTransaction(row)
	})
}

func (r *transactionRepository) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.IntercompanyTransaction, error) {
	query := `
		SELECT id, organization_id, source_id, target_id, transaction_type, filing_period, amounts, created_at
		FROM intercompany_transactions
		WHERE source_id = $1 OR target_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by entity: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IntercompanyTransaction, error) {
		return scanTransaction(row)
	})
}
