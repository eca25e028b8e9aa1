package postgres

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type changeLogRepository struct {
	pool *pgxpool.Pool
}

// execer is satisfied by both pgxpool.Pool and pgx.Tx, so change records can
// be inserted standalone or inside an entity version transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertChangeRecord(ctx context.Context, db execer, record domain.ChangeRecord) error {
	changes, err := record.ChangesJSON()
	if err != nil {
		return fmt.Errorf("failed to encode field changes: %w", err)
	}

	query := `
		INSERT INTO change_records (id, entity_id, operation, actor, recorded_at, changes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = db.Exec(ctx, query,
		record.ID, record.EntityID, record.Operation, record.Actor, record.RecordedAt, changes,
	)
	if err != nil {
		return fmt.Errorf("failed to append change record: %w", err)
	}
	return nil
}

// Append inserts a ledger record. There is no update or delete path; the
// table is append-only by construction.
func (r *changeLogRepository) Append(ctx context.Context, record domain.ChangeRecord) (domain.ChangeRecord, error) {
	if err := insertChangeRecord(ctx, r.pool, record); err != nil {
		return domain.ChangeRecord{}, err
	}
	return record, nil
}

func (r *changeLogRepository) List(ctx context.Context, entityID uuid.UUID, offset, limit int) ([]domain.ChangeRecord, error) {
	query := `
		SELECT id, entity_id, operation, actor, recorded_at, changes
		FROM change_records
		WHERE entity_id = $1
		ORDER BY recorded_at, seq
		OFFSET $2
	`
	args := []any{entityID, offset}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list change records: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChangeRecord, error) {
		var record domain.ChangeRecord
		var changes []byte
		if err := row.Scan(&record.ID, &record.EntityID, &record.Operation, &record.Actor, &record.RecordedAt, &changes); err != nil {
			return domain.ChangeRecord{}, err
		}
		decoded, err := domain.FieldChangesFromJSON(changes)
		if err != nil {
			return domain.ChangeRecord{}, fmt.Errorf("failed to decode field changes: %w", err)
		}
		record.Changes = decoded
		return record, nil
	})
}
