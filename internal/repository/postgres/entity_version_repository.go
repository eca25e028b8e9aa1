package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type entityVersionRepository struct {
	pool *pgxpool.Pool
}

const entityVersionColumns = `
	id, organization_id, name, code, entity_type, jurisdiction,
	local_currency, functional_currency, reporting_currency,
	attributes, app_fields, effective_from, termination_date,
	version, created_at, updated_at
`

// selectAtSQL picks, per entity identity, the version in force at a date.
// DISTINCT ON with the version tiebreak makes same-day updates resolve to the
// latest version.
const selectAtSQL = `
	SELECT DISTINCT ON (id) ` + entityVersionColumns + `
	FROM entity_versions
	WHERE organization_id = $1 AND effective_from <= $2
	ORDER BY id, effective_from DESC, version DESC
`

func scanEntity(row pgx.Row) (domain.Entity, error) {
	var (
		entity    domain.Entity
		attrs     []byte
		appFields []byte
	)
	err := row.Scan(
		&entity.ID, &entity.OrganizationID, &entity.Name, &entity.Code,
		&entity.EntityType, &entity.Jurisdiction,
		&entity.LocalCurrency, &entity.FunctionalCurrency, &entity.ReportingCurrency,
		&attrs, &appFields, &entity.EffectiveFrom, &entity.TerminationDate,
		&entity.Version, &entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return domain.Entity{}, err
	}

	entity.Attributes, err = domain.AttributesFromJSON(attrs)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to decode attributes: %w", err)
	}
	entity.AppFields, err = domain.AppFieldsFromJSON(appFields)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to decode app fields: %w", err)
	}
	return entity, nil
}

func entityJSONColumns(entity *domain.Entity) (json.RawMessage, json.RawMessage, error) {
	attrs, err := entity.AttributesJSON()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode attributes: %w", err)
	}
	appFields, err := entity.AppFieldsJSON()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode app fields: %w", err)
	}
	return attrs, appFields, nil
}

func insertEntityVersion(ctx context.Context, db execer, entity domain.Entity) error {
	attrs, appFields, err := entityJSONColumns(&entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO entity_versions (` + entityVersionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = db.Exec(ctx, query,
		entity.ID, entity.OrganizationID, entity.Name, entity.Code,
		entity.EntityType, entity.Jurisdiction,
		entity.LocalCurrency, entity.FunctionalCurrency, entity.ReportingCurrency,
		attrs, appFields, entity.EffectiveFrom, entity.TerminationDate,
		entity.Version, entity.CreatedAt, entity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append entity version: %w", err)
	}
	return nil
}

func (r *entityVersionRepository) Append(ctx context.Context, entity domain.Entity) (domain.Entity, error) {
	if err := insertEntityVersion(ctx, r.pool, entity); err != nil {
		return domain.Entity{}, err
	}
	return entity, nil
}

// AppendWithChange writes the version and its ledger record in one
// transaction. A mutation that cannot be logged does not land at all.
func (r *entityVersionRepository) AppendWithChange(ctx context.Context, entity domain.Entity, record domain.ChangeRecord) (domain.Entity, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertEntityVersion(ctx, tx, entity); err != nil {
		return domain.Entity{}, err
	}
	if err := insertChangeRecord(ctx, tx, record); err != nil {
		return domain.Entity{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Entity{}, fmt.Errorf("failed to commit entity version: %w", err)
	}
	return entity, nil
}

func (r *entityVersionRepository) Latest(ctx context.Context, id uuid.UUID) (domain.Entity, error) {
	query := `
		SELECT ` + entityVersionColumns + `
		FROM entity_versions
		WHERE id = $1
		ORDER BY version DESC
		LIMIT 1
	`
	entity, err := scanEntity(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entity{}, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
		}
		return domain.Entity{}, fmt.Errorf("failed to get latest entity version: %w", err)
	}
	return entity, nil
}

func (r *entityVersionRepository) At(ctx context.Context, id uuid.UUID, asOf time.Time) (domain.Entity, error) {
	query := `
		SELECT ` + entityVersionColumns + `
		FROM entity_versions
		WHERE id = $1 AND effective_from <= $2
		ORDER BY effective_from DESC, version DESC
		LIMIT 1
	`
	entity, err := scanEntity(r.pool.QueryRow(ctx, query, id, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entity{}, fmt.Errorf("entity %s at %s: %w", id, asOf.Format("2006-01-02"), domain.ErrNotFound)
		}
		return domain.Entity{}, fmt.Errorf("failed to get entity version: %w", err)
	}
	return entity, nil
}

func (r *entityVersionRepository) ListAt(ctx context.Context, organizationID uuid.UUID, asOf time.Time) ([]domain.Entity, error) {
	query := `
		SELECT * FROM (` + selectAtSQL + `) v
		ORDER BY v.name, v.code
	`
	rows, err := r.pool.Query(ctx, query, organizationID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity versions: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entity, error) {
		return scanEntity(row)
	})
}

func (r *entityVersionRepository) Versions(ctx context.Context, id uuid.UUID) ([]domain.Entity, error) {
	query := `
		SELECT ` + entityVersionColumns + `
		FROM entity_versions
		WHERE id = $1
		ORDER BY version
	`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity history: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entity, error) {
		return scanEntity(row)
	})
}

// NameCodeInUse checks validity windows rather than a single instant. Each
// version holds its (name, code) pair from its effective date until the next
// version's effective date or its termination, whichever comes first; any
// window of another identity that ends after $5 conflicts.
func (r *entityVersionRepository) NameCodeInUse(ctx context.Context, organizationID uuid.UUID, name, code string, excludeID uuid.UUID, from time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM (
				SELECT name, code, effective_from, termination_date,
				       LEAD(effective_from) OVER (PARTITION BY id ORDER BY effective_from, version) AS superseded_at
				FROM entity_versions
				WHERE organization_id = $1 AND id <> $2
			) v
			WHERE v.name = $3 AND v.code = $4
			  AND (v.superseded_at IS NULL OR (v.superseded_at > $5 AND v.superseded_at > v.effective_from))
			  AND (v.termination_date IS NULL OR v.termination_date > $5)
		)
	`
	var inUse bool
	if err := r.pool.QueryRow(ctx, query, organizationID, excludeID, name, code, from).Scan(&inUse); err != nil {
		return false, fmt.Errorf("failed to check name/code uniqueness: %w", err)
	}
	return inUse, nil
}
