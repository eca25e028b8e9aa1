package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workspaceRepository struct {
	pool *pgxpool.Pool
}

func (r *workspaceRepository) CreateWorkspace(ctx context.Context, workspace domain.Workspace) (domain.Workspace, error) {
	query := `
		INSERT INTO workspaces (id, organization_id, name, members, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		workspace.ID, workspace.OrganizationID, workspace.Name, workspace.Members,
		workspace.CreatedAt, workspace.UpdatedAt,
	)
	if err != nil {
		return domain.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}
	return workspace, nil
}

func (r *workspaceRepository) GetWorkspace(ctx context.Context, id uuid.UUID) (domain.Workspace, error) {
	query := `
		SELECT id, organization_id, name, members, created_at, updated_at
		FROM workspaces
		WHERE id = $1
	`
	var workspace domain.Workspace
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&workspace.ID, &workspace.OrganizationID, &workspace.Name, &workspace.Members,
		&workspace.CreatedAt, &workspace.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Workspace{}, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
		}
		return domain.Workspace{}, fmt.Errorf("failed to get workspace: %w", err)
	}
	return workspace, nil
}

func (r *workspaceRepository) ListWorkspaces(ctx context.Context, organizationID uuid.UUID) ([]domain.Workspace, error) {
	query := `
		SELECT id, organization_id, name, members, created_at, updated_at
		FROM workspaces
		WHERE organization_id = $1
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Workspace, error) {
		var workspace domain.Workspace
		err := row.Scan(
			&workspace.ID, &workspace.OrganizationID, &workspace.Name, &workspace.Members,
			&workspace.CreatedAt, &workspace.UpdatedAt,
		)
		return workspace, err
	})
}

func (r *workspaceRepository) CreateScenario(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	query := `
		INSERT INTO scenarios (id, workspace_id, name, base_scenario_id, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		scenario.ID, scenario.WorkspaceID, scenario.Name, scenario.BaseScenarioID,
		scenario.Position, scenario.CreatedAt, scenario.UpdatedAt,
	)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to create scenario: %w", err)
	}
	return scenario, nil
}

func (r *workspaceRepository) GetScenario(ctx context.Context, id uuid.UUID) (domain.Scenario, error) {
	query := `
		SELECT id, workspace_id, name, base_scenario_id, position, created_at, updated_at
		FROM scenarios
		WHERE id = $1
	`
	var scenario domain.Scenario
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&scenario.ID, &scenario.WorkspaceID, &scenario.Name, &scenario.BaseScenarioID,
		&scenario.Position, &scenario.CreatedAt, &scenario.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Scenario{}, fmt.Errorf("scenario %s: %w", id, domain.ErrNotFound)
		}
		return domain.Scenario{}, fmt.Errorf("failed to get scenario: %w", err)
	}
	return scenario, nil
}

func (r *workspaceRepository) ListScenarios(ctx context.Context, workspaceID uuid.UUID) ([]domain.Scenario, error) {
	query := `
		SELECT id, workspace_id, name, base_scenario_id, position, created_at, updated_at
		FROM scenarios
		WHERE workspace_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Scenario, error) {
		var scenario domain.Scenario
		err := row.Scan(
			&scenario.ID, &scenario.WorkspaceID, &scenario.Name, &scenario.BaseScenarioID,
			&scenario.Position, &scenario.CreatedAt, &scenario.UpdatedAt,
		)
		return scenario, err
	})
}

func (r *workspaceRepository) AppendDelta(ctx context.Context, delta domain.ScenarioDelta) (domain.ScenarioDelta, error) {
	var payload json.RawMessage
	var err error
	switch {
	case delta.Entity != nil:
		payload, err = json.Marshal(delta.Entity)
	case delta.Edge != nil:
		payload, err = json.Marshal(delta.Edge)
	}
	if err != nil {
		return domain.ScenarioDelta{}, fmt.Errorf("failed to encode delta payload: %w", err)
	}

	query := `
		INSERT INTO scenario_deltas (id, scenario_id, kind, op, target_id, payload, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		delta.ID, delta.ScenarioID, delta.Kind, delta.Op, delta.TargetID, payload, delta.AppliedAt,
	)
	if err != nil {
		return domain.ScenarioDelta{}, fmt.Errorf("failed to append scenario delta: %w", err)
	}
	return delta, nil
}

func (r *workspaceRepository) ListDeltas(ctx context.Context, scenarioID uuid.UUID) ([]domain.ScenarioDelta, error) {
	query := `
		SELECT id, scenario_id, kind, op, target_id, payload, applied_at
		FROM scenario_deltas
		WHERE scenario_id = $1
		ORDER BY applied_at, id
	`
	rows, err := r.pool.Query(ctx, query, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario deltas: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScenarioDelta, error) {
		var delta domain.ScenarioDelta
		var payload []byte
		if err := row.Scan(&delta.ID, &delta.ScenarioID, &delta.Kind, &delta.Op, &delta.TargetID, &payload, &delta.AppliedAt); err != nil {
			return domain.ScenarioDelta{}, err
		}
		if len(payload) > 0 {
			switch delta.Kind {
			case domain.DeltaKindEntity:
				var entity domain.Entity
				if err := json.Unmarshal(payload, &entity); err != nil {
					return domain.ScenarioDelta{}, fmt.Errorf("failed to decode entity delta payload: %w", err)
				}
				delta.Entity = &entity
			case domain.DeltaKindEdge:
				var edge domain.OwnershipEdge
				if err := json.Unmarshal(payload, &edge); err != nil {
					return domain.ScenarioDelta{}, fmt.Errorf("failed to decode edge delta payload: %w", err)
				}
				delta.Edge = &edge
			}
		}
		return delta, nil
	})
}
