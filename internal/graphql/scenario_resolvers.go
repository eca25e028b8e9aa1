package graphql

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/graph"

	"github.com/google/uuid"
)

// Workspaces lists an organization's scenario workspaces.
func (r *Resolver) Workspaces(ctx context.Context, organizationID string) ([]*graph.Workspace, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}

	workspaces, err := r.scenarios.Workspaces(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	result := make([]*graph.Workspace, len(workspaces))
	for i, workspace := range workspaces {
		result[i] = toGraphWorkspace(workspace)
	}
	return result, nil
}

// Scenarios lists a workspace's scenarios in position order.
func (r *Resolver) Scenarios(ctx context.Context, workspaceID string) ([]*graph.Scenario, error) {
	wsID, err := uuid.Parse(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace ID: %w", err)
	}

	scenarios, err := r.scenarios.Scenarios(ctx, wsID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	result := make([]*graph.Scenario, len(scenarios))
	for i, scenario := range scenarios {
		result[i] = toGraphScenario(scenario)
	}
	return result, nil
}

// ScenarioDeltas lists a scenario's overlay changes in applied order.
func (r *Resolver) ScenarioDeltas(ctx context.Context, scenarioID string) ([]*graph.ScenarioDelta, error) {
	scID, err := uuid.Parse(scenarioID)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario ID: %w", err)
	}

	deltas, err := r.scenarios.Deltas(ctx, scID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario deltas: %w", err)
	}

	result := make([]*graph.ScenarioDelta, len(deltas))
	for i, delta := range deltas {
		result[i] = toGraphDelta(delta)
	}
	return result, nil
}
