package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/domain"

	"github.com/google/uuid"
)

// Dates arrive either as plain dates or full RFC3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", raw)
	}
	return t, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC3339)", raw)
	}
	return t, nil
}

func optionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid ID: %w", err)
	}
	return &id, nil
}

func strPtr(s string) *string {
	return &s
}

func combineErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func toGraphOrganization(org domain.Organization) *graph.Organization {
	return &graph.Organization{
		ID:          org.ID.String(),
		Name:        org.Name,
		Description: &org.Description,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
	}
}

func toGraphEntity(entity domain.Entity) (*graph.Entity, error) {
	attrs, err := entity.AttributesJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attributes: %w", err)
	}
	appFields, err := entity.AppFieldsJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal app fields: %w", err)
	}

	out := &graph.Entity{
		ID:                 entity.ID.String(),
		OrganizationID:     entity.OrganizationID.String(),
		Name:               entity.Name,
		Code:               entity.Code,
		EntityType:         string(entity.EntityType),
		Jurisdiction:       entity.Jurisdiction,
		LocalCurrency:      entity.LocalCurrency,
		FunctionalCurrency: entity.FunctionalCurrency,
		ReportingCurrency:  entity.ReportingCurrency,
		Attributes:         string(attrs),
		AppFields:          string(appFields),
		EffectiveFrom:      entity.EffectiveFrom.Format("2006-01-02"),
		Version:            int(entity.Version),
		CreatedAt:          entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          entity.UpdatedAt.Format(time.RFC3339),
	}
	if entity.TerminationDate != nil {
		out.TerminationDate = strPtr(entity.TerminationDate.Format("2006-01-02"))
	}
	return out, nil
}

func toGraphEdge(edge domain.OwnershipEdge) *graph.OwnershipEdge {
	out := &graph.OwnershipEdge{
		ID:             edge.ID.String(),
		OrganizationID: edge.OrganizationID.String(),
		OwnerID:        edge.OwnerID.String(),
		OwnedID:        edge.OwnedID.String(),
		Percent:        edge.Percent.StringFixed(4),
		ShareClass:     edge.ShareClass,
		OwnershipType:  edge.OwnershipType,
		EntryDate:      edge.EntryDate.Format("2006-01-02"),
		Primary:        edge.Primary,
		EffectiveFrom:  edge.EffectiveFrom.Format("2006-01-02"),
	}
	if edge.TerminationDate != nil {
		out.TerminationDate = strPtr(edge.TerminationDate.Format("2006-01-02"))
	}
	return out
}

func toGraphWorkspace(workspace domain.Workspace) *graph.Workspace {
	return &graph.Workspace{
		ID:             workspace.ID.String(),
		OrganizationID: workspace.OrganizationID.String(),
		Name:           workspace.Name,
		Members:        workspace.Members,
		CreatedAt:      workspace.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      workspace.UpdatedAt.Format(time.RFC3339),
	}
}

func toGraphScenario(scenario domain.Scenario) *graph.Scenario {
	out := &graph.Scenario{
		ID:          scenario.ID.String(),
		WorkspaceID: scenario.WorkspaceID.String(),
		Name:        scenario.Name,
		Position:    scenario.Position,
		CreatedAt:   scenario.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   scenario.UpdatedAt.Format(time.RFC3339),
	}
	if scenario.BaseScenarioID != nil {
		out.BaseScenarioID = strPtr(scenario.BaseScenarioID.String())
	}
	return out
}

func toGraphDelta(delta domain.ScenarioDelta) *graph.ScenarioDelta {
	return &graph.ScenarioDelta{
		ID:         delta.ID.String(),
		ScenarioID: delta.ScenarioID.String(),
		Kind:       string(delta.Kind),
		Op:         string(delta.Op),
		TargetID:   delta.TargetID.String(),
		AppliedAt:  delta.AppliedAt.Format(time.RFC3339),
	}
}

func toGraphChangeRecord(record domain.ChangeRecord) *graph.ChangeRecord {
	changes := make([]*graph.FieldChange, len(record.Changes))
	for i, change := range record.Changes {
		changes[i] = &graph.FieldChange{Field: change.Field, Old: change.Old, New: change.New}
	}
	return &graph.ChangeRecord{
		ID:         record.ID.String(),
		EntityID:   record.EntityID.String(),
		Operation:  string(record.Operation),
		Actor:      record.Actor,
		RecordedAt: record.RecordedAt.Format(time.RFC3339),
		Changes:    changes,
	}
}

func toGraphFiling(filing domain.JurisdictionFiling) *graph.JurisdictionFiling {
	return &graph.JurisdictionFiling{
		ID:             filing.ID.String(),
		OrganizationID: filing.OrganizationID.String(),
		EntityID:       filing.EntityID.String(),
		Jurisdiction:   filing.Jurisdiction,
		FilingGroup:    filing.FilingGroup,
		HierarchyLevel: filing.HierarchyLevel,
		GroupLeader:    filing.GroupLeader,
	}
}

func toGraphTransaction(txn domain.IntercompanyTransaction) *graph.IntercompanyTransaction {
	amounts := make([]*graph.TransactionAmount, len(txn.Amounts))
	for i, amount := range txn.Amounts {
		amounts[i] = &graph.TransactionAmount{
			Amount:     amount.Amount.String(),
			AmountType: amount.AmountType,
			Currency:   amount.Currency,
		}
	}
	return &graph.IntercompanyTransaction{
		ID:              txn.ID.String(),
		OrganizationID:  txn.OrganizationID.String(),
		SourceID:        txn.SourceID.String(),
		TargetID:        txn.TargetID.String(),
		TransactionType: txn.TransactionType,
		FilingPeriod:    txn.FilingPeriod,
		Amounts:         amounts,
		CreatedAt:       txn.CreatedAt.Format(time.RFC3339),
	}
}

func snapshotToGraph(snapshot *domain.EntitySnapshot) (*graph.EntitySnapshotView, error) {
	if snapshot == nil {
		return nil, nil
	}
	lines, err := snapshot.CanonicalText()
	if err != nil {
		return nil, err
	}
	return &graph.EntitySnapshotView{
		Version:       int(snapshot.Version),
		CanonicalText: lines,
	}, nil
}

func convertEntityFilter(filter *graph.EntityFilter) (*domain.EntityFilter, error) {
	if filter == nil {
		return nil, nil
	}

	result := &domain.EntityFilter{}
	for _, raw := range filter.EntityTypes {
		entityType, err := domain.ParseEntityType(raw)
		if err != nil {
			return nil, err
		}
		result.EntityTypes = append(result.EntityTypes, entityType)
	}
	if filter.Jurisdiction != nil {
		result.Jurisdiction = *filter.Jurisdiction
	}
	if filter.NameContains != nil {
		result.NameContains = *filter.NameContains
	}

	if len(result.EntityTypes) == 0 && result.Jurisdiction == "" && result.NameContains == "" {
		return nil, nil
	}
	return result, nil
}

func decodeAttributes(raw *string) (map[string]any, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	attrs, err := domain.AttributesFromJSON(json.RawMessage(*raw))
	if err != nil {
		return nil, fmt.Errorf("invalid attributes JSON: %w", err)
	}
	return attrs, nil
}
