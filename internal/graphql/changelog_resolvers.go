package graphql

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/graph"

	"github.com/google/uuid"
)

// ChangeLog returns the activity ledger for an entity in recorded order. The
// offset/limit pair makes the listing restartable.
func (r *Resolver) ChangeLog(ctx context.Context, entityID string, offset, limit *int) ([]*graph.ChangeRecord, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	from := 0
	if offset != nil {
		from = *offset
	}
	max := 0
	if limit != nil {
		max = *limit
	}

	records, err := r.ledger.History(ctx, id, from, max)
	if err != nil {
		return nil, fmt.Errorf("failed to list change log: %w", err)
	}

	result := make([]*graph.ChangeRecord, len(records))
	for i, record := range records {
		result[i] = toGraphChangeRecord(record)
	}
	return result, nil
}

// ChangeDiff reconstructs the recorded field state at two wall-clock
// timestamps and returns the differences between them.
func (r *Resolver) ChangeDiff(ctx context.Context, entityID, timestampA, timestampB string) ([]*graph.FieldChange, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}
	tsA, err := parseTimestamp(timestampA)
	if err != nil {
		return nil, err
	}
	tsB, err := parseTimestamp(timestampB)
	if err != nil {
		return nil, err
	}

	changes, err := r.ledger.DiffVersions(ctx, id, tsA, tsB)
	if err != nil {
		return nil, fmt.Errorf("failed to diff change log states: %w", err)
	}

	result := make([]*graph.FieldChange, len(changes))
	for i, change := range changes {
		result[i] = &graph.FieldChange{Field: change.Field, Old: change.Old, New: change.New}
	}
	return result, nil
}
