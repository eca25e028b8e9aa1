// Package ledger is the activity ledger: an append-only log of every
// create/update/delete with actor, recorded-at timestamp and field diff. Its
// recorded-at timeline is deliberately independent of the business-effective
// dates in the temporal store; a correction entered today can change what was
// true last year without rewriting this log.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pwallin/corpgraph/internal/auth"
	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository"

	"github.com/google/uuid"
)

// Service appends to and reads from the change log.
type Service struct {
	records repository.ChangeLogRepository
	now     func() time.Time
}

// NewService creates a ledger service over the given repository.
func NewService(records repository.ChangeLogRepository) *Service {
	return &Service{records: records, now: time.Now}
}

// Prepare builds a change record for one mutation without persisting it.
// Callers that store the record atomically alongside other state use this;
// the actor comes from the request context and a zero recordedAt means "now".
func (s *Service) Prepare(ctx context.Context, entityID uuid.UUID, operation domain.ChangeOp, changes []domain.FieldChange, recordedAt time.Time) (domain.ChangeRecord, error) {
	if entityID == uuid.Nil {
		return domain.ChangeRecord{}, fmt.Errorf("%w: change record requires an entity id", domain.ErrValidation)
	}
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}
	return domain.NewChangeRecord(entityID, operation, auth.ActorFromContext(ctx), changes, recordedAt), nil
}

// Record appends one change record.
func (s *Service) Record(ctx context.Context, entityID uuid.UUID, operation domain.ChangeOp, changes []domain.FieldChange, recordedAt time.Time) (domain.ChangeRecord, error) {
	record, err := s.Prepare(ctx, entityID, operation, changes, recordedAt)
	if err != nil {
		return domain.ChangeRecord{}, err
	}
	appended, err := s.records.Append(ctx, record)
	if err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("failed to append change record: %w", err)
	}
	return appended, nil
}

// History returns an entity's change records in chronological order. The
// offset/limit pair makes the sequence restartable.
func (s *Service) History(ctx context.Context, entityID uuid.UUID, offset, limit int) ([]domain.ChangeRecord, error) {
	records, err := s.records.List(ctx, entityID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list change records: %w", err)
	}
	return records, nil
}

// DiffVersions reconstructs the entity's field state at each timestamp by
// folding the recorded diffs, then returns the field-level differences
// between the two states. Each timestamp matches the nearest record at or
// before it.
func (s *Service) DiffVersions(ctx context.Context, entityID uuid.UUID, tsA, tsB time.Time) ([]domain.FieldChange, error) {
	records, err := s.records.List(ctx, entityID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list change records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("entity %s has no change records: %w", entityID, domain.ErrNotFound)
	}

	stateA := foldState(records, tsA)
	stateB := foldState(records, tsB)

	names := make(map[string]struct{}, len(stateA)+len(stateB))
	for name := range stateA {
		names[name] = struct{}{}
	}
	for name := range stateB {
		names[name] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	var diffs []domain.FieldChange
	for _, name := range ordered {
		oldValue := stateA[name]
		newValue := stateB[name]
		if oldValue == newValue {
			continue
		}
		diffs = append(diffs, domain.FieldChange{Field: name, Old: oldValue, New: newValue})
	}
	return diffs, nil
}

// foldState applies every diff recorded at or before ts, in order, producing
// the field state the ledger implies at that instant.
func foldState(records []domain.ChangeRecord, ts time.Time) map[string]string {
	state := map[string]string{}
	for _, record := range records {
		if record.RecordedAt.After(ts) {
			break
		}
		if record.Operation == domain.ChangeOpDelete {
			state = map[string]string{}
		}
		for _, change := range record.Changes {
			if change.New == "" {
				delete(state, change.Field)
				continue
			}
			state[change.Field] = change.New
		}
	}
	return state
}
