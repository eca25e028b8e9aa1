package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ChangeOp is the operation a change record captures.
type ChangeOp string

const (
	ChangeOpCreate ChangeOp = "CREATE"
	ChangeOpUpdate ChangeOp = "UPDATE"
	ChangeOpDelete ChangeOp = "DELETE"
)

// FieldChange is one field-level difference inside a change record.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// ChangeRecord is an immutable activity ledger entry. RecordedAt is the
// wall-clock time the mutation landed, deliberately independent of the
// business-effective date on the entity version it describes.
type ChangeRecord struct {
	ID         uuid.UUID     `json:"id"`
	EntityID   uuid.UUID     `json:"entity_id"`
	Operation  ChangeOp      `json:"operation"`
	Actor      string        `json:"actor"`
	RecordedAt time.Time     `json:"recorded_at"`
	Changes    []FieldChange `json:"changes"`
}

// NewChangeRecord creates a ledger entry for one mutation.
func NewChangeRecord(entityID uuid.UUID, operation ChangeOp, actor string, changes []FieldChange, recordedAt time.Time) ChangeRecord {
	return ChangeRecord{
		ID:         uuid.New(),
		EntityID:   entityID,
		Operation:  operation,
		Actor:      actor,
		RecordedAt: recordedAt,
		Changes:    append([]FieldChange(nil), changes...),
	}
}

// ChangesJSON serializes the field changes for storage.
func (r ChangeRecord) ChangesJSON() (json.RawMessage, error) {
	if r.Changes == nil {
		return json.Marshal([]FieldChange{})
	}
	return json.Marshal(r.Changes)
}

// FieldChangesFromJSON decodes a stored diff blob.
func FieldChangesFromJSON(raw json.RawMessage) ([]FieldChange, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var changes []FieldChange
	if err := json.Unmarshal(raw, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// ComputeFieldChanges produces the field-level differences between two entity
// versions as flat dotted-path fields, sorted by field name. A nil before is
// a create, a nil after is a delete.
func ComputeFieldChanges(before, after *Entity) ([]FieldChange, error) {
	beforeFields := map[string]string{}
	afterFields := map[string]string{}

	if before != nil {
		fields, err := flattenEntityFields(*before)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten prior version: %w", err)
		}
		beforeFields = fields
	}
	if after != nil {
		fields, err := flattenEntityFields(*after)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten new version: %w", err)
		}
		afterFields = fields
	}

	names := make(map[string]struct{}, len(beforeFields)+len(afterFields))
	for name := range beforeFields {
		names[name] = struct{}{}
	}
	for name := range afterFields {
		names[name] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	var changes []FieldChange
	for _, name := range ordered {
		oldValue := beforeFields[name]
		newValue := afterFields[name]
		if oldValue == newValue {
			continue
		}
		changes = append(changes, FieldChange{Field: name, Old: oldValue, New: newValue})
	}
	return changes, nil
}

func flattenEntityFields(entity Entity) (map[string]string, error) {
	fields := map[string]string{
		"name":                entity.Name,
		"code":                entity.Code,
		"entity_type":         string(entity.EntityType),
		"jurisdiction":        entity.Jurisdiction,
		"local_currency":      entity.LocalCurrency,
		"functional_currency": entity.FunctionalCurrency,
		"reporting_currency":  entity.ReportingCurrency,
		"effective_from":      entity.EffectiveFrom.Format("2006-01-02"),
	}
	if entity.TerminationDate != nil {
		fields["termination_date"] = entity.TerminationDate.Format("2006-01-02")
	}

	if len(entity.Attributes) > 0 {
		flattened := map[string]string{}
		if err := flattenValue("attributes", entity.Attributes, flattened); err != nil {
			return nil, err
		}
		for key, value := range flattened {
			fields[key] = value
		}
	}
	for namespace, kv := range entity.AppFields {
		flattened := map[string]string{}
		if err := flattenValue("app."+namespace, kv, flattened); err != nil {
			return nil, err
		}
		for key, value := range flattened {
			fields[key] = value
		}
	}
	return fields, nil
}
