package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntityType is the closed set of legal entity forms the system tracks.
type EntityType string

const (
	EntityTypeCorporation    EntityType = "CORPORATION"
	EntityTypeLLC            EntityType = "LLC"
	EntityTypeLimitedCompany EntityType = "LIMITED_COMPANY"
	EntityTypePartnership    EntityType = "PARTNERSHIP"
	EntityTypeBranch         EntityType = "BRANCH"
	EntityTypeTrust          EntityType = "TRUST"
	EntityTypeIndividual     EntityType = "INDIVIDUAL"
	EntityTypeGmbH           EntityType = "GMBH"
	EntityTypeBV             EntityType = "BV"
	EntityTypeKK             EntityType = "KK"
	EntityTypeSA             EntityType = "SA"
	EntityTypeLtda           EntityType = "LTDA"
)

var entityTypes = map[EntityType]struct{}{
	EntityTypeCorporation:    {},
	EntityTypeLLC:            {},
	EntityTypeLimitedCompany: {},
	EntityTypePartnership:    {},
	EntityTypeBranch:         {},
	EntityTypeTrust:          {},
	EntityTypeIndividual:     {},
	EntityTypeGmbH:           {},
	EntityTypeBV:             {},
	EntityTypeKK:             {},
	EntityTypeSA:             {},
	EntityTypeLtda:           {},
}

// ParseEntityType validates a raw entity type string against the closed set.
func ParseEntityType(raw string) (EntityType, error) {
	candidate := EntityType(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := entityTypes[candidate]; !ok {
		return "", fmt.Errorf("%w: unknown entity type %q", ErrValidation, raw)
	}
	return candidate, nil
}

// Entity is a single version of a legal or organizational unit. Versions are
// append-only; the temporal store selects the one visible at an as-of date.
type Entity struct {
	ID                 uuid.UUID                 `json:"id"`
	OrganizationID     uuid.UUID                 `json:"organization_id"`
	Name               string                    `json:"name"`
	Code               string                    `json:"code"`
	EntityType         EntityType                `json:"entity_type"`
	Jurisdiction       string                    `json:"jurisdiction"`
	LocalCurrency      string                    `json:"local_currency"`
	FunctionalCurrency string                    `json:"functional_currency"`
	ReportingCurrency  string                    `json:"reporting_currency"`
	Attributes         map[string]any            `json:"attributes"`
	AppFields          map[string]map[string]any `json:"app_fields"`
	EffectiveFrom      time.Time                 `json:"effective_from"`
	TerminationDate    *time.Time                `json:"termination_date,omitempty"`
	Version            int64                     `json:"version"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// NewEntity creates the first version of an entity.
func NewEntity(organizationID uuid.UUID, name, code string, entityType EntityType, jurisdiction string, effectiveFrom time.Time) Entity {
	now := time.Now()
	return Entity{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Name:           name,
		Code:           code,
		EntityType:     entityType,
		Jurisdiction:   jurisdiction,
		Attributes:     map[string]any{},
		AppFields:      map[string]map[string]any{},
		EffectiveFrom:  effectiveFrom,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate checks the fields the entity form marks required.
func (e Entity) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: entity name is required", ErrValidation)
	}
	if strings.TrimSpace(e.Code) == "" {
		return fmt.Errorf("%w: entity code is required", ErrValidation)
	}
	if _, ok := entityTypes[e.EntityType]; !ok {
		return fmt.Errorf("%w: unknown entity type %q", ErrValidation, e.EntityType)
	}
	if e.EffectiveFrom.IsZero() {
		return fmt.Errorf("%w: effective date is required", ErrValidation)
	}
	if e.TerminationDate != nil && !e.TerminationDate.After(e.EffectiveFrom) {
		return fmt.Errorf("%w: termination date must be after the effective date", ErrValidation)
	}
	return nil
}

// VisibleAt reports whether this version is in force at the given as-of date.
// An entity terminated on or before the as-of date is excluded.
func (e Entity) VisibleAt(asOf time.Time) bool {
	if e.EffectiveFrom.After(asOf) {
		return false
	}
	if e.TerminationDate != nil && !e.TerminationDate.After(asOf) {
		return false
	}
	return true
}

// WithName returns a new version with an updated legal name.
func (e Entity) WithName(name string) Entity {
	next := e.clone()
	next.Name = name
	return next
}

// WithCode returns a new version with an updated short code.
func (e Entity) WithCode(code string) Entity {
	next := e.clone()
	next.Code = code
	return next
}

// WithEntityType returns a new version with an updated legal form.
func (e Entity) WithEntityType(entityType EntityType) Entity {
	next := e.clone()
	next.EntityType = entityType
	return next
}

// WithJurisdiction returns a new version with an updated home jurisdiction.
func (e Entity) WithJurisdiction(jurisdiction string) Entity {
	next := e.clone()
	next.Jurisdiction = jurisdiction
	return next
}

// WithCurrencies returns a new version with updated local/functional/reporting
// currencies. Empty values leave the existing currency untouched.
func (e Entity) WithCurrencies(local, functional, reporting string) Entity {
	next := e.clone()
	if local != "" {
		next.LocalCurrency = local
	}
	if functional != "" {
		next.FunctionalCurrency = functional
	}
	if reporting != "" {
		next.ReportingCurrency = reporting
	}
	return next
}

// WithAttribute returns a new version with an added or updated attribute.
func (e Entity) WithAttribute(key string, value any) Entity {
	next := e.clone()
	next.Attributes[key] = value
	return next
}

// WithoutAttribute returns a new version without the named attribute.
func (e Entity) WithoutAttribute(key string) Entity {
	next := e.clone()
	delete(next.Attributes, key)
	return next
}

// WithAttributes returns a new version with the attribute map replaced.
func (e Entity) WithAttributes(attributes map[string]any) Entity {
	next := e.clone()
	next.Attributes = cloneAttributes(attributes)
	return next
}

// WithAppField returns a new version with an application-namespaced field set.
func (e Entity) WithAppField(namespace, key string, value any) Entity {
	next := e.clone()
	fields, ok := next.AppFields[namespace]
	if !ok {
		fields = map[string]any{}
		next.AppFields[namespace] = fields
	}
	fields[key] = value
	return next
}

// WithTermination returns a new version carrying a termination date.
func (e Entity) WithTermination(terminated time.Time) Entity {
	next := e.clone()
	t := terminated
	next.TerminationDate = &t
	return next
}

func (e Entity) clone() Entity {
	next := e
	next.Attributes = cloneAttributes(e.Attributes)
	next.AppFields = cloneAppFields(e.AppFields)
	next.UpdatedAt = time.Now()
	return next
}

// AttributesJSON serializes the free-form attributes for storage.
func (e *Entity) AttributesJSON() (json.RawMessage, error) {
	if e.Attributes == nil {
		e.Attributes = map[string]any{}
	}
	return json.Marshal(e.Attributes)
}

// AppFieldsJSON serializes the namespaced application fields for storage.
func (e *Entity) AppFieldsJSON() (json.RawMessage, error) {
	if e.AppFields == nil {
		e.AppFields = map[string]map[string]any{}
	}
	return json.Marshal(e.AppFields)
}

// AttributesFromJSON decodes a stored attribute blob.
func AttributesFromJSON(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var attributes map[string]any
	if err := json.Unmarshal(raw, &attributes); err != nil {
		return nil, err
	}
	if attributes == nil {
		attributes = map[string]any{}
	}
	return attributes, nil
}

// AppFieldsFromJSON decodes a stored application-field blob.
func AppFieldsFromJSON(raw json.RawMessage) (map[string]map[string]any, error) {
	if len(raw) == 0 {
		return map[string]map[string]any{}, nil
	}
	var fields map[string]map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]map[string]any{}
	}
	return fields, nil
}

func cloneAttributes(attributes map[string]any) map[string]any {
	out := make(map[string]any, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}
	return out
}

func cloneAppFields(fields map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(fields))
	for ns, kv := range fields {
		out[ns] = cloneAttributes(kv)
	}
	return out
}
