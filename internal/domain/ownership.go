package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnershipEdge relates an owner (entity or individual) to an owned entity
// with a percentage stake. Multiple edges may target the same owned entity;
// at most one of them should be flagged primary.
type OwnershipEdge struct {
	ID              uuid.UUID       `json:"id"`
	OrganizationID  uuid.UUID       `json:"organization_id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	OwnedID         uuid.UUID       `json:"owned_id"`
	Percent         decimal.Decimal `json:"percent"`
	ShareClass      *string         `json:"share_class,omitempty"`
	OwnershipType   string          `json:"ownership_type"`
	EntryDate       time.Time       `json:"entry_date"`
	Primary         bool            `json:"primary"`
	EffectiveFrom   time.Time       `json:"effective_from"`
	TerminationDate *time.Time      `json:"termination_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewOwnershipEdge creates an edge from owner to owned with the given stake.
func NewOwnershipEdge(organizationID, ownerID, ownedID uuid.UUID, percent decimal.Decimal, effectiveFrom time.Time) OwnershipEdge {
	now := time.Now()
	return OwnershipEdge{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		OwnerID:        ownerID,
		OwnedID:        ownedID,
		Percent:        percent,
		EntryDate:      effectiveFrom,
		EffectiveFrom:  effectiveFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate rejects structurally broken edges. Percent sums over or under 100
// across sibling edges are integrity findings, not validation errors.
func (e OwnershipEdge) Validate() error {
	if e.OwnerID == uuid.Nil || e.OwnedID == uuid.Nil {
		return fmt.Errorf("%w: ownership edge requires owner and owned entity ids", ErrValidation)
	}
	if e.OwnerID == e.OwnedID {
		return fmt.Errorf("%w: an entity cannot own itself", ErrValidation)
	}
	if e.Percent.IsNegative() {
		return fmt.Errorf("%w: ownership percent cannot be negative", ErrValidation)
	}
	if e.EffectiveFrom.IsZero() {
		return fmt.Errorf("%w: effective date is required", ErrValidation)
	}
	return nil
}

// VisibleAt reports whether the edge is in force at the given as-of date.
func (e OwnershipEdge) VisibleAt(asOf time.Time) bool {
	if e.EffectiveFrom.After(asOf) {
		return false
	}
	if e.TerminationDate != nil && !e.TerminationDate.After(asOf) {
		return false
	}
	return true
}

// WithPercent returns a copy with an updated stake.
func (e OwnershipEdge) WithPercent(percent decimal.Decimal) OwnershipEdge {
	e.Percent = percent
	e.UpdatedAt = time.Now()
	return e
}

// WithPrimary returns a copy with the primary-owner flag set or cleared.
func (e OwnershipEdge) WithPrimary(primary bool) OwnershipEdge {
	e.Primary = primary
	e.UpdatedAt = time.Now()
	return e
}

// WithShareClass returns a copy with an updated share class.
func (e OwnershipEdge) WithShareClass(shareClass string) OwnershipEdge {
	if shareClass == "" {
		e.ShareClass = nil
	} else {
		sc := shareClass
		e.ShareClass = &sc
	}
	e.UpdatedAt = time.Now()
	return e
}

// WithTermination returns a copy carrying a termination date.
func (e OwnershipEdge) WithTermination(terminated time.Time) OwnershipEdge {
	t := terminated
	e.TerminationDate = &t
	e.UpdatedAt = time.Now()
	return e
}
