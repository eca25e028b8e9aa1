package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JurisdictionFiling declares that an entity has filing obligations in a
// jurisdiction. Filings are grouped; one filing per group is the reporting
// leader.
type JurisdictionFiling struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	EntityID       uuid.UUID `json:"entity_id"`
	Jurisdiction   string    `json:"jurisdiction"`
	FilingGroup    string    `json:"filing_group"`
	HierarchyLevel int       `json:"hierarchy_level"`
	GroupLeader    bool      `json:"group_leader"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewJurisdictionFiling creates a filing declaration for an entity.
func NewJurisdictionFiling(organizationID, entityID uuid.UUID, jurisdiction, filingGroup string, hierarchyLevel int, groupLeader bool) JurisdictionFiling {
	now := time.Now()
	return JurisdictionFiling{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		EntityID:       entityID,
		Jurisdiction:   jurisdiction,
		FilingGroup:    filingGroup,
		HierarchyLevel: hierarchyLevel,
		GroupLeader:    groupLeader,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate checks required filing fields.
func (f JurisdictionFiling) Validate() error {
	if f.EntityID == uuid.Nil {
		return fmt.Errorf("%w: filing requires an entity id", ErrValidation)
	}
	if f.Jurisdiction == "" {
		return fmt.Errorf("%w: filing requires a jurisdiction", ErrValidation)
	}
	if f.FilingGroup == "" {
		return fmt.Errorf("%w: filing requires a filing group", ErrValidation)
	}
	return nil
}

// CheckGroupLeader enforces the at-most-one-leader rule: adding candidate to
// existing must not produce a second leader within the same filing group.
func CheckGroupLeader(existing []JurisdictionFiling, candidate JurisdictionFiling) error {
	if !candidate.GroupLeader {
		return nil
	}
	for _, filing := range existing {
		if filing.ID == candidate.ID {
			continue
		}
		if filing.FilingGroup == candidate.FilingGroup && filing.GroupLeader {
			return fmt.Errorf("%w: filing group %s already has a reporting leader", ErrValidation, candidate.FilingGroup)
		}
	}
	return nil
}
