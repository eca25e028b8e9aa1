package domain

import "strings"

// EntityFilter narrows ListEntities projections. Zero values match everything.
type EntityFilter struct {
	EntityTypes  []EntityType
	Jurisdiction string
	NameContains string
}

// Matches reports whether an entity satisfies the filter.
func (f EntityFilter) Matches(entity Entity) bool {
	if len(f.EntityTypes) > 0 {
		found := false
		for _, t := range f.EntityTypes {
			if entity.EntityType == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Jurisdiction != "" && !strings.EqualFold(entity.Jurisdiction, f.Jurisdiction) {
		return false
	}
	if f.NameContains != "" && !strings.Contains(strings.ToLower(entity.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	return true
}
