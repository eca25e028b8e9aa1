package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a client entity universe. Entities, edges, workspaces and
// change records are all scoped to one organization.
type Organization struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewOrganization creates a new organization.
func NewOrganization(name, description string) Organization {
	now := time.Now()
	return Organization{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithName returns a copy with an updated name.
func (o Organization) WithName(name string) Organization {
	o.Name = name
	o.UpdatedAt = time.Now()
	return o
}

// WithDescription returns a copy with an updated description.
func (o Organization) WithDescription(description string) Organization {
	o.Description = description
	o.UpdatedAt = time.Now()
	return o
}
