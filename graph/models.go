// Package graph holds the GraphQL transport models bound by gqlgen.yml.
// The executable schema (generated.go) is produced by `make generate` and is
// not committed.
package graph

type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Entity struct {
	ID                 string  `json:"id"`
	OrganizationID     string  `json:"organizationId"`
	Name               string  `json:"name"`
	Code               string  `json:"code"`
	EntityType         string  `json:"entityType"`
	Jurisdiction       string  `json:"jurisdiction"`
	LocalCurrency      string  `json:"localCurrency"`
	FunctionalCurrency string  `json:"functionalCurrency"`
	ReportingCurrency  string  `json:"reportingCurrency"`
	Attributes         string  `json:"attributes"`
	AppFields          string  `json:"appFields"`
	EffectiveFrom      string  `json:"effectiveFrom"`
	TerminationDate    *string `json:"terminationDate,omitempty"`
	Version            int     `json:"version"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

type OwnershipEdge struct {
	ID              string  `json:"id"`
	OrganizationID  string  `json:"organizationId"`
	OwnerID         string  `json:"ownerId"`
	OwnedID         string  `json:"ownedId"`
	Percent         string  `json:"percent"`
	ShareClass      *string `json:"shareClass,omitempty"`
	OwnershipType   string  `json:"ownershipType"`
	EntryDate       string  `json:"entryDate"`
	Primary         bool    `json:"primary"`
	EffectiveFrom   string  `json:"effectiveFrom"`
	TerminationDate *string `json:"terminationDate,omitempty"`
}

type GraphNode struct {
	Entity             *Entity          `json:"entity"`
	ParentEdges        []*OwnershipEdge `json:"parentEdges"`
	ChildEdges         []*OwnershipEdge `json:"childEdges"`
	AggregateOwnership string           `json:"aggregateOwnership"`
}

type Finding struct {
	Kind      string   `json:"kind"`
	EntityIds []string `json:"entityIds"`
	Detail    string   `json:"detail"`
}

type OwnershipGraph struct {
	OrganizationID string           `json:"organizationId"`
	AsOf           string           `json:"asOf"`
	ScenarioID     *string          `json:"scenarioId,omitempty"`
	Nodes          []*GraphNode     `json:"nodes"`
	Edges          []*OwnershipEdge `json:"edges"`
	Roots          []*GraphNode     `json:"roots"`
	Findings       []*Finding       `json:"findings"`
}

type EffectiveOwnership struct {
	Percent       string    `json:"percent"`
	Chain         []string  `json:"chain"`
	ChainEntities []*Entity `json:"chainEntities"`
}

type Workspace struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	Name           string   `json:"name"`
	Members        []string `json:"members"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type Scenario struct {
	ID             string  `json:"id"`
	WorkspaceID    string  `json:"workspaceId"`
	Name           string  `json:"name"`
	BaseScenarioID *string `json:"baseScenarioId,omitempty"`
	Position       int     `json:"position"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type ScenarioDelta struct {
	ID         string `json:"id"`
	ScenarioID string `json:"scenarioId"`
	Kind       string `json:"kind"`
	Op         string `json:"op"`
	TargetID   string `json:"targetId"`
	AppliedAt  string `json:"appliedAt"`
}

type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

type ChangeRecord struct {
	ID         string         `json:"id"`
	EntityID   string         `json:"entityId"`
	Operation  string         `json:"operation"`
	Actor      string         `json:"actor"`
	RecordedAt string         `json:"recordedAt"`
	Changes    []*FieldChange `json:"changes"`
}

type EntitySnapshotView struct {
	Version       int      `json:"version"`
	CanonicalText []string `json:"canonicalText"`
}

type EntityDiffResult struct {
	Base        *EntitySnapshotView `json:"base,omitempty"`
	Target      *EntitySnapshotView `json:"target,omitempty"`
	UnifiedDiff *string             `json:"unifiedDiff,omitempty"`
}

type JurisdictionFiling struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	EntityID       string `json:"entityId"`
	Jurisdiction   string `json:"jurisdiction"`
	FilingGroup    string `json:"filingGroup"`
	HierarchyLevel int    `json:"hierarchyLevel"`
	GroupLeader    bool   `json:"groupLeader"`
}

type TransactionAmount struct {
	Amount     string `json:"amount"`
	AmountType string `json:"amountType"`
	Currency   string `json:"currency"`
}

type IntercompanyTransaction struct {
	ID              string               `json:"id"`
	OrganizationID  string               `json:"organizationId"`
	SourceID        string               `json:"sourceId"`
	TargetID        string               `json:"targetId"`
	TransactionType string               `json:"transactionType"`
	FilingPeriod    string               `json:"filingPeriod"`
	Amounts         []*TransactionAmount `json:"amounts"`
	CreatedAt       string               `json:"createdAt"`
}

type EntityFilter struct {
	EntityTypes  []string `json:"entityTypes,omitempty"`
	Jurisdiction *string  `json:"jurisdiction,omitempty"`
	NameContains *string  `json:"nameContains,omitempty"`
}

type CreateEntityInput struct {
	OrganizationID     string  `json:"organizationId"`
	Name               string  `json:"name"`
	Code               string  `json:"code"`
	EntityType         string  `json:"entityType"`
	Jurisdiction       string  `json:"jurisdiction"`
	LocalCurrency      *string `json:"localCurrency,omitempty"`
	FunctionalCurrency *string `json:"functionalCurrency,omitempty"`
	ReportingCurrency  *string `json:"reportingCurrency,omitempty"`
	Attributes         *string `json:"attributes,omitempty"`
	EffectiveFrom      string  `json:"effectiveFrom"`
}

type UpdateEntityInput struct {
	Name               *string `json:"name,omitempty"`
	Code               *string `json:"code,omitempty"`
	EntityType         *string `json:"entityType,omitempty"`
	Jurisdiction       *string `json:"jurisdiction,omitempty"`
	LocalCurrency      *string `json:"localCurrency,omitempty"`
	FunctionalCurrency *string `json:"functionalCurrency,omitempty"`
	ReportingCurrency  *string `json:"reportingCurrency,omitempty"`
	Attributes         *string `json:"attributes,omitempty"`
}

type OwnershipEdgeInput struct {
	OrganizationID string  `json:"organizationId"`
	OwnerID        string  `json:"ownerId"`
	OwnedID        string  `json:"ownedId"`
	Percent        string  `json:"percent"`
	ShareClass     *string `json:"shareClass,omitempty"`
	OwnershipType  *string `json:"ownershipType,omitempty"`
	Primary        *bool   `json:"primary,omitempty"`
	EffectiveFrom  string  `json:"effectiveFrom"`
}

type ScenarioDeltaInput struct {
	Kind     string  `json:"kind"`
	Op       string  `json:"op"`
	TargetID *string `json:"targetId,omitempty"`
	Entity   *string `json:"entity,omitempty"`
	Edge     *string `json:"edge,omitempty"`
}

type FilingInput struct {
	OrganizationID string `json:"organizationId"`
	EntityID       string `json:"entityId"`
	Jurisdiction   string `json:"jurisdiction"`
	FilingGroup    string `json:"filingGroup"`
	HierarchyLevel *int   `json:"hierarchyLevel,omitempty"`
	GroupLeader    *bool  `json:"groupLeader,omitempty"`
}

type TransactionAmountInput struct {
	Amount     string `json:"amount"`
	AmountType string `json:"amountType"`
	Currency   string `json:"currency"`
}

type TransactionInput struct {
	OrganizationID  string                    `json:"organizationId"`
	SourceID        string                    `json:"sourceId"`
	TargetID        string                    `json:"targetId"`
	TransactionType string                    `json:"transactionType"`
	FilingPeriod    *string                   `json:"filingPeriod,omitempty"`
	Amounts         []*TransactionAmountInput `json:"amounts"`
}

