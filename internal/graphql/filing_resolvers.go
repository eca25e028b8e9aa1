package graphql

import (
	"context"
	"fmt"

	"github.com/pwallin/corpgraph/graph"

	"github.com/google/uuid"
)

// Filings lists an entity's jurisdiction filing declarations.
func (r *Resolver) Filings(ctx context.Context, entityID string) ([]*graph.JurisdictionFiling, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	filings, err := r.filingRepo.ListByEntity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings: %w", err)
	}

	result := make([]*graph.JurisdictionFiling, len(filings))
	for i, filing := range filings {
		result[i] = toGraphFiling(filing)
	}
	return result, nil
}

// FilingGroup lists the filings in a group ordered by hierarchy level.
func (r *Resolver) FilingGroup(ctx context.Context, organizationID, filingGroup string) ([]*graph.JurisdictionFiling, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}

	filings, err := r.filingRepo.ListByGroup(ctx, orgID, filingGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to list filing group: %w", err)
	}

	result := make([]*graph.JurisdictionFiling, len(filings))
	for i, filing := range filings {
		result[i] = toGraphFiling(filing)
	}
	return result, nil
}

// Transactions lists an organization's intercompany transaction annotations.
func (r *Resolver) Transactions(ctx context.Context, organizationID string) ([]*graph.IntercompanyTransaction, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization ID: %w", err)
	}

	txns, err := r.transactionRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := make([]*graph.IntercompanyTransaction, len(txns))
	for i, txn := range txns {
		result[i] = toGraphTransaction(txn)
	}
	return result, nil
}

// TransactionsForEntity lists transactions where the entity is source or target.
func (r *Resolver) TransactionsForEntity(ctx context.Context, entityID string) ([]*graph.IntercompanyTransaction, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("invalid entity ID: %w", err)
	}

	txns, err := r.transactionRepo.ListByEntity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for entity: %w", err)
	}

	result := make([]*graph.IntercompanyTransaction, len(txns))
	for i, txn := range txns {
		result[i] = toGraphTransaction(txn)
	}
	return result, nil
}
