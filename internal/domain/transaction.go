package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionAmount is one (amount, amount type, currency) tuple attached to
// an intercompany transaction.
type TransactionAmount struct {
	Amount     decimal.Decimal `json:"amount"`
	AmountType string          `json:"amount_type"`
	Currency   string          `json:"currency"`
}

// IntercompanyTransaction is a directed relation between two entities used to
// annotate the ownership graph (loan arrows and the like). Amounts are carried
// verbatim, never computed.
type IntercompanyTransaction struct {
	ID              uuid.UUID           `json:"id"`
	OrganizationID  uuid.UUID           `json:"organization_id"`
	SourceID        uuid.UUID           `json:"source_id"`
	TargetID        uuid.UUID           `json:"target_id"`
	TransactionType string              `json:"transaction_type"`
	FilingPeriod    string              `json:"filing_period"`
	Amounts         []TransactionAmount `json:"amounts"`
	CreatedAt       time.Time           `json:"created_at"`
}

// NewIntercompanyTransaction creates a transaction annotation between entities.
func NewIntercompanyTransaction(organizationID, sourceID, targetID uuid.UUID, transactionType, filingPeriod string, amounts []TransactionAmount) IntercompanyTransaction {
	return IntercompanyTransaction{
		ID:              uuid.New(),
		OrganizationID:  organizationID,
		SourceID:        sourceID,
		TargetID:        targetID,
		TransactionType: transactionType,
		FilingPeriod:    filingPeriod,
		Amounts:         append([]TransactionAmount(nil), amounts...),
		CreatedAt:       time.Now(),
	}
}

// Validate checks the required fields of a transaction annotation.
func (t IntercompanyTransaction) Validate() error {
	if t.SourceID == uuid.Nil || t.TargetID == uuid.Nil {
		return fmt.Errorf("%w: transaction requires source and target entity ids", ErrValidation)
	}
	if t.TransactionType == "" {
		return fmt.Errorf("%w: transaction type is required", ErrValidation)
	}
	if len(t.Amounts) == 0 {
		return fmt.Errorf("%w: transaction requires at least one amount", ErrValidation)
	}
	for _, amount := range t.Amounts {
		if amount.Currency == "" {
			return fmt.Errorf("%w: transaction amount requires a currency", ErrValidation)
		}
	}
	return nil
}
