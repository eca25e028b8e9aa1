// Package ingestion parses the corporate-structure CSV family into entities,
// ownership edges and transaction annotations.
package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository"
	"github.com/pwallin/corpgraph/internal/temporal"
)

var (
	// ErrUnsupportedFile is returned when an uploaded file name matches no
	// known layout.
	ErrUnsupportedFile = errors.New("unsupported file layout")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

	dateLayouts = []string{
		"2006-01-02",
		time.RFC3339,
		"2006/01/02",
		"01/02/2006",
		"02/01/2006",
	}
)

// Kind identifies which of the four source file layouts a payload uses.
type Kind string

const (
	KindStructure    Kind = "CORPORATE_STRUCTURE"
	KindOwnership    Kind = "OWNERSHIP"
	KindTransactions Kind = "INTERNAL_DEBTS"
	KindAttributes   Kind = "ENTITY_ATTRIBUTES"
)

// DetectKind resolves the layout from the conventional file name suffixes,
// e.g. Acme_Corporate_Structure.csv or Acme_Ownership.csv.
func DetectKind(fileName string) (Kind, error) {
	name := strings.ToLower(strings.TrimSuffix(fileName, ".csv"))
	switch {
	case strings.HasSuffix(name, "corporate_structure"):
		return KindStructure, nil
	case strings.HasSuffix(name, "ownership"):
		return KindOwnership, nil
	case strings.HasSuffix(name, "internaldebts"), strings.HasSuffix(name, "internal_debts"):
		return KindTransactions, nil
	case strings.HasSuffix(name, "entityattributes"), strings.HasSuffix(name, "entity_attributes"):
		return KindAttributes, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, fileName)
	}
}

// ParseKind validates an explicit kind string.
func ParseKind(raw string) (Kind, error) {
	candidate := Kind(strings.ToUpper(strings.TrimSpace(raw)))
	switch candidate {
	case KindStructure, KindOwnership, KindTransactions, KindAttributes:
		return candidate, nil
	default:
		return "", fmt.Errorf("%w: kind %q", ErrUnsupportedFile, raw)
	}
}

// Service ingests tabular source data through the temporal store so every
// imported row lands as a dated, ledgered write.
type Service struct {
	store        *temporal.Store
	edges        repository.OwnershipEdgeRepository
	transactions repository.TransactionRepository
}

// NewService creates an ingestion service.
func NewService(store *temporal.Store, edges repository.OwnershipEdgeRepository, transactions repository.TransactionRepository) *Service {
	return &Service{store: store, edges: edges, transactions: transactions}
}

// Request describes one uploaded file.
type Request struct {
	OrganizationID uuid.UUID
	Kind           Kind
	FileName       string
	// EffectiveAsOf is the business date applied to rows without their own
	// date column.
	EffectiveAsOf time.Time
	Data          io.Reader
}

// RowError records why one row was skipped.
type RowError struct {
	RowNumber int    `json:"rowNumber"`
	Message   string `json:"message"`
}

// Summary returns ingestion metrics.
type Summary struct {
	Kind        Kind       `json:"kind"`
	TotalRows   int        `json:"totalRows"`
	ValidRows   int        `json:"validRows"`
	SkippedRows int        `json:"skippedRows"`
	InvalidRows int        `json:"invalidRows"`
	Errors      []RowError `json:"errors,omitempty"`
}

// Ingest reads the uploaded file and persists the rows it can. Broken rows
// are reported, never fatal; one bad line must not sink an import.
func (s *Service) Ingest(ctx context.Context, req Request) (Summary, error) {
	summary := Summary{Kind: req.Kind}

	if req.OrganizationID == uuid.Nil {
		return summary, errors.New("organization id is required")
	}
	if req.Data == nil {
		return summary, errors.New("data reader is required")
	}
	if req.EffectiveAsOf.IsZero() {
		return summary, errors.New("effective date is required")
	}
	if req.Kind == "" {
		kind, err := DetectKind(req.FileName)
		if err != nil {
			return summary, err
		}
		req.Kind = kind
		summary.Kind = kind
	}

	table, err := parseCSV(req.Data)
	if err != nil {
		return summary, err
	}
	summary.TotalRows = len(table.rows)

	switch req.Kind {
	case KindStructure:
		err = s.ingestStructure(ctx, req, table, &summary)
	case KindOwnership:
		err = s.ingestOwnership(ctx, req, table, &summary)
	case KindTransactions:
		err = s.ingestTransactions(ctx, req, table, &summary)
	case KindAttributes:
		err = s.ingestAttributes(ctx, req, table, &summary)
	default:
		err = fmt.Errorf("%w: kind %q", ErrUnsupportedFile, req.Kind)
	}
	return summary, err
}

func (s *Service) ingestStructure(ctx context.Context, req Request, table tableData, summary *Summary) error {
	byCode, err := s.entitiesByCode(ctx, req.OrganizationID, req.EffectiveAsOf)
	if err != nil {
		return err
	}

	for idx, row := range table.rows {
		code := table.get(row, "Legal Entity Code (#)")
		if code == "" {
			code = table.get(row, "Entity Code")
		}
		name := table.get(row, "Entity Name")
		if code == "" || name == "" {
			summary.skip(table.rowNumber(idx), "entity code and name are required")
			continue
		}

		entityType, err := domain.ParseEntityType(table.get(row, "Entity Type"))
		if err != nil {
			summary.skip(table.rowNumber(idx), err.Error())
			continue
		}

		jurisdiction := table.get(row, "Jurisdiction")
		if jurisdiction == "" {
			jurisdiction = table.get(row, "Country Of Incorporation")
		}

		effective := req.EffectiveAsOf
		if raw := table.get(row, "Effective Date"); raw != "" {
			parsed, err := parseDate(raw)
			if err != nil {
				summary.skip(table.rowNumber(idx), fmt.Sprintf("effective date: %v", err))
				continue
			}
			effective = parsed
		}

		entity, exists := byCode[code]
		if exists {
			entity = entity.WithName(name).WithEntityType(entityType).WithJurisdiction(jurisdiction)
		} else {
			entity = domain.NewEntity(req.OrganizationID, name, code, entityType, jurisdiction, effective)
		}
		entity = entity.WithCurrencies(
			table.get(row, "Local Currency"),
			table.get(row, "Functional Currency"),
			table.get(row, "Reporting Currency"),
		)
		for _, extra := range []string{"Region", "Line Of Business", "Descriptor"} {
			if value := table.get(row, extra); value != "" {
				entity = entity.WithAttribute(attributeKey(extra), value)
			}
		}

		persisted, err := s.store.PutEntity(ctx, entity, effective)
		if err != nil {
			summary.fail(table.rowNumber(idx), err.Error())
			continue
		}
		byCode[code] = persisted
		summary.ValidRows++
	}
	return nil
}

func (s *Service) ingestOwnership(ctx context.Context, req Request, table tableData, summary *Summary) error {
	byCode, err := s.entitiesByCode(ctx, req.OrganizationID, req.EffectiveAsOf)
	if err != nil {
		return err
	}

	for idx, row := range table.rows {
		ownerCode := table.get(row, "Owner Entity Code")
		ownedCode := table.get(row, "Owned Entity Code")
		// Rows without an owner code describe external shareholders.
		if ownerCode == "" {
			summary.skip(table.rowNumber(idx), "no owner entity code (external shareholder)")
			continue
		}
		owner, ok := byCode[ownerCode]
		if !ok {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("unknown owner entity code %q", ownerCode))
			continue
		}
		owned, ok := byCode[ownedCode]
		if !ok {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("unknown owned entity code %q", ownedCode))
			continue
		}

		percent, err := parsePercent(table.get(row, "Percent Owned"))
		if err != nil {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("percent owned: %v", err))
			continue
		}

		effective := req.EffectiveAsOf
		if raw := table.get(row, "Entry As Shareholder Date"); raw != "" {
			parsed, err := parseDate(raw)
			if err != nil {
				summary.fail(table.rowNumber(idx), fmt.Sprintf("entry date: %v", err))
				continue
			}
			effective = parsed
		}

		edge := domain.NewOwnershipEdge(req.OrganizationID, owner.ID, owned.ID, percent, effective)
		if shareClass := table.get(row, "Share Class"); shareClass != "" {
			edge = edge.WithShareClass(shareClass)
		}
		edge.OwnershipType = table.get(row, "Ownership Type")
		if primary := table.get(row, "Primary"); primary != "" {
			edge = edge.WithPrimary(parseBool(primary))
		}
		if err := edge.Validate(); err != nil {
			summary.fail(table.rowNumber(idx), err.Error())
			continue
		}
		if _, err := s.edges.Create(ctx, edge); err != nil {
			summary.fail(table.rowNumber(idx), err.Error())
			continue
		}
		summary.ValidRows++
	}
	return nil
}

func (s *Service) ingestTransactions(ctx context.Context, req Request, table tableData, summary *Summary) error {
	byCode, err := s.entitiesByCode(ctx, req.OrganizationID, req.EffectiveAsOf)
	if err != nil {
		return err
	}

	for idx, row := range table.rows {
		creditorCode := table.get(row, "Creditor Entity Code")
		debtorCode := table.get(row, "Debtor Entity Code")
		if creditorCode == "" || debtorCode == "" {
			summary.skip(table.rowNumber(idx), "creditor and debtor entity codes are required")
			continue
		}
		creditor, ok := byCode[creditorCode]
		if !ok {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("unknown creditor entity code %q", creditorCode))
			continue
		}
		debtor, ok := byCode[debtorCode]
		if !ok {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("unknown debtor entity code %q", debtorCode))
			continue
		}

		amount, err := parseAmount(table.get(row, "Principal Amount"))
		if err != nil {
			summary.fail(table.rowNumber(idx), fmt.Sprintf("principal amount: %v", err))
			continue
		}
		currency := table.get(row, "Currency")
		if currency == "" {
			currency = "USD"
		}

		txn := domain.NewIntercompanyTransaction(
			req.OrganizationID,
			creditor.ID,
			debtor.ID,
			table.get(row, "Transaction Type"),
			table.get(row, "Filing Period"),
			[]domain.TransactionAmount{{Amount: amount, AmountType: "PRINCIPAL", Currency: currency}},
		)
		if txn.TransactionType == "" {
			txn.TransactionType = "LOAN"
		}
		if err := txn.Validate(); err != nil {
			summary.fail(table.rowNumber(idx), err.Error())
			continue
		}
		if _, err := s.transactions.Create(ctx, txn); err != nil {
			summary.fail(table.rowNumber(idx), err.Error())
			continue
		}
		summary.ValidRows++
	}
	return nil
}

func (s *Service) ingestAttributes(ctx context.Context, req Request, table tableData, summary *Summary) error {
	byCode, err := s.entitiesByCode(ctx, req.OrganizationID, req.EffectiveAsOf)
	if err != nil {
		return err
	}

	// Group per entity so one file append yields one version per entity
	// rather than one version per attribute row.
	type pendingAttr struct {
		rowNumber int
		name      string
		value     string
	}
	grouped := make(map[string][]pendingAttr)
	var order []string
	for idx, row := range table.rows {
		code := table.get(row, "Entity Code")
		name := table.get(row, "Attribute Name")
		if code == "" || name == "" {
			summary.skip(table.rowNumber(idx), "entity code and attribute name are required")
			continue
		}
		if _, ok := grouped[code]; !ok {
			order = append(order, code)
		}
		grouped[code] = append(grouped[code], pendingAttr{
			rowNumber: table.rowNumber(idx),
			name:      name,
			value:     table.get(row, "Attribute Value"),
		})
	}

	for _, code := range order {
		attrs := grouped[code]
		entity, ok := byCode[code]
		if !ok {
			for _, attr := range attrs {
				summary.fail(attr.rowNumber, fmt.Sprintf("unknown entity code %q", code))
			}
			continue
		}
		for _, attr := range attrs {
			entity = entity.WithAttribute(attributeKey(attr.name), attr.value)
		}
		persisted, err := s.store.PutEntity(ctx, entity, req.EffectiveAsOf)
		if err != nil {
			for _, attr := range attrs {
				summary.fail(attr.rowNumber, err.Error())
			}
			continue
		}
		byCode[code] = persisted
		summary.ValidRows += len(attrs)
	}
	return nil
}

func (s *Service) entitiesByCode(ctx context.Context, organizationID uuid.UUID, asOf time.Time) (map[string]domain.Entity, error) {
	entities, err := s.store.ListEntities(ctx, organizationID, asOf, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities for ingestion: %w", err)
	}
	byCode := make(map[string]domain.Entity, len(entities))
	for _, entity := range entities {
		byCode[entity.Code] = entity
	}
	return byCode, nil
}

func (s *Summary) skip(rowNumber int, message string) {
	s.SkippedRows++
	s.Errors = append(s.Errors, RowError{RowNumber: rowNumber, Message: message})
}

func (s *Summary) fail(rowNumber int, message string) {
	s.InvalidRows++
	s.Errors = append(s.Errors, RowError{RowNumber: rowNumber, Message: message})
}

type tableData struct {
	columns map[string]int
	rows    [][]string
}

// get returns the trimmed cell under the named column, or "" when the column
// is absent. Column lookup is case-insensitive.
func (t tableData) get(row []string, column string) string {
	idx, ok := t.columns[strings.ToLower(column)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowNumber converts a data row index to a 1-based file line including the
// header row.
func (t tableData) rowNumber(idx int) int {
	return idx + 2
}

func parseCSV(data io.Reader) (tableData, error) {
	reader := bufio.NewReader(data)
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return tableData{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return tableData{}, errors.New("file is empty")
	}

	columns := make(map[string]int, len(records[0]))
	for idx, header := range records[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = idx
		}
	}
	if len(columns) == 0 {
		return tableData{}, errors.New("no header row detected")
	}

	var rows [][]string
	for _, row := range records[1:] {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return tableData{columns: columns, rows: rows}, nil
}

// parsePercent accepts both "75%" and "75" renderings.
func parsePercent(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if raw == "" {
		return decimal.Zero, errors.New("value is empty")
	}
	percent, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percent %q", raw)
	}
	return percent, nil
}

// parseAmount strips thousands separators before decoding.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero, errors.New("value is empty")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "y", "true":
		return true
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", raw)
}

// attributeKey converts a source column label to a stable attribute key,
// e.g. "Line Of Business" becomes "line_of_business".
func attributeKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
