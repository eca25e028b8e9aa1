package ingestion

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	service *Service
	store   *temporal.Store
	mem     *memory.Store
	orgID   uuid.UUID
}

func newFixture() fixture {
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	return fixture{
		service: NewService(store, mem.OwnershipEdges(), mem.Transactions()),
		store:   store,
		mem:     mem,
		orgID:   uuid.New(),
	}
}

func (f fixture) ingest(t *testing.T, kind Kind, payload string) Summary {
	t.Helper()
	summary, err := f.service.Ingest(context.Background(), Request{
		OrganizationID: f.orgID,
		Kind:           kind,
		EffectiveAsOf:  date(2023, 1, 1),
		Data:           strings.NewReader(payload),
	})
	if err != nil {
		t.Fatalf("Ingest %s: %v", kind, err)
	}
	return summary
}

const structureCSV = `Legal Entity Code (#),Entity Name,Entity Type,Jurisdiction,Local Currency,Functional Currency,Reporting Currency,Line Of Business
GRP,Group Holdings,Corporation,US-DE,USD,USD,USD,Holding
OPS,Ops LLC,LLC,US-DE,USD,USD,USD,Operations
`

func TestStructureIngestCreatesEntities(t *testing.T) {
	f := newFixture()
	summary := f.ingest(t, KindStructure, structureCSV)

	if summary.ValidRows != 2 || summary.InvalidRows != 0 {
		t.Fatalf("summary = %+v, want 2 valid rows", summary)
	}

	entities, err := f.store.ListEntities(context.Background(), f.orgID, date(2023, 6, 1), nil)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2", len(entities))
	}
	byCode := map[string]domain.Entity{}
	for _, entity := range entities {
		byCode[entity.Code] = entity
	}
	grp := byCode["GRP"]
	if grp.EntityType != domain.EntityTypeCorporation || grp.Jurisdiction != "US-DE" {
		t.Errorf("GRP = %s in %s, want CORPORATION in US-DE", grp.EntityType, grp.Jurisdiction)
	}
	if grp.Attributes["line_of_business"] != "Holding" {
		t.Errorf("GRP line_of_business = %v, want Holding", grp.Attributes["line_of_business"])
	}
}

func TestStructureIngestUpdatesExistingEntities(t *testing.T) {
	f := newFixture()
	f.ingest(t, KindStructure, structureCSV)

	update := `Legal Entity Code (#),Entity Name,Entity Type,Jurisdiction,Effective Date
OPS,Ops International LLC,LLC,UK,2024-01-01
`
	summary := f.ingest(t, KindStructure, update)
	if summary.ValidRows != 1 {
		t.Fatalf("summary = %+v, want 1 valid row", summary)
	}

	entities, err := f.store.ListEntities(context.Background(), f.orgID, date(2024, 6, 1), nil)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	var ops domain.Entity
	for _, entity := range entities {
		if entity.Code == "OPS" {
			ops = entity
		}
	}
	if ops.Name != "Ops International LLC" || ops.Jurisdiction != "UK" {
		t.Errorf("OPS at 2024-06-01 = %q in %s, want updated name in UK", ops.Name, ops.Jurisdiction)
	}
	if ops.Version != 2 {
		t.Errorf("OPS version = %d, want 2", ops.Version)
	}
}

func TestOwnershipIngestSkipsExternalShareholders(t *testing.T) {
	f := newFixture()
	f.ingest(t, KindStructure, structureCSV)

	ownership := `Owner Entity Code,Owned Entity Code,Percent Owned,Share Class,Ownership Type,Entry As Shareholder Date,Primary
GRP,OPS,75%,Common,Direct,2023-01-01,yes
,OPS,25%,Common,Direct,2023-01-01,
GRP,MISSING,100%,Common,Direct,2023-01-01,
`
	summary := f.ingest(t, KindOwnership, ownership)
	if summary.ValidRows != 1 || summary.SkippedRows != 1 || summary.InvalidRows != 1 {
		t.Fatalf("summary = %+v, want 1 valid, 1 skipped, 1 invalid", summary)
	}

	edges, err := f.mem.OwnershipEdges().ListAt(context.Background(), f.orgID, date(2023, 6, 1))
	if err != nil {
		t.Fatalf("ListAt: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	edge := edges[0]
	if !edge.Percent.Equal(decimal.NewFromInt(75)) {
		t.Errorf("percent = %s, want 75", edge.Percent)
	}
	if !edge.Primary {
		t.Errorf("edge should carry the primary flag from the file")
	}
	if edge.ShareClass == nil || *edge.ShareClass != "Common" {
		t.Errorf("share class not carried over")
	}
}

func TestTransactionIngestStripsThousandsSeparators(t *testing.T) {
	f := newFixture()
	f.ingest(t, KindStructure, structureCSV)

	debts := `Creditor Entity Code,Debtor Entity Code,Transaction Type,Principal Amount,Currency
GRP,OPS,Loan,"1,500,000.50",EUR
`
	summary := f.ingest(t, KindTransactions, debts)
	if summary.ValidRows != 1 || summary.InvalidRows != 0 {
		t.Fatalf("summary = %+v, want 1 valid row", summary)
	}

	txns, err := f.mem.Transactions().ListByOrganization(context.Background(), f.orgID)
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	want := decimal.RequireFromString("1500000.50")
	if !txns[0].Amounts[0].Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", txns[0].Amounts[0].Amount, want)
	}
	if txns[0].Amounts[0].Currency != "EUR" {
		t.Errorf("currency = %s, want EUR", txns[0].Amounts[0].Currency)
	}
}

func TestAttributeIngestGroupsRowsPerEntity(t *testing.T) {
	f := newFixture()
	f.ingest(t, KindStructure, structureCSV)

	attributes := `Entity Code,Attribute Name,Attribute Value
OPS,Employee Count,240
OPS,Lease Obligations,12000000
GRP,Tax Residence,US
`
	summary := f.ingest(t, KindAttributes, attributes)
	if summary.ValidRows != 3 {
		t.Fatalf("summary = %+v, want 3 valid rows", summary)
	}

	ops, err := f.findByCode(t, "OPS", date(2023, 6, 1))
	if err != nil {
		t.Fatalf("findByCode: %v", err)
	}
	if ops.Attributes["employee_count"] != "240" {
		t.Errorf("employee_count = %v, want 240", ops.Attributes["employee_count"])
	}
	// Both OPS rows must fold into one appended version.
	versions, err := f.store.Versions(context.Background(), ops.ID)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) != 2 {
		t.Errorf("OPS has %d versions, want 2 (create + attribute batch)", len(versions))
	}
}

func (f fixture) findByCode(t *testing.T, code string, asOf time.Time) (domain.Entity, error) {
	t.Helper()
	entities, err := f.store.ListEntities(context.Background(), f.orgID, asOf, nil)
	if err != nil {
		return domain.Entity{}, err
	}
	for _, entity := range entities {
		if entity.Code == code {
			return entity, nil
		}
	}
	t.Fatalf("entity %s not found", code)
	return domain.Entity{}, nil
}

func TestDetectKind(t *testing.T) {
	cases := map[string]Kind{
		"Acme_Corporate_Structure.csv": KindStructure,
		"Acme_Ownership.csv":           KindOwnership,
		"Acme_InternalDebts.csv":       KindTransactions,
		"Acme_EntityAttributes.csv":    KindAttributes,
	}
	for fileName, want := range cases {
		kind, err := DetectKind(fileName)
		if err != nil || kind != want {
			t.Errorf("DetectKind(%s) = %v, %v; want %v", fileName, kind, err, want)
		}
	}
	if _, err := DetectKind("notes.txt"); err == nil {
		t.Errorf("DetectKind(notes.txt) should fail")
	}
}
