package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/projection"
	"github.com/pwallin/corpgraph/internal/repository/memory"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedGraph(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	mem := memory.NewStore()
	store := temporal.NewStore(mem.EntityVersions(), nil)
	projector := projection.NewProjector(store, mem.OwnershipEdges(), nil)
	orgID := uuid.New()

	parent := domain.NewEntity(orgID, "Group Holdings", "GRP", domain.EntityTypeCorporation, "US-DE", date(2020, 1, 1))
	parent, err := store.PutEntity(ctx, parent, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	sub := domain.NewEntity(orgID, "Ops LLC", "OPS", domain.EntityTypeLLC, "US-DE", date(2020, 1, 1))
	sub, err = store.PutEntity(ctx, sub, date(2020, 1, 1))
	if err != nil {
		t.Fatalf("PutEntity: %v", err)
	}
	edge := domain.NewOwnershipEdge(orgID, parent.ID, sub.ID, decimal.NewFromInt(80), date(2020, 1, 1)).WithPrimary(true)
	if _, err := mem.OwnershipEdges().Create(ctx, edge); err != nil {
		t.Fatalf("Create edge: %v", err)
	}

	return NewService(projector), orgID
}

func TestWorkbookExportContainsAllSheets(t *testing.T) {
	service, orgID := seedGraph(t)

	var buf bytes.Buffer
	req := Request{OrganizationID: orgID, AsOf: date(2024, 1, 1), Format: FormatXLSX}
	if err := service.Render(context.Background(), req, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	for _, want := range []string{sheetEntities, sheetOwnership, sheetFindings} {
		found := false
		for _, sheet := range sheets {
			if sheet == want {
				found = true
			}
		}
		if !found {
			t.Errorf("workbook missing sheet %q (got %v)", want, sheets)
		}
	}

	rows, err := f.GetRows(sheetEntities)
	if err != nil {
		t.Fatalf("GetRows entities: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("entities sheet has %d rows, want header + 2", len(rows))
	}
	if rows[1][1] != "Group Holdings" {
		t.Errorf("first entity row = %q, want Group Holdings (sorted by name)", rows[1][1])
	}

	ownership, err := f.GetRows(sheetOwnership)
	if err != nil {
		t.Fatalf("GetRows ownership: %v", err)
	}
	if len(ownership) != 2 {
		t.Fatalf("ownership sheet has %d rows, want header + 1", len(ownership))
	}
	if ownership[1][4] != "80.0000" {
		t.Errorf("ownership percent = %q, want 80.0000", ownership[1][4])
	}

	// An 80% sole stake leaves the subsidiary under 100%.
	findings, err := f.GetRows(sheetFindings)
	if err != nil {
		t.Fatalf("GetRows findings: %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("findings sheet has %d rows, want header + 1", len(findings))
	}
	if findings[1][0] != string(domain.FindingOwnershipUnder) {
		t.Errorf("finding kind = %q, want %s", findings[1][0], domain.FindingOwnershipUnder)
	}
}

func TestCSVExportSections(t *testing.T) {
	service, orgID := seedGraph(t)

	var buf bytes.Buffer
	req := Request{OrganizationID: orgID, AsOf: date(2024, 1, 1), Format: FormatCSV}
	if err := service.Render(context.Background(), req, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	output := buf.String()
	for _, marker := range []string{"# entities", "# ownership", "# findings"} {
		if !strings.Contains(output, marker) {
			t.Errorf("csv output missing section %q", marker)
		}
	}
	if !strings.Contains(output, "Ops LLC") {
		t.Errorf("csv output missing entity name")
	}
}

func TestParseFormat(t *testing.T) {
	if format, err := ParseFormat(""); err != nil || format != FormatXLSX {
		t.Errorf("ParseFormat(\"\") = %v, %v; want xlsx default", format, err)
	}
	if format, err := ParseFormat("CSV"); err != nil || format != FormatCSV {
		t.Errorf("ParseFormat(CSV) = %v, %v; want csv", format, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Errorf("ParseFormat(pdf) should fail")
	}
}
