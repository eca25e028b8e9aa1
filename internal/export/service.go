// Package export renders projected ownership graphs to downloadable files.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/projection"
)

// Format selects the output file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for formats the service cannot render.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat validates a raw format string, defaulting to XLSX.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "xlsx":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// Request describes one graph export.
type Request struct {
	OrganizationID uuid.UUID
	AsOf           time.Time
	ScenarioID     *uuid.UUID
	Format         Format
}

// Service renders point-in-time graph snapshots. Rendering is read-only and
// goes through the same projection path the API uses, so exports and queries
// can never disagree about what a date looked like.
type Service struct {
	projector *projection.Projector
}

// NewService creates an export service backed by the given projector.
func NewService(projector *projection.Projector) *Service {
	return &Service{projector: projector}
}

// FileName returns the suggested download name for a request.
func (s *Service) FileName(req Request) string {
	base := fmt.Sprintf("ownership-%s", req.AsOf.Format("2006-01-02"))
	if req.ScenarioID != nil {
		base = fmt.Sprintf("%s-scenario-%s", base, req.ScenarioID.String())
	}
	return fmt.Sprintf("%s.%s", base, req.Format)
}

// ContentType returns the MIME type for a request's format.
func (s *Service) ContentType(req Request) string {
	switch req.Format {
	case FormatCSV:
		return "text/csv"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// Render projects the graph for the request and writes it to w in the
// requested format.
func (s *Service) Render(ctx context.Context, req Request, w io.Writer) error {
	if req.OrganizationID == uuid.Nil {
		return errors.New("organization ID is required")
	}
	if req.AsOf.IsZero() {
		return errors.New("as-of date is required")
	}
	graph, err := s.projector.Project(ctx, req.OrganizationID, req.AsOf, req.ScenarioID)
	if err != nil {
		return fmt.Errorf("project graph for export: %w", err)
	}
	switch req.Format {
	case FormatCSV:
		return writeCSV(graph, w)
	case FormatXLSX, "":
		return writeWorkbook(graph, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, req.Format)
	}
}

const (
	sheetEntities  = "Entities"
	sheetOwnership = "Ownership"
	sheetFindings  = "Findings"
)

var (
	entityHeaders = []string{
		"ID", "Name", "Code", "Type", "Jurisdiction",
		"Local Currency", "Functional Currency", "Reporting Currency",
		"Effective From", "Terminated", "Aggregate Ownership %",
	}
	ownershipHeaders = []string{
		"Owner", "Owner Code", "Owned", "Owned Code",
		"Percent", "Share Class", "Primary", "Effective From",
	}
	findingHeaders = []string{"Kind", "Entities", "Detail"}
)

func writeWorkbook(graph *domain.Graph, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), sheetEntities)
	if _, err := f.NewSheet(sheetOwnership); err != nil {
		return fmt.Errorf("create ownership sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetFindings); err != nil {
		return fmt.Errorf("create findings sheet: %w", err)
	}

	if err := writeSheet(f, sheetEntities, entityHeaders, entityRows(graph)); err != nil {
		return err
	}
	if err := writeSheet(f, sheetOwnership, ownershipHeaders, ownershipRows(graph)); err != nil {
		return err
	}
	if err := writeSheet(f, sheetFindings, findingHeaders, findingRows(graph)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolve cell for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// writeCSV emits the three sections into a single stream, separated by a
// section marker row, so the whole snapshot survives as one file.
func writeCSV(graph *domain.Graph, w io.Writer) error {
	writer := csv.NewWriter(w)
	sections := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"# entities", entityHeaders, entityRows(graph)},
		{"# ownership", ownershipHeaders, ownershipRows(graph)},
		{"# findings", findingHeaders, findingRows(graph)},
	}
	for _, section := range sections {
		if err := writer.Write([]string{section.name}); err != nil {
			return fmt.Errorf("write section marker: %w", err)
		}
		if err := writer.Write(section.headers); err != nil {
			return fmt.Errorf("write headers: %w", err)
		}
		for _, row := range section.rows {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func entityRows(graph *domain.Graph) [][]string {
	nodes := graph.Nodes()
	rows := make([][]string, 0, len(nodes))
	for _, node := range nodes {
		entity := node.Entity
		terminated := ""
		if entity.TerminationDate != nil {
			terminated = entity.TerminationDate.Format("2006-01-02")
		}
		aggregate := ""
		if len(node.ParentEdges) > 0 {
			aggregate = graph.AggregateOwnership(entity.ID).StringFixed(4)
		}
		rows = append(rows, []string{
			entity.ID.String(),
			entity.Name,
			entity.Code,
			string(entity.EntityType),
			entity.Jurisdiction,
			entity.LocalCurrency,
			entity.FunctionalCurrency,
			entity.ReportingCurrency,
			entity.EffectiveFrom.Format("2006-01-02"),
			terminated,
			aggregate,
		})
	}
	return rows
}

func ownershipRows(graph *domain.Graph) [][]string {
	edges := graph.Edges()
	rows := make([][]string, 0, len(edges))
	for _, edge := range edges {
		ownerName, ownerCode := nodeLabel(graph, edge.OwnerID)
		ownedName, ownedCode := nodeLabel(graph, edge.OwnedID)
		shareClass := ""
		if edge.ShareClass != nil {
			shareClass = *edge.ShareClass
		}
		primary := ""
		if edge.Primary {
			primary = "yes"
		}
		rows = append(rows, []string{
			ownerName,
			ownerCode,
			ownedName,
			ownedCode,
			edge.Percent.StringFixed(4),
			shareClass,
			primary,
			edge.EffectiveFrom.Format("2006-01-02"),
		})
	}
	return rows
}

func findingRows(graph *domain.Graph) [][]string {
	rows := make([][]string, 0, len(graph.Findings))
	for _, finding := range graph.Findings {
		ids := make([]string, len(finding.EntityIDs))
		for i, id := range finding.EntityIDs {
			ids[i] = id.String()
		}
		rows = append(rows, []string{
			string(finding.Kind),
			strings.Join(ids, "; "),
			finding.Detail,
		})
	}
	return rows
}

func nodeLabel(graph *domain.Graph, id uuid.UUID) (string, string) {
	node, ok := graph.Node(id)
	if !ok {
		return id.String(), ""
	}
	return node.Entity.Name, node.Entity.Code
}
