package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/domain/match"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// SheetsDestination names the target spreadsheet and tab.
type SheetsDestination struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name; defaults to Sheet1"`
	Range         string `json:"range,omitempty" jsonschema:"Explicit A1 range override"`
}

// SheetsExportParams defines the arguments for the sheets_export tool.
type SheetsExportParams struct {
	Query    string            `json:"query" jsonschema:"Job title substring selecting the postings to export"`
	Skills   []string          `json:"skills" jsonschema:"Candidate skill list used for ranking"`
	Sheet    SheetsDestination `json:"sheet" jsonschema:"Destination sheet information"`
	Upsert   bool              `json:"upsert,omitempty" jsonschema:"Overwrite rows instead of appending"`
	ClearTab bool              `json:"clear_tab,omitempty" jsonschema:"Clear existing data rows first"`
}

// SheetsExportResult summarizes the export.
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	WrittenRows   int       `json:"written_rows"`
	Message       string    `json:"message,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

// SheetsClient writes ranked matches to a spreadsheet.
type SheetsClient interface {
	ExportMatches(ctx context.Context, params SheetsExportParams, matches []domain.MatchResult) (SheetsExportResult, error)
}

type sheetsExportTool struct {
	store  JobFinder
	client SheetsClient
	logger *logging.Logger
}

// WithSheetsExport registers the sheets_export tool.
func WithSheetsExport(store JobFinder, client SheetsClient) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{store: store, client: client, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Rank postings for a query against candidate skills and export the matches to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheet.spreadsheet_id is required")
	}

	if t.store == nil || t.client == nil {
		return nil, nil, fmt.Errorf("sheets export not configured")
	}

	jobs, err := t.store.Find(ctx, params.Query)
	if err != nil {
		return nil, nil, fmt.Errorf("collect failed: %w", err)
	}

	matches := match.Rank(jobs, params.Skills)

	result, err := t.client.ExportMatches(ctx, *params, matches)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("sheets_export failed",
				"err", err,
				"spreadsheet_id", params.Sheet.SpreadsheetID,
			)
		}
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}

	if t.logger != nil {
		t.logger.Info("sheets_export completed",
			"spreadsheet_id", result.SpreadsheetID,
			"written_rows", result.WrittenRows,
		)
	}

	msg := fmt.Sprintf("[sheets_export] Wrote %d match row(s) to %s", result.WrittenRows, result.SpreadsheetID)
	return textResult(msg), result, nil
}
