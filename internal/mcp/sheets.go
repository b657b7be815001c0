package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/careerscout/pkg/sheets"
)

type sheetsClientAdapter struct {
	client *sheetsclient.Client
}

// ExportMatches writes one row per ranked match: id, title, company,
// location, URL, score, skills, export timestamp.
func (a *sheetsClientAdapter) ExportMatches(ctx context.Context, params tools.SheetsExportParams, matches []domain.MatchResult) (tools.SheetsExportResult, error) {
	if a.client == nil {
		return tools.SheetsExportResult{
			SpreadsheetID: params.Sheet.SpreadsheetID,
			Tab:           params.Sheet.Tab,
			Message:       "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)",
		}, fmt.Errorf("sheets: client not configured")
	}

	result := tools.SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
		CompletedAt:   time.Now().UTC(),
	}

	if len(matches) == 0 {
		result.Message = "no matches to export"
		return result, nil
	}

	range_ := buildRange(params)
	values := matchRows(matches, result.CompletedAt)

	if params.ClearTab {
		if err := a.client.ClearValues(ctx, params.Sheet.SpreadsheetID, buildClearRange(params.Sheet.Tab)); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
	}

	if params.Upsert {
		if err := a.client.UpdateValues(ctx, params.Sheet.SpreadsheetID, range_, values); err != nil {
			return result, fmt.Errorf("sheets: failed to upsert rows: %w", err)
		}
	} else {
		if err := a.client.AppendValues(ctx, params.Sheet.SpreadsheetID, range_, values); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = len(matches)
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)

	return result, nil
}

func buildRange(params tools.SheetsExportParams) string {
	if params.Sheet.Range != "" {
		return params.Sheet.Range
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Sheet1"
	}

	if params.Upsert {
		return fmt.Sprintf("%s!A2", tab)
	}
	return fmt.Sprintf("%s!A1", tab)
}

func buildClearRange(tab string) string {
	if tab == "" {
		tab = "Sheet1"
	}
	return fmt.Sprintf("%s!A2:Z", tab)
}

func matchRows(matches []domain.MatchResult, exportedAt time.Time) [][]any {
	values := make([][]any, len(matches))
	for i, m := range matches {
		values[i] = []any{
			m.Job.ID,
			m.Job.Title,
			m.Job.Company,
			m.Job.Location,
			m.Job.URL,
			m.Score,
			strings.Join(m.Job.Skills, ", "),
			exportedAt.Format(time.RFC3339),
		}
	}
	return values
}
