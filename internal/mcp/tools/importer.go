package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/domain/collect"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// JobImportParams defines the arguments for the job_import tool.
type JobImportParams struct {
	Query    string `json:"query" jsonschema:"Search query sent to the external job boards"`
	Location string `json:"location,omitempty" jsonschema:"Preferred location filter"`
	Remote   *bool  `json:"remote,omitempty" jsonschema:"Whether to restrict to remote postings"`
}

// JobImportResult summarizes the import run.
type JobImportResult struct {
	Imported    int    `json:"imported" jsonschema:"Number of postings upserted"`
	SourceCount int    `json:"source_count" jsonschema:"How many boards returned results"`
	Message     string `json:"message,omitempty"`
}

type jobImportTool struct {
	service collect.Service
	logger  *logging.Logger
}

// WithJobImport registers the job_import tool.
func WithJobImport(service collect.Service) Option {
	return func(reg *registry) {
		handler := jobImportTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_import",
			Description: "Import postings from external job boards into the skill graph",
		}, handler.handle)
	}
}

func (t jobImportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobImportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Query == "" {
		return nil, nil, fmt.Errorf("query is required")
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("collector not configured")
	}

	filters := domain.SearchFilters{
		Location: params.Location,
		Remote:   params.Remote,
	}

	res, err := t.service.Import(ctx, params.Query, filters)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("job_import failed", "err", err, "query", params.Query)
		}
		return nil, nil, fmt.Errorf("import failed: %w", err)
	}

	result := JobImportResult{
		Imported:    res.Imported,
		SourceCount: res.SourceCount,
		Message:     fmt.Sprintf("imported %d posting(s) from %d source(s)", res.Imported, res.SourceCount),
	}

	if t.logger != nil {
		t.logger.Info("job_import completed",
			"query", params.Query,
			"imported", res.Imported,
			"sources", res.SourceCount,
		)
	}

	return textResult("[job_import] " + result.Message), result, nil
}
