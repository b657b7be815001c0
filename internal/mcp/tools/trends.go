package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/domain/trends"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// TrendAnalyzerParams defines the arguments for the trend_analyzer tool.
type TrendAnalyzerParams struct {
	Query string `json:"query" jsonschema:"Job title substring selecting the postings to analyze"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"How many trending skills to return; defaults to 10"`
}

// TrendAnalyzerResult is the trend table for the selected postings.
type TrendAnalyzerResult struct {
	Skills []domain.SkillCount `json:"skills" jsonschema:"Skills ordered by frequency, first-seen order breaking ties"`
}

type trendAnalyzerTool struct {
	store  JobFinder
	logger *logging.Logger
}

// WithTrendAnalyzer registers the trend_analyzer tool.
func WithTrendAnalyzer(store JobFinder) Option {
	return func(reg *registry) {
		handler := trendAnalyzerTool{store: store, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "trend_analyzer",
			Description: "Report the most frequent skills across postings matching a query",
		}, handler.handle)
	}
}

func (t trendAnalyzerTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *TrendAnalyzerParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &TrendAnalyzerParams{}
	}
	if params.TopK < 0 {
		return nil, nil, fmt.Errorf("top_k must be >= 0, got %d", params.TopK)
	}

	topK := params.TopK
	if topK == 0 {
		topK = trends.DefaultTopK
	}

	if t.store == nil {
		return nil, nil, fmt.Errorf("job store not configured")
	}

	jobs, err := t.store.Find(ctx, params.Query)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("trend_analyzer failed", "err", err, "query", params.Query)
		}
		return nil, nil, fmt.Errorf("trend analysis failed: %w", err)
	}

	result := TrendAnalyzerResult{Skills: trends.TopSkills(jobs, topK)}

	if t.logger != nil {
		t.logger.Info("trend_analyzer completed",
			"query", params.Query,
			"jobs_count", len(jobs),
			"skills_count", len(result.Skills),
		)
	}

	msg := fmt.Sprintf("[trend_analyzer] top %d skill(s) across %d posting(s)", len(result.Skills), len(jobs))
	return textResult(msg), result, nil
}
