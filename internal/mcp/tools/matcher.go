package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain/match"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// JobMatcherParams defines the arguments for the job_matcher tool.
type JobMatcherParams struct {
	Query  string   `json:"query" jsonschema:"Job title substring selecting the postings to rank"`
	Skills []string `json:"skills" jsonschema:"Candidate skill list"`
}

// JobMatcherResult is the ranked match list.
type JobMatcherResult struct {
	Matches []MatchSummary `json:"matches" jsonschema:"Postings sharing at least one skill, highest score first"`
}

type jobMatcherTool struct {
	store  JobFinder
	logger *logging.Logger
}

// WithJobMatcher registers the job_matcher tool.
func WithJobMatcher(store JobFinder) Option {
	return func(reg *registry) {
		handler := jobMatcherTool{store: store, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_matcher",
			Description: "Rank postings matching a query by overlap with candidate skills",
		}, handler.handle)
	}
}

func (t jobMatcherTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobMatcherParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobMatcherParams{}
	}

	if t.store == nil {
		return nil, nil, fmt.Errorf("job store not configured")
	}

	jobs, err := t.store.Find(ctx, params.Query)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("job_matcher failed", "err", err, "query", params.Query)
		}
		return nil, nil, fmt.Errorf("match failed: %w", err)
	}

	result := JobMatcherResult{Matches: summarizeMatches(match.Rank(jobs, params.Skills))}

	if t.logger != nil {
		t.logger.Info("job_matcher completed",
			"query", params.Query,
			"jobs_count", len(jobs),
			"matches_count", len(result.Matches),
		)
	}

	msg := fmt.Sprintf("[job_matcher] %d of %d posting(s) share skills with the candidate", len(result.Matches), len(jobs))
	return textResult(msg), result, nil
}
