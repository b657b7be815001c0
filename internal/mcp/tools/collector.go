package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// JobFinder answers title queries against the posting dataset.
type JobFinder interface {
	Find(ctx context.Context, query string) ([]domain.JobPosting, error)
}

// JobCollectorParams defines the arguments for the job_collector tool.
type JobCollectorParams struct {
	Query string `json:"query" jsonschema:"Job title substring to search for; empty matches every posting"`
}

// JobCollectorResult lists the postings matching a query.
type JobCollectorResult struct {
	Jobs []JobSummary `json:"jobs"`
}

type jobCollectorTool struct {
	store  JobFinder
	logger *logging.Logger
}

// WithJobCollector registers the job_collector tool.
func WithJobCollector(store JobFinder) Option {
	return func(reg *registry) {
		handler := jobCollectorTool{store: store, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_collector",
			Description: "Collect job postings from the local dataset by title query",
		}, handler.handle)
	}
}

func (t jobCollectorTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobCollectorParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobCollectorParams{}
	}

	if t.store == nil {
		return nil, nil, fmt.Errorf("job store not configured")
	}

	jobs, err := t.store.Find(ctx, params.Query)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("job_collector failed", "err", err, "query", params.Query)
		}
		return nil, nil, fmt.Errorf("collect failed: %w", err)
	}

	result := JobCollectorResult{Jobs: make([]JobSummary, 0, len(jobs))}
	for _, job := range jobs {
		result.Jobs = append(result.Jobs, summarize(job))
	}

	if t.logger != nil {
		t.logger.Info("job_collector completed", "query", params.Query, "jobs_count", len(result.Jobs))
	}

	msg := fmt.Sprintf("[job_collector] %d posting(s) match query %q", len(result.Jobs), params.Query)
	return textResult(msg), result, nil
}
