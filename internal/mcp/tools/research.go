package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

// ResearchService runs the full research pipeline.
type ResearchService interface {
	Run(ctx context.Context, query string, candidateSkills []string) (domain.ResearchResult, error)
}

// CareerResearchParams defines the arguments for the career_research tool.
type CareerResearchParams struct {
	Query  string   `json:"query" jsonschema:"Job title substring to search for; empty matches every posting"`
	Skills []string `json:"skills,omitempty" jsonschema:"Candidate skill list to rank postings against"`
}

// CareerResearchResult is the structured response of career_research.
type CareerResearchResult struct {
	Trending    []domain.SkillCount `json:"trending_skills" jsonschema:"Most frequent skills among the matched postings"`
	Matches     []MatchSummary      `json:"matched_jobs" jsonschema:"Postings ranked by skill overlap, zero-score postings excluded"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type careerResearchTool struct {
	service ResearchService
	logger  *logging.Logger
}

// WithCareerResearch registers the career_research tool.
func WithCareerResearch(service ResearchService) Option {
	return func(reg *registry) {
		handler := careerResearchTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "career_research",
			Description: "Collect postings for a query, report trending skills, and rank matches against candidate skills",
		}, handler.handle)
	}
}

func (t careerResearchTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *CareerResearchParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &CareerResearchParams{}
	}

	if t.logger != nil {
		t.logger.Info("career_research request",
			"query", params.Query,
			"skills_count", len(params.Skills),
		)
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("research pipeline not configured")
	}

	res, err := t.service.Run(ctx, params.Query, params.Skills)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("career_research failed", "err", err, "query", params.Query)
		}
		return nil, nil, fmt.Errorf("research failed: %w", err)
	}

	result := CareerResearchResult{
		Trending:    res.Trending,
		Matches:     summarizeMatches(res.Matches),
		GeneratedAt: res.GeneratedAt,
	}

	if t.logger != nil {
		t.logger.Info("career_research completed",
			"trending_count", len(result.Trending),
			"matches_count", len(result.Matches),
		)
	}

	msg := fmt.Sprintf("[career_research] %d trending skill(s), %d ranked match(es) for query %q",
		len(result.Trending), len(result.Matches), params.Query)
	return textResult(msg), result, nil
}
