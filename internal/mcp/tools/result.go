package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// JobSummary is the response-friendly posting view shared by the job tools.
type JobSummary struct {
	ID       string   `json:"id" jsonschema:"Posting identifier"`
	Title    string   `json:"title" jsonschema:"Posting title"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	URL      string   `json:"url,omitempty"`
	Skills   []string `json:"skills" jsonschema:"Required skills as listed by the posting"`
}

// MatchSummary is a JobSummary plus its match score.
type MatchSummary struct {
	JobSummary
	Score int `json:"match_score" jsonschema:"Count of skills shared with the candidate"`
}

func summarize(p domain.JobPosting) JobSummary {
	return JobSummary{
		ID:       p.ID,
		Title:    p.Title,
		Company:  p.Company,
		Location: p.Location,
		URL:      p.URL,
		Skills:   p.Skills,
	}
}

func summarizeMatches(matches []domain.MatchResult) []MatchSummary {
	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchSummary{
			JobSummary: summarize(m.Job),
			Score:      m.Score,
		})
	}
	return out
}
