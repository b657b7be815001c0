package adzuna

import (
	"context"
	"fmt"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/domain/collect"
	"github.com/honeycarbs/careerscout/pkg/adzuna"
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Posting, error)
}

// Provider implements collect.Provider using the Adzuna API.
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider.
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "adzuna"
}

// Search queries Adzuna and returns normalized postings. Adzuna does not
// expose a structured skill list; the raw description is carried on the
// posting so the collector can derive one from title plus description.
func (p *Provider) Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.JobPosting, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	params := adzuna.SearchParams{
		Location: filters.Location,
		Remote:   filters.Remote,
	}

	results, err := p.client.SearchJobs(ctx, query, params)
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobPosting, 0, len(results))
	for _, r := range results {
		out = append(out, domain.JobPosting{
			ID:          r.ID,
			Title:       r.Title,
			Company:     r.CompanyName,
			Location:    r.Location,
			URL:         r.URL,
			Description: r.Description,
			Source:      "adzuna",
			ExternalID:  r.ID,
			PostedAt:    r.PostedAt,
			FetchedAt:   r.FetchedAt,
		})
	}

	return out, nil
}

var _ collect.Provider = (*Provider)(nil)
