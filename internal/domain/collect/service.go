// Package collect imports postings from external job boards into storage.
package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/repository"
)

type Service interface {
	Import(ctx context.Context, query string, filters domain.SearchFilters) (domain.ImportResult, error)
}

// Option configures Service.
type Option func(*config)

type config struct {
	providers []Provider
	repo      repository.JobRepository
	clock     func() time.Time
}

// WithProviders sets job board providers.
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithRepository sets the posting repository.
func WithRepository(repo repository.JobRepository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithClock sets a custom clock.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options.
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("collect.Service: repository is required")
	}
	if len(cfg.providers) == 0 {
		return nil, fmt.Errorf("collect.Service: at least one provider is required")
	}

	return &service{
		providers: cfg.providers,
		repo:      cfg.repo,
		clock:     cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible).
func NewServiceWithDeps(repo repository.JobRepository, providers []Provider) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("collect.Service: repository is required")
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("collect.Service: at least one provider is required")
	}

	return &service{
		providers: providers,
		repo:      repo,
		clock:     time.Now,
	}, nil
}

type service struct {
	providers []Provider
	repo      repository.JobRepository
	clock     func() time.Time
}

// Import queries every provider, normalizes and dedups the postings, derives
// a skill list for any posting that came without one, and upserts the batch.
func (s *service) Import(
	ctx context.Context,
	query string,
	filters domain.SearchFilters,
) (domain.ImportResult, error) {
	now := s.clock()

	if query == "" {
		return domain.ImportResult{}, fmt.Errorf("query is required")
	}

	type key struct {
		source     string
		externalID string
	}
	dedup := make(map[key]domain.JobPosting)
	order := make([]key, 0)
	sourceCount := 0

	for _, p := range s.providers {
		postings, err := p.Search(ctx, query, filters)
		if err != nil {
			continue
		}
		if len(postings) > 0 {
			sourceCount++
		}

		for _, posting := range postings {
			if posting.Source == "" || posting.ExternalID == "" {
				continue
			}
			k := key{source: posting.Source, externalID: posting.ExternalID}

			if posting.ID == "" {
				posting.ID = uuid.NewString()
			}
			if posting.FetchedAt.IsZero() {
				posting.FetchedAt = now
			}
			if len(posting.Skills) == 0 {
				posting.Skills = ExtractSkills(posting.Title + "\n" + posting.Description)
			}

			if _, seen := dedup[k]; !seen {
				order = append(order, k)
			}
			dedup[k] = posting
		}
	}

	imported := make([]domain.JobPosting, 0, len(dedup))
	for _, k := range order {
		imported = append(imported, dedup[k])
	}

	if len(imported) > 0 {
		if err := s.repo.UpsertPostings(ctx, imported); err != nil {
			return domain.ImportResult{}, err
		}
	}

	return domain.ImportResult{
		Imported:    len(imported),
		SourceCount: sourceCount,
		FetchedAt:   now,
	}, nil
}
