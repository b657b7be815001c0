// Package research composes the job store, trend analyzer, and skill matcher
// into one sequential pipeline.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/domain/match"
	"github.com/honeycarbs/careerscout/internal/domain/trends"
)

// Finder is the job store surface the pipeline depends on.
type Finder interface {
	Find(ctx context.Context, query string) ([]domain.JobPosting, error)
}

// Pipeline runs query -> find -> trend -> rank. No concurrency: the three
// steps are strictly sequential and the middle two are pure.
type Pipeline struct {
	store Finder
	topK  int
	clock func() time.Time
}

// Option configures Pipeline.
type Option func(*config)

type config struct {
	store Finder
	topK  int
	clock func() time.Time
}

// WithStore sets the job store.
func WithStore(store Finder) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithTopK sets how many trending skills to report.
func WithTopK(k int) Option {
	return func(c *config) {
		c.topK = k
	}
}

// WithClock sets a custom clock.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// New builds a Pipeline from options.
func New(opts ...Option) (*Pipeline, error) {
	cfg := &config{
		topK:  trends.DefaultTopK,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.store == nil {
		return nil, fmt.Errorf("research.Pipeline: job store is required")
	}
	if cfg.topK < 0 {
		return nil, fmt.Errorf("research.Pipeline: top-k must be >= 0, got %d", cfg.topK)
	}

	return &Pipeline{
		store: cfg.store,
		topK:  cfg.topK,
		clock: cfg.clock,
	}, nil
}

// NewWithDeps creates a Pipeline with direct dependencies (Wire-compatible).
func NewWithDeps(store Finder) (*Pipeline, error) {
	return New(WithStore(store))
}

// Run executes the pipeline: postings matching query, the trending skills
// among them, and the postings ranked against candidateSkills. A store
// failure aborts the whole call with that same error and no partial output.
// Trend and match results are built fresh on every call.
func (p *Pipeline) Run(ctx context.Context, query string, candidateSkills []string) (domain.ResearchResult, error) {
	jobs, err := p.store.Find(ctx, query)
	if err != nil {
		return domain.ResearchResult{}, err
	}

	return domain.ResearchResult{
		Trending:    trends.TopSkills(jobs, p.topK),
		Matches:     match.Rank(jobs, candidateSkills),
		GeneratedAt: p.clock().UTC(),
	}, nil
}
