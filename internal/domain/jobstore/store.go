// Package jobstore filters the posting dataset by a free-text title query.
package jobstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// Source supplies the full posting dataset in a stable, deterministic order.
type Source interface {
	Postings(ctx context.Context) ([]domain.JobPosting, error)
}

// Store answers title queries against a Source.
type Store struct {
	source Source
}

// New builds a Store.
func New(source Source) (*Store, error) {
	if source == nil {
		return nil, fmt.Errorf("jobstore: source is required")
	}
	return &Store{source: source}, nil
}

// Find returns every posting whose title contains query, compared
// case-insensitively. The empty query matches all postings. Result order is
// the source's iteration order. A source failure is returned as-is, with no
// partial result.
func (s *Store) Find(ctx context.Context, query string) ([]domain.JobPosting, error) {
	postings, err := s.source.Postings(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	out := make([]domain.JobPosting, 0, len(postings))
	for _, p := range postings {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}

	return out, nil
}
