package collect

import (
	"context"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// Provider represents an external job board (Adzuna, a mock API, etc.).
type Provider interface {
	// e.g. "adzuna"
	Name() string

	// Search returns normalized postings for a query. Providers may leave
	// Skills empty and carry the raw Description instead; the import service
	// then derives skills from title plus description.
	Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.JobPosting, error)
}
