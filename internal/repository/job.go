package repository

import (
	"context"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// JobRepository persists and loads postings from storage.
type JobRepository interface {
	// UpsertPostings creates or updates postings keyed by Source + ExternalID.
	UpsertPostings(ctx context.Context, postings []domain.JobPosting) error

	// AllPostings loads the stored dataset in a deterministic order.
	AllPostings(ctx context.Context) ([]domain.JobPosting, error)
}
