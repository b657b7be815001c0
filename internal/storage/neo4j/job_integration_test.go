package neo4j

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/honeycarbs/careerscout/internal/domain"
	pkgneo4j "github.com/honeycarbs/careerscout/pkg/neo4j"
)

func newTestRepository(t *testing.T) *JobRepository {
	t.Helper()

	uri := os.Getenv("NEO4J_URI")
	username := os.Getenv("NEO4J_USERNAME")
	password := os.Getenv("NEO4J_PASSWORD")

	if uri == "" || username == "" || password == "" {
		t.Skip("NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD must be set to run this test")
	}

	client, err := pkgneo4j.NewClient(pkgneo4j.Config{
		URI:      uri,
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	})

	return NewJobRepository(client)
}

func TestUpsertAndReadPostingsIntegration(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fetched := time.Now().UTC().Truncate(time.Millisecond)
	batch := []domain.JobPosting{
		{
			ID:          "it-1",
			Title:       "Integration Backend Engineer",
			Company:     "TestCo",
			Location:    "Remote",
			URL:         "https://example.com/it-1",
			Description: "Build and run Go services.",
			Skills:      []string{"Go", "Docker"},
			Source:      "integration-test",
			ExternalID:  "it-1",
			FetchedAt:   fetched,
		},
		{
			ID:         "it-2",
			Title:      "Integration Data Engineer",
			Company:    "TestCo",
			Skills:     []string{"Python", "SQL"},
			Source:     "integration-test",
			ExternalID: "it-2",
			FetchedAt:  fetched.Add(time.Second),
		},
	}

	if err := repo.UpsertPostings(ctx, batch); err != nil {
		t.Fatalf("UpsertPostings: %v", err)
	}

	// Upserting the same batch again must not duplicate nodes.
	if err := repo.UpsertPostings(ctx, batch); err != nil {
		t.Fatalf("UpsertPostings (repeat): %v", err)
	}

	all, err := repo.AllPostings(ctx)
	if err != nil {
		t.Fatalf("AllPostings: %v", err)
	}

	found := make(map[string]domain.JobPosting)
	for _, p := range all {
		if p.Source == "integration-test" {
			found[p.ExternalID] = p
		}
	}

	if len(found) != 2 {
		t.Fatalf("expected 2 test postings, got %d", len(found))
	}

	first, ok := found["it-1"]
	if !ok {
		t.Fatal("posting it-1 not found")
	}
	if first.Title != "Integration Backend Engineer" || first.Company != "TestCo" {
		t.Fatalf("unexpected posting: %+v", first)
	}
	if first.Description != "Build and run Go services." {
		t.Fatalf("description did not round-trip: %q", first.Description)
	}
	if len(first.Skills) != 2 {
		t.Fatalf("expected 2 skills on it-1, got %v", first.Skills)
	}
}
