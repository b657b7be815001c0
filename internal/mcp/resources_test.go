package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/honeycarbs/careerscout/internal/config"
	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/pkg/logging"
)

type stubRepo struct{}

func (stubRepo) UpsertPostings(ctx context.Context, postings []domain.JobPosting) error {
	return nil
}

func (stubRepo) AllPostings(ctx context.Context) ([]domain.JobPosting, error) {
	return nil, nil
}

func TestProvideCollectorWithoutAdzunaCredentials(t *testing.T) {
	svc, err := provideCollector(config.Config{}, stubRepo{})
	if err != nil {
		t.Fatalf("provideCollector: %v", err)
	}
	if svc != nil {
		t.Fatal("expected no collector without Adzuna credentials")
	}
}

func TestProvideCollectorWithAdzunaCredentials(t *testing.T) {
	var cfg config.Config
	cfg.Adzuna.AppID = "id"
	cfg.Adzuna.AppKey = "key"

	svc, err := provideCollector(cfg, stubRepo{})
	if err != nil {
		t.Fatalf("provideCollector: %v", err)
	}
	if svc == nil {
		t.Fatal("expected a collector when Adzuna credentials are set")
	}
}

func writeDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jobs.json")
	data := `[{"id": 1, "title": "Backend Engineer", "skills": ["Go"]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestBuildResourcesFileMode(t *testing.T) {
	cfg := config.Config{
		JobSource:    config.SourceFile,
		JobsDataPath: writeDataset(t),
	}

	res, err := BuildResources(context.Background(), cfg, logging.New("error"))
	if err != nil {
		t.Fatalf("BuildResources: %v", err)
	}
	defer func() { _ = res.Close(context.Background()) }()

	if res.Store == nil || res.Research == nil {
		t.Fatal("expected store and pipeline to be built")
	}
	if res.Collector != nil {
		t.Fatal("file mode must not enable the collector")
	}

	jobs, err := res.Store.Find(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(jobs))
	}
}

func TestBuildResourcesGraphFallback(t *testing.T) {
	// An unusable Neo4j URI fails injection; the store must still come up on
	// the file dataset.
	cfg := config.Config{
		JobSource:    config.SourceGraph,
		JobsDataPath: writeDataset(t),
	}

	res, err := BuildResources(context.Background(), cfg, logging.New("error"))
	if err != nil {
		t.Fatalf("BuildResources: %v", err)
	}
	defer func() { _ = res.Close(context.Background()) }()

	jobs, err := res.Store.Find(context.Background(), "")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected the file dataset, got %d posting(s)", len(jobs))
	}
}
