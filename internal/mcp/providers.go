package mcp

import (
	"context"
	"time"

	"github.com/honeycarbs/careerscout/internal/config"
	"github.com/honeycarbs/careerscout/internal/domain/collect"
	adzunaprovider "github.com/honeycarbs/careerscout/internal/domain/collect/providers/adzuna"
	"github.com/honeycarbs/careerscout/internal/domain/jobstore"
	"github.com/honeycarbs/careerscout/internal/domain/research"
	"github.com/honeycarbs/careerscout/internal/mcp/tools"
	"github.com/honeycarbs/careerscout/internal/repository"
	"github.com/honeycarbs/careerscout/pkg/adzuna"
	n4j "github.com/honeycarbs/careerscout/pkg/neo4j"
)

// provideNeo4jClient connects to Neo4j and returns the client together with
// its cleanup function.
func provideNeo4jClient(cfg config.Config) (*n4j.Client, func(), error) {
	client, err := n4j.NewClient(n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	}

	return client, cleanup, nil
}

// provideCollector builds the board import service, or nil when Adzuna
// credentials are not configured. A nil collector leaves the job_import tool
// unregistered without failing the rest of the graph wiring.
func provideCollector(cfg config.Config, repo repository.JobRepository) (collect.Service, error) {
	if !cfg.HasAdzuna() {
		return nil, nil
	}

	client, err := adzuna.NewClient(adzuna.Config{
		AppID:   cfg.Adzuna.AppID,
		AppKey:  cfg.Adzuna.AppKey,
		Country: cfg.Adzuna.Country,
	})
	if err != nil {
		return nil, err
	}

	provider, err := adzunaprovider.NewProvider(client)
	if err != nil {
		return nil, err
	}

	return collect.NewServiceWithDeps(repo, []collect.Provider{provider})
}

// newResources creates the Resources struct.
func newResources(
	store *jobstore.Store,
	pipeline *research.Pipeline,
	collector collect.Service,
	sheets tools.SheetsClient,
) *Resources {
	return &Resources{
		Store:     store,
		Research:  pipeline,
		Collector: collector,
		Sheets:    sheets,
	}
}
