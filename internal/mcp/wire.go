//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/careerscout/internal/config"
	"github.com/honeycarbs/careerscout/internal/domain/jobstore"
	"github.com/honeycarbs/careerscout/internal/domain/research"
	"github.com/honeycarbs/careerscout/internal/repository"
	storage "github.com/honeycarbs/careerscout/internal/storage/neo4j"
)

// InitializeResources wires the graph-backed resource set: Neo4j storage,
// pipelines reading from the graph, and the optional Adzuna collector. The
// returned cleanup closes the Neo4j driver.
func InitializeResources(ctx context.Context, cfg config.Config) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jClient,

		// Storage
		storage.NewJobRepository,
		wire.Bind(new(repository.JobRepository), new(*storage.JobRepository)),
		wire.Bind(new(jobstore.Source), new(*storage.JobRepository)),

		// Services
		jobstore.New,
		wire.Bind(new(research.Finder), new(*jobstore.Store)),
		research.NewWithDeps,
		provideCollector,

		// Tool resources
		provideSheetsClient,
		newResources,
	)

	return &Resources{}, nil, nil
}
