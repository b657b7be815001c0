package mcp

import (
	"context"

	"github.com/honeycarbs/careerscout/internal/config"
	"github.com/honeycarbs/careerscout/internal/domain/collect"
	"github.com/honeycarbs/careerscout/internal/domain/jobstore"
	"github.com/honeycarbs/careerscout/internal/domain/research"
	"github.com/honeycarbs/careerscout/internal/mcp/tools"
	filestore "github.com/honeycarbs/careerscout/internal/storage/file"
	"github.com/honeycarbs/careerscout/pkg/logging"
	sheetsclient "github.com/honeycarbs/careerscout/pkg/sheets"
)

// Resources holds everything the MCP tools depend on. Collector and Sheets
// are nil when their backing credentials are not configured; the dependent
// tools then stay unregistered.
type Resources struct {
	Store     *jobstore.Store
	Research  *research.Pipeline
	Collector collect.Service
	Sheets    tools.SheetsClient

	cleanup func()
}

// Close releases held infrastructure connections.
func (r *Resources) Close(context.Context) error {
	if r.cleanup != nil {
		r.cleanup()
	}
	return nil
}

// BuildResources assembles tool resources for the configured job source. The
// graph source wires the Neo4j stack with the Adzuna collector when its
// credentials are present; if the graph itself is unreachable, the store
// falls back to the static JSON dataset and the collector stays disabled.
func BuildResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	if cfg.JobSource == config.SourceGraph {
		res, cleanup, err := InitializeResources(ctx, cfg)
		if err == nil {
			res.cleanup = cleanup
			logger.Info("graph resources initialized",
				"neo4j_uri", cfg.Neo4j.URI,
				"collector_enabled", res.Collector != nil,
			)
			return res, nil
		}
		logger.Warn("graph resources unavailable, falling back to file dataset", "err", err)
	}

	return buildFileResources(ctx, cfg, logger)
}

func buildFileResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	store, err := jobstore.New(filestore.NewSource(cfg.JobsDataPath))
	if err != nil {
		return nil, err
	}

	pipeline, err := research.NewWithDeps(store)
	if err != nil {
		return nil, err
	}

	logger.Info("file job source initialized", "path", cfg.JobsDataPath)

	return &Resources{
		Store:    store,
		Research: pipeline,
		Sheets:   provideSheetsClient(ctx, cfg),
	}, nil
}

// provideSheetsClient builds the sheets exporter, or nil when credentials
// are not configured.
func provideSheetsClient(ctx context.Context, cfg config.Config) tools.SheetsClient {
	if cfg.Sheets.CredentialsPath == "" {
		return nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		return nil
	}

	return &sheetsClientAdapter{client: client}
}
