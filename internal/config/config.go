package config

import (
	"fmt"
	"os"
	"strings"
)

// Source selection for the job store.
const (
	SourceFile  = "file"
	SourceGraph = "graph"
)

// Config contains runtime settings for the MCP server.
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	JobSource    string // "file" (default) or "graph"
	JobsDataPath string // JSON dataset for the file source

	Adzuna struct {
		AppID   string
		AppKey  string
		Country string
	} // Adzuna API credentials, optional

	Neo4j struct {
		URI      string
		Username string
		Password string
	} // required only for the graph source / collector

	Sheets struct {
		CredentialsPath string
	} // Google Sheets export, optional
}

// Load populates config from environment variables. Adzuna, Neo4j, and
// Sheets settings are optional; tools that need them stay unregistered when
// they are absent. The graph source does require Neo4j.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:     "info",
		Host:         "0.0.0.0",
		Port:         "8080",
		JobSource:    SourceFile,
		JobsDataPath: "data/jobs_data.json",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("JOB_SOURCE"); v != "" {
		cfg.JobSource = strings.ToLower(v)
	}

	if v := os.Getenv("JOBS_DATA_PATH"); v != "" {
		cfg.JobsDataPath = v
	}

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	if v := os.Getenv("ADZUNA_COUNTRY"); v != "" {
		cfg.Adzuna.Country = v
	} else {
		cfg.Adzuna.Country = "us"
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	switch cfg.JobSource {
	case SourceFile, SourceGraph:
	default:
		return cfg, fmt.Errorf("JOB_SOURCE must be %q or %q, got %q", SourceFile, SourceGraph, cfg.JobSource)
	}

	if cfg.JobSource == SourceGraph && !cfg.HasNeo4j() {
		var missing []string
		if cfg.Neo4j.URI == "" {
			missing = append(missing, "NEO4J_URI")
		}
		if cfg.Neo4j.Username == "" {
			missing = append(missing, "NEO4J_USERNAME")
		}
		if cfg.Neo4j.Password == "" {
			missing = append(missing, "NEO4J_PASSWORD")
		}
		return cfg, fmt.Errorf("graph job source requires: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// HasNeo4j reports whether the Neo4j connection is fully configured.
func (c Config) HasNeo4j() bool {
	return c.Neo4j.URI != "" && c.Neo4j.Username != "" && c.Neo4j.Password != ""
}

// HasAdzuna reports whether Adzuna credentials are present.
func (c Config) HasAdzuna() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}
