package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "MCP_HOST", "PORT", "JOB_SOURCE", "JOBS_DATA_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Fatalf("unexpected listen defaults: %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.JobSource != SourceFile {
		t.Fatalf("expected file source by default, got %q", cfg.JobSource)
	}
	if cfg.JobsDataPath != "data/jobs_data.json" {
		t.Fatalf("unexpected default dataset path %q", cfg.JobsDataPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("JOBS_DATA_PATH", "/tmp/jobs.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.Port != "9090" || cfg.JobsDataPath != "/tmp/jobs.json" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("JOB_SOURCE", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown JOB_SOURCE")
	}
}

func TestLoadGraphSourceRequiresNeo4j(t *testing.T) {
	t.Setenv("JOB_SOURCE", "graph")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when graph source lacks Neo4j settings")
	}

	t.Setenv("NEO4J_URI", "bolt://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JobSource != SourceGraph || !cfg.HasNeo4j() {
		t.Fatalf("graph config not recognized: %+v", cfg)
	}
}

func TestHasAdzuna(t *testing.T) {
	var cfg Config
	if cfg.HasAdzuna() {
		t.Fatal("empty config should not report Adzuna credentials")
	}

	cfg.Adzuna.AppID = "id"
	cfg.Adzuna.AppKey = "key"
	if !cfg.HasAdzuna() {
		t.Fatal("expected Adzuna credentials to be detected")
	}
}
