// Command research runs the pipeline once against the local dataset and
// prints the result, without starting the MCP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/honeycarbs/careerscout/internal/domain/jobstore"
	"github.com/honeycarbs/careerscout/internal/domain/research"
	filestore "github.com/honeycarbs/careerscout/internal/storage/file"
)

func main() {
	var (
		dataPath = flag.String("data", "data/jobs_data.json", "path to the jobs dataset")
		query    = flag.String("query", "", "job title query; empty matches all postings")
		skills   = flag.String("skills", "", "comma-separated candidate skills")
		topK     = flag.Int("top", 10, "how many trending skills to report")
	)
	flag.Parse()

	store, err := jobstore.New(filestore.NewSource(*dataPath))
	if err != nil {
		log.Fatalf("job store: %v", err)
	}

	pipeline, err := research.New(
		research.WithStore(store),
		research.WithTopK(*topK),
	)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	candidate := splitSkills(*skills)

	result, err := pipeline.Run(context.Background(), *query, candidate)
	if err != nil {
		log.Fatalf("research: %v", err)
	}

	fmt.Println("Trending Skills:")
	for _, s := range result.Trending {
		fmt.Printf("  %-20s %d\n", s.Skill, s.Count)
	}

	fmt.Println("\nMatched Jobs:")
	if len(result.Matches) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, m := range result.Matches {
		fmt.Printf("  [%d] %s @ %s (%s)\n", m.Score, m.Job.Title, m.Job.Company, strings.Join(m.Job.Skills, ", "))
	}
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
