// Package neo4j stores collected postings in a skill graph.
package neo4j

import (
	"context"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/careerscout/internal/domain"
	"github.com/honeycarbs/careerscout/internal/repository"
	pkgneo4j "github.com/honeycarbs/careerscout/pkg/neo4j"
)

var _ repository.JobRepository = (*JobRepository)(nil)

// JobRepository implements repository.JobRepository with Neo4j. Postings are
// Job nodes with REQUIRES edges to Skill nodes, keyed case-insensitively.
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client.
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

// UpsertPostings merges postings keyed by source + externalId.
func (r *JobRepository) UpsertPostings(ctx context.Context, postings []domain.JobPosting) error {
	if len(postings) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		UNWIND $postings AS posting
		MERGE (j:Job {source: posting.source, externalId: posting.externalId})
		SET j.id = posting.id,
		    j.title = posting.title,
		    j.company = posting.company,
		    j.location = posting.location,
		    j.url = posting.url,
		    j.description = posting.description,
		    j.postedAt = datetime({epochMillis: posting.postedAt}),
		    j.fetchedAt = datetime({epochMillis: posting.fetchedAt})
		WITH j, posting
		FOREACH (skill IN posting.skills |
			MERGE (s:Skill {key: skill.key})
			SET s.name = skill.name
			MERGE (j)-[:REQUIRES]->(s)
		)
	`

	data := make([]map[string]any, 0, len(postings))
	for _, p := range postings {
		skills := make([]map[string]any, 0, len(p.Skills))
		for _, s := range p.Skills {
			skills = append(skills, map[string]any{
				"key":  strings.ToLower(s),
				"name": s,
			})
		}

		data = append(data, map[string]any{
			"id":          p.ID,
			"title":       p.Title,
			"company":     p.Company,
			"location":    p.Location,
			"url":         p.URL,
			"description": p.Description,
			"source":      p.Source,
			"externalId":  p.ExternalID,
			"postedAt":    p.PostedAt.UnixMilli(),
			"fetchedAt":   p.FetchedAt.UnixMilli(),
			"skills":      skills,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"postings": data})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	return err
}

// AllPostings loads the stored dataset ordered by fetch time, then id, so
// repeated reads iterate in the same order.
func (r *JobRepository) AllPostings(ctx context.Context) ([]domain.JobPosting, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)
		OPTIONAL MATCH (j)-[:REQUIRES]->(s:Skill)
		WITH j, collect(s.name) AS skills
		RETURN j, skills
		ORDER BY j.fetchedAt, j.id
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		return records.Collect(ctx)
	})
	if err != nil {
		return nil, &domain.DataSourceError{Source: "neo4j", Err: err}
	}

	records, ok := result.([]*neo4j.Record)
	if !ok {
		return nil, nil
	}

	postings := make([]domain.JobPosting, 0, len(records))
	for _, record := range records {
		jobVal, ok := record.Get("j")
		if !ok {
			continue
		}
		jobNode, ok := jobVal.(neo4j.Node)
		if !ok {
			continue
		}

		props := jobNode.Props

		var skills []string
		if skillsVal, ok := record.Get("skills"); ok {
			if list, ok := skillsVal.([]any); ok {
				for _, v := range list {
					if name, ok := v.(string); ok {
						skills = append(skills, name)
					}
				}
			}
		}

		postings = append(postings, domain.JobPosting{
			ID:          stringProp(props, "id"),
			Title:       stringProp(props, "title"),
			Company:     stringProp(props, "company"),
			Location:    stringProp(props, "location"),
			URL:         stringProp(props, "url"),
			Description: stringProp(props, "description"),
			Skills:      skills,
			Source:      stringProp(props, "source"),
			ExternalID:  stringProp(props, "externalId"),
			PostedAt:    timeProp(props, "postedAt"),
			FetchedAt:   timeProp(props, "fetchedAt"),
		})
	}

	return postings, nil
}

// Postings adapts the repository to the jobstore.Source interface.
func (r *JobRepository) Postings(ctx context.Context) ([]domain.JobPosting, error) {
	return r.AllPostings(ctx)
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func timeProp(props map[string]any, key string) time.Time {
	switch v := props[key].(type) {
	case time.Time:
		return v
	case neo4j.LocalDateTime:
		return v.Time()
	}
	return time.Time{}
}
