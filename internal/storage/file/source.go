// Package file loads the static job posting dataset from a JSON file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// Source reads postings from a JSON file once per process and serves the
// parsed dataset read-only afterwards. Safe for concurrent callers: the load
// happens at most once and nothing writes past initialization.
type Source struct {
	path string

	once     sync.Once
	postings []domain.JobPosting
	err      error
}

// NewSource creates a Source for the given dataset path. The file is not
// touched until the first Postings call.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// rawPosting mirrors one dataset record before validation. Loose types let
// validation name the exact offending field instead of surfacing a decode
// error with no record context.
type rawPosting struct {
	ID          json.RawMessage `json:"id"`
	Title       *string         `json:"title"`
	Company     string          `json:"company"`
	Location    string          `json:"location"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Skills      []any           `json:"skills"`
}

// Postings returns the full dataset in file order.
func (s *Source) Postings(ctx context.Context) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(func() {
		s.postings, s.err = s.load()
	})
	if s.err != nil {
		return nil, s.err
	}

	// Copies keep the cached postings immutable.
	out := make([]domain.JobPosting, len(s.postings))
	for i, p := range s.postings {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *Source) load() ([]domain.JobPosting, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &domain.DataSourceError{Source: s.path, Err: err}
	}

	var raw []rawPosting
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.DataSourceError{Source: s.path, Err: fmt.Errorf("parse dataset: %w", err)}
	}

	postings := make([]domain.JobPosting, 0, len(raw))
	for i, r := range raw {
		p, err := validate(r, i)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	return postings, nil
}

func validate(r rawPosting, index int) (domain.JobPosting, error) {
	id, err := decodeID(r.ID, index)
	if err != nil {
		return domain.JobPosting{}, err
	}

	if r.Title == nil {
		return domain.JobPosting{}, &domain.ValidationError{
			JobID:  id,
			Field:  "title",
			Reason: "required field is missing",
		}
	}

	if r.Skills == nil {
		return domain.JobPosting{}, &domain.ValidationError{
			JobID:  id,
			Field:  "skills",
			Reason: "required field is missing",
		}
	}

	skills := make([]string, 0, len(r.Skills))
	for i, entry := range r.Skills {
		s, ok := entry.(string)
		if !ok {
			return domain.JobPosting{}, &domain.ValidationError{
				JobID:  id,
				Field:  "skills",
				Reason: fmt.Sprintf("entry %d is %T, want string", i, entry),
			}
		}
		skills = append(skills, s)
	}

	return domain.JobPosting{
		ID:          id,
		Title:       *r.Title,
		Company:     r.Company,
		Location:    r.Location,
		URL:         r.URL,
		Description: r.Description,
		Skills:      skills,
		Source:      "dataset",
	}, nil
}

// decodeID accepts a string or integer id and normalizes it to a string.
func decodeID(raw json.RawMessage, index int) (string, error) {
	placeholder := fmt.Sprintf("record[%d]", index)

	if len(raw) == 0 {
		return "", &domain.ValidationError{
			JobID:  placeholder,
			Field:  "id",
			Reason: "required field is missing",
		}
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return "", &domain.ValidationError{
				JobID:  placeholder,
				Field:  "id",
				Reason: "must not be empty",
			}
		}
		return asString, nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if _, err := asNumber.Int64(); err == nil {
			return asNumber.String(), nil
		}
	}

	return "", &domain.ValidationError{
		JobID:  placeholder,
		Field:  "id",
		Reason: "must be a string or an integer",
	}
}
