package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/honeycarbs/careerscout/internal/domain"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jobs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestPostingsLoadsValidDataset(t *testing.T) {
	path := writeDataset(t, `[
		{"id": 1, "title": "Backend Engineer", "company": "Acme", "skills": ["Python", "SQL"]},
		{"id": "job-2", "title": "ML Engineer", "skills": ["Python", "TensorFlow"]}
	]`)

	src := NewSource(path)
	got, err := src.Postings(context.Background())
	if err != nil {
		t.Fatalf("Postings: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
	if got[0].ID != "1" || got[0].Title != "Backend Engineer" || got[0].Company != "Acme" {
		t.Fatalf("unexpected first posting: %+v", got[0])
	}
	if got[1].ID != "job-2" {
		t.Fatalf("expected string id preserved, got %q", got[1].ID)
	}
	if want := []string{"Python", "SQL"}; !reflect.DeepEqual(got[0].Skills, want) {
		t.Fatalf("expected skills %v, got %v", want, got[0].Skills)
	}
}

func TestPostingsMissingFileIsDataSourceError(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := src.Postings(context.Background())

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestPostingsMalformedJSONIsDataSourceError(t *testing.T) {
	path := writeDataset(t, `{"not": "an array"`)

	src := NewSource(path)
	_, err := src.Postings(context.Background())

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestPostingsMissingTitleIsValidationError(t *testing.T) {
	path := writeDataset(t, `[
		{"id": "ok", "title": "Fine", "skills": []},
		{"id": "bad", "skills": ["Python"]}
	]`)

	src := NewSource(path)
	_, err := src.Postings(context.Background())

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.JobID != "bad" || vErr.Field != "title" {
		t.Fatalf("expected offending record named, got %+v", vErr)
	}
}

func TestPostingsMissingSkillsIsValidationError(t *testing.T) {
	path := writeDataset(t, `[{"id": "bad", "title": "No Skills"}]`)

	src := NewSource(path)
	_, err := src.Postings(context.Background())

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.JobID != "bad" || vErr.Field != "skills" {
		t.Fatalf("expected offending record named, got %+v", vErr)
	}
}

func TestPostingsNonStringSkillIsValidationError(t *testing.T) {
	path := writeDataset(t, `[{"id": "bad", "title": "Mixed", "skills": ["Python", 42]}]`)

	src := NewSource(path)
	_, err := src.Postings(context.Background())

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.JobID != "bad" || vErr.Field != "skills" {
		t.Fatalf("expected offending record named, got %+v", vErr)
	}
}

func TestPostingsMissingIDIsValidationError(t *testing.T) {
	path := writeDataset(t, `[{"title": "Anonymous", "skills": []}]`)

	src := NewSource(path)
	_, err := src.Postings(context.Background())

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "id" {
		t.Fatalf("expected id field flagged, got %+v", vErr)
	}
}

func TestPostingsLoadsOnceAndServesCopies(t *testing.T) {
	path := writeDataset(t, `[{"id": "1", "title": "Backend Engineer", "skills": ["Python"]}]`)

	src := NewSource(path)
	first, err := src.Postings(context.Background())
	if err != nil {
		t.Fatalf("Postings: %v", err)
	}

	// The dataset is cached after the first read; deleting the file must not
	// affect later calls.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove dataset: %v", err)
	}

	// Mutating a returned posting must not leak into the cache.
	first[0].Skills[0] = "MUTATED"

	second, err := src.Postings(context.Background())
	if err != nil {
		t.Fatalf("Postings after remove: %v", err)
	}
	if second[0].Skills[0] != "Python" {
		t.Fatalf("cached posting was mutated: %v", second[0].Skills)
	}
}
