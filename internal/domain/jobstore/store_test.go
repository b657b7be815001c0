package jobstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/honeycarbs/careerscout/internal/domain"
)

type staticSource struct {
	postings []domain.JobPosting
	err      error
}

func (s staticSource) Postings(ctx context.Context) ([]domain.JobPosting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.postings, nil
}

func testPostings() []domain.JobPosting {
	return []domain.JobPosting{
		{ID: "1", Title: "Backend Engineer", Skills: []string{"Python", "SQL", "Docker"}},
		{ID: "2", Title: "ML Engineer", Skills: []string{"Python", "TensorFlow"}},
		{ID: "3", Title: "Frontend Developer", Skills: []string{"JavaScript", "React"}},
	}
}

func titles(jobs []domain.JobPosting) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestFindMatchesTitleSubstringCaseInsensitively(t *testing.T) {
	store, err := New(staticSource{postings: testPostings()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := store.Find(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{"Backend Engineer", "ML Engineer"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("expected %v, got %v", want, titles(got))
	}
}

func TestFindEmptyQueryMatchesAll(t *testing.T) {
	store, err := New(staticSource{postings: testPostings()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := store.Find(context.Background(), "")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected every posting for empty query, got %d", len(got))
	}
}

func TestFindNoMatchReturnsEmpty(t *testing.T) {
	store, err := New(staticSource{postings: testPostings()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := store.Find(context.Background(), "Nonexistent Title")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected no postings, got %v", titles(got))
	}
}

func TestFindPreservesSourceOrder(t *testing.T) {
	store, err := New(staticSource{postings: testPostings()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := store.Find(context.Background(), "e")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{"Backend Engineer", "ML Engineer", "Frontend Developer"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("expected source order %v, got %v", want, titles(got))
	}
}

func TestFindPropagatesSourceError(t *testing.T) {
	srcErr := &domain.DataSourceError{Source: "test", Err: errors.New("boom")}
	store, err := New(staticSource{err: srcErr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = store.Find(context.Background(), "engineer")
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected source error passed through, got %v", err)
	}
}
