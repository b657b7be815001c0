package research

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/honeycarbs/careerscout/internal/domain"
)

type fakeStore struct {
	jobs []domain.JobPosting
	err  error

	gotQuery string
}

func (f *fakeStore) Find(ctx context.Context, query string) ([]domain.JobPosting, error) {
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when store is missing")
	}
}

func TestNewRejectsNegativeTopK(t *testing.T) {
	if _, err := New(WithStore(&fakeStore{}), WithTopK(-1)); err == nil {
		t.Fatal("expected error for negative top-k")
	}
}

func TestRunEngineerScenario(t *testing.T) {
	store := &fakeStore{jobs: []domain.JobPosting{
		{ID: "1", Title: "Backend Engineer", Skills: []string{"Python", "SQL", "Docker"}},
		{ID: "2", Title: "ML Engineer", Skills: []string{"Python", "TensorFlow"}},
	}}

	pipeline, err := New(WithStore(store), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := pipeline.Run(context.Background(), "Engineer", []string{"Python", "Docker"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if store.gotQuery != "Engineer" {
		t.Fatalf("expected query forwarded to store, got %q", store.gotQuery)
	}

	wantTrending := []domain.SkillCount{
		{Skill: "Python", Count: 2},
		{Skill: "SQL", Count: 1},
		{Skill: "Docker", Count: 1},
		{Skill: "TensorFlow", Count: 1},
	}
	if !reflect.DeepEqual(result.Trending, wantTrending) {
		t.Fatalf("expected trending %v, got %v", wantTrending, result.Trending)
	}

	if len(result.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(result.Matches))
	}
	if result.Matches[0].Job.ID != "1" || result.Matches[0].Score != 2 {
		t.Fatalf("expected job 1 with score 2 first, got %s/%d", result.Matches[0].Job.ID, result.Matches[0].Score)
	}
	if result.Matches[1].Job.ID != "2" || result.Matches[1].Score != 1 {
		t.Fatalf("expected job 2 with score 1 second, got %s/%d", result.Matches[1].Job.ID, result.Matches[1].Score)
	}

	if !result.GeneratedAt.Equal(fixedClock()) {
		t.Fatalf("expected generated-at from clock, got %v", result.GeneratedAt)
	}
}

func TestRunNoMatchesYieldsEmptySections(t *testing.T) {
	pipeline, err := New(WithStore(&fakeStore{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := pipeline.Run(context.Background(), "Nonexistent Title", []string{"Python"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Trending) != 0 || len(result.Matches) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestRunPropagatesStoreError(t *testing.T) {
	srcErr := &domain.DataSourceError{Source: "test", Err: errors.New("unreadable")}
	pipeline, err := New(WithStore(&fakeStore{err: srcErr}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = pipeline.Run(context.Background(), "Engineer", nil)

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestRunHonorsTopK(t *testing.T) {
	store := &fakeStore{jobs: []domain.JobPosting{
		{ID: "1", Title: "A", Skills: []string{"Python", "SQL", "Docker", "Go"}},
	}}

	pipeline, err := New(WithStore(store), WithTopK(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := pipeline.Run(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Trending) != 2 {
		t.Fatalf("expected 2 trending skills, got %v", result.Trending)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store := &fakeStore{jobs: []domain.JobPosting{
		{ID: "1", Title: "Backend Engineer", Skills: []string{"Python", "SQL"}},
		{ID: "2", Title: "Data Engineer", Skills: []string{"Python", "Spark"}},
	}}

	pipeline, err := New(WithStore(store), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := pipeline.Run(context.Background(), "Engineer", []string{"python"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := pipeline.Run(context.Background(), "Engineer", []string{"python"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}
