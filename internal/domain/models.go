package domain

import "time"

// JobPosting is a normalized job record. Postings are immutable once loaded;
// sources hand out copies so a cached posting is never mutated by callers.
type JobPosting struct {
	ID          string
	Title       string
	Company     string
	Location    string
	URL         string
	Description string
	Skills      []string

	// Provenance for postings imported from an external board.
	Source     string
	ExternalID string
	PostedAt   time.Time
	FetchedAt  time.Time
}

// Clone returns a deep copy of the posting.
func (p JobPosting) Clone() JobPosting {
	out := p
	if p.Skills != nil {
		out.Skills = append([]string(nil), p.Skills...)
	}
	return out
}

// SkillCount is one row of a trend table: a skill and how many postings require it.
// Skill keeps the casing it was first seen with.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// MatchResult pairs a posting with its match score against a candidate skill set.
// Score is the size of the case-insensitive intersection of the two skill sets.
type MatchResult struct {
	Job   JobPosting
	Score int
}

// ResearchResult wraps one research pipeline invocation.
type ResearchResult struct {
	Trending    []SkillCount
	Matches     []MatchResult
	GeneratedAt time.Time
}

// SearchFilters describe the optional filters accepted by external job providers.
type SearchFilters struct {
	Location string
	Remote   *bool
}

// ImportResult summarizes a collector import run.
type ImportResult struct {
	Imported    int
	SourceCount int
	FetchedAt   time.Time
}
