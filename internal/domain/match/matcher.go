// Package match ranks job postings by overlap with a candidate skill set.
package match

import (
	"sort"
	"strings"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// Rank scores every job by the size of the case-insensitive intersection of
// its skill set with candidateSkills and returns the positive-score jobs,
// highest score first. Zero-score jobs are excluded entirely, so the result
// cardinality depends on the candidate. The sort is stable: jobs with equal
// scores keep their relative input order. Scores are recomputed per call and
// never cached across candidate sets.
func Rank(jobs []domain.JobPosting, candidateSkills []string) []domain.MatchResult {
	candidate := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		candidate[strings.ToLower(s)] = struct{}{}
	}

	matches := make([]domain.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		score := intersection(job.Skills, candidate)
		if score == 0 {
			continue
		}
		matches = append(matches, domain.MatchResult{Job: job, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// intersection counts distinct job skills present in the candidate set.
// Duplicate skills within one posting count once.
func intersection(jobSkills []string, candidate map[string]struct{}) int {
	seen := make(map[string]struct{}, len(jobSkills))
	score := 0
	for _, s := range jobSkills {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := candidate[key]; ok {
			score++
		}
	}
	return score
}
