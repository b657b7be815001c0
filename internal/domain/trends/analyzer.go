// Package trends aggregates skill frequency across a job collection.
package trends

import (
	"sort"
	"strings"

	"github.com/honeycarbs/careerscout/internal/domain"
)

// DefaultTopK bounds the trend table when the caller does not say otherwise.
const DefaultTopK = 10

// TopSkills counts how often each skill appears across jobs and returns the k
// most frequent as (skill, count) pairs, most frequent first. Skills are
// folded case-insensitively; the casing a skill was first seen with is kept
// as its display name. Ties in count keep first-seen order, scanning jobs in
// input order and each job's skill list in order. k <= 0 yields an empty
// table. Pure function: no I/O, deterministic for identical input.
func TopSkills(jobs []domain.JobPosting, k int) []domain.SkillCount {
	if k <= 0 {
		return []domain.SkillCount{}
	}

	index := make(map[string]int)
	table := make([]domain.SkillCount, 0)

	for _, job := range jobs {
		for _, skill := range job.Skills {
			key := strings.ToLower(skill)
			if i, ok := index[key]; ok {
				table[i].Count++
				continue
			}
			index[key] = len(table)
			table = append(table, domain.SkillCount{Skill: skill, Count: 1})
		}
	}

	// Stable keeps first-seen order within equal counts.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if len(table) > k {
		table = table[:k]
	}

	return table
}
