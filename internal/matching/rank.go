package matching

import (
	"maps"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the collection size above which per-job scoring runs
// on a bounded worker pool. Scoring is O(candidate skills x job skills) per
// job and shares no state, so large collections parallelize cleanly; small
// ones are not worth the goroutine overhead.
const parallelThreshold = 64

// Rank scores every job in the collection against the candidate's skills,
// drops jobs with no threshold-surviving match, and returns the top N results
// sorted by match score descending. Ties preserve the relative order of the
// input collection. The input jobs are never mutated; each result wraps a
// shallow copy.
//
// An empty skill list, an empty collection, or topN <= 0 yields an empty
// (non-nil) result.
func Rank(candidateSkills []string, jobs []JobPosting, topN int) []MatchResult {
	if len(candidateSkills) == 0 || len(jobs) == 0 || topN <= 0 {
		return []MatchResult{}
	}

	type outcome struct {
		score JobScore
		ok    bool
	}
	outcomes := make([]outcome, len(jobs))

	if len(jobs) >= parallelThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range jobs {
			g.Go(func() error {
				score, ok := ScoreJob(candidateSkills, jobs[i])
				outcomes[i] = outcome{score: score, ok: ok}
				return nil
			})
		}
		// Workers write to disjoint slots and never fail.
		_ = g.Wait()
	} else {
		for i := range jobs {
			score, ok := ScoreJob(candidateSkills, jobs[i])
			outcomes[i] = outcome{score: score, ok: ok}
		}
	}

	results := make([]MatchResult, 0, len(jobs))
	for i, job := range jobs {
		if !outcomes[i].ok {
			continue
		}
		result := MatchResult(maps.Clone(map[string]any(job)))
		result[FieldMatchScore] = outcomes[i].score.Score
		result[FieldMatchedSkillsCount] = outcomes[i].score.MatchedCount
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore() > results[j].MatchScore()
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
