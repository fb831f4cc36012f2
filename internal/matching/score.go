package matching

import (
	"fmt"
	"math"
	"strings"
)

// ScoreJob computes the aggregate match score for a single job posting
// against the candidate's skill list. The second return value reports whether
// the job is scorable at all: jobs with an empty, missing, or unparseable
// skill list, and jobs where no candidate skill survives the similarity
// threshold, are skipped rather than scored zero.
//
// Each candidate skill contributes its best similarity against any single job
// skill (a max, not an average, so duplicate job skills cannot inflate the
// score). The final score divides by the total number of candidate skills
// supplied, not the matched count: a candidate with many skills and few
// strong matches cannot reach 100%.
func ScoreJob(candidateSkills []string, job JobPosting) (JobScore, bool) {
	jobSkills := jobSkillList(job)
	if len(jobSkills) == 0 {
		return JobScore{}, false
	}

	totalSimilarity := 0.0
	matchedCount := 0
	for _, skill := range candidateSkills {
		best := 0.0
		for _, jobSkill := range jobSkills {
			if sim := Similarity(skill, jobSkill); sim > best {
				best = sim
			}
		}
		if best > 0 {
			totalSimilarity += best
			matchedCount++
		}
	}

	if matchedCount == 0 {
		return JobScore{}, false
	}

	score := round2(totalSimilarity / float64(len(candidateSkills)) * 100)
	return JobScore{Score: score, MatchedCount: matchedCount}, true
}

// jobSkillList normalizes the heterogeneous skills field of a posting into a
// flat list. Sources store skills as a native list, a list of arbitrary
// values, or a single comma-delimited string; nothing past this boundary
// sees that heterogeneity. Returns nil when the field is absent or yields no
// usable entries.
func jobSkillList(job JobPosting) []string {
	raw, ok := job["skills"]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return trimNonEmpty(v)
	case string:
		return trimNonEmpty(strings.Split(v, ","))
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if entry == nil {
				continue
			}
			s, ok := entry.(string)
			if !ok {
				s = fmt.Sprint(entry)
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// round2 rounds to two decimal places, matching the precision of the
// reported percentage scores.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
