// Package matching implements the skill-to-job matching and ranking engine.
package matching

// Field names attached to a MatchResult on top of the job posting fields.
const (
	FieldMatchScore         = "match_score"
	FieldMatchedSkillsCount = "matched_skills_count"
)

// JobPosting is a loosely typed job record. Sources store jobs with varying
// shapes (skills as a list or a comma-delimited string, arbitrary extra
// fields such as salary or URL), so the engine treats a posting as a map and
// normalizes the skills field at the scoring boundary. Extra fields pass
// through to results unchanged.
type JobPosting map[string]any

// MatchResult is a shallow copy of a JobPosting's fields plus the computed
// match_score (0-100, two decimals) and matched_skills_count attributes.
type MatchResult map[string]any

// MatchScore returns the computed match score for this result.
func (r MatchResult) MatchScore() float64 {
	score, _ := r[FieldMatchScore].(float64)
	return score
}

// MatchedSkillsCount returns the number of candidate skills that matched.
func (r MatchResult) MatchedSkillsCount() int {
	count, _ := r[FieldMatchedSkillsCount].(int)
	return count
}

// JobScore holds the aggregate score computed for a single job posting.
type JobScore struct {
	Score        float64
	MatchedCount int
}
