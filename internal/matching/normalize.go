package matching

import "strings"

// NormalizeSkill canonicalizes a skill string for comparison: lower-case and
// trim surrounding whitespace. No stemming or punctuation stripping; two
// skill strings name the same skill exactly when their normalized forms are
// identical.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
