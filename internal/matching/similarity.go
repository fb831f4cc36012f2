package matching

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarityThreshold is the floor below which a pair of skills is treated
// as a non-match. The cliff is intentional: a ratio of 0.61 and a ratio of
// 0.99 both count as "matched" for the matched-skill count, while the raw
// ratio still weights the aggregate score.
const similarityThreshold = 0.6

// Similarity computes a [0,1] similarity between two skill strings.
//
// Both inputs are normalized first. Identical normalized strings short-circuit
// to 1.0. Otherwise the score is the Ratcliff/Obershelp matching-blocks ratio
// over the character sequences, the same ratio Python's
// difflib.SequenceMatcher produces; thresholds downstream are tuned to it.
// Ratios at or below the threshold are reported as 0.0.
func Similarity(a, b string) float64 {
	an := NormalizeSkill(a)
	bn := NormalizeSkill(b)

	if an == bn {
		return 1.0
	}

	ratio := difflib.NewMatcher(splitChars(an), splitChars(bn)).Ratio()
	if ratio <= similarityThreshold {
		return 0.0
	}
	return ratio
}

// splitChars breaks a string into per-rune elements for the sequence matcher.
func splitChars(s string) []string {
	return strings.Split(s, "")
}
