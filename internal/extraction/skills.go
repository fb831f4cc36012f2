// Package extraction finds known technical skills in free resume text using
// keyword dictionary matching. It deliberately avoids ML models: a word
// boundary scan over a curated dictionary is deterministic and fast enough
// for request-time use.
package extraction

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultMaxSkills caps the number of skills returned when the caller does
// not say otherwise.
const DefaultMaxSkills = 15

// textNormalizer strips characters that break word-boundary matching while
// keeping the ones that appear inside skill names (dots, #, +).
var textNormalizer = regexp.MustCompile(`[^\w\s.#+]`)

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

var skillPatterns = sync.OnceValue(func() []skillPattern {
	patterns := make([]skillPattern, 0, len(knownSkills))
	for _, skill := range knownSkills {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		if err != nil {
			continue
		}
		patterns = append(patterns, skillPattern{name: skill, re: re})
	}
	return patterns
})

// ExtractSkills scans resume text for known technical skills and returns up
// to topN of them, ordered by occurrence count descending and then
// alphabetically. Short names (three characters or fewer) are upper-cased,
// longer ones title-cased per word. Empty text yields an empty list.
func ExtractSkills(text string, topN int) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := textNormalizer.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	matched := make([]string, 0, 32)
	for _, pattern := range skillPatterns() {
		occurrences := len(pattern.re.FindAllStringIndex(normalized, -1))
		if occurrences == 0 {
			continue
		}
		name := formatSkill(pattern.name)
		if _, seen := counts[name]; !seen {
			matched = append(matched, name)
		}
		counts[name] += occurrences
	}

	sort.Slice(matched, func(i, j int) bool {
		if counts[matched[i]] != counts[matched[j]] {
			return counts[matched[i]] > counts[matched[j]]
		}
		return matched[i] < matched[j]
	})

	if topN > 0 && len(matched) > topN {
		matched = matched[:topN]
	}
	return matched
}

// formatSkill presents a dictionary entry in display form: acronyms stay
// upper-case, multi-character names get each space-separated word
// capitalized.
func formatSkill(skill string) string {
	if len(skill) <= 3 {
		return strings.ToUpper(skill)
	}
	words := strings.Fields(skill)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
