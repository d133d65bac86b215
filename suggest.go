package choices

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// suggestThreshold is the minimum normalized similarity for a constant to be
// offered as a "did you mean" candidate.
const suggestThreshold = 0.5

// suggestion returns a " (did you mean %q?)" suffix for failed constant
// lookups, or the empty string when nothing is close enough.
func (c *Choices) suggestion(constant string) string {
	best, ok := closestConstant(constant, c.ConstantNames())
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// closestConstant picks the candidate with the highest normalized levenshtein
// similarity to the input, case-insensitively.
func closestConstant(input string, candidates []string) (string, bool) {
	inputLower := strings.ToLower(input)

	var best string
	bestScore := suggestThreshold
	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)

		// The distance counts runes, so the denominator must too.
		maxLen := utf8.RuneCountInString(inputLower)
		if n := utf8.RuneCountInString(candidateLower); n > maxLen {
			maxLen = n
		}
		if maxLen == 0 {
			continue
		}

		dist := levenshtein.Distance(inputLower, candidateLower, nil)
		score := 1.0 - float64(dist)/float64(maxLen)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, best != ""
}
