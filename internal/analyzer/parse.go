package analyzer

import (
	"strconv"
	"strings"

	"github.com/timvw/red-letter/internal/model"
)

const (
	wordCountLabel  = "WORD_COUNT:"
	confidenceLabel = "CONFIDENCE:"
)

// ParseReply scans a free-form model reply line by line for the two
// labeled numeric fields. The first line containing WORD_COUNT: is parsed
// as an integer, likewise CONFIDENCE:; malformed values leave the field
// absent, silently. All other content is ignored. This is best-effort by
// nature — the reply is natural language, not a wire format.
func ParseReply(text string) model.Count {
	var c model.Count
	for _, line := range strings.Split(text, "\n") {
		if !c.HasWords && strings.Contains(line, wordCountLabel) {
			if n, ok := labeledInt(line); ok {
				c.Words = n
				c.HasWords = true
			}
		}
		if !c.HasConfidence && strings.Contains(line, confidenceLabel) {
			if n, ok := labeledInt(line); ok {
				c.Confidence = n
				c.HasConfidence = true
			}
		}
	}
	return c
}

// labeledInt parses the integer after the first colon of a "LABEL: value"
// line, tolerating surrounding whitespace and a trailing percent sign.
func labeledInt(line string) (int, bool) {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return 0, false
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "%")
	rest = strings.TrimSpace(rest)
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
