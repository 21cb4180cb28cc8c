package model

import "strconv"

// Count is the structured answer extracted from one LLM reply.
type Count struct {
	// Words is the number of words the model attributed to the Savior.
	// Only meaningful when HasWords is true.
	Words int `json:"words"`
	// HasWords indicates whether a well-formed WORD_COUNT line was found.
	HasWords bool `json:"has_words"`
	// Confidence is the model's self-reported confidence percentage (0-100).
	// Only meaningful when HasConfidence is true.
	Confidence int `json:"confidence"`
	// HasConfidence indicates whether a well-formed CONFIDENCE line was found.
	HasConfidence bool `json:"has_confidence"`

	// Usage tracks token consumption for this call. Populated by the
	// analyzer, not parsed from the reply.
	Usage TokenUsage `json:"-"`
}

// Result is one row of the final report: the outcome of analyzing a
// single section. Exactly one Result exists per section processed,
// in processing order.
type Result struct {
	// Section is the section number extracted from the filename.
	Section int `json:"section"`
	// Words is the word count attributed to the Savior. Only meaningful
	// when Failed is false.
	Words int `json:"words"`
	// Confidence is the model's self-reported confidence (0 when unknown).
	Confidence int `json:"confidence"`
	// Failed indicates the remote call failed or no count could be parsed;
	// the words column carries the ERROR sentinel in the report.
	Failed bool `json:"failed"`
}

// ErrorSentinel is the literal written into the words column of the
// report when no valid count could be obtained for a section.
const ErrorSentinel = "ERROR"

// WordsField returns the words column value for a CSV row: the parsed
// count, or the error sentinel when the section failed.
func (r Result) WordsField() string {
	if r.Failed {
		return ErrorSentinel
	}
	return strconv.Itoa(r.Words)
}

// FromCount converts a parsed Count into a Result for the given section.
// A reply with no word count at all is treated the same as a failed call:
// the program has nothing to record beyond the sentinel.
func FromCount(section int, c *Count) Result {
	if c == nil || !c.HasWords {
		return Result{Section: section, Failed: true}
	}
	res := Result{Section: section, Words: c.Words}
	// Confidence is a percentage; anything outside [0,100] is treated
	// as unreported.
	if c.HasConfidence && c.Confidence >= 0 && c.Confidence <= 100 {
		res.Confidence = c.Confidence
	}
	return res
}

// TokenUsage tracks LLM token consumption for a single analysis call.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}
