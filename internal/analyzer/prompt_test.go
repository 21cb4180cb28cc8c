package analyzer

import (
	"strings"
	"testing"
)

func TestPromptsLoaded(t *testing.T) {
	if SystemPrompt == "" {
		t.Error("SystemPrompt is empty — embed directive may have failed")
	}
	if userPromptTemplate == "" {
		t.Error("userPromptTemplate is empty — embed directive may have failed")
	}
}

func TestBuildPrompt(t *testing.T) {
	content := "I the Lord say unto thee..."
	prompt := BuildPrompt(4, content)

	if !strings.Contains(prompt, "Section 4") {
		t.Errorf("prompt does not mention the section number:\n%s", prompt)
	}
	if !strings.Contains(prompt, content) {
		t.Error("prompt does not embed the section content")
	}
	if strings.Contains(prompt, "{{SECTION}}") || strings.Contains(prompt, "{{CONTENT}}") {
		t.Error("prompt still contains unexpanded placeholders")
	}
	// The output-format directive must survive templating verbatim; the
	// parser depends on the model echoing these labels.
	if !strings.Contains(prompt, "WORD_COUNT:") || !strings.Contains(prompt, "CONFIDENCE:") {
		t.Error("prompt is missing the output-format directive")
	}
}
