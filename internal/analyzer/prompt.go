package analyzer

import (
	_ "embed"
	"strconv"
	"strings"
)

// SystemPrompt is the system-level instruction for the analysis call.
// Loaded from prompts/system.md at compile time.
//
//go:embed prompts/system.md
var SystemPrompt string

// userPromptTemplate is the user-level prompt with {{SECTION}} and
// {{CONTENT}} placeholders. Loaded from prompts/user.md at compile time.
//
//go:embed prompts/user.md
var userPromptTemplate string

// BuildPrompt fills the user prompt template with the section number and
// the section's full text.
func BuildPrompt(section int, content string) string {
	r := strings.NewReplacer(
		"{{SECTION}}", strconv.Itoa(section),
		"{{CONTENT}}", content,
	)
	return r.Replace(userPromptTemplate)
}
