package analyzer

import "testing"

func TestParseReply(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantWords      int
		wantHasWords   bool
		wantConf       int
		wantHasConf    bool
	}{
		{
			name:         "well formed",
			input:        "WORD_COUNT: 523\nCONFIDENCE: 90",
			wantWords:    523,
			wantHasWords: true,
			wantConf:     90,
			wantHasConf:  true,
		},
		{
			name:         "surrounding prose ignored",
			input:        "After careful analysis of the section:\n\nWORD_COUNT: 12\nCONFIDENCE: 85\n\nNote that verse markers were excluded.",
			wantWords:    12,
			wantHasWords: true,
			wantConf:     85,
			wantHasConf:  true,
		},
		{
			name:         "missing confidence",
			input:        "WORD_COUNT: 100",
			wantWords:    100,
			wantHasWords: true,
		},
		{
			name:        "missing word count",
			input:       "CONFIDENCE: 70",
			wantConf:    70,
			wantHasConf: true,
		},
		{
			name:  "empty reply",
			input: "",
		},
		{
			name:         "extra whitespace",
			input:        "WORD_COUNT:    42   \nCONFIDENCE:\t 95",
			wantWords:    42,
			wantHasWords: true,
			wantConf:     95,
			wantHasConf:  true,
		},
		{
			name:         "confidence with percent sign",
			input:        "WORD_COUNT: 42\nCONFIDENCE: 95%",
			wantWords:    42,
			wantHasWords: true,
			wantConf:     95,
			wantHasConf:  true,
		},
		{
			name:        "non-numeric word count left absent",
			input:       "WORD_COUNT: approximately 500\nCONFIDENCE: 60",
			wantConf:    60,
			wantHasConf: true,
		},
		{
			name:        "negative count left absent",
			input:       "WORD_COUNT: -5\nCONFIDENCE: 50",
			wantConf:    50,
			wantHasConf: true,
		},
		{
			name:         "first occurrence wins",
			input:        "WORD_COUNT: 10\nWORD_COUNT: 20\nCONFIDENCE: 50\nCONFIDENCE: 99",
			wantWords:    10,
			wantHasWords: true,
			wantConf:     50,
			wantHasConf:  true,
		},
		{
			name:         "both labels on one line",
			input:        "WORD_COUNT: 7 CONFIDENCE: 80",
			wantHasWords: false,
			wantHasConf:  false,
		},
		{
			name:         "zero count",
			input:        "WORD_COUNT: 0\nCONFIDENCE: 100",
			wantWords:    0,
			wantHasWords: true,
			wantConf:     100,
			wantHasConf:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.input)
			if got.HasWords != tt.wantHasWords {
				t.Errorf("HasWords: got %v, want %v", got.HasWords, tt.wantHasWords)
			}
			if got.HasWords && got.Words != tt.wantWords {
				t.Errorf("Words: got %d, want %d", got.Words, tt.wantWords)
			}
			if got.HasConfidence != tt.wantHasConf {
				t.Errorf("HasConfidence: got %v, want %v", got.HasConfidence, tt.wantHasConf)
			}
			if got.HasConfidence && got.Confidence != tt.wantConf {
				t.Errorf("Confidence: got %d, want %d", got.Confidence, tt.wantConf)
			}
		})
	}
}
