package extract

import "testing"

func TestClassifier(t *testing.T) {
	c := NewClassifier(testLexicon(t))

	tests := []struct {
		name        string
		text        string
		wantPattern string
		wantMatched bool
	}{
		{
			name:        "movement on event",
			text:        "stocks rose on jobs report",
			wantPattern: "asset_movement_on_event",
			wantMatched: true,
		},
		{
			name:        "event drives asset",
			text:        "strong jobs report sends stocks higher",
			wantPattern: "event_causes_asset",
			wantMatched: true,
		},
		{
			name:        "movement before release",
			text:        "dollar slips ahead of jobs report",
			wantPattern: "movement_before",
			wantMatched: true,
		},
		{
			name:        "causal phrasing without event",
			text:        "stocks set to open higher",
			wantPattern: "set_to_open_pattern",
			wantMatched: true,
		},
		{
			name:        "movement gate blocks matches",
			text:        "eyes on jobs report",
			wantPattern: FallbackPattern,
			wantMatched: false,
		},
		{
			name:        "plain co-occurrence",
			text:        "gold, jobless claims in focus",
			wantPattern: FallbackPattern,
			wantMatched: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, matched := c.Classify(tt.text)
			if pattern != tt.wantPattern {
				t.Errorf("Classify(%q) pattern = %q, want %q", tt.text, pattern, tt.wantPattern)
			}
			if matched != tt.wantMatched {
				t.Errorf("Classify(%q) matched = %v, want %v", tt.text, matched, tt.wantMatched)
			}
		})
	}
}
