package content

import (
	"strings"
	"testing"
)

func TestReadTime(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wpm      int
		expected int
	}{
		{
			name:     "empty body still reads one minute",
			body:     "",
			wpm:      200,
			expected: 1,
		},
		{
			name:     "short body rounds up",
			body:     "a few words only",
			wpm:      200,
			expected: 1,
		},
		{
			name:     "exactly one minute",
			body:     strings.Repeat("word ", 200),
			wpm:      200,
			expected: 1,
		},
		{
			name:     "just over one minute rounds up",
			body:     strings.Repeat("word ", 201),
			wpm:      200,
			expected: 2,
		},
		{
			name:     "zero wpm uses default",
			body:     strings.Repeat("word ", 400),
			wpm:      0,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReadTime(tt.body, tt.wpm)
			if result != tt.expected {
				t.Errorf("ReadTime() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestHeadingIndex(t *testing.T) {
	body := "# Title\n" +
		"intro text\n" +
		"## Typing Feel\n" +
		"```go\n" +
		"// # not a heading\n" +
		"```\n" +
		"### Stabilizers & Mods\n" +
		"#### too deep\n" +
		"##no space\n"

	headings := HeadingIndex(body)
	if len(headings) != 3 {
		t.Fatalf("expected 3 headings, got %d: %+v", len(headings), headings)
	}

	expected := []Heading{
		{Level: 1, Text: "Title", Anchor: "title"},
		{Level: 2, Text: "Typing Feel", Anchor: "typing-feel"},
		{Level: 3, Text: "Stabilizers & Mods", Anchor: "stabilizers-mods"},
	}
	for i, want := range expected {
		if headings[i] != want {
			t.Errorf("headings[%d] = %+v, want %+v", i, headings[i], want)
		}
	}
}

func TestAnchorFor(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Typing Feel", "typing-feel"},
		{"Stabilizers & Mods", "stabilizers-mods"},
		{"  spaced  out  ", "spaced-out"},
		{"Già (EU) 2026!", "gi-eu-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := anchorFor(tt.text); got != tt.expected {
				t.Errorf("anchorFor(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}
