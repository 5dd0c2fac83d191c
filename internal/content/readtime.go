package content

import "strings"

// Heading is one entry in a post's heading index.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// ReadTime estimates the reading time of a body in whole minutes,
// rounding up and never returning less than one.
func ReadTime(body string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// HeadingIndex extracts the h1-h3 headings of a markdown body, skipping
// fenced code blocks.
func HeadingIndex(body string) []Heading {
	var headings []Heading
	inCode := false
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}

		level := 0
		switch {
		case strings.HasPrefix(line, "# "):
			level = 1
		case strings.HasPrefix(line, "## "):
			level = 2
		case strings.HasPrefix(line, "### "):
			level = 3
		default:
			continue
		}

		text := strings.TrimSpace(line[level+1:])
		if text == "" {
			continue
		}
		headings = append(headings, Heading{
			Level:  level,
			Text:   text,
			Anchor: anchorFor(text),
		})
	}
	return headings
}

// anchorFor builds a URL-safe fragment anchor from a heading text.
func anchorFor(text string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
