package script

import (
	"strings"
	"unicode"
)

// SplitLines cuts command text on newlines and semicolons that are not inside
// double quotes. Blank lines are dropped.
func SplitLines(text string) []string {
	var (
		lines   []string
		current strings.Builder
		quoted  bool
	)
	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for _, r := range text {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case !quoted && (r == '\n' || r == ';'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return lines
}

// Tokenize splits one line on whitespace. Double quotes group a token and are
// removed; an unterminated quote runs to the end of the line.
func Tokenize(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && unicode.IsSpace(r):
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		tokens = append(tokens, current.String())
	}
	return tokens
}
