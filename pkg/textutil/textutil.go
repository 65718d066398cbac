// Package textutil provides small text-formatting helpers for help output.
package textutil

import "strings"

// Wrap greedily wraps s into lines of at most width characters, breaking on
// whitespace. Words longer than width occupy a line of their own. The
// result always has at least one element, so callers can print lines[0]
// after a prefix and indent the rest.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
