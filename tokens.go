package optparse

import (
	"regexp"
	"strings"
)

// numericLiteral matches tokens like "-42", "3.14" or "1e-9". Such tokens
// start with a dash when negative but are values, never flags.
var numericLiteral = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// isFlagLike reports whether tok looks like a flag: non-empty, starting with
// "-", and not a numeric literal.
func isFlagLike(tok string) bool {
	return tok != "" && strings.HasPrefix(tok, "-") && !numericLiteral.MatchString(tok)
}

// tokens is a read-only view over the argument vector after the program
// name. It answers flag-presence and flag-value queries for the matching
// pass; it never mutates.
type tokens struct {
	list []string
}

// hasFlag reports whether name appears verbatim among the tokens.
func (t tokens) hasFlag(name string) bool {
	if name == "" {
		return false
	}
	for _, tok := range t.list {
		if tok == name {
			return true
		}
	}
	return false
}

// valueOf returns the value attached to the given flag name, or "" if the
// flag is absent or has no eligible value. Three spellings are recognized:
//
//   - a separate following token: --output file.txt
//   - an attached long form, split at the first "=": --output=file.txt
//   - a concatenated two-character short form: -ofile.txt
//
// A following token is only taken as the value when it is not itself
// flag-like, so "--output --verbose" yields no value while "--int -42"
// yields "-42".
func (t tokens) valueOf(name string) string {
	if name == "" {
		return ""
	}
	long := strings.HasPrefix(name, "--")
	for i, tok := range t.list {
		if tok == name {
			if i+1 < len(t.list) && !isFlagLike(t.list[i+1]) {
				return t.list[i+1]
			}
			return ""
		}
		if long && strings.HasPrefix(tok, name+"=") {
			return tok[len(name)+1:]
		}
		if !long && len(name) == 2 && len(tok) > 2 && strings.HasPrefix(tok, name) {
			return tok[2:]
		}
	}
	return ""
}

// positionals returns, in order, every token eligible to fill a positional
// slot. A token is eligible when it is not flag-like and is not positioned
// as the value of a preceding flag: the first token always qualifies, as
// does any token preceded by a non-flag token or by a recognized toggle
// flag (toggles consume no value, so the token after one is free).
func (t tokens) positionals(isToggle func(string) bool) []string {
	var out []string
	for i, tok := range t.list {
		if isFlagLike(tok) {
			continue
		}
		if i == 0 || !isFlagLike(t.list[i-1]) || isToggle(t.list[i-1]) {
			out = append(out, tok)
		}
	}
	return out
}
