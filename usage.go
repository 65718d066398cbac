package optparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pressly/optparse/pkg/textutil"
)

// Output wraps at this column; continuation lines are indented.
const (
	outputWidth = 80
	usageIndent = "    "
)

// requiredMark stands in for the value of a required option that has not
// received one yet.
const requiredMark = "<required>"

// Usage returns a one-line invocation summary: the program name followed by
// a fragment per option in registration order. Value options render as
// name=<value> (bracketed when optional), multi-options list their allowed
// set, toggles render bracketed, and positional fragments are appended
// after all flag fragments. Lines longer than 80 columns wrap with a
// continuation indent.
func (p *Parser) Usage() string {
	var flags, positional []string
	for _, o := range p.opts.list {
		switch o := o.(type) {
		case *ValueOption:
			frag := displayName(o) + "=<value>"
			if !o.Required {
				frag = "[" + frag + "]"
			}
			flags = append(flags, frag)
		case *MultiOption:
			flags = append(flags, displayName(o)+"={"+strings.Join(o.Allowed, ", ")+"}")
		case *ToggleOption:
			flags = append(flags, "["+displayName(o)+"]")
		case *PositionalOption:
			positional = append(positional, "<"+bareName(o)+">")
		case *PositionalList:
			positional = append(positional, "<"+bareName(o)+"...>")
		case *Separator:
			// Separators contribute nothing to the usage line.
		}
	}
	frags := append(flags, positional...)
	if len(frags) == 0 {
		return p.name
	}
	prefix := ""
	if p.name != "" {
		prefix = p.name + " "
	}

	lines := textutil.Wrap(strings.Join(frags, " "), outputWidth-len(prefix))
	var b strings.Builder
	b.WriteString(prefix + lines[0])
	for _, line := range lines[1:] {
		b.WriteString("\n" + usageIndent + line)
	}
	return b.String()
}

// Help returns the full help text: the usage line, a blank line, then one
// aligned row per option in registration order. Separators emit a blank
// line plus their description as a section header. Column widths come from
// the registry's tracked maxima, so alignment reflects both declared
// defaults and parsed values.
func (p *Parser) Help() string {
	var b strings.Builder
	b.WriteString(p.Usage())
	b.WriteString("\n\n")

	shortWidth := p.opts.longestShort
	longWidth := p.opts.longestLong
	valueWidth := p.opts.longestValue

	for _, o := range p.opts.list {
		if sep, ok := o.(*Separator); ok {
			b.WriteString("\n" + sep.Description + "\n")
			continue
		}
		short, long := o.names()
		prefix := fmt.Sprintf("[%-*s] %-*s (%*s) : ",
			shortWidth, short, longWidth, long, valueWidth, helpValue(o))

		description := o.describe()
		if m, ok := o.(*MultiOption); ok {
			description += " (allowed: " + strings.Join(m.Allowed, ", ") + ")"
		}

		lines := textutil.Wrap(description, outputWidth-len(prefix))
		b.WriteString(prefix + lines[0] + "\n")
		indent := strings.Repeat(" ", len(prefix))
		for _, line := range lines[1:] {
			b.WriteString(indent + line + "\n")
		}
	}
	return b.String()
}

// helpValue renders the current value shown in an option's help row.
func helpValue(o Option) string {
	switch o := o.(type) {
	case *ValueOption:
		if o.Required && o.Value == "" {
			return requiredMark
		}
		return o.Value
	case *ToggleOption:
		return strconv.FormatBool(o.Toggled)
	case *MultiOption:
		return o.Value
	case *PositionalOption:
		if o.Required && o.Value == "" {
			return requiredMark
		}
		return o.Value
	case *PositionalList:
		if o.Required && len(o.Values) == 0 {
			return requiredMark
		}
		return strings.Join(o.Values, ", ")
	}
	return ""
}

// bareName strips the flag dashes off an option's display name for
// positional fragments like <input> or <files...>.
func bareName(o Option) string {
	name := strings.TrimLeft(displayName(o), "-")
	if name == "" {
		return "arg"
	}
	return name
}
