// Package flagbind bridges a configured [optparse.Parser] onto the standard
// library's flag package. It is intended for hosts that declare their
// options with optparse but need a *flag.FlagSet for code written against
// the standard library, or that prefer flag's parsing behavior.
//
// [Parse] accepts flags and positional arguments interleaved in any order
// by delegating to [xflag.ParseToEnd]; the standard library alone stops at
// the first non-flag argument.
package flagbind

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"

	"github.com/pressly/optparse"
)

// FlagSet returns a flag set whose flags read and write the options
// registered on p. Value, toggle and multi options are bound under their
// long and short names with the leading dashes stripped, so both -v and
// --verbose spellings keep working. Positional entries and separators have
// no flag equivalent and are skipped; [Parse] handles positionals from the
// leftover arguments.
//
// Writes go through [optparse.Parser.SetValue], so multi-option allowed-set
// checks and toggle bool strictness apply unchanged.
func FlagSet(p *optparse.Parser) *flag.FlagSet {
	fs := flag.NewFlagSet(p.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, o := range p.Options() {
		switch o := o.(type) {
		case *optparse.ValueOption:
			bind(fs, p, o.Short, o.Long, o.Description, false)
		case *optparse.ToggleOption:
			bind(fs, p, o.Short, o.Long, o.Description, true)
		case *optparse.MultiOption:
			bind(fs, p, o.Short, o.Long, o.Description, false)
		}
	}
	return fs
}

// Parse parses args (without the program name) against the flags bound from
// p, then assigns the leftover arguments to p's positional options in
// registration order.
func Parse(p *optparse.Parser, args []string) error {
	fs := FlagSet(p)
	if err := xflag.ParseToEnd(fs, args); err != nil {
		return fmt.Errorf("flagbind: %w", err)
	}
	rest := fs.Args()
	for _, o := range p.Options() {
		switch o := o.(type) {
		case *optparse.PositionalOption:
			if len(rest) == 0 {
				continue
			}
			if err := setPositional(p, o.Short, o.Long, rest[0], &o.Value, nil); err != nil {
				return err
			}
			rest = rest[1:]
		case *optparse.PositionalList:
			for _, arg := range rest {
				if err := setPositional(p, o.Short, o.Long, arg, nil, &o.Values); err != nil {
					return err
				}
			}
			rest = nil
		}
	}
	return nil
}

// setPositional routes the assignment through SetValue when the option is
// addressable by name, keeping the parser's width bookkeeping intact, and
// falls back to a direct field write for unnamed positionals.
func setPositional(p *optparse.Parser, short, long, arg string, value *string, values *[]string) error {
	name := long
	if name == "" {
		name = short
	}
	if name != "" {
		return p.SetValue(name, arg)
	}
	if value != nil {
		*value = arg
	} else {
		*values = append(*values, arg)
	}
	return nil
}

func bind(fs *flag.FlagSet, p *optparse.Parser, short, long, usage string, boolFlag bool) {
	for _, name := range []string{long, short} {
		trimmed := strings.TrimLeft(name, "-")
		if trimmed == "" {
			continue
		}
		fs.Var(&boundValue{p: p, name: name, boolFlag: boolFlag}, trimmed, usage)
	}
}

// boundValue adapts a registered option to flag.Value. Reads and writes go
// through the parser by name so every option kind shares one adapter.
type boundValue struct {
	p        *optparse.Parser
	name     string
	boolFlag bool
}

func (v *boundValue) String() string {
	// The flag package calls String on a zero Value to compute defaults.
	if v.p == nil {
		return ""
	}
	s, err := optparse.Get[string](v.p, v.name)
	if err != nil {
		return ""
	}
	return s
}

func (v *boundValue) Set(s string) error {
	return v.p.SetValue(v.name, s)
}

// IsBoolFlag lets flag accept a bound toggle without an argument.
func (v *boundValue) IsBoolFlag() bool { return v.boolFlag }
