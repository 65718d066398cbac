// Package optparse is a declarative command-line option parser. A host
// registers the options it expects — value options, boolean toggles,
// enumerated multi-options, positional arguments, positional lists and
// cosmetic separators — then parses the argument vector against those
// declarations, validates required-ness as a separate step, reads typed
// values with [Get], and renders usage and help text.
//
// Parsing and validation are decoupled on purpose: [Parser.Parse] never
// fails for a missing value, it only fails for malformed input (a
// multi-option value outside its allowed set). [Parser.Validate] performs
// the required-ness checks, so hosts can honor --help before reporting
// missing arguments.
package optparse

import (
	"fmt"
	"slices"
)

// Library version.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Parser holds the declared options and the argument vector they are parsed
// against. The zero value is not usable; construct with [New].
//
// A Parser is not safe for concurrent use. Use [Parser.Clone] to hand a
// configured parser to another goroutine or to re-parse without aliasing.
type Parser struct {
	name   string
	tokens tokens
	opts   optionSet
}

// New returns a Parser over the given invocation tokens, typically os.Args.
// args[0] is taken as the program name and is excluded from matching.
func New(args []string) *Parser {
	p := &Parser{}
	if len(args) > 0 {
		p.name = args[0]
		p.tokens.list = slices.Clone(args[1:])
	}
	return p
}

// Name returns the program name (token 0 of the argument vector).
func (p *Parser) Name() string { return p.name }

// Options returns the registered options in registration order. The
// options are live: parsed values are visible through them.
func (p *Parser) Options() []Option { return p.opts.list }

// AddOption registers a value option. The default may be any printable
// value and is stored in its fmt.Sprint rendering; an untouched option
// reads back as that default.
func (p *Parser) AddOption(short, long, description string, def any, required bool) error {
	value := ""
	if def != nil {
		value = fmt.Sprint(def)
	}
	return p.opts.add(&ValueOption{
		Short:       short,
		Long:        long,
		Description: description,
		Value:       value,
		Required:    required,
	})
}

// AddToggle registers a boolean flag with the given initial state.
func (p *Parser) AddToggle(short, long, description string, toggled bool) error {
	return p.opts.add(&ToggleOption{
		Short:       short,
		Long:        long,
		Description: description,
		Toggled:     toggled,
	})
}

// AddMultiOption registers an option restricted to the allowed set. The
// default must be a member of the set; a default outside it is a
// programmer error and fails immediately with [ErrInvalidValue].
func (p *Parser) AddMultiOption(short, long, description string, allowed []string, def string) error {
	o := &MultiOption{
		Short:       short,
		Long:        long,
		Description: description,
		Allowed:     slices.Clone(allowed),
	}
	if err := o.Set(def); err != nil {
		return err
	}
	return p.opts.add(o)
}

// AddPositional registers a single positional argument. Positionals are
// filled in registration order from the arguments left over after flag
// matching.
func (p *Parser) AddPositional(short, long, description string, def string, required bool) error {
	return p.opts.add(&PositionalOption{
		Short:       short,
		Long:        long,
		Description: description,
		Value:       def,
		Required:    required,
	})
}

// AddPositionalList registers a positional argument that collects every
// remaining positional token. Only one list may be registered, after all
// other positional entries.
func (p *Parser) AddPositionalList(short, long, description string, required bool) error {
	return p.opts.add(&PositionalList{
		Short:       short,
		Long:        long,
		Description: description,
		Required:    required,
	})
}

// AddSeparator inserts a section header into the help listing. Separators
// take no part in parsing.
func (p *Parser) AddSeparator(description string) {
	// Cannot fail: separators skip every registration check.
	_ = p.opts.add(&Separator{Description: description})
}

// Parse walks the registered options in registration order and assigns each
// a value from the argument vector. Missing values are not an error here —
// required-ness is checked by [Parser.Validate] — but a multi-option value
// outside its allowed set fails immediately.
func (p *Parser) Parse() error {
	// Derive the eligible positional tokens once; positional options index
	// into this sequence through a shared slot counter.
	eligible := p.tokens.positionals(p.isToggleFlag)
	slot := 0

	for _, o := range p.opts.list {
		switch o := o.(type) {
		case *ValueOption:
			if value, ok := p.lookupValue(o.Short, o.Long); ok {
				o.Value = value
				p.opts.bumpValueWidth(len(value))
			}
		case *MultiOption:
			if value, ok := p.lookupValue(o.Short, o.Long); ok {
				if err := o.Set(value); err != nil {
					return err
				}
				p.opts.bumpValueWidth(len(value))
			}
		case *ToggleOption:
			if p.tokens.hasFlag(o.Short) || p.tokens.hasFlag(o.Long) {
				o.Toggled = true
			}
		case *PositionalOption:
			if slot < len(eligible) {
				o.Value = eligible[slot]
				slot++
				p.opts.bumpValueWidth(len(o.Value))
			}
		case *PositionalList:
			if slot < len(eligible) {
				o.Values = append(o.Values[:0], eligible[slot:]...)
				slot = len(eligible)
				for _, v := range o.Values {
					p.opts.bumpValueWidth(len(v))
				}
			}
		case *Separator:
			// Not matchable.
		}
	}
	return nil
}

// lookupValue tries the short then the long name and returns the first
// non-empty match.
func (p *Parser) lookupValue(short, long string) (string, bool) {
	if value := p.tokens.valueOf(short); value != "" {
		return value, true
	}
	if value := p.tokens.valueOf(long); value != "" {
		return value, true
	}
	return "", false
}

// isToggleFlag reports whether tok names a registered toggle.
func (p *Parser) isToggleFlag(tok string) bool {
	for _, o := range p.opts.list {
		if t, ok := o.(*ToggleOption); ok {
			if (t.Short != "" && tok == t.Short) || (t.Long != "" && tok == t.Long) {
				return true
			}
		}
	}
	return false
}

// SetValue assigns a value to the named option programmatically, with the
// same bookkeeping and checks as parsing: multi-options reject values
// outside their allowed set, toggles accept only the literals "true" and
// "false", and a positional list appends the value. Returns [ErrNotFound]
// for unregistered names.
func (p *Parser) SetValue(name, value string) error {
	o := p.opts.find(name)
	if o == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	switch o := o.(type) {
	case *ValueOption:
		o.Value = value
	case *MultiOption:
		if err := o.Set(value); err != nil {
			return err
		}
	case *ToggleOption:
		switch value {
		case "true":
			o.Toggled = true
		case "false":
			o.Toggled = false
		default:
			return fmt.Errorf("%w: cannot convert %q to bool, expected %q or %q",
				ErrBadConversion, value, "true", "false")
		}
		return nil
	case *PositionalOption:
		o.Value = value
	case *PositionalList:
		o.Values = append(o.Values, value)
	}
	p.opts.bumpValueWidth(len(value))
	return nil
}

// Clone returns a deep copy of the parser. Every owned option and collected
// value slice is duplicated, so parsing or mutating the copy never affects
// the original.
func (p *Parser) Clone() *Parser {
	return &Parser{
		name:   p.name,
		tokens: tokens{list: slices.Clone(p.tokens.list)},
		opts:   p.opts.clone(),
	}
}
