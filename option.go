package optparse

import (
	"fmt"
	"slices"
	"strings"
)

// Option is the common interface for every entry registered on a [Parser].
// The concrete types are [ValueOption], [ToggleOption], [MultiOption],
// [PositionalOption], [PositionalList] and [Separator]; the set is closed,
// callers inspect an Option with a type switch.
type Option interface {
	// names returns the short and long flag names. Both may be empty for
	// separators and pure-positional entries.
	names() (short, long string)

	// describe returns the display text shown in help output.
	describe() string

	// valueWidth reports the rendered width of the option's current value,
	// used to align the value column in help output.
	valueWidth() int

	// clone returns a deep copy of the option.
	clone() Option
}

// ValueOption is a flag that carries a value, like --output file.txt. The
// value is stored as a string and converted on retrieval, see [Get].
type ValueOption struct {
	Short       string
	Long        string
	Description string

	// Value holds the default until parsing assigns a match.
	Value string

	// Required options with an empty value fail [Parser.Validate].
	Required bool
}

func (o *ValueOption) names() (string, string) { return o.Short, o.Long }
func (o *ValueOption) describe() string        { return o.Description }
func (o *ValueOption) valueWidth() int         { return len(o.Value) }
func (o *ValueOption) clone() Option           { c := *o; return &c }

// ToggleOption is a boolean flag with no attached value, like --verbose.
// Presence of either name anywhere in the arguments turns it on.
type ToggleOption struct {
	Short       string
	Long        string
	Description string
	Toggled     bool
}

func (o *ToggleOption) names() (string, string) { return o.Short, o.Long }
func (o *ToggleOption) describe() string        { return o.Description }

// Renders as "true" or "false".
func (o *ToggleOption) valueWidth() int { return 5 }
func (o *ToggleOption) clone() Option   { c := *o; return &c }

// MultiOption is a flag restricted to a closed set of values, like
// --mode {auto, manual}. Value is always a member of Allowed; both the
// default and every assignment are checked.
type MultiOption struct {
	Short       string
	Long        string
	Description string
	Allowed     []string
	Value       string
}

func (o *MultiOption) names() (string, string) { return o.Short, o.Long }
func (o *MultiOption) describe() string        { return o.Description }

func (o *MultiOption) valueWidth() int {
	w := 0
	for _, v := range o.Allowed {
		w = max(w, len(v))
	}
	return w
}

func (o *MultiOption) clone() Option {
	c := *o
	c.Allowed = slices.Clone(o.Allowed)
	return &c
}

// Set assigns a value after checking it against the allowed set. It returns
// an error wrapping [ErrInvalidValue] for values outside the set.
func (o *MultiOption) Set(value string) error {
	if !slices.Contains(o.Allowed, value) {
		return fmt.Errorf("%w: %q is not one of: %s",
			ErrInvalidValue, value, strings.Join(o.Allowed, ", "))
	}
	o.Value = value
	return nil
}

// PositionalOption consumes a single unclaimed positional argument.
type PositionalOption struct {
	Short       string
	Long        string
	Description string
	Value       string
	Required    bool
}

func (o *PositionalOption) names() (string, string) { return o.Short, o.Long }
func (o *PositionalOption) describe() string        { return o.Description }
func (o *PositionalOption) valueWidth() int         { return len(o.Value) }
func (o *PositionalOption) clone() Option           { c := *o; return &c }

// PositionalList greedily consumes every remaining unclaimed positional
// argument, preserving their order. At most one may be registered per
// parser, after all other positional entries.
type PositionalList struct {
	Short       string
	Long        string
	Description string
	Values      []string
	Required    bool
}

func (o *PositionalList) names() (string, string) { return o.Short, o.Long }
func (o *PositionalList) describe() string        { return o.Description }

func (o *PositionalList) valueWidth() int {
	w := 0
	for _, v := range o.Values {
		w = max(w, len(v))
	}
	return w
}

func (o *PositionalList) clone() Option {
	c := *o
	c.Values = slices.Clone(o.Values)
	return &c
}

// Separator is a cosmetic entry that partitions the help listing into
// labeled sections. It carries no flag syntax and never matches arguments.
type Separator struct {
	Description string
}

func (o *Separator) names() (string, string) { return "", "" }
func (o *Separator) describe() string        { return o.Description }
func (o *Separator) valueWidth() int         { return 0 }
func (o *Separator) clone() Option           { c := *o; return &c }

// displayName returns the preferred name for error and usage messages: the
// long name when present, otherwise the short name.
func displayName(o Option) string {
	short, long := o.names()
	if long != "" {
		return long
	}
	return short
}
