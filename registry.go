package optparse

import (
	"fmt"
	"strings"
)

// optionSet owns the registered options. Iteration order is registration
// order and is meaningful: it drives positional consumption, validation and
// the help listing. The longest* fields are display maxima for help-column
// alignment; they only ever grow.
type optionSet struct {
	list []Option

	longestShort int
	longestLong  int
	longestValue int
}

// add appends o after enforcing the registration invariants: well-formed
// name prefixes, short/long uniqueness, and positional-list placement.
// Separators skip every check.
func (s *optionSet) add(o Option) error {
	if _, ok := o.(*Separator); ok {
		s.list = append(s.list, o)
		return nil
	}

	short, long := o.names()
	if short != "" && !strings.HasPrefix(short, "-") {
		return fmt.Errorf("%w: short name %q must start with %q", ErrInvalidName, short, "-")
	}
	if long != "" && !strings.HasPrefix(long, "--") {
		return fmt.Errorf("%w: long name %q must start with %q", ErrInvalidName, long, "--")
	}

	for _, existing := range s.list {
		eshort, elong := existing.names()
		if (short != "" && short == eshort) || (long != "" && long == elong) {
			return fmt.Errorf("%w: (%s, %s) conflicts with (%s, %s)",
				ErrDuplicateName, short, long, eshort, elong)
		}
	}

	switch o.(type) {
	case *PositionalOption, *PositionalList:
		for _, existing := range s.list {
			if _, ok := existing.(*PositionalList); ok {
				return fmt.Errorf("%w: (%s, %s) registered after a positional list",
					ErrPositionalOrder, short, long)
			}
		}
	}

	s.list = append(s.list, o)

	s.longestShort = max(s.longestShort, len(short))
	s.longestLong = max(s.longestLong, len(long))
	s.longestValue = max(s.longestValue, o.valueWidth())
	return nil
}

// find returns the option whose short or long name equals name, or nil.
// Separators and unnamed positionals are unreachable by name.
func (s *optionSet) find(name string) Option {
	if name == "" {
		return nil
	}
	for _, o := range s.list {
		short, long := o.names()
		if name == short || name == long {
			return o
		}
	}
	return nil
}

// bumpValueWidth widens the value column to fit a newly assigned value.
func (s *optionSet) bumpValueWidth(n int) {
	if n > s.longestValue {
		s.longestValue = n
	}
}

func (s *optionSet) clone() optionSet {
	c := optionSet{
		list:         make([]Option, 0, len(s.list)),
		longestShort: s.longestShort,
		longestLong:  s.longestLong,
		longestValue: s.longestValue,
	}
	for _, o := range s.list {
		c.list = append(c.list, o.clone())
	}
	return c
}
