package optparse

import (
	"fmt"
	"slices"
	"strconv"
)

// Get retrieves the value of the option registered under name (short or
// long form, both address the same option) converted to T. Supported types
// are string, bool, the common integer and float types, []string for
// positional lists, and anything else fmt.Sscan can produce.
//
// The boolean conversion is strict: only the literals "true" and "false"
// are accepted. Failures wrap [ErrBadConversion] and include the offending
// value; unregistered names wrap [ErrNotFound].
func Get[T any](p *Parser, name string) (T, error) {
	var zero T
	o := p.opts.find(name)
	if o == nil {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if list, ok := o.(*PositionalList); ok {
		if values, ok := any(slices.Clone(list.Values)).(T); ok {
			return values, nil
		}
		return zero, fmt.Errorf("%w: positional list %s is retrieved as []string",
			ErrBadConversion, displayName(list))
	}
	return convert[T](rawValue(o))
}

// MustGet is like [Get] but panics on error. Intended for retrieval after a
// successful Parse and Validate, where a failure indicates a programming
// error such as a misspelled option name or a type mismatch.
func MustGet[T any](p *Parser, name string) T {
	value, err := Get[T](p, name)
	if err != nil {
		panic(err)
	}
	return value
}

// rawValue renders an option's current value as the string conversions
// start from.
func rawValue(o Option) string {
	switch o := o.(type) {
	case *ValueOption:
		return o.Value
	case *ToggleOption:
		return strconv.FormatBool(o.Toggled)
	case *MultiOption:
		return o.Value
	case *PositionalOption:
		return o.Value
	}
	return ""
}

func convert[T any](raw string) (T, error) {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *bool:
		switch raw {
		case "true":
			*ptr = true
		case "false":
			*ptr = false
		default:
			return out, fmt.Errorf("%w: cannot convert %q to bool, expected %q or %q",
				ErrBadConversion, raw, "true", "false")
		}
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, convErr(raw, "int")
		}
		*ptr = n
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, convErr(raw, "int64")
		}
		*ptr = n
	case *uint:
		n, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return out, convErr(raw, "uint")
		}
		*ptr = uint(n)
	case *uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return out, convErr(raw, "uint64")
		}
		*ptr = n
	case *float32:
		n, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return out, convErr(raw, "float32")
		}
		*ptr = float32(n)
	case *float64:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, convErr(raw, "float64")
		}
		*ptr = n
	default:
		// Anything scannable, e.g. complex128 or a custom fmt.Scanner.
		if _, err := fmt.Sscan(raw, &out); err != nil {
			return out, fmt.Errorf("%w: cannot convert %q to %T", ErrBadConversion, raw, out)
		}
	}
	return out, nil
}

func convErr(raw, typ string) error {
	return fmt.Errorf("%w: cannot convert %q to %s", ErrBadConversion, raw, typ)
}
