package optparse

import "errors"

var (
	// ErrInvalidName is returned at registration when a short name does not
	// start with "-" or a long name does not start with "--".
	ErrInvalidName = errors.New("optparse: invalid option name")

	// ErrDuplicateName is returned at registration when a short or long name
	// is already taken by a previously registered option.
	ErrDuplicateName = errors.New("optparse: duplicate option name")

	// ErrInvalidValue is returned when a multi-option is given a value
	// outside its allowed set, either as a registration default or on the
	// command line during [Parser.Parse].
	ErrInvalidValue = errors.New("optparse: invalid value")

	// ErrPositionalOrder is returned at registration when a second positional
	// list is added, or a positional entry is added after a positional list.
	ErrPositionalOrder = errors.New("optparse: positional list must be registered last")

	// ErrMissingRequiredOption is returned by [Parser.Validate] for a
	// required value option that is still empty after parsing.
	ErrMissingRequiredOption = errors.New("optparse: missing required option")

	// ErrMissingRequiredPositional is returned by [Parser.Validate] for a
	// required positional argument that received no value.
	ErrMissingRequiredPositional = errors.New("optparse: missing required positional argument")

	// ErrMissingRequiredPositionalList is returned by [Parser.Validate] for a
	// required positional list that collected no values.
	ErrMissingRequiredPositionalList = errors.New("optparse: missing required positional list argument")

	// ErrNotFound is returned by [Get] for names that were never registered.
	ErrNotFound = errors.New("optparse: option not found")

	// ErrBadConversion is returned by [Get] when the stored value cannot be
	// converted to the requested type.
	ErrBadConversion = errors.New("optparse: bad conversion")
)
