package optparse

import "fmt"

// Validate checks that every required option received a value, walking the
// registered options in registration order and failing on the first
// violation. It is deliberately separate from [Parser.Parse]: call it after
// any application-level --help handling so that help can be shown even when
// required arguments are missing.
//
// Value options are identified by name in the error message; positional
// entries, which often have no flag names, are identified by description.
func (p *Parser) Validate() error {
	for _, o := range p.opts.list {
		switch o := o.(type) {
		case *ValueOption:
			if o.Required && o.Value == "" {
				return fmt.Errorf("%w: %s", ErrMissingRequiredOption, displayName(o))
			}
		case *PositionalOption:
			if o.Required && o.Value == "" {
				return fmt.Errorf("%w: %s", ErrMissingRequiredPositional, o.Description)
			}
		case *PositionalList:
			if o.Required && len(o.Values) == 0 {
				return fmt.Errorf("%w: %s", ErrMissingRequiredPositionalList, o.Description)
			}
		}
	}
	return nil
}
