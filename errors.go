package automata

import (
	"errors"
	"fmt"

	"github.com/termset/automata/fsa"
)

var (
	// ErrTooComplex is returned when determinization exceeds the configured
	// work limit. The underlying *fsa.TooComplexError (carrying the limit)
	// can be accessed via errors.As.
	ErrTooComplex = errors.New("automaton too complex to determinize")

	// ErrNoTerms is returned by CompileTerms when the term list is empty.
	ErrNoTerms = errors.New("no terms to compile")
)

// translateError normalizes fsa errors into this package's surface. Builder
// precondition errors (fsa.ErrTermsOutOfOrder, fsa.ErrTermTooLong) pass
// through untouched; they are already sentinel-wrapped.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var tc *fsa.TooComplexError
	if errors.As(err, &tc) {
		return fmt.Errorf("%w: %w", ErrTooComplex, err)
	}
	return err
}
