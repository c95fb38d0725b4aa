package internal

import "github.com/pkg/errors"

// The line constructions chain several lookups and divisions, each of which
// can fail on a degenerate figure. Threading errors through all of them would
// bury the arithmetic, so they panic with a FigureError and the public API
// recovers to convert to an error.

type FigureError struct {
	err error
}

func (e *FigureError) Error() string {
	return e.err.Error()
}

func (e *FigureError) Unwrap() error {
	return e.err
}

// Panic with a FigureError wrapping one of the sentinel errors.
func fatalf(kind error, format string, args ...interface{}) {
	panic(&FigureError{errors.Wrapf(kind, format, args...)})
}

// Panic with a FigureError if err is non-nil. The error must already wrap a
// sentinel.
func check(err error) {
	if err != nil {
		panic(&FigureError{err})
	}
}

func HandleFigurePanicRecover(r interface{}) error {
	if r != nil {
		if figureError, ok := r.(*FigureError); ok {
			return figureError.err
		}
		panic(r)
	}
	return nil
}
