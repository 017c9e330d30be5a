package calculator

import "errors"

// Shape and contract violations. Degenerate-but-valid numeric cases (empty
// mean, zero variance, flat series) never produce these; they resolve to
// the documented sentinel values instead.
var (
	ErrEmptySeries      = errors.New("price series is empty")
	ErrNonPositivePrice = errors.New("price series contains a non-positive price")
	ErrNonFinitePrice   = errors.New("price series contains a non-finite price")
	ErrInvalidWindow    = errors.New("window must be positive")
)
