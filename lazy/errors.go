package lazy

import (
	"errors"

	"github.com/on-the-ground/lazyseq/eager"
)

// ErrSingleUseSource is the configuration error returned when a sequence is
// constructed directly from a handle that is exhausted after one pass. Only
// pre-materialized snapshots and zero-argument producers are accepted.
var ErrSingleUseSource = errors.New("single-use traversal handle cannot back a replayable sequence")

// Cardinality errors surface from terminal operations that expect at least
// one (FirstOrFail) or exactly one (Sole) matching element. They are shared
// with the eager collection so errors.Is works across both surfaces.
var (
	ErrNoElements       = eager.ErrNoElements
	ErrMultipleElements = eager.ErrMultipleElements
)

// CardinalityError carries the observed element count alongside the
// cardinality sentinel it wraps.
type CardinalityError = eager.CardinalityError
