package hull

import "errors"

// Sentinel error kinds surfaced by this module and by package hydros and
// planio. Callers should use errors.Is against these rather than matching
// on message text.
var (
	// ErrBadInput marks malformed input: missing fields, out-of-order x
	// stations, or a half-frame point with negative y before mirroring.
	ErrBadInput = errors.New("bad input")

	// ErrBadIndex marks an insert/delete index outside [0, len], or a
	// chine index outside (0, len-1).
	ErrBadIndex = errors.New("bad index")

	// ErrDegenerateGeometry marks a waterplane cut that fewer than two
	// frames touch, or a submerged volume of zero when a nonzero target
	// was requested.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrSolverDiverged marks a flotation solve that exceeded its
	// iteration cap or whose residual norm grew without bound.
	ErrSolverDiverged = errors.New("solver diverged")

	// ErrIOError marks a lines-plan file that could not be read or
	// written.
	ErrIOError = errors.New("io error")
)
