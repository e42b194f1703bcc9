package arbork

import "errors"

var (
	// ErrAssignmentMissing reports a public or witness value that was absent
	// when a proving-mode synthesis pass needed it. Fatal to that call.
	ErrAssignmentMissing = errors.New("arbork: assignment missing")

	// ErrMalformedInput reports a public-input vector whose shape disagrees
	// with the relation's declared public-input count. A caller bug, not a
	// proof failure.
	ErrMalformedInput = errors.New("arbork: malformed public input")

	// ErrBackendFailure reports an internal error from the proving backend.
	// Retrying the same call reproduces it; callers wanting resilience retry
	// explicitly.
	ErrBackendFailure = errors.New("arbork: backend failure")
)
