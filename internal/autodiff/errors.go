package autodiff

import "errors"

// All error conditions in this package are programmer errors in a
// deterministic library: they surface immediately to the caller of
// Apply or Backward and are never retried or recovered internally.
var (
	// ErrTypeMismatch indicates a Forward result whose runtime type does
	// not match the operation's declared payload type.
	ErrTypeMismatch = errors.New("autodiff: forward result type mismatch")

	// ErrUnsavedValues indicates a saved-values read on a context that
	// never had SaveForBackward called.
	ErrUnsavedValues = errors.New("autodiff: no values saved for backward")

	// ErrFrozenContext indicates a saved-values read on a no-grad context.
	ErrFrozenContext = errors.New("autodiff: context does not require grad")

	// ErrArityMismatch indicates a Backward result whose gradient count
	// does not equal the recorded operand count.
	ErrArityMismatch = errors.New("autodiff: backward gradient arity mismatch")
)
