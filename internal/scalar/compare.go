package scalar

import "github.com/gradflow-ml/gradflow/internal/autodiff"

// Comparison ops produce 1.0 or 0.0 and are flat almost everywhere, so
// their gradients are zero for both operands.

// LtOp computes 1.0 if a < b, else 0.0.
type LtOp struct{ operation }

// Forward computes the indicator of a < b.
func (LtOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	if a < b {
		return 1.0, nil
	}
	return 0.0, nil
}

// Backward returns zero gradients.
func (LtOp) Backward(_ *autodiff.Context, _ any) ([]any, error) {
	return []any{0.0, 0.0}, nil
}

// Lt builds the indicator of a < b in the graph.
func Lt(a, b any) *autodiff.Node {
	return autodiff.MustApply(LtOp{}, a, b)
}

// EqOp computes 1.0 if a == b, else 0.0.
type EqOp struct{ operation }

// Forward computes the indicator of a == b.
func (EqOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	if a == b {
		return 1.0, nil
	}
	return 0.0, nil
}

// Backward returns zero gradients.
func (EqOp) Backward(_ *autodiff.Context, _ any) ([]any, error) {
	return []any{0.0, 0.0}, nil
}

// Eq builds the indicator of a == b in the graph.
func Eq(a, b any) *autodiff.Node {
	return autodiff.MustApply(EqOp{}, a, b)
}
