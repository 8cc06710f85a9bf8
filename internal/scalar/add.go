package scalar

import "github.com/gradflow-ml/gradflow/internal/autodiff"

// AddOp computes a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = dOutput
//   - d(a+b)/db = 1, so grad_b = dOutput
type AddOp struct{ operation }

// Forward computes a + b.
func (AddOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	return a + b, nil
}

// Backward routes the upstream derivative unchanged to both operands.
func (AddOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{dOutput, dOutput}, nil
}

// Add builds a + b in the graph. Operands are nodes or raw float64s.
func Add(a, b any) *autodiff.Node {
	return autodiff.MustApply(AddOp{}, a, b)
}

// Sub builds a - b as a + (-b).
func Sub(a, b any) *autodiff.Node {
	return Add(a, Neg(b))
}
