package scalar

import "github.com/gradflow-ml/gradflow/internal/autodiff"

// MulOp computes a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = b * dOutput
//   - d(a*b)/db = a, so grad_b = a * dOutput
type MulOp struct{ operation }

// Forward computes a * b, saving both operands for the backward pass.
func (MulOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	ctx.SaveForBackward(a, b)
	return a * b, nil
}

// Backward computes the cross gradients from the saved operands.
func (MulOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	a, b := vals[0].(float64), vals[1].(float64)
	d := dOutput.(float64)
	return []any{b * d, a * d}, nil
}

// Mul builds a * b in the graph.
func Mul(a, b any) *autodiff.Node {
	return autodiff.MustApply(MulOp{}, a, b)
}
