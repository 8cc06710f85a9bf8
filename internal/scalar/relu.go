package scalar

import "github.com/gradflow-ml/gradflow/internal/autodiff"

// ReLUOp computes max(0, a). Backward: 1 where a > 0, else 0.
type ReLUOp struct{ operation }

// Forward computes max(0, a), saving a for the backward pass.
func (ReLUOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	ctx.SaveForBackward(a)
	if a > 0 {
		return a, nil
	}
	return 0.0, nil
}

// Backward passes the derivative through only where the input was positive.
func (ReLUOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	if v.(float64) > 0 {
		return []any{dOutput}, nil
	}
	return []any{0.0}, nil
}

// ReLU builds max(0, a) in the graph.
func ReLU(a any) *autodiff.Node {
	return autodiff.MustApply(ReLUOp{}, a)
}

// SquareOp computes a². Backward: d(a²)/da = 2a.
type SquareOp struct{ operation }

// Forward computes a², saving a for the backward pass.
func (SquareOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	ctx.SaveForBackward(a)
	return a * a, nil
}

// Backward computes 2 * a * dOutput.
func (SquareOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	return []any{2 * v.(float64) * dOutput.(float64)}, nil
}

// Square builds a² in the graph.
func Square(a any) *autodiff.Node {
	return autodiff.MustApply(SquareOp{}, a)
}
