package scalar

import (
	"math"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// SigmoidOp computes σ(a) = 1 / (1 + e^-a).
//
// Backward: dσ/da = σ(a) * (1 - σ(a)), computed from the saved forward
// result.
type SigmoidOp struct{ operation }

// Forward computes σ(a), saving the result for the backward pass.
func (SigmoidOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	out := 1 / (1 + math.Exp(-a))
	ctx.SaveForBackward(out)
	return out, nil
}

// Backward computes out * (1 - out) * dOutput.
func (SigmoidOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	out := v.(float64)
	return []any{out * (1 - out) * dOutput.(float64)}, nil
}

// Sigmoid builds σ(a) in the graph.
func Sigmoid(a any) *autodiff.Node {
	return autodiff.MustApply(SigmoidOp{}, a)
}
