package scalar

import (
	"fmt"
	"math"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// ExpOp computes e^a. Backward: d(e^a)/da = e^a, so the forward result
// itself is saved instead of the operand.
type ExpOp struct{ operation }

// Forward computes e^a, saving the result for the backward pass.
func (ExpOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	out := math.Exp(a)
	ctx.SaveForBackward(out)
	return out, nil
}

// Backward computes out * dOutput.
func (ExpOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	return []any{v.(float64) * dOutput.(float64)}, nil
}

// Exp builds e^a in the graph.
func Exp(a any) *autodiff.Node {
	return autodiff.MustApply(ExpOp{}, a)
}

// LogOp computes ln(a). Backward: d(ln a)/da = 1/a.
//
// Inputs must be positive.
type LogOp struct{ operation }

// Forward computes ln(a), saving a for the backward pass.
func (LogOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	if a <= 0 {
		return nil, fmt.Errorf("log of non-positive value %v", a)
	}
	ctx.SaveForBackward(a)
	return math.Log(a), nil
}

// Backward computes dOutput / a.
func (LogOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	return []any{dOutput.(float64) / v.(float64)}, nil
}

// Log builds ln(a) in the graph.
func Log(a any) *autodiff.Node {
	return autodiff.MustApply(LogOp{}, a)
}
