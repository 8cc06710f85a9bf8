package scalar

import "github.com/gradflow-ml/gradflow/internal/autodiff"

// NegOp computes -a. Backward: d(-a)/da = -1.
type NegOp struct{ operation }

// Forward computes -a.
func (NegOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	return -a, nil
}

// Backward negates the upstream derivative.
func (NegOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{-dOutput.(float64)}, nil
}

// Neg builds -a in the graph.
func Neg(a any) *autodiff.Node {
	return autodiff.MustApply(NegOp{}, a)
}

// InvOp computes 1/a. Backward: d(1/a)/da = -1/a².
type InvOp struct{ operation }

// Forward computes 1/a, saving a for the backward pass.
func (InvOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, err := unary(raw)
	if err != nil {
		return nil, err
	}
	ctx.SaveForBackward(a)
	return 1 / a, nil
}

// Backward computes -dOutput / a².
func (InvOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	v, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	a := v.(float64)
	return []any{-dOutput.(float64) / (a * a)}, nil
}

// Inv builds 1/a in the graph.
func Inv(a any) *autodiff.Node {
	return autodiff.MustApply(InvOp{}, a)
}

// Div builds a / b as a * (1/b).
func Div(a, b any) *autodiff.Node {
	return Mul(a, Inv(b))
}
