package autodiff_test

import (
	"fmt"
	"reflect"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// Test payload kind: plain float64 with identity expand.

type floatSpace struct{}

func (floatSpace) Zero(any) any { return 0.0 }

func (floatSpace) One(any) any { return 1.0 }

func (floatSpace) Add(a, b any) any { return a.(float64) + b.(float64) }

func (floatSpace) Expand(_, d any) any { return d }

// floatOp supplies the factory and payload type shared by all test ops.
type floatOp struct{}

func (floatOp) Variable(v any, h *autodiff.History) *autodiff.Node {
	return autodiff.NewNode(v, h, floatSpace{})
}

func (floatOp) PayloadType() reflect.Type {
	return reflect.TypeOf(float64(0))
}

func leaf(v float64) *autodiff.Node {
	n := autodiff.NewLeaf(v, floatSpace{})
	n.RequireGrad()
	return n
}

func deriv(n *autodiff.Node) float64 {
	return n.Derivative().(float64)
}

// squareOp: f(a) = a*a, saving a for the backward pass.
type squareOp struct{ floatOp }

func (squareOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a := raw[0].(float64)
	ctx.SaveForBackward(a)
	return a * a, nil
}

func (squareOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	a, err := ctx.SavedValue()
	if err != nil {
		return nil, err
	}
	return []any{2 * a.(float64) * dOutput.(float64)}, nil
}

// addOp: f(a, b) = a + b.
type addOp struct{ floatOp }

func (addOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	return raw[0].(float64) + raw[1].(float64), nil
}

func (addOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{dOutput, dOutput}, nil
}

// mulOp: f(a, b) = a * b, saving both operands.
type mulOp struct{ floatOp }

func (mulOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, b := raw[0].(float64), raw[1].(float64)
	ctx.SaveForBackward(a, b)
	return a * b, nil
}

func (mulOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	a, b := vals[0].(float64), vals[1].(float64)
	d := dOutput.(float64)
	return []any{b * d, a * d}, nil
}

// scaleOp: f(a) = k*a for a constant k given at construction.
type scaleOp struct {
	floatOp
	k float64
}

func (op scaleOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	return op.k * raw[0].(float64), nil
}

func (op scaleOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{op.k * dOutput.(float64)}, nil
}

// badArityOp returns one gradient for two operands.
type badArityOp struct{ addOp }

func (badArityOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{dOutput}, nil
}

// wrongTypeOp declares float64 but returns a string.
type wrongTypeOp struct{ floatOp }

func (wrongTypeOp) Forward(_ *autodiff.Context, _ ...any) (any, error) {
	return "not a float", nil
}

func (wrongTypeOp) Backward(_ *autodiff.Context, _ any) ([]any, error) {
	return nil, fmt.Errorf("unreachable")
}
