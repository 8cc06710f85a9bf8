// Package scalar implements the float64 payload kind for the autodiff
// engine, with the usual differentiable scalar operations.
//
// Scalars carry no shape, so the payload space is trivial: zero is 0.0,
// the backward seed is 1.0, accumulation is addition and Expand is the
// identity.
//
// Usage:
//
//	x := scalar.NewParam(2.0)
//	y := scalar.Square(x)
//	_ = y.Backward(nil)
//	fmt.Println(scalar.Deriv(x)) // 4.0
package scalar

import (
	"reflect"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

type space struct{}

func (space) Zero(any) any { return 0.0 }

func (space) One(any) any { return 1.0 }

func (space) Add(a, b any) any { return a.(float64) + b.(float64) }

func (space) Expand(_, d any) any { return d }

// Space is the float64 payload capability consumed by the engine.
var Space autodiff.Space = space{}

// New creates a constant scalar leaf. It is ignored by backpropagation
// until marked with RequireGrad.
func New(v float64) *autodiff.Node {
	return autodiff.NewLeaf(v, space{})
}

// NewParam creates a grad-tracked scalar leaf (a trainable parameter).
func NewParam(v float64) *autodiff.Node {
	n := New(v)
	n.RequireGrad()
	return n
}

// Value returns the node's payload as a float64.
func Value(n *autodiff.Node) float64 {
	return n.Value().(float64)
}

// Deriv returns the accumulated derivative, or 0 if none has arrived.
func Deriv(n *autodiff.Node) float64 {
	d := n.Derivative()
	if d == nil {
		return 0
	}
	return d.(float64)
}

var float64Type = reflect.TypeOf(float64(0))

// operation supplies the node factory and payload type shared by every
// scalar op.
type operation struct{}

func (operation) Variable(v any, h *autodiff.History) *autodiff.Node {
	return autodiff.NewNode(v, h, space{})
}

func (operation) PayloadType() reflect.Type {
	return float64Type
}
