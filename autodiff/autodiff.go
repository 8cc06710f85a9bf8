// Copyright 2026 GradFlow ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the reverse-mode automatic differentiation
// engine: graph construction over opaque payloads and topological
// backpropagation with derivative accumulation.
//
// The engine performs no numeric math. Concrete payload kinds plug in
// through the Space capability and the Operation contract; see the scalar
// and matrix packages for reference implementations.
//
// Example:
//
//	import (
//	    "github.com/gradflow-ml/gradflow/autodiff"
//	    "github.com/gradflow-ml/gradflow/scalar"
//	)
//
//	func main() {
//	    x := scalar.NewParam(2.0)
//	    y := scalar.Square(x)
//	    _ = y.Backward(nil)       // seed defaults to 1.0
//	    _ = scalar.Deriv(x)       // 4.0
//	}
package autodiff

import internal "github.com/gradflow-ml/gradflow/internal/autodiff"

// Node is one vertex of the computation DAG.
type Node = internal.Node

// Space is the arithmetic capability of one concrete payload kind.
type Space = internal.Space

// Context carries forward-pass state to the backward pass of one
// operation invocation.
type Context = internal.Context

// History is the immutable provenance record of a derived node.
type History = internal.History

// Operation is the forward/backward contract concrete operations implement.
type Operation = internal.Operation

// Contribution is one (operand, derivative) pair emitted by a chain-rule
// step.
type Contribution = internal.Contribution

// Sentinel errors; all are programmer-error conditions, surfaced
// immediately and never retried.
var (
	ErrTypeMismatch  = internal.ErrTypeMismatch
	ErrUnsavedValues = internal.ErrUnsavedValues
	ErrFrozenContext = internal.ErrFrozenContext
	ErrArityMismatch = internal.ErrArityMismatch
)

// NewNode creates a node from a payload, optional provenance and space.
func NewNode(value any, history *History, space Space) *Node {
	return internal.NewNode(value, history, space)
}

// NewLeaf creates a user-supplied leaf node.
func NewLeaf(value any, space Space) *Node {
	return internal.NewLeaf(value, space)
}

// NewContext creates an operation invocation context.
func NewContext(noGrad bool) *Context {
	return internal.NewContext(noGrad)
}

// Apply runs an operation's forward pass over the operands and wraps the
// result in a new node, recording provenance when needed.
func Apply(op Operation, operands ...any) (*Node, error) {
	return internal.Apply(op, operands...)
}

// MustApply is Apply that panics on error.
func MustApply(op Operation, operands ...any) *Node {
	return internal.MustApply(op, operands...)
}

// Backpropagate propagates seed from root back to every reachable leaf.
func Backpropagate(root *Node, seed any) error {
	return internal.Backpropagate(root, seed)
}

// IsConstant reports whether an operand is excluded from differentiation.
func IsConstant(v any) bool {
	return internal.IsConstant(v)
}
