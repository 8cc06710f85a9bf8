// Copyright 2026 GradFlow ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the float64 payload kind and its differentiable
// operations.
//
// Example:
//
//	a := scalar.NewParam(2.0)
//	b := scalar.NewParam(3.0)
//	y := scalar.Sigmoid(scalar.Mul(a, b))
//	_ = y.Backward(nil)
//	da := scalar.Deriv(a)
package scalar

import (
	"github.com/gradflow-ml/gradflow/autodiff"
	internal "github.com/gradflow-ml/gradflow/internal/scalar"
)

// Space is the float64 payload capability.
var Space = internal.Space

// New creates a constant scalar leaf.
func New(v float64) *autodiff.Node { return internal.New(v) }

// NewParam creates a grad-tracked scalar leaf.
func NewParam(v float64) *autodiff.Node { return internal.NewParam(v) }

// Value returns the node's payload as a float64.
func Value(n *autodiff.Node) float64 { return internal.Value(n) }

// Deriv returns the accumulated derivative, or 0 if none has arrived.
func Deriv(n *autodiff.Node) float64 { return internal.Deriv(n) }

// Graph builders. Operands are nodes or raw float64 constants.

func Add(a, b any) *autodiff.Node { return internal.Add(a, b) }

func Sub(a, b any) *autodiff.Node { return internal.Sub(a, b) }

func Mul(a, b any) *autodiff.Node { return internal.Mul(a, b) }

func Div(a, b any) *autodiff.Node { return internal.Div(a, b) }

func Neg(a any) *autodiff.Node { return internal.Neg(a) }

func Inv(a any) *autodiff.Node { return internal.Inv(a) }

func Exp(a any) *autodiff.Node { return internal.Exp(a) }

func Log(a any) *autodiff.Node { return internal.Log(a) }

func Sigmoid(a any) *autodiff.Node { return internal.Sigmoid(a) }

func ReLU(a any) *autodiff.Node { return internal.ReLU(a) }

func Square(a any) *autodiff.Node { return internal.Square(a) }

func Lt(a, b any) *autodiff.Node { return internal.Lt(a, b) }

func Eq(a, b any) *autodiff.Node { return internal.Eq(a, b) }
