// Copyright 2026 GradFlow ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense-matrix payload kind, backed by gonum,
// and its differentiable operations.
//
// Example:
//
//	x := matrix.New(2, 3, data)              // constant input
//	w := matrix.NewParam(3, 2, weights)      // trainable
//	y := matrix.Sum(matrix.MatMul(x, w))
//	_ = y.Backward(nil)
//	grad := matrix.Deriv(w)                  // *mat.Dense
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/autodiff"
	internal "github.com/gradflow-ml/gradflow/internal/matrix"
)

// Space is the *mat.Dense payload capability.
var Space = internal.Space

// New creates a constant r×c matrix leaf from row-major data (nil for
// zeros).
func New(r, c int, data []float64) *autodiff.Node { return internal.New(r, c, data) }

// NewParam creates a grad-tracked r×c matrix leaf.
func NewParam(r, c int, data []float64) *autodiff.Node { return internal.NewParam(r, c, data) }

// FromDense wraps an existing gonum matrix as a constant leaf without
// copying.
func FromDense(m *mat.Dense) *autodiff.Node { return internal.FromDense(m) }

// Value returns the node's payload as a *mat.Dense.
func Value(n *autodiff.Node) *mat.Dense { return internal.Value(n) }

// Deriv returns the accumulated derivative, or nil if none has arrived.
func Deriv(n *autodiff.Node) *mat.Dense { return internal.Deriv(n) }

// Graph builders.

func MatMul(a, b any) *autodiff.Node { return internal.MatMul(a, b) }

func Add(a, b any) *autodiff.Node { return internal.Add(a, b) }

func AddRow(a, row any) *autodiff.Node { return internal.AddRow(a, row) }

func MulElem(a, b any) *autodiff.Node { return internal.MulElem(a, b) }

func Scale(a any, k float64) *autodiff.Node { return internal.Scale(a, k) }

func Sum(a any) *autodiff.Node { return internal.Sum(a) }
