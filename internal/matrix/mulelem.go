package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// MulElemOp computes the element-wise (Hadamard) product A ∘ B.
//
// Backward pass:
//   - dL/dA = dL/dC ∘ B
//   - dL/dB = dL/dC ∘ A
type MulElemOp struct{ operation }

// Forward computes A ∘ B, saving both operands for the backward pass.
func (MulElemOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("mulelem: %dx%d ∘ %dx%d shape mismatch", ar, ac, br, bc)
	}
	ctx.SaveForBackward(a, b)

	var out mat.Dense
	out.MulElem(a, b)
	return &out, nil
}

// Backward computes the cross element-wise gradients.
func (MulElemOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	a, b := vals[0].(*mat.Dense), vals[1].(*mat.Dense)
	d := dOutput.(*mat.Dense)

	var gradA, gradB mat.Dense
	gradA.MulElem(d, b)
	gradB.MulElem(d, a)
	return []any{&gradA, &gradB}, nil
}

// MulElem builds A ∘ B in the graph.
func MulElem(a, b any) *autodiff.Node {
	return autodiff.MustApply(MulElemOp{}, a, b)
}

// ScaleOp computes k * A for a scalar factor k given as the second
// operand. The factor is almost always a raw constant, in which case its
// gradient slot is dropped during the chain rule.
type ScaleOp struct{ operation }

// Forward computes k * A, saving both for the backward pass.
func (ScaleOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	if len(raw) != 2 {
		return nil, fmt.Errorf("scale: want 2 operands, got %d", len(raw))
	}
	a, ok := raw[0].(*mat.Dense)
	if !ok {
		return nil, fmt.Errorf("scale: operand 0 is %T, want *mat.Dense", raw[0])
	}
	k, ok := raw[1].(float64)
	if !ok {
		return nil, fmt.Errorf("scale: operand 1 is %T, want float64", raw[1])
	}
	ctx.SaveForBackward(a, k)

	var out mat.Dense
	out.Scale(k, a)
	return &out, nil
}

// Backward computes dA = k * d and, for the factor slot, the dot product
// of d with A (valid even though the slot is usually a dropped constant).
func (ScaleOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	a, k := vals[0].(*mat.Dense), vals[1].(float64)
	d := dOutput.(*mat.Dense)

	var gradA mat.Dense
	gradA.Scale(k, d)

	gradK := 0.0
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			gradK += d.At(i, j) * a.At(i, j)
		}
	}
	return []any{&gradA, gradK}, nil
}

// Scale builds k * A in the graph.
func Scale(a any, k float64) *autodiff.Node {
	return autodiff.MustApply(ScaleOp{}, a, k)
}
