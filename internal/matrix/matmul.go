package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// MatMulOp computes C = A @ B.
//
// Backward pass:
//   - dL/dA = dL/dC @ Bᵀ
//   - dL/dB = Aᵀ @ dL/dC
type MatMulOp struct{ operation }

// Forward computes A @ B, saving both operands for the backward pass.
func (MatMulOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("matmul: %dx%d @ %dx%d dimension mismatch", ar, ac, br, bc)
	}
	ctx.SaveForBackward(a, b)

	var out mat.Dense
	out.Mul(a, b)
	return &out, nil
}

// Backward computes dA = d @ Bᵀ and dB = Aᵀ @ d.
func (MatMulOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	a, b := vals[0].(*mat.Dense), vals[1].(*mat.Dense)
	d := dOutput.(*mat.Dense)

	var gradA, gradB mat.Dense
	gradA.Mul(d, b.T())
	gradB.Mul(a.T(), d)
	return []any{&gradA, &gradB}, nil
}

// MatMul builds A @ B in the graph.
func MatMul(a, b any) *autodiff.Node {
	return autodiff.MustApply(MatMulOp{}, a, b)
}
