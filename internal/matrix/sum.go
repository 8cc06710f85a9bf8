package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
	"github.com/gradflow-ml/gradflow/internal/scalar"
)

// SumOp reduces a matrix to the float64 sum of its elements, producing a
// scalar-payload node. This is the cross-kind boundary: the result node
// carries the scalar space while its history references a matrix operand,
// so a scalar backward seed fans out into a matrix gradient.
//
// Backward: every element contributed with weight 1, so the gradient is a
// dense matrix of the upstream derivative, in the operand's shape.
type SumOp struct{}

// Forward computes the element sum, saving the operand's shape.
func (SumOp) Forward(ctx *autodiff.Context, raw ...any) (any, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("sum: want 1 operand, got %d", len(raw))
	}
	a, ok := raw[0].(*mat.Dense)
	if !ok {
		return nil, fmt.Errorf("sum: operand is %T, want *mat.Dense", raw[0])
	}
	r, c := a.Dims()
	ctx.SaveForBackward(r, c)

	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += a.At(i, j)
		}
	}
	return sum, nil
}

// Backward fills the operand's shape with the upstream derivative.
func (SumOp) Backward(ctx *autodiff.Context, dOutput any) ([]any, error) {
	vals, err := ctx.SavedValues()
	if err != nil {
		return nil, err
	}
	r, c := vals[0].(int), vals[1].(int)
	d := dOutput.(float64)

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, d)
		}
	}
	return []any{out}, nil
}

// Variable wraps the float64 result with the scalar payload space.
func (SumOp) Variable(v any, h *autodiff.History) *autodiff.Node {
	return autodiff.NewNode(v, h, scalar.Space)
}

// PayloadType declares the float64 result type.
func (SumOp) PayloadType() reflect.Type {
	return reflect.TypeOf(float64(0))
}

// Sum builds the element sum of A in the graph.
func Sum(a any) *autodiff.Node {
	return autodiff.MustApply(SumOp{}, a)
}
