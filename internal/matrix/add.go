package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

// AddOp computes element-wise A + B for same-shape matrices. The upstream
// derivative flows to both operands unchanged.
type AddOp struct{ operation }

// Forward computes A + B.
func (AddOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, b, err := binary(raw)
	if err != nil {
		return nil, err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("add: %dx%d + %dx%d shape mismatch", ar, ac, br, bc)
	}

	var out mat.Dense
	out.Add(a, b)
	return &out, nil
}

// Backward routes the upstream derivative unchanged to both operands.
func (AddOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{dOutput, dOutput}, nil
}

// Add builds A + B in the graph.
func Add(a, b any) *autodiff.Node {
	return autodiff.MustApply(AddOp{}, a, b)
}

// AddRowOp computes A + row with the 1×c row broadcast over A's rows.
//
// Backward returns the upstream derivative for both slots; the row
// operand's Expand hook reduces its copy back to 1×c by summing rows.
type AddRowOp struct{ operation }

// Forward computes A + row broadcast.
func (AddRowOp) Forward(_ *autodiff.Context, raw ...any) (any, error) {
	a, row, err := binary(raw)
	if err != nil {
		return nil, err
	}
	ar, ac := a.Dims()
	rr, rc := row.Dims()
	if rr != 1 || rc != ac {
		return nil, fmt.Errorf("addrow: row is %dx%d, want 1x%d", rr, rc, ac)
	}

	out := mat.NewDense(ar, ac, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, a.At(i, j)+row.At(0, j))
		}
	}
	return out, nil
}

// Backward routes the upstream derivative to both slots; broadcast
// reduction happens in the row operand's Expand.
func (AddRowOp) Backward(_ *autodiff.Context, dOutput any) ([]any, error) {
	return []any{dOutput, dOutput}, nil
}

// AddRow builds A + row (broadcast) in the graph.
func AddRow(a, row any) *autodiff.Node {
	return autodiff.MustApply(AddRowOp{}, a, row)
}
