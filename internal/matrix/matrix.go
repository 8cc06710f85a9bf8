// Package matrix implements a dense-matrix payload kind for the autodiff
// engine on top of gonum's mat.Dense.
//
// Unlike scalars, matrix payloads carry shape, so the space implements a
// real Expand: a gradient produced against a broadcast operand (a 1×c row
// or r×1 column) is reduced back to the operand's shape by summation
// before accumulation.
//
// Usage:
//
//	w := matrix.NewParam(2, 2, []float64{1, 2, 3, 4})
//	x := matrix.New(2, 2, []float64{5, 6, 7, 8})
//	y := matrix.Sum(matrix.MatMul(w, x))
//	_ = y.Backward(nil)
//	grad := matrix.Deriv(w)
package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/gradflow-ml/gradflow/internal/autodiff"
)

type space struct{}

func (space) Zero(like any) any {
	r, c := like.(*mat.Dense).Dims()
	return mat.NewDense(r, c, nil)
}

func (space) One(like any) any {
	r, c := like.(*mat.Dense).Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, 1)
		}
	}
	return out
}

func (space) Add(a, b any) any {
	var out mat.Dense
	out.Add(a.(*mat.Dense), b.(*mat.Dense))
	return &out
}

// Expand reduces a broadcast gradient back to value's shape: gradients
// against a 1×c row operand are summed over rows, gradients against an
// r×1 column operand are summed over columns. Shape-preserving gradients
// pass through unchanged.
func (space) Expand(value, delta any) any {
	v := value.(*mat.Dense)
	d := delta.(*mat.Dense)
	vr, vc := v.Dims()
	dr, dc := d.Dims()

	switch {
	case vr == dr && vc == dc:
		return delta
	case vr == 1 && vc == dc:
		out := mat.NewDense(1, dc, nil)
		for j := 0; j < dc; j++ {
			sum := 0.0
			for i := 0; i < dr; i++ {
				sum += d.At(i, j)
			}
			out.Set(0, j, sum)
		}
		return out
	case vc == 1 && vr == dr:
		out := mat.NewDense(dr, 1, nil)
		for i := 0; i < dr; i++ {
			sum := 0.0
			for j := 0; j < dc; j++ {
				sum += d.At(i, j)
			}
			out.Set(i, 0, sum)
		}
		return out
	default:
		panic(fmt.Sprintf("matrix: cannot reduce %dx%d gradient to %dx%d operand", dr, dc, vr, vc))
	}
}

// Space is the *mat.Dense payload capability consumed by the engine.
var Space autodiff.Space = space{}

// New creates a constant r×c matrix leaf. Data is in row-major order and
// may be nil for a zero matrix.
func New(r, c int, data []float64) *autodiff.Node {
	return autodiff.NewLeaf(mat.NewDense(r, c, data), space{})
}

// NewParam creates a grad-tracked r×c matrix leaf.
func NewParam(r, c int, data []float64) *autodiff.Node {
	n := New(r, c, data)
	n.RequireGrad()
	return n
}

// FromDense wraps an existing gonum matrix as a constant leaf. The matrix
// is not copied; callers must not mutate it afterwards.
func FromDense(m *mat.Dense) *autodiff.Node {
	return autodiff.NewLeaf(m, space{})
}

// Value returns the node's payload as a *mat.Dense.
func Value(n *autodiff.Node) *mat.Dense {
	return n.Value().(*mat.Dense)
}

// Deriv returns the accumulated derivative, or nil if none has arrived.
func Deriv(n *autodiff.Node) *mat.Dense {
	d := n.Derivative()
	if d == nil {
		return nil
	}
	return d.(*mat.Dense)
}

var denseType = reflect.TypeOf(&mat.Dense{})

// operation supplies the node factory and payload type shared by the
// matrix-valued ops.
type operation struct{}

func (operation) Variable(v any, h *autodiff.History) *autodiff.Node {
	return autodiff.NewNode(v, h, space{})
}

func (operation) PayloadType() reflect.Type {
	return denseType
}

func binary(raw []any) (*mat.Dense, *mat.Dense, error) {
	if len(raw) != 2 {
		return nil, nil, fmt.Errorf("want 2 operands, got %d", len(raw))
	}
	a, ok := raw[0].(*mat.Dense)
	if !ok {
		return nil, nil, fmt.Errorf("operand 0 is %T, want *mat.Dense", raw[0])
	}
	b, ok := raw[1].(*mat.Dense)
	if !ok {
		return nil, nil, fmt.Errorf("operand 1 is %T, want *mat.Dense", raw[1])
	}
	return a, b, nil
}
