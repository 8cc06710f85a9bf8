package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradflow-ml/gradflow/internal/scalar"
)

func TestAdd_ForwardBackward(t *testing.T) {
	p := scalar.NewParam(3.0)
	q := scalar.NewParam(5.0)
	r := scalar.Add(p, q)

	assert.Equal(t, 8.0, scalar.Value(r))

	require.NoError(t, r.Backward(nil))
	assert.Equal(t, 1.0, scalar.Deriv(p))
	assert.Equal(t, 1.0, scalar.Deriv(q))
}

func TestMul_ForwardBackward(t *testing.T) {
	a := scalar.NewParam(4.0)
	b := scalar.NewParam(7.0)
	y := scalar.Mul(a, b)

	assert.Equal(t, 28.0, scalar.Value(y))

	require.NoError(t, y.Backward(nil))
	assert.Equal(t, 7.0, scalar.Deriv(a)) // d(ab)/da = b
	assert.Equal(t, 4.0, scalar.Deriv(b)) // d(ab)/db = a
}

func TestSquare_SpecScenario(t *testing.T) {
	// b = a², a = 2: backward seeds 1.0 and must put 4.0 on a.
	a := scalar.NewParam(2.0)
	b := scalar.Square(a)

	require.NoError(t, b.Backward(nil))
	assert.Equal(t, 4.0, scalar.Deriv(a))

	// A second pass adds, not resets.
	require.NoError(t, b.Backward(nil))
	assert.Equal(t, 8.0, scalar.Deriv(a))
}

func TestNeg_Backward(t *testing.T) {
	a := scalar.NewParam(2.0)
	y := scalar.Neg(a)

	assert.Equal(t, -2.0, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.Equal(t, -1.0, scalar.Deriv(a))
}

func TestSub_Backward(t *testing.T) {
	a := scalar.NewParam(10.0)
	b := scalar.NewParam(4.0)
	y := scalar.Sub(a, b)

	assert.Equal(t, 6.0, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.Equal(t, 1.0, scalar.Deriv(a))
	assert.Equal(t, -1.0, scalar.Deriv(b))
}

func TestInv_Backward(t *testing.T) {
	a := scalar.NewParam(4.0)
	y := scalar.Inv(a)

	assert.Equal(t, 0.25, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, -1.0/16.0, scalar.Deriv(a), 1e-12)
}

func TestDiv_Backward(t *testing.T) {
	a := scalar.NewParam(6.0)
	b := scalar.NewParam(3.0)
	y := scalar.Div(a, b)

	assert.Equal(t, 2.0, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, 1.0/3.0, scalar.Deriv(a), 1e-12)
	assert.InDelta(t, -6.0/9.0, scalar.Deriv(b), 1e-12)
}

func TestExp_Backward(t *testing.T) {
	a := scalar.NewParam(1.5)
	y := scalar.Exp(a)

	assert.InDelta(t, math.Exp(1.5), scalar.Value(y), 1e-12)
	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, math.Exp(1.5), scalar.Deriv(a), 1e-12)
}

func TestLog_Backward(t *testing.T) {
	a := scalar.NewParam(5.0)
	y := scalar.Log(a)

	assert.InDelta(t, math.Log(5.0), scalar.Value(y), 1e-12)
	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, 0.2, scalar.Deriv(a), 1e-12)
}

func TestLog_NonPositive(t *testing.T) {
	assert.Panics(t, func() { scalar.Log(scalar.NewParam(-1.0)) })
}

func TestSigmoid_Backward(t *testing.T) {
	a := scalar.NewParam(0.0)
	y := scalar.Sigmoid(a)

	assert.Equal(t, 0.5, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.InDelta(t, 0.25, scalar.Deriv(a), 1e-12) // σ'(0) = 0.25
}

func TestReLU_Backward(t *testing.T) {
	pos := scalar.NewParam(2.0)
	y := scalar.ReLU(pos)
	assert.Equal(t, 2.0, scalar.Value(y))
	require.NoError(t, y.Backward(nil))
	assert.Equal(t, 1.0, scalar.Deriv(pos))

	neg := scalar.NewParam(-2.0)
	z := scalar.ReLU(neg)
	assert.Equal(t, 0.0, scalar.Value(z))
	require.NoError(t, z.Backward(nil))
	assert.Equal(t, 0.0, scalar.Deriv(neg))
}

func TestComparisons_ZeroGradient(t *testing.T) {
	a := scalar.NewParam(1.0)
	b := scalar.NewParam(2.0)

	lt := scalar.Lt(a, b)
	assert.Equal(t, 1.0, scalar.Value(lt))
	require.NoError(t, lt.Backward(nil))
	assert.Equal(t, 0.0, scalar.Deriv(a))
	assert.Equal(t, 0.0, scalar.Deriv(b))

	eq := scalar.Eq(a, a)
	assert.Equal(t, 1.0, scalar.Value(eq))
}

func TestConstantOperand_NoDerivative(t *testing.T) {
	x := scalar.NewParam(3.0)
	c := scalar.New(10.0) // never grad-tracked

	y := scalar.Mul(x, c)
	require.NoError(t, y.Backward(nil))

	assert.Equal(t, 10.0, scalar.Deriv(x))
	assert.Nil(t, c.Derivative())
}

func TestExpression_Composite(t *testing.T) {
	// y = (a*b + c)², dy/da = 2(ab+c)*b, dy/db = 2(ab+c)*a, dy/dc = 2(ab+c)
	a := scalar.NewParam(2.0)
	b := scalar.NewParam(3.0)
	c := scalar.NewParam(4.0)

	y := scalar.Square(scalar.Add(scalar.Mul(a, b), c))
	assert.Equal(t, 100.0, scalar.Value(y))

	require.NoError(t, y.Backward(nil))
	assert.Equal(t, 60.0, scalar.Deriv(a))
	assert.Equal(t, 40.0, scalar.Deriv(b))
	assert.Equal(t, 20.0, scalar.Deriv(c))
}
