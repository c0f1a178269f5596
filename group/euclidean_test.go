package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liegeo/group"
)

// TestNewEuclidean_BadDimension verifies that non-positive dimensions are
// rejected at construction.
func TestNewEuclidean_BadDimension(t *testing.T) {
	_, err := group.NewEuclidean(0)
	assert.ErrorIs(t, err, group.ErrBadDimension, "dim=0 must be rejected")

	_, err = group.NewEuclidean(-3)
	assert.ErrorIs(t, err, group.ErrBadDimension, "negative dim must be rejected")
}

// TestEuclidean_GroupLaws checks composition, inverse and identity on R^3.
func TestEuclidean_GroupLaws(t *testing.T) {
	e, err := group.NewEuclidean(3)
	require.NoError(t, err)

	a := []float64{1, -2, 0.5}
	b := []float64{0.25, 4, -1}

	assert.Equal(t, []float64{1.25, 2, -0.5}, e.Compose(a, b), "compose is addition")
	assert.Equal(t, e.Identity(), e.Compose(a, e.Inverse(a)), "a + (-a) = 0")
	assert.Equal(t, group.Vector, e.PointType(), "Euclidean is a Vector group")
	assert.Equal(t, 3, e.Dim())
	assert.Equal(t, 3, e.PointSize())
}

// TestEuclidean_TrivialGeometry checks that translation maps, brackets and
// the group exp/log are all trivial on an additive group.
func TestEuclidean_TrivialGeometry(t *testing.T) {
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)

	v := []float64{3, -7}
	base := []float64{1, 1}

	translate := e.TangentTranslation(base, group.Left, true)
	assert.Equal(t, v, translate(v), "translation maps are the identity")

	assert.Equal(t, []float64{0, 0}, e.Bracket(v, base), "abelian bracket vanishes")
	assert.Equal(t, v, e.Exp(v), "group exp is the identity map")
	assert.Equal(t, v, e.Log(v), "group log is the identity map")

	jac, err := e.JacobianTranslation(base, group.Right)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 1}, jac, "Jacobian is I")

	assert.False(t, e.SupportsBiInvariant(), "R^n is outside the bi-invariant family")
}
