package invariant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liegeo/group"
	"github.com/katalvlaran/liegeo/invariant"
)

// TestLogFromIdentity_SqrtConstruction is the diag(1,4) scenario: the log of
// point (2,4) rescales coordinates by sqrt(1/1), sqrt(1/4).
func TestLogFromIdentity_SqrtConstruction(t *testing.T) {
	_, m := euclidean2(t)

	log, err := m.LogFromIdentity([]float64{2, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2}, log, 1e-12)
}

// TestExpFromIdentity_SqrtConstruction is the mirror: exp scales by sqrt(M).
func TestExpFromIdentity_SqrtConstruction(t *testing.T) {
	_, m := euclidean2(t)

	exp, err := m.ExpFromIdentity([]float64{2, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4}, exp, 1e-12, "sqrt(diag(1,4)) = diag(1,2)")
}

// TestExpLog_RoundTripAtBasePoint checks exp(log(p, b), b) ≈ p and
// log(exp(v, b), b) ≈ v away from identity.
func TestExpLog_RoundTripAtBasePoint(t *testing.T) {
	_, m := euclidean2(t)
	base := []float64{1, -3}

	point := []float64{4, 2}
	log, err := m.Log(point, base)
	require.NoError(t, err)
	back, err := m.Exp(log, base)
	require.NoError(t, err)
	assert.InDeltaSlice(t, point, back, 1e-10, "exp∘log")

	vec := []float64{-0.5, 1.5}
	exp, err := m.Exp(vec, base)
	require.NoError(t, err)
	backVec, err := m.Log(exp, base)
	require.NoError(t, err)
	assert.InDeltaSlice(t, vec, backVec, 1e-10, "log∘exp")
}

// TestExpLog_RightInvariant runs the same round trip with a right-invariant
// metric, exercising the inverse(LeftExp(-v)) branch.
func TestExpLog_RightInvariant(t *testing.T) {
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)
	m, err := invariant.New(e, invariant.Options{
		MetricMatrix: []float64{1, 0, 0, 4},
		Side:         group.Right,
	})
	require.NoError(t, err)

	base := []float64{2, 1}
	vec := []float64{1, -1}
	exp, err := m.Exp(vec, base)
	require.NoError(t, err)
	back, err := m.Log(exp, base)
	require.NoError(t, err)
	assert.InDeltaSlice(t, vec, back, 1e-10)
}

// TestExp_IdentityBasePointShortCircuit: a base point within tolerance of
// identity must take the identity path.
func TestExp_IdentityBasePointShortCircuit(t *testing.T) {
	_, m := euclidean2(t)

	direct, err := m.ExpFromIdentity([]float64{1, 1})
	require.NoError(t, err)
	viaBase, err := m.Exp([]float64{1, 1}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, direct, viaBase)
}

// TestBiInvariant_ExpIsGroupExp is the π-rotation scenario: the Riemannian
// exponential of the bi-invariant metric is the group exponential, so the
// z generator scaled by π lands on the closed rotation diag(-1,-1,1).
func TestBiInvariant_ExpIsGroupExp(t *testing.T) {
	so, m := so3BiInvariant(t)

	generator := []float64{
		0, -math.Pi, 0,
		math.Pi, 0, 0,
		0, 0, 0,
	}
	got, err := m.ExpFromIdentity(generator)
	require.NoError(t, err)
	assert.InDeltaSlice(t, so.Exp(generator), got, 1e-12, "delegates to the group exp")
	assert.InDeltaSlice(t, []float64{-1, 0, 0, 0, -1, 0, 0, 0, 1}, got, 1e-10,
		"closed rotation by π")
}

// TestBiInvariant_ExpLogRoundTripAtBase checks the lifted maps on a rotated
// base point.
func TestBiInvariant_ExpLogRoundTripAtBase(t *testing.T) {
	so, m := so3BiInvariant(t)

	base := so.Exp([]float64{0, -0.6, 0.2, 0.6, 0, -0.3, -0.2, 0.3, 0})
	vecAtID := []float64{0, -0.4, 0, 0.4, 0, 0.1, 0, -0.1, 0}
	vec := so.TangentTranslation(base, group.Left, false)(vecAtID)

	exp, err := m.Exp(vec, base)
	require.NoError(t, err)
	back, err := m.Log(exp, base)
	require.NoError(t, err)
	assert.InDeltaSlice(t, vec, back, 1e-9)
}

// TestLeftExp_IndefiniteMetric: the square-root construction needs a
// positive-definite form.
func TestLeftExp_IndefiniteMetric(t *testing.T) {
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)
	m, err := invariant.New(e, invariant.Options{MetricMatrix: []float64{1, 0, 0, -1}})
	require.NoError(t, err)

	_, err = m.LeftExpFromIdentity([]float64{1, 1})
	assert.ErrorIs(t, err, invariant.ErrIndefiniteMetric)
}

// TestLeftExp_MatrixGroupNotImplemented: general invariant metrics on matrix
// groups have no closed-form exp; the integrator path serves them.
func TestLeftExp_MatrixGroupNotImplemented(t *testing.T) {
	so, err := group.NewSpecialOrthogonal(3)
	require.NoError(t, err)
	m, err := invariant.New(so, invariant.Options{})
	require.NoError(t, err)

	_, err = m.LeftExpFromIdentity(make([]float64, 9))
	assert.ErrorIs(t, err, invariant.ErrNotImplemented)
}
