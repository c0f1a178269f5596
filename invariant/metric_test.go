package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liegeo/group"
	"github.com/katalvlaran/liegeo/invariant"
	"github.com/katalvlaran/liegeo/liealgebra"
)

// euclidean2 builds R^2 with the diag(1, 4) left-invariant metric used by
// several scenarios below.
func euclidean2(t *testing.T) (*group.Euclidean, *invariant.Metric) {
	t.Helper()
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)

	algebra, err := liealgebra.NewVectorSpace(2)
	require.NoError(t, err)

	m, err := invariant.New(e, invariant.Options{
		Algebra:      algebra,
		MetricMatrix: []float64{1, 0, 0, 4},
		Side:         group.Left,
	})
	require.NoError(t, err)

	return e, m
}

// so3BiInvariant builds SO(3) with the canonical bi-invariant metric.
func so3BiInvariant(t *testing.T) (*group.SpecialOrthogonal, *invariant.Metric) {
	t.Helper()
	so, err := group.NewSpecialOrthogonal(3)
	require.NoError(t, err)

	m, err := invariant.NewBiInvariant(so)
	require.NoError(t, err)

	return so, m
}

// TestNew_Validation exercises every construction-time failure.
func TestNew_Validation(t *testing.T) {
	_, err := invariant.New(nil, invariant.Options{})
	assert.ErrorIs(t, err, invariant.ErrNilGroup, "nil group")

	e, err := group.NewEuclidean(2)
	require.NoError(t, err)

	_, err = invariant.New(e, invariant.Options{Side: group.Side(7)})
	assert.ErrorIs(t, err, invariant.ErrInvalidConfiguration, "side out of range")

	_, err = invariant.New(e, invariant.Options{MetricMatrix: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, invariant.ErrDimensionMismatch, "wrong shape")

	_, err = invariant.New(e, invariant.Options{MetricMatrix: []float64{1, 2, 0, 1}})
	assert.ErrorIs(t, err, invariant.ErrAsymmetricMetric, "asymmetric matrix")
}

// TestNew_Signature checks the eigenvalue signature for definite,
// indefinite and degenerate forms.
func TestNew_Signature(t *testing.T) {
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)

	cases := []struct {
		name   string
		matrix []float64
		want   invariant.Signature
	}{
		{"positive definite", []float64{1, 0, 0, 4}, invariant.Signature{Pos: 2}},
		{"lorentzian", []float64{1, 0, 0, -1}, invariant.Signature{Pos: 1, Neg: 1}},
		{"degenerate", []float64{1, 0, 0, 0}, invariant.Signature{Pos: 1, Null: 1}},
	}
	for _, tc := range cases {
		m, err := invariant.New(e, invariant.Options{MetricMatrix: tc.matrix})
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, m.Signature(), tc.name)
	}
}

// TestInnerProductAtIdentity_Vector checks uᵀMv on a Vector group.
func TestInnerProductAtIdentity_Vector(t *testing.T) {
	_, m := euclidean2(t)

	ip, err := m.InnerProductAtIdentity([]float64{1, 2}, []float64{3, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1*3+4*2*1, ip, 1e-12, "1·3 + 4·2·1")
}

// TestInnerProductAtIdentity_MatrixWeighted checks the Hadamard inner
// product on so(3) with a diagonal metric reweighting basis directions.
func TestInnerProductAtIdentity_MatrixWeighted(t *testing.T) {
	so, err := group.NewSpecialOrthogonal(3)
	require.NoError(t, err)
	algebra, err := liealgebra.NewSkewSymmetric(3)
	require.NoError(t, err)

	m, err := invariant.New(so, invariant.Options{
		Algebra:      algebra,
		MetricMatrix: []float64{2, 0, 0, 0, 3, 0, 0, 0, 5},
	})
	require.NoError(t, err)

	basis := algebra.Basis()
	ip, err := m.InnerProductAtIdentity(basis[0], basis[0])
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ip, 1e-12, "two ±1 entries, weight 2 each")

	ip, err = m.InnerProductAtIdentity(basis[2], basis[2])
	require.NoError(t, err)
	assert.InDelta(t, 10.0, ip, 1e-12, "two ±1 entries, weight 5 each")
}

// TestInnerProduct_SymmetryAtBasePoint verifies ⟨u,v⟩_p = ⟨v,u⟩_p on both
// parameterizations.
func TestInnerProduct_SymmetryAtBasePoint(t *testing.T) {
	_, em := euclidean2(t)
	u, v := []float64{1, -2}, []float64{0.5, 3}
	base := []float64{2, 2}

	uv, err := em.InnerProduct(u, v, base)
	require.NoError(t, err)
	vu, err := em.InnerProduct(v, u, base)
	require.NoError(t, err)
	assert.InDelta(t, uv, vu, 1e-12, "symmetry on R^2")

	so, sm := so3BiInvariant(t)
	baseRot := so.Exp([]float64{0, -0.4, 0.1, 0.4, 0, -0.7, -0.1, 0.7, 0})
	x := so.TangentTranslation(baseRot, group.Left, false)(
		[]float64{0, -1, 0, 1, 0, 0, 0, 0, 0})
	y := so.TangentTranslation(baseRot, group.Left, false)(
		[]float64{0, 0, -1, 0, 0, 0, 1, 0, 0})

	xy, err := sm.InnerProduct(x, y, baseRot)
	require.NoError(t, err)
	yx, err := sm.InnerProduct(y, x, baseRot)
	require.NoError(t, err)
	assert.InDelta(t, xy, yx, 1e-12, "symmetry on SO(3)")
}

// TestMetricMatrix_Euclidean pulls the form back through the (identity)
// translation Jacobian: it must equal the form at identity.
func TestMetricMatrix_Euclidean(t *testing.T) {
	_, m := euclidean2(t)

	got, err := m.MetricMatrix([]float64{3, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 4}, got, 1e-12, "flat group: J = I")

	atID, err := m.MetricMatrix(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 4}, atID)
}

// TestMetricMatrix_MatrixGroup must refuse: no dim×dim representation exists.
func TestMetricMatrix_MatrixGroup(t *testing.T) {
	_, m := so3BiInvariant(t)

	_, err := m.MetricMatrix(nil)
	assert.ErrorIs(t, err, invariant.ErrNotImplemented)
}

// TestNewBiInvariant_CapabilityGate checks the fail-fast rule: Euclidean has
// no bi-invariant metric, SO(3) does and gets the identity form.
func TestNewBiInvariant_CapabilityGate(t *testing.T) {
	e, err := group.NewEuclidean(3)
	require.NoError(t, err)
	_, err = invariant.NewBiInvariant(e)
	assert.ErrorIs(t, err, invariant.ErrInvalidConfiguration, "R^3 rejected at construction")

	_, m := so3BiInvariant(t)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, m.MetricMatrixAtIdentity(),
		"bi-invariant form at identity is I")
	assert.Equal(t, invariant.Signature{Pos: 3}, m.Signature())
}
