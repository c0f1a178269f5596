package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liegeo/group"
	"github.com/katalvlaran/liegeo/integrator"
	"github.com/katalvlaran/liegeo/invariant"
)

// TestGeodesicExp_ZeroTangent: a zero initial velocity leaves the base point
// fixed for any scheme and step count.
func TestGeodesicExp_ZeroTangent(t *testing.T) {
	_, em := euclidean2(t)
	base := []float64{3, -1}
	for _, steps := range []int{1, 7, 40} {
		opts := invariant.DefaultGeodesicOptions()
		opts.Steps = steps
		got, err := em.GeodesicExp([]float64{0, 0}, base, opts)
		require.NoError(t, err)
		assert.InDeltaSlice(t, base, got, 1e-12, "steps=%d", steps)
	}

	so, sm := so3BiInvariant(t)
	baseRot := so.Exp([]float64{0, -0.5, 0.1, 0.5, 0, 0.2, -0.1, -0.2, 0})
	got, err := sm.GeodesicExp(make([]float64, 9), baseRot, invariant.DefaultGeodesicOptions())
	require.NoError(t, err)
	assert.InDeltaSlice(t, baseRot, got, 1e-10, "rotation base unchanged")
}

// TestGeodesicExp_BiInvariantMatchesGroupExp: on a compact group with the
// bi-invariant metric the Euler–Poincaré acceleration vanishes, so the
// geodesic is the one-parameter subgroup through the tangent vector.
func TestGeodesicExp_BiInvariantMatchesGroupExp(t *testing.T) {
	so, m := so3BiInvariant(t)

	tangent := []float64{0, -0.8, 0.3, 0.8, 0, -0.2, -0.3, 0.2, 0}
	opts := invariant.DefaultGeodesicOptions()
	opts.Steps = 20

	got, err := m.GeodesicExp(tangent, so.Identity(), opts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, so.Exp(tangent), got, 1e-9, "geodesic = one-parameter subgroup")
}

// TestGeodesicExp_SchemesAgree: Euler at many steps approaches RK4.
func TestGeodesicExp_SchemesAgree(t *testing.T) {
	so, m := so3BiInvariant(t)
	tangent := []float64{0, -0.6, 0, 0.6, 0, 0.4, 0, -0.4, 0}

	rk4 := invariant.DefaultGeodesicOptions()
	rk4.Steps = 30
	fine, err := m.GeodesicExp(tangent, so.Identity(), rk4)
	require.NoError(t, err)

	euler := invariant.GeodesicOptions{Scheme: integrator.Euler, Steps: 400}
	coarse, err := m.GeodesicExp(tangent, so.Identity(), euler)
	require.NoError(t, err)

	assert.InDeltaSlice(t, fine, coarse, 1e-3, "schemes share the continuous limit")
}

// TestGeodesicExp_NoAlgebra: the Euler–Poincaré law needs a basis provider.
func TestGeodesicExp_NoAlgebra(t *testing.T) {
	e, err := group.NewEuclidean(2)
	require.NoError(t, err)
	m, err := invariant.New(e, invariant.Options{})
	require.NoError(t, err)

	_, err = m.GeodesicExp([]float64{1, 0}, []float64{0, 0}, invariant.DefaultGeodesicOptions())
	assert.ErrorIs(t, err, invariant.ErrNoAlgebra)
}

// TestGeodesicLog_Euclidean: on a flat abelian group the geodesic flow is
// base + w, so the shooting log must recover point − base and report
// convergence.
func TestGeodesicLog_Euclidean(t *testing.T) {
	_, m := euclidean2(t)
	base := []float64{1, 1}
	point := []float64{2.5, -0.5}

	tangent, report, err := m.GeodesicLog(point, base, invariant.DefaultLogOptions())
	require.NoError(t, err)
	assert.True(t, report.Converged, "quadratic objective must converge, status=%s", report.Status)
	assert.Less(t, report.Objective, 1e-12)
	assert.InDeltaSlice(t, []float64{1.5, -1.5}, tangent, 1e-5, "w = point − base")
}

// TestGeodesicLog_SO3 recovers a small rotation from the identity: the
// shooting solution must reproduce the generator within integration accuracy
// and the returned velocity must be skew (a valid tangent at identity).
func TestGeodesicLog_SO3(t *testing.T) {
	so, m := so3BiInvariant(t)

	generator := []float64{
		0, -0.5, 0,
		0.5, 0, 0,
		0, 0, 0,
	}
	point := so.Exp(generator)

	opts := invariant.DefaultLogOptions()
	opts.Geodesic.Steps = 10
	opts.MaxIterations = 60

	tangent, report, err := m.GeodesicLog(point, so.Identity(), opts)
	require.NoError(t, err)
	assert.Less(t, report.Objective, 1e-8, "endpoint discrepancy, status=%s", report.Status)
	assert.InDeltaSlice(t, generator, tangent, 1e-3)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, -tangent[j*3+i], tangent[i*3+j], 1e-9,
				"returned velocity re-projected onto so(3)")
		}
	}
}

// TestGeodesicLog_ReportsNonConvergence: starving the optimizer must not
// produce an error, only Converged=false in the report.
func TestGeodesicLog_ReportsNonConvergence(t *testing.T) {
	so, m := so3BiInvariant(t)
	point := so.Exp([]float64{0, -1.2, 0.4, 1.2, 0, 0.6, -0.4, -0.6, 0})

	opts := invariant.DefaultLogOptions()
	opts.MaxIterations = 1

	tangent, report, err := m.GeodesicLog(point, so.Identity(), opts)
	require.NoError(t, err, "non-convergence is reported, not raised")
	require.NotNil(t, tangent)
	assert.False(t, report.Converged, "status=%s", report.Status)
}

// TestGeodesicLog_InitialGuess: a warm start at the exact solution converges
// immediately.
func TestGeodesicLog_InitialGuess(t *testing.T) {
	_, m := euclidean2(t)
	base := []float64{0, 0}
	point := []float64{3, 4}

	opts := invariant.DefaultLogOptions()
	opts.InitialGuess = []float64{3, 4}

	tangent, report, err := m.GeodesicLog(point, base, opts)
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.InDeltaSlice(t, []float64{3, 4}, tangent, 1e-6)
}
