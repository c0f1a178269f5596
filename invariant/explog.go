package invariant

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegeo/group"
)

// Closed-form exponential and logarithm at identity, through the principal
// square root of the (inverse) metric matrix. Valid when group composition
// coincides with vector addition after the metric's linear change of basis
// (flat invariant metrics on Vector groups); Matrix groups use the
// bi-invariant delegation or the Euler–Poincaré integrator instead.

// LeftExpFromIdentity computes the left-invariant-metric exponential of a
// tangent vector at identity: regularize, apply sqrt(M), regularize the
// result as a point. When called on a right-invariant metric it still uses
// the left-invariant metric of the same bilinear form; ExpFromIdentity
// applies the right-invariance correction on top.
func (m *Metric) LeftExpFromIdentity(tangentVec []float64) ([]float64, error) {
	sqrtM, err := m.sqrtMetricMatrix(false)
	if err != nil {
		return nil, err
	}

	regularized := m.group.RegularizeTangentAtIdentity(tangentVec)
	exp := applyMatrix(sqrtM, regularized, m.dim)

	return m.group.Regularize(exp), nil
}

// ExpFromIdentity computes the invariant-metric exponential at identity,
// routing through the metric kind's identity strategy plus the side rule:
// right-invariant metrics use inverse(LeftExp(-v)).
func (m *Metric) ExpFromIdentity(tangentVec []float64) ([]float64, error) {
	if m.kind == biInvariant {
		return m.expID(tangentVec)
	}
	if m.side == group.Left {
		return m.expID(tangentVec)
	}

	negated := make([]float64, len(tangentVec))
	for i := range tangentVec {
		negated[i] = -tangentVec[i]
	}
	opposite, err := m.expID(negated)
	if err != nil {
		return nil, err
	}

	return m.group.Regularize(m.group.Inverse(opposite)), nil
}

// Exp computes the invariant-metric exponential of a tangent vector at
// basePoint. A nil (or within-tolerance identity) base point delegates to
// ExpFromIdentity; otherwise the vector is translated to identity, mapped
// there, and the result composed with the base point on the invariance side.
func (m *Metric) Exp(tangentVec, basePoint []float64) ([]float64, error) {
	identity := m.group.Identity()
	if basePoint == nil {
		return m.ExpFromIdentity(tangentVec)
	}

	basePoint = m.group.Regularize(basePoint)
	if allClose(basePoint, identity, epsilon) {
		return m.ExpFromIdentity(tangentVec)
	}

	atID := m.group.TangentTranslation(basePoint, m.side, true)(tangentVec)
	expFromID, err := m.ExpFromIdentity(atID)
	if err != nil {
		return nil, err
	}

	var exp []float64
	if m.side == group.Left {
		exp = m.group.Compose(basePoint, expFromID)
	} else {
		exp = m.group.Compose(expFromID, basePoint)
	}

	return m.group.Regularize(exp), nil
}

// LeftLogFromIdentity computes the left-invariant-metric logarithm of a
// point: the structural mirror of LeftExpFromIdentity with sqrt(M⁻¹).
func (m *Metric) LeftLogFromIdentity(point []float64) ([]float64, error) {
	sqrtInv, err := m.sqrtMetricMatrix(true)
	if err != nil {
		return nil, err
	}

	regularized := m.group.Regularize(point)
	log := applyMatrix(sqrtInv, regularized, m.dim)

	return m.group.RegularizeTangentAtIdentity(log), nil
}

// LogFromIdentity computes the invariant-metric logarithm at identity; for
// right-invariant metrics, -LeftLog(inverse(point)).
func (m *Metric) LogFromIdentity(point []float64) ([]float64, error) {
	if m.kind == biInvariant {
		return m.logID(m.group.Regularize(point))
	}

	point = m.group.Regularize(point)
	if m.side == group.Left {
		return m.logID(point)
	}

	leftLog, err := m.logID(m.group.Inverse(point))
	if err != nil {
		return nil, err
	}
	for i := range leftLog {
		leftLog[i] = -leftLog[i]
	}

	return leftLog, nil
}

// Log computes the invariant-metric logarithm of point with respect to
// basePoint: translate the point near identity by composing with the base
// inverse on the invariance side, take the identity log, and translate the
// resulting tangent vector back to the base point.
func (m *Metric) Log(point, basePoint []float64) ([]float64, error) {
	identity := m.group.Identity()
	if basePoint == nil {
		return m.LogFromIdentity(point)
	}

	basePoint = m.group.Regularize(basePoint)
	if allClose(basePoint, identity, epsilon) {
		return m.LogFromIdentity(point)
	}

	point = m.group.Regularize(point)
	var nearID []float64
	if m.side == group.Left {
		nearID = m.group.Compose(m.group.Inverse(basePoint), point)
	} else {
		nearID = m.group.Compose(point, m.group.Inverse(basePoint))
	}

	logFromID, err := m.LogFromIdentity(nearID)
	if err != nil {
		return nil, err
	}

	return m.group.TangentTranslation(basePoint, m.side, false)(logFromID), nil
}

// sqrtMetricMatrix returns the principal square root of the metric matrix
// (or of its inverse) through the symmetric eigendecomposition
// V·diag(sqrt λ)·Vᵀ. Requires a positive-definite form: any eigenvalue below
// tolerance yields ErrIndefiniteMetric.
func (m *Metric) sqrtMetricMatrix(inverse bool) ([]float64, error) {
	if m.group.PointType() != group.Vector {
		// The square-root construction acts on dim-sized coordinates; matrix
		// parameterizations use the bi-invariant or integrator paths.
		return nil, ErrNotImplemented
	}

	sym := mat.NewSymDense(m.dim, append([]float64(nil), m.metricMat...))
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, ErrIndefiniteMetric
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	out := make([]float64, m.dim*m.dim)
	for _, v := range values {
		if v < epsilon {
			return nil, ErrIndefiniteMetric
		}
	}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			var s float64
			for k := 0; k < m.dim; k++ {
				scale := math.Sqrt(values[k])
				if inverse {
					scale = 1 / scale
				}
				s += vectors.At(i, k) * scale * vectors.At(j, k)
			}
			out[i*m.dim+j] = s
		}
	}

	return out, nil
}

// closedFormExpFromIdentity and closedFormLogFromIdentity are the identity
// strategies of the general-invariant kind.
func (m *Metric) closedFormExpFromIdentity(tangentVec []float64) ([]float64, error) {
	return m.LeftExpFromIdentity(tangentVec)
}

func (m *Metric) closedFormLogFromIdentity(point []float64) ([]float64, error) {
	return m.LeftLogFromIdentity(point)
}

// applyMatrix computes S·v for a flat row-major dim×dim matrix.
func applyMatrix(s, v []float64, dim int) []float64 {
	out := make([]float64, dim)
	for i := 0; i < dim; i++ {
		var acc float64
		for j := 0; j < dim; j++ {
			acc += s[i*dim+j] * v[j]
		}
		out[i] = acc
	}

	return out
}

// allClose reports whether two equal-length slices agree within tol.
func allClose(a, b []float64, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}
