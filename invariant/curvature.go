package invariant

// Connection and curvature of an invariant metric, derived from Lie-algebra
// structure constants and the metric dual of the adjoint map.
//
// Every operation is defined at identity first; the lifted version translates
// all input tangent vectors to identity (inverse tangent translation at the
// base point), applies the identity operation, and translates tensor-valued
// results back (forward translation). A nil base point short-circuits to the
// identity version with no translation round-trip. All of these require the
// metric to hold a Lie-algebra basis provider (ErrNoAlgebra otherwise).

// StructureConstant computes ⟨[x, y], z⟩ for tangent vectors at identity.
func (m *Metric) StructureConstant(x, y, z []float64) (float64, error) {
	return m.InnerProductAtIdentity(m.group.Bracket(x, y), z)
}

// DualAdjoint computes the metric dual ad*_x(y) of the adjoint map: the
// unique algebra element a with ⟨[x, z], y⟩ = ⟨a, z⟩ for all z. It is built
// as the contraction Σᵢ −⟨[eᵢ, x], y⟩ eᵢ over the stacked orthonormal basis,
// which requires the bilinear form to be non-degenerate on the basis.
func (m *Metric) DualAdjoint(x, y []float64) ([]float64, error) {
	basis, err := m.orthonormalBasis()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for _, e := range basis {
		coeff, err := m.StructureConstant(e, x, y)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] -= coeff * e[i]
		}
	}

	return out, nil
}

// ConnectionAtIdentity computes the Levi-Civita connection of invariant
// vector fields at identity: ∇_x y = ½([x, y] − ad*_x(y) − ad*_y(x)).
func (m *Metric) ConnectionAtIdentity(x, y []float64) ([]float64, error) {
	adXY, err := m.DualAdjoint(x, y)
	if err != nil {
		return nil, err
	}
	adYX, err := m.DualAdjoint(y, x)
	if err != nil {
		return nil, err
	}

	bracket := m.group.Bracket(x, y)
	out := make([]float64, len(x))
	for i := range out {
		out[i] = (bracket[i] - adXY[i] - adYX[i]) / 2
	}

	return out, nil
}

// Connection lifts ConnectionAtIdentity to an arbitrary base point.
func (m *Metric) Connection(x, y, basePoint []float64) ([]float64, error) {
	if basePoint == nil {
		return m.ConnectionAtIdentity(x, y)
	}

	toID := m.group.TangentTranslation(basePoint, m.side, true)
	value, err := m.ConnectionAtIdentity(toID(x), toID(y))
	if err != nil {
		return nil, err
	}

	return m.group.TangentTranslation(basePoint, m.side, false)(value), nil
}

// CurvatureAtIdentity computes the curvature tensor at identity:
// R(x, y)z = ∇_{[x,y]}z − ∇_x(∇_y z) + ∇_y(∇_x z).
func (m *Metric) CurvatureAtIdentity(x, y, z []float64) ([]float64, error) {
	bracketTerm, err := m.ConnectionAtIdentity(m.group.Bracket(x, y), z)
	if err != nil {
		return nil, err
	}

	nablaYZ, err := m.ConnectionAtIdentity(y, z)
	if err != nil {
		return nil, err
	}
	leftTerm, err := m.ConnectionAtIdentity(x, nablaYZ)
	if err != nil {
		return nil, err
	}

	nablaXZ, err := m.ConnectionAtIdentity(x, z)
	if err != nil {
		return nil, err
	}
	rightTerm, err := m.ConnectionAtIdentity(y, nablaXZ)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = bracketTerm[i] - leftTerm[i] + rightTerm[i]
	}

	return out, nil
}

// Curvature lifts CurvatureAtIdentity to an arbitrary base point.
func (m *Metric) Curvature(x, y, z, basePoint []float64) ([]float64, error) {
	if basePoint == nil {
		return m.CurvatureAtIdentity(x, y, z)
	}

	toID := m.group.TangentTranslation(basePoint, m.side, true)
	value, err := m.CurvatureAtIdentity(toID(x), toID(y), toID(z))
	if err != nil {
		return nil, err
	}

	return m.group.TangentTranslation(basePoint, m.side, false)(value), nil
}

// SectionalCurvatureAtIdentity computes ⟨R(x,y)x, y⟩ / (‖x‖²‖y‖² − ⟨x,y⟩²)
// at identity. When the denominator is within tolerance of zero (x and y
// linearly dependent, a degenerate plane) the result is 0 by documented
// numeric policy, not an error.
func (m *Metric) SectionalCurvatureAtIdentity(x, y []float64) (float64, error) {
	curvature, err := m.CurvatureAtIdentity(x, y, x)
	if err != nil {
		return 0, err
	}
	num, err := m.InnerProductAtIdentity(curvature, y)
	if err != nil {
		return 0, err
	}

	sqX, err := m.InnerProductAtIdentity(x, x)
	if err != nil {
		return 0, err
	}
	sqY, err := m.InnerProductAtIdentity(y, y)
	if err != nil {
		return 0, err
	}
	ipXY, err := m.InnerProductAtIdentity(x, y)
	if err != nil {
		return 0, err
	}

	denom := sqX*sqY - ipXY*ipXY
	if denom > -epsilon && denom < epsilon {
		return 0, nil
	}

	return num / denom, nil
}

// SectionalCurvature lifts SectionalCurvatureAtIdentity to a base point.
// The result is a scalar, so only the inputs are translated.
func (m *Metric) SectionalCurvature(x, y, basePoint []float64) (float64, error) {
	if basePoint == nil {
		return m.SectionalCurvatureAtIdentity(x, y)
	}

	toID := m.group.TangentTranslation(basePoint, m.side, true)

	return m.SectionalCurvatureAtIdentity(toID(x), toID(y))
}

// CurvatureDerivativeAtIdentity computes the covariant derivative of the
// curvature (∇_x R)(y, z)t at identity by the Leibniz expansion
// ∇_x(R(y,z)t) − R(∇_x y, z)t − R(y, ∇_x z)t − R(y, z)(∇_x t).
func (m *Metric) CurvatureDerivativeAtIdentity(x, y, z, t []float64) ([]float64, error) {
	ryzt, err := m.CurvatureAtIdentity(y, z, t)
	if err != nil {
		return nil, err
	}
	first, err := m.ConnectionAtIdentity(x, ryzt)
	if err != nil {
		return nil, err
	}

	nablaXY, err := m.ConnectionAtIdentity(x, y)
	if err != nil {
		return nil, err
	}
	second, err := m.CurvatureAtIdentity(nablaXY, z, t)
	if err != nil {
		return nil, err
	}

	nablaXZ, err := m.ConnectionAtIdentity(x, z)
	if err != nil {
		return nil, err
	}
	third, err := m.CurvatureAtIdentity(y, nablaXZ, t)
	if err != nil {
		return nil, err
	}

	nablaXT, err := m.ConnectionAtIdentity(x, t)
	if err != nil {
		return nil, err
	}
	fourth, err := m.CurvatureAtIdentity(y, z, nablaXT)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = first[i] - second[i] - third[i] - fourth[i]
	}

	return out, nil
}

// CurvatureDerivative lifts CurvatureDerivativeAtIdentity to a base point.
func (m *Metric) CurvatureDerivative(x, y, z, t, basePoint []float64) ([]float64, error) {
	if basePoint == nil {
		return m.CurvatureDerivativeAtIdentity(x, y, z, t)
	}

	toID := m.group.TangentTranslation(basePoint, m.side, true)
	value, err := m.CurvatureDerivativeAtIdentity(toID(x), toID(y), toID(z), toID(t))
	if err != nil {
		return nil, err
	}

	return m.group.TangentTranslation(basePoint, m.side, false)(value), nil
}
