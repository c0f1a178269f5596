package group

// Euclidean is the additive group (R^dim, +), the canonical Vector-type
// group: composition is coordinate addition, the inverse is negation, and
// every tangent space is R^dim itself, so all translation maps are the
// identity and the Lie bracket vanishes.
//
// It is abelian but not compact, so it does not carry the canonical
// bi-invariant metric handled by the bi-invariant specialization
// (SupportsBiInvariant reports false); its flat left-invariant metrics are
// exactly the closed-form exp/log family of the invariant engine.
type Euclidean struct {
	dim int
}

// NewEuclidean returns the additive group R^dim.
// Returns ErrBadDimension when dim < 1.
func NewEuclidean(dim int) (*Euclidean, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}

	return &Euclidean{dim: dim}, nil
}

// Dim returns the dimension of the Lie algebra (= dim).
func (e *Euclidean) Dim() int { return e.dim }

// PointSize returns the flat slice length of a point (= dim).
func (e *Euclidean) PointSize() int { return e.dim }

// PointType reports Vector parameterization.
func (e *Euclidean) PointType() PointType { return Vector }

// Identity returns the zero vector.
func (e *Euclidean) Identity() []float64 { return make([]float64, e.dim) }

// Compose returns a+b.
func (e *Euclidean) Compose(a, b []float64) []float64 {
	out := make([]float64, e.dim)
	for i := 0; i < e.dim; i++ {
		out[i] = a[i] + b[i]
	}

	return out
}

// Inverse returns -p.
func (e *Euclidean) Inverse(p []float64) []float64 {
	out := make([]float64, e.dim)
	for i := 0; i < e.dim; i++ {
		out[i] = -p[i]
	}

	return out
}

// Regularize is the identity: every vector is already canonical.
func (e *Euclidean) Regularize(p []float64) []float64 {
	out := make([]float64, e.dim)
	copy(out, p)

	return out
}

// RegularizeTangentAtIdentity is the identity on R^dim.
func (e *Euclidean) RegularizeTangentAtIdentity(tangentVec []float64) []float64 {
	return e.Regularize(tangentVec)
}

// TangentTranslation returns the identity map: translations of an additive
// group act trivially on tangent vectors.
func (e *Euclidean) TangentTranslation(_ []float64, _ Side, _ bool) TranslationFunc {
	return func(tangentVec []float64) []float64 {
		out := make([]float64, len(tangentVec))
		copy(out, tangentVec)

		return out
	}
}

// ToTangent is the identity: the tangent space at any base is all of R^dim.
func (e *Euclidean) ToTangent(vec, _ []float64) []float64 {
	return e.Regularize(vec)
}

// JacobianTranslation returns the dim×dim identity matrix for either side.
func (e *Euclidean) JacobianTranslation(_ []float64, _ Side) ([]float64, error) {
	jac := make([]float64, e.dim*e.dim)
	for i := 0; i < e.dim; i++ {
		jac[i*e.dim+i] = 1
	}

	return jac, nil
}

// Bracket returns the zero vector: an abelian algebra has trivial brackets.
func (e *Euclidean) Bracket(_, _ []float64) []float64 {
	return make([]float64, e.dim)
}

// Exp is the group exponential: the identity map on R^dim.
func (e *Euclidean) Exp(tangentVec []float64) []float64 {
	return e.Regularize(tangentVec)
}

// Log is the group logarithm: the identity map on R^dim.
func (e *Euclidean) Log(p []float64) []float64 {
	return e.Regularize(p)
}

// SupportsBiInvariant reports false: R^dim is not compact and is outside the
// bi-invariant specialization.
func (e *Euclidean) SupportsBiInvariant() bool { return false }
