package invariant

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegeo/group"
	"github.com/katalvlaran/liegeo/liealgebra"
)

// Metric is an invariant Riemannian (or pseudo-Riemannian) metric on a Lie
// group, determined by a symmetric bilinear form at the identity and a side
// (left or right invariance). Immutable after construction.
type Metric struct {
	group     group.Group
	algebra   liealgebra.Algebra
	metricMat []float64 // dim×dim, row-major; not defensively copied
	dim       int
	side      group.Side
	signature Signature
	kind      kind

	// Identity-level exp/log strategy, fixed by the metric kind.
	expID func(tangentVec []float64) ([]float64, error)
	logID func(point []float64) ([]float64, error)
}

// Options configures New.
//
// Fields:
//   - Algebra      — optional Lie-algebra basis provider; required later by
//     the curvature family and the Euler–Poincaré geodesics.
//   - MetricMatrix — symmetric dim×dim bilinear form at identity, flat
//     row-major; nil means the identity form. NOT copied: mutating it after
//     construction is undefined behavior.
//   - Side         — left or right invariance (default Left).
type Options struct {
	Algebra      liealgebra.Algebra
	MetricMatrix []float64
	Side         group.Side
}

// New constructs a general invariant metric on g.
//
// Validation (fail-fast, construction-time):
//   - g non-nil                      → ErrNilGroup
//   - Side ∈ {Left, Right}           → ErrInvalidConfiguration
//   - matrix shape dim×dim           → ErrDimensionMismatch
//   - matrix symmetric within 1e-10  → ErrAsymmetricMetric
//
// The eigenvalue signature is computed here, once; it reflects the matrix as
// passed and never updates (the matrix is not copied — see Options).
func New(g group.Group, opts Options) (*Metric, error) {
	m, err := newMetric(g, opts)
	if err != nil {
		return nil, err
	}

	m.kind = generalInvariant
	m.expID = m.closedFormExpFromIdentity
	m.logID = m.closedFormLogFromIdentity

	return m, nil
}

// NewBiInvariant constructs the canonical bi-invariant metric on a compact
// group: the bilinear form at identity is forced to the identity matrix, and
// the identity-level exp/log delegate to the group's own exponential and
// logarithm.
//
// Fails fast with ErrInvalidConfiguration when the group does not carry the
// bi-invariant capability tag (SupportsBiInvariant).
func NewBiInvariant(g group.Group) (*Metric, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if !g.SupportsBiInvariant() {
		return nil, ErrInvalidConfiguration
	}

	algebra, err := algebraFor(g)
	if err != nil {
		return nil, err
	}

	m, err := newMetric(g, Options{Algebra: algebra, Side: group.Left})
	if err != nil {
		return nil, err
	}

	m.kind = biInvariant
	m.expID = func(tangentVec []float64) ([]float64, error) {
		return g.Exp(tangentVec), nil
	}
	m.logID = func(point []float64) ([]float64, error) {
		return g.Log(point), nil
	}

	return m, nil
}

// newMetric holds the validation and signature computation shared by both
// constructors.
func newMetric(g group.Group, opts Options) (*Metric, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if opts.Side != group.Left && opts.Side != group.Right {
		return nil, ErrInvalidConfiguration
	}

	dim := g.Dim()
	metricMat := opts.MetricMatrix
	if metricMat == nil {
		metricMat = identityMatrix(dim)
	}
	if len(metricMat) != dim*dim {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			if math.Abs(metricMat[i*dim+j]-metricMat[j*dim+i]) > symTol {
				return nil, ErrAsymmetricMetric
			}
		}
	}

	return &Metric{
		group:     g,
		algebra:   opts.Algebra,
		metricMat: metricMat,
		dim:       dim,
		side:      opts.Side,
		signature: computeSignature(metricMat, dim),
	}, nil
}

// computeSignature counts positive, null and negative eigenvalues of the
// symmetric form, with the same near-zero tolerance used elsewhere.
func computeSignature(metricMat []float64, dim int) Signature {
	sym := mat.NewSymDense(dim, append([]float64(nil), metricMat...))

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		// Factorization of a finite symmetric matrix is not expected to fail;
		// report everything as null rather than guess.
		return Signature{Null: dim}
	}

	var sig Signature
	for _, v := range es.Values(nil) {
		switch {
		case v > epsilon:
			sig.Pos++
		case v < -epsilon:
			sig.Neg++
		default:
			sig.Null++
		}
	}

	return sig
}

// algebraFor picks the canonical basis provider matching the group's
// parameterization; used by NewBiInvariant so curvature and geodesics work
// out of the box.
func algebraFor(g group.Group) (liealgebra.Algebra, error) {
	switch g.PointType() {
	case group.Matrix:
		n := int(math.Round(math.Sqrt(float64(g.PointSize()))))

		return liealgebra.NewSkewSymmetric(n)
	case group.Vector:
		return liealgebra.NewVectorSpace(g.Dim())
	default:
		return nil, ErrUnsupportedPointType
	}
}

// Group returns the underlying group.
func (m *Metric) Group() group.Group { return m.group }

// Side returns the invariance side.
func (m *Metric) Side() group.Side { return m.side }

// Signature returns the eigenvalue signature computed at construction.
func (m *Metric) Signature() Signature { return m.signature }

// MetricMatrixAtIdentity returns the stored bilinear form (not a copy).
func (m *Metric) MetricMatrixAtIdentity() []float64 { return m.metricMat }

// InnerProductAtIdentity computes ⟨u, v⟩ in the tangent space at identity.
//
// Vector groups: uᵀ M v on coordinates. Matrix groups: the Frobenius-style
// sum Σ u∘v, reweighted entry-wise when M is diagonal and a basis provider
// is available (non-uniform weighting of basis directions).
//
// Returns ErrUnsupportedPointType for any other parameterization.
func (m *Metric) InnerProductAtIdentity(u, v []float64) (float64, error) {
	switch m.group.PointType() {
	case group.Vector:
		var s float64
		for i := 0; i < m.dim; i++ {
			for j := 0; j < m.dim; j++ {
				s += u[i] * m.metricMat[i*m.dim+j] * v[j]
			}
		}

		return s, nil

	case group.Matrix:
		weights := []float64(nil)
		if m.algebra != nil && liealgebra.IsDiagonal(m.metricMat, m.dim) {
			w, err := m.algebra.ReshapeMetricMatrix(m.metricMat)
			if err == nil {
				weights = w
			}
		}

		var s float64
		for i := range u {
			term := u[i] * v[i]
			if weights != nil {
				term *= weights[i]
			}
			s += term
		}

		return s, nil

	default:
		return 0, ErrUnsupportedPointType
	}
}

// InnerProduct computes ⟨u, v⟩ in the tangent space at basePoint. A nil
// basePoint means the identity. Otherwise both vectors are carried to the
// identity by the inverse tangent translation and the identity form applies.
func (m *Metric) InnerProduct(u, v, basePoint []float64) (float64, error) {
	if basePoint == nil {
		return m.InnerProductAtIdentity(u, v)
	}

	translate := m.group.TangentTranslation(basePoint, m.side, true)

	return m.InnerProductAtIdentity(translate(u), translate(v))
}

// SquaredNorm returns ⟨v, v⟩ at basePoint (nil means identity). May be
// negative for pseudo-metrics.
func (m *Metric) SquaredNorm(v, basePoint []float64) (float64, error) {
	return m.InnerProduct(v, v, basePoint)
}

// Norm returns sqrt(⟨v, v⟩) at basePoint; NaN when the squared norm is
// negative (pseudo-metric), matching the usual convention.
func (m *Metric) Norm(v, basePoint []float64) (float64, error) {
	sq, err := m.SquaredNorm(v, basePoint)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// MetricMatrix returns the bilinear form pulled back to basePoint for Vector
// groups: J⁻ᵀ M J⁻¹ with J the translation Jacobian at basePoint. A nil
// basePoint returns the identity form (copied).
//
// Matrix groups have no dim×dim coordinate representation of the form;
// requesting one returns ErrNotImplemented.
func (m *Metric) MetricMatrix(basePoint []float64) ([]float64, error) {
	if m.group.PointType() == group.Matrix {
		return nil, ErrNotImplemented
	}
	if m.group.PointType() != group.Vector {
		return nil, ErrUnsupportedPointType
	}
	if basePoint == nil {
		return append([]float64(nil), m.metricMat...), nil
	}

	regularized := m.group.Regularize(basePoint)
	jacFlat, err := m.group.JacobianTranslation(regularized, m.side)
	if err != nil {
		return nil, err
	}

	jac := mat.NewDense(m.dim, m.dim, jacFlat)
	var jacInv mat.Dense
	if err = jacInv.Inverse(jac); err != nil {
		return nil, group.ErrNotInvertible
	}

	metric := mat.NewDense(m.dim, m.dim, append([]float64(nil), m.metricMat...))
	var tmp, pulled mat.Dense
	tmp.Mul(jacInv.T(), metric)
	pulled.Mul(&tmp, &jacInv)

	out := make([]float64, m.dim*m.dim)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			out[i*m.dim+j] = pulled.At(i, j)
		}
	}

	return out, nil
}

// orthonormalBasis returns the algebra basis orthonormalized against this
// metric's identity inner product. Recomputed per call: the form is fixed for
// the metric's lifetime, but no mutable cache is kept (see package doc on
// concurrency).
func (m *Metric) orthonormalBasis() ([][]float64, error) {
	if m.algebra == nil {
		return nil, ErrNoAlgebra
	}

	form := func(u, v []float64) float64 {
		ip, err := m.InnerProductAtIdentity(u, v)
		if err != nil {
			return math.NaN()
		}

		return ip
	}

	return m.algebra.OrthonormalBasis(form)
}

// identityMatrix returns I_dim as a flat row-major slice.
func identityMatrix(dim int) []float64 {
	out := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		out[i*dim+i] = 1
	}

	return out
}
