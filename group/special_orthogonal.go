package group

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpecialOrthogonal is the rotation group SO(n): n×n orthogonal matrices of
// determinant +1, parameterized as Matrix points (row-major flat slices of
// length n*n). Its Lie algebra so(n) is the space of skew-symmetric n×n
// matrices, dimension n(n-1)/2.
//
// Exp and Log use the Rodrigues closed forms for n = 2, 3 and
// eigendecomposition-free iterative matrix functions (scaling-and-squaring
// exponential, inverse scaling-and-squaring logarithm) for larger n.
//
// SO(n) is compact, so it carries the canonical bi-invariant metric:
// SupportsBiInvariant reports true.
type SpecialOrthogonal struct {
	n   int
	dim int
}

// NewSpecialOrthogonal returns the rotation group SO(n).
// Returns ErrBadDimension when n < 2.
func NewSpecialOrthogonal(n int) (*SpecialOrthogonal, error) {
	if n < 2 {
		return nil, ErrBadDimension
	}

	return &SpecialOrthogonal{n: n, dim: n * (n - 1) / 2}, nil
}

// N returns the matrix size n.
func (so *SpecialOrthogonal) N() int { return so.n }

// Dim returns the Lie-algebra dimension n(n-1)/2.
func (so *SpecialOrthogonal) Dim() int { return so.dim }

// PointSize returns n*n, the flat length of a point or tangent slice.
func (so *SpecialOrthogonal) PointSize() int { return so.n * so.n }

// PointType reports Matrix parameterization.
func (so *SpecialOrthogonal) PointType() PointType { return Matrix }

// Identity returns the flattened n×n identity matrix.
func (so *SpecialOrthogonal) Identity() []float64 {
	id := make([]float64, so.n*so.n)
	for i := 0; i < so.n; i++ {
		id[i*so.n+i] = 1
	}

	return id
}

// Compose returns the matrix product a·b.
func (so *SpecialOrthogonal) Compose(a, b []float64) []float64 {
	n := so.n
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[i*n+k] * b[k*n+j]
			}
			out[i*n+j] = s
		}
	}

	return out
}

// Inverse returns the transpose: for rotations, R⁻¹ = Rᵀ.
func (so *SpecialOrthogonal) Inverse(p []float64) []float64 {
	n := so.n
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = p[j*n+i]
		}
	}

	return out
}

// Regularize projects p onto the rotation manifold: the nearest (Frobenius)
// special-orthogonal matrix, via the SVD polar factor with the determinant
// sign corrected on the last singular direction.
func (so *SpecialOrthogonal) Regularize(p []float64) []float64 {
	n := so.n
	a := mat.NewDense(n, n, append([]float64(nil), p...))

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		// Factorization failure on finite input is not expected; fall back to
		// the input unchanged rather than fabricating a rotation.
		return append([]float64(nil), p...)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var r mat.Dense
	r.Mul(&u, v.T())
	if mat.Det(&r) < 0 {
		// Flip the last column of U to land on det = +1.
		for i := 0; i < n; i++ {
			u.Set(i, n-1, -u.At(i, n-1))
		}
		r.Mul(&u, v.T())
	}

	return flatten(&r, n)
}

// RegularizeTangentAtIdentity skew-symmetrizes: (v - vᵀ)/2, the orthogonal
// projection of an ambient matrix onto so(n).
func (so *SpecialOrthogonal) RegularizeTangentAtIdentity(tangentVec []float64) []float64 {
	n := so.n
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = (tangentVec[i*n+j] - tangentVec[j*n+i]) / 2
		}
	}

	return out
}

// TangentTranslation returns the differential of translation by base.
//
//	Left, inverse=false:  v ↦ base·v       (identity → base)
//	Left, inverse=true:   v ↦ base⁻¹·v     (base → identity)
//	Right, inverse=false: v ↦ v·base
//	Right, inverse=true:  v ↦ v·base⁻¹
func (so *SpecialOrthogonal) TangentTranslation(base []float64, side Side, inverse bool) TranslationFunc {
	factor := append([]float64(nil), base...)
	if inverse {
		factor = so.Inverse(base)
	}
	if side == Left {
		return func(tangentVec []float64) []float64 {
			return so.Compose(factor, tangentVec)
		}
	}

	return func(tangentVec []float64) []float64 {
		return so.Compose(tangentVec, factor)
	}
}

// ToTangent projects an ambient matrix onto the tangent space at base:
// left-translate to identity, skew-symmetrize, translate back.
func (so *SpecialOrthogonal) ToTangent(vec, base []float64) []float64 {
	atID := so.Compose(so.Inverse(base), vec)

	return so.Compose(base, so.RegularizeTangentAtIdentity(atID))
}

// JacobianTranslation is undefined for Matrix-parameterized groups.
func (so *SpecialOrthogonal) JacobianTranslation(_ []float64, _ Side) ([]float64, error) {
	return nil, ErrNoJacobian
}

// Bracket returns the matrix commutator [x, y] = xy - yx.
func (so *SpecialOrthogonal) Bracket(x, y []float64) []float64 {
	xy := so.Compose(x, y)
	yx := so.Compose(y, x)
	out := make([]float64, len(xy))
	for i := range xy {
		out[i] = xy[i] - yx[i]
	}

	return out
}

// Exp is the group (matrix) exponential of a skew-symmetric tangent vector.
// Closed form for n = 2, 3; scaling-and-squaring for larger n.
func (so *SpecialOrthogonal) Exp(tangentVec []float64) []float64 {
	switch so.n {
	case 2:
		theta := tangentVec[2] // entry (1,0) of the skew matrix
		c, s := math.Cos(theta), math.Sin(theta)

		return []float64{c, -s, s, c}
	case 3:
		return so.exp3(tangentVec)
	default:
		var out mat.Dense
		out.Exp(mat.NewDense(so.n, so.n, append([]float64(nil), tangentVec...)))

		return flatten(&out, so.n)
	}
}

// Log is the group (matrix) logarithm of a rotation, a skew-symmetric tangent
// vector at identity. Closed form for n = 2, 3; inverse scaling-and-squaring
// for larger n.
func (so *SpecialOrthogonal) Log(p []float64) []float64 {
	switch so.n {
	case 2:
		theta := math.Atan2(p[2], p[0])

		return []float64{0, -theta, theta, 0}
	case 3:
		return so.log3(p)
	default:
		out := matrixLog(p, so.n)

		return so.RegularizeTangentAtIdentity(out)
	}
}

// SupportsBiInvariant reports true: SO(n) is compact.
func (so *SpecialOrthogonal) SupportsBiInvariant() bool { return true }

// exp3 is the Rodrigues formula exp(A) = I + sinθ/θ·A + (1-cosθ)/θ²·A²,
// with θ² = ‖A‖²_F / 2 for skew A, and Taylor coefficients near θ = 0.
func (so *SpecialOrthogonal) exp3(a []float64) []float64 {
	wx, wy, wz := a[7], a[2], a[3] // (2,1), (0,2), (1,0)
	theta := math.Sqrt(wx*wx + wy*wy + wz*wz)

	var c1, c2 float64
	if theta < 1e-8 {
		c1 = 1 - theta*theta/6
		c2 = 0.5 - theta*theta/24
	} else {
		c1 = math.Sin(theta) / theta
		c2 = (1 - math.Cos(theta)) / (theta * theta)
	}

	a2 := so.Compose(a, a)
	out := so.Identity()
	for i := range out {
		out[i] += c1*a[i] + c2*a2[i]
	}

	return out
}

// log3 inverts the Rodrigues formula. The angle comes from the trace; the
// near-0 and near-π branches avoid the degenerate (R - Rᵀ) factor.
func (so *SpecialOrthogonal) log3(p []float64) []float64 {
	tr := p[0] + p[4] + p[8]
	c := math.Max(-1, math.Min(1, (tr-1)/2))
	theta := math.Acos(c)

	if math.Pi-theta < 1e-6 {
		return so.log3NearPi(p, theta)
	}

	var factor float64
	if theta < 1e-8 {
		factor = 0.5 + theta*theta/12
	} else {
		factor = theta / (2 * math.Sin(theta))
	}

	out := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = factor * (p[i*3+j] - p[j*3+i])
		}
	}

	return out
}

// log3NearPi recovers the rotation axis from R ≈ 2wwᵀ - I, picking the
// largest diagonal entry for numerical stability and fixing signs from the
// off-diagonal sums.
func (so *SpecialOrthogonal) log3NearPi(p []float64, theta float64) []float64 {
	wx := math.Sqrt(math.Max(0, (p[0]+1)/2))
	wy := math.Sqrt(math.Max(0, (p[4]+1)/2))
	wz := math.Sqrt(math.Max(0, (p[8]+1)/2))
	switch {
	case wx >= wy && wx >= wz:
		if wx > 0 {
			wy = (p[1] + p[3]) / (4 * wx)
			wz = (p[2] + p[6]) / (4 * wx)
		}
	case wy >= wx && wy >= wz:
		if wy > 0 {
			wx = (p[1] + p[3]) / (4 * wy)
			wz = (p[5] + p[7]) / (4 * wy)
		}
	default:
		if wz > 0 {
			wx = (p[2] + p[6]) / (4 * wz)
			wy = (p[5] + p[7]) / (4 * wz)
		}
	}

	return []float64{
		0, -theta * wz, theta * wy,
		theta * wz, 0, -theta * wx,
		-theta * wy, theta * wx, 0,
	}
}

// flatten copies an n×n gonum matrix into a row-major flat slice.
func flatten(m *mat.Dense, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = m.At(i, j)
		}
	}

	return out
}
