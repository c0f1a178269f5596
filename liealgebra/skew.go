package liealgebra

// SkewSymmetric is the Lie algebra so(n) of skew-symmetric n×n matrices,
// dimension n(n-1)/2, represented as row-major flat slices of length n*n.
//
// The canonical basis enumerates index pairs (i, j), i < j, in row order;
// basis element B_{ij} has +1 at (j, i) and -1 at (i, j). For n = 3 this is
// the usual (x, y, z) rotation-generator ordering up to sign convention.
type SkewSymmetric struct {
	n   int
	dim int
}

// NewSkewSymmetric returns so(n). Returns ErrBadDimension when n < 2.
func NewSkewSymmetric(n int) (*SkewSymmetric, error) {
	if n < 2 {
		return nil, ErrBadDimension
	}

	return &SkewSymmetric{n: n, dim: n * (n - 1) / 2}, nil
}

// Dim returns n(n-1)/2.
func (s *SkewSymmetric) Dim() int { return s.dim }

// N returns the matrix size n.
func (s *SkewSymmetric) N() int { return s.n }

// Basis returns the canonical basis of so(n) as fresh flat slices.
func (s *SkewSymmetric) Basis() [][]float64 {
	basis := make([][]float64, 0, s.dim)
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			b := make([]float64, s.n*s.n)
			b[j*s.n+i] = 1
			b[i*s.n+j] = -1
			basis = append(basis, b)
		}
	}

	return basis
}

// OrthonormalBasis orthonormalizes the canonical basis with respect to form.
func (s *SkewSymmetric) OrthonormalBasis(form BilinearForm) ([][]float64, error) {
	return orthonormalize(s.Basis(), form)
}

// ReshapeMetricMatrix expands a diagonal dim×dim metric into n×n per-entry
// weights: both flat entries touched by canonical basis element k receive the
// k-th diagonal weight. Only the shape is validated here; callers gate on
// diagonality before using the result.
func (s *SkewSymmetric) ReshapeMetricMatrix(metricMat []float64) ([]float64, error) {
	if len(metricMat) != s.dim*s.dim {
		return nil, ErrDimensionMismatch
	}

	weights := make([]float64, s.n*s.n)
	k := 0
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			w := metricMat[k*s.dim+k]
			weights[j*s.n+i] = w
			weights[i*s.n+j] = w
			k++
		}
	}

	return weights, nil
}
