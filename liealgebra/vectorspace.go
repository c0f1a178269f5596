package liealgebra

// VectorSpace is the abelian Lie algebra R^dim with the standard coordinate
// basis; the algebra of Vector-parameterized groups such as Euclidean.
type VectorSpace struct {
	dim int
}

// NewVectorSpace returns the abelian algebra R^dim.
// Returns ErrBadDimension when dim < 1.
func NewVectorSpace(dim int) (*VectorSpace, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}

	return &VectorSpace{dim: dim}, nil
}

// Dim returns the algebra dimension.
func (v *VectorSpace) Dim() int { return v.dim }

// Basis returns the standard coordinate basis e_1, ..., e_dim.
func (v *VectorSpace) Basis() [][]float64 {
	basis := make([][]float64, v.dim)
	for i := 0; i < v.dim; i++ {
		b := make([]float64, v.dim)
		b[i] = 1
		basis[i] = b
	}

	return basis
}

// OrthonormalBasis orthonormalizes the coordinate basis with respect to form.
func (v *VectorSpace) OrthonormalBasis(form BilinearForm) ([][]float64, error) {
	return orthonormalize(v.Basis(), form)
}

// ReshapeMetricMatrix returns the diagonal of the metric as per-coordinate
// weights; for a vector algebra the flat layout and the coefficient layout
// coincide.
func (v *VectorSpace) ReshapeMetricMatrix(metricMat []float64) ([]float64, error) {
	if len(metricMat) != v.dim*v.dim {
		return nil, ErrDimensionMismatch
	}

	weights := make([]float64, v.dim)
	for i := 0; i < v.dim; i++ {
		weights[i] = metricMat[i*v.dim+i]
	}

	return weights, nil
}
