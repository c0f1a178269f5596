package landmark

// L2Metric is the flat product metric on landmark configurations: landmarks
// do not interact, geodesics are straight lines, and exp/log are vector
// addition and subtraction. It serves as the baseline the kernel metric is
// contrasted against.
//
// Immutable once constructed.
type L2Metric struct {
	ambientDim int
	kLandmarks int
}

// NewL2Metric builds the flat metric for k landmarks in R^d.
func NewL2Metric(ambientDim, kLandmarks int) (*L2Metric, error) {
	if ambientDim < 1 {
		return nil, ErrBadAmbientDim
	}
	if kLandmarks < 1 {
		return nil, ErrBadLandmarks
	}
	return &L2Metric{ambientDim: ambientDim, kLandmarks: kLandmarks}, nil
}

// AmbientDim returns the dimension of the space each landmark lives in.
func (m *L2Metric) AmbientDim() int { return m.ambientDim }

// Landmarks returns the number of landmarks in a configuration.
func (m *L2Metric) Landmarks() int { return m.kLandmarks }

// Size returns the flat slice length of a configuration or tangent vector.
func (m *L2Metric) Size() int { return m.kLandmarks * m.ambientDim }

// InnerProduct is the plain dot product of two tangent vectors.
func (m *L2Metric) InnerProduct(u, v []float64) (float64, error) {
	if len(u) != m.Size() || len(v) != m.Size() {
		return 0, ErrDimensionMismatch
	}
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}
	return s, nil
}

// Exp translates basePoint by tangentVec.
func (m *L2Metric) Exp(tangentVec, basePoint []float64) ([]float64, error) {
	if len(tangentVec) != m.Size() || len(basePoint) != m.Size() {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.Size())
	for i := range out {
		out[i] = basePoint[i] + tangentVec[i]
	}
	return out, nil
}

// Log returns the displacement from basePoint to point.
func (m *L2Metric) Log(point, basePoint []float64) ([]float64, error) {
	if len(point) != m.Size() || len(basePoint) != m.Size() {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.Size())
	for i := range out {
		out[i] = point[i] - basePoint[i]
	}
	return out, nil
}

// Geodesic returns the straight-line path from basePoint in the direction of
// tangentVec, reusing the sampled-path representation of the kernel metric.
func (m *L2Metric) Geodesic(basePoint, tangentVec []float64) (*Geodesic, error) {
	endpoint, err := m.Exp(tangentVec, basePoint)
	if err != nil {
		return nil, err
	}
	start := make([]float64, m.Size())
	copy(start, basePoint)
	return &Geodesic{
		positions: [][]float64{start, endpoint},
		times:     []float64{0, 1},
	}, nil
}
