package landmark

import "math"

// GaussianKernel returns the Gaussian kernel of bandwidth sigma,
// k(d²) = exp(−d²/σ²).
func GaussianKernel(sigma float64) Kernel {
	inv := 1.0 / (sigma * sigma)
	return func(sqDist float64) float64 {
		return math.Exp(-sqDist * inv)
	}
}

// KernelMetric is a right-invariant kernel metric on landmark
// configurations. The metric is defined through its co-metric: the k×k
// matrix K(q) of kernel evaluations at pairwise squared distances, applied
// independently to each ambient coordinate of a momentum.
//
// Immutable once constructed.
type KernelMetric struct {
	ambientDim int
	kLandmarks int
	kernel     Kernel
}

// NewKernelMetric builds the kernel metric for k landmarks in R^d.
func NewKernelMetric(ambientDim, kLandmarks int, kernel Kernel) (*KernelMetric, error) {
	if ambientDim < 1 {
		return nil, ErrBadAmbientDim
	}
	if kLandmarks < 1 {
		return nil, ErrBadLandmarks
	}
	if kernel == nil {
		return nil, ErrNilKernel
	}
	return &KernelMetric{ambientDim: ambientDim, kLandmarks: kLandmarks, kernel: kernel}, nil
}

// AmbientDim returns the dimension of the space each landmark lives in.
func (m *KernelMetric) AmbientDim() int { return m.ambientDim }

// Landmarks returns the number of landmarks in a configuration.
func (m *KernelMetric) Landmarks() int { return m.kLandmarks }

// Size returns the flat slice length of a configuration or momentum.
func (m *KernelMetric) Size() int { return m.kLandmarks * m.ambientDim }

// CoMetric evaluates the k×k kernel matrix at the configuration q:
// K_ij = kernel(‖q_i − q_j‖²), returned flat row-major.
func (m *KernelMetric) CoMetric(q []float64) ([]float64, error) {
	if len(q) != m.Size() {
		return nil, ErrDimensionMismatch
	}
	k := m.kLandmarks
	out := make([]float64, k*k)
	for i := 0; i < k; i++ {
		out[i*k+i] = m.kernel(0)
		for j := i + 1; j < k; j++ {
			v := m.kernel(m.sqDist(q, i, j))
			out[i*k+j] = v
			out[j*k+i] = v
		}
	}
	return out, nil
}

// Hamiltonian evaluates H(q, p) = ½ Σ_ij K_ij(q) ⟨p_i, p_j⟩, the kinetic
// energy of the momentum p at the configuration q.
func (m *KernelMetric) Hamiltonian(q, p []float64) (float64, error) {
	if len(q) != m.Size() || len(p) != m.Size() {
		return 0, ErrDimensionMismatch
	}
	k, d := m.kLandmarks, m.ambientDim
	var h float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			dot := 0.0
			for a := 0; a < d; a++ {
				dot += p[i*d+a] * p[j*d+a]
			}
			h += m.kernel(m.sqDist(q, i, j)) * dot
		}
	}
	return h / 2, nil
}

// Velocity maps a momentum to the tangent vector it drives, v = K(q) p
// applied per ambient coordinate.
func (m *KernelMetric) Velocity(q, p []float64) ([]float64, error) {
	if len(q) != m.Size() || len(p) != m.Size() {
		return nil, ErrDimensionMismatch
	}
	k, d := m.kLandmarks, m.ambientDim
	out := make([]float64, k*d)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			w := m.kernel(m.sqDist(q, i, j))
			for a := 0; a < d; a++ {
				out[i*d+a] += w * p[j*d+a]
			}
		}
	}
	return out, nil
}

func (m *KernelMetric) sqDist(q []float64, i, j int) float64 {
	d := m.ambientDim
	var s float64
	for a := 0; a < d; a++ {
		diff := q[i*d+a] - q[j*d+a]
		s += diff * diff
	}
	return s
}
