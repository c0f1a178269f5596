package landmark

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/liegeo/integrator"
)

// Geodesics of the kernel metric follow Hamilton's equations on the
// cotangent bundle,
//
//	q̇ = K(q) p
//	ṗ = −∂H/∂q,    H(q, p) = ½ pᵀK(q)p
//
// integrated over [0, 1]. The position update is the flow of the momentum
// through the co-metric; the momentum derivative is obtained by a
// central-difference gradient of the Hamiltonian, which keeps the flow
// generic over any smooth kernel.

// Geodesic is an integrated kernel geodesic, sampled at fixed steps over
// [0, 1] and interpolated linearly between steps.
type Geodesic struct {
	positions [][]float64
	times     []float64
}

// At returns the configuration at time t ∈ [0, 1].
func (g *Geodesic) At(t float64) ([]float64, error) {
	if t < 0 || t > 1 {
		return nil, ErrBadTime
	}
	last := len(g.positions) - 1
	scaled := t * float64(last)
	lo := int(scaled)
	if lo >= last {
		out := make([]float64, len(g.positions[last]))
		copy(out, g.positions[last])
		return out, nil
	}
	frac := scaled - float64(lo)
	a, b := g.positions[lo], g.positions[lo+1]
	out := make([]float64, len(a))
	for i := range out {
		out[i] = (1-frac)*a[i] + frac*b[i]
	}
	return out, nil
}

// Sample evaluates the path at each of the given times.
func (g *Geodesic) Sample(times []float64) ([][]float64, error) {
	out := make([][]float64, len(times))
	for i, t := range times {
		p, err := g.At(t)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Endpoint returns the configuration at t = 1.
func (g *Geodesic) Endpoint() []float64 {
	out := make([]float64, len(g.positions[len(g.positions)-1]))
	copy(out, g.positions[len(g.positions)-1])
	return out
}

// Geodesic integrates Hamilton's equations from basePoint with the given
// initial momentum and returns the sampled path.
func (m *KernelMetric) Geodesic(basePoint, initialMomentum []float64, opts GeodesicOptions) (*Geodesic, error) {
	if len(basePoint) != m.Size() || len(initialMomentum) != m.Size() {
		return nil, ErrDimensionMismatch
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultGeodesicOptions().Steps
	}

	hamiltonian := func(q, p []float64) float64 {
		h, _ := m.Hamiltonian(q, p)
		return h
	}

	law := func(_ float64, s integrator.State) []float64 {
		grad := make([]float64, len(s.Position))
		fd.Gradient(grad, func(q []float64) float64 {
			return hamiltonian(q, s.Velocity)
		}, s.Position, &fd.Settings{Formula: fd.Central})
		for i := range grad {
			grad[i] = -grad[i]
		}
		return grad
	}

	transport := func(position, momentum []float64, dt float64) []float64 {
		v, _ := m.Velocity(position, momentum)
		out := make([]float64, len(position))
		for i := range position {
			out[i] = position[i] + dt*v[i]
		}
		return out
	}

	initial := integrator.State{Position: basePoint, Velocity: initialMomentum}
	trajectory, times, err := integrator.Integrate(law, initial, integrator.Options{
		Scheme:    opts.Scheme,
		Steps:     opts.Steps,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	positions := make([][]float64, len(trajectory))
	for i, s := range trajectory {
		positions[i] = s.Position
	}

	return &Geodesic{positions: positions, times: times}, nil
}

// GeodesicExp returns the endpoint of the kernel geodesic shot from
// basePoint with the given initial momentum.
func (m *KernelMetric) GeodesicExp(initialMomentum, basePoint []float64, opts GeodesicOptions) ([]float64, error) {
	geod, err := m.Geodesic(basePoint, initialMomentum, opts)
	if err != nil {
		return nil, err
	}
	return geod.Endpoint(), nil
}

// Log recovers the initial momentum whose geodesic from basePoint lands on
// point, by minimizing the squared endpoint discrepancy with L-BFGS and a
// central-difference gradient through the Hamiltonian flow.
//
// Non-convergence is NOT an error: the best momentum found is returned with
// a LogResult carrying the solver status. ErrSolverFailed is reserved for
// outright optimizer failure.
func (m *KernelMetric) Log(point, basePoint []float64, opts LogOptions) ([]float64, LogResult, error) {
	if len(point) != m.Size() || len(basePoint) != m.Size() {
		return nil, LogResult{}, ErrDimensionMismatch
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultLogOptions().MaxIterations
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultLogOptions().Tolerance
	}

	objective := func(p []float64) float64 {
		endpoint, err := m.GeodesicExp(p, basePoint, opts.Geodesic)
		if err != nil {
			// Unreachable after the shape checks above; a huge value keeps
			// the optimizer away regardless.
			return 1e300
		}
		var s float64
		for i := range endpoint {
			d := endpoint[i] - point[i]
			s += d * d
		}
		return s
	}

	problem := optimize.Problem{
		Func: objective,
		Grad: func(grad, p []float64) {
			fd.Gradient(grad, objective, p, &fd.Settings{Formula: fd.Central})
		},
	}

	initial := opts.InitialGuess
	if initial == nil {
		initial = make([]float64, m.Size())
	}

	settings := &optimize.Settings{
		MajorIterations: opts.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   opts.Tolerance,
			Iterations: 3,
		},
	}

	result, optErr := optimize.Minimize(problem, initial, settings, &optimize.LBFGS{})
	if result == nil {
		return nil, LogResult{}, ErrSolverFailed
	}

	report := LogResult{
		Converged:  optErr == nil && convergedStatus(result.Status),
		Iterations: result.Stats.MajorIterations,
		Objective:  result.F,
		Status:     result.Status.String(),
	}

	return result.X, report, nil
}

// GeodesicBetween solves the boundary problem: the kernel geodesic from
// basePoint to point, found by shooting over the initial momentum.
func (m *KernelMetric) GeodesicBetween(basePoint, point []float64, opts LogOptions) (*Geodesic, LogResult, error) {
	momentum, report, err := m.Log(point, basePoint, opts)
	if err != nil {
		return nil, report, err
	}
	geod, err := m.Geodesic(basePoint, momentum, opts.Geodesic)
	if err != nil {
		return nil, report, err
	}
	return geod, report, nil
}

// convergedStatus classifies optimizer terminal statuses: any success
// verdict counts as converged, iteration or evaluation exhaustion does not.
func convergedStatus(status optimize.Status) bool {
	switch status {
	case optimize.GradientThreshold, optimize.FunctionThreshold,
		optimize.FunctionConvergence, optimize.StepConvergence:
		return true
	default:
		return false
	}
}
