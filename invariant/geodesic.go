package invariant

import (
	"math/rand"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/liegeo/group"
	"github.com/katalvlaran/liegeo/integrator"
)

// Euler–Poincaré geodesics: the invariant-metric exponential for arbitrary
// (not necessarily flat or bi-invariant) metrics, by integrating the reduced
// geodesic equation in the Lie algebra, and the matching logarithm as a
// shooting problem over initial velocities.

// GeodesicExp computes the invariant-metric exponential of tangentVec at
// basePoint by integrating the Euler–Poincaré equation
//
//	ω' = Σᵢ ⟨[ω, eᵢ], ω⟩ eᵢ
//
// over the orthonormal basis {eᵢ}, coupled with the group transport
// advancing the position by the group exponential of the velocity increment
// on the invariance side. The initial angular velocity is the tangent vector
// carried to identity and regularized into the algebra.
//
// A zero tangent vector returns basePoint unchanged (up to regularization)
// for any step count. Requires a Lie-algebra basis provider (ErrNoAlgebra).
func (m *Metric) GeodesicExp(tangentVec, basePoint []float64, opts GeodesicOptions) ([]float64, error) {
	flow, err := m.geodesicFlow(basePoint, opts)
	if err != nil {
		return nil, err
	}

	return flow(tangentVec)
}

// geodesicFlow validates once and returns the map tangentVec ↦ endpoint.
// The shooting solver calls the returned closure many times per solve, so
// basis construction and option resolution happen here, not per evaluation.
func (m *Metric) geodesicFlow(basePoint []float64, opts GeodesicOptions) (func([]float64) ([]float64, error), error) {
	basis, err := m.orthonormalBasis()
	if err != nil {
		return nil, err
	}

	if opts.Steps == 0 {
		opts.Steps = DefaultGeodesicOptions().Steps
	}

	base := m.group.Regularize(basePoint)
	side := m.side

	law := func(_ float64, s integrator.State) []float64 {
		acc := make([]float64, len(s.Velocity))
		for _, e := range basis {
			coeff, ipErr := m.InnerProductAtIdentity(m.group.Bracket(s.Velocity, e), s.Velocity)
			if ipErr != nil {
				// Point type was validated before integration begins.
				continue
			}
			for i := range acc {
				acc[i] += coeff * e[i]
			}
		}

		return acc
	}

	transport := func(position, velocity []float64, dt float64) []float64 {
		scaled := make([]float64, len(velocity))
		for i := range velocity {
			scaled[i] = dt * velocity[i]
		}
		step := m.group.Exp(scaled)
		if side == group.Left {
			return m.group.Compose(position, step)
		}

		return m.group.Compose(step, position)
	}

	intOpts := integrator.Options{
		Scheme:    opts.Scheme,
		Steps:     opts.Steps,
		StepSize:  opts.StepSize,
		Transport: transport,
	}

	return func(tangentVec []float64) ([]float64, error) {
		atID := m.group.TangentTranslation(base, side, true)(tangentVec)
		angularVelocity := m.group.RegularizeTangentAtIdentity(atID)

		initial := integrator.State{Position: base, Velocity: angularVelocity}
		trajectory, _, intErr := integrator.Integrate(law, initial, intOpts)
		if intErr != nil {
			return nil, intErr
		}

		final := trajectory[len(trajectory)-1].Position

		return m.group.Regularize(final), nil
	}, nil
}

// GeodesicLog computes the invariant-metric logarithm of point at basePoint
// by minimizing the squared endpoint discrepancy
//
//	‖GeodesicExp(w, basePoint) − point‖²
//
// over the initial velocity w, with a quasi-Newton (L-BFGS) minimizer and a
// central-difference gradient through the integrator. The returned velocity
// is re-projected onto the tangent space at basePoint to absorb numerical
// drift.
//
// This log is approximate: accuracy depends on the integration options and
// on optimizer convergence. Non-convergence is NOT an error — the best
// velocity found is returned together with a LogResult carrying the solver
// status. ErrSolverFailed is reserved for outright optimizer failure.
func (m *Metric) GeodesicLog(point, basePoint []float64, opts LogOptions) ([]float64, LogResult, error) {
	flow, err := m.geodesicFlow(basePoint, opts.Geodesic)
	if err != nil {
		return nil, LogResult{}, err
	}

	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultLogOptions().MaxIterations
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultLogOptions().Tolerance
	}

	target := m.group.Regularize(point)
	base := m.group.Regularize(basePoint)
	size := m.group.PointSize()

	objective := func(w []float64) float64 {
		endpoint, flowErr := flow(w)
		if flowErr != nil {
			// Unreachable after geodesicFlow validation; a huge value keeps
			// the optimizer away regardless.
			return 1e300
		}

		var s float64
		for i := range endpoint {
			d := endpoint[i] - target[i]
			s += d * d
		}

		return s
	}

	problem := optimize.Problem{
		Func: objective,
		Grad: func(grad, w []float64) {
			fd.Gradient(grad, objective, w, &fd.Settings{Formula: fd.Central})
		},
	}

	initial := opts.InitialGuess
	if initial == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultLogOptions().Seed
		}
		rng := rand.New(rand.NewSource(seed))
		initial = make([]float64, size)
		for i := range initial {
			initial[i] = rng.Float64()
		}
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
		Converged:  optErr == nil && converged(result.Status),
		Iterations: result.Stats.MajorIterations,
		Objective:  result.F,
		Status:     result.Status.String(),
	}

	tangent := m.group.ToTangent(result.X, base)

	return tangent, report, nil
}

// converged classifies optimizer terminal statuses: anything that is a
// convergence criterion counts; iteration/evaluation limits and failures do
// not.
func converged(status optimize.Status) bool {
	switch status {
	case optimize.GradientThreshold,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.StepConvergence,
		optimize.MethodConverge,
		optimize.Success:
		return true
	default:
		return false
	}
}
