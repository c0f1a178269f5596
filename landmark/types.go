// Package landmark implements metrics on configurations of labelled points
// in Euclidean space.
//
// A configuration of k landmarks in R^d is a flat []float64 of length k*d,
// row-major: landmark i occupies entries [i*d, (i+1)*d). Two metrics are
// provided:
//
//   - KernelMetric — the co-metric is a kernel matrix built from pairwise
//     squared distances; geodesics follow Hamilton's equations and are
//     computed numerically.
//   - L2Metric — the flat product metric; geodesics are straight lines.
//
// Shapes are validated once per call against the metric's (k, d) pair;
// mismatches return ErrDimensionMismatch.
package landmark

import (
	"errors"

	"github.com/katalvlaran/liegeo/integrator"
)

// Sentinel errors returned by this package.
var (
	// ErrBadAmbientDim - ambient dimension below 1 at construction.
	ErrBadAmbientDim = errors.New("landmark: ambient dimension must be >= 1")
	// ErrBadLandmarks - landmark count below 1 at construction.
	ErrBadLandmarks = errors.New("landmark: landmark count must be >= 1")
	// ErrNilKernel - KernelMetric built without a kernel function.
	ErrNilKernel = errors.New("landmark: nil kernel")
	// ErrDimensionMismatch - a point or momentum slice of the wrong length.
	ErrDimensionMismatch = errors.New("landmark: dimension mismatch")
	// ErrBadTime - a path sampled outside [0, 1].
	ErrBadTime = errors.New("landmark: time outside [0, 1]")
	// ErrSolverFailed - the shooting solver produced no candidate at all.
	ErrSolverFailed = errors.New("landmark: solver failed")
)

// Kernel maps a squared distance between two landmarks to a scalar weight.
// It must be smooth in its argument; the Hamiltonian flow differentiates it
// numerically.
type Kernel func(sqDist float64) float64

// GeodesicOptions control the numerical integration of Hamilton's equations.
type GeodesicOptions struct {
	// Scheme selects the step rule. Default: integrator.Euler, matching the
	// usual choice for kernel landmark flows.
	Scheme integrator.Scheme
	// Steps is the number of fixed integration steps over [0, 1].
	// Default: 10.
	Steps int
}

// DefaultGeodesicOptions returns the options used when callers have no
// reason to deviate.
func DefaultGeodesicOptions() GeodesicOptions {
	return GeodesicOptions{Scheme: integrator.Euler, Steps: 10}
}

// LogOptions control the shooting solver that inverts the exponential map.
type LogOptions struct {
	// Geodesic parametrizes the flow evaluated inside the objective.
	Geodesic GeodesicOptions
	// MaxIterations bounds the optimizer's major iterations. Default: 50.
	MaxIterations int
	// Tolerance is the absolute objective-decrease threshold treated as
	// converged. Default: 1e-10.
	Tolerance float64
	// InitialGuess, when non-nil, seeds the initial momentum. Defaults to
	// the zero momentum, which shoots from rest.
	InitialGuess []float64
}

// DefaultLogOptions returns the solver defaults.
func DefaultLogOptions() LogOptions {
	return LogOptions{
		Geodesic:      DefaultGeodesicOptions(),
		MaxIterations: 50,
		Tolerance:     1e-10,
	}
}

// LogResult reports how the shooting solver ended. A non-converged result is
// not an error: the momentum returned alongside is the best candidate found.
type LogResult struct {
	// Converged is true when the optimizer stopped on a success status.
	Converged bool
	// Iterations is the number of major iterations consumed.
	Iterations int
	// Objective is the final squared endpoint discrepancy.
	Objective float64
	// Status is the optimizer's own verdict, for diagnostics.
	Status string
}
