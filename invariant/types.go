// Package invariant: sentinel errors, metric configuration and result types.
//
// Errors (sentinel):
//
//	– ErrNilGroup             nil group at construction.
//	– ErrInvalidConfiguration unsupported side, or a bi-invariant metric on a
//	                          group without the capability tag. Construction-time,
//	                          never deferred.
//	– ErrAsymmetricMetric     metric matrix not symmetric within tolerance.
//	– ErrDimensionMismatch    metric matrix shape does not match the group dim.
//	– ErrUnsupportedPointType group parameterization outside {Vector, Matrix}.
//	– ErrNotImplemented       an operation with no closed form for the group's
//	                          parameterization (e.g. MetricMatrix on Matrix groups).
//	– ErrNoAlgebra            a curvature/geodesic operation that needs the
//	                          Lie-algebra basis provider, on a metric built without one.
//	– ErrIndefiniteMetric     closed-form exp/log requested but the metric matrix
//	                          is not positive definite.
//	– ErrSolverFailed         the geodesic log optimizer failed outright (not mere
//	                          non-convergence, which is reported in the result).
package invariant

import (
	"errors"

	"github.com/katalvlaran/liegeo/integrator"
)

// Numeric tolerances shared across the package.
const (
	// epsilon guards near-zero denominators (sectional curvature) and the
	// base-point-is-identity test.
	epsilon = 1e-6

	// symTol bounds the allowed asymmetry |M - Mᵀ| at construction.
	symTol = 1e-10
)

// Sentinel errors. See the file preamble for the full catalogue.
var (
	ErrNilGroup             = errors.New("invariant: group is nil")
	ErrInvalidConfiguration = errors.New("invariant: invalid metric configuration")
	ErrAsymmetricMetric     = errors.New("invariant: metric matrix is not symmetric")
	ErrDimensionMismatch    = errors.New("invariant: metric matrix shape mismatch")
	ErrUnsupportedPointType = errors.New("invariant: unsupported point type")
	ErrNotImplemented       = errors.New("invariant: operation not implemented for this parameterization")
	ErrNoAlgebra            = errors.New("invariant: operation requires a Lie-algebra basis provider")
	ErrIndefiniteMetric     = errors.New("invariant: metric matrix is not positive definite")
	ErrSolverFailed         = errors.New("invariant: geodesic log solver failed")
)

// Signature is the eigenvalue signature (positive, null, negative counts) of
// the metric matrix at identity, computed once at construction.
type Signature struct {
	Pos  int
	Null int
	Neg  int
}

// kind selects the identity-level exp/log strategy of a Metric.
type kind int

const (
	// generalInvariant: identity exp/log via the metric square-root construction.
	generalInvariant kind = iota

	// biInvariant: identity exp/log delegate to the group exponential/logarithm.
	biInvariant
)

// GeodesicOptions configures the Euler–Poincaré geodesic integration.
//
// Fields:
//   - Scheme   — integration rule (default RK4; Euler and RK2 are cheaper and
//     coarser; all rules agree in the limit of many steps).
//   - Steps    — number of fixed integration steps (default 15).
//   - StepSize — step length; 0 means 1/Steps, so the geodesic reaches time 1.
type GeodesicOptions struct {
	Scheme   integrator.Scheme
	Steps    int
	StepSize float64
}

// DefaultGeodesicOptions returns the documented defaults.
func DefaultGeodesicOptions() GeodesicOptions {
	return GeodesicOptions{
		Scheme: integrator.RK4,
		Steps:  15,
	}
}

// LogOptions configures the shooting solver of the geodesic logarithm.
//
// Fields:
//   - Geodesic      — options of the inner exponential integration.
//   - MaxIterations — optimizer major-iteration cap (default 25).
//   - Tolerance     — optimizer convergence tolerance (default 1e-10).
//   - Seed          — seed of the random initial velocity (default 1);
//     ignored when InitialGuess is set.
//   - InitialGuess  — optional starting velocity, flat coordinates at base.
type LogOptions struct {
	Geodesic      GeodesicOptions
	MaxIterations int
	Tolerance     float64
	Seed          int64
	InitialGuess  []float64
}

// DefaultLogOptions returns the documented defaults.
func DefaultLogOptions() LogOptions {
	return LogOptions{
		Geodesic:      DefaultGeodesicOptions(),
		MaxIterations: 25,
		Tolerance:     1e-10,
		Seed:          1,
	}
}

// LogResult reports how the geodesic log solver terminated. Non-convergence
// is not an error: the best velocity found is returned regardless, and the
// caller decides whether the report is acceptable.
type LogResult struct {
	// Converged is true when the optimizer stopped on a convergence
	// criterion rather than an iteration or evaluation limit.
	Converged bool

	// Iterations is the number of major iterations spent.
	Iterations int

	// Objective is the final squared endpoint discrepancy.
	Objective float64

	// Status is the optimizer's own terminal status string, for diagnostics.
	Status string
}
