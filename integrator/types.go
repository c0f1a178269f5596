// Package integrator provides a fixed-step ODE stepper for second-order flows
// on a state (position, velocity), with pluggable schemes and an optional
// group transport for positions that live on a manifold.
//
// The stepper integrates
//
//	position' = velocity      (advanced through Transport)
//	velocity' = law(t, state) (the injected acceleration law)
//
// Schemes:
//
//	– Euler — 1 law evaluation per step, first order.
//	– RK2   — midpoint rule, 2 evaluations per step, second order.
//	– RK4   — classic Runge–Kutta, 4 evaluations per step, fourth order.
//
// All schemes converge to the same continuous-time trajectory as the number
// of steps grows; the choice trades accuracy for law evaluations. Each step
// is a fixed composition of arithmetic primitives with no data-dependent
// branching, so gradients of the flow with respect to the initial state are
// well defined for finite-difference differentiation.
//
// Errors (sentinel):
//
//	– ErrNilLaw    if no acceleration law is supplied.
//	– ErrBadSteps  if Steps < 1.
//	– ErrBadStep   if StepSize < 0.
//	– ErrBadScheme if the scheme enum is out of range.
package integrator

import "errors"

// Sentinel errors returned by Integrate.
var (
	// ErrNilLaw indicates a nil acceleration law.
	ErrNilLaw = errors.New("integrator: acceleration law is nil")

	// ErrBadSteps indicates a non-positive step count.
	ErrBadSteps = errors.New("integrator: Steps must be >= 1")

	// ErrBadStep indicates a negative step size.
	ErrBadStep = errors.New("integrator: StepSize must be non-negative")

	// ErrBadScheme indicates an unknown integration scheme.
	ErrBadScheme = errors.New("integrator: unknown scheme")
)

// State is one point of the flow: a position and a velocity, both flat
// coordinate slices. States are treated as immutable values; every scheme
// allocates fresh slices for its output.
type State struct {
	Position []float64
	Velocity []float64
}

// Law computes the velocity derivative (acceleration) at time t and state s.
// It must not mutate s.
type Law func(t float64, s State) []float64

// Transport advances a position by a velocity over a time increment dt.
// The default (nil) transport is flat: position + dt·velocity. Group-valued
// positions supply Compose(position, Exp(dt·velocity)) here so intermediate
// positions stay on the manifold.
type Transport func(position, velocity []float64, dt float64) []float64

// Scheme selects the integration rule.
type Scheme int

const (
	// Euler: explicit first-order rule, cheapest.
	Euler Scheme = iota

	// RK2: explicit midpoint rule.
	RK2

	// RK4: classic fourth-order Runge–Kutta, default.
	RK4
)

// String returns the scheme name used in diagnostics.
func (s Scheme) String() string {
	switch s {
	case Euler:
		return "euler"
	case RK2:
		return "rk2"
	case RK4:
		return "rk4"
	default:
		return "unknown"
	}
}

// Options configures a fixed-step integration run.
//
// Fields:
//   - Scheme    — integration rule (default RK4).
//   - Steps     — number of fixed steps over the unit interval (default 15).
//   - StepSize  — length of one step; 0 means 1/Steps so the flow covers [0,1].
//   - Transport — position update rule; nil means flat addition.
type Options struct {
	Scheme    Scheme
	Steps     int
	StepSize  float64
	Transport Transport
}

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Scheme:   RK4,
		Steps:    15,
		StepSize: 0,
	}
}
