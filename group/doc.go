// Package group provides the Lie-group abstraction consumed by the rest of
// the module, along with two reference groups:
//
//   - Euclidean — the additive group R^dim (Vector parameterization, abelian,
//     flat); the natural home of the closed-form invariant exp/log.
//   - SpecialOrthogonal — the rotation group SO(n) (Matrix parameterization,
//     compact); the natural home of the bi-invariant metric.
//
// Everything downstream (liealgebra, invariant, landmark) talks to groups
// only through the Group interface, so additional groups can be supplied by
// callers without touching the engine.
package group
