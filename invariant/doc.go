// Package invariant implements Riemannian geometry on Lie groups equipped
// with left-, right-, or bi-invariant metrics.
//
// An invariant metric is determined entirely by a symmetric bilinear form at
// the group identity: every quantity at an arbitrary base point is obtained
// by translating tangent vectors to the identity, computing there, and
// translating results back. The package derives from that single matrix:
//
//   - Inner products, norms, and the pulled-back metric matrix (Vector groups).
//   - The Levi-Civita connection, curvature tensor, curvature derivative and
//     sectional curvature, from Lie-algebra structure constants and the
//     metric dual of the adjoint map.
//   - Closed-form exponential and logarithm at identity through the principal
//     square root of the (inverse) metric matrix — valid for flat metrics
//     where group composition is vector addition after a linear change of
//     basis.
//   - The geodesic exponential for arbitrary invariant metrics, by fixed-step
//     integration of the Euler–Poincaré equation in the Lie algebra.
//   - The geodesic logarithm, as a shooting problem over initial velocities
//     solved with a gradient-based quasi-Newton minimizer; this log is
//     approximate by construction and reports, rather than hides, the
//     solver's convergence status.
//
// Metric kinds:
//
//	A Metric is either general invariant (identity exp/log through the
//	square-root construction) or bi-invariant (identity exp/log delegate to
//	the group's own exponential and logarithm; valid on compact groups such
//	as SO(n), enforced through the group's capability tag). The kind fixes
//	the identity-level operations at construction; all lifted operations are
//	shared.
//
// Concurrency:
//
//	A Metric is immutable after construction and safe for concurrent use.
//	Every operation is a pure function of its inputs; cost is bounded only
//	by the iteration counts in the geodesic options.
//
// Caller responsibility: the metric matrix passed at construction is not
// defensively copied. Mutating it afterwards is undefined behavior.
package invariant
