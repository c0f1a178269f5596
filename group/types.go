// Package group defines the Lie-group contract consumed by the invariant
// metric engine, plus reference groups used across tests and examples.
//
// A Group bundles the algebraic operations (identity, composition, inverse),
// the differential-geometric ones (tangent translation, group exponential and
// logarithm, Lie bracket), and two capability tags: the point parameterization
// (Vector or Matrix) and whether the group admits the canonical bi-invariant
// metric.
//
// Representation:
//
//	Points and tangent vectors are flat []float64 coordinate slices.
//	  – Vector groups use length Dim().
//	  – Matrix groups flatten an n×n matrix row-major to length PointSize().
//	Points live on the group manifold; tangent vectors live in the tangent
//	space at a stated base point. The two share a representation but never a
//	meaning — parameter names in this module always say which one is expected.
//
// Errors (sentinel):
//
//	– ErrBadDimension    if a constructor receives a non-positive (or too small) dimension.
//	– ErrBadPointSize    if a slice has the wrong length for the group's parameterization.
//	– ErrNotInvertible   if a matrix inversion required by a translation map fails.
package group

import "errors"

// Sentinel errors shared by the reference groups.
var (
	// ErrBadDimension indicates that a constructor received a dimension
	// outside the supported range (Euclidean: dim ≥ 1, SpecialOrthogonal: n ≥ 2).
	ErrBadDimension = errors.New("group: dimension out of range")

	// ErrBadPointSize indicates a coordinate slice whose length does not match
	// the group's PointSize.
	ErrBadPointSize = errors.New("group: coordinate slice has wrong length")

	// ErrNotInvertible indicates that a matrix required by a translation map
	// or logarithm could not be inverted.
	ErrNotInvertible = errors.New("group: matrix not invertible")

	// ErrNoJacobian indicates that JacobianTranslation was requested on a
	// Matrix-parameterized group, where no dim×dim coordinate Jacobian of the
	// translation action is defined.
	ErrNoJacobian = errors.New("group: jacobian not defined for matrix parameterization")
)

// Side selects between left and right translation (and hence between left-
// and right-invariant constructions built on top of it).
type Side int

const (
	// Left translation: L_g(h) = g∘h.
	Left Side = iota

	// Right translation: R_g(h) = h∘g.
	Right
)

// String returns the lowercase name used in diagnostics.
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// PointType tags how group elements are parameterized.
//
//   - Vector — points are coordinate vectors of length Dim(); composition is
//     typically expressed directly on coordinates.
//   - Matrix — points are n×n matrices flattened row-major; composition is
//     matrix multiplication.
type PointType int

const (
	// Vector parameterization: flat coordinates of length Dim().
	Vector PointType = iota

	// Matrix parameterization: row-major n×n entries, length PointSize().
	Matrix
)

// TranslationFunc maps one tangent vector to another; returned by
// TangentTranslation and applied pointwise by callers.
type TranslationFunc func(tangentVec []float64) []float64

// Group is the collaborator contract of the invariant-metric engine.
//
// Implementations must be immutable after construction and safe for
// concurrent use; every method is a pure function of its arguments.
type Group interface {
	// Dim returns the dimension of the Lie algebra.
	Dim() int

	// PointSize returns the length of a flat point/tangent slice:
	// Dim() for Vector groups, n*n for Matrix groups.
	PointSize() int

	// PointType reports the point parameterization.
	PointType() PointType

	// Identity returns the identity element as a fresh slice.
	Identity() []float64

	// Compose returns a∘b.
	Compose(a, b []float64) []float64

	// Inverse returns the group inverse of p.
	Inverse(p []float64) []float64

	// Regularize maps p to its canonical representative on the group
	// (e.g. re-projecting a drifted matrix onto the rotation manifold).
	Regularize(p []float64) []float64

	// RegularizeTangentAtIdentity maps a tangent vector at identity to its
	// canonical representative in the Lie algebra (e.g. skew-symmetrization).
	RegularizeTangentAtIdentity(tangentVec []float64) []float64

	// TangentTranslation returns the differential of left or right
	// translation by base (or by its inverse when inverse is true), as a map
	// on tangent vectors. With inverse=true the map carries tangent vectors
	// at base to tangent vectors at identity; with inverse=false it carries
	// tangent vectors at identity back to base.
	TangentTranslation(base []float64, side Side, inverse bool) TranslationFunc

	// ToTangent projects an arbitrary ambient vector onto the tangent space
	// at base.
	ToTangent(vec, base []float64) []float64

	// JacobianTranslation returns the dim×dim Jacobian (row-major) of the
	// translation by point, for Vector groups. Matrix groups return
	// ErrNoJacobian.
	JacobianTranslation(point []float64, side Side) ([]float64, error)

	// Bracket returns the Lie bracket [x, y] of two tangent vectors at
	// identity.
	Bracket(x, y []float64) []float64

	// Exp is the group exponential of a tangent vector at identity.
	Exp(tangentVec []float64) []float64

	// Log is the group logarithm of a point, a tangent vector at identity.
	Log(p []float64) []float64

	// SupportsBiInvariant reports whether the canonical bi-invariant metric
	// exists on the group (true for compact groups such as SO(n)).
	SupportsBiInvariant() bool
}
