// Package liealgebra supplies ordered bases of Lie algebras and utilities to
// orthonormalize them with respect to an arbitrary bilinear form.
//
// The invariant-metric engine needs three things from an algebra:
//
//  1. A canonical ordered basis (tangent vectors at the group identity, flat
//     []float64, matching the group's parameterization).
//  2. An orthonormal basis with respect to the metric's bilinear form at
//     identity — produced on demand per form, never cached across forms.
//  3. For diagonal metric matrices on matrix algebras, a per-entry weight
//     layout (ReshapeMetricMatrix) so Hadamard inner products can reweight
//     individual basis directions.
//
// Errors (sentinel):
//
//	– ErrBadDimension     if a constructor receives an unsupported dimension.
//	– ErrDegenerateForm   if the bilinear form vanishes on a basis direction,
//	                      making Gram–Schmidt (and the dual adjoint) unstable.
//	– ErrDimensionMismatch if a supplied metric matrix has the wrong shape.
package liealgebra

import "errors"

// Sentinel errors for basis construction.
var (
	// ErrBadDimension indicates an unsupported algebra dimension.
	ErrBadDimension = errors.New("liealgebra: dimension out of range")

	// ErrDegenerateForm indicates that the supplied bilinear form is (numerically)
	// degenerate on the canonical basis, so no orthonormal basis exists.
	ErrDegenerateForm = errors.New("liealgebra: bilinear form degenerate on basis")

	// ErrDimensionMismatch indicates a metric matrix whose shape does not match
	// the algebra dimension.
	ErrDimensionMismatch = errors.New("liealgebra: metric matrix shape mismatch")
)

// BilinearForm evaluates a symmetric bilinear form on two tangent vectors at
// identity (flat coordinates).
type BilinearForm func(u, v []float64) float64

// Algebra is the Lie-algebra basis provider consumed by the invariant engine.
type Algebra interface {
	// Dim returns the algebra dimension (number of basis elements).
	Dim() int

	// Basis returns the canonical ordered basis as fresh flat slices.
	Basis() [][]float64

	// OrthonormalBasis returns a basis orthonormal with respect to form,
	// built by Gram–Schmidt over the canonical basis. The result is
	// recomputed per call; callers holding a fixed form may cache it.
	// Returns ErrDegenerateForm when the form vanishes on a direction.
	OrthonormalBasis(form BilinearForm) ([][]float64, error)

	// ReshapeMetricMatrix expands a diagonal dim×dim metric matrix
	// (flat row-major) into per-flat-entry weights aligned with the
	// canonical basis layout, for Hadamard-weighted inner products.
	// Returns ErrDimensionMismatch on a wrong-shaped matrix.
	ReshapeMetricMatrix(metricMat []float64) ([]float64, error)
}
