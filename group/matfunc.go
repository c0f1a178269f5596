package group

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Iteration caps for the matrix-logarithm routines. The square-root recursion
// converges quadratically, so these bounds are generous.
const (
	logMaxSqrt   = 40
	logSeriesLen = 16
	sqrtMaxIter  = 50
	sqrtTol      = 1e-14
)

// matrixLog computes the principal logarithm of a flat row-major n×n matrix
// by inverse scaling-and-squaring: take repeated principal square roots until
// the argument is close to the identity, evaluate the Mercator series
// log(I+X) = X - X²/2 + X³/3 - ..., and scale back by the number of roots.
//
// Intended for rotations (and other matrices with no eigenvalue on the closed
// negative real axis); used by SpecialOrthogonal.Log for n > 3.
func matrixLog(p []float64, n int) []float64 {
	a := mat.NewDense(n, n, append([]float64(nil), p...))

	// Square-root until ‖A - I‖_F is small enough for the series.
	var k int
	for k = 0; k < logMaxSqrt && offIdentityNorm(a, n) > 0.25; k++ {
		a = denmanBeavers(a, n)
	}

	// X = A - I.
	x := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			if i == j {
				v--
			}
			x.Set(i, j, v)
		}
	}

	// Mercator series, Horner-free accumulation of Σ (-1)^{m+1} Xᵐ/m.
	sum := mat.NewDense(n, n, nil)
	pow := mat.DenseCopyOf(x)
	sign := 1.0
	for m := 1; m <= logSeriesLen; m++ {
		var term mat.Dense
		term.Scale(sign/float64(m), pow)
		sum.Add(sum, &term)
		if m < logSeriesLen {
			var next mat.Dense
			next.Mul(pow, x)
			pow = mat.DenseCopyOf(&next)
		}
		sign = -sign
	}

	// Undo the square roots: log A = 2^k · log A^(1/2^k).
	sum.Scale(math.Pow(2, float64(k)), sum)

	return flatten(sum, n)
}

// denmanBeavers computes the principal matrix square root by the coupled
// Denman–Beavers iteration:
//
//	Y₀ = A, Z₀ = I
//	Yₖ₊₁ = (Yₖ + Zₖ⁻¹)/2,  Zₖ₊₁ = (Zₖ + Yₖ⁻¹)/2
//	Yₖ → A^(1/2)
//
// Falls back to the last iterate when an inversion fails (singular input is
// outside the domain of the principal square root anyway).
func denmanBeavers(a *mat.Dense, n int) *mat.Dense {
	y := mat.DenseCopyOf(a)
	z := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		z.Set(i, i, 1)
	}

	for iter := 0; iter < sqrtMaxIter; iter++ {
		var yInv, zInv mat.Dense
		if err := yInv.Inverse(y); err != nil {
			return y
		}
		if err := zInv.Inverse(z); err != nil {
			return y
		}

		yNext := mat.NewDense(n, n, nil)
		zNext := mat.NewDense(n, n, nil)
		yNext.Add(y, &zInv)
		yNext.Scale(0.5, yNext)
		zNext.Add(z, &yInv)
		zNext.Scale(0.5, zNext)

		var diff mat.Dense
		diff.Sub(yNext, y)
		y, z = yNext, zNext
		if mat.Norm(&diff, 2) < sqrtTol {
			break
		}
	}

	return y
}

// offIdentityNorm returns ‖A - I‖_F.
func offIdentityNorm(a *mat.Dense, n int) float64 {
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			if i == j {
				v--
			}
			s += v * v
		}
	}

	return math.Sqrt(s)
}
