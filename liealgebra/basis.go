package liealgebra

import "math"

// gramTol is the degeneracy threshold on squared norms during Gram–Schmidt.
const gramTol = 1e-12

// orthonormalize runs Gram–Schmidt on basis with respect to form.
//
// Indefinite forms are supported: each direction is normalized by the square
// root of the absolute squared norm, preserving the sign structure of the
// form. A direction whose squared norm falls below gramTol makes the form
// degenerate on the basis and aborts with ErrDegenerateForm.
func orthonormalize(basis [][]float64, form BilinearForm) ([][]float64, error) {
	out := make([][]float64, 0, len(basis))
	signs := make([]float64, 0, len(basis))

	for _, b := range basis {
		candidate := append([]float64(nil), b...)
		// Remove components along already-accepted directions.
		for k, e := range out {
			coeff := signs[k] * form(candidate, e)
			for i := range candidate {
				candidate[i] -= coeff * e[i]
			}
		}

		sq := form(candidate, candidate)
		if math.Abs(sq) < gramTol {
			return nil, ErrDegenerateForm
		}
		norm := math.Sqrt(math.Abs(sq))
		for i := range candidate {
			candidate[i] /= norm
		}

		out = append(out, candidate)
		if sq > 0 {
			signs = append(signs, 1)
		} else {
			signs = append(signs, -1)
		}
	}

	return out, nil
}

// IsDiagonal reports whether the flat row-major dim×dim matrix is diagonal
// within a fixed numeric tolerance. Used by the engine to decide whether a
// metric can reweight Hadamard products entry-wise.
func IsDiagonal(m []float64, dim int) bool {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i != j && math.Abs(m[i*dim+j]) > gramTol {
				return false
			}
		}
	}

	return true
}
