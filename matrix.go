package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// newSquare copies data into an n×n matrix, row-major.
func newSquare(name string, n int, data []complex128) (*mat.CDense, error) {
	if len(data) != n*n {
		return nil, &NonUnitaryGateError{
			Gate:   name,
			Reason: fmt.Sprintf("want %d entries for a %dx%d matrix, got %d", n*n, n, n, len(data)),
		}
	}

	buf := make([]complex128, len(data))
	copy(buf, data)
	return mat.NewCDense(n, n, buf), nil
}

/*
checkUnitary verifies M·M† = I within Tolerance. It runs once per gate at
construction time; Apply never re-checks.
*/
func checkUnitary(name string, m *mat.CDense) error {
	n, _ := m.Dims()
	product := mul(m, m.H())

	if !mat.CEqualApprox(product, identity(n), Tolerance) {
		return &NonUnitaryGateError{
			Gate:   name,
			Reason: fmt.Sprintf("M·M† deviates from identity: %v", product.RawCMatrix().Data),
		}
	}
	return nil
}

func identity(n int) *mat.CDense {
	id := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// mul returns a·b. CDense has no BLAS-backed product, so this is the plain
// triple loop; matrices here are never larger than 4×4.
func mul(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)

	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// kron returns the Kronecker product a⊗b.
func kron(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

// adjoint materializes the conjugate transpose of m.
func adjoint(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	h := m.H()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, h.At(i, j))
		}
	}
	return out
}

func cloneDense(m *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	out.Copy(m)
	return out
}
