package qsim

import (
	"math"
	"math/cmplx"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/mat"
)

/*
Gate is a single-qubit unitary, a fixed 2×2 complex matrix in the |0⟩, |1⟩
basis. Unitarity is checked once when the gate is built; Apply does not
validate its input or output.
*/
type Gate struct {
	name   string
	m      [4]complex128 // row-major m00, m01, m10, m11
	matrix *mat.CDense
}

var (
	I = mustGate("I", []complex128{1, 0, 0, 1})
	X = mustGate("X", []complex128{0, 1, 1, 0})
	Y = mustGate("Y", []complex128{0, -1i, 1i, 0})
	Z = mustGate("Z", []complex128{1, 0, 0, -1})
	H = mustGate("H", []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	})
	S   = mustGate("S", []complex128{1, 0, 0, 1i})
	Sdg = mustGate("Sdg", []complex128{1, 0, 0, -1i})
	T   = mustGate("T", []complex128{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))})
	Tdg = mustGate("Tdg", []complex128{1, 0, 0, cmplx.Exp(complex(0, -math.Pi/4))})
)

/*
NewGate validates a custom 2×2 matrix, given row-major, and returns it as a
Gate. A matrix with the wrong number of entries or one that fails
M·M† = I yields a NonUnitaryGateError.
*/
func NewGate(name string, data []complex128) (Gate, error) {
	matrix, err := newSquare(name, 2, data)
	if err != nil {
		return Gate{}, err
	}

	if err := checkUnitary(name, matrix); err != nil {
		return Gate{}, err
	}

	errnie.Info("NewGate - name %s, matrix %v", name, data)
	return gateFrom(name, matrix), nil
}

// mustGate is for gates whose matrices are fixed in code; failing here is a
// programming error.
func mustGate(name string, data []complex128) Gate {
	matrix, err := newSquare(name, 2, data)
	if err == nil {
		err = checkUnitary(name, matrix)
	}
	if err != nil {
		panic(err)
	}
	return gateFrom(name, matrix)
}

func gateFrom(name string, matrix *mat.CDense) Gate {
	return Gate{
		name: name,
		m: [4]complex128{
			matrix.At(0, 0), matrix.At(0, 1),
			matrix.At(1, 0), matrix.At(1, 1),
		},
		matrix: matrix,
	}
}

// RX rotates about the X axis by theta.
func RX(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return mustGate("RX", []complex128{c, s, s, c})
}

// RY rotates about the Y axis by theta.
func RY(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return mustGate("RY", []complex128{c, -s, s, c})
}

// RZ rotates about the Z axis by theta.
func RZ(theta float64) Gate {
	half := cmplx.Exp(complex(0, theta/2))
	return mustGate("RZ", []complex128{cmplx.Conj(half), 0, 0, half})
}

// Phase multiplies the |1⟩ amplitude by e^{iθ}. Phase(π/2) is S, Phase(π/4) is T.
func Phase(theta float64) Gate {
	return mustGate("P", []complex128{1, 0, 0, cmplx.Exp(complex(0, theta))})
}

func (g Gate) Name() string {
	return g.name
}

// Matrix returns a copy of the gate's matrix.
func (g Gate) Matrix() *mat.CDense {
	return cloneDense(g.matrix)
}

// Apply returns M·(α, β)ᵗ as a new qubit.
func (g Gate) Apply(q Qubit) Qubit {
	q.alpha, q.beta = g.m[0]*q.alpha+g.m[1]*q.beta, g.m[2]*q.alpha+g.m[3]*q.beta
	return q
}

// Adjoint returns the inverse gate M†.
func (g Gate) Adjoint() Gate {
	return gateFrom(g.name+"†", adjoint(g.matrix))
}

/*
Then composes g followed by next into a single gate whose matrix is
next·g. The product of unitaries is unitary, so no re-check is needed.
*/
func (g Gate) Then(next Gate) Gate {
	return gateFrom(g.name+"·"+next.name, mul(next.matrix, g.matrix))
}

// ApplyAll applies gates to q in order.
func ApplyAll(q Qubit, gates ...Gate) Qubit {
	for _, g := range gates {
		q = g.Apply(q)
	}
	return q
}
