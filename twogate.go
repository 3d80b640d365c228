package qsim

import (
	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/mat"
)

// TwoQubitGate is a 4×4 unitary over the joint basis 00, 01, 10, 11.
type TwoQubitGate struct {
	name   string
	m      [16]complex128
	matrix *mat.CDense
}

var (
	// CNOT flips the target when the control is |1⟩, swapping the 10 and 11
	// amplitudes. It is the only entangling gate built in.
	CNOT = mustTwoQubitGate("CNOT", []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})

	CZ = mustTwoQubitGate("CZ", []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})

	SWAP = mustTwoQubitGate("SWAP", []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
)

// NewTwoQubitGate validates a custom 4×4 matrix given row-major.
func NewTwoQubitGate(name string, data []complex128) (TwoQubitGate, error) {
	matrix, err := newSquare(name, 4, data)
	if err != nil {
		return TwoQubitGate{}, err
	}

	if err := checkUnitary(name, matrix); err != nil {
		return TwoQubitGate{}, err
	}

	errnie.Info("NewTwoQubitGate - name %s", name)
	return twoQubitGateFrom(name, matrix), nil
}

func mustTwoQubitGate(name string, data []complex128) TwoQubitGate {
	matrix, err := newSquare(name, 4, data)
	if err == nil {
		err = checkUnitary(name, matrix)
	}
	if err != nil {
		panic(err)
	}
	return twoQubitGateFrom(name, matrix)
}

func twoQubitGateFrom(name string, matrix *mat.CDense) TwoQubitGate {
	g := TwoQubitGate{name: name, matrix: matrix}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			g.m[i*4+j] = matrix.At(i, j)
		}
	}
	return g
}

// OnControl lifts g to act on the control qubit only, g⊗I.
func OnControl(g Gate) TwoQubitGate {
	return twoQubitGateFrom(g.name+"⊗I", kron(g.matrix, I.matrix))
}

// OnTarget lifts g to act on the target qubit only, I⊗g.
func OnTarget(g Gate) TwoQubitGate {
	return twoQubitGateFrom("I⊗"+g.name, kron(I.matrix, g.matrix))
}

func (g TwoQubitGate) Name() string {
	return g.name
}

func (g TwoQubitGate) Matrix() *mat.CDense {
	return cloneDense(g.matrix)
}

func (g TwoQubitGate) Adjoint() TwoQubitGate {
	return twoQubitGateFrom(g.name+"†", adjoint(g.matrix))
}

// Then composes g followed by next, the matrix product next·g.
func (g TwoQubitGate) Then(next TwoQubitGate) TwoQubitGate {
	return twoQubitGateFrom(g.name+"·"+next.name, mul(next.matrix, g.matrix))
}

// Apply returns M·j as a new joint state.
func (g TwoQubitGate) Apply(j JointState) JointState {
	var out JointState
	for i := 0; i < 4; i++ {
		row := g.m[i*4 : i*4+4]
		out.amps[i] = row[0]*j.amps[0] + row[1]*j.amps[1] + row[2]*j.amps[2] + row[3]*j.amps[3]
	}
	return out
}
