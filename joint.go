package qsim

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

/*
JointState is the state of a control and a target qubit taken together, a
normalized 4-vector over the basis |00⟩, |01⟩, |10⟩, |11⟩. The control is
the high bit of the index and the target the low bit.

A JointState may be entangled, in which case no pair of single qubits
reproduces it. Separate only succeeds on product states.
*/
type JointState struct {
	amps [4]complex128
}

// Basis indices.
const (
	Basis00 = iota
	Basis01
	Basis10
	Basis11
)

// Tensor builds |control⟩⊗|target⟩.
func Tensor(control, target Qubit) JointState {
	return JointState{amps: [4]complex128{
		control.alpha * target.alpha,
		control.alpha * target.beta,
		control.beta * target.alpha,
		control.beta * target.beta,
	}}
}

// NewJointState validates raw amplitudes, ordered 00, 01, 10, 11.
func NewJointState(amps [4]complex128) (JointState, error) {
	if err := checkNormalized(amps[:]...); err != nil {
		return JointState{}, err
	}
	return JointState{amps: amps}, nil
}

// BasisState returns the computational basis state |index⟩, index in 0..3.
func BasisState(index int) JointState {
	if index < Basis00 || index > Basis11 {
		panic(fmt.Sprintf("qsim: basis index %d out of range", index))
	}

	var j JointState
	j.amps[index] = 1
	return j
}

// Amplitudes returns the joint amplitudes ordered 00, 01, 10, 11.
func (j JointState) Amplitudes() [4]complex128 {
	return j.amps
}

// Probabilities returns the Born-rule outcome probabilities for 00..11.
func (j JointState) Probabilities() [4]float64 {
	var probs [4]float64
	for i, amp := range j.amps {
		probs[i] = probability(amp)
	}
	return probs
}

// Equal compares up to global phase, like Qubit.Equal.
func (j JointState) Equal(other JointState) bool {
	return equalUpToPhase(j.amps[:], other.amps[:])
}

// minor is a00·a11 − a01·a10; it vanishes exactly on product states.
func (j JointState) minor() complex128 {
	return j.amps[Basis00]*j.amps[Basis11] - j.amps[Basis01]*j.amps[Basis10]
}

// IsEntangled reports whether the 2x2 minor is nonzero beyond Tolerance.
func (j JointState) IsEntangled() bool {
	return cmplx.Abs(j.minor()) > Tolerance
}

/*
Concurrence measures entanglement for a pure two-qubit state: 0 for
product states, 1 for maximally entangled ones such as the Bell states.
*/
func (j JointState) Concurrence() float64 {
	return 2 * cmplx.Abs(j.minor())
}

/*
Separate factors a product state back into its control and target qubits.

Viewing the amplitudes as rows r0 = (a00, a01) and r1 = (a10, a11), a
product state has both rows parallel to the target vector. The target is
taken from the heavier row and each control amplitude is the projection of
its row onto it. Any global phase ends up on the control qubit.
*/
func (j JointState) Separate() (control, target Qubit, err error) {
	if det := j.minor(); cmplx.Abs(det) > Tolerance {
		return Qubit{}, Qubit{}, &EntangledStateError{Determinant: det}
	}

	r0 := []complex128{j.amps[Basis00], j.amps[Basis01]}
	r1 := []complex128{j.amps[Basis10], j.amps[Basis11]}

	heavy := r0
	if squaredNorm(r1) > squaredNorm(r0) {
		heavy = r1
	}

	if norm := squaredNorm(heavy); norm == 0 {
		return Qubit{}, Qubit{}, &NotNormalizedError{Norm: norm}
	}

	scale := complex(1/cmplxs.Norm(heavy, 2), 0)
	t0, t1 := heavy[0]*scale, heavy[1]*scale

	c0 := cmplx.Conj(t0)*r0[0] + cmplx.Conj(t1)*r0[1]
	c1 := cmplx.Conj(t0)*r1[0] + cmplx.Conj(t1)*r1[1]

	return newQubit(c0, c1), newQubit(t0, t1), nil
}
