package qsim

import "github.com/theapemachine/errnie"

/*
Pair is either a Product of two independent qubits or an Entangled joint
state. An Entangled value has no single-qubit accessors.
*/
type Pair interface {
	Joint() JointState
	isPair()
}

// Product holds two qubits that share no correlations.
type Product struct {
	Control Qubit
	Target  Qubit
}

func (p Product) Joint() JointState {
	return Tensor(p.Control, p.Target)
}

func (Product) isPair() {}

// Entangled holds a joint state that has no single-qubit factorization.
type Entangled struct {
	State JointState
}

func (e Entangled) Joint() JointState {
	return e.State
}

func (Entangled) isPair() {}

// Classify returns Product when j factors and Entangled otherwise.
func Classify(j JointState) Pair {
	control, target, err := j.Separate()
	if err != nil {
		errnie.Info("Classify - entangled, concurrence %v", j.Concurrence())
		return Entangled{State: j}
	}

	return Product{Control: control, Target: target}
}

// Entangle applies a two-qubit gate to a pair and re-classifies the result.
func Entangle(g TwoQubitGate, p Pair) Pair {
	return Classify(g.Apply(p.Joint()))
}
