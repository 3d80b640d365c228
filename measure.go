package qsim

import (
	"math"
	"math/rand/v2"
)

/*
Source is the only randomness the simulator consumes. It must return values
uniformly distributed in [0, 1). Callers inject it so that test runs can be
replayed; nothing in this package reads a global generator.
*/
type Source interface {
	Float64() float64
}

// NewSource returns a seeded PCG generator.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Bit is a classical measurement outcome, 0 or 1.
type Bit uint8

/*
Measure samples q in the computational basis. It returns 1 with probability
|β|² and the qubit collapsed to |1⟩, otherwise 0 and |0⟩. A basis state
always yields its own bit, so measuring a measured qubit changes nothing.
The returned qubit carries no trace of the original amplitudes.
*/
func Measure(src Source, q Qubit) (Bit, Qubit) {
	collapsed := Ground()
	bit := Bit(0)

	if q.alpha == 0 || src.Float64() < q.ProbabilityOfOne() {
		collapsed = Excited()
		bit = 1
	}

	return bit, collapsed.WithDecoherenceRate(q.decoherenceRate)
}

/*
MeasureJoint measures both qubits of j with a single draw from the joint
distribution over 00, 01, 10, 11 and derives both bits from the chosen
index. Correlations created by entangling gates therefore survive into the
classical outcome: for a Bell state the two bits always agree.
*/
func MeasureJoint(src Source, j JointState) (control, target Bit, collapsed JointState) {
	index := sampleIndex(src.Float64(), j.Probabilities())
	return Bit(index >> 1), Bit(index & 1), BasisState(index)
}

// sampleIndex walks the cumulative distribution until it passes r.
func sampleIndex(r float64, probs [4]float64) int {
	cumulative := 0.0
	last := 0
	for i, p := range probs {
		if p == 0 {
			continue
		}
		cumulative += p
		last = i
		if r < cumulative {
			return i
		}
	}
	// Rounding left the cumulative sum just under r.
	return last
}

/*
MeasureControl measures only the control qubit. The amplitudes compatible
with the outcome are kept and renormalized, the rest are dropped, so the
target is left in whatever state the correlation dictates.
*/
func MeasureControl(src Source, j JointState) (Bit, JointState) {
	return measureHalf(src, j, [2]int{Basis10, Basis11}, [2]int{Basis00, Basis01})
}

// MeasureTarget measures only the target qubit.
func MeasureTarget(src Source, j JointState) (Bit, JointState) {
	return measureHalf(src, j, [2]int{Basis01, Basis11}, [2]int{Basis00, Basis10})
}

func measureHalf(src Source, j JointState, ones, zeros [2]int) (Bit, JointState) {
	probs := j.Probabilities()
	pOne := probs[ones[0]] + probs[ones[1]]
	pZero := probs[zeros[0]] + probs[zeros[1]]

	// A branch with zero probability is never chosen, even when pOne and
	// pZero round to a sum just under one.
	keep, bit := zeros, Bit(0)
	if pZero == 0 || src.Float64() < pOne {
		keep, bit = ones, 1
	}

	kept := probs[keep[0]] + probs[keep[1]]
	scale := complex(1/math.Sqrt(kept), 0)

	var out JointState
	for _, i := range keep {
		out.amps[i] = j.amps[i] * scale
	}
	return bit, out
}

/*
MeasurePair measures both halves of a pair. Product halves are independent
and are measured one at a time; Entangled pairs go through MeasureJoint.
Either way the result is a product of basis states.
*/
func MeasurePair(src Source, p Pair) (control, target Bit, collapsed Product) {
	switch pair := p.(type) {
	case Product:
		bc, qc := Measure(src, pair.Control)
		bt, qt := Measure(src, pair.Target)
		return bc, bt, Product{Control: qc, Target: qt}
	case Entangled:
		bc, bt, _ := MeasureJoint(src, pair.State)
		return bc, bt, Product{Control: basisQubit(bc), Target: basisQubit(bt)}
	default:
		panic("qsim: unknown Pair variant")
	}
}

func basisQubit(b Bit) Qubit {
	if b == 1 {
		return Excited()
	}
	return Ground()
}
