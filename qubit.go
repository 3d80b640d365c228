package qsim

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance bounds every normalization, unitarity and equality check.
const Tolerance = 1e-9

/*
Qubit is a two-level state held as a normalized amplitude pair (α, β) over
the |0⟩, |1⟩ basis, so that |α|² + |β|² = 1.

Qubits are values. Gates return a new Qubit and measurement returns a new,
collapsed Qubit; nothing changes a Qubit in place. Two qubits are the same
physical state when they differ only by a global phase, see Equal.
*/
type Qubit struct {
	alpha           complex128 // |0⟩ amplitude
	beta            complex128 // |1⟩ amplitude
	decoherenceRate float64
}

func newQubit(alpha, beta complex128) Qubit {
	return Qubit{
		alpha:           alpha,
		beta:            beta,
		decoherenceRate: DefaultDecoherenceRate,
	}
}

// Ground returns |0⟩.
func Ground() Qubit {
	return newQubit(1, 0)
}

// Excited returns |1⟩.
func Excited() Qubit {
	return newQubit(0, 1)
}

// Plus returns |+⟩ = (|0⟩ + |1⟩)/√2.
func Plus() Qubit {
	return newQubit(complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0))
}

// Minus returns |−⟩ = (|0⟩ − |1⟩)/√2.
func Minus() Qubit {
	return newQubit(complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0))
}

/*
NewQubit builds a qubit from raw amplitudes. The amplitudes are taken as
given, not rescaled: a pair whose squared norm is off by more than
Tolerance is rejected with a NotNormalizedError.
*/
func NewQubit(alpha, beta complex128) (Qubit, error) {
	if err := checkNormalized(alpha, beta); err != nil {
		return Qubit{}, err
	}

	return newQubit(alpha, beta), nil
}

func checkNormalized(amps ...complex128) error {
	norm := squaredNorm(amps)
	if !scalar.EqualWithinAbs(norm, 1, Tolerance) {
		return &NotNormalizedError{Norm: norm}
	}
	return nil
}

func squaredNorm(amps []complex128) float64 {
	n := cmplxs.Norm(amps, 2)
	return n * n
}

func probability(amp complex128) float64 {
	return real(amp)*real(amp) + imag(amp)*imag(amp)
}

// Amplitudes returns (α, β).
func (q Qubit) Amplitudes() (alpha, beta complex128) {
	return q.alpha, q.beta
}

// ProbabilityOfOne returns |β|², the chance a measurement yields 1.
func (q Qubit) ProbabilityOfOne() float64 {
	return probability(q.beta)
}

// ProbabilityOfZero returns |α|².
func (q Qubit) ProbabilityOfZero() float64 {
	return probability(q.alpha)
}

// IsSuperposed reports whether both outcomes have non-negligible probability.
func (q Qubit) IsSuperposed() bool {
	return q.ProbabilityOfZero() > Tolerance && q.ProbabilityOfOne() > Tolerance
}

/*
Phase returns the relative phase arg(β) − arg(α), wrapped into (−π, π].
It is zero for basis states, where the relative phase carries no meaning.
*/
func (q Qubit) Phase() float64 {
	if !q.IsSuperposed() {
		return 0
	}

	phase := cmplx.Phase(q.beta) - cmplx.Phase(q.alpha)
	for phase <= -math.Pi {
		phase += 2 * math.Pi
	}
	for phase > math.Pi {
		phase -= 2 * math.Pi
	}
	return phase
}

// DecoherenceRate is bookkeeping only; it never alters the amplitudes.
func (q Qubit) DecoherenceRate() float64 {
	return q.decoherenceRate
}

// WithDecoherenceRate returns a copy of q carrying the given rate.
func (q Qubit) WithDecoherenceRate(rate float64) Qubit {
	q.decoherenceRate = rate
	return q
}

/*
Equal reports whether q and other describe the same physical state, i.e.
other = e^{iγ}·q for some real γ, so |ψ⟩ and −|ψ⟩ are equal. For
normalized vectors that holds exactly when |⟨q|other⟩| = 1.
*/
func (q Qubit) Equal(other Qubit) bool {
	return equalUpToPhase(
		[]complex128{q.alpha, q.beta},
		[]complex128{other.alpha, other.beta},
	)
}

func equalUpToPhase(a, b []complex128) bool {
	overlap := cmplx.Abs(cmplxs.Dot(a, b))
	return overlap >= 1-Tolerance
}
