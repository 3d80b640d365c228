package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"
)

var allGates = []Gate{I, X, Y, Z, H, S, Sdg, T, Tdg, RX(0.3), RY(1.1), RZ(-2.4), Phase(0.7)}

func normOf(q Qubit) float64 {
	return q.ProbabilityOfZero() + q.ProbabilityOfOne()
}

func TestGateApply(t *testing.T) {
	Convey("Given the built-in gates", t, func() {
		Convey("X should flip the basis states", func() {
			So(X.Apply(Ground()).Equal(Excited()), ShouldBeTrue)
			So(X.Apply(Excited()).Equal(Ground()), ShouldBeTrue)
		})

		Convey("Z should flip the phase of |1⟩ only", func() {
			So(Z.Apply(Ground()).Equal(Ground()), ShouldBeTrue)
			So(Z.Apply(Plus()).Equal(Minus()), ShouldBeTrue)
		})

		Convey("Y should flip bit and phase", func() {
			alpha, beta := Y.Apply(Ground()).Amplitudes()
			So(alpha, ShouldEqual, complex128(0))
			So(beta, ShouldEqual, complex128(1i))
		})

		Convey("H should create an equal superposition from |0⟩", func() {
			q := H.Apply(Ground())
			So(q.ProbabilityOfOne(), ShouldAlmostEqual, 0.5, Tolerance)
			So(q.Equal(Plus()), ShouldBeTrue)
			So(H.Apply(Excited()).Equal(Minus()), ShouldBeTrue)
		})

		Convey("S twice should equal Z, T twice should equal S", func() {
			So(ApplyAll(Plus(), S, S).Equal(Z.Apply(Plus())), ShouldBeTrue)
			So(ApplyAll(Plus(), T, T).Equal(S.Apply(Plus())), ShouldBeTrue)
		})

		Convey("T should rotate the relative phase by π/4", func() {
			So(T.Apply(Plus()).Phase(), ShouldAlmostEqual, math.Pi/4, Tolerance)
		})

		Convey("Phase should reproduce S and T", func() {
			So(Phase(math.Pi/2).Apply(Plus()).Equal(S.Apply(Plus())), ShouldBeTrue)
			So(Phase(math.Pi/4).Apply(Plus()).Equal(T.Apply(Plus())), ShouldBeTrue)
		})

		Convey("RX(π) should act as X up to global phase", func() {
			So(RX(math.Pi).Apply(Ground()).Equal(Excited()), ShouldBeTrue)
		})

		Convey("RY(π/2) should take |0⟩ to |+⟩", func() {
			So(RY(math.Pi/2).Apply(Ground()).Equal(Plus()), ShouldBeTrue)
		})

		Convey("Apply should leave the input untouched", func() {
			q := Plus()
			_ = X.Apply(q)
			So(q.Equal(Plus()), ShouldBeTrue)
		})
	})
}

func TestGateInvolution(t *testing.T) {
	Convey("Given self-inverse gates", t, func() {
		start := RY(0.9).Apply(Ground())

		for _, g := range []Gate{X, Y, Z, H} {
			So(ApplyAll(start, g, g).Equal(start), ShouldBeTrue)
		}

		Convey("Every gate followed by its adjoint should be the identity", func() {
			for _, g := range allGates {
				So(ApplyAll(start, g, g.Adjoint()).Equal(start), ShouldBeTrue)
			}
		})
	})
}

func TestNormalizationPreserved(t *testing.T) {
	Convey("Given long gate sequences", t, func() {
		q := Ground()
		for i := 0; i < 500; i++ {
			q = allGates[(i*7)%len(allGates)].Apply(q)
			So(normOf(q), ShouldAlmostEqual, 1, Tolerance)
		}
	})
}

func TestGateComposition(t *testing.T) {
	Convey("Given composed gates", t, func() {
		Convey("H then Z then H should act as X", func() {
			hzh := H.Then(Z).Then(H)
			So(hzh.Apply(Ground()).Equal(Excited()), ShouldBeTrue)
			So(hzh.Name(), ShouldEqual, "H·Z·H")
		})

		Convey("Matrix should return a copy", func() {
			m := X.Matrix()
			m.Set(0, 0, 5)
			So(X.Matrix().At(0, 0), ShouldEqual, complex128(0))
		})
	})
}

func TestNewGate(t *testing.T) {
	Convey("Given a custom gate matrix", t, func() {
		Convey("When it is unitary", func() {
			g, err := NewGate("iX", []complex128{0, 1i, 1i, 0})
			So(err, ShouldBeNil)
			So(g.Apply(Ground()).Equal(Excited()), ShouldBeTrue)
			So(mat.CEqual(g.Matrix(), mat.NewCDense(2, 2, []complex128{0, 1i, 1i, 0})), ShouldBeTrue)
		})

		Convey("When it is not unitary", func() {
			_, err := NewGate("half", []complex128{0.5, 0, 0, 0.5})

			var nonUnitary *NonUnitaryGateError
			So(errors.As(err, &nonUnitary), ShouldBeTrue)
			So(nonUnitary.Gate, ShouldEqual, "half")
		})

		Convey("When it has the wrong shape", func() {
			_, err := NewGate("short", []complex128{1, 0, 0})
			So(err, ShouldHaveSameTypeAs, &NonUnitaryGateError{})
		})
	})
}
