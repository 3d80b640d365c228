package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given a product joint state", t, func() {
		pair := Classify(Tensor(Plus(), Excited()))

		Convey("It should be classified as Product", func() {
			product, ok := pair.(Product)
			So(ok, ShouldBeTrue)
			So(product.Control.Equal(Plus()), ShouldBeTrue)
			So(product.Target.Equal(Excited()), ShouldBeTrue)
		})
	})

	Convey("Given a Bell state", t, func() {
		pair := Classify(bell())

		Convey("It should be classified as Entangled", func() {
			entangled, ok := pair.(Entangled)
			So(ok, ShouldBeTrue)
			So(entangled.Joint().Equal(bell()), ShouldBeTrue)
		})
	})
}

func TestEntangle(t *testing.T) {
	Convey("Given a product pair with a superposed control", t, func() {
		start := Product{Control: H.Apply(Ground()), Target: Ground()}

		Convey("CNOT should produce an Entangled pair", func() {
			pair := Entangle(CNOT, start)
			So(pair, ShouldHaveSameTypeAs, Entangled{})

			Convey("And measuring it should give equal bits every time", func() {
				src := NewSource(31)
				for i := 0; i < 500; i++ {
					control, target, collapsed := MeasurePair(src, pair)
					So(control, ShouldEqual, target)
					So(collapsed.Control.Equal(basisQubit(control)), ShouldBeTrue)
					So(collapsed.Target.Equal(basisQubit(target)), ShouldBeTrue)
				}
			})
		})

		Convey("CNOT with a basis control should stay a Product", func() {
			pair := Entangle(CNOT, Product{Control: Excited(), Target: Plus()})
			So(pair, ShouldHaveSameTypeAs, Product{})
		})
	})

	Convey("Given a Product pair", t, func() {
		pair := Product{Control: Excited(), Target: Ground()}

		Convey("MeasurePair should measure each half", func() {
			control, target, collapsed := MeasurePair(NewSource(1), pair)
			So(control, ShouldEqual, Bit(1))
			So(target, ShouldEqual, Bit(0))
			So(collapsed.Joint().Equal(BasisState(Basis10)), ShouldBeTrue)
		})
	})
}
