package qsim

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tally counts outcomes over repeated measurements of one prepared state.
type Tally struct {
	Shots int
	Ones  int
}

/*
Sample measures shots fresh copies of q. Each shot starts from the same
pre-measurement state; the collapsed qubit of one shot is never fed into
the next.
*/
func Sample(src Source, q Qubit, shots int) Tally {
	tally := Tally{Shots: shots}
	for i := 0; i < shots; i++ {
		if bit, _ := Measure(src, q); bit == 1 {
			tally.Ones++
		}
	}
	return tally
}

func (t Tally) Frequency() float64 {
	if t.Shots == 0 {
		return 0
	}
	return float64(t.Ones) / float64(t.Shots)
}

/*
Within reports whether the number of ones lies inside mean ± sigmas·stddev
of a Binomial(Shots, p) distribution.
*/
func (t Tally) Within(p float64, sigmas float64) bool {
	return withinBinomial(t.Ones, t.Shots, p, sigmas)
}

func withinBinomial(count, shots int, p, sigmas float64) bool {
	if shots == 0 {
		return count == 0
	}

	dist := distuv.Binomial{N: float64(shots), P: p}
	return math.Abs(float64(count)-dist.Mean()) <= sigmas*dist.StdDev()
}

// JointTally counts joint outcomes indexed 00, 01, 10, 11.
type JointTally struct {
	Shots  int
	Counts [4]int
}

// SampleJoint measures shots fresh copies of j with MeasureJoint.
func SampleJoint(src Source, j JointState, shots int) JointTally {
	tally := JointTally{Shots: shots}
	for i := 0; i < shots; i++ {
		control, target, _ := MeasureJoint(src, j)
		tally.Counts[int(control)<<1|int(target)]++
	}
	return tally
}

// Correlated reports whether the two bits agreed on every shot.
func (t JointTally) Correlated() bool {
	return t.Counts[Basis01] == 0 && t.Counts[Basis10] == 0
}

// AntiCorrelated reports whether the two bits differed on every shot.
func (t JointTally) AntiCorrelated() bool {
	return t.Counts[Basis00] == 0 && t.Counts[Basis11] == 0
}

// Within checks one outcome count against its expected probability.
func (t JointTally) Within(index int, p float64, sigmas float64) bool {
	return withinBinomial(t.Counts[index], t.Shots, p, sigmas)
}
