// qsim prepares a one- or two-qubit state, measures it repeatedly with a
// seeded source and prints the outcome counts.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qsim"
)

var gatesByName = map[string]qsim.Gate{
	"I":   qsim.I,
	"X":   qsim.X,
	"Y":   qsim.Y,
	"Z":   qsim.Z,
	"H":   qsim.H,
	"S":   qsim.S,
	"SDG": qsim.Sdg,
	"T":   qsim.T,
	"TDG": qsim.Tdg,
}

func main() {
	config := qsim.NewConfig()

	gates := flag.StringSlice("gates", []string{"H"}, "Gates applied in order to |0⟩, e.g. H,T,H.")
	bell := flag.Bool("bell", false, "Prepare the Bell state CNOT·(H⊗I)|00⟩ instead of a single qubit.")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "Seed for the measurement source.")
	flag.IntVar(&config.Shots, "shots", config.Shots, "Number of measurements to take.")
	flag.Float64Var(&config.DecoherenceRate, "decoherence", config.DecoherenceRate, "Decoherence rate recorded on the qubit.")
	flag.Parse()

	if err := run(os.Stdout, config, *gates, *bell); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, config *qsim.Config, names []string, bell bool) error {
	src := config.Source()
	errnie.Info("run - seed %d, shots %d", config.Seed, config.Shots)

	if bell {
		pair := qsim.Entangle(qsim.CNOT, qsim.Product{
			Control: qsim.H.Apply(qsim.Ground()),
			Target:  qsim.Ground(),
		})

		tally := qsim.SampleJoint(src, pair.Joint(), config.Shots)
		fmt.Fprintf(out, "pair: %T, correlated: %v\n", pair, tally.Correlated())
		for i, label := range []string{"00", "01", "10", "11"} {
			fmt.Fprintf(out, "%s  %d\n", label, tally.Counts[i])
		}
		return nil
	}

	gates := make([]qsim.Gate, 0, len(names))
	for _, name := range names {
		g, ok := gatesByName[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("unknown gate %q", name)
		}
		gates = append(gates, g)
	}

	q := qsim.ApplyAll(config.Prepare(qsim.Ground()), gates...)
	tally := qsim.Sample(src, q, config.Shots)

	fmt.Fprintf(out, "P(1) = %.6f, phase = %.6f, decoherence = %v\n", q.ProbabilityOfOne(), q.Phase(), q.DecoherenceRate())
	fmt.Fprintf(out, "0  %d\n1  %d\n", tally.Shots-tally.Ones, tally.Ones)
	return nil
}
