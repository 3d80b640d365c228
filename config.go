package qsim

// DefaultDecoherenceRate is the bookkeeping rate stamped on new qubits.
const DefaultDecoherenceRate = 0.01

// Config holds the run settings for sampling: seed, shot count and the
// decoherence rate recorded on prepared qubits.
type Config struct {
	Seed            uint64
	Shots           int
	DecoherenceRate float64
}

// NewConfig returns a Config with default settings.
func NewConfig() *Config {
	return &Config{
		Seed:            42,
		Shots:           1000,
		DecoherenceRate: DefaultDecoherenceRate,
	}
}

// Source returns a generator seeded from the config, so runs are repeatable.
func (c *Config) Source() Source {
	return NewSource(c.Seed)
}

// Prepare stamps q with the configured decoherence rate.
func (c *Config) Prepare(q Qubit) Qubit {
	return q.WithDecoherenceRate(c.DecoherenceRate)
}
