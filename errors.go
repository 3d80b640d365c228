package qsim

import "fmt"

/*
NotNormalizedError is returned when a state is constructed from amplitudes
whose squared magnitudes do not sum to one within Tolerance.
*/
type NotNormalizedError struct {
	Norm float64 // sum of squared magnitudes that was observed
}

func (e *NotNormalizedError) Error() string {
	return fmt.Sprintf("amplitudes not normalized: squared norm %v", e.Norm)
}

/*
EntangledStateError is returned when a joint state cannot be factored into
two independent qubits. Determinant is the 2x2 minor a00·a11 − a01·a10,
which is zero for every product state.
*/
type EntangledStateError struct {
	Determinant complex128
}

func (e *EntangledStateError) Error() string {
	return fmt.Sprintf("joint state is entangled: minor determinant %v", e.Determinant)
}

// NonUnitaryGateError is returned when a gate matrix fails M·M† = I.
type NonUnitaryGateError struct {
	Gate   string
	Reason string
}

func (e *NonUnitaryGateError) Error() string {
	return fmt.Sprintf("gate %s is not unitary: %s", e.Gate, e.Reason)
}
