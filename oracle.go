package main

import "fmt"

// PhaseOracle multiplies the amplitudes of basis states satisfying its
// predicate by -1. It touches nothing but the input qubits and leaves
// probabilities unchanged.
type PhaseOracle interface {
	// ApplyPhase transforms the state restricted to the given input qubits.
	ApplyPhase(s *StateVector, input []int) error
	// Description renders the Boolean function, e.g. "0" or "x1".
	Description() string
}

// MarkingOracle flips a supplied ancilla qubit on every basis state
// satisfying its predicate over the input qubits.
type MarkingOracle interface {
	ApplyMarking(s *StateVector, input []int, ancilla int) error
	Description() string
}

// constantZeroOracle represents f(x) = 0: the identity transform.
type constantZeroOracle struct{}

// PhaseOracleConstantZero returns the phase oracle for f(x) = 0.
func PhaseOracleConstantZero() PhaseOracle {
	return constantZeroOracle{}
}

func (constantZeroOracle) ApplyPhase(s *StateVector, input []int) error {
	for _, q := range input {
		if err := s.checkIndex(q); err != nil {
			return err
		}
	}
	return nil
}

func (constantZeroOracle) Description() string { return "0" }

// kthBitOracle represents f(x) = x_k: a single controlled-X from input
// qubit k onto the ancilla.
type kthBitOracle struct {
	k int
}

// MarkingOracleKthBit returns the marking oracle for f(x) = x_k.
func MarkingOracleKthBit(k int) MarkingOracle {
	return kthBitOracle{k: k}
}

func (o kthBitOracle) ApplyMarking(s *StateVector, input []int, ancilla int) error {
	if o.k < 0 || o.k >= len(input) {
		return fmt.Errorf("%w: bit %d of a %d-bit input", ErrInvalidIndex, o.k, len(input))
	}
	return ApplyCX(s, input[o.k], ancilla)
}

func (o kthBitOracle) Description() string { return fmt.Sprintf("x%d", o.k) }

// ApplyMarkingOracleAsPhaseOracle converts a bit-flip oracle into a phase
// oracle via phase kickback: a scoped ancilla is prepared in |−⟩ (X then H),
// handed to the marking oracle as its target, then uncomputed (H then X) and
// released. Basis states satisfying the predicate pick up a -1 phase and the
// ancilla factors out in |0⟩. The ancilla is detached on every exit path;
// detachQubit reports ErrAncillaNotReleased if it failed to factor out.
func ApplyMarkingOracleAsPhaseOracle(s *StateVector, oracle MarkingOracle, input []int) (err error) {
	ancilla := s.attachQubit()
	defer func() {
		if derr := s.detachQubit(); derr != nil && err == nil {
			err = derr
		}
	}()

	if err = ApplyX(s, ancilla); err != nil {
		return err
	}
	if err = ApplyH(s, ancilla); err != nil {
		return err
	}
	if err = oracle.ApplyMarking(s, input, ancilla); err != nil {
		return err
	}
	if err = ApplyH(s, ancilla); err != nil {
		return err
	}
	return ApplyX(s, ancilla)
}

// markingAsPhase adapts a MarkingOracle to the PhaseOracle capability by
// routing every application through the kickback conversion.
type markingAsPhase struct {
	m MarkingOracle
}

// AsPhaseOracle wraps a marking oracle so the classifier can apply it as a
// phase oracle.
func AsPhaseOracle(m MarkingOracle) PhaseOracle {
	return markingAsPhase{m: m}
}

func (o markingAsPhase) ApplyPhase(s *StateVector, input []int) error {
	return ApplyMarkingOracleAsPhaseOracle(s, o.m, input)
}

func (o markingAsPhase) Description() string { return o.m.Description() }
