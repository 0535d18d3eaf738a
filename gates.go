package main

import "math"

// Matrix2 is a 2×2 unitary in row-major order.
type Matrix2 [2][2]Complex

// The two matrices this algorithm family needs. Oracles and the classifier
// go through the Apply helpers below instead of hand-rolling entries.
var (
	// HadamardMatrix = (1/√2) [[1, 1], [1, -1]]
	HadamardMatrix = Matrix2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}

	// PauliXMatrix = [[0, 1], [1, 0]]
	PauliXMatrix = Matrix2{
		{0, 1},
		{1, 0},
	}
)

// Adjoint returns the conjugate transpose of the matrix.
func (m Matrix2) Adjoint() Matrix2 {
	return Matrix2{
		{conj(m[0][0]), conj(m[1][0])},
		{conj(m[0][1]), conj(m[1][1])},
	}
}

func conj(c Complex) Complex {
	return complex(real(c), -imag(c))
}

// ApplyH applies a Hadamard to qubit q, recording it on the trace.
func ApplyH(s *StateVector, q int) error {
	if err := s.ApplySingleQubitGate(q, HadamardMatrix); err != nil {
		return err
	}
	s.record("H", q, -1)
	return nil
}

// ApplyX applies a Pauli-X to qubit q, recording it on the trace.
func ApplyX(s *StateVector, q int) error {
	if err := s.ApplySingleQubitGate(q, PauliXMatrix); err != nil {
		return err
	}
	s.record("X", q, -1)
	return nil
}

// ApplyCX applies a controlled-X, recording it on the trace.
func ApplyCX(s *StateVector, control, target int) error {
	if err := s.ApplyControlledX(control, target); err != nil {
		return err
	}
	s.record("CX", target, control)
	return nil
}

// record appends a gate to the vector's trace when tracing is on.
func (s *StateVector) record(gateType string, target, control int) {
	if s.trace == nil {
		return
	}
	if control >= 0 {
		s.trace.AddGate(gateType, target, s.trace.MaxSteps, control)
	} else {
		s.trace.AddGate(gateType, target, s.trace.MaxSteps)
	}
}
