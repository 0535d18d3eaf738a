package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

type Complex = complex128

// Error taxonomy. Every one of these is a precondition violation at the
// call site, never a recoverable runtime condition.
var (
	ErrInvalidRegisterSize = errors.New("invalid register size")
	ErrInvalidIndex        = errors.New("qubit index out of range")
	ErrAncillaNotReleased  = errors.New("ancilla not returned to |0⟩ before release")
)

// maxQubits caps register allocation. 2^24 complex128 amplitudes is already
// 256 MB, well past anything a terminal run should attempt.
const maxQubits = 24

// releaseTolerance bounds the residual |1⟩ probability allowed on a qubit
// being detached from the state.
const releaseTolerance = 1e-9

// StateVector holds the joint state of NumQubits qubits as 2^NumQubits
// amplitudes. Qubit q corresponds to bit 1<<q of the basis index.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int

	// trace, when set, records every named gate applied to this vector.
	trace *Circuit
}

// NewStateVector allocates an n-qubit register in the |0...0⟩ state.
func NewStateVector(n int) (*StateVector, error) {
	if n <= 0 || n > maxQubits {
		return nil, fmt.Errorf("%w: %d qubits", ErrInvalidRegisterSize, n)
	}
	amps := make([]Complex, 1<<n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: n}, nil
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

func (s *StateVector) checkIndex(q int) error {
	if q < 0 || q >= s.NumQubits {
		return fmt.Errorf("%w: q[%d] in %d-qubit register", ErrInvalidIndex, q, s.NumQubits)
	}
	return nil
}

// ApplySingleQubitGate applies an arbitrary 2×2 unitary to qubit q by
// walking every pair of basis indices that differ only in bit q.
func (s *StateVector) ApplySingleQubitGate(q int, m Matrix2) error {
	if err := s.checkIndex(q); err != nil {
		return err
	}
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = m[0][0]*s.Amplitudes[i] + m[0][1]*s.Amplitudes[j]
			newAmps[j] = m[1][0]*s.Amplitudes[i] + m[1][1]*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
	return nil
}

// ApplyControlledX flips the target bit on every basis state whose control
// bit is 1.
func (s *StateVector) ApplyControlledX(control, target int) error {
	if err := s.checkIndex(control); err != nil {
		return err
	}
	if err := s.checkIndex(target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("%w: control and target are both q[%d]", ErrInvalidIndex, target)
	}
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return nil
}

// ProbabilityOfZeroState returns |amplitude[0]|².
func (s *StateVector) ProbabilityOfZeroState() float64 {
	a := s.Amplitudes[0]
	return real(a * cmplx.Conj(a))
}

// SampleMeasurement draws one basis state from the |amplitude|² distribution,
// collapses the vector onto it, and returns its classical bits (bits[q] is
// the value of qubit q). When all probability mass sits on a single basis
// state the draw is that state no matter what the randomness source yields.
func (s *StateVector) SampleMeasurement(rng *rand.Rand) ([]int, error) {
	n := len(s.Amplitudes)
	r := rng.Float64()

	picked := -1
	cum := 0.0
	for i := 0; i < n; i++ {
		a := s.Amplitudes[i]
		p := real(a * cmplx.Conj(a))
		if p <= 0 {
			continue
		}
		picked = i
		cum += p
		if r < cum {
			break
		}
	}
	// Rounding can leave cum fractionally below 1; picked already holds the
	// last basis state with nonzero probability, which is the correct
	// leftover branch.
	if picked < 0 {
		return nil, fmt.Errorf("%w: state vector carries no probability mass", ErrInvalidRegisterSize)
	}

	// Collapse: zero every other branch, renormalize the survivor while
	// preserving its phase.
	a := s.Amplitudes[picked]
	norm := cmplx.Abs(a)
	for i := range s.Amplitudes {
		s.Amplitudes[i] = 0
	}
	s.Amplitudes[picked] = a / complex(norm, 0)

	bits := make([]int, s.NumQubits)
	for q := 0; q < s.NumQubits; q++ {
		bits[q] = (picked >> q) & 1
	}
	return bits, nil
}

// attachQubit tensors a fresh |0⟩ qubit onto the state and returns its
// index. The new qubit becomes the highest basis bit, so existing amplitudes
// keep their indices.
func (s *StateVector) attachQubit() int {
	newAmps := make([]Complex, len(s.Amplitudes)*2)
	copy(newAmps, s.Amplitudes)
	s.Amplitudes = newAmps
	s.NumQubits++
	return s.NumQubits - 1
}

// detachQubit removes the highest qubit from the state. The qubit must have
// factored out into |0⟩; residual amplitude on its |1⟩ branch means the
// caller failed to uncompute it. The qubit is removed even then, so the
// register size is restored on every path.
func (s *StateVector) detachQubit() error {
	half := len(s.Amplitudes) / 2
	residual := 0.0
	for i := half; i < len(s.Amplitudes); i++ {
		a := s.Amplitudes[i]
		residual += real(a * cmplx.Conj(a))
	}
	s.Amplitudes = s.Amplitudes[:half]
	s.NumQubits--
	if residual > releaseTolerance {
		return fmt.Errorf("%w: |1⟩ probability %g", ErrAncillaNotReleased, residual)
	}
	return nil
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal |0⟩/|1⟩ probability of every qubit.
func (s *StateVector) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, a := range s.Amplitudes {
		p := real(a * cmplx.Conj(a))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// BasisAmplitude is one nonzero entry of the state vector.
type BasisAmplitude struct {
	BasisState int
	Amplitude  Complex
	Prob       float64
}

// NonzeroAmplitudes lists the basis states carrying measurable probability,
// in basis order.
func (s *StateVector) NonzeroAmplitudes() []BasisAmplitude {
	states := make([]BasisAmplitude, 0, 4)
	for i, a := range s.Amplitudes {
		p := real(a * cmplx.Conj(a))
		if p > 1e-10 {
			states = append(states, BasisAmplitude{BasisState: i, Amplitude: a, Prob: p})
		}
	}
	return states
}

// Norm returns the Euclidean norm of the vector, 1.0 for a well-formed state.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, a := range s.Amplitudes {
		total += real(a * cmplx.Conj(a))
	}
	return math.Sqrt(total)
}
