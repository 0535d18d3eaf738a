package main

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b Complex) bool {
	return cmplx.Abs(a-b) < tol
}

func TestInitialState(t *testing.T) {
	s, err := NewStateVector(3)
	if err != nil {
		t.Fatalf("NewStateVector error: %v", err)
	}
	if len(s.Amplitudes) != 8 {
		t.Fatalf("expected 8 amplitudes, got %d", len(s.Amplitudes))
	}
	if !almostEqual(s.Amplitudes[0], 1) {
		t.Errorf("amplitude[0] = %v, want 1", s.Amplitudes[0])
	}
	for i := 1; i < 8; i++ {
		if !almostEqual(s.Amplitudes[i], 0) {
			t.Errorf("amplitude[%d] = %v, want 0", i, s.Amplitudes[i])
		}
	}
	if p := s.ProbabilityOfZeroState(); math.Abs(p-1) > tol {
		t.Errorf("ProbabilityOfZeroState = %g, want 1", p)
	}
}

func TestInvalidRegisterSize(t *testing.T) {
	for _, n := range []int{0, -1, maxQubits + 1} {
		if _, err := NewStateVector(n); !errors.Is(err, ErrInvalidRegisterSize) {
			t.Errorf("NewStateVector(%d): expected ErrInvalidRegisterSize, got %v", n, err)
		}
	}
}

func TestInvalidIndex(t *testing.T) {
	s, _ := NewStateVector(2)
	if err := s.ApplySingleQubitGate(2, HadamardMatrix); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex for q[2], got %v", err)
	}
	if err := s.ApplySingleQubitGate(-1, HadamardMatrix); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex for q[-1], got %v", err)
	}
	if err := s.ApplyControlledX(0, 2); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex for CX target q[2], got %v", err)
	}
	if err := s.ApplyControlledX(1, 1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex for CX with control==target, got %v", err)
	}
}

func TestGateInverseRestoresState(t *testing.T) {
	// A couple of genuinely different unitaries: a real rotation and one
	// with imaginary off-diagonal entries.
	theta := 0.3
	rotation := Matrix2{
		{complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0)},
		{complex(math.Sin(theta), 0), complex(math.Cos(theta), 0)},
	}
	xRotation := Matrix2{
		{complex(math.Cos(theta), 0), complex(0, -math.Sin(theta))},
		{complex(0, -math.Sin(theta)), complex(math.Cos(theta), 0)},
	}

	for _, m := range []Matrix2{HadamardMatrix, PauliXMatrix, rotation, xRotation} {
		s, _ := NewStateVector(3)
		// Start from a non-trivial state.
		for q := 0; q < 3; q++ {
			if err := s.ApplySingleQubitGate(q, HadamardMatrix); err != nil {
				t.Fatalf("ApplySingleQubitGate error: %v", err)
			}
		}
		if err := s.ApplySingleQubitGate(1, rotation); err != nil {
			t.Fatalf("ApplySingleQubitGate error: %v", err)
		}

		before := s.Clone()
		for q := 0; q < 3; q++ {
			if err := s.ApplySingleQubitGate(q, m); err != nil {
				t.Fatalf("ApplySingleQubitGate error: %v", err)
			}
			if err := s.ApplySingleQubitGate(q, m.Adjoint()); err != nil {
				t.Fatalf("ApplySingleQubitGate error: %v", err)
			}
			for i := range s.Amplitudes {
				if !almostEqual(s.Amplitudes[i], before.Amplitudes[i]) {
					t.Fatalf("q[%d]: amplitude[%d] = %v after U·U†, want %v",
						q, i, s.Amplitudes[i], before.Amplitudes[i])
				}
			}
		}
	}
}

func TestControlledX(t *testing.T) {
	s, _ := NewStateVector(2)
	// |00⟩ → |10⟩ (qubit 0 set): CX(0,1) must flip the target.
	if err := s.ApplySingleQubitGate(0, PauliXMatrix); err != nil {
		t.Fatalf("ApplySingleQubitGate error: %v", err)
	}
	if err := s.ApplyControlledX(0, 1); err != nil {
		t.Fatalf("ApplyControlledX error: %v", err)
	}
	if !almostEqual(s.Amplitudes[3], 1) {
		t.Errorf("amplitude[3] = %v, want 1 (both qubits set)", s.Amplitudes[3])
	}

	// Control unset: CX must be the identity.
	s2, _ := NewStateVector(2)
	if err := s2.ApplyControlledX(0, 1); err != nil {
		t.Fatalf("ApplyControlledX error: %v", err)
	}
	if !almostEqual(s2.Amplitudes[0], 1) {
		t.Errorf("amplitude[0] = %v, want 1 (control unset)", s2.Amplitudes[0])
	}
}

func TestSampleDeterministicOutcome(t *testing.T) {
	// All probability mass on |q0=0, q1=1⟩: every randomness source must
	// yield that outcome.
	for seed := int64(0); seed < 10; seed++ {
		s, _ := NewStateVector(2)
		s.ApplySingleQubitGate(1, PauliXMatrix)

		bits, err := s.SampleMeasurement(rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("SampleMeasurement error: %v", err)
		}
		if bits[0] != 0 || bits[1] != 1 {
			t.Fatalf("seed %d: sampled bits %v, want [0 1]", seed, bits)
		}
		if !almostEqual(s.Amplitudes[2], 1) {
			t.Errorf("seed %d: collapsed amplitude[2] = %v, want 1", seed, s.Amplitudes[2])
		}
	}
}

func TestSampleCollapse(t *testing.T) {
	s, _ := NewStateVector(2)
	for q := 0; q < 2; q++ {
		s.ApplySingleQubitGate(q, HadamardMatrix)
	}

	bits, err := s.SampleMeasurement(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("SampleMeasurement error: %v", err)
	}

	// Exactly one surviving branch, renormalized, matching the returned bits.
	survivors := 0
	for i, a := range s.Amplitudes {
		if cmplx.Abs(a) < tol {
			continue
		}
		survivors++
		if math.Abs(cmplx.Abs(a)-1) > tol {
			t.Errorf("surviving amplitude[%d] has magnitude %g, want 1", i, cmplx.Abs(a))
		}
		for q := 0; q < 2; q++ {
			if bits[q] != (i>>q)&1 {
				t.Errorf("bits %v do not match surviving basis state %d", bits, i)
			}
		}
	}
	if survivors != 1 {
		t.Fatalf("expected 1 surviving branch after collapse, got %d", survivors)
	}
	if math.Abs(s.Norm()-1) > tol {
		t.Errorf("post-collapse norm = %g, want 1", s.Norm())
	}
}

func TestQubitProbabilities(t *testing.T) {
	s, _ := NewStateVector(2)
	s.ApplySingleQubitGate(0, HadamardMatrix)

	probs := s.QubitProbabilities()
	if math.Abs(probs[0].Prob1-0.5) > tol {
		t.Errorf("q[0] Prob1 = %g, want 0.5", probs[0].Prob1)
	}
	if math.Abs(probs[1].Prob1) > tol {
		t.Errorf("q[1] Prob1 = %g, want 0", probs[1].Prob1)
	}
}
