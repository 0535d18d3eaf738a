package main

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func inputRegister(n int) []int {
	input := make([]int, n)
	for q := range input {
		input[q] = q
	}
	return input
}

func TestKickbackReleasesAncilla(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for k := 0; k < n; k++ {
			s, _ := NewStateVector(n)
			for q := 0; q < n; q++ {
				s.ApplySingleQubitGate(q, HadamardMatrix)
			}

			err := ApplyMarkingOracleAsPhaseOracle(s, MarkingOracleKthBit(k), inputRegister(n))
			if err != nil {
				t.Fatalf("n=%d k=%d: conversion error: %v", n, k, err)
			}
			if s.NumQubits != n {
				t.Fatalf("n=%d k=%d: register size %d after release, want %d", n, k, s.NumQubits, n)
			}
			if len(s.Amplitudes) != 1<<n {
				t.Fatalf("n=%d k=%d: %d amplitudes after release, want %d", n, k, len(s.Amplitudes), 1<<n)
			}
			if norm := s.Norm(); math.Abs(norm-1) > tol {
				t.Errorf("n=%d k=%d: norm %g after release, want 1", n, k, norm)
			}
		}
	}
}

func TestKickbackPhase(t *testing.T) {
	// On the uniform superposition the converted oracle must flip the sign
	// of exactly the basis states whose k-th bit is set, with no leftover
	// imaginary part or magnitude change.
	const n = 3
	for k := 0; k < n; k++ {
		s, _ := NewStateVector(n)
		for q := 0; q < n; q++ {
			s.ApplySingleQubitGate(q, HadamardMatrix)
		}

		if err := ApplyMarkingOracleAsPhaseOracle(s, MarkingOracleKthBit(k), inputRegister(n)); err != nil {
			t.Fatalf("k=%d: conversion error: %v", k, err)
		}

		uniform := 1.0 / math.Sqrt(float64(int(1)<<n))
		for i, a := range s.Amplitudes {
			want := complex(uniform, 0)
			if i&(1<<k) != 0 {
				want = -want
			}
			if cmplx.Abs(a-want) > tol {
				t.Errorf("k=%d: amplitude[%d] = %v, want %v", k, i, a, want)
			}
		}
	}
}

func TestConstantZeroIsIdentity(t *testing.T) {
	s, _ := NewStateVector(2)
	for q := 0; q < 2; q++ {
		s.ApplySingleQubitGate(q, HadamardMatrix)
	}
	before := s.Clone()

	if err := PhaseOracleConstantZero().ApplyPhase(s, inputRegister(2)); err != nil {
		t.Fatalf("ApplyPhase error: %v", err)
	}
	for i := range s.Amplitudes {
		if !almostEqual(s.Amplitudes[i], before.Amplitudes[i]) {
			t.Errorf("amplitude[%d] changed: %v → %v", i, before.Amplitudes[i], s.Amplitudes[i])
		}
	}
}

func TestConstantZeroChecksIndices(t *testing.T) {
	s, _ := NewStateVector(2)
	if err := PhaseOracleConstantZero().ApplyPhase(s, []int{0, 5}); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex for q[5], got %v", err)
	}
}

func TestKthBitOutOfRange(t *testing.T) {
	s, _ := NewStateVector(2)
	err := ApplyMarkingOracleAsPhaseOracle(s, MarkingOracleKthBit(5), inputRegister(2))
	if !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex for bit 5 of 2-bit input, got %v", err)
	}
	// The ancilla must be detached even on the failure path.
	if s.NumQubits != 2 {
		t.Errorf("register size %d after failed conversion, want 2", s.NumQubits)
	}
}

func TestOracleDescriptions(t *testing.T) {
	if d := PhaseOracleConstantZero().Description(); d != "0" {
		t.Errorf("constant-zero description = %q, want \"0\"", d)
	}
	if d := MarkingOracleKthBit(1).Description(); d != "x1" {
		t.Errorf("k-th bit description = %q, want \"x1\"", d)
	}
	if d := AsPhaseOracle(MarkingOracleKthBit(3)).Description(); d != "x3" {
		t.Errorf("adapted description = %q, want \"x3\"", d)
	}
}
