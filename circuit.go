package main

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Pre-compiled regexps for the QASM dialect this program emits: unparameterized
// single-qubit gates, cx, measure, and barrier.
var (
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex    = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*(\w+)\[(\d+)\];?$`)
	qregRegex       = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
	barrierRegex    = regexp.MustCompile(`^barrier\s+`)
)

// Gate is one recorded operation of a classifier run.
type Gate struct {
	Type    string // "H", "X", "CX", "MEASURE", "BARRIER"
	Target  int
	Control int // -1 if not a controlled gate
	Step    int // position in the run's timeline
}

// Circuit is the gate trace of one run: the program form an external
// quantum backend consumes. NumQubits counts the input register; gates may
// reference one index past it (the kickback ancilla).
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
}

// AddGate appends a gate to the trace.
func (c *Circuit) AddGate(gateType string, target, step int, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, Gate{
		Type:    gateType,
		Target:  target,
		Control: ctrl,
		Step:    step,
	})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddBarrier appends a barrier spanning all qubits at the given step.
func (c *Circuit) AddBarrier(step int) {
	c.AddGate("BARRIER", -1, step)
}

// maxQubitIndex returns the highest qubit index any gate references.
func (c *Circuit) maxQubitIndex() int {
	maxQ := -1
	for _, g := range c.Gates {
		maxQ = max(maxQ, g.Target, g.Control)
	}
	return maxQ
}

// NumCbits returns the classical bit count needed for the measurements in
// the trace, 0 when none exist.
func (c *Circuit) NumCbits() int {
	maxMeasured := -1
	for _, g := range c.Gates {
		if g.Type == "MEASURE" {
			maxMeasured = max(maxMeasured, g.Target)
		}
	}
	return maxMeasured + 1
}

// ToQASM generates OpenQASM 2.0 output from the trace.
func (c *Circuit) ToQASM() string {
	numQubits := max(c.maxQubitIndex()+1, c.NumQubits, 1)
	numCbits := max(c.NumCbits(), 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", numCbits)

	for step := 0; step < c.MaxSteps; step++ {
		for _, gate := range c.Gates {
			if gate.Step != step {
				continue
			}
			switch {
			case gate.Type == "BARRIER":
				qubits := make([]string, numQubits)
				for q := 0; q < numQubits; q++ {
					qubits[q] = fmt.Sprintf("q[%d]", q)
				}
				fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(qubits, ", "))
			case gate.Type == "MEASURE":
				fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", gate.Target, gate.Target)
			case gate.Control >= 0:
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", gate.Control, gate.Target)
			default:
				fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(gate.Type), gate.Target)
			}
		}
	}

	return sb.String()
}

// ParseQASM parses QASM text in this program's dialect and rebuilds the
// trace from it.
func (c *Circuit) ParseQASM(qasm string) error {
	c.Gates = nil
	c.MaxSteps = 0
	step := 0

	for _, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); len(matches) > 2 {
				n, _ := strconv.Atoi(matches[2])
				c.NumQubits = n
			}
			continue
		}
		if strings.HasPrefix(line, "creg") {
			continue
		}
		if barrierRegex.MatchString(line) {
			c.AddBarrier(step)
			step++
			continue
		}

		if matches := measureRegex.FindStringSubmatch(line); matches != nil {
			target, _ := strconv.Atoi(matches[1])
			c.AddGate("MEASURE", target, step)
			step++
			continue
		}

		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			control, _ := strconv.Atoi(matches[2])
			target, _ := strconv.Atoi(matches[3])
			if gateType != "CX" {
				return fmt.Errorf("unsupported two-qubit gate %q", matches[1])
			}
			c.AddGate("CX", target, step, control)
			step++
			continue
		}

		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			target, _ := strconv.Atoi(matches[2])
			if gateType != "H" && gateType != "X" {
				return fmt.Errorf("unsupported gate %q", matches[1])
			}
			c.AddGate(gateType, target, step)
			step++
			continue
		}

		return fmt.Errorf("unparseable line %q", line)
	}

	return nil
}

// Simulate replays the trace on a fresh state vector and returns the final
// state. Measurements and barriers are skipped; the register is sized to
// cover every referenced qubit, ancilla included.
func (c *Circuit) Simulate() (*StateVector, error) {
	n := max(c.maxQubitIndex()+1, c.NumQubits, 1)
	state, err := NewStateVector(n)
	if err != nil {
		return nil, err
	}

	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	sort.SliceStable(gates, func(i, j int) bool {
		return gates[i].Step < gates[j].Step
	})

	for _, gate := range gates {
		switch gate.Type {
		case "BARRIER", "MEASURE":
			continue
		case "H":
			err = state.ApplySingleQubitGate(gate.Target, HadamardMatrix)
		case "X":
			err = state.ApplySingleQubitGate(gate.Target, PauliXMatrix)
		case "CX":
			err = state.ApplyControlledX(gate.Control, gate.Target)
		default:
			err = fmt.Errorf("unsupported gate %q in trace", gate.Type)
		}
		if err != nil {
			return nil, err
		}
	}

	return state, nil
}
