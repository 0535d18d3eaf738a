package main

import (
	"fmt"
	"math"
	"strings"
)

// ──────────────────────────── Formatting helpers ────────────────────────────

// formatAmplitude renders a complex amplitude as "a+bi" with three decimals.
func formatAmplitude(a Complex) string {
	return fmt.Sprintf("%+.3f%+.3fi", real(a), imag(a))
}

// basisLabel renders a basis index as a ket, qubit 0 leftmost.
func basisLabel(basis, numQubits int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for q := 0; q < numQubits; q++ {
		sb.WriteByte(byte('0' + (basis>>q)&1))
	}
	sb.WriteString("⟩")
	return sb.String()
}

// probBar renders a probability in [0,1] as a filled bar of the given width.
func probBar(p float64, width int) string {
	filled := int(math.Round(p * float64(width)))
	filled = min(max(filled, 0), width)
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

func verdictStyled(v Verdict) string {
	if v == VerdictConstant {
		return verdictConstantStyle.Render(v.String())
	}
	return verdictBalancedStyle.Render(v.String())
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderRunsPanel renders the run-history panel.
func (m Model) renderRunsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Runs"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Register: %s\n\n", qubitLabelStyle.Render(fmt.Sprintf("%d qubits", m.numQubits)))

	if len(m.runs) == 0 {
		sb.WriteString(dimStyle.Render("No runs yet. Press a to classify\nan oracle."))
	}

	for i, r := range m.runs {
		line := fmt.Sprintf("f(x) = %-4s n=%d  %s", r.Description, r.NumQubits, verdictStyled(r.Verdict))
		if i == m.selectedRun {
			sb.WriteString(menuSelectedStyle.Render("▸ "))
			sb.WriteString(line)
		} else {
			sb.WriteString("  ")
			sb.WriteString(dimStyle.Render(fmt.Sprintf("f(x) = %-4s n=%d  ", r.Description, r.NumQubits)))
			sb.WriteString(verdictStyled(r.Verdict))
		}
		sb.WriteString("\n")
	}

	return runsStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders the pre-measurement state of the selected run:
// per-qubit marginals and the nonzero basis amplitudes.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Final State"))
	sb.WriteString("\n\n")

	if m.selectedRun < 0 || m.selectedRun >= len(m.runs) {
		sb.WriteString(dimStyle.Render("Run an oracle to inspect its\npre-measurement state."))
		return stateStyle.Width(width).Height(height).Render(sb.String())
	}

	r := m.runs[m.selectedRun]
	fmt.Fprintf(&sb, "%s\n\n", r.Message())

	for q, p := range r.Probabilities {
		label := qubitLabelStyle.Render(fmt.Sprintf("q[%d]", q))
		fmt.Fprintf(&sb, "%s  P(1)=%5.1f%%  %s\n", label, p.Prob1*100, probBar(p.Prob1, barWidth))
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Amplitudes"))
	sb.WriteString("\n")
	for _, a := range r.Amplitudes {
		fmt.Fprintf(&sb, "%s  %s  %5.1f%%\n",
			basisLabel(a.BasisState, r.NumQubits),
			amplitudeStyle.Render(formatAmplitude(a.Amplitude)),
			a.Prob*100)
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the recorded trace of the selected run.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Trace (OpenQASM 2.0)"))
	sb.WriteString("\n\n")
	if m.selectedRun < 0 {
		sb.WriteString(dimStyle.Render("No trace recorded."))
	} else {
		sb.WriteString(m.qasmView.View())
	}

	return qasmStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeStyle.Render("Classify: "))
	sb.WriteString("a Choose oracle  +/- Register size\n")
	sb.WriteString(activeStyle.Render("Browse:   "))
	sb.WriteString("↑↓/jk Select run  ^S Save trace  q/^C Quit")
	if m.statusMsg != "" {
		sb.WriteString("   │  ")
		sb.WriteString(activeStyle.Render(m.statusMsg))
	}

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
