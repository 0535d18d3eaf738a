package main

import (
	"fmt"
	"strings"
)

// menuItem is one oracle choice in the run menu.
type menuItem struct {
	name     string
	symbol   string
	needsBit bool
	build    func(k int) PhaseOracle
}

// oracleMenu defines the oracle families the explorer can classify.
var oracleMenu = []menuItem{
	{
		name:   "Constant  f(x) = 0",
		symbol: "I",
		build: func(int) PhaseOracle {
			return PhaseOracleConstantZero()
		},
	},
	{
		name:     "Balanced  f(x) = xk",
		symbol:   "●─⊕",
		needsBit: true,
		build: func(k int) PhaseOracle {
			return AsPhaseOracle(MarkingOracleKthBit(k))
		},
	},
}

// renderMenu renders the oracle picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Classify Oracle"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 34)))
	sb.WriteString("\n")

	for i, item := range oracleMenu {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-22s", item.name)))
			sb.WriteString(amplitudeStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-22s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.needsBit {
			sb.WriteString(dimStyle.Render(" →bit"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}

// renderBitSelect renders the popup that picks which input bit the balanced
// oracle tests.
func (m Model) renderBitSelect() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Select Input Bit"))
	sb.WriteString("\n\n")
	for k := 0; k < m.numQubits; k++ {
		label := fmt.Sprintf("f(x) = x%d", k)
		if k == m.bitIndex {
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf(" ▸ %s", label)))
		} else {
			sb.WriteString(fmt.Sprintf("   %s", label))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Run  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
