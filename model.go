package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMain focus = iota
	focusMenu
	focusSelectBit
)

// Model represents the TUI application state.
type Model struct {
	numQubits   int
	rng         *rand.Rand
	runs        []*RunResult
	selectedRun int
	qasmView    viewport.Model
	focus       focus
	width       int
	height      int
	statusMsg   string // transient status message (e.g. save confirmation)

	// Menu state
	menuItem int
	bitIndex int
}

func initialModel() Model {
	vp := viewport.New(40, 10)

	return Model{
		numQubits:   2,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		qasmView:    vp,
		focus:       focusMain,
		selectedRun: -1,
	}
}

// runOracle classifies the oracle on the current register size and records
// the result as the selected run.
func (m *Model) runOracle(oracle PhaseOracle) {
	result, err := classifyRun(m.numQubits, oracle, m.rng)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Run failed: %v", err)
		return
	}
	m.runs = append(m.runs, result)
	m.selectedRun = len(m.runs) - 1
	m.qasmView.SetContent(result.Trace.ToQASM())
	m.qasmView.GotoTop()
	m.statusMsg = result.Message()
}

// selectRun moves the run-history selection and refreshes the trace view.
func (m *Model) selectRun(idx int) {
	if idx < 0 || idx >= len(m.runs) {
		return
	}
	m.selectedRun = idx
	m.qasmView.SetContent(m.runs[idx].Trace.ToQASM())
	m.qasmView.GotoTop()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		qasmW := max(m.width-4, 20)
		qasmH := max(m.height/3-4, 4)
		m.qasmView.Width = qasmW
		m.qasmView.Height = qasmH

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMain:
			switch key {
			case "q":
				return m, tea.Quit
			case "a", "enter":
				m.focus = focusMenu
				m.menuItem = 0
			case "+", "=":
				if m.numQubits < maxQubits {
					m.numQubits++
				}
			case "-":
				if m.numQubits > 1 {
					m.numQubits--
				}
			case "up", "k":
				m.selectRun(m.selectedRun - 1)
			case "down", "j":
				m.selectRun(m.selectedRun + 1)
			case "ctrl+s":
				if m.selectedRun >= 0 {
					qasm := m.runs[m.selectedRun].Trace.ToQASM()
					if err := os.WriteFile("run.qasm", []byte(qasm), 0644); err != nil {
						m.statusMsg = fmt.Sprintf("Save error: %v", err)
					} else {
						m.statusMsg = "Saved run.qasm"
					}
				}
			default:
				var cmd tea.Cmd
				m.qasmView, cmd = m.qasmView.Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusMain
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(oracleMenu)-1 {
					m.menuItem++
				}
			case "enter":
				item := oracleMenu[m.menuItem]
				if item.needsBit {
					m.bitIndex = 0
					m.focus = focusSelectBit
					break
				}
				m.runOracle(item.build(0))
				m.focus = focusMain
			}

		case focusSelectBit:
			switch key {
			case "esc":
				m.focus = focusMenu
			case "up", "k":
				if m.bitIndex > 0 {
					m.bitIndex--
				}
			case "down", "j":
				if m.bitIndex < m.numQubits-1 {
					m.bitIndex++
				}
			case "enter":
				item := oracleMenu[m.menuItem]
				m.runOracle(item.build(m.bitIndex))
				m.focus = focusMain
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.focus == focusMenu {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderMenu())
	}
	if m.focus == focusSelectBit {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderBitSelect())
	}

	runsWidth := max(m.width/3, minPanelW)
	stateWidth := m.width - runsWidth - 4
	qasmHeight := m.height / 3
	topHeight := max(m.height-qasmHeight-controlsRows-2, 6)

	runsPanel := m.renderRunsPanel(runsWidth, topHeight)
	statePanel := m.renderStatePanel(stateWidth, topHeight)
	qasmPanel := m.renderQASMPanel(m.width-4, qasmHeight-2)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsRows-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, runsPanel, statePanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, qasmPanel, controlsPanel)
}
