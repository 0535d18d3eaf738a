package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	interactive := flag.Bool("i", false, "open the interactive explorer")
	flag.Parse()

	if !*interactive {
		fmt.Println(RunDeutschJozsaAlgorithm())
		return
	}

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
