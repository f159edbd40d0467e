// Command pokerjump-bench is a small terminal dashboard that deals random
// seven-card hands through the evaluator in fixed-size batches on a timer, showing a live
// evaluations/second rate and a running histogram of hand categories.
package main

import (
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/poker"
)

func main() {
	if termenv.EnvColorProfile() == termenv.Ascii {
		log.Warn("terminal reports no color support; the histogram bars will look flat")
	}

	fmt.Print("loading hand-rank tables")
	evaluator, err := poker.Default()
	if err != nil {
		log.Fatal("failed to initialize evaluator", "error", err)
	}
	fmt.Println(" done")

	deck := card.NewDeck(rand.New(rand.NewSource(1)))
	m := newModel(evaluator, deck)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("bench TUI exited with error", "error", err)
		os.Exit(1)
	}
}
