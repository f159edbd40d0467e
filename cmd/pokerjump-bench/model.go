package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/poker"
)

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	statStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 2)

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

// tickMsg drives the periodic re-render and batch of evaluations.
type tickMsg time.Time

const (
	batchSize    = 20000
	tickInterval = 200 * time.Millisecond
)

// model deals random 7-card hands through the evaluator in batches and
// tracks a rolling evaluations/second rate plus a per-category histogram.
type model struct {
	evaluator *poker.Evaluator
	deck      *card.Deck

	total     uint64
	histogram [10]uint64 // indexed by poker.Category, 0 unused
	lastTick  time.Time
	rate      float64
	width     int
	height    int
	quitting  bool

	help help.Model
}

func newModel(e *poker.Evaluator, deck *card.Deck) *model {
	return &model{
		evaluator: e,
		deck:      deck,
		lastTick:  time.Time{},
		help:      help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		now := time.Time(msg)
		m.runBatch()
		if !m.lastTick.IsZero() {
			elapsed := now.Sub(m.lastTick).Seconds()
			if elapsed > 0 {
				m.rate = float64(batchSize) / elapsed
			}
		}
		m.lastTick = now
		return m, tick()
	}
	return m, nil
}

func (m *model) runBatch() {
	for i := 0; i < batchSize; i++ {
		if m.deck.CardsRemaining() < 7 {
			m.deck.Shuffle()
		}
		hand := m.deck.Deal(7)
		var seven [7]card.Card
		copy(seven[:], hand)
		r := m.evaluator.Evaluate7(seven)
		m.histogram[r.Category()]++
		m.total++
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" pokerjump-bench "))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("hands evaluated: %d\nrate: %.0f/sec", m.total, m.rate)
	b.WriteString(statStyle.Render(stats))
	b.WriteString("\n\n")
	b.WriteString(m.renderHistogram())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderHistogram() string {
	var maxCount uint64
	for c := poker.HighCard; c <= poker.StraightFlush; c++ {
		if m.histogram[c] > maxCount {
			maxCount = m.histogram[c]
		}
	}
	if maxCount == 0 {
		return ""
	}

	const maxBarWidth = 40
	var b strings.Builder
	for c := poker.HighCard; c <= poker.StraightFlush; c++ {
		count := m.histogram[c]
		width := int(float64(count) / float64(maxCount) * maxBarWidth)
		bar := barStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%-16s %s %d\n", c.String(), bar, count)
	}
	return b.String()
}
