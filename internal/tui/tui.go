// Package tui implements the interactive step-by-step analyzer: enter hero
// hole cards, deal random opponents, then add board cards street by street
// and watch the equities and recommendations shift.
package tui

import (
	"fmt"
	"strings"

	rand "math/rand/v2"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/session"
)

// phase tracks which input the analyzer is waiting on
type phase int

const (
	phaseHero phase = iota
	phaseFlop
	phaseTurn
	phaseRiver
	phaseDone
	phaseAnalyzing
)

// reportMsg carries a finished stage analysis back into the update loop
type reportMsg struct {
	report session.StageReport
	err    error
}

// Model is the Bubble Tea model for the analyzer
type Model struct {
	input    textinput.Model
	rng      *rand.Rand
	sess     *session.Session
	phase    phase
	resume   phase // phase to prompt for after the in-flight analysis
	reports  []session.StageReport
	err      error
	width    int
	quitting bool
}

// NewModel creates the analyzer model with the given random source
func NewModel(rng *rand.Rand) *Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. AH KD"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		input: ti,
		rng:   rng,
		phase: phaseHero,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case reportMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = m.resume
			return m, nil
		}
		m.reports = append(m.reports, msg.report)
		m.phase = m.resume
		if m.phase == phaseDone {
			return m, nil
		}
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.phase == phaseDone {
				m.quitting = true
				return m, tea.Quit
			}
		case "enter":
			if m.phase == phaseAnalyzing || m.phase == phaseDone {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit consumes the current input line for the active phase
func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.err = nil
	cards, err := deck.ParseCards(m.input.Value())
	if err != nil {
		m.err = err
		return m, nil
	}

	switch m.phase {
	case phaseHero:
		if len(cards) != 2 {
			m.err = fmt.Errorf("enter exactly 2 hole cards, got %d", len(cards))
			return m, nil
		}
		sess, err := session.New(cards, 2, m.rng)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.sess = sess
		return m.analyze(phaseFlop)

	case phaseFlop:
		if len(cards) != 3 {
			m.err = fmt.Errorf("the flop is 3 cards, got %d", len(cards))
			return m, nil
		}
		if err := m.sess.AddBoard(cards); err != nil {
			m.err = err
			return m, nil
		}
		return m.analyze(phaseTurn)

	case phaseTurn, phaseRiver:
		if len(cards) != 1 {
			m.err = fmt.Errorf("enter exactly 1 card, got %d", len(cards))
			return m, nil
		}
		if err := m.sess.AddBoard(cards); err != nil {
			m.err = err
			return m, nil
		}
		next := phaseRiver
		if m.phase == phaseRiver {
			next = phaseDone
		}
		return m.analyze(next)
	}

	return m, nil
}

// analyze kicks off the stage analysis as a command so the UI stays live
func (m *Model) analyze(resume phase) (tea.Model, tea.Cmd) {
	m.resume = resume
	m.phase = phaseAnalyzing
	m.input.Blur()

	sess := m.sess
	return m, func() tea.Msg {
		report, err := sess.Analyze()
		return reportMsg{report: report, err: err}
	}
}

// View renders the analyzer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Hold'em Step-by-Step Analyzer"))
	b.WriteString("\n\n")

	if m.sess != nil {
		b.WriteString(m.renderSeats())
		b.WriteString("\n")
	}

	for _, report := range m.reports {
		b.WriteString(m.renderReport(report))
		b.WriteString("\n")
	}

	switch m.phase {
	case phaseHero:
		b.WriteString("Enter your 2 hole cards:\n")
		b.WriteString(m.input.View())
	case phaseFlop:
		b.WriteString("Enter the flop (3 cards):\n")
		b.WriteString(m.input.View())
	case phaseTurn:
		b.WriteString("Enter the turn card:\n")
		b.WriteString(m.input.View())
	case phaseRiver:
		b.WriteString("Enter the river card:\n")
		b.WriteString(m.input.View())
	case phaseAnalyzing:
		b.WriteString(InfoStyle.Render("Running simulations..."))
	case phaseDone:
		b.WriteString(InfoStyle.Render("Hand complete. Press q to quit."))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderSeats() string {
	var b strings.Builder
	b.WriteString("You: " + renderCards(m.sess.Hero))
	for i, opp := range m.sess.Opponents {
		b.WriteString(fmt.Sprintf("   Opponent %d: %s", i+1, renderCards(opp)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderReport(report session.StageReport) string {
	var b strings.Builder

	b.WriteString(StageStyle.Render(strings.ToUpper(report.Stage.String())))
	if len(report.Board) > 0 {
		b.WriteString("  Board: " + renderCards(report.Board))
	}
	b.WriteString("\n")

	names := []string{"You"}
	for i := range m.sess.Opponents {
		names = append(names, fmt.Sprintf("Opponent %d", i+1))
	}

	for i, name := range names {
		rec := report.Recommendations[i]
		b.WriteString(fmt.Sprintf("  %-10s win %s  %s (%d%%)  %s\n",
			name,
			WinStyle.Render(fmt.Sprintf("%5.1f%%", report.Equity.WinPct[i])),
			ActionStyle.Render(rec.Action.String()),
			rec.Confidence,
			InfoStyle.Render(rec.Rationale),
		))
	}
	b.WriteString("  " + TieStyle.Render(fmt.Sprintf("Ties %.1f%%", report.Equity.TiePct)))

	texture := advisor.ClassifyTexture(report.Board)
	if texture != advisor.Unknown {
		b.WriteString(InfoStyle.Render("  (" + texture.String() + " board)"))
	}
	b.WriteString("\n")

	return PanelStyle.Width(m.contentWidth()).Render(b.String()) + "\n"
}

func (m *Model) contentWidth() int {
	if m.width > 4 && m.width < 84 {
		return m.width - 4
	}
	return 80
}

func renderCards(cards []deck.Card) string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		style := BlackCardStyle
		if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
			style = RedCardStyle
		}
		tokens[i] = style.Render(card.String())
	}
	return strings.Join(tokens, " ")
}

// Run starts the analyzer program
func Run(rng *rand.Rand) error {
	p := tea.NewProgram(NewModel(rng))
	_, err := p.Run()
	return err
}
