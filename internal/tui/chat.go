// Package tui implements the interactive chat session over the pipeline.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/MalleGowthami/IntelliSQL/internal/agent"
	"github.com/MalleGowthami/IntelliSQL/internal/db"
	"github.com/MalleGowthami/IntelliSQL/internal/history"
	"github.com/MalleGowthami/IntelliSQL/internal/metrics"
	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

// Theme holds the color scheme for the chat display.
type Theme struct {
	Heading lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
	SQL     lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Heading: lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	SQL:     lipgloss.Color("#D7AF5F"), // amber
}

func (t Theme) headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Heading).Bold(true)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) sqlStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.SQL)
}

// answerMsg carries a finished pipeline record back into the UI loop.
type answerMsg struct {
	record models.AnswerRecord
}

// chatModel is the bubbletea model for the interactive session.
type chatModel struct {
	ctx       context.Context
	agent     *agent.Agent
	log       *history.Log
	collector *metrics.Collector

	input   textinput.Model
	spin    spinner.Model
	theme   Theme
	tables  []string
	asking  bool
	pending string
	width   int
}

func newChatModel(ctx context.Context, ag *agent.Agent, log *history.Log, collector *metrics.Collector, tables []string) chatModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. Show me all employees in the Engineering department"
	ti.Focus()
	ti.CharLimit = 500
	ti.SetWidth(70)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return chatModel{
		ctx:       ctx,
		agent:     ag,
		log:       log,
		collector: collector,
		input:     ti,
		spin:      sp,
		theme:     defaultTheme,
		tables:    tables,
		width:     80,
	}
}

// Init returns the initial command.
func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns the updated model.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+l":
			m.log.Clear()
			return m, nil
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if m.asking || question == "" {
				return m, nil
			}
			m.asking = true
			m.pending = question
			m.input.Reset()
			return m, tea.Batch(m.spin.Tick, m.askCmd(question))
		}

	case answerMsg:
		// The agent already appended the record to the log.
		m.asking = false
		m.pending = ""
		return m, nil

	case spinner.TickMsg:
		if !m.asking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// askCmd runs the pipeline in a command so Update never blocks.
func (m chatModel) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{record: m.agent.Ask(m.ctx, question)}
	}
}

// View renders the session.
func (m chatModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m chatModel) renderContent() string {
	var b strings.Builder

	b.WriteString(m.theme.headingStyle().Render("IntelliSQL"))
	b.WriteString(m.theme.hintStyle().Render("  tables: " + strings.Join(m.tables, ", ")))
	b.WriteString("\n\n")

	for _, record := range m.log.Records() {
		b.WriteString(m.renderRecord(record))
		b.WriteString("\n")
	}

	if m.asking {
		b.WriteString(fmt.Sprintf("%s %s\n\n", m.spin.View(), m.theme.hintStyle().Render("thinking about: "+m.pending)))
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render(m.footer()))
	b.WriteString("\n")

	return b.String()
}

func (m chatModel) renderRecord(record models.AnswerRecord) string {
	var b strings.Builder

	marker := m.theme.successStyle().Render("✓")
	if record.Failed() {
		marker = m.theme.errorStyle().Render("✗")
	}
	fmt.Fprintf(&b, "%s %s\n", marker, record.Question)

	if record.Statement != "" {
		b.WriteString(m.theme.sqlStyle().Render("  "+oneLine(record.Statement)) + "\n")
	}

	if record.Failed() {
		b.WriteString(m.theme.errorStyle().Render("  "+record.Err) + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s\n", m.theme.hintStyle().Render(fmt.Sprintf("%d rows", len(record.Rows))))
	for _, line := range strings.Split(strings.TrimSpace(record.Answer), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m chatModel) footer() string {
	parts := []string{"enter: ask", "ctrl+l: clear history", "esc: quit"}
	if snap := m.collector.Snapshot(); snap.Pipeline != nil {
		parts = append(parts, fmt.Sprintf("%d questions, avg %.0fms", snap.Pipeline.Count, snap.Pipeline.AvgTimeMs))
	}
	return strings.Join(parts, "  ·  ")
}

// oneLine collapses a multi-line SQL statement for compact history display.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Run starts the interactive chat session and blocks until the user quits.
func Run(ctx context.Context, ag *agent.Agent, store *db.Store, log *history.Log, collector *metrics.Collector) error {
	schema, err := store.DescribeSchema(ctx)
	if err != nil {
		return fmt.Errorf("describe schema: %w", err)
	}

	model := newChatModel(ctx, ag, log, collector, schema.Tables())
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
