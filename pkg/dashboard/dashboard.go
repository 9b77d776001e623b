// Package dashboard is a live bubbletea view over a single route()
// invocation, shared by cmd/tui (a dedicated dashboard binary) and
// cmd/router's "tui" subcommand, in the same styled-table shape the rest of
// this project's terminal tooling uses.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Quit key.Binding
	Up   key.Binding
	Down key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Up, k.Down, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// rowMsg carries one completed iteration's Row into the bubbletea loop.
type rowMsg router.Row

// doneMsg carries the terminal Outcome, or a non-nil err if Route itself
// failed before producing one.
type doneMsg struct {
	outcome router.Outcome
	err     error
}

type model struct {
	signalCount int
	rows        []router.Row
	history     table.Model
	help        help.Model
	keys        keyMap
	width       int
	height      int
	startTime   time.Time
	outcome     *router.Outcome
	err         error
}

func initialModel(signalCount int) model {
	columns := []table.Column{
		{Title: "Iter", Width: 6},
		{Title: "Conflicts", Width: 10},
		{Title: "Longest", Width: 10},
		{Title: "WireUse", Width: 10},
		{Title: "Reuse", Width: 8},
		{Title: "Unreachable", Width: 12},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(14))
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)

	return model{
		signalCount: signalCount,
		history:     t,
		help:        help.New(),
		keys:        keys,
		startTime:   time.Now(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case rowMsg:
		row := router.Row(msg)
		m.rows = append(m.rows, row)
		rows := m.history.Rows()
		rows = append(rows, table.Row{
			fmt.Sprint(row.Iteration),
			fmt.Sprint(row.Conflicts),
			fmt.Sprintf("%.0f", row.LongestPathCost),
			fmt.Sprint(row.TotalWireUse),
			fmt.Sprintf("%.3f", row.WireReuse),
			fmt.Sprint(row.UnreachableSignals),
		})
		m.history.SetRows(rows)
		m.history.GotoBottom()

	case doneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.outcome = &msg.outcome
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("FPGA Global Router — live routing"))
	s.WriteString("\n\n")

	s.WriteString(statsBoxStyle.Render(m.renderSummary()))
	s.WriteString("\n\n")

	s.WriteString(headerStyle.Render("Iteration history"))
	s.WriteString("\n\n")
	s.WriteString(m.history.View())

	if m.outcome != nil {
		s.WriteString("\n\n")
		line := fmt.Sprintf("%s after %d iteration(s), %d conflict(s)", m.outcome.Kind, m.outcome.Iterations, m.outcome.Conflicts)
		if m.outcome.Kind == router.Success {
			s.WriteString(successStyle.Render("✓ " + line))
		} else {
			s.WriteString(errorStyle.Render("✗ " + line))
		}
	}
	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render("✗ " + m.err.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return contentStyle.Render(s.String())
}

func (m model) renderSummary() string {
	uptime := time.Since(m.startTime).Round(time.Second)
	latest := router.Row{}
	if len(m.rows) > 0 {
		latest = m.rows[len(m.rows)-1]
	}
	return fmt.Sprintf(`Signals:    %d
Iterations: %d
Uptime:     %s

Latest iteration
Conflicts:     %d
Longest path:  %.0f
Wire use:      %d
Wire reuse:    %.3f
Unreachable:   %d`,
		m.signalCount, len(m.rows), uptime,
		latest.Conflicts, latest.LongestPathCost, latest.TotalWireUse, latest.WireReuse, latest.UnreachableSignals,
	)
}

// programLogger bridges router.IterationLogger into a running tea.Program,
// one Send per completed iteration.
type programLogger struct {
	program *tea.Program
}

func (l programLogger) Log(r router.Row) {
	l.program.Send(rowMsg(r))
}

// Run starts the negotiated-congestion loop over g and p in the background
// and blocks rendering its live progress until the user quits.
func Run(g *graph.Graph, p plan.RoutingPlan, cfg router.Config) error {
	prog := tea.NewProgram(initialModel(len(p)), tea.WithAltScreen())

	go func() {
		outcome, _, err := router.Route(g, p, cfg, programLogger{program: prog}, nil)
		prog.Send(doneMsg{outcome: outcome, err: err})
	}()

	_, err := prog.Run()
	return err
}
