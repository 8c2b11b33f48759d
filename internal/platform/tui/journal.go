package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voicerun/internal/storage"
)

// JournalSource is the read side of the recognition journal.
type JournalSource interface {
	Recent(limit int) ([]storage.Entry, error)
	Runs(limit int) ([]storage.RunSummary, error)
	CommandCounts() (map[string]int, error)
}

type journalView int

const (
	viewEntries journalView = iota
	viewRuns
)

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Refresh, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "entries/runs"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recognized commands.
type JournalModel struct {
	source  JournalSource
	limit   int
	view    journalView
	entries []storage.Entry
	runs    []storage.RunSummary
	counts  map[string]int
	err     error
	table   table.Model
	help    help.Model
	keys    JournalKeyMap
	width   int
	height  int
	done    bool
}

// NewJournalModel creates a viewer showing up to limit entries.
func NewJournalModel(source JournalSource, limit, width, height int) JournalModel {
	m := JournalModel{
		source: source,
		limit:  limit,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

func (m *JournalModel) load() {
	m.err = nil
	if m.source == nil {
		return
	}

	var err error
	if m.entries, err = m.source.Recent(m.limit); err != nil {
		m.err = err
		return
	}
	if m.runs, err = m.source.Runs(m.limit); err != nil {
		m.err = err
		return
	}
	if m.counts, err = m.source.CommandCounts(); err != nil {
		m.err = err
	}
}

// createTable builds the table for the current view and size.
func (m *JournalModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case viewRuns:
		columns = []table.Column{
			{Title: "Run", Width: 10},
			{Title: "Commands", Width: 9},
			{Title: "Started", Width: 14},
			{Title: "Last", Width: 14},
		}
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				shortID(r.RunID),
				fmt.Sprintf("%d", r.Commands),
				r.First.Format("Jan 02 15:04"),
				r.Last.Format("Jan 02 15:04"),
			})
		}
	default:
		transcriptWidth := max(m.width-4-10-10-6-8-10, 12)
		columns = []table.Column{
			{Title: "Time", Width: 10},
			{Title: "Run", Width: 10},
			{Title: "Lang", Width: 6},
			{Title: "Cmd", Width: 8},
			{Title: "Heard", Width: transcriptWidth},
		}
		for _, e := range m.entries {
			rows = append(rows, table.Row{
				e.CreatedAt.Format("15:04:05"),
				shortID(e.RunID),
				e.Language,
				e.Command,
				e.Transcript,
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewEntries {
				m.view = viewRuns
			} else {
				m.view = viewEntries
			}
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RECOGNITION JOURNAL"
	if m.view == viewRuns {
		title += " - runs"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.summary())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary renders per-command totals.
func (m JournalModel) summary() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return style.Render(fmt.Sprintf("jump %d  stop %d  move %d",
		m.counts["jump"], m.counts["stop"], m.counts["move"]))
}

func (m JournalModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)

	if m.err != nil {
		return emptyStyle.Render("Cannot read journal: " + m.err.Error())
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No commands recorded yet.\nPlay with voice control enabled to fill the journal.")
	}
	return m.table.View()
}

// RunJournal runs the journal viewer until the user quits.
func RunJournal(source JournalSource, limit, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(source, limit, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
