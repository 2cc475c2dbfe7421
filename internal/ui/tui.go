package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daycheck/internal/session"
)

// keyMap defines the normal-mode keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Delete  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Toggle, k.Add, k.Delete, k.PrevDay, k.NextDay, k.Today, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Toggle},
		{k.Add, k.Delete},
		{k.PrevDay, k.NextDay, k.Today, k.Quit},
	}
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Toggle:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	PrevDay: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "yesterday")),
	NextDay: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "tomorrow")),
	Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model for the interactive checklist.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	theme   Theme
	width   int
	height  int
	err     error
}

// NewModel builds the checklist TUI model around a session.
func NewModel(s *session.Session, theme Theme) Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpStyle().Bold(true)
	h.Styles.ShortDesc = theme.HelpStyle()
	h.Styles.ShortSeparator = theme.HelpStyle()
	return Model{
		session: s,
		keys:    defaultKeys,
		help:    h,
		theme:   theme,
	}
}

// Err returns the error that terminated the TUI, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.session.Mode == session.ModeInsert {
			return m.updateInsert(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal dispatches normal-mode keys onto the session.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.err = m.session.Flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Today):
		return m.run(m.session.GoToToday)

	case key.Matches(msg, m.keys.PrevDay):
		return m.run(m.session.PrevDay)

	case key.Matches(msg, m.keys.NextDay):
		return m.run(m.session.NextDay)

	case key.Matches(msg, m.keys.Down):
		m.session.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.session.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.run(m.session.ToggleSelected)

	case key.Matches(msg, m.keys.Add):
		m.session.StartInsert()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		return m.run(m.session.DeleteSelected)
	}

	return m, nil
}

// updateInsert feeds insert-mode keys into the staging buffer.
func (m Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.run(m.session.CommitInsert)

	case tea.KeyEscape:
		m.session.CancelInsert()
		return m, nil

	case tea.KeyBackspace:
		m.session.EraseLast()
		return m, nil

	case tea.KeySpace:
		m.session.TypeRune(' ')
		return m, nil

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.TypeRune(r)
		}
		return m, nil
	}

	return m, nil
}

// run executes a session operation and quits the program on failure.
// Any I/O error is fatal; the terminal is restored by Bubble Tea
// before the error reaches the caller of RunTUI.
func (m Model) run(op func() error) (tea.Model, tea.Cmd) {
	if err := op(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderStyle().Render(m.session.DayName()))
	b.WriteString(m.theme.MutedStyle().Render("  " + offsetLabel(m.session.DayOffset)))
	b.WriteString("\n\n")

	items := m.session.List.Items()
	if len(items) == 0 {
		b.WriteString(m.theme.MutedStyle().Render("Nothing on this day. Press a to add an item."))
		b.WriteString("\n")
	}
	for i, it := range items {
		style := m.theme.ItemStyle()
		cursor := "  "
		if i == m.session.List.SelectedIndex() {
			style = m.theme.SelectedItemStyle()
			cursor = "> "
		} else if it.Completed {
			style = m.theme.DoneItemStyle()
		}
		b.WriteString(style.Render(cursor + it.Encode()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.session.Mode == session.ModeInsert {
		b.WriteString(m.theme.PromptStyle().Render("> " + m.session.Pending + "█"))
		b.WriteString("\n")
		b.WriteString(m.theme.HelpStyle().Render("enter confirm • esc cancel"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// offsetLabel renders the day offset relative to today.
func offsetLabel(offset int) string {
	switch {
	case offset == 0:
		return "today"
	case offset > 0:
		return fmt.Sprintf("today%+dd", offset)
	default:
		return fmt.Sprintf("today%dd", offset)
	}
}

// RunTUI launches the interactive checklist for the given session.
func RunTUI(s *session.Session, theme Theme) error {
	m := NewModel(s, theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}
	if rm, ok := result.(Model); ok && rm.err != nil {
		return rm.err
	}
	return nil
}
