// Package tui renders the interactive contact assistant REPL with
// Bubble Tea: a text input prompt, a scrollable transcript, and a
// contacts bar.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maracasabat/hw-11-assistant/internal/book"
	"github.com/maracasabat/hw-11-assistant/internal/command"
)

// chromeHeight is the number of lines below the transcript viewport:
// contacts bar, input line, and help bar.
const chromeHeight = 3

// Model is the Bubble Tea model for the REPL.
type Model struct {
	dispatcher *command.Dispatcher
	book       *book.AddressBook

	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       replKeys
	styles     styles
	transcript []string

	pageSize int
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithPrompt sets the input prompt text.
func WithPrompt(prompt string) Option {
	return func(m *Model) {
		m.input.Prompt = prompt
	}
}

// WithPageSize caps how many names the contacts bar shows.
func WithPageSize(n int) Option {
	return func(m *Model) {
		m.pageSize = n
	}
}

// WithColor toggles styled output.
func WithColor(color bool) Option {
	return func(m *Model) {
		m.styles = newStyles(color)
	}
}

// NewModel creates a REPL model over bk, dispatching through disp.
func NewModel(disp *command.Dispatcher, bk *book.AddressBook, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = ">>> "
	ti.Focus()

	m := Model{
		dispatcher: disp,
		book:       bk,
		input:      ti,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		keys:       ReplKeyMap(),
		styles:     newStyles(true),
		pageSize:   10,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		vpHeight := msg.Height - chromeHeight
		if vpHeight < 0 {
			vpHeight = 0
		}
		m.viewport.Height = vpHeight
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and appends the exchange
// to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	res := m.dispatcher.Dispatch(line)
	m.transcript = append(m.transcript, m.styles.Echo.Render(m.input.Prompt+line))
	m.transcript = append(m.transcript, strings.Split(res.Text, "\n")...)
	m.input.SetValue("")

	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the transcript, contacts bar, input line, and help.
func (m Model) View() string {
	if m.quitting {
		return strings.Join(m.transcript, "\n") + "\n"
	}
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.contactsBar())
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// contactsBar summarizes the book: up to pageSize names in insertion
// order, with a count of the rest.
func (m Model) contactsBar() string {
	total := m.book.Len()
	if total == 0 {
		return m.styles.Empty.Render("Contacts are empty")
	}

	names := make([]string, 0, m.pageSize)
	for _, rec := range m.book.FirstN(m.pageSize) {
		names = append(names, book.Title(rec.Name().String()))
	}
	bar := strings.Join(names, ", ")
	if rest := total - len(names); rest > 0 {
		bar += ", …"
	}
	return m.styles.Contacts.Render(bar)
}
