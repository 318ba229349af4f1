// Package ui provides an optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/projman/internal/tracker"
)

// Loader loads the user collection. *store.Store satisfies it.
type Loader interface {
	Load() ([]tracker.User, error)
	Path() string
}

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	output io.Writer
	input  io.Reader
}

// WithOutput renders to w instead of stdout. The TTY check is skipped.
func WithOutput(w io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.output = w
	}
}

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) TUIOption {
	return func(c *tuiConfig) {
		c.input = r
	}
}

// RunTUI starts the read-only browser over the data loaded by loader.
func RunTUI(ctx context.Context, loader Loader, opts ...TUIOption) error {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.output != nil {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	} else {
		if !IsTTY(os.Stdout) {
			return fmt.Errorf("tui requires a TTY")
		}
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}

	program := tea.NewProgram(newTUIModel(loader), programOpts...)
	_, err := program.Run()
	return err
}

type rowKind int

const (
	rowUser rowKind = iota
	rowProject
	rowTask
)

// row is one line of the flattened user → project → task tree.
type row struct {
	kind      rowKind
	text      string
	completed bool
}

type tuiModel struct {
	loader   Loader
	rows     []row
	loadErr  error
	loaded   bool
	cursor   int
	offset   int
	height   int
	showHelp bool
	counts   counts
}

type counts struct {
	users, projects, tasks, done int
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	userStyle    = lipgloss.NewStyle().Bold(true)
	projectStyle = lipgloss.NewStyle()
	doneStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

func newTUIModel(loader Loader) *tuiModel {
	return &tuiModel{loader: loader}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
		case "h", "?":
			m.showHelp = !m.showHelp
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "g", "home":
			m.move(-len(m.rows))
		case "G", "end":
			m.move(len(m.rows))
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampOffset()
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b, m.loader.Path())

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading data file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}
	if !m.loaded {
		b.WriteString("Loading...\n\n")
		writeFooter(&b)
		return b.String()
	}

	fmt.Fprintf(&b, "  Users: %d  Projects: %d  Tasks: %d  Done: %d\n\n",
		m.counts.users, m.counts.projects, m.counts.tasks, m.counts.done)

	if len(m.rows) == 0 {
		b.WriteString("  No users found.\n\n")
		writeFooter(&b)
		return b.String()
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		line := formatRow(m.rows[i])
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	writeFooter(&b)
	return b.String()
}

func (m *tuiModel) refresh() {
	users, err := m.loader.Load()
	if err != nil {
		m.loadErr = err
		m.rows = nil
		m.loaded = false
		return
	}
	m.loadErr = nil
	m.loaded = true
	m.rows, m.counts = buildRows(users)
	m.move(0)
}

func (m *tuiModel) move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// listHeight is the number of rows that fit between header and footer.
// Zero means unbounded (no window size received yet).
func (m *tuiModel) listHeight() int {
	const chrome = 7
	if m.height <= 0 {
		return 0
	}
	if h := m.height - chrome; h > 0 {
		return h
	}
	return 1
}

func (m *tuiModel) clampOffset() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *tuiModel) visibleRange() (int, int) {
	h := m.listHeight()
	if h == 0 {
		return 0, len(m.rows)
	}
	end := m.offset + h
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return m.offset, end
}

func buildRows(users []tracker.User) ([]row, counts) {
	var rows []row
	var c counts
	for _, u := range users {
		c.users++
		rows = append(rows, row{kind: rowUser, text: u.Name})
		for _, p := range u.Projects {
			c.projects++
			rows = append(rows, row{kind: rowProject, text: p.Name})
			for completed, title := range p.ListTasks() {
				c.tasks++
				if completed {
					c.done++
				}
				rows = append(rows, row{kind: rowTask, text: title, completed: completed})
			}
		}
	}
	return rows, c
}

func formatRow(r row) string {
	switch r.kind {
	case rowUser:
		return userStyle.Render("👤 " + r.text)
	case rowProject:
		return "  " + projectStyle.Render("📂 "+r.text)
	default:
		if r.completed {
			return "      " + doneStyle.Render("[x] "+r.text)
		}
		return "      [ ] " + r.text
	}
}

func writeTitle(b *strings.Builder, path string) {
	b.WriteString(titleStyle.Render("projman") + "  " + footerStyle.Render(path) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, esc, ctrl+c  Quit\n")
	b.WriteString("  r, F5           Reload data file\n")
	b.WriteString("  j, down         Move down\n")
	b.WriteString("  k, up           Move up\n")
	b.WriteString("  g, home         Jump to top\n")
	b.WriteString("  G, end          Jump to bottom\n")
	b.WriteString("  h, ?            Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(footerStyle.Render("Press h for help | r to reload | q to quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
