package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numlist/internal/digitlist"
	apperrors "github.com/agbru/numlist/internal/errors"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/store"
)

// Options holds the optional collaborators of the editor.
type Options struct {
	// Store and OutputFile back the save binding; saving is disabled when
	// either is unset.
	Store      *store.Store
	OutputFile string
	// Operand is the right-hand side of the OR binding.
	Operand *digitlist.List
}

// Model is the root bubbletea model of the list editor. The cursor sits on
// the digit at pos; every in-place edit goes through a digitlist.Cursor
// opened at that position.
type Model struct {
	list    *digitlist.List
	adapter *numeric.Adapter
	opts    Options

	header HeaderModel
	keymap KeyMap

	pos       int
	status    string
	statusErr bool
	width     int
	exitCode  int
}

// NewModel creates an editor over l. A nil list starts empty in the
// adapter's primary base.
func NewModel(l *digitlist.List, a *numeric.Adapter, opts Options, version string) Model {
	if l == nil {
		l = digitlist.New(a.Primary())
	}
	return Model{
		list:    l,
		adapter: a,
		opts:    opts,
		header:  NewHeaderModel(version),
		keymap:  DefaultKeyMap(),
	}
}

// List returns the list being edited.
func (m Model) List() *digitlist.List {
	return m.list
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Left):
		if m.pos > 0 {
			m.pos--
		}
	case key.Matches(msg, m.keymap.Right):
		if m.pos < m.list.Len()-1 {
			m.pos++
		}
	case key.Matches(msg, m.keymap.Home):
		m.pos = 0
	case key.Matches(msg, m.keymap.End):
		m.pos = max(m.list.Len()-1, 0)

	case key.Matches(msg, m.keymap.Increment):
		m.fail(m.step(1))
	case key.Matches(msg, m.keymap.Decrement):
		m.fail(m.step(-1))
	case key.Matches(msg, m.keymap.Insert):
		m.fail(m.insert())
	case key.Matches(msg, m.keymap.Delete):
		m.fail(m.remove())

	case key.Matches(msg, m.keymap.Swap):
		if m.list.Swap(m.pos, m.pos+1) {
			m.pos++
		} else {
			m.setError("nothing to swap")
		}
	case key.Matches(msg, m.keymap.ShiftLeft):
		m.list.ShiftLeft()
	case key.Matches(msg, m.keymap.ShiftRight):
		m.list.ShiftRight()
	case key.Matches(msg, m.keymap.SortAsc):
		m.status = fmt.Sprintf("sorted ascending, %d swap(s)", m.list.SortAscending())
	case key.Matches(msg, m.keymap.SortDesc):
		m.status = fmt.Sprintf("sorted descending, %d swap(s)", m.list.SortDescending())

	case key.Matches(msg, m.keymap.Scale):
		m.replace(m.adapter.ChangeScale(m.list))
		m.status = fmt.Sprintf("scaled to base %d", m.list.Base())
	case key.Matches(msg, m.keymap.Or):
		if m.opts.Operand == nil {
			m.setError("no OR operand configured")
			break
		}
		m.replace(m.adapter.BitwiseOr(m.list, m.opts.Operand))
		m.status = "or " + numeric.Display(m.opts.Operand)
	case key.Matches(msg, m.keymap.Save):
		if m.opts.Store == nil || m.opts.OutputFile == "" {
			m.setError("no output file configured")
			break
		}
		m.opts.Store.SaveList(m.opts.OutputFile, m.list)
		m.status = "saved to " + m.opts.OutputFile
	}
	return m, nil
}

// step adds delta to the digit under the cursor, wrapping within the base.
func (m *Model) step(delta int) error {
	c, err := m.list.Cursor(m.pos)
	if err != nil {
		return err
	}
	d, err := c.Next()
	if err != nil {
		return err
	}
	base := m.list.Base()
	if !numeric.ValidBase(base) {
		base = numeric.MaxBase
	}
	next := (int(d) + delta + base) % base
	return c.Set(uint8(next))
}

// insert places a zero digit at the cursor position.
func (m *Model) insert() error {
	c, err := m.list.Cursor(m.pos)
	if err != nil {
		return err
	}
	return c.Insert(0)
}

// remove deletes the digit under the cursor.
func (m *Model) remove() error {
	c, err := m.list.Cursor(m.pos)
	if err != nil {
		return err
	}
	if _, err := c.Next(); err != nil {
		return err
	}
	if err := c.Remove(); err != nil {
		return err
	}
	m.clamp()
	return nil
}

func (m *Model) replace(l *digitlist.List) {
	m.list = l
	m.clamp()
}

func (m *Model) clamp() {
	m.pos = min(m.pos, max(m.list.Len()-1, 0))
}

func (m *Model) fail(err error) {
	if err != nil {
		m.setError(err.Error())
	}
}

func (m *Model) setError(s string) {
	m.status, m.statusErr = s, true
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.header.View(m.list.Base(), m.list.Len())

	body := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.digitsView(),
		"",
		labelStyle.Render("decimal ")+valueStyle.Render(m.adapter.ToDecimalString(m.list)),
	))

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = statusErrStyle.Render(m.status)
		} else {
			status = statusOKStyle.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, m.footerView())
}

func (m Model) digitsView() string {
	if m.list.IsEmpty() {
		return labelStyle.Render("(empty)")
	}
	var b strings.Builder
	i := 0
	for d := range m.list.All() {
		ch := string(numeric.DigitChar(d))
		if i == m.pos {
			b.WriteString(cursorStyle.Render(ch))
		} else {
			b.WriteString(digitStyle.Render(ch))
		}
		i++
	}
	return b.String()
}

func (m Model) footerView() string {
	parts := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Run is the public entry point for the TUI mode. It returns the edited
// list together with the exit code.
func Run(ctx context.Context, l *digitlist.List, a *numeric.Adapter, opts Options, version string) (*digitlist.List, int) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(l, a, opts, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return model.list, apperrors.ExitErrorCanceled
		}
		return model.list, apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.list, m.exitCode
	}
	return model.list, apperrors.ExitSuccess
}
