// Package tui binds lookup plans to a bubbletea terminal UI.
package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/choseong/internal/clipboard"
	"github.com/bastiangx/choseong/pkg/lookup"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options holds the headings and input limits of the UI.
type Options struct {
	ExactTitle   string
	SuggestTitle string
	CopyLabel    string
	LoadLabel    string
	CharLimit    int
}

// DefaultOptions returns the default Korean labels.
func DefaultOptions() Options {
	return Options{
		ExactTitle:   "정확히 일치",
		SuggestTitle: "시작 초성 일치 (제안)",
		CopyLabel:    "복사",
		LoadLabel:    "불러오기",
		CharLimit:    64,
	}
}

type itemKind int

const (
	itemAnswer itemKind = iota
	itemSuggestion
)

// item is one selectable row of the current plan.
type item struct {
	kind itemKind
	text string
}

// copiedMsg reports a successful copy. Failures produce no message.
type copiedMsg struct {
	text string
}

// Model is the bubbletea model of the lookup screen.
type Model struct {
	engine *lookup.Engine
	copier clipboard.Copier
	opts   Options

	input  textinput.Model
	plan   lookup.Plan
	items  []item
	cursor int
	flash  string

	width  int
	height int
}

// New creates the model and renders the plan for the empty query.
func New(engine *lookup.Engine, copier clipboard.Copier, opts Options) Model {
	def := DefaultOptions()
	if opts.ExactTitle == "" {
		opts.ExactTitle = def.ExactTitle
	}
	if opts.SuggestTitle == "" {
		opts.SuggestTitle = def.SuggestTitle
	}
	if opts.CopyLabel == "" {
		opts.CopyLabel = def.CopyLabel
	}
	if opts.LoadLabel == "" {
		opts.LoadLabel = def.LoadLabel
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = def.CharLimit
	}
	if copier == nil {
		copier = clipboard.Discard
	}

	ti := textinput.New()
	ti.Placeholder = "ㄱㄴ"
	ti.Prompt = "초성 › "
	ti.CharLimit = opts.CharLimit
	ti.Width = 40
	ti.Focus()

	m := Model{
		engine: engine,
		copier: copier,
		opts:   opts,
		input:  ti,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Plan returns the plan currently on screen.
func (m Model) Plan() lookup.Plan {
	return m.plan
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 16; w > 10 && w < 60 {
			m.input.Width = w
		}
		return m, nil

	case copiedMsg:
		m.flash = "✓ " + msg.text
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "ctrl+u":
			return m.setQuery(""), nil

		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			sel, ok := m.selected()
			if !ok {
				return m, nil
			}
			if sel.kind == itemSuggestion {
				return m.setQuery(sel.text), nil
			}
			return m, copyCmd(m.copier, sel.text)

		case "ctrl+y":
			if sel, ok := m.selected(); ok && sel.kind == itemAnswer {
				return m, copyCmd(m.copier, sel.text)
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// setQuery replaces the input text and runs the regular query cycle,
// which is how both the clear and the load actions behave.
// The char limit grows to fit text so a loaded key is never cut.
func (m Model) setQuery(text string) Model {
	if n := utf8.RuneCountInString(text); m.input.CharLimit > 0 && n > m.input.CharLimit {
		m.input.CharLimit = n
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.refresh()
	return m
}

// refresh recomputes the plan from the current input text.
func (m *Model) refresh() {
	m.plan = m.engine.Query(m.input.Value())
	m.flash = ""
	m.cursor = 0

	m.items = make([]item, 0, len(m.plan.Answers())+len(m.plan.Suggestions))
	for _, a := range m.plan.Answers() {
		m.items = append(m.items, item{kind: itemAnswer, text: a})
	}
	for _, s := range m.plan.Suggestions {
		m.items = append(m.items, item{kind: itemSuggestion, text: s.Key})
	}
	log.Debug("query", "q", m.plan.Query, "state", m.plan.State, "items", len(m.items))
}

func (m Model) selected() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item{}, false
	}
	return m.items[m.cursor], true
}

func copyCmd(c clipboard.Copier, text string) tea.Cmd {
	return func() tea.Msg {
		if err := c.Copy(text); err != nil {
			log.Debugf("Copy failed: %v", err)
			return nil
		}
		return copiedMsg{text: text}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("초성 검색"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.plan.Message != lookup.MessageNone {
		b.WriteString(emptyStyle.Render(m.plan.Text))
	} else {
		if m.plan.Exact != nil {
			b.WriteString(m.renderExact())
			b.WriteString("\n")
		}
		if len(m.plan.Suggestions) > 0 {
			b.WriteString(m.renderSuggestions())
			b.WriteString("\n")
		}
	}

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(flashStyle.Render(m.flash))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter load/copy • ctrl+y copy • esc clear • ctrl+c quit"))
	return b.String()
}

func (m Model) renderChips(categories []string) string {
	chips := make([]string, 0, len(categories))
	for _, c := range categories {
		chips = append(chips, chipStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderRow(idx int, label, action string) string {
	line := label + "  " + actionStyle.Render("["+action+"]")
	if idx == m.cursor {
		return selectedRowStyle.Render("› ") + line
	}
	return rowStyle.Render(line)
}

func (m Model) renderExact() string {
	exact := m.plan.Exact
	lines := []string{
		cardTitleStyle.Render(m.opts.ExactTitle),
		keyStyle.Render(exact.Key) + m.renderChips(exact.Categories),
	}
	for i, a := range exact.Answers {
		lines = append(lines, m.renderRow(i, a, m.opts.CopyLabel))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderSuggestions() string {
	offset := len(m.plan.Answers())
	start, end := m.suggestionWindow(offset)

	lines := []string{cardTitleStyle.Render(m.opts.SuggestTitle)}
	if start > 0 {
		lines = append(lines, actionStyle.Render("  ⋮"))
	}
	for i := start; i < end; i++ {
		s := m.plan.Suggestions[i]
		label := keyStyle.Render(s.Key) + m.renderChips(s.Categories)
		lines = append(lines, m.renderRow(offset+i, label, m.opts.LoadLabel))
	}
	if end < len(m.plan.Suggestions) {
		lines = append(lines, actionStyle.Render("  ⋮"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// suggestionWindow returns the range of suggestion rows that fit on screen,
// keeping the selected row visible.
func (m Model) suggestionWindow(offset int) (int, int) {
	total := len(m.plan.Suggestions)
	if m.height <= 0 {
		return 0, total
	}

	visible := m.height - 14 - offset
	if visible < 3 {
		visible = 3
	}
	if total <= visible {
		return 0, total
	}

	start := 0
	if sel := m.cursor - offset; sel >= visible {
		start = sel - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
	}
	return start, end
}
