package palette

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/keymap"
	"github.com/flavono123/valentine/internal/ui/theme"
)

const (
	PALETTE_WIDTH_DIV          = 3
	PALETTE_MIN_WIDTH          = 32
	PALETTE_RESULTS_MAX_HEIGHT = 6
)

type item struct {
	title  string
	action event.Action
}

type items []item

var defaultItems = items{
	{title: "Custom domain setup", action: event.OpenSettings},
	{title: "Custom domain documentation", action: event.OpenDocs},
	{title: "Copy app URL", action: event.CopyAppURL},
	{title: "Quit", action: event.Quit},
}

type Model struct {
	keys    keymap.PaletteKeyMap
	styles  *theme.Styles
	visible bool
	items   items
	input   textinput.Model
	results []fuzzy.Match
	vp      viewport.Model
	cursor  int
}

func NewModel(styles *theme.Styles) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search actions..."
	ti.Prompt = "› "
	ti.Width = PALETTE_MIN_WIDTH - 4

	m := &Model{
		keys:   keymap.NewPaletteKeyMap(),
		styles: styles,
		items:  defaultItems,
		input:  ti,
		vp:     viewport.New(PALETTE_MIN_WIDTH, PALETTE_RESULTS_MAX_HEIGHT),
	}
	m.filter()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg:
		m.visible = true
		m.reset()
		cmds = append(cmds, m.input.Focus())
	case HideMsg:
		m.visible = false
		m.reset()
		m.input.Blur()
	case tea.WindowSizeMsg:
		m.vp.Width = max(PALETTE_MIN_WIDTH, msg.Width/PALETTE_WIDTH_DIV)
		m.input.Width = m.vp.Width - 4
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Pick):
			if len(m.results) == 0 {
				return m, nil
			}
			action := m.items[m.results[m.cursor].Index].action
			return m, tea.Sequence(Hide, func() tea.Msg {
				return event.PickActionMsg{Action: action}
			})
		case key.Matches(msg, m.keys.Hide):
			return m, Hide
		}

		prev := m.input.Value()
		im, iCmd := m.input.Update(msg)
		m.input = im
		if prev != m.input.Value() {
			m.filter()
		}
		cmds = append(cmds, iCmd)
	default:
		im, iCmd := m.input.Update(msg)
		m.input = im
		cmds = append(cmds, iCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	m.vp.SetContent(m.renderResults())
	return m.styles.Palette.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Renderer().NewStyle().Margin(0, 0, 1, 0).Render(m.input.View()),
			m.vp.View(),
		),
	)
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) reset() {
	m.input.Reset()
	m.filter()
}

// filter keeps every item on an empty query, in declaration order.
func (m *Model) filter() {
	m.cursor = 0
	query := m.input.Value()
	if query == "" {
		m.results = make([]fuzzy.Match, len(m.items))
		for i, it := range m.items {
			m.results[i] = fuzzy.Match{Str: it.title, Index: i}
		}
		return
	}
	m.results = fuzzy.FindFrom(query, m.items)
}

func (m *Model) renderResults() string {
	if len(m.results) == 0 {
		return m.styles.Muted.Render("No results found.")
	}

	var lines []string
	for i, match := range m.results {
		line := " " + highlight(match, m.styles.Match)
		if i == m.cursor {
			line = m.styles.PaletteHover.Width(m.vp.Width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// fuzzy.Source
func (it items) String(i int) string { return it[i].title }
func (it items) Len() int            { return len(it) }

func highlight(match fuzzy.Match, style lipgloss.Style) string {
	runes := []rune(match.Str)
	var b strings.Builder
	for i, r := range runes {
		if contains(match.MatchedIndexes, i) {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
