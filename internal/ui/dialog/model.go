package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/valentine/docs"
	"github.com/flavono123/valentine/internal/domain"
	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/keymap"
	"github.com/flavono123/valentine/internal/ui/theme"
)

const (
	DIALOG_MAX_WIDTH    = 84
	DIALOG_HEIGHT_RATIO = 0.9 // max-h 90vh
	DIALOG_CHROME       = 5   // border 2 + title 1 + help 1 + gap 1

	INPUT_PLACEHOLDER = "example.com or app.example.com"
)

// focusable kinds
const (
	kindInput = iota
	kindSave
	kindCopy
	kindDocs
)

type focusable struct {
	kind  int
	item  string // copy item id
	value string // text to copy
}

// Model is the custom domain dialog. Its state lives in a domain.Panel so
// the same rules back every front end.
type Model struct {
	panel  *domain.Panel
	keys   keymap.DialogKeyMap
	styles *theme.Styles

	input textinput.Model
	vp    viewport.Model
	help  help.Model

	cursor   int
	showDocs bool

	width  int
	height int
}

func NewModel(panel *domain.Panel, styles *theme.Styles) *Model {
	ti := textinput.New()
	ti.Placeholder = INPUT_PLACEHOLDER
	ti.Prompt = "› "
	ti.CharLimit = 253
	ti.SetValue(panel.Input())
	ti.PromptStyle = styles.Muted
	ti.TextStyle = styles.Mono

	return &Model{
		panel:  panel,
		keys:   keymap.NewDialogKeyMap(),
		styles: styles,
		input:  ti,
		vp:     viewport.New(0, 0),
		help:   help.New(),
		cursor: 1, // the domain input
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus is called when the dialog opens.
func (m *Model) Focus() tea.Cmd {
	m.showDocs = false
	m.cursor = 1
	m.input.SetValue(m.panel.Input())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setViewSize(msg)
	case event.ClearCopiedMsg:
		m.panel.ClearCopied(msg.Item)
	case tea.MouseMsg:
		vm, vCmd := m.vp.Update(msg)
		m.vp = vm
		cmds = append(cmds, vCmd)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			if m.showDocs {
				m.showDocs = false
				m.vp.GotoTop()
				return m, nil
			}
			m.input.Blur()
			return m, event.CloseSettingsCmd
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, m.syncInputFocus()
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, m.syncInputFocus()
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate()
		}

		if m.onInput() && !m.showDocs {
			im, iCmd := m.input.Update(msg)
			m.input = im
			m.panel.SetInput(m.input.Value())
			cmds = append(cmds, iCmd)
		} else {
			vm, vCmd := m.vp.Update(msg)
			m.vp = vm
			cmds = append(cmds, vCmd)
		}
	default:
		im, iCmd := m.input.Update(msg)
		m.input = im
		cmds = append(cmds, iCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	title := m.styles.DialogTitle.Render("◎ Custom Domain Setup")
	if m.showDocs {
		title = m.styles.DialogTitle.Render("◎ Custom Domain Documentation")
		m.vp.SetContent(m.styles.Renderer().NewStyle().Width(m.contentWidth()).Render(docs.CustomDomain))
	} else {
		m.vp.SetContent(m.renderContent())
	}

	return m.styles.Dialog.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.vp.View(),
			m.help.View(m.keys),
		),
	)
}

func (m *Model) ShowDocs() {
	m.showDocs = true
	m.vp.GotoTop()
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.width = min(DIALOG_MAX_WIDTH, msg.Width-4)
	m.height = int(float64(msg.Height) * DIALOG_HEIGHT_RATIO)
	m.vp.Width = max(0, m.width-4)
	m.vp.Height = max(1, m.height-DIALOG_CHROME)
	m.input.Width = max(10, m.vp.Width-16)
	m.help.Width = m.vp.Width
}

func (m *Model) contentWidth() int {
	return max(0, m.vp.Width)
}

func (m *Model) focusables() []focusable {
	items := []focusable{
		{kind: kindCopy, item: domain.ItemCurrentURL, value: m.panel.AppURL()},
		{kind: kindInput},
		{kind: kindSave},
	}
	if g, ok := m.panel.Guidance(); ok {
		for _, f := range g.Fields {
			items = append(items, focusable{kind: kindCopy, item: f.Item, value: f.Copy})
		}
	}
	return append(items, focusable{kind: kindDocs})
}

func (m *Model) move(delta int) {
	items := m.focusables()
	m.cursor = (m.cursor + delta + len(items)) % len(items)
}

func (m *Model) current() focusable {
	items := m.focusables()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	return items[m.cursor]
}

func (m *Model) onInput() bool {
	return m.current().kind == kindInput
}

func (m *Model) syncInputFocus() tea.Cmd {
	if m.onInput() {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) activate() tea.Cmd {
	if m.showDocs {
		return nil
	}

	cur := m.current()
	switch cur.kind {
	case kindInput, kindSave:
		m.panel.SetInput(m.input.Value())
		if err := m.panel.Save(); err != nil {
			return func() tea.Msg {
				return event.SetStatusMsg{Message: err.Error(), Status: event.Error}
			}
		}
		m.input.SetValue(m.panel.Input())
		m.input.CursorEnd()
	case kindCopy:
		if m.panel.Copy(cur.item, cur.value) {
			return event.ClearCopiedAfter(domain.CopiedFor, cur.item)
		}
	case kindDocs:
		m.ShowDocs()
	}
	return nil
}

func (m *Model) renderContent() string {
	cur := m.current()
	focused := func(f focusable) bool {
		return cur.kind == f.kind && cur.item == f.item
	}

	sections := []string{
		m.styles.Muted.Render("Connect your own domain to this application"),
		m.renderCard("Current Application URL",
			"Your app is currently accessible at this URL",
			m.renderCopyRow(m.panel.AppURL(), focusable{kind: kindCopy, item: domain.ItemCurrentURL}, focused),
		),
		m.renderInput(focused),
	}

	if g, ok := m.panel.Guidance(); ok {
		sections = append(sections, m.renderGuidance(g, focused))
	}

	docsLink := m.renderAction("↗ View Detailed Documentation", focused(focusable{kind: kindDocs}))
	sections = append(sections, m.renderCard("Need Help?", "", docsLink))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderInput(focused func(focusable) bool) string {
	lines := []string{
		m.styles.Label.Render("Your Custom Domain"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.input.View(),
			" ",
			m.renderAction("Save", focused(focusable{kind: kindSave})),
		),
		m.styles.Muted.Render("Enter the domain you want to use (e.g., myapp.com or valentine.myapp.com)"),
	}
	if saved := m.panel.Saved(); saved != "" {
		lines = append(lines, m.styles.Success.Render("✓ Domain saved: ")+m.styles.Mono.Render(saved))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{""}, lines...)...)
}

func (m *Model) renderGuidance(g domain.Guidance, focused func(focusable) bool) string {
	var rows []string
	if g.Note != "" {
		rows = append(rows, m.styles.Note.Width(m.cardWidth()).Render("Note: "+g.Note), "")
	}
	for _, f := range g.Fields {
		rows = append(rows,
			m.styles.Label.Render(f.Label),
			m.renderCopyRow(f.Value, focusable{kind: kindCopy, item: f.Item}, focused),
		)
		if f.Item == domain.ItemApexType && g.Hint != "" {
			rows = append(rows, m.styles.Muted.Width(m.cardWidth()).Render(g.Hint))
		}
	}

	rows = append(rows, "", m.styles.Label.Render("Next Steps:"))
	for i, step := range domain.NextSteps {
		rows = append(rows, m.styles.Muted.Width(m.cardWidth()).Render(fmt.Sprintf("%d. %s", i+1, step)))
	}

	return m.renderCard("DNS Configuration",
		"Add these DNS records at your domain registrar or DNS provider",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCopyRow(value string, f focusable, focused func(focusable) bool) string {
	mark := "⧉ copy"
	if m.panel.Copied() == f.item {
		mark = m.styles.Success.Render("✓ copied")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Mono.Render(value),
		"  ",
		m.renderAction(mark, focused(f)),
	)
}

func (m *Model) renderAction(label string, focused bool) string {
	if focused {
		return m.styles.ActionFocus.Render(label)
	}
	return m.styles.Action.Render(label)
}

func (m *Model) renderCard(title, desc, body string) string {
	lines := []string{m.styles.CardTitle.Render(title)}
	if desc != "" {
		lines = append(lines, m.styles.Muted.Width(m.cardWidth()).Render(desc))
	}
	lines = append(lines, body)
	return m.styles.Card.Width(m.cardWidth() + 2).Render(strings.Join(lines, "\n"))
}

// cardWidth is the text width inside a card.
func (m *Model) cardWidth() int {
	return max(20, m.contentWidth()-4)
}
