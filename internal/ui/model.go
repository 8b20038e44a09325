package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/valentine/internal/dodge"
	"github.com/flavono123/valentine/internal/domain"
	"github.com/flavono123/valentine/internal/ui/dialog"
	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/keymap"
	"github.com/flavono123/valentine/internal/ui/palette"
	"github.com/flavono123/valentine/internal/ui/prompt"
	"github.com/flavono123/valentine/internal/ui/theme"
)

type sessionState uint

const (
	promptingView sessionState = iota
	answeredView
)

type Options struct {
	Settings  domain.Settings
	Clipboard domain.Clipboard
	// AppURL is where this deployment is reachable.
	AppURL string
	// Renderer is nil for a local terminal.
	Renderer *lipgloss.Renderer

	CellWidth  float64
	CellHeight float64
	Rand       func() float64
}

type mainModel struct {
	state  sessionState
	keys   keymap.KeyMap
	styles *theme.Styles
	help   help.Model

	width  int
	height int

	// resize subscriptions live as long as this model
	listeners dodge.Listeners

	prompt  *prompt.Model
	panel   *domain.Panel
	dialog  *dialog.Model
	palette *palette.Model
	meter   progress.Model

	status     string
	statusKind event.Status

	closed bool
}

func InitModel(opts Options) *mainModel {
	styles := theme.NewStyles(opts.Renderer)

	panel := domain.NewPanel(opts.Settings, opts.Clipboard, opts.AppURL)
	m := &mainModel{
		state:  promptingView,
		keys:   keymap.NewKeyMap(),
		styles: styles,
		help:   help.New(),
		panel:  panel,
		meter: progress.New(
			progress.WithGradient(theme.LattePink, theme.LatteMaroon),
			progress.WithoutPercentage(),
			progress.WithSpringOptions(METER_SPRING_FREQ, METER_SPRING_CRITICAL_DMP),
		),
		palette: palette.NewModel(styles),
	}
	m.prompt = prompt.NewModel(prompt.Options{
		Styles:     styles,
		CellWidth:  opts.CellWidth,
		CellHeight: opts.CellHeight,
		Rand:       opts.Rand,
	}, &m.listeners)

	if err := panel.Load(); err != nil {
		log.Printf("failed to load settings: %v", err)
		m.status = err.Error()
		m.statusKind = event.Warn
	}
	m.dialog = dialog.NewModel(panel, styles)

	return m
}

func (m *mainModel) Init() tea.Cmd {
	if m.status != "" {
		return event.ShowStatus()
	}
	return nil
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prompt.SetSize(msg.Width, msg.Height-TOP_BAR_HEIGHT-FOOTER_HEIGHT)
		m.listeners.Notify()
		cmds = append(cmds, m.prompt.Sync())
		m.meter.Width = min(METER_MAX_WIDTH, max(0, msg.Width-10))
		m.help.Width = msg.Width

		_, dCmd := m.dialog.Update(msg)
		_, pCmd := m.palette.Update(msg)
		cmds = append(cmds, dCmd, pCmd)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case event.AnsweredMsg:
		cmds = append(cmds, m.answer())
	case event.OpenSettingsMsg:
		m.panel.SetOpen(true)
		cmds = append(cmds, m.dialog.Focus())
	case event.CloseSettingsMsg:
		m.panel.SetOpen(false)
	case event.ClearCopiedMsg:
		_, dCmd := m.dialog.Update(msg)
		cmds = append(cmds, dCmd)
	case event.PickActionMsg:
		cmds = append(cmds, m.pick(msg.Action))
	case event.SetStatusMsg:
		m.status = msg.Message
		m.statusKind = msg.Status
		cmds = append(cmds, event.ShowStatus())
	case event.HideStatusMsg:
		m.status = ""
	case progress.FrameMsg:
		pm, pCmd := m.meter.Update(msg)
		m.meter = pm.(progress.Model)
		cmds = append(cmds, pCmd)
	case palette.ShowMsg, palette.HideMsg:
		_, pCmd := m.palette.Update(msg)
		cmds = append(cmds, pCmd)
	default:
		_, sCmd := m.prompt.Update(msg)
		_, dCmd := m.dialog.Update(msg)
		_, pCmd := m.palette.Update(msg)
		cmds = append(cmds, sCmd, dCmd, pCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *mainModel) View() string {
	if m.palette.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.palette.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	if m.panel.Open() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			m.dialog.View(),
		)
	}

	var body string
	if m.state == answeredView {
		body = m.renderAnswered()
	} else {
		body = m.prompt.View()
	}
	bodyHeight := max(0, m.height-TOP_BAR_HEIGHT-FOOTER_HEIGHT)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, body),
		m.renderFooter(),
	)
}

// Answered reports whether Yes has been chosen.
func (m *mainModel) Answered() bool {
	return m.state == answeredView
}

// Close releases the resize subscription. It runs on every quit path and
// is safe to call again from main after the program returns.
func (m *mainModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.prompt.Detach()
}

func (m *mainModel) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

// answer is the one-way Prompting -> Answered transition.
func (m *mainModel) answer() tea.Cmd {
	if m.state != promptingView {
		return nil
	}
	m.state = answeredView
	m.prompt.Detach()
	return m.meter.SetPercent(1.0)
}

func (m *mainModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.palette.Visible() {
		_, cmd := m.palette.Update(msg)
		return cmd
	}
	if m.panel.Open() {
		_, cmd := m.dialog.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.ShowPalette):
		return palette.Show
	case key.Matches(msg, m.keys.Settings):
		return event.OpenSettingsCmd
	}

	if m.state == promptingView {
		_, cmd := m.prompt.Update(msg)
		return cmd
	}
	return nil
}

func (m *mainModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.palette.Visible() {
		return nil
	}
	if m.panel.Open() {
		_, cmd := m.dialog.Update(msg)
		return cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.overGear(msg.X, msg.Y) {
		return event.OpenSettingsCmd
	}

	if m.state == promptingView {
		local := msg
		local.Y -= TOP_BAR_HEIGHT
		_, cmd := m.prompt.Update(local)
		return cmd
	}
	return nil
}

func (m *mainModel) pick(action event.Action) tea.Cmd {
	switch action {
	case event.OpenSettings:
		return event.OpenSettingsCmd
	case event.OpenDocs:
		m.panel.SetOpen(true)
		cmd := m.dialog.Focus()
		m.dialog.ShowDocs()
		return cmd
	case event.CopyAppURL:
		if !m.panel.Copy(domain.ItemCurrentURL, m.panel.AppURL()) {
			return func() tea.Msg {
				return event.SetStatusMsg{Message: "Failed to copy app URL", Status: event.Warn}
			}
		}
		return tea.Batch(
			event.ClearCopiedAfter(domain.CopiedFor, domain.ItemCurrentURL),
			func() tea.Msg {
				return event.SetStatusMsg{Message: "Copied " + m.panel.AppURL(), Status: event.Info}
			},
		)
	case event.Quit:
		return m.quit()
	}
	return nil
}

func (m *mainModel) overGear(x, y int) bool {
	w := lipgloss.Width(GEAR_LABEL)
	return y == 0 && x >= m.width-w-1 && x < m.width-1
}

func (m *mainModel) renderTopBar() string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.styles.Gear.Render(GEAR_LABEL)+" ")
}

func (m *mainModel) renderFooter() string {
	var line string
	switch {
	case m.status != "" && m.statusKind == event.Info:
		line = m.styles.Success.Render(m.status)
	case m.status != "":
		line = m.styles.Status.Render(m.status)
	case m.state == promptingView:
		line = m.help.ShortHelpView(append(m.prompt.Help(), m.keys.ShortHelp()...))
	default:
		line = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Footer.Render(CREDITS)),
	)
}
