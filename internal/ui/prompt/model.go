package prompt

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/valentine/internal/dodge"
	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/keymap"
	"github.com/flavono123/valentine/internal/ui/theme"
)

const (
	CONTAINER_MAX_ROWS = 16 // 320px at the default cell height

	YES_LABEL = "Yes! ♥"
	NO_LABEL  = "No :("
	HINT      = `Hint: The "No" button is a bit shy... ;)`
)

type focus uint

const (
	focusYes focus = iota
	focusNo
)

type Options struct {
	Styles     *theme.Styles
	CellWidth  float64
	CellHeight float64
	// Rand overrides the uniform source used for dodging.
	Rand func() float64
}

// Model is the question screen: a Yes button that answers and a No button
// that never lets itself be pressed.
type Model struct {
	keys   keymap.PromptKeyMap
	styles *theme.Styles
	cellW  float64
	cellH  float64

	width  int
	height int
	rows   int

	ctrl     *dodge.Controller
	glide    *glide
	placed   bool
	hovering bool
	focus    focus
	answered bool
}

// NewModel mounts the No button controller on listeners. The subscription
// lives until Detach.
func NewModel(opts Options, listeners *dodge.Listeners) *Model {
	m := &Model{
		keys:   keymap.NewPromptKeyMap(),
		styles: opts.Styles,
		cellW:  opts.CellWidth,
		cellH:  opts.CellHeight,
		glide:  newGlide(),
		focus:  focusYes,
	}

	var ctrlOpts []dodge.Option
	if opts.Rand != nil {
		ctrlOpts = append(ctrlOpts, dodge.WithRand(opts.Rand))
	}
	m.ctrl = dodge.NewController(dodge.MeasureFunc(m.measure), ctrlOpts...)
	m.ctrl.Attach(listeners)

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.glide.step() {
			return m, nil
		}
		return m, frame()
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if m.answered {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Focus):
			if m.focus == focusYes {
				m.focus = focusNo
			} else {
				m.focus = focusYes
			}
		case key.Matches(msg, m.keys.Activate):
			if m.focus == focusYes {
				return m, m.answer()
			}
			// Keyboard presses skip hover dodging. Move anyway and hand
			// focus back so the prompt never gets stuck.
			m.focus = focusYes
			if m.ctrl.Evade() {
				return m, m.Sync()
			}
		}
	}

	return m, nil
}

func (m *Model) View() string {
	header := m.renderHeader()

	canvas := blankCanvas(m.width, m.rows)
	yes, no := m.yesRect(), m.noRect()
	overlay(canvas, m.yesView(), yes.x, yes.y, m.width)
	overlay(canvas, m.noView(), no.x, no.y, m.width)

	hint := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Hint.Render(HINT))

	parts := []string{header}
	parts = append(parts, canvas...)
	parts = append(parts, hint)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize gives the prompt its share of the window. Resize listeners must
// be notified afterwards, then Sync called.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.rows = max(0, min(CONTAINER_MAX_ROWS, height-m.headerHeight()-1))
}

// Sync moves the rendered No button toward the controller position. The
// first measured placement is shown without a glide.
func (m *Model) Sync() tea.Cmd {
	target := m.ctrl.Position()
	if !m.placed {
		if _, _, ok := m.measure(); !ok {
			return nil
		}
		m.placed = true
		m.glide.snap(target)
		return nil
	}
	return m.glide.retarget(target)
}

// Detach freezes the No button for good.
func (m *Model) Detach() {
	m.answered = true
	m.ctrl.Detach()
}

// Position is where the No button is logically, in pixels.
func (m *Model) Position() dodge.Position {
	return m.ctrl.Position()
}

// Displayed is where the No button is drawn right now, in pixels.
func (m *Model) Displayed() dodge.Position {
	return m.glide.pos
}

func (m *Model) Help() []key.Binding {
	return m.keys.ShortHelp()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.answered {
		return nil
	}

	x, y := msg.X, msg.Y-m.headerHeight()
	overNo := m.noRect().contains(x, y)

	// The No button is drawn on top, so it gets the event first and
	// swallows it: nothing underneath may see a press that landed on it.
	switch msg.Action {
	case tea.MouseActionMotion:
		if !overNo {
			m.hovering = false
			return nil
		}
		kind := dodge.PointerMove
		if !m.hovering {
			kind = dodge.PointerEnter
		}
		m.hovering = true
		return m.evade(kind)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if overNo {
			return m.evade(dodge.PointerDown)
		}
		if m.yesRect().contains(x, y) {
			return m.answer()
		}
	}
	return nil
}

func (m *Model) evade(kind dodge.Interaction) tea.Cmd {
	if !m.ctrl.Handle(kind) {
		return nil
	}
	return m.Sync()
}

func (m *Model) answer() tea.Cmd {
	if m.answered {
		return nil
	}
	m.answered = true
	m.ctrl.Detach()
	return func() tea.Msg {
		return event.AnsweredMsg{}
	}
}

func (m *Model) measure() (dodge.Size, dodge.Size, bool) {
	if m.width <= 0 || m.rows <= 0 {
		return dodge.Size{}, dodge.Size{}, false
	}
	no := m.noView()
	container := dodge.Size{
		Width:  float64(m.width) * m.cellW,
		Height: float64(m.rows) * m.cellH,
	}
	target := dodge.Size{
		Width:  float64(lipgloss.Width(no)) * m.cellW,
		Height: float64(lipgloss.Height(no)) * m.cellH,
	}
	return container, target, true
}

func (m *Model) yesRect() rect {
	yes := m.yesView()
	w, h := lipgloss.Width(yes), lipgloss.Height(yes)
	return rect{
		x: max(0, m.width/2-w),
		y: max(0, (m.rows-h)/2),
		w: w,
		h: h,
	}
}

func (m *Model) noRect() rect {
	no := m.noView()
	pos := m.glide.pos
	return rect{
		x: int(math.Floor(pos.X / m.cellW)),
		y: int(math.Floor(pos.Y / m.cellH)),
		w: lipgloss.Width(no),
		h: lipgloss.Height(no),
	}
}

func (m *Model) yesView() string {
	if m.focus == focusYes {
		return m.styles.YesFocused.Render(YES_LABEL)
	}
	return m.styles.Yes.Render(YES_LABEL)
}

func (m *Model) noView() string {
	if m.focus == focusNo || m.hovering {
		return m.styles.NoFocused.Render(NO_LABEL)
	}
	return m.styles.No.Render(NO_LABEL)
}

func (m *Model) renderHeader() string {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Heart.Render("♥"),
		"",
		m.styles.Title.Render("Will you be my Valentine?"),
		m.styles.Subtitle.Render("Choose wisely... ♥"),
		"",
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lines)
}

func (m *Model) headerHeight() int {
	return lipgloss.Height(m.renderHeader())
}
