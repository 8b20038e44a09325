package theme

import "github.com/charmbracelet/lipgloss"

// Styles are bound to one renderer so that sessions served over SSH get the
// color profile of the remote terminal.
type Styles struct {
	r *lipgloss.Renderer

	Heart    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hint     lipgloss.Style
	Footer   lipgloss.Style
	Gear     lipgloss.Style
	Status   lipgloss.Style

	Yes        lipgloss.Style
	YesFocused lipgloss.Style
	No         lipgloss.Style
	NoFocused  lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Muted       lipgloss.Style
	Mono        lipgloss.Style
	Label       lipgloss.Style
	Action      lipgloss.Style
	ActionFocus lipgloss.Style
	Success     lipgloss.Style
	Note        lipgloss.Style

	Palette      lipgloss.Style
	PaletteHover lipgloss.Style
	Match        lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	button := r.NewStyle().
		Bold(true).
		Padding(0, 3).
		Border(lipgloss.RoundedBorder())
	action := r.NewStyle().Padding(0, 1).Foreground(Subtext1()).Background(Surface0())

	return &Styles{
		r: r,

		Heart:    r.NewStyle().Foreground(Red()).Bold(true),
		Title:    r.NewStyle().Foreground(Rosewater()).Bold(true),
		Subtitle: r.NewStyle().Foreground(Subtext1()),
		Hint:     r.NewStyle().Foreground(Overlay1()).Italic(true),
		Footer:   r.NewStyle().Foreground(Overlay0()),
		Gear:     r.NewStyle().Foreground(Overlay1()),
		Status:   r.NewStyle().Foreground(Red()),

		Yes:        button.BorderForeground(Pink()).Foreground(Base()).Background(Red()),
		YesFocused: button.BorderForeground(Rosewater()).Foreground(Base()).Background(Maroon()),
		No:         button.BorderForeground(Surface1()).Foreground(Subtext0()),
		NoFocused:  button.BorderForeground(Overlay1()).Foreground(Text()),

		Dialog: r.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Pink()).
			Padding(0, 1),
		DialogTitle: r.NewStyle().Bold(true).Foreground(Text()),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Surface1()).
			Padding(0, 1),
		CardTitle:   r.NewStyle().Bold(true).Foreground(Text()),
		Muted:       r.NewStyle().Foreground(Overlay1()),
		Mono:        r.NewStyle().Foreground(Blue()),
		Label:       r.NewStyle().Bold(true).Foreground(Subtext1()),
		Action:      action,
		ActionFocus: action.Foreground(Base()).Background(Pink()),
		Success:     r.NewStyle().Foreground(Green()),
		Note:        r.NewStyle().Foreground(Blue()),

		Palette:      r.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(Pink()),
		PaletteHover: r.NewStyle().Background(Overlay0()),
		Match:        r.NewStyle().Foreground(Pink()),
	}
}

func (s *Styles) Renderer() *lipgloss.Renderer {
	return s.r
}
