package ui

import "github.com/charmbracelet/lipgloss"

var heartArt = []string{
	"  .:::.   .:::.  ",
	" :::::::.::::::: ",
	" ::::::::::::::: ",
	" ':::::::::::::' ",
	"   ':::::::::'   ",
	"     ':::::'     ",
	"       ':'       ",
}

func (m *mainModel) renderAnswered() string {
	art := m.styles.Heart.Render(lipgloss.JoinVertical(lipgloss.Center, heartArt...))

	card := m.styles.Card.
		BorderForeground(m.styles.Heart.GetForeground()).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			art,
			"",
			m.styles.Subtitle.Render("love meter"),
			m.meter.View(),
		))

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Heart.Render("♥"),
		"",
		m.styles.Title.Render("Good choice Doctorsaab"),
		"",
		card,
	)
	return lipgloss.Place(m.width, max(0, m.height-TOP_BAR_HEIGHT-FOOTER_HEIGHT), lipgloss.Center, lipgloss.Center, content)
}
