package palette

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/theme"
)

var _ = Describe("Palette", func() {
	var m *Model

	BeforeEach(func() {
		m = NewModel(theme.NewStyles(nil))
		m.Update(ShowMsg{})
	})

	It("should list every action on an empty query", func() {
		Expect(m.Visible()).To(BeTrue())
		Expect(m.results).To(HaveLen(len(defaultItems)))
		Expect(m.View()).To(ContainSubstring("Custom domain setup"))
	})

	It("should narrow the list with a fuzzy query", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
		Expect(m.results).To(HaveLen(1))
		Expect(m.items[m.results[0].Index].action).To(Equal(event.Quit))
	})

	It("should say so when nothing matches", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzzz")})
		Expect(m.View()).To(ContainSubstring("No results found."))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
	})

	It("should move the cursor within the results", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		Expect(m.cursor).To(Equal(2))
		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		Expect(m.cursor).To(Equal(1))
		for range 10 {
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
		}
		Expect(m.cursor).To(Equal(len(defaultItems) - 1))
	})

	It("should reset on hide", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("copy")})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		Expect(cmd()).To(Equal(HideMsg{}))

		m.Update(HideMsg{})
		Expect(m.Visible()).To(BeFalse())
		Expect(m.results).To(HaveLen(len(defaultItems)))
	})

	It("should ignore keys while hidden", func() {
		m.Update(HideMsg{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd).To(BeNil())
	})
})
