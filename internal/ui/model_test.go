package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/valentine/internal/clipboard"
	"github.com/flavono123/valentine/internal/dodge"
	"github.com/flavono123/valentine/internal/domain"
	"github.com/flavono123/valentine/internal/store"
	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/palette"
)

// Rows are screen rows: the top bar takes row 0, so the prompt's own
// coordinates are shifted by one.
var _ = Describe("Main model", func() {
	var (
		m      *mainModel
		copied []string
		fail   bool
	)

	send := func(msg tea.Msg) tea.Cmd {
		_, cmd := m.Update(msg)
		return cmd
	}

	// drain runs cmd and feeds back any message that is not a tick.
	drain := func(cmd tea.Cmd) {
		if cmd == nil {
			return
		}
		switch msg := cmd().(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				if c == nil {
					continue
				}
				if inner := c(); inner != nil {
					if _, ok := inner.(event.AnsweredMsg); ok {
						send(inner)
					}
				}
			}
		case event.AnsweredMsg, event.OpenSettingsMsg, event.CloseSettingsMsg:
			send(msg)
		}
	}

	BeforeEach(func() {
		copied = nil
		fail = false
		m = InitModel(Options{
			Settings: store.NewMemory(),
			Clipboard: clipboard.Func(func(text string) error {
				if fail {
					return errors.New("no clipboard")
				}
				copied = append(copied, text)
				return nil
			}),
			AppURL:     "https://valentine.example.net",
			CellWidth:  10,
			CellHeight: 20,
			Rand:       func() float64 { return 0.5 },
		})
		send(tea.WindowSizeMsg{Width: 80, Height: 25})
	})

	It("should place No once the window size is known", func() {
		Expect(m.prompt.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
		Expect(m.listeners.Len()).To(Equal(1))
	})

	It("should dodge the pointer in screen coordinates", func() {
		send(tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionMotion})
		Expect(m.prompt.Position()).To(Equal(dodge.Position{X: 335, Y: 130}))
	})

	It("should recenter No on resize", func() {
		send(tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionMotion})
		send(tea.WindowSizeMsg{Width: 60, Height: 25})
		Expect(m.prompt.Position()).To(Equal(dodge.Position{X: 380, Y: 130}))
	})

	Context("when Yes is pressed", func() {
		BeforeEach(func() {
			drain(send(tea.MouseMsg{X: 30, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
		})

		It("should switch to the answered screen", func() {
			Expect(m.Answered()).To(BeTrue())
			Expect(m.View()).To(ContainSubstring("Good choice Doctorsaab"))
			Expect(m.View()).To(ContainSubstring(CREDITS))
		})

		It("should release the resize subscription", func() {
			Expect(m.listeners.Len()).To(BeZero())
		})

		It("should not move No afterwards", func() {
			send(tea.WindowSizeMsg{Width: 60, Height: 25})
			send(tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionMotion})
			Expect(m.prompt.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
		})

		It("should ignore a second answer", func() {
			Expect(send(event.AnsweredMsg{})).To(BeNil())
			Expect(m.Answered()).To(BeTrue())
		})
	})

	It("should release the subscription on quit", func() {
		cmd := send(tea.KeyMsg{Type: tea.KeyCtrlC})
		Expect(cmd()).To(Equal(tea.QuitMsg{}))
		Expect(m.listeners.Len()).To(BeZero())

		m.Close()
		Expect(m.listeners.Len()).To(BeZero())
	})

	It("should open settings from the gear", func() {
		drain(send(tea.MouseMsg{X: 75, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
		Expect(m.panel.Open()).To(BeTrue())
		Expect(m.View()).To(ContainSubstring("Custom Domain Setup"))
	})

	It("should route keys to the dialog while it is open", func() {
		drain(send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}))
		Expect(m.panel.Open()).To(BeTrue())

		cmd := send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		if cmd != nil {
			Expect(cmd()).NotTo(Equal(tea.QuitMsg{}))
		}
		Expect(m.panel.Input()).To(Equal("q"))

		drain(send(tea.KeyMsg{Type: tea.KeyEsc}))
		Expect(m.panel.Open()).To(BeFalse())
	})

	It("should not dodge while the dialog covers the prompt", func() {
		send(event.OpenSettingsMsg{})
		send(tea.MouseMsg{X: 50, Y: 13, Action: tea.MouseActionMotion})
		Expect(m.prompt.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
	})

	It("should show the palette on alt+k", func() {
		cmd := send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k"), Alt: true})
		Expect(cmd()).To(Equal(palette.ShowMsg{}))
		send(palette.ShowMsg{})
		Expect(m.View()).To(ContainSubstring("Custom domain setup"))
	})

	Context("when an action is picked", func() {
		It("should copy the app URL", func() {
			cmd := send(event.PickActionMsg{Action: event.CopyAppURL})
			Expect(cmd).NotTo(BeNil())
			Expect(copied).To(Equal([]string{"https://valentine.example.net"}))
			Expect(m.panel.Copied()).To(Equal(domain.ItemCurrentURL))
		})

		It("should not mark a failed copy", func() {
			fail = true
			send(event.PickActionMsg{Action: event.CopyAppURL})
			Expect(m.panel.Copied()).To(BeEmpty())
		})

		It("should open the documentation", func() {
			send(event.PickActionMsg{Action: event.OpenDocs})
			Expect(m.panel.Open()).To(BeTrue())
		})

		It("should quit", func() {
			cmd := send(event.PickActionMsg{Action: event.Quit})
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(m.listeners.Len()).To(BeZero())
		})
	})

	It("should show and hide status messages", func() {
		send(event.SetStatusMsg{Message: "boom", Status: event.Error})
		Expect(m.View()).To(ContainSubstring("boom"))
		send(event.HideStatusMsg{})
		Expect(m.View()).NotTo(ContainSubstring("boom"))
	})
})
