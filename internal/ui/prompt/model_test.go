package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/valentine/internal/dodge"
	"github.com/flavono123/valentine/internal/ui/event"
	"github.com/flavono123/valentine/internal/ui/theme"
)

// header is 5 rows; the No button is 13x3 cells (130x60 px), Yes is 14x3.
var _ = Describe("Model", func() {
	var (
		listeners dodge.Listeners
		m         *Model
	)

	resize := func(w, h int) tea.Cmd {
		m.SetSize(w, h)
		listeners.Notify()
		return m.Sync()
	}

	settle := func() {
		for range 1000 {
			_, cmd := m.Update(frameMsg{})
			if cmd == nil {
				return
			}
		}
		Fail("glide never settled")
	}

	BeforeEach(func() {
		listeners = dodge.Listeners{}
		m = NewModel(Options{
			Styles:     theme.NewStyles(nil),
			CellWidth:  10,
			CellHeight: 20,
			Rand:       func() float64 { return 0.5 },
		}, &listeners)
	})

	It("should subscribe to resize notifications on mount", func() {
		Expect(listeners.Len()).To(Equal(1))
	})

	It("should stay at the origin until measured", func() {
		Expect(m.Sync()).To(BeNil())
		Expect(m.Position()).To(Equal(dodge.Position{}))
	})

	It("should place No right of center once sized", func() {
		Expect(resize(80, 22)).To(BeNil())
		Expect(m.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
		Expect(m.Displayed()).To(Equal(m.Position()))
	})

	It("should recenter on resize and glide there", func() {
		resize(80, 22)
		Expect(resize(60, 22)).NotTo(BeNil())
		Expect(m.Position()).To(Equal(dodge.Position{X: 380, Y: 130}))

		settle()
		Expect(m.Displayed()).To(Equal(m.Position()))
	})

	It("should recenter instead of dodging after a dodge and a resize", func() {
		resize(80, 22)
		m.Update(tea.MouseMsg{X: 50, Y: 12, Action: tea.MouseActionMotion})
		Expect(m.Position()).NotTo(Equal(dodge.Position{X: 480, Y: 130}))

		resize(80, 22)
		Expect(m.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
	})

	It("should dodge when the pointer enters No", func() {
		resize(80, 22)
		_, cmd := m.Update(tea.MouseMsg{X: 50, Y: 12, Action: tea.MouseActionMotion})
		Expect(cmd).NotTo(BeNil())
		Expect(m.Position()).To(Equal(dodge.Position{X: 335, Y: 130}))
	})

	It("should ignore pointer motion elsewhere", func() {
		resize(80, 22)
		_, cmd := m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionMotion})
		Expect(cmd).To(BeNil())
		Expect(m.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
	})

	It("should swallow a press on No without answering", func() {
		resize(80, 22)
		_, cmd := m.Update(tea.MouseMsg{X: 50, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).NotTo(BeAssignableToTypeOf(event.AnsweredMsg{}))
		Expect(m.Position().X).To(Equal(335.0))
	})

	It("should answer on a press on Yes", func() {
		resize(80, 22)
		_, cmd := m.Update(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(event.AnsweredMsg{}))

		_, cmd = m.Update(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(cmd).To(BeNil())
	})

	It("should stop following resizes as soon as Yes is pressed", func() {
		resize(80, 22)
		m.Update(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		Expect(listeners.Len()).To(BeZero())

		resize(60, 22)
		Expect(m.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
	})

	It("should answer from the keyboard", func() {
		resize(80, 22)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd()).To(Equal(event.AnsweredMsg{}))
	})

	It("should move No and refocus Yes when No is pressed from the keyboard", func() {
		resize(80, 22)
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(m.Position().X).To(Equal(335.0))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(cmd()).To(Equal(event.AnsweredMsg{}))
	})

	It("should stop moving once detached", func() {
		resize(80, 22)
		m.Detach()
		Expect(listeners.Len()).To(BeZero())

		m.Update(tea.MouseMsg{X: 50, Y: 12, Action: tea.MouseActionMotion})
		resize(60, 22)
		Expect(m.Position()).To(Equal(dodge.Position{X: 480, Y: 130}))
	})

	It("should render both buttons inside the container", func() {
		resize(80, 22)
		view := m.View()
		Expect(view).To(ContainSubstring("Will you be my Valentine?"))
		Expect(view).To(ContainSubstring(YES_LABEL))
		Expect(view).To(ContainSubstring(NO_LABEL))
		Expect(view).To(ContainSubstring("a bit shy"))
	})
})

var _ = Describe("Overlay", func() {
	It("should splice a block at a column", func() {
		canvas := blankCanvas(10, 2)
		overlay(canvas, "ab\ncd", 3, 0, 10)
		Expect(canvas).To(Equal([]string{"   ab     ", "   cd     "}))
	})

	It("should clip blocks that hang off the edges", func() {
		canvas := blankCanvas(6, 1)
		overlay(canvas, "abcd", -2, 0, 6)
		overlay(canvas, "wxyz", 4, 0, 6)
		overlay(canvas, "skip", 0, 3, 6)
		Expect(canvas).To(Equal([]string{"cd  wx"}))
	})
})
