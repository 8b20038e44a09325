package prompt

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/flavono123/valentine/internal/dodge"
)

const (
	GLIDE_FPS  = 60
	GLIDE_FREQ = 15.0 // settles in about 0.3s
	GLIDE_DAMP = 1.0  // critically damped, no overshoot past the padding

	GLIDE_EPSILON = 0.5
)

// glide eases the rendered position toward the logical one. It never feeds
// back into the controller.
type glide struct {
	spring  harmonica.Spring
	pos     dodge.Position
	vel     dodge.Position
	target  dodge.Position
	running bool
}

func newGlide() *glide {
	return &glide{
		spring: harmonica.NewSpring(harmonica.FPS(GLIDE_FPS), GLIDE_FREQ, GLIDE_DAMP),
	}
}

func (g *glide) snap(p dodge.Position) {
	g.pos = p
	g.target = p
	g.vel = dodge.Position{}
}

// retarget starts a frame loop unless one is already running.
func (g *glide) retarget(p dodge.Position) tea.Cmd {
	g.target = p
	if g.running || g.settled() {
		return nil
	}
	g.running = true
	return frame()
}

// step advances one frame and reports whether the glide came to rest.
func (g *glide) step() bool {
	g.pos.X, g.vel.X = g.spring.Update(g.pos.X, g.vel.X, g.target.X)
	g.pos.Y, g.vel.Y = g.spring.Update(g.pos.Y, g.vel.Y, g.target.Y)

	if g.settled() {
		g.snap(g.target)
		g.running = false
		return true
	}
	return false
}

func (g *glide) settled() bool {
	return math.Abs(g.pos.X-g.target.X) < GLIDE_EPSILON &&
		math.Abs(g.pos.Y-g.target.Y) < GLIDE_EPSILON &&
		math.Abs(g.vel.X) < GLIDE_EPSILON &&
		math.Abs(g.vel.Y) < GLIDE_EPSILON
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/GLIDE_FPS, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
