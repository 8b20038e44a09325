package dodge

import "math/rand/v2"

// Controller owns the position of one evasive target.
//
// Sizes are never cached: every computation asks the Measurer again because
// the layout may change between renders. When the Measurer reports that the
// layout is not ready, the computation is skipped and the previous position
// stays in place.
type Controller struct {
	measure Measurer
	rand    func() float64

	pos     Position
	release func()
	done    bool
}

type Option func(*Controller)

// WithRand replaces the uniform [0, 1) source used by Evade.
func WithRand(fn func() float64) Option {
	return func(c *Controller) {
		c.rand = fn
	}
}

func NewController(m Measurer, opts ...Option) *Controller {
	c := &Controller{
		measure: m,
		rand:    rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Position() Position {
	return c.pos
}

// Reposition moves the target back to its initial right-of-center spot.
// It runs on mount and on every resize notification.
func (c *Controller) Reposition() bool {
	if c.done {
		return false
	}
	container, target, ok := c.measure.Measure()
	if !ok {
		return false
	}
	c.pos = InitialPosition(container, target)
	return true
}

// Evade jumps to a fresh random spot inside the padded container.
// Every call relocates; there is no debouncing.
func (c *Controller) Evade() bool {
	if c.done {
		return false
	}
	container, target, ok := c.measure.Measure()
	if !ok {
		return false
	}
	c.pos = EvadePosition(container, target, c.rand(), c.rand())
	return true
}

// Handle reacts to an interaction on the target. All interaction kinds
// evade; the host must still swallow the event so it never activates the
// target or reaches ancestor handlers.
func (c *Controller) Handle(i Interaction) bool {
	switch i {
	case PointerEnter, PointerMove, PointerDown, TouchStart:
		return c.Evade()
	}
	return false
}

// Attach places the target and subscribes it to resize notifications.
// The returned release function unsubscribes; Detach calls it as well.
// Attaching again drops the previous subscription. A detached controller
// never subscribes.
func (c *Controller) Attach(l *Listeners) (release func()) {
	if c.done {
		return func() {}
	}
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.Reposition()
	remove := l.Add(func() { c.Reposition() })
	c.release = remove
	return remove
}

// Detach releases the resize subscription and freezes the position.
// It is the terminal step once the prompt has been answered.
func (c *Controller) Detach() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
	c.done = true
}

func (c *Controller) Detached() bool {
	return c.done
}
