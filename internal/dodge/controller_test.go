package dodge

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Controller", func() {
	container := Size{Width: 800, Height: 600}
	target := Size{Width: 200, Height: 80}

	var (
		measured bool
		c        *Controller
	)

	BeforeEach(func() {
		measured = true
		c = NewController(MeasureFunc(func() (Size, Size, bool) {
			return container, target, measured
		}), WithRand(rand.New(rand.NewPCG(1, 2)).Float64))
	})

	Describe("Reposition", func() {
		It("should place the target at the initial spot", func() {
			Expect(c.Reposition()).To(BeTrue())
			Expect(c.Position()).To(Equal(Position{X: 480, Y: 260}))
		})

		It("should keep the zero position while unmeasured", func() {
			measured = false
			Expect(c.Reposition()).To(BeFalse())
			Expect(c.Position()).To(Equal(Position{}))
		})

		It("should restore the centered spot after an evade", func() {
			c.Reposition()
			c.Evade()
			Expect(c.Reposition()).To(BeTrue())
			Expect(c.Position()).To(Equal(Position{X: 480, Y: 260}))
		})
	})

	Describe("Evade", func() {
		It("should keep the previous position while unmeasured", func() {
			c.Reposition()
			measured = false
			Expect(c.Evade()).To(BeFalse())
			Expect(c.Position()).To(Equal(Position{X: 480, Y: 260}))
		})

		It("should land inside the padded area on every call", func() {
			for range 500 {
				Expect(c.Evade()).To(BeTrue())
				pos := c.Position()
				Expect(pos.X).To(BeNumerically(">=", 20))
				Expect(pos.X).To(BeNumerically("<=", 580))
				Expect(pos.Y).To(BeNumerically(">=", 20))
				Expect(pos.Y).To(BeNumerically("<=", 500))
			}
		})

		It("should cover the whole valid range over many trials", func() {
			minX, maxX, minY, maxY := 1e9, -1e9, 1e9, -1e9
			for range 5000 {
				c.Evade()
				pos := c.Position()
				minX, maxX = min(minX, pos.X), max(maxX, pos.X)
				minY, maxY = min(minY, pos.Y), max(maxY, pos.Y)
			}
			Expect(minX).To(BeNumerically("~", 20, 5))
			Expect(maxX).To(BeNumerically("~", 580, 5))
			Expect(minY).To(BeNumerically("~", 20, 5))
			Expect(maxY).To(BeNumerically("~", 500, 5))
		})

		It("should read fresh sizes on every call", func() {
			small := Size{Width: 300, Height: 200}
			c = NewController(MeasureFunc(func() (Size, Size, bool) {
				return small, target, true
			}), WithRand(func() float64 { return 0.99 }))
			c.Evade()
			Expect(c.Position().X).To(BeNumerically("<=", 80))
			Expect(c.Position().Y).To(BeNumerically("<=", 100))
		})
	})

	Describe("Handle", func() {
		It("should relocate on every interaction kind", func() {
			draws := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
			c = NewController(Fixed(container, target), WithRand(func() float64 {
				r := draws[0]
				draws = draws[1:]
				return r
			}))

			var seen []Position
			for _, i := range []Interaction{PointerEnter, PointerMove, PointerDown, TouchStart} {
				Expect(c.Handle(i)).To(BeTrue())
				seen = append(seen, c.Position())
			}
			Expect(seen).To(HaveLen(4))
			Expect(seen[0]).NotTo(Equal(seen[1]))
			Expect(seen[2]).NotTo(Equal(seen[3]))
		})

		It("should ignore unknown interactions", func() {
			Expect(c.Handle(Interaction(99))).To(BeFalse())
		})
	})

	Describe("Attach", func() {
		It("should reposition on mount and on each resize notification", func() {
			var l Listeners
			release := c.Attach(&l)
			defer release()

			Expect(c.Position()).To(Equal(Position{X: 480, Y: 260}))

			c.Evade()
			container = Size{Width: 1000, Height: 400}
			DeferCleanup(func() { container = Size{Width: 800, Height: 600} })
			l.Notify()
			Expect(c.Position()).To(Equal(Position{X: 580, Y: 160}))
		})

		It("should leave no listener behind after release", func() {
			var l Listeners
			release := c.Attach(&l)
			Expect(l.Len()).To(Equal(1))
			release()
			release()
			Expect(l.Len()).To(BeZero())
		})

		It("should drop the previous subscription when attached again", func() {
			var first, second Listeners
			c.Attach(&first)
			release := c.Attach(&second)
			Expect(first.Len()).To(BeZero())
			Expect(second.Len()).To(Equal(1))

			release()
			Expect(second.Len()).To(BeZero())
		})

		It("should not subscribe once detached", func() {
			var l Listeners
			c.Detach()
			release := c.Attach(&l)
			Expect(l.Len()).To(BeZero())
			Expect(c.Position()).To(Equal(Position{}))
			release()
		})
	})

	Describe("Detach", func() {
		It("should freeze the position for good", func() {
			var l Listeners
			c.Attach(&l)
			c.Detach()

			before := c.Position()
			Expect(c.Evade()).To(BeFalse())
			Expect(c.Reposition()).To(BeFalse())
			l.Notify()
			Expect(c.Position()).To(Equal(before))
			Expect(l.Len()).To(BeZero())
			Expect(c.Detached()).To(BeTrue())
		})
	})
})

var _ = Describe("Interaction", func() {
	It("should round trip DOM event names", func() {
		for _, i := range []Interaction{PointerEnter, PointerMove, PointerDown, TouchStart} {
			parsed, ok := ParseInteraction(i.String())
			Expect(ok).To(BeTrue())
			Expect(parsed).To(Equal(i))
		}
	})

	It("should reject click", func() {
		_, ok := ParseInteraction("click")
		Expect(ok).To(BeFalse())
	})
})
