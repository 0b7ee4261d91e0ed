package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"studyhub/internal/view"
)

const DefaultConfettiCount = 100

// DefaultPalette is the fixed set of particle colours
var DefaultPalette = []string{"#f94144", "#f3722c", "#f9c74f", "#90be6d", "#43aa8b", "#577590"}

// Confetti is a Celebrator emitting randomly coloured, positioned and
// delayed particles. It is safe for concurrent use.
type Confetti struct {
	count   int
	palette []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewConfetti creates a confetti effect. A non-positive count or empty
// palette falls back to the defaults; a nil src seeds from the clock.
func NewConfetti(count int, palette []string, src rand.Source) *Confetti {
	if count <= 0 {
		count = DefaultConfettiCount
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &Confetti{
		count:   count,
		palette: palette,
		rng:     rand.New(src),
	}
}

// Celebrate appends the particles to container
func (c *Confetti) Celebrate(container *view.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < c.count; i++ {
		container.Append(c.particle())
	}
}

// Clear removes any particles left in container
func (c *Confetti) Clear(container *view.Element) {
	container.Clear()
}

func (c *Confetti) particle() *view.Element {
	color := c.palette[c.rng.IntN(len(c.palette))]
	left := c.rng.Float64() * 100
	delay := c.rng.Float64() * 2
	duration := 2 + c.rng.Float64()*3

	return view.NewElement("div", "", "confetti").
		SetAttr("data-color", color).
		SetAttr("style", fmt.Sprintf(
			"left: %.1f%%; background-color: %s; animation-delay: %.2fs; animation-duration: %.2fs;",
			left, color, delay, duration))
}
