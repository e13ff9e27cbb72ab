package viewer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// zoomDuration is how long, in seconds, a zoom step takes to settle.
const zoomDuration = 0.2

// Zoom is an integer-ish magnification that eases between steps. Each Step
// doubles or halves the target; Update advances the animation.
type Zoom struct {
	level    float32
	target   float32
	min, max float32
	tween    *gween.Tween
}

// NewZoom starts at initial, clamped to [min, max].
func NewZoom(initial, min, max float32) *Zoom {
	z := &Zoom{min: min, max: max}
	z.level = z.clamp(initial)
	z.target = z.level
	return z
}

// Level is the current magnification.
func (z *Zoom) Level() float32 { return z.level }

// Target is the magnification the animation is heading to.
func (z *Zoom) Target() float32 { return z.target }

// Step doubles the target for each positive step and halves it for each
// negative one. A step that would leave [min, max] is clamped.
func (z *Zoom) Step(steps int) {
	t := z.target
	for ; steps > 0; steps-- {
		t *= 2
	}
	for ; steps < 0; steps++ {
		t /= 2
	}
	t = z.clamp(t)
	if t == z.target {
		return
	}
	z.target = t
	z.tween = gween.New(z.level, t, zoomDuration, ease.OutQuad)
}

// Update advances the animation by dt seconds and returns the new level.
func (z *Zoom) Update(dt float32) float32 {
	if z.tween == nil {
		return z.level
	}
	val, done := z.tween.Update(dt)
	z.level = val
	if done {
		z.level = z.target
		z.tween = nil
	}
	return z.level
}

func (z *Zoom) clamp(v float32) float32 {
	if v < z.min {
		return z.min
	}
	if v > z.max {
		return z.max
	}
	return v
}
