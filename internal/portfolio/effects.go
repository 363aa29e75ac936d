package portfolio

import (
	"math"
	"time"
)

// Effect is work the host performs after a reduction. Effects are fire-and-forget.
type Effect interface{ effect() }

// Easing maps animation progress in [0,1] to eased progress in [0,1].
type Easing int

const (
	EaseLinear Easing = iota
	EaseInOutCubic
)

// At evaluates the curve at t, clamping t to [0,1].
func (e Easing) At(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	switch e {
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

// ScrollEffect asks the host to animate the page to OffsetY pixels.
type ScrollEffect struct {
	OffsetY  float64
	Duration time.Duration
	Easing   Easing
}

// SubmitEffect asks the host to POST the payload to the contact endpoint.
type SubmitEffect struct {
	Payload ContactForm
}

// OpenURLEffect asks the host to open URL in a new browsing context.
type OpenURLEffect struct {
	URL string
}

func (ScrollEffect) effect()  {}
func (SubmitEffect) effect()  {}
func (OpenURLEffect) effect() {}
