// Package backdrop describes the decorative drifting background composed
// behind some sections, and runs it as a cancellable repeating task.
package backdrop

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Period is the length of one full drift cycle.
const Period = 18 * time.Second

// Keyframes are the horizontal background positions, in percent, the drift
// passes through during one period. The vertical position stays at 50%.
var Keyframes = []float64{0, 100, 0}

// Frame is one sample of the animation.
type Frame struct {
	Elapsed time.Duration `json:"elapsed_ns"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
}

// Position returns the background position at elapsed time into the
// animation. Each keyframe segment is eased in and out.
func Position(elapsed time.Duration) (x, y float64) {
	segments := len(Keyframes) - 1
	phase := math.Mod(float64(elapsed), float64(Period)) / float64(Period)
	if phase < 0 {
		phase += 1
	}

	scaled := phase * float64(segments)
	i := int(scaled)
	if i >= segments {
		i = segments - 1
	}
	t := ease(scaled - float64(i))
	from, to := Keyframes[i], Keyframes[i+1]
	return from + (to-from)*t, 50
}

// ease is the sine ease-in-out curve over [0,1].
func ease(t float64) float64 {
	return 0.5 - math.Cos(math.Pi*t)/2
}

// Sample returns the frame at elapsed.
func Sample(elapsed time.Duration) Frame {
	x, y := Position(elapsed)
	return Frame{Elapsed: elapsed, X: x, Y: y}
}

// CSSName is the name of the keyframes rule emitted by CSS.
const CSSName = "backdrop-drift"

// CSS returns the @keyframes rule and the animation declaration for the
// drifting layer. Static pages use it in place of Loop.
func CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", CSSName)
	last := len(Keyframes) - 1
	for i, x := range Keyframes {
		pct := float64(i) / float64(last) * 100
		fmt.Fprintf(&b, "  %s { background-position: %s%% 50%%; }\n", trimFloat(pct)+"%", trimFloat(x))
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, ".backdrop__drift { animation: %s %ds ease-in-out infinite; }\n", CSSName, int(Period/time.Second))
	b.WriteString(".backdrop-live .backdrop__drift { animation: none; }\n")
	return b.String()
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

// Loop calls fn with a fresh frame every interval until ctx is done, then
// returns ctx.Err(). The first frame is delivered immediately.
func Loop(ctx context.Context, interval time.Duration, fn func(Frame)) error {
	if interval <= 0 {
		return fmt.Errorf("backdrop interval must be positive, got %s", interval)
	}
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(Sample(0))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			fn(Sample(now.Sub(start)))
		}
	}
}
