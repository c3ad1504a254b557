package backdrop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionKeyframes(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		wantX   float64
	}{
		{0, 0},
		{Period / 4, 50},
		{Period / 2, 100},
		{3 * Period / 4, 50},
		{Period, 0},
		{Period + Period/2, 100},
	}
	for _, tt := range tests {
		x, y := Position(tt.elapsed)
		assert.InDelta(t, tt.wantX, x, 1e-9, "elapsed %s", tt.elapsed)
		assert.Equal(t, 50.0, y)
	}
}

func TestPositionEasesAtSegmentEnds(t *testing.T) {
	step := Period / 100
	early, _ := Position(step)
	mid1, _ := Position(Period/4 - step/2)
	mid2, _ := Position(Period/4 + step/2)
	assert.Less(t, early, mid2-mid1, "movement should be slower near a keyframe than mid-segment")
}

func TestPositionStaysInRange(t *testing.T) {
	for d := time.Duration(0); d < 2*Period; d += 250 * time.Millisecond {
		x, _ := Position(d)
		assert.GreaterOrEqual(t, x, 0.0)
		assert.LessOrEqual(t, x, 100.0)
	}
}

func TestCSS(t *testing.T) {
	css := CSS()
	assert.Contains(t, css, "@keyframes backdrop-drift {")
	assert.Contains(t, css, "0% { background-position: 0% 50%; }")
	assert.Contains(t, css, "50% { background-position: 100% 50%; }")
	assert.Contains(t, css, "100% { background-position: 0% 50%; }")
	assert.Contains(t, css, "animation: backdrop-drift 18s ease-in-out infinite;")
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var frames atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- Loop(ctx, 5*time.Millisecond, func(Frame) {
			if frames.Add(1) == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
	assert.GreaterOrEqual(t, frames.Load(), int32(3))
}

func TestLoopFirstFrameImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var first Frame
	err := Loop(ctx, time.Hour, func(f Frame) {
		first = f
		cancel()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, time.Duration(0), first.Elapsed)
	assert.Equal(t, 0.0, first.X)
}

func TestLoopRejectsBadInterval(t *testing.T) {
	err := Loop(context.Background(), 0, func(Frame) {})
	assert.Error(t, err)
}
