package snowfall

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Driver runs the frame loop for one State.
//
// Frame and Draw belong to the render goroutine. Resize may be called from any
// goroutine: the regenerated State is built aside and swapped in as one unit.
type Driver struct {
	state    atomic.Pointer[State]
	tick     atomic.Int64 // last frame timestamp in ns, -1 before the first frame
	frames   atomic.Int64
	disposed atomic.Bool
}

// NewDriver creates a driver around s.
func NewDriver(s *State) *Driver {
	d := &Driver{}
	d.state.Store(s)
	d.tick.Store(-1)
	return d
}

// Frame consumes one frame timestamp (monotonic, nanoseconds). The first call
// only records the timestamp; later calls update the flakes by the elapsed
// whole milliseconds.
func (d *Driver) Frame(frameNanos int64) {
	if d.disposed.Load() {
		return
	}
	prev := d.tick.Swap(frameNanos)
	d.frames.Add(1)
	// 第一帧只记录时间戳
	if prev < 0 {
		return
	}
	// 截断为整毫秒，时间倒退或不足 1ms 时不更新
	elapsed := time.Duration(frameNanos - prev).Milliseconds()
	if elapsed <= 0 {
		return
	}
	d.state.Load().Update(elapsed)
}

// ResetClock forgets the last timestamp so the next Frame only records it.
// Hosts call it when resuming after a pause to avoid one huge step.
func (d *Driver) ResetClock() {
	d.tick.Store(-1)
}

// Resize regenerates every flake for size, even when size is unchanged.
func (d *Driver) Resize(size CanvasSize) {
	if d.disposed.Load() {
		return
	}
	cur := d.state.Load()
	next := cur.Resize(size)
	d.state.Store(next)
	log.Printf("[Driver] Resized %s canvas %s -> %s: %d flakes", cur.AnimType(), cur.Size(), size, next.Len())
}

// Draw draws the current State.
func (d *Driver) Draw(surface Surface) {
	if d.disposed.Load() {
		return
	}
	d.state.Load().Draw(surface)
}

// State returns the State currently being animated.
func (d *Driver) State() *State {
	return d.state.Load()
}

// Frames returns how many frame timestamps have been consumed.
func (d *Driver) Frames() int64 {
	return d.frames.Load()
}

// Dispose detaches the driver; later Frame, Resize and Draw calls do nothing.
func (d *Driver) Dispose() {
	if d.disposed.Swap(true) {
		return
	}
	log.Printf("[Driver] Disposed after %d frames", d.frames.Load())
}

// Disposed reports whether Dispose has been called.
func (d *Driver) Disposed() bool {
	return d.disposed.Load()
}

// Run consumes timestamps from clock until ctx is done, clock is closed or the
// driver is disposed. redraw, if not nil, is called after every frame on the
// same goroutine.
func (d *Driver) Run(ctx context.Context, clock <-chan int64, redraw func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts, ok := <-clock:
			if !ok {
				return nil
			}
			d.Frame(ts)
			if d.disposed.Load() {
				return nil
			}
			if redraw != nil {
				redraw()
			}
		}
	}
}

// Ticker produces monotonic frame timestamps at the given interval until ctx
// is done. The channel is closed when ticking stops.
func Ticker(ctx context.Context, interval time.Duration) <-chan int64 {
	out := make(chan int64)
	go func() {
		defer close(out)
		start := time.Now()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case out <- int64(now.Sub(start)):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
