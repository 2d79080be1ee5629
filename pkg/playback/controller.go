package playback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/stepview/pkg/observability"
)

// State is the lifecycle state of a [Controller].
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Frame identifies one rendered frame of a run.
type Frame struct {
	// ID is the identifier of the run that drew the frame.
	ID string
	// Index is the reveal index, from 0 up to Length.
	Index int
	// Length is the trace length of the run.
	Length int
	// Final is set on the terminal frame, where Index >= Length.
	Final bool
}

// FrameFunc draws one frame. It is called with the controller's lock held
// and must not call back into the [Controller] or [Player].
type FrameFunc func(Frame)

// Controller is a single playback run. It owns its reveal index and its
// tick source; nothing else may advance or stop it except through Cancel.
type Controller struct {
	id      string
	length  int
	frame   FrameFunc
	ctx     context.Context
	clock   Clock
	started time.Time

	mu      sync.Mutex
	state   State
	index   int
	stop    func()
	release func() bool
	done    chan struct{}
}

func newController(ctx context.Context, clock Clock, length int, frame FrameFunc) *Controller {
	return &Controller{
		id:     uuid.NewString(),
		length: max(0, length),
		frame:  frame,
		ctx:    ctx,
		clock:  clock,
		done:   make(chan struct{}),
	}
}

// ID is a unique identifier for the run.
func (c *Controller) ID() string { return c.id }

// Len is the trace length the run was started with.
func (c *Controller) Len() int { return c.length }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Index returns the index of the most recently rendered frame.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Done is closed once the run is done or cancelled.
func (c *Controller) Done() <-chan struct{} { return c.done }

// Wait blocks until the run ends or ctx is done, and returns the state at
// that point.
func (c *Controller) Wait(ctx context.Context) (State, error) {
	select {
	case <-c.done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

// Cancel stops the run. It is a no-op unless the run is still running, so
// it is safe to call repeatedly. No frame is rendered after Cancel returns.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return
	}
	observability.Playback().OnCancel(c.ctx, c.id, c.index)
	c.finish(StateCancelled)
}

// begin renders frame 0 and, unless that is already the terminal frame,
// schedules the ticks.
func (c *Controller) begin(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.started = c.clock.Now()
	c.state = StateRunning
	observability.Playback().OnStart(c.ctx, c.id, c.length)

	c.render()
	if c.index >= c.length {
		c.complete()
		return
	}
	c.stop = c.clock.Every(interval, c.tick)
	c.release = context.AfterFunc(c.ctx, c.Cancel)
}

func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A tick may already be in flight when the run stops.
	if c.state != StateRunning {
		return
	}
	c.index++
	c.render()
	if c.index >= c.length {
		c.complete()
	}
}

func (c *Controller) render() {
	f := Frame{ID: c.id, Index: c.index, Length: c.length, Final: c.index >= c.length}
	c.frame(f)
	observability.Playback().OnFrame(c.ctx, c.id, f.Index, f.Final)
}

func (c *Controller) complete() {
	observability.Playback().OnDone(c.ctx, c.id, c.index+1, c.clock.Now().Sub(c.started))
	c.finish(StateDone)
}

func (c *Controller) finish(s State) {
	c.state = s
	if c.stop != nil {
		c.stop()
	}
	if c.release != nil {
		c.release()
	}
	close(c.done)
}
