package playback

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between two frames.
const DefaultInterval = 400 * time.Millisecond

// Player starts playback runs and keeps at most one of them alive.
type Player struct {
	clock    Clock
	interval time.Duration

	mu      sync.Mutex
	current *Controller
}

// Option configures a [Player].
type Option func(*Player)

// WithClock sets the clock ticks come from. The default is [SystemClock].
func WithClock(c Clock) Option { return func(p *Player) { p.clock = c } }

// WithInterval sets the tick period. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// New returns an idle player.
func New(opts ...Option) *Player {
	p := &Player{clock: SystemClock{}, interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Interval returns the tick period.
func (p *Player) Interval() time.Duration { return p.interval }

// Start cancels the current run, if any, then starts a run over a trace of
// length steps. Frame 0 is rendered before Start returns; a run of length 0
// is therefore already done when Start returns. Cancelling ctx cancels the
// run.
func (p *Player) Start(ctx context.Context, length int, frame FrameFunc) *Controller {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Cancel()
	}
	c := newController(ctx, p.clock, length, frame)
	p.current = c
	c.begin(p.interval)
	return c
}

// Cancel cancels the current run. It is safe to call when idle.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Cancel()
	}
}

// Current returns the most recently started run, or nil if none was started.
func (p *Player) Current() *Controller {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
