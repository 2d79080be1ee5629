package playback

import (
	"slices"
	"sync"
	"time"
)

// Clock schedules periodic callbacks.
type Clock interface {
	Now() time.Time
	// Every calls fn once per period until the returned stop function is
	// called. Stop is idempotent and may be called from within fn.
	Every(period time.Duration, fn func()) (stop func())
}

// SystemClock is a [Clock] backed by [time.Ticker].
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Every(period time.Duration, fn func()) func() {
	t := time.NewTicker(period)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
			close(quit)
		})
	}
}

// ManualClock is a [Clock] whose time only moves on [ManualClock.Advance].
// Callbacks run synchronously on the goroutine calling Advance.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	period time.Duration
	next   time.Time
	fn     func()
}

// NewManualClock returns a manual clock set to an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) Every(period time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{period: period, next: m.now.Add(period), fn: fn}
	m.timers = append(m.timers, t)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.timers = slices.DeleteFunc(m.timers, func(x *manualTimer) bool { return x == t })
	}
}

// Advance moves time forward by d, firing every callback that falls due on
// the way in time order.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var due *manualTimer
		for _, t := range m.timers {
			if t.next.After(target) {
				continue
			}
			if due == nil || t.next.Before(due.next) {
				due = t
			}
		}
		if due == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = due.next
		due.next = due.next.Add(due.period)
		fn := due.fn
		m.mu.Unlock()

		fn()
	}
}

// Active reports how many periodic callbacks are scheduled.
func (m *ManualClock) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
