// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about sessions, playback runs, and solver calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages never
// import a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlaybackHooks(&myPlaybackHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Playback().OnStart(ctx, id, length)
//	// ... tick ...
//	observability.Playback().OnFrame(ctx, id, index, final)
//
// Hooks are called synchronously, sometimes while the caller holds a lock,
// so implementations must return quickly and must not call back into the
// emitting package.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from input selection and result handling.
type SessionHooks interface {
	// OnSelect records a new input selection and the parsed entity count.
	OnSelect(ctx context.Context, algorithm string, entities int)

	// OnApply records a solver result being turned into a playback.
	OnApply(ctx context.Context, algorithm string, steps int)

	// OnExport records a frame being written in some output format.
	OnExport(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Playback Hooks
// =============================================================================

// PlaybackHooks receives events from trace playback.
type PlaybackHooks interface {
	// OnStart records a new playback run of length steps.
	OnStart(ctx context.Context, id string, length int)

	// OnFrame records a rendered frame.
	OnFrame(ctx context.Context, id string, index int, final bool)

	// OnDone records a run that reached its terminal frame.
	OnDone(ctx context.Context, id string, frames int, duration time.Duration)

	// OnCancel records a run stopped before its terminal frame.
	OnCancel(ctx context.Context, id string, index int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSelect(context.Context, string, int)                       {}
func (NoopSessionHooks) OnApply(context.Context, string, int)                        {}
func (NoopSessionHooks) OnExport(context.Context, string, int, time.Duration, error) {}

// NoopPlaybackHooks is a no-op implementation of PlaybackHooks.
type NoopPlaybackHooks struct{}

func (NoopPlaybackHooks) OnStart(context.Context, string, int)               {}
func (NoopPlaybackHooks) OnFrame(context.Context, string, int, bool)         {}
func (NoopPlaybackHooks) OnDone(context.Context, string, int, time.Duration) {}
func (NoopPlaybackHooks) OnCancel(context.Context, string, int)              {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks  SessionHooks  = NoopSessionHooks{}
	playbackHooks PlaybackHooks = NoopPlaybackHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetPlaybackHooks registers custom playback hooks.
// This should be called once at application startup before any playback starts.
func SetPlaybackHooks(h PlaybackHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		playbackHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Playback returns the registered playback hooks.
func Playback() PlaybackHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return playbackHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	playbackHooks = NoopPlaybackHooks{}
	httpHooks = NoopHTTPHooks{}
}
