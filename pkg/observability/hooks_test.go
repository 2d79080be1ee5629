package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Session hooks
	s := NoopSessionHooks{}
	s.OnSelect(ctx, "BFS", 3)
	s.OnApply(ctx, "BFS", 2)
	s.OnExport(ctx, "svg", 1024, time.Millisecond, nil)

	// Playback hooks
	p := NoopPlaybackHooks{}
	p.OnStart(ctx, "run-1", 4)
	p.OnFrame(ctx, "run-1", 0, false)
	p.OnDone(ctx, "run-1", 5, 1600*time.Millisecond)
	p.OnCancel(ctx, "run-1", 2)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "localhost:8080", "/run")
	h.OnResponse(ctx, "POST", "localhost:8080", "/run", 200, time.Second)
	h.OnError(ctx, "POST", "localhost:8080", "/run", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}
	if _, ok := Playback().(NoopPlaybackHooks); !ok {
		t.Error("Playback() should return NoopPlaybackHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	customPlayback := &testPlaybackHooks{}
	SetPlaybackHooks(customPlayback)
	if Playback() != customPlayback {
		t.Error("SetPlaybackHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Playback().(NoopPlaybackHooks); !ok {
		t.Error("Reset() should restore NoopPlaybackHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlaybackHooks{}
	SetPlaybackHooks(custom)

	// Setting nil should be ignored
	SetPlaybackHooks(nil)

	if Playback() != custom {
		t.Error("SetPlaybackHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSessionHooks struct{ NoopSessionHooks }
type testPlaybackHooks struct{ NoopPlaybackHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
