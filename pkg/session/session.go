// Package session ties input selection, solver results and playback to a
// single shared drawing surface.
//
// A [Session] mirrors one user working through one problem at a time:
//
//   - [Session.Select] parses the chosen input and draws it immediately.
//   - [Session.Apply] turns a solver result into a scene and plays it back,
//     redrawing the surface on every tick.
//   - [Session.Snapshot] reads the current frame and status at any time.
//
// Selecting new input or applying a new result always cancels the playback
// in progress first, so frames from an old run never land on the surface
// after the call returns. A solve started by [Session.Run] is dropped when
// another Select, Apply or Run happened while it was in flight.
//
// # Locking
//
// Session state (the selected input and scene) is guarded by one mutex and
// the surface by another. Playback frames only ever take the surface mutex,
// which keeps the order Session, Player, Controller, surface acyclic.
package session

import (
	"context"
	"sync"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/observability"
	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/render"
	"github.com/matzehuels/stepview/pkg/solver"
)

// Runner submits an input to a solver. [*solver.Client] implements it.
type Runner interface {
	Run(ctx context.Context, algo solver.Algorithm, filename string, input []byte) (*solver.Result, error)
}

// FrameEvent describes a frame just drawn by playback.
type FrameEvent struct {
	PlaybackID string
	Index      int
	Length     int
	Final      bool
	Status     string
	Output     string
	SVG        []byte
}

// Option configures a [Session].
type Option func(*Session)

// WithViewport sets the surface size and padding.
func WithViewport(v geom.Viewport) Option { return func(s *Session) { s.viewport = v } }

// WithPlayer sets the player runs are started on.
func WithPlayer(p *playback.Player) Option { return func(s *Session) { s.player = p } }

// WithOnFrame registers fn to be called after every playback frame.
// fn runs on the playback goroutine with the run's lock held and must not
// call back into the Session.
func WithOnFrame(fn func(FrameEvent)) Option { return func(s *Session) { s.onFrame = fn } }

// Session is a single-user viewer over one drawing surface.
type Session struct {
	viewport geom.Viewport
	player   *playback.Player
	onFrame  func(FrameEvent)

	mu        sync.Mutex
	gen       uint64 // bumped by every Select, Apply and Run
	algorithm solver.Algorithm
	filename  string
	text      string
	structure problem.Structure
	scene     render.Scene

	surfMu  sync.Mutex
	surface *canvas.SVG
	redraw  func(canvas.Surface)
	index   int
	status  string
	output  string
}

// New returns a session with a cleared surface.
func New(opts ...Option) *Session {
	s := &Session{viewport: geom.DefaultViewport()}
	for _, opt := range opts {
		opt(s)
	}
	if s.player == nil {
		s.player = playback.New()
	}
	s.surface = canvas.NewSVG(s.viewport)
	s.surface.Clear()
	s.redraw = func(c canvas.Surface) { c.Clear() }
	return s
}

// Viewport returns the surface geometry.
func (s *Session) Viewport() geom.Viewport { return s.viewport }

// Select cancels any playback, stores text as the input for algo, and draws
// its static view. The output text is cleared.
func (s *Session) Select(ctx context.Context, algo solver.Algorithm, filename, text string) error {
	if err := errors.ValidateInput([]byte(text)); err != nil {
		return err
	}
	kind := algo.Kind()
	if kind == 0 {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", algo)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.player.Cancel()
	s.gen++

	st := problem.Parse(kind, text)
	s.algorithm = algo
	s.filename = filename
	s.text = text
	s.structure = st
	s.scene = nil

	s.paint(func(c canvas.Surface) { render.Static(c, s.viewport, st) }, 0, "", "")
	observability.Session().OnSelect(ctx, string(algo), st.Len())
	return nil
}

// Selected reports the current input, if any.
func (s *Session) Selected() (solver.Algorithm, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.algorithm, s.text, s.structure != nil
}

// Apply cancels any playback and plays res over the selected input.
// ctx bounds the playback run, not just the call.
func (s *Session) Apply(ctx context.Context, res *solver.Result) (*playback.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.apply(ctx, res)
}

// apply starts playback of res. s.mu must be held.
func (s *Session) apply(ctx context.Context, res *solver.Result) (*playback.Controller, error) {
	s.player.Cancel()
	if s.structure == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input selected")
	}

	scene, err := render.NewScene(s.viewport, s.structure, res)
	if err != nil {
		s.paintOutput(errors.UserMessage(err))
		return nil, err
	}
	s.scene = scene
	observability.Session().OnApply(ctx, string(scene.Algorithm()), scene.Len())

	ctrl := s.player.Start(ctx, scene.Len(), func(f playback.Frame) {
		ev := s.drawFrame(scene, f)
		if s.onFrame != nil {
			s.onFrame(ev)
		}
	})
	return ctrl, nil
}

// Run submits the selected input through r and applies the result. Solver
// failures are shown as the output text and returned. If the session moved
// on while the solver was busy, the result is discarded with an
// [errors.ErrCodeSuperseded] error and nothing is drawn.
func (s *Session) Run(ctx context.Context, r Runner) (*playback.Controller, error) {
	s.mu.Lock()
	if s.structure == nil {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input selected")
	}
	s.player.Cancel()
	s.gen++
	gen, algo, filename, text := s.gen, s.algorithm, s.filename, s.text
	s.mu.Unlock()

	res, err := r.Run(ctx, algo, filename, []byte(text))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, errors.New(errors.ErrCodeSuperseded, "result for %s discarded: a newer input or run replaced it", filename)
	}
	if err != nil {
		s.paintOutput(errors.UserMessage(err))
		return nil, err
	}
	return s.apply(ctx, res)
}

// Cancel stops the playback in progress, leaving the last frame on the
// surface.
func (s *Session) Cancel() { s.player.Cancel() }

// Playback returns the most recent run, or nil.
func (s *Session) Playback() *playback.Controller { return s.player.Current() }

// drawFrame redraws frame f of scene. It runs under the controller lock and
// takes only the surface mutex.
func (s *Session) drawFrame(scene render.Scene, f playback.Frame) FrameEvent {
	k := f.Index
	status, output := scene.Status(k), scene.Output(k)
	svg := s.paint(func(c canvas.Surface) { scene.Draw(c, k) }, k, status, output)
	return FrameEvent{
		PlaybackID: f.ID,
		Index:      k,
		Length:     f.Length,
		Final:      f.Final,
		Status:     status,
		Output:     output,
		SVG:        svg,
	}
}

// paint makes draw the surface contents and returns the new SVG document.
func (s *Session) paint(draw func(canvas.Surface), index int, status, output string) []byte {
	s.surfMu.Lock()
	defer s.surfMu.Unlock()
	draw(s.surface)
	s.redraw = draw
	s.index = index
	s.status = status
	s.output = output
	return s.surface.Bytes()
}

func (s *Session) paintOutput(output string) {
	s.surfMu.Lock()
	defer s.surfMu.Unlock()
	s.output = output
}
