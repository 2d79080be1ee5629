// Package playback replays a finite trace as a sequence of timed frames.
//
// A [Player] starts [Controller] runs. Each run renders frame 0 immediately,
// then one frame per tick with a strictly increasing index, until the index
// reaches the trace length. That last frame carries Final=true and the run
// moves to [StateDone]. A run can be cancelled at any time; once
// [Controller.Cancel] returns, the run never renders again.
//
// The player keeps at most one live run: [Player.Start] cancels the current
// run before starting the next, so two runs can never race to draw on the
// same surface.
//
// Time comes from a [Clock]. [SystemClock] ticks in real time; [ManualClock]
// only moves when told to, which makes tick-by-tick behaviour testable:
//
//	clock := playback.NewManualClock()
//	p := playback.New(playback.WithClock(clock))
//	run := p.Start(ctx, 4, func(f playback.Frame) { draw(f.Index) })
//	clock.Advance(1600 * time.Millisecond)
//	// run.State() == playback.StateDone
package playback
