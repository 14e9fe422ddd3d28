// Package player plays transition animation descriptions against live
// views.
//
// The lifecycle core hands a completed [transition.Animation] to a player
// and returns immediately; the player interpolates each step's states over
// the declared duration and invokes a completion callback. Containers must
// not detach animated content before that callback fires.
//
// Hosts with their own frame loop can skip the built-in ticker entirely and
// drive [Apply] once per frame.
package player

import (
	"sync"
	"time"

	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/surface"
	"github.com/go-vessel/vessel/pkg/transition"
)

// defaultFrameInterval approximates a 60Hz frame loop.
const defaultFrameInterval = 16 * time.Millisecond

// Resolver maps animation participant identities to views. Returning nil
// skips the participant, which covers content released mid-flight.
type Resolver func(id string) surface.View

// Apply writes the animation's state at linear progress t onto the views
// the resolver yields. Progress is clamped to [0, 1] and eased through the
// animation's curve.
func Apply(anim transition.Animation, resolve Resolver, t float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	eased := transition.CurveFunc(anim.Curve)(t)

	for _, step := range anim.Steps {
		view := resolve(step.Participant)
		if view == nil {
			continue
		}
		state := step.Start.Lerp(step.End, eased)
		view.SetFrame(state.Frame)
		view.SetAlpha(state.Alpha)
	}
}

// Player starts playbacks of animation descriptions.
type Player struct {
	// FrameInterval is the delay between interpolation steps.
	// Zero selects the 16ms default.
	FrameInterval time.Duration
	// Clock is the playback time source. Nil selects system time.
	Clock Clock
}

// New creates a player with default frame interval and clock.
func New() *Player {
	return &Player{}
}

// Play starts playing anim. The initial states are applied synchronously;
// interpolation then runs on a playback goroutine until the duration
// elapses, when onComplete fires exactly once. A zero or negative duration
// completes synchronously before Play returns.
//
// The completion callback runs on the playback goroutine; hosts with a
// dedicated interaction thread must trampoline back onto it.
func (p *Player) Play(anim transition.Animation, resolve Resolver, onComplete func()) *Playback {
	clock := p.Clock
	if clock == nil {
		clock = realClock{}
	}
	interval := p.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	pb := &Playback{
		anim:       anim,
		resolve:    resolve,
		onComplete: onComplete,
		clock:      clock,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	Apply(anim, resolve, 0)

	if anim.Duration <= 0 {
		Apply(anim, resolve, 1)
		pb.complete()
		close(pb.done)
		return pb
	}

	pb.start = clock.Now()
	go pb.run(interval)
	return pb
}

// Playback is one in-flight animation.
type Playback struct {
	anim       transition.Animation
	resolve    Resolver
	onComplete func()
	clock      Clock
	start      time.Time

	mu        sync.Mutex
	stopped   bool
	completed bool

	stop chan struct{}
	done chan struct{}
}

// Done is closed when the playback finishes or is stopped.
func (pb *Playback) Done() <-chan struct{} {
	return pb.done
}

// Completed reports whether the playback ran to the end of its duration.
func (pb *Playback) Completed() bool {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.completed
}

// Stop cancels the playback. Views keep their last applied state and the
// completion callback is suppressed: whether to detach or rewind the
// participants is the container's decision. Safe to call repeatedly.
func (pb *Playback) Stop() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.stopped || pb.completed {
		return
	}
	pb.stopped = true
	close(pb.stop)
}

func (pb *Playback) run(interval time.Duration) {
	defer errors.Recover("player.Playback.run")
	defer close(pb.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-pb.stop:
			return
		case <-ticker.C:
			elapsed := pb.clock.Now().Sub(pb.start)
			progress := float64(elapsed) / float64(pb.anim.Duration)
			if progress >= 1 {
				Apply(pb.anim, pb.resolve, 1)
				pb.complete()
				return
			}
			Apply(pb.anim, pb.resolve, progress)
		}
	}
}

// complete marks the playback finished and fires the callback once.
func (pb *Playback) complete() {
	pb.mu.Lock()
	if pb.stopped || pb.completed {
		pb.mu.Unlock()
		return
	}
	pb.completed = true
	callback := pb.onComplete
	pb.mu.Unlock()

	if callback != nil {
		callback()
	}
}
