// Package scrollsync keeps follower views aligned with a driver view.
//
// It is a sibling adapter to the content lifecycle core, not part of it:
// it registers against a surface's change-notification capability and
// mirrors the driver's displacement onto its followers, instead of
// intercepting the surface's mutators. Parallax effects fall out of a
// non-unit factor.
package scrollsync

import (
	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/geometry"
	"github.com/go-vessel/vessel/pkg/surface"
)

// Synchronizer mirrors a driver view's movement onto follower views.
//
// Displacements are measured against the frames captured when the
// synchronizer was created. Close detaches it from the surface; it also
// detaches itself when the driver leaves the surface.
type Synchronizer struct {
	driver      surface.View
	followers   []surface.View
	driverBase  geometry.Offset
	followBase  []geometry.Offset
	factor      float64
	unsubscribe func()
}

// New creates a synchronizer on an observable surface.
//
// The follower set must not be empty and the driver must not follow
// itself: both are reported as sync misuse rather than silently tolerated.
// factor scales mirrored displacement; 1 keeps followers lock-step with
// the driver.
func New(surf surface.Observable, driver surface.View, factor float64, followers ...surface.View) (*Synchronizer, error) {
	const op = "scrollsync.New"
	if driver == nil {
		return nil, errors.Newf(op, errors.KindSync, "nil driver view")
	}
	if len(followers) == 0 {
		return nil, errors.Newf(op, errors.KindSync, "empty follower set")
	}
	for _, f := range followers {
		if f == nil {
			return nil, errors.Newf(op, errors.KindSync, "nil follower view")
		}
		if f == driver {
			return nil, errors.Newf(op, errors.KindSync, "driver cannot follow itself")
		}
	}

	s := &Synchronizer{
		driver:     driver,
		followers:  followers,
		driverBase: driver.Frame().Origin(),
		factor:     factor,
	}
	s.followBase = make([]geometry.Offset, len(followers))
	for i, f := range followers {
		s.followBase[i] = f.Frame().Origin()
	}
	s.unsubscribe = surf.AddObserver(s)
	return s, nil
}

// Close stops mirroring. Safe to call repeatedly.
func (s *Synchronizer) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// ViewInserted implements surface.Observer.
func (s *Synchronizer) ViewInserted(view surface.View) {}

// ViewRemoved detaches the synchronizer when its driver leaves the surface.
func (s *Synchronizer) ViewRemoved(view surface.View) {
	if view == s.driver {
		s.Close()
	}
}

// ViewFrameChanged mirrors driver displacement onto the followers.
// Follower movement is ignored, so mirroring cannot feed back on itself.
func (s *Synchronizer) ViewFrameChanged(view surface.View) {
	if view != s.driver {
		return
	}
	origin := s.driver.Frame().Origin()
	delta := geometry.Offset{
		X: (origin.X - s.driverBase.X) * s.factor,
		Y: (origin.Y - s.driverBase.Y) * s.factor,
	}
	for i, f := range s.followers {
		frame := f.Frame()
		size := frame.Size()
		f.SetFrame(geometry.RectFromLTWH(
			s.followBase[i].X+delta.X,
			s.followBase[i].Y+delta.Y,
			size.Width,
			size.Height,
		))
	}
}
