package content

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/geometry"
	"github.com/go-vessel/vessel/pkg/overlay"
	"github.com/go-vessel/vessel/pkg/surface"
	"github.com/go-vessel/vessel/pkg/transition"
)

// Handle wraps one presentable unit inserted into a container.
//
// The handle exclusively owns the unit's display lifecycle while it exists:
// it materializes the unit's view lazily on attach, restores the view's
// original geometry on detach so mutated display state never leaks back
// into a unit the caller may reuse, and caches one forward/reverse
// animation pair describing the unit's transition.
//
// A handle registers its unit on creation and unregisters it on Destroy.
// All methods must be called from the thread owning the view hierarchy.
type Handle struct {
	id        uuid.UUID
	unit      Unit
	container Container
	registry  *Registry

	style    transition.Style
	duration time.Duration

	view       surface.View
	target     surface.Surface
	attached   bool
	blocking   *overlay.BlockingOverlay
	savedFrame geometry.Rect
	savedAlpha float64

	cachedForward *transition.Animation
	cachedReverse *transition.Animation

	destroyed bool
}

// NewHandle takes ownership of unit for container in the default registry.
// It fails with an ownership-conflict error if the unit already belongs to
// a different container. No view is created.
//
// Use [transition.DefaultDuration] to animate with the style's configured
// default duration.
func NewHandle(unit Unit, container Container, style transition.Style, duration time.Duration) (*Handle, error) {
	return NewHandleIn(DefaultRegistry, unit, container, style, duration)
}

// NewHandleIn is NewHandle against an explicit registry.
func NewHandleIn(registry *Registry, unit Unit, container Container, style transition.Style, duration time.Duration) (*Handle, error) {
	if err := registry.Register(unit, container); err != nil {
		return nil, err
	}
	return &Handle{
		id:        uuid.New(),
		unit:      unit,
		container: container,
		registry:  registry,
		style:     style,
		duration:  duration,
	}, nil
}

// ID returns the handle's stable identity, used as the participant key in
// animation descriptions.
func (h *Handle) ID() string {
	return h.id.String()
}

// Unit returns the wrapped content unit.
func (h *Handle) Unit() Unit {
	return h.unit
}

// Container returns the owning container, or nil after Destroy.
func (h *Handle) Container() Container {
	return h.container
}

// Style returns the transition style chosen at construction.
func (h *Handle) Style() transition.Style {
	return h.style
}

// Duration returns the transition duration chosen at construction, which
// may be the [transition.DefaultDuration] sentinel.
func (h *Handle) Duration() time.Duration {
	return h.duration
}

// Attached reports whether the unit's view is currently in a surface.
func (h *Handle) Attached() bool {
	return h.attached
}

// View returns the unit's view if attached, nil otherwise. It never
// materializes the view: use AttachView when the view is actually needed,
// so expensive allocation happens exactly when the container decides.
func (h *Handle) View() surface.View {
	if !h.attached {
		return nil
	}
	return h.view
}

// AttachView materializes the unit's view and inserts it at the top of
// target's child ordering, capturing the view's frame and opacity for
// restoration on detach. If blockInteraction is true, a transparent
// blocking overlay is inserted immediately below the new view.
//
// Attaching an already attached handle is idempotent: the existing view is
// returned and the surface is left untouched, so repeated attach calls
// never duplicate the view.
func (h *Handle) AttachView(target surface.Surface, blockInteraction bool) (surface.View, error) {
	const op = "content.Handle.AttachView"
	if h.destroyed {
		return nil, h.stateError(op, "handle destroyed")
	}
	if h.attached {
		return h.view, nil
	}
	if target == nil {
		return nil, h.stateError(op, "nil target surface")
	}

	view := h.unit.MaterializeView()
	if view == nil {
		return nil, h.stateError(op, "unit materialized no view")
	}

	target.InsertAtTop(view)
	h.view = view
	h.target = target
	h.attached = true
	h.savedFrame = view.Frame()
	h.savedAlpha = view.Alpha()

	if blockInteraction {
		h.blocking = overlay.New(target.Bounds())
		h.blocking.AttachBelow(target, view)
	}
	return view, nil
}

// DetachView removes the unit's view and any blocking overlay from the
// surface and restores the frame and opacity captured at attach time,
// independent of what any animation mutated in between. No-op when
// detached.
//
// The handle drops its own reference to the view; whether the resource is
// destroyed or kept for reuse is the unit's and caller's policy.
func (h *Handle) DetachView() {
	if !h.attached {
		return
	}
	if h.blocking != nil {
		h.blocking.Detach()
		h.blocking = nil
	}
	h.target.Remove(h.view)
	h.view.SetFrame(h.savedFrame)
	h.view.SetAlpha(h.savedAlpha)
	h.view = nil
	h.target = nil
	h.attached = false
}

// ReleaseView forces detachment and releases the view resource: if the
// unit caches its view, it is told to drop it. Cached animation
// descriptions survive, since they reference handles, not raw views.
func (h *Handle) ReleaseView() {
	h.DetachView()
	if releaser, ok := h.unit.(ViewReleaser); ok {
		releaser.ReleaseView()
	}
}

// CreateTransitionAnimation builds and caches the animation that brings
// this handle's view into its shown state inside commonFrame using the
// handle's style and duration, while driving every handle in disappearing
// into the style's hidden state. The precise structural inverse is cached
// alongside and served by ReverseAnimation.
//
// Each call replaces the previously cached pair: cached animations encode
// absolute geometry, so they must be recreated whenever commonFrame or a
// participant's layout changes.
//
// Every participant must be attached; reading geometry through a detached
// handle fails with an invalid-state error.
func (h *Handle) CreateTransitionAnimation(disappearing []*Handle, commonFrame geometry.Rect) (*transition.Animation, error) {
	const op = "content.Handle.CreateTransitionAnimation"
	if !h.attached {
		return nil, h.stateError(op, "appearing view not attached")
	}

	participants := make([]transition.Participant, 0, len(disappearing))
	for _, other := range disappearing {
		if other == nil || !other.attached {
			return nil, h.stateError(op, "disappearing view not attached")
		}
		participants = append(participants, other.participant())
	}

	forward := transition.BuildForward(h.style, h.duration, h.participant(), participants, commonFrame)
	reverse := forward.Invert()
	h.cachedForward = &forward
	h.cachedReverse = &reverse
	return h.cachedForward, nil
}

// ReverseAnimation returns the reverse of the most recently created
// transition animation, or nil if none was created in the current geometry
// epoch. There is deliberately no forward accessor: forward animations
// must be created where they are played, when frames are known.
func (h *Handle) ReverseAnimation() *transition.Animation {
	return h.cachedReverse
}

// Destroy detaches the view and releases the unit's ownership entry.
// The handle must not be used afterwards.
func (h *Handle) Destroy() {
	if h.destroyed {
		return
	}
	h.DetachView()
	h.registry.Unregister(h.unit)
	h.container = nil
	h.cachedForward = nil
	h.cachedReverse = nil
	h.destroyed = true
}

// participant captures the handle's current shown state for the factory.
func (h *Handle) participant() transition.Participant {
	return transition.Participant{
		ID: h.id.String(),
		Shown: transition.State{
			Frame: h.view.Frame(),
			Alpha: h.view.Alpha(),
		},
	}
}

func (h *Handle) stateError(op, msg string) error {
	return &errors.VesselError{
		Op:        op,
		Kind:      errors.KindInvalidState,
		Err:       fmt.Errorf("%s", msg),
		Handle:    h.id.String(),
		Timestamp: time.Now(),
	}
}

// ViewResolver maps animation participant identities back to the views of
// the given handles, for handing a description to a player.
func ViewResolver(handles ...*Handle) func(id string) surface.View {
	return func(id string) surface.View {
		for _, h := range handles {
			if h != nil && h.ID() == id {
				return h.View()
			}
		}
		return nil
	}
}
