// Package surface defines the view-hierarchy abstraction consumed by the
// Vessel lifecycle core, plus an in-memory implementation for hosts and
// tests that have no native hierarchy.
//
// The core never walks or owns a hierarchy. It needs exactly three
// capabilities from a host toolkit: insert a child view at the top of the
// child ordering, insert a child immediately below another, and remove a
// child. Any concrete view type satisfying [View] can participate.
package surface

import "github.com/go-vessel/vessel/pkg/geometry"

// View is a displayable resource with mutable frame and opacity.
//
// Implementations must be comparable (pointer types in practice); the core
// uses view identity to locate children inside a surface.
type View interface {
	// Frame returns the view's bounding rectangle in surface coordinates.
	Frame() geometry.Rect
	// SetFrame moves and resizes the view.
	SetFrame(frame geometry.Rect)
	// Alpha returns the view's opacity in [0, 1].
	Alpha() float64
	// SetAlpha changes the view's opacity.
	SetAlpha(alpha float64)
}

// InputAbsorber is implemented by views that swallow interaction instead
// of letting it reach lower z-order siblings. Host hit-testing (outside
// this module) consults it before dispatching input.
type InputAbsorber interface {
	AbsorbsInput() bool
}

// Surface is a view-hierarchy node into which content views are inserted.
//
// Children are z-ordered: the last child is frontmost and the only one that
// may legally receive interaction for newly attached content.
type Surface interface {
	// InsertAtTop adds a view as the frontmost child.
	InsertAtTop(view View)
	// InsertBelow adds a view immediately behind sibling in z-order.
	// If sibling is not a child, the view is inserted at the top.
	InsertBelow(view, sibling View)
	// Remove detaches a child view. No-op if view is not a child.
	Remove(view View)
	// Bounds returns the surface's own rectangle.
	Bounds() geometry.Rect
	// Children returns the current children, back to front.
	Children() []View
}

// Observer receives change notifications from an observable surface.
// This is the capability sibling adapters (scroll synchronization,
// keyboard avoidance) register against instead of intercepting the
// surface's mutators.
type Observer interface {
	// ViewInserted is called after a view joins the surface.
	ViewInserted(view View)
	// ViewRemoved is called after a view leaves the surface.
	ViewRemoved(view View)
	// ViewFrameChanged is called after a child view's frame changes.
	ViewFrameChanged(view View)
}

// Observable is a Surface that supports change notification.
type Observable interface {
	Surface
	// AddObserver registers an observer. Returns an unsubscribe function.
	AddObserver(obs Observer) func()
}
