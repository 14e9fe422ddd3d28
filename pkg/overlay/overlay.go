// Package overlay provides the transparent interaction-blocking layer
// inserted beneath a content view, so that lower z-order content cannot
// receive input while the content above it is displayed with blocking
// enabled.
package overlay

import (
	"github.com/go-vessel/vessel/pkg/geometry"
	"github.com/go-vessel/vessel/pkg/surface"
)

// BlockingOverlay is an input-absorbing resource sized to a frame.
//
// It is fully transparent: it never paints, it only swallows interaction.
// The ordering guarantee is that the overlay sits immediately behind the
// view it protects.
type BlockingOverlay struct {
	view     *blockingView
	surface  surface.Surface
	attached bool
}

// New creates a blocking overlay covering the given frame.
func New(frame geometry.Rect) *BlockingOverlay {
	return &BlockingOverlay{view: &blockingView{frame: frame}}
}

// View returns the overlay's input-absorbing view.
func (o *BlockingOverlay) View() surface.View {
	return o.view
}

// AttachBelow inserts the overlay into target immediately behind sibling.
// Re-attaching moves the overlay; it never duplicates it.
func (o *BlockingOverlay) AttachBelow(target surface.Surface, sibling surface.View) {
	if o.attached && o.surface != nil {
		o.surface.Remove(o.view)
	}
	target.InsertBelow(o.view, sibling)
	o.surface = target
	o.attached = true
}

// Detach removes the overlay from its surface. No-op when detached.
func (o *BlockingOverlay) Detach() {
	if !o.attached {
		return
	}
	o.surface.Remove(o.view)
	o.surface = nil
	o.attached = false
}

// Attached reports whether the overlay is currently in a surface.
func (o *BlockingOverlay) Attached() bool {
	return o.attached
}

// blockingView absorbs all input while staying invisible.
type blockingView struct {
	frame geometry.Rect
}

func (v *blockingView) Frame() geometry.Rect {
	return v.frame
}

func (v *blockingView) SetFrame(frame geometry.Rect) {
	v.frame = frame
}

// Alpha always returns 0: the overlay never paints.
func (v *blockingView) Alpha() float64 {
	return 0
}

// SetAlpha is a no-op: transparency is the overlay's invariant.
func (v *blockingView) SetAlpha(alpha float64) {}

// AbsorbsInput marks the view as an input sink for host hit-testing.
func (v *blockingView) AbsorbsInput() bool {
	return true
}
