package overlay

import (
	"testing"

	"github.com/go-vessel/vessel/pkg/geometry"
	"github.com/go-vessel/vessel/pkg/surface"
)

// TestBlockingOverlay_AttachBelow verifies the overlay lands immediately
// behind the view it protects.
func TestBlockingOverlay_AttachBelow(t *testing.T) {
	s := surface.NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	below := surface.NewBasicView(geometry.RectFromLTWH(0, 0, 320, 480))
	content := surface.NewBasicView(geometry.RectFromLTWH(0, 0, 320, 480))
	s.InsertAtTop(below)
	s.InsertAtTop(content)

	o := New(s.Bounds())
	o.AttachBelow(s, content)

	if !o.Attached() {
		t.Fatal("overlay should report attached")
	}
	idx := s.IndexOf(o.View())
	if idx != s.IndexOf(content)-1 {
		t.Errorf("overlay at z-index %d, want immediately behind content at %d", idx, s.IndexOf(content))
	}
	if s.IndexOf(below) >= idx {
		t.Error("older content should sit behind the overlay")
	}
}

// TestBlockingOverlay_Reattach verifies re-attachment moves the overlay
// rather than duplicating it.
func TestBlockingOverlay_Reattach(t *testing.T) {
	s := surface.NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	content := surface.NewBasicView(geometry.Rect{})
	s.InsertAtTop(content)

	o := New(s.Bounds())
	o.AttachBelow(s, content)
	o.AttachBelow(s, content)

	count := 0
	for _, child := range s.Children() {
		if child == o.View() {
			count++
		}
	}
	if count != 1 {
		t.Errorf("overlay appears %d times in the surface, want 1", count)
	}
}

// TestBlockingOverlay_Detach verifies removal and idempotence.
func TestBlockingOverlay_Detach(t *testing.T) {
	s := surface.NewBasicSurface(geometry.Rect{})
	content := surface.NewBasicView(geometry.Rect{})
	s.InsertAtTop(content)

	o := New(s.Bounds())
	o.AttachBelow(s, content)
	o.Detach()

	if o.Attached() {
		t.Error("overlay should report detached")
	}
	if s.IndexOf(o.View()) != -1 {
		t.Error("overlay view should be removed from the surface")
	}

	// Detaching again must be a no-op.
	o.Detach()
}

// TestBlockingOverlay_ViewProperties verifies transparency and input
// absorption.
func TestBlockingOverlay_ViewProperties(t *testing.T) {
	frame := geometry.RectFromLTWH(0, 0, 100, 200)
	o := New(frame)

	if !o.View().Frame().Equal(frame) {
		t.Error("overlay view should be sized to the requested frame")
	}
	if o.View().Alpha() != 0 {
		t.Error("overlay view should be transparent")
	}

	o.View().SetAlpha(1)
	if o.View().Alpha() != 0 {
		t.Error("overlay transparency should be immutable")
	}

	absorber, ok := o.View().(surface.InputAbsorber)
	if !ok || !absorber.AbsorbsInput() {
		t.Error("overlay view should absorb input")
	}
}
