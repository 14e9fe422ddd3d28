package surface

import (
	"testing"

	"github.com/go-vessel/vessel/pkg/geometry"
)

// TestBasicSurface_InsertAtTop verifies frontmost insertion order.
func TestBasicSurface_InsertAtTop(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	a := NewBasicView(geometry.RectFromLTWH(0, 0, 100, 100))
	b := NewBasicView(geometry.RectFromLTWH(0, 0, 100, 100))

	s.InsertAtTop(a)
	s.InsertAtTop(b)

	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[1] != View(b) {
		t.Error("most recently inserted view should be frontmost")
	}
}

// TestBasicSurface_InsertAtTop_MovesExistingChild verifies re-insertion
// moves a child to the front instead of duplicating it.
func TestBasicSurface_InsertAtTop_MovesExistingChild(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	a := NewBasicView(geometry.Rect{})
	b := NewBasicView(geometry.Rect{})

	s.InsertAtTop(a)
	s.InsertAtTop(b)
	s.InsertAtTop(a)

	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children after move, got %d", len(children))
	}
	if children[1] != View(a) {
		t.Error("re-inserted view should be frontmost")
	}
}

// TestBasicSurface_InsertBelow verifies z-order placement behind a sibling.
func TestBasicSurface_InsertBelow(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	content := NewBasicView(geometry.Rect{})
	overlay := NewBasicView(geometry.Rect{})

	s.InsertAtTop(content)
	s.InsertBelow(overlay, content)

	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0] != View(overlay) || children[1] != View(content) {
		t.Error("overlay should sit immediately behind content")
	}
}

// TestBasicSurface_InsertBelow_MovesExistingChild verifies re-stacking a
// current rear child below a front sibling keeps it behind the sibling.
func TestBasicSurface_InsertBelow_MovesExistingChild(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	v := NewBasicView(geometry.Rect{})
	sib := NewBasicView(geometry.Rect{})

	s.InsertAtTop(v)
	s.InsertAtTop(sib)
	s.InsertBelow(v, sib)

	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children after move, got %d", len(children))
	}
	if children[0] != View(v) || children[1] != View(sib) {
		t.Error("re-stacked view should sit behind its sibling")
	}
}

// TestBasicSurface_InsertBelow_MovesFrontChildBehind verifies the move in
// the other direction: a front child re-inserted below a rear sibling.
func TestBasicSurface_InsertBelow_MovesFrontChildBehind(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	sib := NewBasicView(geometry.Rect{})
	v := NewBasicView(geometry.Rect{})

	s.InsertAtTop(sib)
	s.InsertAtTop(v)
	s.InsertBelow(v, sib)

	children := s.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children after move, got %d", len(children))
	}
	if children[0] != View(v) || children[1] != View(sib) {
		t.Error("re-stacked view should sit behind its sibling")
	}
}

// TestBasicSurface_InsertBelow_UnknownSibling verifies the top fallback.
func TestBasicSurface_InsertBelow_UnknownSibling(t *testing.T) {
	s := NewBasicSurface(geometry.Rect{})
	stranger := NewBasicView(geometry.Rect{})
	v := NewBasicView(geometry.Rect{})

	s.InsertBelow(v, stranger)

	if s.IndexOf(v) != 0 {
		t.Error("view should be inserted at top when sibling is absent")
	}
}

// TestBasicSurface_Remove verifies removal and its no-op for strangers.
func TestBasicSurface_Remove(t *testing.T) {
	s := NewBasicSurface(geometry.Rect{})
	v := NewBasicView(geometry.Rect{})
	s.InsertAtTop(v)

	s.Remove(v)
	if len(s.Children()) != 0 {
		t.Error("view should be removed")
	}

	// Removing again must not panic or mutate.
	s.Remove(v)
	if len(s.Children()) != 0 {
		t.Error("second remove should be a no-op")
	}
}

// frameRecorder records observer callbacks for assertions.
type frameRecorder struct {
	inserted []View
	removed  []View
	changed  []View
}

func (r *frameRecorder) ViewInserted(v View)     { r.inserted = append(r.inserted, v) }
func (r *frameRecorder) ViewRemoved(v View)      { r.removed = append(r.removed, v) }
func (r *frameRecorder) ViewFrameChanged(v View) { r.changed = append(r.changed, v) }

// TestBasicSurface_Observer verifies insertion/removal/frame notifications
// and unsubscribe behavior.
func TestBasicSurface_Observer(t *testing.T) {
	s := NewBasicSurface(geometry.RectFromLTWH(0, 0, 320, 480))
	rec := &frameRecorder{}
	unsubscribe := s.AddObserver(rec)

	v := NewBasicView(geometry.RectFromLTWH(0, 0, 10, 10))
	s.InsertAtTop(v)
	v.SetFrame(geometry.RectFromLTWH(5, 5, 10, 10))
	s.Remove(v)

	if len(rec.inserted) != 1 || rec.inserted[0] != View(v) {
		t.Error("expected one insertion notification")
	}
	if len(rec.changed) != 1 {
		t.Errorf("expected one frame-change notification, got %d", len(rec.changed))
	}
	if len(rec.removed) != 1 {
		t.Errorf("expected one removal notification, got %d", len(rec.removed))
	}

	unsubscribe()
	s.InsertAtTop(v)
	if len(rec.inserted) != 1 {
		t.Error("unsubscribed observer should not be notified")
	}
}

// TestBasicView_SetFrame_NoChangeNoNotify verifies identical frames are
// treated as no-ops.
func TestBasicView_SetFrame_NoChangeNoNotify(t *testing.T) {
	s := NewBasicSurface(geometry.Rect{})
	rec := &frameRecorder{}
	s.AddObserver(rec)

	frame := geometry.RectFromLTWH(1, 2, 3, 4)
	v := NewBasicView(frame)
	s.InsertAtTop(v)

	v.SetFrame(frame)
	if len(rec.changed) != 0 {
		t.Error("setting an identical frame should not notify")
	}
}

// TestBasicView_DetachedFrameChange verifies a view removed from its
// surface no longer notifies it.
func TestBasicView_DetachedFrameChange(t *testing.T) {
	s := NewBasicSurface(geometry.Rect{})
	rec := &frameRecorder{}
	s.AddObserver(rec)

	v := NewBasicView(geometry.Rect{})
	s.InsertAtTop(v)
	s.Remove(v)

	v.SetFrame(geometry.RectFromLTWH(9, 9, 9, 9))
	if len(rec.changed) != 0 {
		t.Error("detached view should not notify the old surface")
	}
}
