package surface

import "github.com/go-vessel/vessel/pkg/geometry"

// BasicView is the in-memory View implementation.
//
// When attached to a BasicSurface it forwards frame changes to the
// surface's observers.
type BasicView struct {
	frame   geometry.Rect
	alpha   float64
	surface *BasicSurface
}

// NewBasicView creates a fully opaque view with the given frame.
func NewBasicView(frame geometry.Rect) *BasicView {
	return &BasicView{frame: frame, alpha: 1}
}

// Frame returns the view's current frame.
func (v *BasicView) Frame() geometry.Rect {
	return v.frame
}

// SetFrame moves and resizes the view, notifying surface observers.
func (v *BasicView) SetFrame(frame geometry.Rect) {
	if v.frame.Equal(frame) {
		return
	}
	v.frame = frame
	if v.surface != nil {
		v.surface.notifyFrameChanged(v)
	}
}

// Alpha returns the view's opacity.
func (v *BasicView) Alpha() float64 {
	return v.alpha
}

// SetAlpha changes the view's opacity.
func (v *BasicView) SetAlpha(alpha float64) {
	v.alpha = alpha
}

// BasicSurface is the in-memory Surface implementation.
// Children are kept back to front; index len-1 is frontmost.
type BasicSurface struct {
	bounds         geometry.Rect
	children       []View
	observers      map[int]Observer
	nextObserverID int
}

// NewBasicSurface creates a surface with the given bounds.
func NewBasicSurface(bounds geometry.Rect) *BasicSurface {
	return &BasicSurface{
		bounds:    bounds,
		observers: make(map[int]Observer),
	}
}

// InsertAtTop adds a view as the frontmost child.
// Re-inserting a current child moves it to the front.
func (s *BasicSurface) InsertAtTop(view View) {
	s.detach(view)
	s.children = append(s.children, view)
	s.adopt(view)
	s.notifyInserted(view)
}

// InsertBelow adds a view immediately behind sibling in z-order.
// Falls back to InsertAtTop when sibling is not a child.
func (s *BasicSurface) InsertBelow(view, sibling View) {
	// Detach first: removing a current child shifts the sibling's index.
	s.detach(view)
	idx := s.indexOf(sibling)
	if idx < 0 {
		s.InsertAtTop(view)
		return
	}
	s.children = append(s.children, nil)
	copy(s.children[idx+1:], s.children[idx:])
	s.children[idx] = view
	s.adopt(view)
	s.notifyInserted(view)
}

// Remove detaches a child view. No-op if view is not a child.
func (s *BasicSurface) Remove(view View) {
	idx := s.indexOf(view)
	if idx < 0 {
		return
	}
	s.children = append(s.children[:idx], s.children[idx+1:]...)
	if basic, ok := view.(*BasicView); ok {
		basic.surface = nil
	}
	s.notifyRemoved(view)
}

// Bounds returns the surface's rectangle.
func (s *BasicSurface) Bounds() geometry.Rect {
	return s.bounds
}

// Children returns a copy of the current children, back to front.
func (s *BasicSurface) Children() []View {
	out := make([]View, len(s.children))
	copy(out, s.children)
	return out
}

// IndexOf returns the z-order position of a child, or -1 if absent.
func (s *BasicSurface) IndexOf(view View) int {
	return s.indexOf(view)
}

// AddObserver registers an observer. Returns an unsubscribe function.
func (s *BasicSurface) AddObserver(obs Observer) func() {
	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = obs
	return func() {
		delete(s.observers, id)
	}
}

func (s *BasicSurface) indexOf(view View) int {
	for i, child := range s.children {
		if child == view {
			return i
		}
	}
	return -1
}

// detach removes the view from the child list without notifying,
// so that re-insertion reads as a move rather than remove+insert.
func (s *BasicSurface) detach(view View) {
	idx := s.indexOf(view)
	if idx >= 0 {
		s.children = append(s.children[:idx], s.children[idx+1:]...)
	}
}

func (s *BasicSurface) adopt(view View) {
	if basic, ok := view.(*BasicView); ok {
		basic.surface = s
	}
}

func (s *BasicSurface) notifyInserted(view View) {
	for _, obs := range s.observers {
		obs.ViewInserted(view)
	}
}

func (s *BasicSurface) notifyRemoved(view View) {
	for _, obs := range s.observers {
		obs.ViewRemoved(view)
	}
}

func (s *BasicSurface) notifyFrameChanged(view View) {
	for _, obs := range s.observers {
		obs.ViewFrameChanged(view)
	}
}
