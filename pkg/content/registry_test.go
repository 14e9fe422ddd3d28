package content

import (
	"sync"
	"testing"

	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/geometry"
	"github.com/go-vessel/vessel/pkg/surface"
)

// screenUnit is a minimal Unit for tests: it materializes a fresh view on
// demand and can optionally cache it.
type screenUnit struct {
	frame        geometry.Rect
	cached       *surface.BasicView
	cache        bool
	materialized int
	released     int
}

func (u *screenUnit) MaterializeView() surface.View {
	u.materialized++
	if u.cache {
		if u.cached == nil {
			u.cached = surface.NewBasicView(u.frame)
		}
		return u.cached
	}
	return surface.NewBasicView(u.frame)
}

func (u *screenUnit) ReleaseView() {
	u.cached = nil
	u.released++
}

type stackContainer struct{ name string }

// TestRegistry_ExclusiveOwnership verifies that a registered unit cannot be
// claimed by a second container until unregistered.
func TestRegistry_ExclusiveOwnership(t *testing.T) {
	r := NewRegistry()
	unit := &screenUnit{}
	c1 := &stackContainer{name: "first"}
	c2 := &stackContainer{name: "second"}

	if err := r.Register(unit, c1); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.Register(unit, c2)
	if err == nil {
		t.Fatal("second container should be rejected")
	}
	if !errors.IsOwnershipConflict(err) {
		t.Errorf("error kind = %v, want ownership conflict", errors.KindOf(err))
	}

	r.Unregister(unit)
	if err := r.Register(unit, c2); err != nil {
		t.Errorf("registration after unregister failed: %v", err)
	}
}

// TestRegistry_SameContainerIdempotent verifies re-registering to the same
// container is a no-op, not a conflict.
func TestRegistry_SameContainerIdempotent(t *testing.T) {
	r := NewRegistry()
	unit := &screenUnit{}
	c := &stackContainer{}

	if err := r.Register(unit, c); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(unit, c); err != nil {
		t.Errorf("same-container re-registration should be a no-op, got %v", err)
	}
}

// TestRegistry_LookupContainer verifies the read-only query.
func TestRegistry_LookupContainer(t *testing.T) {
	r := NewRegistry()
	unit := &screenUnit{}
	c := &stackContainer{}

	if _, ok := r.LookupContainer(unit); ok {
		t.Error("unregistered unit should have no container")
	}

	if err := r.Register(unit, c); err != nil {
		t.Fatal(err)
	}
	owner, ok := r.LookupContainer(unit)
	if !ok || owner != Container(c) {
		t.Errorf("LookupContainer = %v, %v; want the registered container", owner, ok)
	}
}

// TestRegistry_UnregisterAbsent verifies unregistering an unknown unit is
// not an error.
func TestRegistry_UnregisterAbsent(t *testing.T) {
	r := NewRegistry()
	r.Unregister(&screenUnit{})
}

// TestRegistry_NilUnit verifies nil units are rejected as misuse, not as
// an ownership conflict.
func TestRegistry_NilUnit(t *testing.T) {
	r := NewRegistry()
	err := r.Register(nil, &stackContainer{})
	if err == nil {
		t.Fatal("nil unit should be rejected")
	}
	if !errors.IsInvalidState(err) {
		t.Errorf("error kind = %v, want invalid state", errors.KindOf(err))
	}
	if errors.IsOwnershipConflict(err) {
		t.Error("nil-unit misuse must not read as an ownership conflict")
	}
}

// TestRegistry_ConcurrentAccess verifies mutations are serialized when
// insert/remove originate from different goroutines.
func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	c := &stackContainer{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				unit := &screenUnit{}
				if err := r.Register(unit, c); err != nil {
					t.Errorf("register failed: %v", err)
					return
				}
				r.Unregister(unit)
			}
		}()
	}
	wg.Wait()
}

// TestRegistry_IndependentInstances verifies separate registries do not
// share ownership state.
func TestRegistry_IndependentInstances(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	unit := &screenUnit{}

	if err := a.Register(unit, &stackContainer{name: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Register(unit, &stackContainer{name: "b"}); err != nil {
		t.Errorf("independent registry should accept the unit, got %v", err)
	}
}
