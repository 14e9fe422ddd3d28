// Package content manages the lifecycle of presentable units hosted inside
// containers: exclusive ownership, lazy view materialization, interaction
// blocking, and cached forward/reverse transition animations.
//
// A container takes ownership of a [Unit] by creating a [Handle], uses the
// handle to attach and detach the unit's view, asks it for transition
// animations referencing other handles, and destroys it when the unit
// leaves the container. The [Registry] guarantees a unit never belongs to
// two containers at once.
package content

import (
	"sync"

	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/surface"
)

// Unit is the presentable item being managed (e.g., a screen).
//
// MaterializeView is called only when the unit is actually displayed,
// never speculatively. A unit that caches its view may return the same
// view across calls. Implementations must be comparable (pointer types in
// practice); unit identity keys the ownership registry.
type Unit interface {
	MaterializeView() surface.View
}

// ViewReleaser is optionally implemented by units that cache their view.
// ReleaseView tells the unit to drop the cached resource.
type ViewReleaser interface {
	ReleaseView()
}

// Container identifies the component owning a collection of handles.
// The core never calls into it; it only needs identity for the exclusive
// ownership check. Like [Unit], container values must be comparable
// (pointer types in practice): ownership checks compare them with ==.
type Container any

// Registry maps content units to the container that currently owns them,
// enforcing the single-container invariant.
//
// Registrations do not survive a process restart; the registry is purely
// in-memory bookkeeping. A single mutex serializes access so container
// insert/remove may originate from different call sites in multi-threaded
// hosts.
type Registry struct {
	mu     sync.Mutex
	owners map[Unit]Container
}

// NewRegistry creates an empty registry. Most hosts use [DefaultRegistry];
// independent instances exist so ownership tests need no process-wide
// state.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[Unit]Container)}
}

// DefaultRegistry is the process-wide registry handles register with by
// default.
var DefaultRegistry = NewRegistry()

// LookupContainer returns the container owning unit, if any.
func (r *Registry) LookupContainer(unit Unit) (Container, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	container, ok := r.owners[unit]
	return container, ok
}

// Register records unit as owned by container.
//
// Registering a unit already owned by the same container is a no-op.
// Registering a unit owned by a different container fails with an
// ownership-conflict error: silently reassigning ownership would corrupt
// both containers' bookkeeping at once.
func (r *Registry) Register(unit Unit, container Container) error {
	if unit == nil {
		return errors.Newf("content.Registry.Register", errors.KindInvalidState,
			"nil unit")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.owners[unit]; ok {
		if owner == container {
			return nil
		}
		return errors.Newf("content.Registry.Register", errors.KindOwnershipConflict,
			"unit already inserted into container %v", owner)
	}
	r.owners[unit] = container
	return nil
}

// Unregister removes unit's ownership mapping. No-op when absent.
func (r *Registry) Unregister(unit Unit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.owners, unit)
}
