package physics

import (
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
)

// Registry owns the ordered body set of the current run. Bodies are never added or removed
// one at a time: the whole set is swapped with Replace. Order is preserved so the renderer
// can pair bodies with per-body display state by index.
type Registry struct {
	mu     sync.RWMutex
	bodies []Body
}

// NewRegistry returns a registry holding a copy of bodies.
func NewRegistry(bodies []Body) *Registry {
	return &Registry{bodies: cloneBodies(bodies)}
}

// Replace swaps in a copy of bodies as the new set. Readers see either the old set or the
// new one, never a mix.
func (r *Registry) Replace(bodies []Body) {
	next := cloneBodies(bodies)
	r.mu.Lock()
	r.bodies = next
	r.mu.Unlock()
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bodies)
}

// Bodies returns a copy of the current set for read-only use (renderer, HUD).
func (r *Registry) Bodies() []Body {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneBodies(r.bodies)
}

// Update runs fn on the live set while holding the write lock. fn may mutate bodies in place
// but must not retain the slice after returning.
func (r *Registry) Update(fn func(bodies []Body)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.bodies)
}

// Step advances the live set with in. It is the per-frame entry point of the driver.
func (r *Registry) Step(in Integrator, dtWall, timeScale float64) {
	r.Update(func(bodies []Body) {
		in.Step(bodies, dtWall, timeScale)
	})
}

// cloneBodies deep-copies src. copier only fails on types it cannot traverse, so an error
// here means Body grew such a field and is a programming error.
func cloneBodies(src []Body) []Body {
	out := make([]Body, 0, len(src))
	if len(src) == 0 {
		return out
	}
	if err := copier.CopyWithOption(&out, &src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Errorf("physics: copy bodies: %w", err))
	}
	return out
}
