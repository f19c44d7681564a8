package fastecs

// ReadHandle is a transient, non-owning view of one entity: its id, its
// pool and the store it lives in. It permits inspection only. Handles
// never outlive their store and become stale once the entity is removed;
// a stale handle reports NotFoundError, never stale data.
type ReadHandle[G any, M any, P comparable] struct {
	id   EntityID
	pool P
	s    *Store[G, M, P]
}

// ID returns the entity's identifier. Handle identity is its id; two
// handles to the same entity are interchangeable.
func (h ReadHandle[G, M, P]) ID() EntityID { return h.id }

// Pool returns the pool the entity was created in.
func (h ReadHandle[G, M, P]) Pool() P { return h.pool }

// Debug renders the entity's active components as nested text.
func (h ReadHandle[G, M, P]) Debug() string {
	return h.s.debugEntity(h.id, h.pool, 0)
}

// Handle is the mutable counterpart of ReadHandle: it additionally
// permits adding and removing components through the generic handle
// functions. Only code running on the controlling goroutine holds one.
type Handle[G, M any, P comparable] struct {
	ReadHandle[G, M, P]
}

// RO narrows a mutable handle to its read-only form.
func (h Handle[G, M, P]) RO() ReadHandle[G, M, P] { return h.ReadHandle }

// Add attaches a component value through a handle. See AddComponent.
func Add[C any, G any, M any, P comparable](h Handle[G, M, P], value C) (*C, error) {
	return AddComponent(h.s, h.id, value)
}

// Get returns a mutable pointer to the entity's component of type C.
func Get[C any, G any, M any, P comparable](h Handle[G, M, P]) (*C, error) {
	return GetComponent[C](h.s, h.id)
}

// Has reports whether the entity owns a component of type C.
func Has[C any, G any, M any, P comparable](h Handle[G, M, P]) bool {
	return HasComponent[C](h.s, h.id)
}

// Remove detaches the entity's component of type C.
func Remove[C any, G any, M any, P comparable](h Handle[G, M, P]) error {
	return RemoveComponent[C](h.s, h.id)
}

// Read returns a copy of the component of type C through a read-only
// handle.
func Read[C any, G any, M any, P comparable](h ReadHandle[G, M, P]) (C, error) {
	ptr, err := GetComponent[C](h.s, h.id)
	if err != nil {
		var zero C
		return zero, err
	}
	return *ptr, nil
}

// ReadHas reports component ownership through a read-only handle.
func ReadHas[C any, G any, M any, P comparable](h ReadHandle[G, M, P]) bool {
	return HasComponent[C](h.s, h.id)
}

// View is the read-only face of a store. It is the capability handed to
// read-only and concurrent systems: none of its methods mutate component
// data, and component reads through it yield copies. The split is
// enforced by the type system, not by convention.
type View[G any, M any, P comparable] struct {
	s *Store[G, M, P]
}

// Entity resolves an id to a read-only handle.
func (v View[G, M, P]) Entity(id EntityID) (ReadHandle[G, M, P], error) {
	pool, ok := v.s.reg.entities[id]
	if !ok {
		return ReadHandle[G, M, P]{}, NotFoundError{Entity: id}
	}
	return ReadHandle[G, M, P]{id: id, pool: pool, s: v.s}, nil
}

// Exists reports whether an entity with the given id is alive.
func (v View[G, M, P]) Exists(id EntityID) bool {
	return v.s.Exists(id)
}

// Global returns a copy of the store's global value.
func (v View[G, M, P]) Global() G {
	return v.s.global
}

// Entities returns every entity in the chosen pool set (all active pools
// when none is given), in no particular order.
func (v View[G, M, P]) Entities(pools ...P) []ReadHandle[G, M, P] {
	var out []ReadHandle[G, M, P]
	for _, pool := range v.s.poolsOrAll(pools) {
		for id := range v.s.reg.pools[pool] {
			out = append(out, ReadHandle[G, M, P]{id: id, pool: pool, s: v.s})
		}
	}
	return out
}

// NumEntities reports how many entities are alive across all pools.
func (v View[G, M, P]) NumEntities() int { return v.s.NumEntities() }

// NumComponents reports how many component types have been registered.
func (v View[G, M, P]) NumComponents() int { return v.s.NumComponents() }

// NumMessageTypes reports how many distinct payload kinds the queue has
// seen.
func (v View[G, M, P]) NumMessageTypes() int { return v.s.NumMessageTypes() }

// MessageQueueSize reports how many messages are queued.
func (v View[G, M, P]) MessageQueueSize() int { return v.s.MessageQueueSize() }

// DebugEntities renders every entity in the view. See Store.DebugEntities.
func (v View[G, M, P]) DebugEntities() string { return v.s.DebugEntities() }

// DebugGlobal renders the global value. See Store.DebugGlobal.
func (v View[G, M, P]) DebugGlobal() string { return v.s.DebugGlobal() }

// DebugAll renders the global value and every entity. See Store.DebugAll.
func (v View[G, M, P]) DebugAll() string { return v.s.DebugAll() }
