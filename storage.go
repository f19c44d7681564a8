package fastecs

import (
	"go.uber.org/zap"

	"github.com/TheBitDrifter/mask"
)

// Store is a typed entity/component data store. Its shape is fixed at
// construction by three type parameters (the global value type G, the
// message union type M and the pool type P) plus the component types
// registered with RegisterComponent.
//
// A Store is owned by one controlling goroutine. Concurrent systems
// receive a read-only View instead; the message queue is the only part of
// the store that workers may write to.
type Store[G any, M any, P comparable] struct {
	global      G
	threading   Threading
	log         *zap.Logger
	defaultPool P

	schema *schema
	stores []anyStore[P]
	reg    registry[P]

	messages  messageQueue[M]
	scheduler scheduler
}

// registry tracks which entities exist, which pool each belongs to, the
// set of active pools, and each entity's component ownership mask. Pools
// appear in poolSet in first-creation order.
type registry[P comparable] struct {
	nextID   EntityID
	entities map[EntityID]P
	pools    map[P]map[EntityID]struct{}
	poolSet  []P
	masks    map[EntityID]mask.Mask
}

func newRegistry[P comparable](defaultPool P) registry[P] {
	return registry[P]{
		entities: make(map[EntityID]P),
		pools:    map[P]map[EntityID]struct{}{defaultPool: {}},
		poolSet:  []P{defaultPool},
		masks:    make(map[EntityID]mask.Mask),
	}
}

// NewEntity creates an entity in the default pool.
func (s *Store[G, M, P]) NewEntity() Handle[G, M, P] {
	return s.NewEntityIn(s.defaultPool)
}

// NewEntityIn creates an entity in the given pool, creating the pool on
// first use.
func (s *Store[G, M, P]) NewEntityIn(pool P) Handle[G, M, P] {
	id := s.reg.nextID
	s.reg.nextID++

	members, ok := s.reg.pools[pool]
	if !ok {
		members = make(map[EntityID]struct{})
		s.reg.pools[pool] = members
		s.reg.poolSet = append(s.reg.poolSet, pool)
	}
	members[id] = struct{}{}
	s.reg.entities[id] = pool
	s.reg.masks[id] = mask.Mask{}

	return Handle[G, M, P]{ReadHandle[G, M, P]{id: id, pool: pool, s: s}}
}

// Entity resolves an id to a mutable handle.
func (s *Store[G, M, P]) Entity(id EntityID) (Handle[G, M, P], error) {
	pool, ok := s.reg.entities[id]
	if !ok {
		return Handle[G, M, P]{}, NotFoundError{Entity: id}
	}
	return Handle[G, M, P]{ReadHandle[G, M, P]{id: id, pool: pool, s: s}}, nil
}

// Exists reports whether an entity with the given id is alive.
func (s *Store[G, M, P]) Exists(id EntityID) bool {
	_, ok := s.reg.entities[id]
	return ok
}

// RemoveEntity destroys an entity. Its entries are purged from every
// per-type association list, located through the ownership mask, so no
// orphaned component data survives. Handles to the entity become stale;
// subsequent component operations through them fail with NotFoundError.
func (s *Store[G, M, P]) RemoveEntity(h Handle[G, M, P]) error {
	return s.removeEntity(h.id)
}

func (s *Store[G, M, P]) removeEntity(id EntityID) error {
	pool, ok := s.reg.entities[id]
	if !ok {
		return NotFoundError{Entity: id}
	}
	m := s.reg.masks[id]
	for bit, cs := range s.stores {
		if !m.ContainsAll(bitMask(uint32(bit))) {
			continue
		}
		if !cs.removeID(id, pool) {
			return InvariantViolationError{
				Detail: "ownership mask lists " + cs.typeName() + " for a removed entity but the association list has no entry",
			}
		}
	}
	delete(s.reg.pools[pool], id)
	delete(s.reg.entities, id)
	delete(s.reg.masks, id)
	return nil
}

// Global returns a mutable pointer to the store's global value.
func (s *Store[G, M, P]) Global() *G {
	return &s.global
}

// SetThreading switches the store's threading mode. Call it only from the
// controlling goroutine, between frames.
func (s *Store[G, M, P]) SetThreading(t Threading) {
	s.threading = t
	s.messages.locking = t == Multi
}

// View returns the read-only face of the store, the capability passed to
// read-only and concurrent systems.
func (s *Store[G, M, P]) View() View[G, M, P] {
	return View[G, M, P]{s: s}
}

// NumEntities reports how many entities are alive across all pools.
func (s *Store[G, M, P]) NumEntities() int {
	return len(s.reg.entities)
}

// NumComponents reports how many component types have been registered.
func (s *Store[G, M, P]) NumComponents() int {
	return len(s.stores)
}

// poolsOrAll expands an empty pool filter to the full active pool set.
func (s *Store[G, M, P]) poolsOrAll(pools []P) []P {
	if len(pools) > 0 {
		return pools
	}
	return s.reg.poolSet
}
