package fastecs

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/TheBitDrifter/mask"
)

// schema assigns a stable bit index to every registered component type,
// in registration order.
type schema struct {
	rows map[reflect.Type]uint32
}

func newSchema() *schema {
	return &schema{rows: make(map[reflect.Type]uint32)}
}

func (sc *schema) rowIndexFor(t reflect.Type) (uint32, bool) {
	bit, ok := sc.rows[t]
	return bit, ok
}

// bitMask builds a single-bit probe mask.
func bitMask(bit uint32) mask.Mask {
	var m mask.Mask
	m.Mark(bit)
	return m
}

// pair is one entry of an association list: a component value keyed by
// its owning entity.
type pair[C any] struct {
	id    EntityID
	value C
}

// anyStore is the type-erased face of a componentStore, used by the
// registry and the debug dumps, which operate across all component types.
type anyStore[P comparable] interface {
	ids(pool P) []EntityID
	removeID(id EntityID, pool P) bool
	typeName() string
	debugValue(id EntityID, pool P) (string, bool)
}

// componentStore holds, per pool, the ordered association list for one
// component type: entries sorted ascending by entity id, unique per id.
// Every mutation locates its splice point by binary search; lookup is
// O(log n), insertion and removal are linear in the shifted tail. The
// layout is deliberately a sorted array rather than a hash map so the
// query engine can merge lists sequentially.
type componentStore[C any, P comparable] struct {
	pools map[P][]pair[C]
}

func newComponentStore[C any, P comparable]() *componentStore[C, P] {
	return &componentStore[C, P]{pools: make(map[P][]pair[C])}
}

// search returns the insertion point for id within the pool's list.
func (cs *componentStore[C, P]) search(pool P, id EntityID) ([]pair[C], int) {
	list := cs.pools[pool]
	i := sort.Search(len(list), func(i int) bool { return list[i].id >= id })
	return list, i
}

// insert splices a new entry into the sorted list. The returned pointer
// stays valid until the next insert or removal for this component type in
// the same pool.
func (cs *componentStore[C, P]) insert(pool P, id EntityID, value C) (*C, error) {
	list, i := cs.search(pool, id)
	if i < len(list) && list[i].id == id {
		return nil, InvariantViolationError{
			Detail: fmt.Sprintf("duplicate %s entry for entity %d slipped past the ownership mask", cs.typeName(), id),
		}
	}
	list = append(list, pair[C]{})
	copy(list[i+1:], list[i:])
	list[i] = pair[C]{id: id, value: value}
	cs.pools[pool] = list
	return &list[i].value, nil
}

func (cs *componentStore[C, P]) get(pool P, id EntityID) (*C, bool) {
	list, i := cs.search(pool, id)
	if i < len(list) && list[i].id == id {
		return &list[i].value, true
	}
	return nil, false
}

func (cs *componentStore[C, P]) ids(pool P) []EntityID {
	list := cs.pools[pool]
	out := make([]EntityID, len(list))
	for i, p := range list {
		out[i] = p.id
	}
	return out
}

func (cs *componentStore[C, P]) removeID(id EntityID, pool P) bool {
	list, i := cs.search(pool, id)
	if i >= len(list) || list[i].id != id {
		return false
	}
	cs.pools[pool] = append(list[:i], list[i+1:]...)
	return true
}

func (cs *componentStore[C, P]) typeName() string {
	t := reflect.TypeFor[C]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func (cs *componentStore[C, P]) debugValue(id EntityID, pool P) (string, bool) {
	v, ok := cs.get(pool, id)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s = { %+v }", cs.typeName(), *v), true
}

// storeFor resolves the typed store and bit index for component type C.
func storeFor[C any, G any, M any, P comparable](s *Store[G, M, P]) (*componentStore[C, P], uint32, error) {
	t := reflect.TypeFor[C]()
	bit, ok := s.schema.rowIndexFor(t)
	if !ok {
		return nil, 0, NotFoundError{Component: displayName(t)}
	}
	return s.stores[bit].(*componentStore[C, P]), bit, nil
}

func displayName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// AddComponent attaches a component value to an entity and returns a
// pointer to the stored copy. It fails with AlreadyExistsError when the
// entity already owns a component of that type, and with NotFoundError
// when the entity is unknown or the type was never registered. The
// pointer stays valid until the next mutation of this component type in
// the entity's pool.
func AddComponent[C any, G any, M any, P comparable](s *Store[G, M, P], id EntityID, value C) (*C, error) {
	pool, ok := s.reg.entities[id]
	if !ok {
		return nil, NotFoundError{Entity: id}
	}
	cs, bit, err := storeFor[C](s)
	if err != nil {
		return nil, NotFoundError{Entity: id, Component: displayName(reflect.TypeFor[C]())}
	}
	m := s.reg.masks[id]
	if m.ContainsAll(bitMask(bit)) {
		return nil, AlreadyExistsError{Entity: id, Component: cs.typeName()}
	}
	ptr, err := cs.insert(pool, id, value)
	if err != nil {
		return nil, err
	}
	m.Mark(bit)
	s.reg.masks[id] = m
	return ptr, nil
}

// GetComponent returns a mutable pointer to the entity's component of
// type C, or NotFoundError when the entity or the component is absent.
func GetComponent[C any, G any, M any, P comparable](s *Store[G, M, P], id EntityID) (*C, error) {
	pool, ok := s.reg.entities[id]
	if !ok {
		return nil, NotFoundError{Entity: id}
	}
	cs, _, err := storeFor[C](s)
	if err != nil {
		return nil, NotFoundError{Entity: id, Component: displayName(reflect.TypeFor[C]())}
	}
	v, ok := cs.get(pool, id)
	if !ok {
		return nil, NotFoundError{Entity: id, Component: cs.typeName()}
	}
	return v, nil
}

// ReadComponent returns a copy of the entity's component of type C
// through a read-only view.
func ReadComponent[C any, G any, M any, P comparable](v View[G, M, P], id EntityID) (C, error) {
	ptr, err := GetComponent[C](v.s, id)
	if err != nil {
		var zero C
		return zero, err
	}
	return *ptr, nil
}

// HasComponent reports whether the entity owns a component of type C.
// Unknown entities and unregistered types report absence, not an error.
func HasComponent[C any, G any, M any, P comparable](s *Store[G, M, P], id EntityID) bool {
	if _, ok := s.reg.entities[id]; !ok {
		return false
	}
	_, bit, err := storeFor[C](s)
	if err != nil {
		return false
	}
	return s.reg.masks[id].ContainsAll(bitMask(bit))
}

// RemoveComponent detaches the entity's component of type C. Removing a
// component that is not present is an error, not a no-op.
func RemoveComponent[C any, G any, M any, P comparable](s *Store[G, M, P], id EntityID) error {
	pool, ok := s.reg.entities[id]
	if !ok {
		return NotFoundError{Entity: id}
	}
	cs, bit, err := storeFor[C](s)
	if err != nil {
		return NotFoundError{Entity: id, Component: displayName(reflect.TypeFor[C]())}
	}
	m := s.reg.masks[id]
	if !m.ContainsAll(bitMask(bit)) {
		return NotFoundError{Entity: id, Component: cs.typeName()}
	}
	if !cs.removeID(id, pool) {
		return InvariantViolationError{
			Detail: fmt.Sprintf("ownership mask lists %s for entity %d but the association list has no entry", cs.typeName(), id),
		}
	}
	m.Unmark(bit)
	s.reg.masks[id] = m
	return nil
}
