package fastecs

import (
	"fmt"
	"sort"
	"strings"
)

// DebugGlobal renders the global value as human-readable text. Dump
// formats are diagnostic conveniences, not a stable surface.
func (s *Store[G, M, P]) DebugGlobal() string {
	return fmt.Sprintf("{ %+v }", s.global)
}

// DebugEntities renders every entity in the chosen pool set (all active
// pools when none is given), sorted by id, with one line per active
// component.
func (s *Store[G, M, P]) DebugEntities(pools ...P) string {
	return s.debugEntities(s.poolsOrAll(pools), 0)
}

// DebugAll renders the global value and every entity as one nested block.
func (s *Store[G, M, P]) DebugAll() string {
	return "{\n   global = " + s.DebugGlobal() + ",\n   entities = " + s.debugEntities(s.reg.poolSet, 3) + "\n}"
}

// poolMember pairs an entity with its pool for sorted debug output.
type poolMember[P comparable] struct {
	id   EntityID
	pool P
}

func (s *Store[G, M, P]) debugEntities(pools []P, spaces int) string {
	var members []poolMember[P]
	for _, pool := range pools {
		for id := range s.reg.pools[pool] {
			members = append(members, poolMember[P]{id: id, pool: pool})
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].id < members[j].id })

	pad := strings.Repeat(" ", spaces)
	var b strings.Builder
	b.WriteString("{\n")
	for _, m := range members {
		fmt.Fprintf(&b, "%s   [%d] = %s,\n", pad, m.id, s.debugEntity(m.id, m.pool, spaces))
	}
	b.WriteString(pad + "}")
	return b.String()
}

func (s *Store[G, M, P]) debugEntity(id EntityID, pool P, spaces int) string {
	m := s.reg.masks[id]
	pad := strings.Repeat(" ", spaces)
	var b strings.Builder
	b.WriteString("{\n")
	for bit, cs := range s.stores {
		if !m.ContainsAll(bitMask(uint32(bit))) {
			continue
		}
		if line, ok := cs.debugValue(id, pool); ok {
			b.WriteString(pad + "      " + line + "\n")
		}
	}
	b.WriteString(pad + "   }")
	return b.String()
}
