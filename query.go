package fastecs

// intersectSorted computes the k-way sorted-merge intersection of the
// given ascending id lists: one cursor per list, all starting at the
// front. Each round finds the maximum id under the cursors, advances
// every cursor sitting below it (cursors never move backward), and stops
// as soon as any cursor runs off its list. When all cursors agree on an
// id it is a match and every cursor advances past it. With n lists of
// lengths L1..Ln this is O(sum Li), unlike probing each element of the
// shortest list against the others.
func intersectSorted(lists [][]EntityID) []EntityID {
	if len(lists) == 0 {
		return nil
	}
	for _, list := range lists {
		if len(list) == 0 {
			return nil
		}
	}
	cursors := make([]int, len(lists))
	var out []EntityID
	for {
		maxID := lists[0][cursors[0]]
		for i := 1; i < len(lists); i++ {
			if id := lists[i][cursors[i]]; id > maxID {
				maxID = id
			}
		}
		match := true
		for i := range lists {
			for lists[i][cursors[i]] < maxID {
				cursors[i]++
				if cursors[i] == len(lists[i]) {
					return out
				}
			}
			if lists[i][cursors[i]] != maxID {
				match = false
			}
		}
		if !match {
			continue
		}
		out = append(out, maxID)
		for i := range lists {
			cursors[i]++
			if cursors[i] == len(lists[i]) {
				return out
			}
		}
	}
}

// Entities returns every entity in the chosen pool set (all active pools
// when none is given), in no particular order. This is the zero-type
// query: no component filter applies.
func (s *Store[G, M, P]) Entities(pools ...P) []Handle[G, M, P] {
	var out []Handle[G, M, P]
	for _, pool := range s.poolsOrAll(pools) {
		for id := range s.reg.pools[pool] {
			out = append(out, Handle[G, M, P]{ReadHandle[G, M, P]{id: id, pool: pool, s: s}})
		}
	}
	return out
}

// filterIDs runs the merge intersection for one pool over the listed
// type-erased stores.
func filterIDs[P comparable](pool P, stores []anyStore[P]) []EntityID {
	lists := make([][]EntityID, len(stores))
	for i, cs := range stores {
		lists[i] = cs.ids(pool)
	}
	return intersectSorted(lists)
}

func collectHandles[G any, M any, P comparable](s *Store[G, M, P], pools []P, stores []anyStore[P]) []Handle[G, M, P] {
	var out []Handle[G, M, P]
	for _, pool := range s.poolsOrAll(pools) {
		for _, id := range filterIDs(pool, stores) {
			out = append(out, Handle[G, M, P]{ReadHandle[G, M, P]{id: id, pool: pool, s: s}})
		}
	}
	return out
}

func asReadHandles[G any, M any, P comparable](handles []Handle[G, M, P]) []ReadHandle[G, M, P] {
	if handles == nil {
		return nil
	}
	out := make([]ReadHandle[G, M, P], len(handles))
	for i, h := range handles {
		out[i] = h.ReadHandle
	}
	return out
}

// Filter returns the entities in the chosen pool set owning a component
// of type A, ascending by id within each pool. An unregistered type
// matches nothing. The result is independent of the order components were
// inserted.
func Filter[A any, G any, M any, P comparable](s *Store[G, M, P], pools ...P) []Handle[G, M, P] {
	a, _, err := storeFor[A](s)
	if err != nil {
		return nil
	}
	return collectHandles(s, pools, []anyStore[P]{a})
}

// Filter2 returns the entities owning components of both listed types.
// Listing order does not matter.
func Filter2[A any, B any, G any, M any, P comparable](s *Store[G, M, P], pools ...P) []Handle[G, M, P] {
	a, _, errA := storeFor[A](s)
	b, _, errB := storeFor[B](s)
	if errA != nil || errB != nil {
		return nil
	}
	return collectHandles(s, pools, []anyStore[P]{a, b})
}

// Filter3 returns the entities owning components of all three listed
// types.
func Filter3[A any, B any, C any, G any, M any, P comparable](s *Store[G, M, P], pools ...P) []Handle[G, M, P] {
	a, _, errA := storeFor[A](s)
	b, _, errB := storeFor[B](s)
	c, _, errC := storeFor[C](s)
	if errA != nil || errB != nil || errC != nil {
		return nil
	}
	return collectHandles(s, pools, []anyStore[P]{a, b, c})
}

// Filter4 returns the entities owning components of all four listed
// types.
func Filter4[A any, B any, C any, D any, G any, M any, P comparable](s *Store[G, M, P], pools ...P) []Handle[G, M, P] {
	a, _, errA := storeFor[A](s)
	b, _, errB := storeFor[B](s)
	c, _, errC := storeFor[C](s)
	d, _, errD := storeFor[D](s)
	if errA != nil || errB != nil || errC != nil || errD != nil {
		return nil
	}
	return collectHandles(s, pools, []anyStore[P]{a, b, c, d})
}

// ReadFilter is Filter over a read-only view.
func ReadFilter[A any, G any, M any, P comparable](v View[G, M, P], pools ...P) []ReadHandle[G, M, P] {
	return asReadHandles(Filter[A](v.s, pools...))
}

// ReadFilter2 is Filter2 over a read-only view.
func ReadFilter2[A any, B any, G any, M any, P comparable](v View[G, M, P], pools ...P) []ReadHandle[G, M, P] {
	return asReadHandles(Filter2[A, B](v.s, pools...))
}

// ReadFilter3 is Filter3 over a read-only view.
func ReadFilter3[A any, B any, C any, G any, M any, P comparable](v View[G, M, P], pools ...P) []ReadHandle[G, M, P] {
	return asReadHandles(Filter3[A, B, C](v.s, pools...))
}

// ReadFilter4 is Filter4 over a read-only view.
func ReadFilter4[A any, B any, C any, D any, G any, M any, P comparable](v View[G, M, P], pools ...P) []ReadHandle[G, M, P] {
	return asReadHandles(Filter4[A, B, C, D](v.s, pools...))
}
