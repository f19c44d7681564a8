package fastecs

import (
	"errors"
	"testing"
)

func TestIntersectSorted(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]EntityID
		want  []EntityID
	}{
		{
			name:  "no lists",
			lists: nil,
			want:  nil,
		},
		{
			name:  "one empty list",
			lists: [][]EntityID{{1, 2, 3}, {}},
			want:  nil,
		},
		{
			name:  "single list passes through",
			lists: [][]EntityID{{2, 5, 9}},
			want:  []EntityID{2, 5, 9},
		},
		{
			name:  "identical lists",
			lists: [][]EntityID{{1, 4, 7}, {1, 4, 7}},
			want:  []EntityID{1, 4, 7},
		},
		{
			name:  "disjoint lists",
			lists: [][]EntityID{{1, 3, 5}, {2, 4, 6}},
			want:  nil,
		},
		{
			name:  "partial overlap",
			lists: [][]EntityID{{1, 2, 4, 8}, {2, 3, 8, 9}},
			want:  []EntityID{2, 8},
		},
		{
			name:  "three lists uneven lengths",
			lists: [][]EntityID{{0, 2, 4, 6, 8, 10}, {2, 6, 7, 10}, {1, 2, 5, 6, 10, 11, 12}},
			want:  []EntityID{2, 6, 10},
		},
		{
			name:  "match at the very end",
			lists: [][]EntityID{{1, 9}, {2, 9}, {9}},
			want:  []EntityID{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersectSorted(tt.lists)
			if len(got) != len(tt.want) {
				t.Fatalf("intersectSorted() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("intersectSorted() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func idsOf[G any, M any, P comparable](handles []Handle[G, M, P]) map[EntityID]bool {
	out := make(map[EntityID]bool, len(handles))
	for _, h := range handles {
		out[h.ID()] = true
	}
	return out
}

func TestFilterIsSetIntersection(t *testing.T) {
	s := newTestStore(t)

	// Entities with every subset of {Position, Velocity, Health}.
	withAll := []Handle[NoGlobal, any, NoPool]{}
	withPosVel := []Handle[NoGlobal, any, NoPool]{}
	for i := 0; i < 4; i++ {
		e := s.NewEntity()
		Add(e, Position{})
		Add(e, Velocity{})
		Add(e, Health{})
		withAll = append(withAll, e)
	}
	for i := 0; i < 3; i++ {
		e := s.NewEntity()
		Add(e, Position{})
		Add(e, Velocity{})
		withPosVel = append(withPosVel, e)
	}
	for i := 0; i < 2; i++ {
		e := s.NewEntity()
		Add(e, Position{})
	}
	s.NewEntity() // no components at all

	if got := len(Filter[Position](s)); got != 9 {
		t.Errorf("Filter[Position] matched %d, want 9", got)
	}
	if got := len(Filter2[Position, Velocity](s)); got != 7 {
		t.Errorf("Filter2[Position, Velocity] matched %d, want 7", got)
	}
	if got := len(Filter3[Position, Velocity, Health](s)); got != 4 {
		t.Errorf("Filter3 matched %d, want 4", got)
	}

	// Listing order must not matter.
	forward := idsOf(Filter2[Position, Velocity](s))
	reversed := idsOf(Filter2[Velocity, Position](s))
	if len(forward) != len(reversed) {
		t.Fatalf("order-dependent filter: %v vs %v", forward, reversed)
	}
	for id := range forward {
		if !reversed[id] {
			t.Errorf("entity %d missing from reversed filter", id)
		}
	}

	want := idsOf(append(withAll, withPosVel...))
	for id := range forward {
		if !want[id] {
			t.Errorf("Filter2 matched unexpected entity %d", id)
		}
	}
}

func TestFilterInsertionOrderIndependent(t *testing.T) {
	s := newTestStore(t)

	e1 := s.NewEntity()
	e2 := s.NewEntity()
	e3 := s.NewEntity()

	// Components arrive in scrambled entity order.
	Add(e3, Velocity{})
	Add(e1, Position{})
	Add(e2, Position{})
	Add(e1, Velocity{})
	Add(e3, Position{})

	got := Filter2[Position, Velocity](s)
	want := map[EntityID]bool{e1.ID(): true, e3.ID(): true}
	if len(got) != 2 {
		t.Fatalf("Filter2 matched %d entities, want 2", len(got))
	}
	for _, h := range got {
		if !want[h.ID()] {
			t.Errorf("unexpected match %d", h.ID())
		}
	}
}

func TestFilterPoolScoping(t *testing.T) {
	s := newPooledStore(t)

	inA := s.NewEntityIn(poolA)
	inB := s.NewEntityIn(poolB)
	Add(inA, Position{X: 1})
	Add(inB, Position{X: 2})

	if got := len(Filter[Position](s)); got != 2 {
		t.Errorf("unscoped filter matched %d, want 2", got)
	}
	scoped := Filter[Position](s, poolA)
	if len(scoped) != 1 || scoped[0].ID() != inA.ID() {
		t.Errorf("Filter scoped to poolA = %v, want just entity %d", scoped, inA.ID())
	}
}

func TestFilterFour(t *testing.T) {
	s := newTestStore(t)

	full := s.NewEntity()
	Add(full, Position{})
	Add(full, Velocity{})
	Add(full, Health{})
	Add(full, Direction{Dir: "S"})

	partial := s.NewEntity()
	Add(partial, Position{})
	Add(partial, Velocity{})
	Add(partial, Health{})

	got := Filter4[Position, Velocity, Health, Direction](s)
	if len(got) != 1 || got[0].ID() != full.ID() {
		t.Errorf("Filter4 = %v, want just entity %d", got, full.ID())
	}
}

func TestQueryScenario(t *testing.T) {
	s := newTestStore(t)

	e1 := s.NewEntity()
	if _, err := Add(e1, Position{X: 4, Y: 5}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := Add(e1, Direction{Dir: "N"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	e2 := s.NewEntity()

	withPos := Filter[Position](s)
	if len(withPos) != 1 || withPos[0].ID() != e1.ID() {
		t.Errorf("Filter[Position] = %v, want {e1}", withPos)
	}
	both := Filter2[Position, Direction](s)
	if len(both) != 1 || both[0].ID() != e1.ID() {
		t.Errorf("Filter2[Position, Direction] = %v, want {e1}", both)
	}
	if HasComponent[Position](s, e2.ID()) {
		t.Error("e2 should not have Position")
	}

	if err := Remove[Position](e1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	_, err := Get[Position](e1)
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Get after remove error = %v, want NotFoundError", err)
	}
}

func TestZeroTypeQuery(t *testing.T) {
	s := newPooledStore(t)

	bare := s.NewEntityIn(poolB)
	withComp := s.NewEntity()
	Add(withComp, Position{})

	all := s.Entities()
	if len(all) != 2 {
		t.Fatalf("Entities() returned %d, want 2 (component-less entities included)", len(all))
	}
	seen := map[EntityID]bool{}
	for _, h := range all {
		seen[h.ID()] = true
	}
	if !seen[bare.ID()] || !seen[withComp.ID()] {
		t.Errorf("Entities() = %v, want both entities", seen)
	}
}

func TestReadFilters(t *testing.T) {
	s := newTestStore(t)
	e := s.NewEntity()
	Add(e, Position{X: 3})
	Add(e, Velocity{X: 1})

	v := s.View()
	got := ReadFilter2[Position, Velocity](v)
	if len(got) != 1 || got[0].ID() != e.ID() {
		t.Fatalf("ReadFilter2 = %v, want one match", got)
	}
	val, err := Read[Position](got[0])
	if err != nil || val.X != 3 {
		t.Errorf("Read through filtered handle = %+v, %v", val, err)
	}
}
