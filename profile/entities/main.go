// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	fastecs "github.com/andrenho/fast-ecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		s := fastecs.New[fastecs.NoGlobal, any](fastecs.NoGlobal{}, fastecs.NoPool{},
			fastecs.WithThreading(fastecs.Single))
		if _, err := fastecs.RegisterComponent[comp1](s); err != nil {
			panic(err)
		}
		if _, err := fastecs.RegisterComponent[comp2](s); err != nil {
			panic(err)
		}

		for range iters {
			for i := 0; i < numEntities; i++ {
				e := s.NewEntity()
				_, _ = fastecs.Add(e, comp1{V: int64(i)})
				_, _ = fastecs.Add(e, comp2{V: 1, W: 1})
			}
			for _, e := range fastecs.Filter2[comp1, comp2](s) {
				c1, _ := fastecs.Get[comp1](e)
				c2, _ := fastecs.Get[comp2](e)
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range fastecs.Filter[comp1](s) {
				_ = s.RemoveEntity(e)
			}
		}
	}
}
