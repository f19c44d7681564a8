// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		s := fastecs.New[fastecs.NoGlobal, any](fastecs.NoGlobal{}, fastecs.NoPool{},
			fastecs.WithThreading(fastecs.Single))
		for _, register := range []func() error{
			func() error { _, err := fastecs.RegisterComponent[comp1](s); return err },
			func() error { _, err := fastecs.RegisterComponent[comp2](s); return err },
			func() error { _, err := fastecs.RegisterComponent[comp3](s); return err },
			func() error { _, err := fastecs.RegisterComponent[comp4](s); return err },
		} {
			if err := register(); err != nil {
				panic(err)
			}
		}

		for i := 0; i < numEntities; i++ {
			e := s.NewEntity()
			_, _ = fastecs.Add(e, comp1{V: int64(i)})
			_, _ = fastecs.Add(e, comp2{V: 1, W: 1})
			if i%2 == 0 {
				_, _ = fastecs.Add(e, comp3{})
			}
			if i%3 == 0 {
				_, _ = fastecs.Add(e, comp4{})
			}
		}

		for range iters {
			for _, e := range fastecs.Filter4[comp1, comp2, comp3, comp4](s) {
				c1, _ := fastecs.Get[comp1](e)
				c2, _ := fastecs.Get[comp2](e)
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
