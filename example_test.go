package fastecs_test

import (
	"fmt"

	fastecs "github.com/andrenho/fast-ecs"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Explosion is a message payload produced by systems
type Explosion struct {
	Power int
}

// Example shows basic store usage with entity creation and queries
func Example_basic() {
	// Create the store
	s := fastecs.New[fastecs.NoGlobal, any](fastecs.NoGlobal{}, fastecs.NoPool{})

	// Register components
	fastecs.RegisterComponent[Position](s)
	fastecs.RegisterComponent[Velocity](s)
	fastecs.RegisterComponent[Name](s)

	// Create entities
	for i := 0; i < 5; i++ {
		e := s.NewEntity()
		fastecs.Add(e, Position{})
	}
	for i := 0; i < 3; i++ {
		e := s.NewEntity()
		fastecs.Add(e, Position{})
		fastecs.Add(e, Velocity{})
	}

	// Create one named, moving entity
	player := s.NewEntity()
	fastecs.Add(player, Position{X: 10.0, Y: 20.0})
	fastecs.Add(player, Velocity{X: 1.0, Y: 2.0})
	fastecs.Add(player, Name{Value: "Player"})

	// Query for all entities with position and velocity
	matches := fastecs.Filter2[Position, Velocity](s)
	fmt.Printf("Found %d entities with position and velocity\n", len(matches))

	// Process the named entities
	for _, e := range fastecs.Filter2[Name, Position](s) {
		pos, _ := fastecs.Get[Position](e)
		vel, _ := fastecs.Get[Velocity](e)
		nme, _ := fastecs.Get[Name](e)

		// Update position based on velocity
		pos.X += vel.X
		pos.Y += vel.Y

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_systems shows running systems and passing messages between them
func Example_systems() {
	s := fastecs.New[fastecs.NoGlobal, any](fastecs.NoGlobal{}, fastecs.NoPool{},
		fastecs.WithThreading(fastecs.Single))
	fastecs.RegisterComponent[Position](s)

	e := s.NewEntity()
	fastecs.Add(e, Position{X: 1, Y: 1})

	// A mutable system moves every entity and reports what it did
	move := func(ctx fastecs.Context[any], s *fastecs.Store[fastecs.NoGlobal, any, fastecs.NoPool]) error {
		for _, e := range fastecs.Filter[Position](s) {
			pos, err := fastecs.Get[Position](e)
			if err != nil {
				return err
			}
			pos.X += 2
			ctx.Send(Explosion{Power: int(pos.X)})
		}
		return nil
	}

	s.StartFrame()
	if err := s.RunMutable("move", move); err != nil {
		fmt.Println("move failed:", err)
		return
	}

	// The controlling code consumes the messages after the tick
	for _, msg := range fastecs.PopMessages[Explosion](s) {
		fmt.Printf("explosion with power %d\n", msg.Power)
	}
	fmt.Printf("%d messages left\n", s.MessageQueueSize())

	// Output:
	// explosion with power 3
	// 0 messages left
}

// Example_pools shows scoping entities and queries to pools
func Example_pools() {
	type level string

	s := fastecs.New[fastecs.NoGlobal, any, level](fastecs.NoGlobal{}, "overworld")
	fastecs.RegisterComponent[Position](s)

	a := s.NewEntity()
	fastecs.Add(a, Position{X: 1})
	b := s.NewEntityIn("dungeon")
	fastecs.Add(b, Position{X: 2})

	fmt.Printf("all pools: %d entities\n", len(fastecs.Filter[Position](s)))
	fmt.Printf("dungeon only: %d entities\n", len(fastecs.Filter[Position](s, "dungeon")))

	// Output:
	// all pools: 2 entities
	// dungeon only: 1 entities
}
