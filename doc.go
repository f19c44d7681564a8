/*
Package fastecs provides an embeddable Entity-Component-System (ECS) data
store with query and scheduling support for simulation-style applications.

The store holds large, heterogeneous collections of typed component
values keyed by entity ids, partitioned into pools, and runs named
systems over subsets of them every tick. Per component type and pool,
values live in an association list sorted by entity id, so point access
is a binary search and multi-type queries are a single sorted-merge pass.

Core Concepts:

  - Entity: A unique identifier that represents a record; it carries no
    data itself and belongs to exactly one pool.
  - Component: A plain value type attached to an entity, one value per
    (type, entity).
  - Pool: A named partition of entities used to scope queries.
  - System: A named unit of per-tick processing, run sequentially or
    concurrently, timed, and able to communicate through the message
    queue.

Basic Usage:

	// Construct a store: global value, message union, pool type
	store := fastecs.New[Global, Message](Global{}, fastecs.NoPool{})

	// Declare components
	fastecs.RegisterComponent[Position](store)
	fastecs.RegisterComponent[Velocity](store)

	// Create an entity with components
	e := store.NewEntity()
	fastecs.Add(e, Position{X: 4, Y: 5})
	fastecs.Add(e, Velocity{X: 1, Y: 0})

	// Query entities owning both types and process them
	for _, h := range fastecs.Filter2[Position, Velocity](store) {
		pos, _ := fastecs.Get[Position](h)
		vel, _ := fastecs.Get[Velocity](h)
		pos.X += vel.X
		pos.Y += vel.Y
	}

	// Run systems each tick
	store.StartFrame()
	store.RunMutable("move", moveSystem)
	store.RunConcurrent("audit", auditSystem)
	store.Join()

Mutable access is a capability of *Store and Handle; concurrent systems
receive a read-only View and ReadHandle instead, so the single-writer
rule is enforced by the type system rather than by convention. The
message queue is the one part of the store that concurrent systems may
write to.
*/
package fastecs
