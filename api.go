package fastecs

// EntityID uniquely identifies an entity within a store.
// IDs are minted monotonically starting at zero and are never reused.
type EntityID uint64

// Threading selects the execution mode for the store's scheduler and
// message queue.
type Threading int

const (
	// Single runs every system on the calling goroutine; the message
	// queue appends without locking.
	Single Threading = iota
	// Multi lets RunConcurrent spawn worker goroutines; the message
	// queue synchronizes every operation.
	Multi
)

// MaxComponentTypes caps how many distinct component types may be
// registered in one store. Component ownership is tracked per entity in a
// fixed-width bitmask, so registrations beyond this limit fail with
// CapacityExceededError.
const MaxComponentTypes = 64

// hostSystem tags messages sent from outside any system body.
const hostSystem int16 = -1

// NoGlobal is a placeholder for stores that carry no global value.
type NoGlobal struct{}

// NoPool is a placeholder pool type for stores that do not partition
// their entities.
type NoPool struct{}

// NoMessage is a placeholder message type for stores that do not use the
// message queue.
type NoMessage struct{}
