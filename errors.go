package fastecs

import "fmt"

// NotFoundError reports an unknown entity id, a component absent from an
// otherwise valid entity, or an operation on a component type that was
// never registered. Component is empty when the entity itself is unknown.
type NotFoundError struct {
	Entity    EntityID
	Component string
}

func (e NotFoundError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("entity %d not found", e.Entity)
	}
	return fmt.Sprintf("entity %d has no component %q", e.Entity, e.Component)
}

// AlreadyExistsError reports an attempt to add a component to an entity
// that already owns one of that type. Adding is never an overwrite.
type AlreadyExistsError struct {
	Entity    EntityID
	Component string
}

func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("component %q already exists for entity %d", e.Component, e.Entity)
}

// CapacityExceededError reports a registration that would overflow a
// fixed-width index, such as declaring more component types than
// MaxComponentTypes.
type CapacityExceededError struct {
	What  string
	Limit int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("%s at maximum capacity (%d)", e.What, e.Limit)
}

// InvariantViolationError reports an internal consistency failure that
// correct code should never produce, e.g. the registry bitmask and the
// per-type association list disagreeing about component ownership.
type InvariantViolationError struct {
	Detail string
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("store invariant violated: %s", e.Detail)
}
