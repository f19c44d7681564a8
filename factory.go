package fastecs

import "reflect"

// New constructs a store holding the given global value. The default pool
// value is fixed here and used by NewEntity; hosts without pools pass
// NoPool{}. Threading defaults to Multi.
func New[G any, M any, P comparable](global G, defaultPool P, opts ...Option) *Store[G, M, P] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Store[G, M, P]{
		global:      global,
		threading:   cfg.threading,
		log:         cfg.logger,
		defaultPool: defaultPool,
		schema:      newSchema(),
		reg:         newRegistry(defaultPool),
		messages:    newMessageQueue[M](cfg.threading == Multi),
		scheduler:   newScheduler(),
	}
	return s
}

// RegisterComponent declares component type C as part of the store's
// component list and returns its bit index. Registration is idempotent;
// the index is stable for the store's lifetime. Declaring more than
// MaxComponentTypes distinct types fails with CapacityExceededError.
func RegisterComponent[C any, G any, M any, P comparable](s *Store[G, M, P]) (uint32, error) {
	t := reflect.TypeFor[C]()
	if bit, ok := s.schema.rowIndexFor(t); ok {
		return bit, nil
	}
	if len(s.stores) >= MaxComponentTypes {
		return 0, CapacityExceededError{What: "component registry", Limit: MaxComponentTypes}
	}
	bit := uint32(len(s.stores))
	s.schema.rows[t] = bit
	s.stores = append(s.stores, newComponentStore[C, P]())
	return bit, nil
}
