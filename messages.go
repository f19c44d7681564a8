package fastecs

import (
	"reflect"
	"sync"
)

// message is one queue entry: a payload plus the index of the system that
// produced it (hostSystem for messages sent outside any system body).
type message[M any] struct {
	payload M
	system  int16
}

// messageQueue is a flat, append-only sequence of tagged messages. In
// Multi threading mode every operation takes the lock, since workers may
// send while the controlling goroutine reads; in Single mode appends are
// unsynchronized to avoid needless locking overhead.
type messageQueue[M any] struct {
	mu      sync.Mutex
	locking bool
	entries []message[M]
	kinds   *indexCache
}

func newMessageQueue[M any](locking bool) messageQueue[M] {
	return messageQueue[M]{locking: locking, kinds: newIndexCache()}
}

func (q *messageQueue[M]) lock() {
	if q.locking {
		q.mu.Lock()
	}
}

func (q *messageQueue[M]) unlock() {
	if q.locking {
		q.mu.Unlock()
	}
}

func (q *messageQueue[M]) push(payload M, system int16) {
	q.lock()
	defer q.unlock()
	q.kinds.Register(kindName(payload))
	q.entries = append(q.entries, message[M]{payload: payload, system: system})
}

// clearSystem purges every message produced by the given system, keeping
// all others in order. The scheduler calls it before each run of that
// system so re-running a system does not accumulate duplicates.
func (q *messageQueue[M]) clearSystem(system int16) {
	q.lock()
	defer q.unlock()
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.system != system {
			kept = append(kept, e)
		}
	}
	q.entries = kept
}

func (q *messageQueue[M]) clear() {
	q.lock()
	defer q.unlock()
	q.entries = q.entries[:0]
}

func (q *messageQueue[M]) size() int {
	q.lock()
	defer q.unlock()
	return len(q.entries)
}

func (q *messageQueue[M]) numKinds() int {
	q.lock()
	defer q.unlock()
	return q.kinds.Len()
}

func kindName[M any](payload M) string {
	t := reflect.TypeOf(any(payload))
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Send queues a message from the host, outside any system. Systems send
// through their Context instead, which tags the message with its
// producer.
func (s *Store[G, M, P]) Send(msg M) {
	s.messages.push(msg, hostSystem)
}

// ClearMessages empties the message queue.
func (s *Store[G, M, P]) ClearMessages() {
	s.messages.clear()
}

// MessageQueueSize reports how many messages are queued.
func (s *Store[G, M, P]) MessageQueueSize() int {
	return s.messages.size()
}

// NumMessageTypes reports how many distinct payload kinds the queue has
// seen since construction. Kinds are indexed on first send and never
// forgotten, even across ClearMessages.
func (s *Store[G, M, P]) NumMessageTypes() int {
	return s.messages.numKinds()
}

// Messages returns the queued messages whose payload is of type T, in
// submission order. Messages of other kinds are untouched.
func Messages[T any, G any, M any, P comparable](s *Store[G, M, P]) []T {
	return filterMessages[T](&s.messages)
}

// ReadMessages is Messages over a read-only view. Reading the queue never
// requires mutable store access.
func ReadMessages[T any, G any, M any, P comparable](v View[G, M, P]) []T {
	return filterMessages[T](&v.s.messages)
}

// PopMessages returns the queued messages of payload type T in submission
// order and atomically removes them from the queue.
func PopMessages[T any, G any, M any, P comparable](s *Store[G, M, P]) []T {
	return popMessages[T](&s.messages)
}

// ReadPopMessages is PopMessages over a read-only view. The queue is the
// one resource read-only systems may write to, via its internal lock.
func ReadPopMessages[T any, G any, M any, P comparable](v View[G, M, P]) []T {
	return popMessages[T](&v.s.messages)
}

func filterMessages[T any, M any](q *messageQueue[M]) []T {
	q.lock()
	defer q.unlock()
	var out []T
	for _, e := range q.entries {
		if v, ok := any(e.payload).(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func popMessages[T any, M any](q *messageQueue[M]) []T {
	q.lock()
	defer q.unlock()
	var out []T
	kept := q.entries[:0]
	for _, e := range q.entries {
		if v, ok := any(e.payload).(T); ok {
			out = append(out, v)
		} else {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	return out
}
