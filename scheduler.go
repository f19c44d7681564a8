package fastecs

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Context identifies the currently executing system. It is passed
// explicitly to every system body (there is no hidden per-goroutine
// state) and is the only way a system can tag the messages it sends.
type Context[M any] struct {
	name  string
	index int16
	queue *messageQueue[M]
}

// Name returns the system's host-chosen name.
func (c Context[M]) Name() string { return c.name }

// Index returns the system's stable index, assigned on first run.
func (c Context[M]) Index() int16 { return c.index }

// Send queues a message tagged with this system as its producer. The
// message survives until the system's next run purges it, or until it is
// popped or cleared.
func (c Context[M]) Send(msg M) {
	c.queue.push(msg, c.index)
}

// ReadSystem is a system body that only inspects the store. It receives
// the read-only View, so component mutation is unreachable at compile
// time; sending messages remains possible through the context.
type ReadSystem[G any, M any, P comparable] func(Context[M], View[G, M, P]) error

// MutableSystem is a system body with full store access, runnable only
// synchronously on the controlling goroutine.
type MutableSystem[G any, M any, P comparable] func(Context[M], *Store[G, M, P]) error

// scheduler maps system names to stable indices and times every run.
// Workers spawned by RunConcurrent accumulate in the group until Join.
type scheduler struct {
	systems *indexCache
	timer   timer
	workers *errgroup.Group
}

func newScheduler() scheduler {
	return scheduler{systems: newIndexCache()}
}

// systemContext resolves a name to its context, registering the name on
// first use. Index assignment is monotonic, first-seen order, stable for
// the store's lifetime.
func (s *Store[G, M, P]) systemContext(name string) Context[M] {
	return Context[M]{
		name:  name,
		index: s.scheduler.systems.Register(name),
		queue: &s.messages,
	}
}

// RunReadOnly runs a system synchronously against the read-only view.
// The system's own messages from its previous run are purged before the
// body executes; its elapsed time accumulates in the single-threaded
// bucket.
func (s *Store[G, M, P]) RunReadOnly(name string, fn ReadSystem[G, M, P]) error {
	start := time.Now()
	ctx := s.systemContext(name)
	s.messages.clearSystem(ctx.index)
	err := fn(ctx, s.View())
	elapsed := time.Since(start)
	s.scheduler.timer.add(name, elapsed, false)
	s.log.Debug("system finished",
		zap.String("system", name), zap.Duration("elapsed", elapsed))
	return err
}

// RunMutable runs a system synchronously with mutable store access.
func (s *Store[G, M, P]) RunMutable(name string, fn MutableSystem[G, M, P]) error {
	start := time.Now()
	ctx := s.systemContext(name)
	s.messages.clearSystem(ctx.index)
	err := fn(ctx, s)
	elapsed := time.Since(start)
	s.scheduler.timer.add(name, elapsed, false)
	s.log.Debug("system finished",
		zap.String("system", name), zap.Duration("elapsed", elapsed))
	return err
}

// RunConcurrent runs a read-only system on a worker goroutine when the
// store is in Multi mode; in Single mode it behaves exactly like
// RunReadOnly. Workers started since the last Join run concurrently with
// each other and are unordered relative to one another; their errors
// surface from Join. A panic escaping a worker is fatal to the process;
// there is no recovery path.
func (s *Store[G, M, P]) RunConcurrent(name string, fn ReadSystem[G, M, P]) error {
	if s.threading == Single {
		return s.RunReadOnly(name, fn)
	}
	ctx := s.systemContext(name)
	s.messages.clearSystem(ctx.index)
	if s.scheduler.workers == nil {
		s.scheduler.workers = new(errgroup.Group)
	}
	v := s.View()
	s.scheduler.workers.Go(func() error {
		start := time.Now()
		err := fn(ctx, v)
		elapsed := time.Since(start)
		s.scheduler.timer.add(name, elapsed, true)
		s.log.Debug("system finished",
			zap.String("system", name), zap.Duration("elapsed", elapsed),
			zap.Bool("concurrent", true))
		return err
	})
	return nil
}

// Join blocks until every worker spawned since the last Join has
// finished, clears the worker list and returns the first system error.
// There is no cancellation or timeout: a system that never returns blocks
// Join indefinitely. Calling Join with no outstanding workers is a no-op.
func (s *Store[G, M, P]) Join() error {
	if s.scheduler.workers == nil {
		return nil
	}
	err := s.scheduler.workers.Wait()
	s.scheduler.workers = nil
	s.log.Debug("workers joined")
	return err
}

// StartFrame marks the beginning of a tick for the timer's per-tick
// means.
func (s *Store[G, M, P]) StartFrame() {
	s.scheduler.timer.startFrame()
}

// ResetTimer clears all accumulated system times and the tick counter.
func (s *Store[G, M, P]) ResetTimer() {
	s.scheduler.timer.reset()
}

// TimerST reports the mean single-threaded time per system per tick since
// the last ResetTimer, including the synthetic "multithreaded" total
// bucket.
func (s *Store[G, M, P]) TimerST() []SystemTime {
	return s.scheduler.timer.report(false)
}

// TimerMT reports the mean multithreaded time per system per tick since
// the last ResetTimer.
func (s *Store[G, M, P]) TimerMT() []SystemTime {
	return s.scheduler.timer.report(true)
}
