package fastecs

import (
	"sync"
	"time"
)

// SystemTime is one timer bucket: a system name and its elapsed time.
type SystemTime struct {
	Name    string
	Elapsed time.Duration
}

// mtTotal is the synthetic single-threaded bucket accumulating the sum of
// all multithreaded runs.
const mtTotal = "multithreaded"

// timer accumulates per-system elapsed time into single-threaded and
// multithreaded buckets. Concurrent workers report into it, so every
// operation locks. Reports are means per tick, where StartFrame counts
// the ticks.
type timer struct {
	mu         sync.Mutex
	st         []SystemTime
	mt         []SystemTime
	iterations int
}

func (t *timer) startFrame() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.iterations++
}

func (t *timer) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.st = nil
	t.mt = nil
	t.iterations = 0
}

func (t *timer) add(name string, elapsed time.Duration, mt bool) {
	t.mu.Lock()
	bucket := &t.st
	if mt {
		bucket = &t.mt
	}
	accumulate(bucket, name, elapsed)
	t.mu.Unlock()
	if mt {
		t.add(mtTotal, elapsed, false)
	}
}

func accumulate(bucket *[]SystemTime, name string, elapsed time.Duration) {
	for i := range *bucket {
		if (*bucket)[i].Name == name {
			(*bucket)[i].Elapsed += elapsed
			return
		}
	}
	*bucket = append(*bucket, SystemTime{Name: name, Elapsed: elapsed})
}

// report returns each bucket's mean elapsed time per tick. With no ticks
// recorded it returns the raw totals rather than dividing by zero.
func (t *timer) report(mt bool) []SystemTime {
	t.mu.Lock()
	defer t.mu.Unlock()
	bucket := t.st
	if mt {
		bucket = t.mt
	}
	out := make([]SystemTime, len(bucket))
	copy(out, bucket)
	if t.iterations > 0 {
		for i := range out {
			out[i].Elapsed /= time.Duration(t.iterations)
		}
	}
	return out
}
