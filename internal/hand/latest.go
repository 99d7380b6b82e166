package hand

import "sync/atomic"

// Latest is a single-slot, last-write-wins snapshot handoff between the
// tracking producer and the simulation consumer. The producer publishes at
// tracking-model rate, the consumer reads at render rate without blocking;
// rereading a stale snapshot is intentional so tracking loss degrades
// gracefully instead of stalling the tick loop.
type Latest struct {
	v atomic.Pointer[Snapshot]
}

func NewLatest() *Latest { return &Latest{} }

// Publish replaces the current snapshot.
func (l *Latest) Publish(s *Snapshot) {
	l.v.Store(s)
}

// Load returns the most recent snapshot, or an empty one before the first
// publish.
func (l *Latest) Load() *Snapshot {
	if s := l.v.Load(); s != nil {
		return s
	}
	return &Snapshot{}
}
