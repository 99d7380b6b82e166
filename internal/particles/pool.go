package particles

import "sync"

// FramePool recycles position snapshot buffers handed to renderers and
// broadcasters, so the per-frame copy does not churn the allocator.
type FramePool struct {
	pool sync.Pool
	size int
}

// NewFramePool builds a pool of 3*count buffers.
func NewFramePool(count int) *FramePool {
	size := 3 * count
	return &FramePool{
		size: size,
		pool: sync.Pool{
			New: func() any { return make([]float64, size) },
		},
	}
}

// Size reports the pooled buffer length.
func (p *FramePool) Size() int { return p.size }

// Get returns a buffer of the pooled size.
func (p *FramePool) Get() []float64 {
	return p.pool.Get().([]float64)
}

// Snapshot copies the ensemble's current positions into a pooled buffer.
// The caller must Put the buffer back once the frame is written out.
func (p *FramePool) Snapshot(e *Ensemble) []float64 {
	buf := p.Get()
	copy(buf, e.Positions())
	return buf
}

// Put returns a buffer to the pool. Buffers of the wrong size (after a
// resize) are dropped.
func (p *FramePool) Put(buf []float64) {
	if len(buf) == p.size {
		p.pool.Put(buf)
	}
}
