// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscq

// config carries construction-time options as an instance-level value
// rather than a process-wide setting, so a single process can run several
// differently-configured queues at once.
type config struct {
	capacity      int
	sparseShift   uint
	cacheLineSize int
}

// Builder configures and creates a Queue[T] through a fluent construction
// API, narrowed to the two options this queue supports: SparseShift and
// CacheLineSize. Producer/consumer cardinality is not configurable here —
// this package implements a bounded multi-producer/single-consumer queue
// only.
type Builder struct {
	cfg config
}

// NewBuilder creates a queue builder for the given requested capacity.
// Capacity rounds up to the next power of two; values below 2 round up to
// 2. Panics with ArgumentError if capacity is non-positive.
func NewBuilder(capacity int) *Builder {
	if capacity <= 0 {
		panic(ArgumentError{Op: "NewBuilder", Message: "capacity must be positive"})
	}
	return &Builder{cfg: config{capacity: capacity, cacheLineSize: 64}}
}

// SparseShift sets S: each logical slot is separated from the next by
// 1<<S physical slots, trading memory for reduced false sharing between
// adjacent logical positions. Default is 0 (no spacing).
func (b *Builder) SparseShift(shift uint) *Builder {
	b.cfg.sparseShift = shift
	return b
}

// CacheLineSize sets the byte size used to compute the buffer-end padding.
// The physical slot stride depends on SparseShift only. Must be a power of
// two. Default is 64.
// Panics with ArgumentError otherwise.
func (b *Builder) CacheLineSize(bytes int) *Builder {
	if bytes <= 0 || bytes&(bytes-1) != 0 {
		panic(ArgumentError{Op: "CacheLineSize", Message: "cache line size must be a positive power of two"})
	}
	b.cfg.cacheLineSize = bytes
	return b
}

// Build creates a Queue[T] from the builder's configuration.
//
// Build is a package-level generic function, not a method on Builder,
// because Go methods cannot introduce type parameters beyond those of
// their receiver.
func Build[T any](b *Builder) *Queue[T] {
	return newQueue[T](b.cfg)
}

// New creates a Queue[T] with the given capacity and default options
// (SparseShift 0, CacheLineSize 64). Equivalent to
// Build[T](NewBuilder(capacity)).
func New[T any](capacity int) *Queue[T] {
	return Build[T](NewBuilder(capacity))
}
