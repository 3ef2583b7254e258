// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is a bounded, lock-free, multi-producer/single-consumer FIFO of
// element references.
//
// Producers coordinate through a single atomic CAS on producerIndex; the
// consumer is the sole writer of consumerIndex and the sole writer of nils
// into slots it has drained. There is no mutex and no reader-writer lock —
// the memory-ordering discipline on producerIndex, consumerIndex, and the
// slots themselves is the entirety of the synchronization.
//
// Queue assumes at most one goroutine calls Poll, Peek, or Clear at any
// time. Violating that assumption is undetected by design: it silently
// breaks FIFO ordering and may drop or duplicate elements. This is a
// documentation-level contract only, not a runtime-checked one — checking
// it would require exactly the kind of cross-core synchronization this
// queue exists to avoid.
type Queue[T any] struct {
	_             pad
	producerIndex atomix.Uint64
	_             pad
	consumerIndex atomix.Uint64
	_             pad
	mask          uint64
	capacity      uint64
	shift         uint
	pad0          uint64
	buffer        []atomic.Pointer[T]
	_             pad
}

// newQueue builds the padded slot array: a data region of capacity<<shift
// slots, of which only every (1<<shift)-th is live, flanked on both ends by
// pad0 = refBufferPad(cacheLineSize) slots that exist solely so neither the
// first nor the last live slot shares a cache line with a potentially hot
// neighbor.
func newQueue[T any](cfg config) *Queue[T] {
	cap64 := roundToPow2(cfg.capacity)
	pad0 := refBufferPad(cfg.cacheLineSize)

	dataSlots := cap64 << cfg.sparseShift
	total := dataSlots + 2*pad0

	q := &Queue[T]{
		mask:     cap64 - 1,
		capacity: cap64,
		shift:    cfg.sparseShift,
		pad0:     pad0,
		buffer:   make([]atomic.Pointer[T], total),
	}
	return q
}

// slotIndex maps a logical index to its physical slot, folding the
// buffer-start padding and the sparse-shift stride into a single
// computation: physical = pad0 + (i & mask) << shift.
func (q *Queue[T]) slotIndex(i uint64) uint64 {
	return q.pad0 + ((i & q.mask) << q.shift)
}

// Offer publishes e into the queue. e must not be nil; passing nil panics
// with ArgumentError before any state is touched.
//
// Offer returns false if the queue appears full to this producer at the
// moment it checked, true once e has been published. It never blocks and
// never spins on the slot itself — only on CAS contention with other
// producers.
func (q *Queue[T]) Offer(e *T) bool {
	if e == nil {
		panic(ArgumentError{Op: "Offer", Message: "element must not be nil"})
	}

	var sw spin.Wait
	var cachedConsumer uint64
	haveCached := false

	for {
		producerIdx := q.producerIndex.LoadAcquire()

		// Fullness check: reuse a cached consumerIndex across CAS retries
		// and only refresh it when the stale value suggests the queue is
		// full, so contending producers don't all hammer consumerIndex on
		// every retry.
		if !haveCached || producerIdx-cachedConsumer >= q.capacity {
			cachedConsumer = q.consumerIndex.LoadAcquire()
			haveCached = true
			if producerIdx-cachedConsumer >= q.capacity {
				return false
			}
		}

		if q.producerIndex.CompareAndSwapAcqRel(producerIdx, producerIdx+1) {
			q.buffer[q.slotIndex(producerIdx)].Store(e)
			return true
		}
		sw.Once()
	}
}

// Poll removes and returns the oldest undelivered element, or (nil, false)
// if the queue is empty. Poll must only be called from a single consumer
// goroutine at a time.
func (q *Queue[T]) Poll() (*T, bool) {
	consumerIdx := q.consumerIndex.LoadRelaxed()
	idx := q.slotIndex(consumerIdx)

	e := q.buffer[idx].Load()
	if e == nil {
		producerIdx := q.producerIndex.LoadAcquire()
		if producerIdx == consumerIdx {
			return nil, false
		}
		// A producer has reserved this position but has not finished
		// publishing; this is the only case Poll spins on, and it is
		// bounded by that one producer's completion.
		var sw spin.Wait
		for e == nil {
			sw.Once()
			e = q.buffer[idx].Load()
		}
	}

	q.buffer[idx].Store(nil)
	q.consumerIndex.StoreRelease(consumerIdx + 1)
	return e, true
}

// Peek returns the oldest undelivered element without removing it, or
// (nil, false) if the queue is empty. Peek must only be called from the
// same single consumer goroutine that calls Poll and Clear.
func (q *Queue[T]) Peek() (*T, bool) {
	consumerIdx := q.consumerIndex.LoadRelaxed()
	idx := q.slotIndex(consumerIdx)

	e := q.buffer[idx].Load()
	if e == nil {
		producerIdx := q.producerIndex.LoadAcquire()
		if producerIdx == consumerIdx {
			return nil, false
		}
		var sw spin.Wait
		for e == nil {
			sw.Once()
			e = q.buffer[idx].Load()
		}
	}
	return e, true
}

// Size returns a loose snapshot of the number of elements currently in the
// queue, always within [0, Capacity()]. Because producerIndex and
// consumerIndex are loaded independently, the snapshot may be stale by the
// time it is returned; it is clamped defensively so a torn read never
// produces a value outside the valid range.
func (q *Queue[T]) Size() int {
	producerIdx := q.producerIndex.LoadAcquire()
	consumerIdx := q.consumerIndex.LoadAcquire()

	diff := int64(producerIdx - consumerIdx)
	switch {
	case diff < 0:
		return 0
	case diff > int64(q.capacity):
		return int(q.capacity)
	default:
		return int(diff)
	}
}

// IsEmpty reports whether the queue had no undelivered elements at the
// moment producerIndex and consumerIndex were sampled.
func (q *Queue[T]) IsEmpty() bool {
	return q.producerIndex.LoadAcquire() == q.consumerIndex.LoadAcquire()
}

// Capacity returns the exact usable capacity: the smallest power of two
// greater than or equal to max(2, the requested capacity).
func (q *Queue[T]) Capacity() int {
	return int(q.capacity)
}

// Clear drains the queue by repeatedly calling Poll until two successive
// observations report empty.
//
// Clear's contract assumes a quiescent producer population: if producers
// keep offering concurrently with Clear, this loop is not guaranteed to
// terminate. Callers that need to clear a live queue must first stop
// producers.
func (q *Queue[T]) Clear() {
	emptyStreak := 0
	for emptyStreak < 2 {
		if _, ok := q.Poll(); ok {
			emptyStreak = 0
			continue
		}
		emptyStreak++
	}
}

// Iterate always panics with UnsupportedOperationError. A bounded MPSC
// queue has no safe way to expose a consistent view of in-flight slots to
// a caller while producers keep publishing into them.
func (q *Queue[T]) Iterate(func(*T) bool) {
	panic(UnsupportedOperationError{Op: "Iterate"})
}
