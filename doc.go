// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpscq provides a bounded, lock-free, multi-producer
// single-consumer FIFO queue.
//
// # Quick start
//
//	q := mpscq.New[Event](1024)
//
//	ok := q.Offer(&ev)   // many goroutines may call Offer concurrently
//	e, ok := q.Poll()    // exactly one goroutine may call Poll at a time
//
// Capacity rounds up to the next power of two; New[T](5).Capacity() == 8.
//
// # Configuration
//
// The Builder exposes the two tunables recognised by this package:
//
//	q := mpscq.Build[Event](
//	    mpscq.NewBuilder(4096).SparseShift(1).CacheLineSize(128),
//	)
//
// SparseShift spaces successive logical slots 1<<S physical slots apart,
// trading memory for reduced false sharing between adjacent positions.
// CacheLineSize sizes the padding between the live slot region and its
// neighbors, and must be a power of two; it defaults to 64.
//
// # Ordering
//
// Offer publishes the element that wins logical index i; Poll for index i
// returns exactly that element, never one from a different logical index,
// regardless of the real-time order in which concurrent Offer calls
// return. A successful Offer synchronizes-with the Poll that returns its
// element: anything the producer did before Offer returned is visible to
// the consumer after Poll returns.
//
// # Single-consumer contract
//
// Poll, Peek, and Clear may only be called from one goroutine at a time.
// Violating this is undetected by design — it silently breaks FIFO
// ordering and may drop or duplicate elements — because detecting it would
// require the cross-core synchronization this queue exists to avoid.
//
// # Non-goals
//
// This package implements bounded MPSC only: no SPSC, SPMC, or MPMC
// variant, no unbounded or linked backing store, no blocking/park-wait
// operations, no fairness guarantee among producers, and no iteration
// (Queue.Iterate always panics with UnsupportedOperationError).
package mpscq
