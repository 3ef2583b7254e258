// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscq

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// pad isolates a hot field from its struct neighbors on the cache
// hierarchy. cpu.CacheLinePad is sized per build target by the x/sys/cpu
// package, which is a better fit than a hand-rolled [64]byte: it already
// accounts for architectures whose cache line is not 64 bytes.
//
// This only isolates producerIndex and consumerIndex from each other and
// from the rest of the Queue[T] struct — it does not vary with the
// CacheLineSize builder option, because Go struct layout is fixed per
// type, not per instance. See DESIGN.md for the full reasoning; the
// buffer-end padding computed in refBufferPad is what CacheLineSize
// actually governs.
type pad = cpu.CacheLinePad

// refSize is the size in bytes of one element-reference slot. Slots are
// atomic.Pointer[T] cells; on every architecture Go supports, a pointer is
// one machine word.
const refSize = int(unsafe.Sizeof(uintptr(0)))

// roundToPow2 rounds n up to the next power of two. Values below 2 round
// up to 2, the smallest usable capacity for a queue with distinct producer
// and consumer slots.
func roundToPow2(n int) uint64 {
	if n < 2 {
		return 2
	}
	v := uint64(n)
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// refBufferPad computes P, the number of padding slots on either end of
// the data region, as a function of the configured cache-line size:
// P = (cacheLineSize * 2) / sizeof(ref). This is a direct port of the
// source's REF_BUFFER_PAD computation from JvmInfo.CACHE_LINE_SIZE and the
// JVM's Object[] element scale.
func refBufferPad(cacheLineSize int) uint64 {
	return uint64(cacheLineSize*2) / uint64(refSize)
}
