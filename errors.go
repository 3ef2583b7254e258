// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscq

// ArgumentError reports a contract violation by the caller: a non-positive
// capacity, a non-power-of-two cache-line size, or a nil element passed to
// Offer. It is panicked at the point of misuse, never returned: these are
// programmer errors, not runtime conditions a caller should have to check
// for on every call.
type ArgumentError struct {
	Op      string
	Message string
}

func (e ArgumentError) Error() string {
	return "mpscq: " + e.Op + ": " + e.Message
}

// UnsupportedOperationError reports an operation the queue intentionally
// never supports. The only such operation today is iteration: a bounded
// MPSC queue has no safe way to expose a consistent snapshot of in-flight
// slots to a caller while producers keep publishing into them.
type UnsupportedOperationError struct {
	Op string
}

func (e UnsupportedOperationError) Error() string {
	return "mpscq: unsupported operation: " + e.Op
}
