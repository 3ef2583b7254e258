// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpscq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip stress tests whose correctness depends on
// happens-before relationships established by atomic load/store pairs on
// independent variables — a relationship the race detector does not model.
const RaceEnabled = true
