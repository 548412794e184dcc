// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

// RoundRobinQueue is a relaxed FIFO composer built from N strict
// sub-queues, spreading work by advancing a handle-local cursor on every
// call instead of sampling. Dequeue falls back to a full index-order scan
// starting from the cursor on a miss.
//
// RoundRobinQueue makes no emptiness-linearization guarantee: unlike
// [DCBOQueue], its "empty" result is a best-effort scan, not a
// double-collect.
type RoundRobinQueue[T any, S any, Q SubQueue[T, S]] struct {
	subqueues []Q
}

// NewRoundRobinQueue builds a round-robin composer over subqueues. Panics
// if len(subqueues) < 1.
func NewRoundRobinQueue[T any, S any, Q SubQueue[T, S]](subqueues []Q) *RoundRobinQueue[T, S, Q] {
	validateComposer(len(subqueues), 1)
	return &RoundRobinQueue[T, S, Q]{subqueues: subqueues}
}

// RoundRobinHandle is a per-goroutine handle on a [RoundRobinQueue],
// owning its sub-queue states and cursor.
type RoundRobinHandle[T any, S any, Q SubQueue[T, S]] struct {
	q      *RoundRobinQueue[T, S, Q]
	states []S
	cursor int
}

// Register returns a new handle, allocating one per-sub-queue state slot
// per sub-queue. The cursor starts at 0.
func (q *RoundRobinQueue[T, S, Q]) Register() *RoundRobinHandle[T, S, Q] {
	states := make([]S, len(q.subqueues))
	for i, sq := range q.subqueues {
		states[i] = sq.NewState()
	}
	return &RoundRobinHandle[T, S, Q]{q: q, states: states}
}

// Close releases every per-sub-queue state h owns (for [MSSubQueue]
// states, their hazard-pointer slots). h must not be used afterwards.
func (h *RoundRobinHandle[T, S, Q]) Close() {
	for i, sq := range h.q.subqueues {
		sq.CloseState(h.states[i])
	}
}

func (h *RoundRobinHandle[T, S, Q]) incCursor() {
	h.cursor++
	if h.cursor >= len(h.q.subqueues) {
		h.cursor = 0
	}
}

// Enqueue advances the cursor and enqueues item onto the sub-queue it
// now points to.
func (h *RoundRobinHandle[T, S, Q]) Enqueue(item T) {
	h.incCursor()
	h.q.subqueues[h.cursor].Enqueue(item, h.states[h.cursor])
}

// Dequeue advances the cursor and tries the sub-queue it now points to;
// on a miss it scans the remaining sub-queues in index order starting
// just after the cursor, wrapping around once.
func (h *RoundRobinHandle[T, S, Q]) Dequeue() (T, bool) {
	h.incCursor()
	if item, ok := h.q.subqueues[h.cursor].Dequeue(h.states[h.cursor]); ok {
		return item, true
	}
	n := len(h.q.subqueues)
	for i := 1; i < n; i++ {
		idx := (h.cursor + i) % n
		if item, ok := h.q.subqueues[idx].Dequeue(h.states[idx]); ok {
			return item, true
		}
	}
	var zero T
	return zero, false
}
