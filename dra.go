// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

import "math/rand/v2"

// DRaQueue is a relaxed FIFO composer built from N strict sub-queues,
// picking which sub-queue to touch by apparent length: for Enqueue, the
// shortest of d randomly-sampled sub-queues (enq_count - deq_count
// minimized); for Dequeue, the longest. This is the "power of d choices"
// length-balancing strategy.
//
// Per-sub-queue FIFO order is preserved; global order across sub-queues
// is not. Use [NewDRaQueue] to construct one and [DRaQueue.Register] to
// obtain a handle.
type DRaQueue[T any, S any, Q CountableSubQueue[T, S]] struct {
	subqueues []Q
	d         int
}

// NewDRaQueue builds a DRa composer over subqueues, sampling d candidates
// per operation. Panics if len(subqueues) < 1 or d is outside
// [1, len(subqueues)].
func NewDRaQueue[T any, S any, Q CountableSubQueue[T, S]](subqueues []Q, d int) *DRaQueue[T, S, Q] {
	validateComposer(len(subqueues), d)
	return &DRaQueue[T, S, Q]{subqueues: subqueues, d: d}
}

// DRaHandle is a per-goroutine handle on a [DRaQueue], owning its
// sub-queue states and sampling RNG.
type DRaHandle[T any, S any, Q CountableSubQueue[T, S]] struct {
	q      *DRaQueue[T, S, Q]
	states []S
	rng    *rand.Rand
}

// Register returns a new handle, allocating one per-sub-queue state slot
// per sub-queue.
func (q *DRaQueue[T, S, Q]) Register() *DRaHandle[T, S, Q] {
	states := make([]S, len(q.subqueues))
	for i, sq := range q.subqueues {
		states[i] = sq.NewState()
	}
	return &DRaHandle[T, S, Q]{
		q:      q,
		states: states,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Enqueue samples d sub-queues uniformly at random and enqueues item onto
// whichever sampled sub-queue currently has the smallest apparent length
// (enq_count - deq_count).
func (h *DRaHandle[T, S, Q]) Enqueue(item T) {
	idx := h.pick(apparentLength[T, S, Q], true)
	h.q.subqueues[idx].Enqueue(item, h.states[idx])
}

// Dequeue samples d sub-queues uniformly at random and dequeues from
// whichever sampled sub-queue currently has the largest apparent length.
// ok is false only when that sampled sub-queue itself reported empty;
// DRa makes no global-emptiness guarantee, unlike [DCBOQueue].
func (h *DRaHandle[T, S, Q]) Dequeue() (T, bool) {
	idx := h.pick(apparentLength[T, S, Q], false)
	return h.q.subqueues[idx].Dequeue(h.states[idx])
}

// apparentLength is enq_count - deq_count, clamped to zero: the counters
// are bumped and loaded independently, so dequeues counted between the
// two loads can make the difference transiently negative, which a real
// sub-queue length can never be.
func apparentLength[T any, S any, Q CountableSubQueue[T, S]](sq Q) int64 {
	if d := sq.EnqCount() - sq.DeqCount(); d > 0 {
		return d
	}
	return 0
}

// Close releases every per-sub-queue state h owns (for [MSSubQueue]
// states, their hazard-pointer slots). h must not be used afterwards.
func (h *DRaHandle[T, S, Q]) Close() {
	for i, sq := range h.q.subqueues {
		sq.CloseState(h.states[i])
	}
}

// pick samples d candidate indices and returns the one with the
// min (wantMin=true) or max metric value.
func (h *DRaHandle[T, S, Q]) pick(metric func(Q) int64, wantMin bool) int {
	best := h.rng.IntN(len(h.q.subqueues))
	bestVal := metric(h.q.subqueues[best])
	for i := 1; i < h.q.d; i++ {
		cand := h.rng.IntN(len(h.q.subqueues))
		val := metric(h.q.subqueues[cand])
		if (wantMin && val < bestVal) || (!wantMin && val > bestVal) {
			best, bestVal = cand, val
		}
	}
	return best
}
