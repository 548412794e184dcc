// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

import (
	"math/rand/v2"

	"code.hybscloud.com/spin"
)

// DCBOQueue is a relaxed FIFO composer built from N strict sub-queues,
// picking by enqueue-count volume: Enqueue goes to the sub-queue with the
// lowest enqueue count among d random samples; Dequeue tries the
// sub-queue with the most completed dequeues among d samples, and on a
// miss falls back to a double-collect sweep of every sub-queue before
// reporting the composer empty.
//
// The double-collect makes DCBOQueue's "empty" result linearizable
// against concurrent enqueues: it never reports empty while an enqueue
// that happened-before the call is still sitting in some sub-queue.
type DCBOQueue[T any, S any, Q VersionedSubQueue[T, S]] struct {
	subqueues []Q
	d         int
}

// NewDCBOQueue builds a DCBO composer over subqueues, sampling d
// candidates per operation. Panics if len(subqueues) < 1 or d is outside
// [1, len(subqueues)].
func NewDCBOQueue[T any, S any, Q VersionedSubQueue[T, S]](subqueues []Q, d int) *DCBOQueue[T, S, Q] {
	validateComposer(len(subqueues), d)
	return &DCBOQueue[T, S, Q]{subqueues: subqueues, d: d}
}

// DCBOHandle is a per-goroutine handle on a [DCBOQueue].
type DCBOHandle[T any, S any, Q VersionedSubQueue[T, S]] struct {
	q        *DCBOQueue[T, S, Q]
	states   []S
	rng      *rand.Rand
	versions []uint64 // scratch buffer reused by double-collect
}

// Register returns a new handle, allocating one per-sub-queue state slot
// per sub-queue.
func (q *DCBOQueue[T, S, Q]) Register() *DCBOHandle[T, S, Q] {
	states := make([]S, len(q.subqueues))
	for i, sq := range q.subqueues {
		states[i] = sq.NewState()
	}
	return &DCBOHandle[T, S, Q]{
		q:        q,
		states:   states,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		versions: make([]uint64, len(q.subqueues)),
	}
}

// Close releases every per-sub-queue state h owns (for [MSSubQueue]
// states, their hazard-pointer slots). h must not be used afterwards.
func (h *DCBOHandle[T, S, Q]) Close() {
	for i, sq := range h.q.subqueues {
		sq.CloseState(h.states[i])
	}
}

// Enqueue samples d sub-queues uniformly at random and enqueues item onto
// whichever sampled sub-queue has the lowest enqueue count.
func (h *DCBOHandle[T, S, Q]) Enqueue(item T) {
	idx := h.rng.IntN(len(h.q.subqueues))
	best := h.q.subqueues[idx].EnqCount()
	for i := 1; i < h.q.d; i++ {
		cand := h.rng.IntN(len(h.q.subqueues))
		if v := h.q.subqueues[cand].EnqCount(); v < best {
			idx, best = cand, v
		}
	}
	h.q.subqueues[idx].Enqueue(item, h.states[idx])
}

// Dequeue samples d sub-queues uniformly at random, tries the one with
// the most completed dequeues, and on a miss runs a double-collect sweep
// starting from that sub-queue's index.
func (h *DCBOHandle[T, S, Q]) Dequeue() (T, bool) {
	idx := h.rng.IntN(len(h.q.subqueues))
	best := h.q.subqueues[idx].DeqCount()
	for i := 1; i < h.q.d; i++ {
		cand := h.rng.IntN(len(h.q.subqueues))
		if v := h.q.subqueues[cand].DeqCount(); v > best {
			idx, best = cand, v
		}
	}
	if item, ok := h.q.subqueues[idx].Dequeue(h.states[idx]); ok {
		return item, true
	}
	return h.doubleCollect(idx)
}

// doubleCollect sweeps every sub-queue starting at startIdx, recording
// each one's enqueue version before trying to dequeue from it. If the
// full sweep finds nothing, it re-reads every version; if any changed, an
// enqueue raced the sweep and it restarts from the sub-queue whose
// version moved. Only when a complete sweep sees no dequeue succeed and
// no version change does it report the composer empty.
func (h *DCBOHandle[T, S, Q]) doubleCollect(startIdx int) (T, bool) {
	n := len(h.q.subqueues)
	start := startIdx
	sw := spin.Wait{}
	for {
		for i := 0; i < n; i++ {
			idx := (start + i) % n
			sq := h.q.subqueues[idx]
			h.versions[idx] = sq.EnqVersion()
			if item, ok := sq.Dequeue(h.states[idx]); ok {
				return item, true
			}
		}
		restart := -1
		for i := 0; i < n; i++ {
			idx := (start + i) % n
			if h.q.subqueues[idx].EnqVersion() != h.versions[idx] {
				restart = idx
				break
			}
		}
		if restart < 0 {
			var zero T
			return zero, false
		}
		sw.Once()
		start = restart
	}
}
