// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package relaxq provides concurrent multi-producer multi-consumer FIFO
// queues, and a family of relaxed-order queues built by federating several
// strict sub-queues.
//
// # Strict queue
//
// [MSQueue] is a lock-free, linearizable Michael-Scott queue with safe
// memory reclamation via hazard pointers:
//
//	q := relaxq.NewMSQueue[Event]()
//	h := q.Register()
//	defer h.Close()
//
//	h.Enqueue(Event{ID: 1})
//	ev, ok := h.Dequeue()
//
// [BoundedMPMC] is a second, bounded strict-queue implementation (adapted
// from an FAA-based SCQ algorithm) demonstrating that any strict queue can
// serve as a composer's sub-queue, not just MSQueue.
//
// # Relaxed composers
//
// A relaxed composer spreads enqueues and dequeues over N sub-queues using
// power-of-d-choices load balancing, trading strict global FIFO order for
// sharply reduced contention. Per sub-queue FIFO order is preserved.
//
// [DRaQueue] picks sub-queues by apparent length (enq_count - deq_count):
//
//	subs := make([]*relaxq.Countable[Event, *relaxq.MSHandle[Event], *relaxq.MSSubQueue[Event]], 8)
//	for i := range subs {
//	    subs[i] = relaxq.NewCountable[Event, *relaxq.MSHandle[Event]](relaxq.NewMSSubQueue[Event]())
//	}
//	q := relaxq.NewDRaQueue[Event, *relaxq.MSHandle[Event]](subs, 2)
//	h := q.Register()
//	h.Enqueue(Event{ID: 1})
//	ev, ok := h.Dequeue()
//
// [DCBOQueue] picks by enqueue-count volume and falls back to a
// double-collect sweep before reporting global emptiness:
//
//	versioned := make([]*relaxq.Versioned[Event, *relaxq.MSHandle[Event], *relaxq.MSSubQueue[Event]], 4)
//	for i := range versioned {
//	    versioned[i] = relaxq.NewVersioned[Event, *relaxq.MSHandle[Event]](relaxq.NewMSSubQueue[Event]())
//	}
//	q := relaxq.NewDCBOQueue[Event, *relaxq.MSHandle[Event]](versioned, 2)
//
// [RoundRobinQueue] keeps a handle-local cursor and advances it on every
// call, falling back to a full index-order scan on a miss:
//
//	plain := make([]*relaxq.MSSubQueue[Event], 4)
//	for i := range plain {
//	    plain[i] = relaxq.NewMSSubQueue[Event]()
//	}
//	q := relaxq.NewRoundRobinQueue[Event, *relaxq.MSHandle[Event]](plain)
//
// The [Builder] gives a fluent shorthand over the same constructors:
//
//	b := relaxq.New(8).Choices(2)
//	q := relaxq.BuildDRa(b, subs)
//
// # Ordering guarantees
//
// MSQueue is linearizable FIFO. DRa/DCBO/RoundRobin linearize each
// individual enqueue and dequeue against the sub-queue it lands on;
// global FIFO across sub-queues is not preserved. Two enqueues e1 < e2 may
// be dequeued in either order iff they landed on different sub-queues.
// DCBO additionally linearizes "globally empty" outcomes via its
// double-collect; Round-robin's emptiness check is a best-effort scan with
// no such linearization.
//
// # Handles
//
// Every queue kind is accessed through a per-goroutine handle obtained by
// calling Register on the queue. A handle owns whatever per-caller state
// its queue kind needs (hazard-pointer slots, an RNG, a round-robin
// cursor) and must not be used from more than one goroutine at a time.
// Multiple handles may coexist on the same queue.
//
// Call Close on a handle once it is no longer needed. MSHandle.Close
// releases its two hazard-pointer slots directly; DRaHandle, DCBOHandle,
// and RoundRobinHandle each call CloseState on every per-sub-queue state
// they hold, which for MSSubQueue-backed composers reaches the same
// hazard-pointer release. Hazard records are never freed once allocated,
// only recycled, so a dropped handle that is never closed permanently
// lengthens every later hazard scan.
//
// # Failure semantics
//
// No MSQueue or composer operation returns a recoverable error. Dequeue on
// an empty queue is a normal outcome, represented by the boolean return,
// not an error. Only BoundedMPMC's Enqueue and Dequeue return an error,
// [ErrWouldBlock], when its buffer is full or empty.
// Construction-time contract violations (N < 1, d outside [1, N], a
// bounded-queue capacity below 2) panic immediately rather than returning
// an error, matching this module's "fatal, not recoverable" failure model.
//
// # Memory ordering and backoff
//
// Scalar counters and flags (hazard-pointer addresses, countable/versioned
// wrapper counts, the bounded queue's threshold and draining flags) use
// [code.hybscloud.com/atomix] wrapper types so every load/store names its
// memory-ordering contract explicitly. CAS retry loops (MS enqueue/
// dequeue, the bounded queue's FAA retry loop, DCBO's double-collect
// restart) pause with [code.hybscloud.com/spin] between attempts.
// [code.hybscloud.com/iox] supplies [iox.Backoff] for caller-side retry
// loops around the bounded queue's ErrWouldBlock, as shown in this
// package's examples.
//
// # Race detection
//
// Go's race detector cannot observe happens-before relationships
// established purely through atomic memory orderings on separate
// variables. Tests that exercise cross-variable ordering guarantees are
// skipped under -race via the [RaceEnabled] build-tag pair; run them
// without the race detector for lock-free algorithm verification.
package relaxq
