// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

// Handle is the per-goroutine access point every queue kind in this
// package exposes via Register. A handle is pinned to the goroutine that
// created it and must not be used concurrently from another goroutine;
// multiple handles may coexist on the same queue.
type Handle[T any] interface {
	// Enqueue delivers item to the queue exactly once.
	Enqueue(item T)
	// Dequeue retrieves at most one item. ok is false when no item was
	// observable; this is a normal outcome, not an error.
	Dequeue() (item T, ok bool)
}

// SubQueue is the capability set a strict queue implementation must
// provide to back one slot of a relaxed composer's sub-queue array: a way
// to construct per-caller state, and state-threaded enqueue/dequeue.
//
// S is the per-caller state type (for [MSSubQueue]: a *MSHandle, bundling
// two hazard-pointer slots; for [BoundedSubQueue]: an empty struct, since
// the bounded queue needs no per-thread state). A composer's sub-queue
// array is homogeneous in both Q and S — every slot is the same concrete
// implementation, sharing one state-value shape per composer handle.
type SubQueue[T any, S any] interface {
	// NewState constructs the per-caller state a single goroutine's
	// handle will thread through every Enqueue/Dequeue call it makes on
	// this sub-queue.
	NewState() S
	Enqueue(item T, state S)
	Dequeue(state S) (T, bool)
	// CloseState releases whatever state holds (hazard-pointer slots, or
	// nothing at all) once the caller is done with it. A composer handle
	// calls this on every per-sub-queue state it owns when it is itself
	// closed.
	CloseState(state S)
}

// CountableSubQueue extends SubQueue with relaxed-precision counters:
// non-decreasing, monotonically-approximate counts of enqueues and
// successful dequeues. Counters may lag or race with in-flight calls,
// but must never overcount; every successful operation is eventually
// reflected. DRa's length-balancing metric is built from these as
// max(0, enq_count - deq_count): racing updates can make the raw
// difference transiently negative, which the clamp corrects.
type CountableSubQueue[T any, S any] interface {
	SubQueue[T, S]
	EnqCount() int64
	DeqCount() int64
}

// VersionedSubQueue extends CountableSubQueue with a version counter
// incremented exactly once per successful enqueue, with release ordering
// on increment and acquire ordering on read. DCBO's double-collect uses
// this to linearize an "empty" result against concurrent activity.
type VersionedSubQueue[T any, S any] interface {
	CountableSubQueue[T, S]
	EnqVersion() uint64
}

// pad is cache-line padding to prevent false sharing between hot atomic
// fields, kept from the bounded-queue implementation in bounded.go.
type pad [64]byte

// padShort is padding to fill a cache line after an 8-byte field.
type padShort [64 - 8]byte
