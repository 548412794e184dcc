// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/spin"

	"github.com/go-relaxq/relaxq/internal/hazard"
)

// msNode is one link in an MSQueue. The sentinel node (the one never
// holding a live value) always sits behind head.
type msNode[T any] struct {
	next atomic.Pointer[msNode[T]]
	data T
}

// MSQueue is a lock-free, linearizable Michael-Scott FIFO queue with safe
// memory reclamation via hazard pointers. It is unbounded: Enqueue always
// succeeds, and Dequeue reports an empty queue as (zero, false) rather
// than an error.
//
// Use [MSQueue.Register] to obtain a per-goroutine [MSHandle] before
// calling Enqueue or Dequeue.
type MSQueue[T any] struct {
	head    atomic.Pointer[msNode[T]]
	tail    atomic.Pointer[msNode[T]]
	domain  *hazard.Domain
	retired retireList[T]
}

// NewMSQueue creates an empty Michael-Scott queue.
func NewMSQueue[T any]() *MSQueue[T] {
	sentinel := &msNode[T]{}
	q := &MSQueue[T]{domain: hazard.NewDomain()}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// MSHandle is a per-goroutine access point on an [MSQueue], bundling the
// two hazard-pointer slots the algorithm needs (one for the node under
// inspection, one for its successor during dequeue). A handle must not be
// used from more than one goroutine at a time.
type MSHandle[T any] struct {
	q    *MSQueue[T]
	hz1  *hazard.Slot
	hz2  *hazard.Slot
}

// Register returns a new handle for interacting with q. Call [MSHandle.Close]
// once the handle is no longer needed to release its hazard-pointer slots
// back to the domain's free pool.
func (q *MSQueue[T]) Register() *MSHandle[T] {
	return &MSHandle[T]{
		q:   q,
		hz1: q.domain.Acquire(),
		hz2: q.domain.Acquire(),
	}
}

// Close releases h's hazard-pointer slots. h must not be used afterwards.
func (h *MSHandle[T]) Close() {
	h.hz1.Release()
	h.hz2.Release()
}

// Enqueue appends item to the tail of the queue.
func (h *MSHandle[T]) Enqueue(item T) {
	h.q.enqueue(h.hz1, item)
}

// Dequeue removes and returns the item at the head of the queue. ok is
// false when the queue was observed empty.
func (h *MSHandle[T]) Dequeue() (T, bool) {
	return h.q.dequeue(h.hz1, h.hz2)
}

func (q *MSQueue[T]) enqueue(hz *hazard.Slot, item T) {
	newNode := &msNode[T]{data: item}
	sw := spin.Wait{}
	for {
		tail := protect(hz, &q.tail)
		if tail != q.tail.Load() {
			sw.Once()
			continue
		}
		next := tail.next.Load()
		if next == nil {
			if tail.next.CompareAndSwap(nil, newNode) {
				q.tail.CompareAndSwap(tail, newNode)
				hz.Clear()
				return
			}
		} else {
			q.tail.CompareAndSwap(tail, next)
		}
		sw.Once()
	}
}

func (q *MSQueue[T]) dequeue(hzHead, hzNext *hazard.Slot) (T, bool) {
	sw := spin.Wait{}
	for {
		head := protect(hzHead, &q.head)
		if head != q.head.Load() {
			sw.Once()
			continue
		}
		tail := q.tail.Load()
		next := head.next.Load()
		if head == tail {
			if next == nil {
				hzHead.Clear()
				var zero T
				return zero, false
			}
			q.tail.CompareAndSwap(tail, next)
			sw.Once()
			continue
		}
		_ = protect(hzNext, &head.next)
		if head != q.head.Load() {
			sw.Once()
			continue
		}
		item := next.data
		if q.head.CompareAndSwap(head, next) {
			hzHead.Clear()
			hzNext.Clear()
			q.retired.retire(q.domain, head)
			return item, true
		}
		sw.Once()
	}
}

// nodeAddr returns the address of n as a uintptr for publishing to a
// hazard-pointer slot, which is type-erased to avoid the hazard package
// depending on msNode's layout.
func nodeAddr[T any](n *msNode[T]) uintptr {
	return uintptr(unsafe.Pointer(n))
}

// protect publishes the address currently loaded from p into slot and
// re-reads p, looping until the published address matches what is
// observed — the standard hazard-pointer protect-reload discipline. The
// returned pointer is guaranteed live for as long as slot keeps
// publishing its address.
func protect[T any](slot *hazard.Slot, p *atomic.Pointer[msNode[T]]) *msNode[T] {
	for {
		n := p.Load()
		if n == nil {
			slot.Clear()
			return nil
		}
		slot.Publish(nodeAddr(n))
		if p.Load() == n {
			return n
		}
	}
}

// retireList defers reclamation of unlinked nodes until no hazard slot in
// the queue's domain still protects them. Nodes are appended unconditionally
// and swept opportunistically on every retire call, bounding memory to the
// number of concurrently-protected nodes plus whatever accumulates between
// sweeps.
//
// The list itself is guarded by a plain mutex rather than made lock-free:
// retire is off the hot CAS-retry path (it runs once per successful
// dequeue, not per attempt), and neither atomix nor spin expose a
// lock-free bag/stack primitive in this module's dependency set.
type retireList[T any] struct {
	mu    sync.Mutex
	nodes []*msNode[T]
}

func (r *retireList[T]) retire(d *hazard.Domain, n *msNode[T]) {
	r.mu.Lock()
	r.nodes = append(r.nodes, n)
	kept := r.nodes[:0]
	for _, candidate := range r.nodes {
		if d.Protected(nodeAddr(candidate)) {
			kept = append(kept, candidate)
		}
		// else: candidate is unreachable from any live hazard slot and is
		// left for the garbage collector.
	}
	r.nodes = kept
	r.mu.Unlock()
}
