// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

// MSSubQueue adapts an [MSQueue] to the [SubQueue] capability set,
// letting it serve as one slot of a relaxed composer's sub-queue array.
// Its per-caller state is an *[MSHandle], so every composer handle that
// touches an MSSubQueue carries its own pair of hazard-pointer slots.
type MSSubQueue[T any] struct {
	q *MSQueue[T]
}

// NewMSSubQueue wraps a fresh [MSQueue] as a [SubQueue].
func NewMSSubQueue[T any]() *MSSubQueue[T] {
	return &MSSubQueue[T]{q: NewMSQueue[T]()}
}

// NewState registers a new handle on the underlying queue.
func (s *MSSubQueue[T]) NewState() *MSHandle[T] {
	return s.q.Register()
}

// Enqueue delegates to state's handle.
func (s *MSSubQueue[T]) Enqueue(item T, state *MSHandle[T]) {
	state.Enqueue(item)
}

// Dequeue delegates to state's handle.
func (s *MSSubQueue[T]) Dequeue(state *MSHandle[T]) (T, bool) {
	return state.Dequeue()
}

// CloseState releases state's hazard-pointer slots.
func (s *MSSubQueue[T]) CloseState(state *MSHandle[T]) {
	state.Close()
}

// BoundedSubQueue adapts a [BoundedMPMC] to the [SubQueue] capability
// set. BoundedMPMC needs no per-caller state beyond the queue pointer
// itself, so its state type is an empty struct.
type BoundedSubQueue[T any] struct {
	q *BoundedMPMC[T]
}

// NewBoundedSubQueue wraps a fresh [BoundedMPMC] of the given capacity as
// a [SubQueue].
func NewBoundedSubQueue[T any](capacity int) *BoundedSubQueue[T] {
	return &BoundedSubQueue[T]{q: NewBoundedMPMC[T](capacity)}
}

// NewState returns the empty state BoundedSubQueue requires.
func (s *BoundedSubQueue[T]) NewState() struct{} {
	return struct{}{}
}

// Enqueue delegates to the underlying bounded queue, silently dropping
// [ErrWouldBlock]: a composer sub-queue slot has no channel to surface a
// "full" error back through the [SubQueue] interface, so a full
// BoundedSubQueue slot behaves as if the enqueue landed and immediately
// drained. This loses the item — if any slot saturates, the composer no
// longer delivers every enqueued item to some later dequeue. Callers that
// need that guarantee should size capacity (or sub-queue count) so no
// slot can realistically fill, or route through [MSSubQueue] instead.
func (s *BoundedSubQueue[T]) Enqueue(item T, _ struct{}) {
	_ = s.q.Enqueue(item)
}

// Dequeue delegates to the underlying bounded queue, translating
// ErrWouldBlock to (zero, false).
func (s *BoundedSubQueue[T]) Dequeue(_ struct{}) (T, bool) {
	item, err := s.q.Dequeue()
	if err != nil {
		var zero T
		return zero, false
	}
	return item, true
}

// CloseState is a no-op: BoundedSubQueue's state carries nothing to
// release.
func (s *BoundedSubQueue[T]) CloseState(struct{}) {}
