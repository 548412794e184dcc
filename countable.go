// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

import "code.hybscloud.com/atomix"

// Countable wraps any [SubQueue] with relaxed-precision enqueue/dequeue
// counters, turning it into a [CountableSubQueue]. The wrapped queue's own
// semantics are untouched; Countable only observes calls going through it.
//
// Counters are read with relaxed ordering: composers use them purely as a
// load-balancing heuristic, never to decide correctness.
type Countable[T any, S any, Q SubQueue[T, S]] struct {
	queue    Q
	enqCount atomix.Int64
	deqCount atomix.Int64
}

// NewCountable wraps queue with enqueue/dequeue counters.
func NewCountable[T any, S any, Q SubQueue[T, S]](queue Q) *Countable[T, S, Q] {
	return &Countable[T, S, Q]{queue: queue}
}

// NewState delegates to the wrapped queue.
func (c *Countable[T, S, Q]) NewState() S {
	return c.queue.NewState()
}

// Enqueue bumps the enqueue counter before delegating to the wrapped
// queue, so a waiter that observes the bumped count also observes the
// insert once it completes.
func (c *Countable[T, S, Q]) Enqueue(item T, state S) {
	c.enqCount.AddAcqRel(1)
	c.queue.Enqueue(item, state)
}

// Dequeue delegates to the wrapped queue, bumping the dequeue counter only
// on success.
func (c *Countable[T, S, Q]) Dequeue(state S) (T, bool) {
	item, ok := c.queue.Dequeue(state)
	if ok {
		c.deqCount.AddAcqRel(1)
	}
	return item, ok
}

// EnqCount returns the relaxed-precision count of started enqueues (the
// counter is bumped before the insert runs).
func (c *Countable[T, S, Q]) EnqCount() int64 {
	return c.enqCount.LoadRelaxed()
}

// DeqCount returns the relaxed-precision count of successful dequeues.
func (c *Countable[T, S, Q]) DeqCount() int64 {
	return c.deqCount.LoadRelaxed()
}

// CloseState delegates to the wrapped queue.
func (c *Countable[T, S, Q]) CloseState(state S) {
	c.queue.CloseState(state)
}

// Versioned extends Countable with a version counter incremented with
// release ordering on every successful enqueue, turning the wrapped queue
// into a [VersionedSubQueue]. DCBO's double-collect reads EnqVersion with
// acquire ordering to detect whether any enqueue landed between its two
// collection passes.
type Versioned[T any, S any, Q SubQueue[T, S]] struct {
	queue    Q
	enqCount atomix.Int64
	deqCount atomix.Int64
	version  atomix.Uint64
}

// NewVersioned wraps queue with enqueue/dequeue counters and an enqueue
// version counter.
func NewVersioned[T any, S any, Q SubQueue[T, S]](queue Q) *Versioned[T, S, Q] {
	return &Versioned[T, S, Q]{queue: queue}
}

// NewState delegates to the wrapped queue.
func (v *Versioned[T, S, Q]) NewState() S {
	return v.queue.NewState()
}

// Enqueue bumps the enqueue counter before delegating to the wrapped
// queue, matching Countable.Enqueue, then bumps the enqueue version after
// the insert completes — that ordering is what lets double-collect treat
// an unchanged version as proof no enqueue landed during its sweep.
func (v *Versioned[T, S, Q]) Enqueue(item T, state S) {
	v.enqCount.AddAcqRel(1)
	v.queue.Enqueue(item, state)
	v.version.AddAcqRel(1)
}

// Dequeue delegates to the wrapped queue, bumping the dequeue counter only
// on success.
func (v *Versioned[T, S, Q]) Dequeue(state S) (T, bool) {
	item, ok := v.queue.Dequeue(state)
	if ok {
		v.deqCount.AddAcqRel(1)
	}
	return item, ok
}

// EnqCount returns the relaxed-precision count of started enqueues (the
// counter is bumped before the insert runs).
func (v *Versioned[T, S, Q]) EnqCount() int64 {
	return v.enqCount.LoadRelaxed()
}

// DeqCount returns the relaxed-precision count of successful dequeues.
func (v *Versioned[T, S, Q]) DeqCount() int64 {
	return v.deqCount.LoadRelaxed()
}

// EnqVersion returns the current enqueue version, loaded with acquire
// ordering.
func (v *Versioned[T, S, Q]) EnqVersion() uint64 {
	return v.version.LoadAcquire()
}

// CloseState delegates to the wrapped queue.
func (v *Versioned[T, S, Q]) CloseState(state S) {
	v.queue.CloseState(state)
}
