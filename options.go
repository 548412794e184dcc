// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

// Builder configures the shared parameters of a relaxed composer —
// sub-queue count and choice width — before handing them to one of the
// package-level Build functions, which pick the concrete composer type.
//
// Builder only carries the two parameters every composer shares; it does
// not itself hold the sub-queue slice, since that is typed by S and Q and
// a generic method cannot introduce type parameters beyond its receiver's.
//
// Example:
//
//	b := relaxq.New(8).Choices(2)
//	q := relaxq.BuildDRa(b, subs)
type Builder struct {
	n int
	d int
}

// New creates a builder for a composer over n sub-queues. Choices
// defaults to 1 (equivalent to uniform random placement) until set
// explicitly. Panics if n < 1.
func New(n int) *Builder {
	if n < 1 {
		panic("relaxq: sub-queue count must be >= 1")
	}
	return &Builder{n: n, d: 1}
}

// Choices sets the number of sub-queues sampled per operation.
func (b *Builder) Choices(d int) *Builder {
	b.d = d
	return b
}

// BuildDRa constructs a [DRaQueue] from b's choice width and the given
// sub-queues. Panics if len(subqueues) != b's configured n, or if b's
// choice width is outside [1, n].
func BuildDRa[T any, S any, Q CountableSubQueue[T, S]](b *Builder, subqueues []Q) *DRaQueue[T, S, Q] {
	b.checkLen(len(subqueues))
	return NewDRaQueue[T, S](subqueues, b.d)
}

// BuildDCBO constructs a [DCBOQueue] from b's choice width and the given
// sub-queues. Panics if len(subqueues) != b's configured n, or if b's
// choice width is outside [1, n].
func BuildDCBO[T any, S any, Q VersionedSubQueue[T, S]](b *Builder, subqueues []Q) *DCBOQueue[T, S, Q] {
	b.checkLen(len(subqueues))
	return NewDCBOQueue[T, S](subqueues, b.d)
}

// BuildRoundRobin constructs a [RoundRobinQueue] from the given
// sub-queues. Panics if len(subqueues) != b's configured n; b's choice
// width is ignored, since round-robin placement does not sample.
func BuildRoundRobin[T any, S any, Q SubQueue[T, S]](b *Builder, subqueues []Q) *RoundRobinQueue[T, S, Q] {
	b.checkLen(len(subqueues))
	return NewRoundRobinQueue[T, S](subqueues)
}

func (b *Builder) checkLen(got int) {
	if got != b.n {
		panic("relaxq: sub-queue slice length does not match builder's configured count")
	}
}
