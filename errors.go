// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates [BoundedMPMC.Enqueue] or [BoundedMPMC.Dequeue]
// cannot proceed immediately (the bounded buffer is full, or empty). It is
// an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// MSQueue and the relaxed composers have no equivalent: they are
// unbounded, so Enqueue never fails, and Dequeue reports absence as a
// plain boolean rather than an error — there is no "queue empty" failure
// to classify for those types.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates a BoundedMPMC operation would
// block. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// validateComposer panics if a composer's sub-queue count or choice
// parameter violates its constructor contract (N >= 1, 1 <= d <= N). This,
// the capacity check in BoundedMPMC's constructor, and the Builder's
// count and length checks are this package's only checked preconditions;
// violating them is a programmer error, not a recoverable condition, so
// they panic instead of returning an error.
func validateComposer(n, d int) {
	if n < 1 {
		panic(fmt.Sprintf("relaxq: sub-queue count must be >= 1, got %d", n))
	}
	if d < 1 || d > n {
		panic(fmt.Sprintf("relaxq: choice parameter d must satisfy 1 <= d <= %d, got %d", n, d))
	}
}
