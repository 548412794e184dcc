// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq_test

import (
	"sort"
	"testing"

	"github.com/go-relaxq/relaxq"
)

// TestBoundedSubQueueAsComposerSlot exercises the adapter pattern called
// out in this package's documentation: any strict queue, not only
// MSQueue, can back a relaxed composer's sub-queue slots.
func TestBoundedSubQueueAsComposerSlot(t *testing.T) {
	subs := make([]*relaxq.BoundedSubQueue[int], 4)
	for i := range subs {
		subs[i] = relaxq.NewBoundedSubQueue[int](64)
	}
	q := relaxq.NewRoundRobinQueue[int, struct{}](subs)
	h := q.Register()
	defer h.Close()

	const total = 40
	for i := 0; i < total; i++ {
		h.Enqueue(i)
	}

	got := make([]int, 0, total)
	for {
		v, ok := h.Dequeue()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != total {
		t.Fatalf("got %d items, want %d", len(got), total)
	}
	sort.Ints(got)
	for i, v := range got {
		if v != i {
			t.Fatalf("item %d: got %d, want %d", i, v, i)
		}
	}
}
