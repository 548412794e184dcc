// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/go-relaxq/relaxq"
)

func newVersionedMSSubQueues(n int) []*relaxq.Versioned[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]] {
	subs := make([]*relaxq.Versioned[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]], n)
	for i := range subs {
		subs[i] = relaxq.NewVersioned[int, *relaxq.MSHandle[int]](relaxq.NewMSSubQueue[int]())
	}
	return subs
}

// TestDCBOQueueDoubleCollectSeesEverything exercises the property DCBO
// adds over DRa: because Dequeue falls back to a double-collect sweep of
// every sub-queue, a single handle can drain the composer to empty with
// a plain "dequeue until false" loop, unlike DRaQueue.
func TestDCBOQueueDoubleCollectSeesEverything(t *testing.T) {
	subs := newVersionedMSSubQueues(6)
	q := relaxq.NewDCBOQueue[int, *relaxq.MSHandle[int]](subs, 2)
	h := q.Register()
	defer h.Close()

	const total = 300
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
	if _, ok := h.Dequeue(); ok {
		t.Fatal("expected empty after full drain")
	}
}

func TestDCBOQueueConcurrentNoLoss(t *testing.T) {
	if relaxq.RaceEnabled {
		t.Skip("hazard-pointer publish/scan ordering is invisible to the race detector")
	}

	subs := newVersionedMSSubQueues(8)
	q := relaxq.NewDCBOQueue[int, *relaxq.MSHandle[int]](subs, 3)

	const producers = 8
	const perProducer = 200
	total := producers * perProducer

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			h := q.Register()
			defer h.Close()
			for i := 0; i < perProducer; i++ {
				h.Enqueue(base*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	h := q.Register()
	defer h.Close()
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

func TestNewDCBOQueuePanicsOnEmptySubqueues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero sub-queues")
		}
	}()
	var subs []*relaxq.Versioned[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]]
	relaxq.NewDCBOQueue[int, *relaxq.MSHandle[int]](subs, 1)
}
