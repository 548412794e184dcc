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

func newPlainMSSubQueues(n int) []*relaxq.MSSubQueue[int] {
	subs := make([]*relaxq.MSSubQueue[int], n)
	for i := range subs {
		subs[i] = relaxq.NewMSSubQueue[int]()
	}
	return subs
}

func TestRoundRobinQueueDrainsEverything(t *testing.T) {
	subs := newPlainMSSubQueues(4)
	q := relaxq.NewRoundRobinQueue[int, *relaxq.MSHandle[int]](subs)
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

func TestRoundRobinQueueConcurrentNoLoss(t *testing.T) {
	if relaxq.RaceEnabled {
		t.Skip("hazard-pointer publish/scan ordering is invisible to the race detector")
	}

	subs := newPlainMSSubQueues(8)
	q := relaxq.NewRoundRobinQueue[int, *relaxq.MSHandle[int]](subs)

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

func TestNewRoundRobinQueuePanicsOnEmptySubqueues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero sub-queues")
		}
	}()
	var subs []*relaxq.MSSubQueue[int]
	relaxq.NewRoundRobinQueue[int, *relaxq.MSHandle[int]](subs)
}
