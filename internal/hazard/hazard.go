// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hazard

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// record is one hazard-pointer publish slot. Records are never freed once
// allocated: a record whose owning handle has gone away is marked inactive
// and recycled by a later Acquire instead.
type record struct {
	hazard atomix.Uint64 // published address, 0 means "not protecting anything"
	active atomix.Bool   // claimed by a live Slot
	next   *record       // immutable once linked into the domain's list
}

// Domain is a process-wide (in practice: per-queue) registry of hazard
// records. All handles registered against the same queue share a Domain.
type Domain struct {
	head atomic.Pointer[record]
}

// NewDomain returns an empty hazard-pointer domain.
func NewDomain() *Domain {
	return &Domain{}
}

// Acquire claims a record, reusing a retired one if one is free, and
// returns a Slot wrapping it. The returned Slot must be released with
// Release when the owning handle is done with it.
func (d *Domain) Acquire() *Slot {
	for r := d.head.Load(); r != nil; r = r.next {
		if r.active.LoadAcquire() {
			continue
		}
		if r.active.CompareAndSwapAcqRel(false, true) {
			r.hazard.StoreRelease(0)
			return &Slot{rec: r}
		}
	}
	r := &record{}
	r.active.StoreRelaxed(true)
	for {
		head := d.head.Load()
		r.next = head
		if d.head.CompareAndSwap(head, r) {
			return &Slot{rec: r}
		}
	}
}

// Protected reports whether addr is currently published in any active
// record of the domain. A false result is a linearizable observation that
// no live slot protected addr at some instant during the scan.
func (d *Domain) Protected(addr uintptr) bool {
	for r := d.head.Load(); r != nil; r = r.next {
		if r.hazard.LoadAcquire() == uint64(addr) {
			return true
		}
	}
	return false
}

// Slot is a single thread's hazard-pointer publish point, obtained from a
// Domain via Acquire. A Slot must not be used from more than one goroutine
// concurrently.
type Slot struct {
	rec *record
}

// Publish advertises addr as currently being dereferenced, preventing any
// concurrent Domain.Protected scan from missing it once the store is
// visible.
func (s *Slot) Publish(addr uintptr) {
	s.rec.hazard.StoreRelease(uint64(addr))
}

// Clear withdraws the published address once the caller is done
// dereferencing it.
func (s *Slot) Clear() {
	s.rec.hazard.StoreRelease(0)
}

// Release returns the underlying record to the domain's free pool. The
// Slot must not be used again afterwards.
func (s *Slot) Release() {
	s.rec.hazard.StoreRelease(0)
	s.rec.active.StoreRelease(false)
}
