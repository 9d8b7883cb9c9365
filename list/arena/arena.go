package arena

import "unsafe"

// Arena is a growable store of fixed-size slots with O(1) allocation,
// lookup, and deallocation. Freed slots are recycled through a LIFO
// freelist before the store grows. The zero value is not usable; construct
// with New or WithCapacity.
type Arena[T any] struct {
	slots []T
	// gens holds the per-index generation counters. Its length is the
	// high-water slot count and never shrinks, not even on Reset, so that
	// Refs from before a Reset remain detectably stale.
	gens  []uint32
	free  []uint32
	stats Stats
}

// Stats holds operation counters for instrumentation and testing.
type Stats struct {
	AllocCalls  int // total Alloc calls
	ReuseCalls  int // allocations satisfied from the freelist
	AppendCalls int // allocations that appended a new slot
	GrowCalls   int // appends that forced a capacity growth
	FreeCalls   int // total Free calls
}

// New creates an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// WithCapacity creates an empty Arena with room for n slots before the
// first growth.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{
		slots: make([]T, 0, n),
		gens:  make([]uint32, 0, n),
	}
}

// Alloc stores v in a slot and returns its Ref. The freelist is consulted
// first; only when it is empty does the store grow. Amortized O(1).
func (a *Arena[T]) Alloc(v T) Ref {
	a.stats.AllocCalls++

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = v
		a.gens[idx]++ // free -> occupied
		a.stats.ReuseCalls++
		return Ref{index: idx, gen: a.gens[idx]}
	}

	idx := uint32(len(a.slots))
	if len(a.slots) == cap(a.slots) {
		a.stats.GrowCalls++
	}
	a.slots = append(a.slots, v)
	if int(idx) < len(a.gens) {
		// Slot index seen before a Reset; continue its generation sequence.
		a.gens[idx]++
	} else {
		a.gens = append(a.gens, 1)
	}
	a.stats.AppendCalls++
	return Ref{index: idx, gen: a.gens[idx]}
}

// Get returns a pointer to the value in the slot named by ref, or
// ErrInvalidRef if the slot is free, stale, or out of range. The pointer
// is valid until the next Alloc.
func (a *Arena[T]) Get(ref Ref) (*T, error) {
	if ref.gen&1 == 0 || int(ref.index) >= len(a.slots) || a.gens[ref.index] != ref.gen {
		return nil, ErrInvalidRef
	}
	return &a.slots[ref.index], nil
}

// Free releases the slot named by ref and returns the value it held. The
// slot is zeroed so the value becomes collectable, its generation is
// bumped, and its index is pushed onto the freelist. O(1).
func (a *Arena[T]) Free(ref Ref) (T, error) {
	var zero T
	p, err := a.Get(ref)
	if err != nil {
		return zero, err
	}
	v := *p
	*p = zero
	a.gens[ref.index]++ // occupied -> free
	a.free = append(a.free, ref.index)
	a.stats.FreeCalls++
	return v, nil
}

// RefAt returns the current Ref for slot index i, or false if i is out of
// range or the slot is free.
func (a *Arena[T]) RefAt(i int) (Ref, bool) {
	if i < 0 || i >= len(a.slots) || a.gens[i]&1 == 0 {
		return Ref{}, false
	}
	return Ref{index: uint32(i), gen: a.gens[i]}, true
}

// Reset releases every occupied slot and empties the freelist. The backing
// capacity is retained for reuse by later allocations. All outstanding
// Refs become stale.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	for i := range a.slots {
		if a.gens[i]&1 == 1 {
			a.gens[i]++
		}
	}
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return len(a.slots) - len(a.free) }

// SlotCount returns the total number of slots in the store, occupied plus
// free. It only grows during the lifetime of the Arena, except for Reset,
// which returns it to zero.
func (a *Arena[T]) SlotCount() int { return len(a.slots) }

// FreeCount returns the number of slots on the freelist.
func (a *Arena[T]) FreeCount() int { return len(a.free) }

// Cap returns the slot capacity of the backing store.
func (a *Arena[T]) Cap() int { return cap(a.slots) }

// MemUsed estimates the heap bytes actively used by the Arena: slot and
// generation storage for every slot in the store plus the freelist
// entries.
func (a *Arena[T]) MemUsed() uint64 {
	var t T
	slotSize := uint64(unsafe.Sizeof(t))
	const idxSize = uint64(unsafe.Sizeof(uint32(0)))
	return (slotSize+idxSize)*uint64(len(a.slots)) + idxSize*uint64(len(a.free))
}

// MemReserved estimates the heap bytes allocated by the Arena, counting
// reserved but unused capacity.
func (a *Arena[T]) MemReserved() uint64 {
	var t T
	slotSize := uint64(unsafe.Sizeof(t))
	const idxSize = uint64(unsafe.Sizeof(uint32(0)))
	return (slotSize+idxSize)*uint64(cap(a.slots)) + idxSize*uint64(cap(a.free))
}

// Stats returns a copy of the operation counters.
func (a *Arena[T]) Stats() Stats { return a.stats }
