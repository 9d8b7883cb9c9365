package list

import (
	"fmt"
	"strings"

	"github.com/differental/slotlist/list/arena"
)

// Handle names an element of a List. It is returned by every insertion and
// stays valid until the element is removed or the list is cleared, across
// any growth of the backing store. The zero Handle is never valid.
type Handle = arena.Ref

// node is what actually occupies an arena slot: the element value plus the
// forward and backward links. A zero Ref link marks a list boundary.
type node[T any] struct {
	value T
	next  Handle
	prev  Handle
}

// List is a doubly linked list stored in a contiguous slot arena. The zero
// value is not usable; construct with New or WithCapacity.
type List[T any] struct {
	slots arena.Arena[node[T]]
	head  Handle
	tail  Handle

	// linkWrites counts neighbor-link rewrites, for the instrumentation
	// exposed through Stats.
	linkWrites int
}

// Stats combines the arena's operation counters with the list's own link
// rewrite counter.
type Stats struct {
	arena.Stats
	LinkWrites int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// WithCapacity creates an empty list with room for n elements before the
// backing store first grows.
func WithCapacity[T any](n int) *List[T] {
	return &List[T]{slots: *arena.WithCapacity[node[T]](n)}
}

// mustNode resolves a link the list itself wrote. A failure here means the
// structure is corrupt, not a caller error.
func (l *List[T]) mustNode(h Handle) *node[T] {
	n, err := l.slots.Get(h)
	if err != nil {
		panic(fmt.Sprintf("list: corrupt link to slot %d: %v", h.Index(), err))
	}
	return n
}

// PushBack appends v and returns its handle. O(1).
func (l *List[T]) PushBack(v T) Handle {
	// Allocate before touching neighbor slots: growth may move the store.
	h := l.slots.Alloc(node[T]{value: v, prev: l.tail})
	if l.tail.IsZero() {
		l.head = h
	} else {
		l.mustNode(l.tail).next = h
		l.linkWrites++
	}
	l.tail = h
	return h
}

// PushFront prepends v and returns its handle. O(1).
func (l *List[T]) PushFront(v T) Handle {
	h := l.slots.Alloc(node[T]{value: v, next: l.head})
	if l.head.IsZero() {
		l.tail = h
	} else {
		l.mustNode(l.head).prev = h
		l.linkWrites++
	}
	l.head = h
	return h
}

// InsertAfter splices v in right after the element named by h and returns
// the new element's handle. At most two neighbor links are rewritten.
// O(1). Fails with ErrInvalidHandle if h is stale; the list is unchanged
// on failure.
func (l *List[T]) InsertAfter(h Handle, v T) (Handle, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		return Handle{}, err
	}
	succ := nd.next

	// nd goes stale past this point; re-resolve neighbors after Alloc.
	nh := l.slots.Alloc(node[T]{value: v, prev: h, next: succ})
	l.mustNode(h).next = nh
	l.linkWrites++
	if succ.IsZero() {
		l.tail = nh
	} else {
		l.mustNode(succ).prev = nh
		l.linkWrites++
	}
	return nh, nil
}

// InsertBefore splices v in right before the element named by h and
// returns the new element's handle. O(1).
func (l *List[T]) InsertBefore(h Handle, v T) (Handle, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		return Handle{}, err
	}
	pred := nd.prev

	nh := l.slots.Alloc(node[T]{value: v, prev: pred, next: h})
	l.mustNode(h).prev = nh
	l.linkWrites++
	if pred.IsZero() {
		l.head = nh
	} else {
		l.mustNode(pred).next = nh
		l.linkWrites++
	}
	return nh, nil
}

// Remove unlinks the element named by h, returns its value, and recycles
// its slot. O(1) regardless of the element's position; this is the
// structure's advantage over a slice, whose removal cost is proportional
// to the number of elements after the removed one. Fails with
// ErrInvalidHandle if h is stale; the list is unchanged on failure.
func (l *List[T]) Remove(h Handle) (T, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		var zero T
		return zero, err
	}
	prev, next := nd.prev, nd.next

	if prev.IsZero() {
		l.head = next
	} else {
		l.mustNode(prev).next = next
		l.linkWrites++
	}
	if next.IsZero() {
		l.tail = prev
	} else {
		l.mustNode(next).prev = prev
		l.linkWrites++
	}

	freed, err := l.slots.Free(h)
	if err != nil {
		// Unreachable: h was just resolved and no alloc intervened.
		panic(fmt.Sprintf("list: free of live slot %d failed: %v", h.Index(), err))
	}
	return freed.value, nil
}

// PopFront removes and returns the first element. Fails with ErrEmptyList
// when the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.head.IsZero() {
		var zero T
		return zero, ErrEmptyList
	}
	return l.Remove(l.head)
}

// PopBack removes and returns the last element. Fails with ErrEmptyList
// when the list is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.tail.IsZero() {
		var zero T
		return zero, ErrEmptyList
	}
	return l.Remove(l.tail)
}

// Get returns a pointer to the element named by h, usable for both reads
// and in-place updates. The pointer is valid until the next insertion;
// the handle itself stays valid until the element is removed. Fails with
// ErrInvalidHandle if h is stale.
func (l *List[T]) Get(h Handle) (*T, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		return nil, err
	}
	return &nd.value, nil
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.slots.Len() }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.slots.Len() == 0 }

// Clear removes every element and empties the freelist. The backing
// store's capacity is retained for later insertions. All outstanding
// handles become stale.
func (l *List[T]) Clear() {
	l.slots.Reset()
	l.head = Handle{}
	l.tail = Handle{}
}

// Cap returns the slot capacity of the backing store.
func (l *List[T]) Cap() int { return l.slots.Cap() }

// SlotCount returns the total number of slots ever occupied and not yet
// released by Clear: the high-water element count of the list.
func (l *List[T]) SlotCount() int { return l.slots.SlotCount() }

// MemUsed estimates the heap bytes actively used by the list's slots,
// links, and freelist.
func (l *List[T]) MemUsed() uint64 { return l.slots.MemUsed() }

// MemReserved estimates the heap bytes allocated by the list, counting
// reserved but unused capacity.
func (l *List[T]) MemReserved() uint64 { return l.slots.MemReserved() }

// Stats returns a copy of the list's operation counters.
func (l *List[T]) Stats() Stats {
	return Stats{Stats: l.slots.Stats(), LinkWrites: l.linkWrites}
}

// String renders the elements front to back, space-separated.
func (l *List[T]) String() string {
	var sb strings.Builder
	for h := l.head; !h.IsZero(); {
		nd := l.mustNode(h)
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", nd.value)
		h = nd.next
	}
	return sb.String()
}
