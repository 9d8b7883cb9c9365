// Package list implements a doubly linked list whose elements live in one
// contiguous, growable slot store instead of individually heap-allocated
// nodes.
//
// The standard library's container/list allocates one node per element and
// links them with pointers. That gives O(1) removal anywhere in the list,
// but scatters elements across the heap, costing cache misses on traversal
// and per-node allocator overhead. A plain slice is the opposite trade:
// dense and fast to scan, but removing an element costs O(n) shifting.
//
// List keeps both properties: elements are stored in an arena-backed slice
// of slots linked by indices, so removal anywhere is O(1) while traversal
// walks contiguous memory. Freed slots are recycled through a LIFO
// freelist, and growth of the store never invalidates handles, because
// handles are positional rather than pointers.
//
// Every insertion returns a Handle, which is the argument to Get, Remove,
// InsertAfter, and InsertBefore. Handles are generation-tagged: once the
// element is removed, the handle goes stale and every use of it fails with
// ErrInvalidHandle, even after the underlying slot has been reused for an
// unrelated value.
//
//	l := list.New[string]()
//	a := l.PushBack("a")
//	l.PushBack("b")
//	v, err := l.Remove(a) // "a", nil
//	_, err = l.Get(a)     // ErrInvalidHandle
//
// What the structure does not give up O(1) removal for: arbitrary-position
// access stays O(distance from the nearer endpoint), and capacity freed by
// removals is recycled, never returned to the runtime.
//
// A List must not be used from multiple goroutines without external
// synchronization.
package list
