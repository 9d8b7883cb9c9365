// Package arena provides the slot store and freelist allocator backing the
// list package.
//
// # Overview
//
// An Arena stores fixed-size values in one contiguous, growable slice
// instead of individually heap-allocated nodes. Allocation and
// deallocation are O(1): freed slots are pushed onto a LIFO freelist and
// reused by later allocations before the store grows. The LIFO discipline
// is deliberate - the most recently freed slot is the first reused, which
// keeps allocations clustered in recently touched memory.
//
// # Refs and generations
//
// Alloc returns a Ref, a (slot index, generation) pair. Every slot carries
// a generation counter with parity discipline: even means free, odd means
// occupied. The counter is bumped on every free/reuse transition, so a Ref
// captured before a slot was freed no longer matches and fails with
// ErrInvalidRef instead of silently addressing an unrelated later value.
// Generations are kept in a slice parallel to the value store and survive
// Reset, so stale Refs stay detectable across a Reset as well.
//
// # Growth
//
// When the freelist is empty, Alloc appends to the backing slice, growing
// its capacity by the usual amortized doubling. Growth may move the slice
// in memory: pointers obtained from Get are only valid until the next
// Alloc, but Refs are positional and are never invalidated by growth.
// Freed capacity is recycled, never returned to the runtime; Reset
// truncates the store but keeps its capacity.
//
// Growth failure is an ordinary Go allocation failure and panics; there is
// no error value for it.
//
// # Thread safety
//
// Arena instances are not thread-safe. Callers must synchronize access
// externally.
package arena
