package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AllocGetFree(t *testing.T) {
	a := New[string]()

	r1 := a.Alloc("one")
	r2 := a.Alloc("two")
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.SlotCount())

	p, err := a.Get(r1)
	require.NoError(t, err)
	require.Equal(t, "one", *p)

	v, err := a.Free(r1)
	require.NoError(t, err)
	require.Equal(t, "one", v)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 1, a.FreeCount())

	// r2 untouched by freeing r1
	p, err = a.Get(r2)
	require.NoError(t, err)
	require.Equal(t, "two", *p)
}

func Test_FreelistLIFO(t *testing.T) {
	a := New[int]()

	refs := make([]Ref, 4)
	for i := range refs {
		refs[i] = a.Alloc(i)
	}

	// Free 1 then 3; the next allocations must reuse 3 first, then 1.
	_, err := a.Free(refs[1])
	require.NoError(t, err)
	_, err = a.Free(refs[3])
	require.NoError(t, err)

	r := a.Alloc(30)
	require.Equal(t, refs[3].Index(), r.Index())
	r = a.Alloc(10)
	require.Equal(t, refs[1].Index(), r.Index())

	// Both reuses, no appends beyond the first four.
	require.Equal(t, 4, a.SlotCount())
	require.Equal(t, 2, a.Stats().ReuseCalls)
	require.Equal(t, 4, a.Stats().AppendCalls)
}

func Test_StaleRefDetected(t *testing.T) {
	a := New[int]()

	r := a.Alloc(7)
	_, err := a.Free(r)
	require.NoError(t, err)

	_, err = a.Get(r)
	require.ErrorIs(t, err, ErrInvalidRef)
	_, err = a.Free(r)
	require.ErrorIs(t, err, ErrInvalidRef)

	// Reuse the slot; the old ref is doubly stale and still rejected.
	r2 := a.Alloc(8)
	require.Equal(t, r.Index(), r2.Index())
	require.NotEqual(t, r.Generation(), r2.Generation())

	_, err = a.Get(r)
	require.ErrorIs(t, err, ErrInvalidRef)

	p, err := a.Get(r2)
	require.NoError(t, err)
	require.Equal(t, 8, *p)
}

func Test_ZeroAndRangeRefs(t *testing.T) {
	a := New[int]()
	a.Alloc(1)

	_, err := a.Get(Ref{})
	require.ErrorIs(t, err, ErrInvalidRef)

	_, err = a.Get(Ref{index: 99, gen: 1})
	require.ErrorIs(t, err, ErrInvalidRef)
}

func Test_ResetRetainsCapacityAndStaleness(t *testing.T) {
	a := WithCapacity[int](8)
	require.Equal(t, 8, a.Cap())

	refs := make([]Ref, 4)
	for i := range refs {
		refs[i] = a.Alloc(i)
	}
	_, err := a.Free(refs[2])
	require.NoError(t, err)

	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.SlotCount())
	require.Equal(t, 0, a.FreeCount())
	require.Equal(t, 8, a.Cap())

	// Every pre-Reset ref is stale, freed or not.
	for _, r := range refs {
		_, err := a.Get(r)
		require.ErrorIs(t, err, ErrInvalidRef)
	}

	// Indices are handed out again after Reset, but with fresh generations.
	r := a.Alloc(100)
	require.Equal(t, 0, r.Index())
	require.Greater(t, r.Generation(), refs[0].Generation())
	p, getErr := a.Get(r)
	require.NoError(t, getErr)
	require.Equal(t, 100, *p)
}

func Test_RefAt(t *testing.T) {
	a := New[int]()
	r0 := a.Alloc(0)
	r1 := a.Alloc(1)

	got, ok := a.RefAt(1)
	require.True(t, ok)
	require.Equal(t, r1, got)

	_, err := a.Free(r0)
	require.NoError(t, err)
	_, ok = a.RefAt(0)
	require.False(t, ok)
	_, ok = a.RefAt(5)
	require.False(t, ok)
	_, ok = a.RefAt(-1)
	require.False(t, ok)
}

func Test_SlotAccounting(t *testing.T) {
	a := New[int]()

	refs := make([]Ref, 10)
	for i := range refs {
		refs[i] = a.Alloc(i)
	}
	for _, r := range refs[:5] {
		_, err := a.Free(r)
		require.NoError(t, err)
	}

	// SlotCount always equals occupied + freelist.
	require.Equal(t, a.SlotCount(), a.Len()+a.FreeCount())
	require.Equal(t, 5, a.Len())

	require.Positive(t, a.MemUsed())
	require.GreaterOrEqual(t, a.MemReserved(), a.MemUsed())
}

func Test_NoGrowthOnReuse(t *testing.T) {
	a := New[int]()
	for i := range 100 {
		a.Alloc(i)
	}
	capBefore := a.Cap()
	slotsBefore := a.SlotCount()

	r, ok := a.RefAt(50)
	require.True(t, ok)
	_, err := a.Free(r)
	require.NoError(t, err)

	r2 := a.Alloc(-1)
	require.Equal(t, 50, r2.Index())
	require.Equal(t, capBefore, a.Cap())
	require.Equal(t, slotsBefore, a.SlotCount())
}
