package list

import (
	stdlist "container/list"
	"testing"
)

// Sinks prevent the compiler from eliminating benchmarked operations.
var (
	benchHandle Handle
	benchValue  uint64
	benchElem   *stdlist.Element
)

const benchSize = 100000

func buildList(n int) (*List[uint64], []Handle) {
	l := WithCapacity[uint64](n)
	handles := make([]Handle, n)
	for i := range handles {
		handles[i] = l.PushBack(uint64(i))
	}
	return l, handles
}

func Benchmark_List_PushBack(b *testing.B) {
	l := New[uint64]()
	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		benchHandle = l.PushBack(uint64(i))
	}
}

func Benchmark_StdList_PushBack(b *testing.B) {
	l := stdlist.New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		benchElem = l.PushBack(uint64(i))
	}
}

func Benchmark_Slice_Append(b *testing.B) {
	var s []uint64
	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		s = append(s, uint64(i))
	}
	if len(s) > 0 {
		benchValue = s[0]
	}
}

// Midpoint removal followed by reinsertion at the back, so the structure
// keeps its size across iterations. This is the operation the structure
// exists for: O(1) here, O(n) for the slice.
func Benchmark_List_MidRemove(b *testing.B) {
	l, _ := buildList(benchSize)
	mid, err := l.At(benchSize / 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		v, removeErr := l.Remove(mid)
		if removeErr != nil {
			b.Fatal(removeErr)
		}
		benchValue = v
		mid = l.PushBack(v)
	}
}

func Benchmark_StdList_MidRemove(b *testing.B) {
	l := stdlist.New()
	for i := range benchSize {
		l.PushBack(uint64(i))
	}
	mid := l.Front()
	for range benchSize / 2 {
		mid = mid.Next()
	}
	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		v := l.Remove(mid).(uint64)
		benchValue = v
		mid = l.PushBack(v)
	}
}

func Benchmark_Slice_MidRemove(b *testing.B) {
	s := make([]uint64, benchSize)
	for i := range s {
		s[i] = uint64(i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		mid := len(s) / 2
		v := s[mid]
		s = append(s[:mid], s[mid+1:]...)
		benchValue = v
		s = append(s, v)
	}
}

func Benchmark_List_MidAccess(b *testing.B) {
	l, _ := buildList(benchSize)
	b.ResetTimer()
	for range b.N {
		h, err := l.At(benchSize / 2)
		if err != nil {
			b.Fatal(err)
		}
		p, err := l.Get(h)
		if err != nil {
			b.Fatal(err)
		}
		benchValue = *p
	}
}

func Benchmark_StdList_MidAccess(b *testing.B) {
	l := stdlist.New()
	for i := range benchSize {
		l.PushBack(uint64(i))
	}
	b.ResetTimer()
	for range b.N {
		e := l.Front()
		for range benchSize / 2 {
			e = e.Next()
		}
		benchValue = e.Value.(uint64)
	}
}

func Benchmark_Slice_MidAccess(b *testing.B) {
	s := make([]uint64, benchSize)
	for i := range s {
		s[i] = uint64(i)
	}
	b.ResetTimer()
	for range b.N {
		benchValue = s[len(s)/2]
	}
}

func Benchmark_List_Traverse(b *testing.B) {
	l, _ := buildList(benchSize)
	b.ResetTimer()
	for range b.N {
		var sum uint64
		for _, v := range l.Forward() {
			sum += v
		}
		benchValue = sum
	}
}

func Benchmark_StdList_Traverse(b *testing.B) {
	l := stdlist.New()
	for i := range benchSize {
		l.PushBack(uint64(i))
	}
	b.ResetTimer()
	for range b.N {
		var sum uint64
		for e := l.Front(); e != nil; e = e.Next() {
			sum += e.Value.(uint64)
		}
		benchValue = sum
	}
}

// Handle lookup after removals exercises the generation checks on a store
// with a populated freelist.
func Benchmark_List_GetAfterChurn(b *testing.B) {
	l, handles := buildList(benchSize)
	for i := 0; i < benchSize; i += 2 {
		if _, err := l.Remove(handles[i]); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := range b.N {
		h := handles[(i*2+1)%benchSize]
		p, err := l.Get(h)
		if err != nil {
			b.Fatal(err)
		}
		benchValue = *p
	}
}
