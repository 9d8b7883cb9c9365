// Package benchrun drives wall-clock comparisons of the slot-backed list
// against two baseline containers: a growable slice and the standard
// library's pointer-linked container/list. Each container runs the same
// three phases - sequential back insertion, midpoint access, midpoint
// removal - and reports durations alongside memory estimates.
package benchrun

import (
	stdlist "container/list"
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"github.com/differental/slotlist/list"
)

// Container names accepted by Run.
const (
	ContainerSlice    = "slice"
	ContainerStdList  = "stdlist"
	ContainerSlotList = "slotlist"
)

// DefaultContainers returns all supported containers in report order.
func DefaultContainers() []string {
	return []string{ContainerSlice, ContainerStdList, ContainerSlotList}
}

// Config selects the workload shape.
type Config struct {
	// Count is the number of elements each container is built with.
	Count int
	// PayloadWords is the per-element heap payload size in 8-byte words.
	// Zero benchmarks small, payload-free elements.
	PayloadWords int
}

// Result holds the measurements for one container.
type Result struct {
	Container   string        `json:"container"`
	Construct   time.Duration `json:"construct_ns"`
	Access      time.Duration `json:"access_ns"`
	Remove      time.Duration `json:"remove_ns"`
	Len         int           `json:"len"`
	MemUsed     uint64        `json:"mem_used_bytes"`
	MemReserved uint64        `json:"mem_reserved_bytes"`
}

// element is the workload element: an identifying string, an optional heap
// payload, and a trailing word the access phase reads back.
type element struct {
	Item  string
	Nums  []uint64
	Extra uint64
}

func newElement(i, words int) element {
	e := element{
		Item:  fmt.Sprintf("item #%d", i),
		Extra: ^uint64(0) - uint64(i),
	}
	if words > 0 {
		e.Nums = make([]uint64, words)
		for j := range e.Nums {
			e.Nums[j] = uint64(i)*10 + uint64(j)
		}
	}
	return e
}

// Sinks keep the compiler from eliminating the measured operations.
var (
	sinkElement element
	sinkLen     int
)

// Run executes the workload for each named container and returns one
// Result per container, in the order given.
func Run(cfg Config, containers []string) ([]Result, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("benchrun: count must be positive, got %d", cfg.Count)
	}
	if cfg.PayloadWords < 0 {
		return nil, fmt.Errorf("benchrun: payload words must not be negative, got %d", cfg.PayloadWords)
	}
	if len(containers) == 0 {
		containers = DefaultContainers()
	}

	results := make([]Result, 0, len(containers))
	for _, name := range containers {
		var r Result
		switch name {
		case ContainerSlice:
			r = runSlice(cfg)
		case ContainerStdList:
			r = runStdList(cfg)
		case ContainerSlotList:
			r = runSlotList(cfg)
		default:
			return nil, fmt.Errorf("benchrun: unknown container %q", name)
		}
		slog.Debug("container done",
			"container", r.Container,
			"construct", r.Construct,
			"access", r.Access,
			"remove", r.Remove,
			"mem_used", r.MemUsed)
		results = append(results, r)
	}
	return results, nil
}

// payloadBytes is the heap footprint of the elements' Nums slices, which
// is identical across containers and added to every estimate.
func payloadBytes(cfg Config, n int) uint64 {
	return 8 * uint64(cfg.PayloadWords) * uint64(n)
}

func runSlice(cfg Config) Result {
	v := make([]element, 0, cfg.Count)

	start := time.Now()
	for i := 0; i < cfg.Count; i++ {
		v = append(v, newElement(i, cfg.PayloadWords))
	}
	construct := time.Since(start)

	mid := len(v) / 2
	start = time.Now()
	sinkElement = v[mid]
	access := time.Since(start)

	start = time.Now()
	v = append(v[:mid], v[mid+1:]...)
	remove := time.Since(start)
	sinkLen = len(v)

	elemSize := uint64(unsafe.Sizeof(element{}))
	return Result{
		Container:   ContainerSlice,
		Construct:   construct,
		Access:      access,
		Remove:      remove,
		Len:         len(v),
		MemUsed:     elemSize*uint64(len(v)) + payloadBytes(cfg, len(v)),
		MemReserved: elemSize*uint64(cap(v)) + payloadBytes(cfg, len(v)),
	}
}

func runStdList(cfg Config) Result {
	l := stdlist.New()

	start := time.Now()
	for i := 0; i < cfg.Count; i++ {
		l.PushBack(newElement(i, cfg.PayloadWords))
	}
	construct := time.Since(start)

	mid := l.Len() / 2
	start = time.Now()
	e := l.Front()
	for i := 0; i < mid; i++ {
		e = e.Next()
	}
	sinkElement = e.Value.(element)
	access := time.Since(start)

	// The walk to the midpoint is part of what it costs this container to
	// remove there, so it stays inside the timed section.
	start = time.Now()
	e = l.Front()
	for i := 0; i < mid; i++ {
		e = e.Next()
	}
	l.Remove(e)
	remove := time.Since(start)
	sinkLen = l.Len()

	// Per-node estimate: list bookkeeping plus the boxed element. The
	// standard list reserves nothing ahead of use, so used == reserved.
	nodeSize := uint64(unsafe.Sizeof(stdlist.Element{}) + unsafe.Sizeof(element{}))
	mem := nodeSize*uint64(l.Len()) + payloadBytes(cfg, l.Len())
	return Result{
		Container:   ContainerStdList,
		Construct:   construct,
		Access:      access,
		Remove:      remove,
		Len:         l.Len(),
		MemUsed:     mem,
		MemReserved: mem,
	}
}

func runSlotList(cfg Config) Result {
	l := list.WithCapacity[element](cfg.Count)

	start := time.Now()
	for i := 0; i < cfg.Count; i++ {
		l.PushBack(newElement(i, cfg.PayloadWords))
	}
	construct := time.Since(start)

	mid := l.Len() / 2
	start = time.Now()
	h, err := l.At(mid)
	if err != nil {
		panic(fmt.Sprintf("benchrun: midpoint lookup: %v", err))
	}
	p, err := l.Get(h)
	if err != nil {
		panic(fmt.Sprintf("benchrun: midpoint get: %v", err))
	}
	sinkElement = *p
	access := time.Since(start)

	start = time.Now()
	h, err = l.At(mid)
	if err != nil {
		panic(fmt.Sprintf("benchrun: midpoint lookup: %v", err))
	}
	if _, err := l.Remove(h); err != nil {
		panic(fmt.Sprintf("benchrun: midpoint remove: %v", err))
	}
	remove := time.Since(start)
	sinkLen = l.Len()

	return Result{
		Container:   ContainerSlotList,
		Construct:   construct,
		Access:      access,
		Remove:      remove,
		Len:         l.Len(),
		MemUsed:     l.MemUsed() + payloadBytes(cfg, l.Len()),
		MemReserved: l.MemReserved() + payloadBytes(cfg, l.Len()),
	}
}
