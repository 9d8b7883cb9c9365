package list

import (
	"errors"

	"github.com/differental/slotlist/list/arena"
)

var (
	// ErrInvalidHandle indicates a handle whose slot is free, stale, or
	// outside the store. It is the same error value as arena.ErrInvalidRef,
	// so errors.Is matches through either name.
	ErrInvalidHandle = arena.ErrInvalidRef

	// ErrEmptyList is returned by PopFront and PopBack on an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrIndexOutOfRange is returned by At for positions outside [0, Len).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)
