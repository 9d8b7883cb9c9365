package list

import (
	"fmt"
	"iter"
)

// Forward returns an iterator over the elements from front to back,
// yielding each element's handle and value. Iteration is lazy and
// restartable; it follows forward links only and never touches the
// freelist. The list must not be mutated during iteration.
func (l *List[T]) Forward() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for h := l.head; !h.IsZero(); {
			nd := l.mustNode(h)
			if !yield(h, nd.value) {
				return
			}
			h = nd.next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for h := l.tail; !h.IsZero(); {
			nd := l.mustNode(h)
			if !yield(h, nd.value) {
				return
			}
			h = nd.prev
		}
	}
}

// Front returns the handle of the first element, or false on an empty
// list.
func (l *List[T]) Front() (Handle, bool) {
	return l.head, !l.head.IsZero()
}

// Back returns the handle of the last element, or false on an empty list.
func (l *List[T]) Back() (Handle, bool) {
	return l.tail, !l.tail.IsZero()
}

// Next returns the handle of the element after h, or the zero Handle when
// h names the last element. Fails with ErrInvalidHandle if h is stale.
func (l *List[T]) Next(h Handle) (Handle, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		return Handle{}, err
	}
	return nd.next, nil
}

// Prev returns the handle of the element before h, or the zero Handle when
// h names the first element. Fails with ErrInvalidHandle if h is stale.
func (l *List[T]) Prev(h Handle) (Handle, error) {
	nd, err := l.slots.Get(h)
	if err != nil {
		return Handle{}, err
	}
	return nd.prev, nil
}

// At returns the handle of the element at logical position i, walking from
// whichever endpoint is nearer. Cost is min(i, Len()-1-i) link follows;
// there is no O(1) positional access.
func (l *List[T]) At(i int) (Handle, error) {
	n := l.Len()
	if i < 0 || i >= n {
		return Handle{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, n)
	}
	if i <= n-1-i {
		h := l.head
		for ; i > 0; i-- {
			h = l.mustNode(h).next
		}
		return h, nil
	}
	h := l.tail
	for i = n - 1 - i; i > 0; i-- {
		h = l.mustNode(h).prev
	}
	return h, nil
}
