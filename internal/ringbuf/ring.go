package ringbuf

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrFull is returned by Push when every slot holds a live element.
	ErrFull = errors.New("ring buffer is full")
	// ErrEmpty is returned by Pop and Peek when no element is live.
	ErrEmpty = errors.New("ring buffer is empty")
	// ErrCapacity is returned by New for a capacity below one.
	ErrCapacity = errors.New("ring buffer capacity must be positive")
)

// Number is the set of scalar element types a RingBuffer can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// RingBuffer is a fixed-capacity FIFO of numeric samples.
//
// head is the oldest live element, tail the next write slot and count the
// number of live elements, so tail == (head+count) % capacity always holds.
// A RingBuffer is not safe for concurrent use.
type RingBuffer[T Number] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// New creates an empty buffer holding at most capacity elements.
func New[T Number](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	return &RingBuffer[T]{
		buf: make([]T, capacity),
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[T Number](capacity int) *RingBuffer[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// IsFull reports whether every slot is live.
func (r *RingBuffer[T]) IsFull() bool {
	return r.count == len(r.buf)
}

// IsEmpty reports whether no slot is live.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.count == 0
}

// Len returns the number of live elements.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// Push appends v at the tail. It returns ErrFull and leaves the buffer
// untouched when no slot is free.
func (r *RingBuffer[T]) Push(v T) error {
	if r.IsFull() {
		return ErrFull
	}
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
	r.count++
	return nil
}

// PushOverwrite appends v, first evicting the oldest element if the buffer
// is full. The evicted value is returned with ok set to true.
func (r *RingBuffer[T]) PushOverwrite(v T) (evicted T, ok bool) {
	if r.IsFull() {
		// cannot fail: the buffer is full, so it is not empty
		evicted, _ = r.Pop()
		ok = true
	}
	// cannot fail: a slot is free at this point
	_ = r.Push(v)
	return evicted, ok
}

// Pop removes and returns the oldest element, or ErrEmpty.
func (r *RingBuffer[T]) Pop() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, nil
}

// Peek returns the oldest element without removing it, or ErrEmpty.
func (r *RingBuffer[T]) Peek() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return r.buf[r.head], nil
}

// Average returns the arithmetic mean of the live elements, or 0 when the
// buffer is empty.
func (r *RingBuffer[T]) Average() float64 {
	if r.count == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < r.count; i++ {
		total += float64(r.buf[(r.head+i)%len(r.buf)])
	}
	return total / float64(r.count)
}

// Snapshot returns the live elements in chronological order (oldest first).
// The returned slice is a copy.
func (r *RingBuffer[T]) Snapshot() []T {
	result := make([]T, r.count)
	n := copy(result, r.buf[r.head:min(r.head+r.count, len(r.buf))])
	copy(result[n:], r.buf[:r.count-n])
	return result
}

// Cursors returns the head and tail positions and the live count.
func (r *RingBuffer[T]) Cursors() (head, tail, count int) {
	return r.head, r.tail, r.count
}

// Reset discards every element. Storage keeps its stale values.
func (r *RingBuffer[T]) Reset() {
	r.head = 0
	r.tail = 0
	r.count = 0
}
