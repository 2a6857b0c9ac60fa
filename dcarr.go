// Package dcarr implements a generic double-ended dynamic array backed by a
// circular buffer, also known as an array deque. It has amortized constant
// time insertion and removal at both ends, constant time random access, and
// linear time insertion and removal at arbitrary positions, so it works as a
// stack, a queue, or a deque.
package dcarr

import (
	"errors"
	"iter"
	"math/bits"
	"slices"
)

// Deque is a double-ended queue over a circular buffer whose capacity is
// always zero or a power of two, so logical indexes map to physical slots
// with a bitwise AND instead of a modulo.
//
// The zero value is an empty deque with no allocation. Nothing is allocated
// until the first element is inserted. When an insertion would overflow the
// buffer, capacity doubles (with a floor of 8); when removals leave the deque
// at or below a quarter of its capacity, the buffer is halved until it is
// over a quarter full again or the floor is reached.
//
// A Deque is not safe for concurrent use. Exactly one goroutine owns it at a
// time; wrap it in external synchronization otherwise.
type Deque[T any] struct {
	buf    []T
	off    int // physical slot of the logical first element
	length int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty Deque. No buffer is allocated until the first
// insertion. Equivalent to new(Deque[T]).
func New[T any]() *Deque[T] {
	return new(Deque[T])
}

// WithCapacity returns an empty Deque whose buffer holds at least capacity
// elements before the first reallocation. The capacity is rounded up to a
// power of two. A capacity of zero defers allocation to the first insertion.
// Returns ErrNegativeCapacity if capacity is negative.
func WithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	d := new(Deque[T])
	if capacity > 0 {
		d.buf = make([]T, ceilPow2(capacity))
	}
	return d, nil
}

// FromSlice returns a Deque holding a copy of every element of s, in order.
// Memory is not shared with s.
func FromSlice[T any](s []T) *Deque[T] {
	d, _ := WithCapacity[T](len(s))
	copy(d.buf, s)
	d.length = len(s)
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque, or 0 if it is nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.length
}

// Cap returns the current capacity of the underlying buffer.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Empty returns whether the Deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.length == 0 }

// Full returns whether the next insertion will reallocate.
func (d *Deque[T]) Full() bool { return d.length == len(d.buf) }

// PushBack appends v as the new logical last element.
func (d *Deque[T]) PushBack(v T) {
	d.reserve(1)
	d.buf[d.slot(d.length)] = v
	d.length++
}

// PushFront prepends v as the new logical first element.
func (d *Deque[T]) PushFront(v T) {
	d.reserve(1)
	d.off = d.slot(len(d.buf) - 1)
	d.buf[d.off] = v
	d.length++
}

// PopBack removes and returns the last element. The vacated slot is zeroed so
// that element references do not keep memory alive. Returns ErrEmpty if the
// Deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.length == 0 {
		return zero, ErrEmpty
	}
	d.length--
	i := d.slot(d.length)
	v := d.buf[i]
	d.buf[i] = zero
	d.maybeShrink()
	return v, nil
}

// PopFront removes and returns the first element. The vacated slot is zeroed
// so that element references do not keep memory alive. Returns ErrEmpty if
// the Deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.length == 0 {
		return zero, ErrEmpty
	}
	v := d.buf[d.off]
	d.buf[d.off] = zero
	d.off = d.slot(1)
	d.length--
	d.maybeShrink()
	return v, nil
}

// PeekBack returns the last element without removing it, or ErrEmpty.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[d.slot(d.length-1)], nil
}

// PeekFront returns the first element without removing it, or ErrEmpty.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[d.off], nil
}

// Get returns the element at logical index i, or ErrIndexOutOfRange.
func (d *Deque[T]) Get(i int) (T, error) {
	if i < 0 || i >= d.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return d.buf[d.slot(i)], nil
}

// Set overwrites the element at logical index i with v. Returns
// ErrIndexOutOfRange if i is out of bounds.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.length {
		return ErrIndexOutOfRange
	}
	d.buf[d.slot(i)] = v
	return nil
}

// Swap exchanges the elements at logical indexes i and j. Returns
// ErrIndexOutOfRange if either index is out of bounds.
func (d *Deque[T]) Swap(i, j int) error {
	if i < 0 || i >= d.length || j < 0 || j >= d.length {
		return ErrIndexOutOfRange
	}
	pi, pj := d.slot(i), d.slot(j)
	d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
	return nil
}

// Insert places v at logical index i, shifting later elements up by one.
// Insert(0, v) is PushFront and Insert(d.Len(), v) is PushBack; any other
// position costs O(n). Whether the prefix or the suffix of the window is
// shifted is a local cost heuristic, so callers may rely on correctness and
// the O(n) bound but not on which side moves. Returns ErrIndexOutOfRange if
// i is outside [0, d.Len()].
func (d *Deque[T]) Insert(i int, v T) error {
	if i < 0 || i > d.length {
		return ErrIndexOutOfRange
	}
	switch i {
	case 0:
		d.PushFront(v)
		return nil
	case d.length:
		d.PushBack(v)
		return nil
	}
	d.reserve(1)
	pi := d.slot(i)
	if pi > d.off && d.off != 0 {
		// The prefix [off, pi) is contiguous and the slot before it is
		// free; slide it left one step.
		copy(d.buf[d.off-1:pi-1], d.buf[d.off:pi])
		d.off--
		pi--
	} else {
		// pi <= off here only when the window wraps and index i landed in
		// the wrapped tail, which is contiguous from slot 0, so the suffix
		// [pi, pi+length-i) never crosses the buffer end. The same holds
		// when off is 0 and the window cannot wrap at all.
		copy(d.buf[pi+1:pi+1+d.length-i], d.buf[pi:pi+d.length-i])
	}
	d.buf[pi] = v
	d.length++
	return nil
}

// Remove deletes and returns the element at logical index i, shifting later
// elements down by one. Removing the first or last element is O(1); any
// other position costs O(n). Returns ErrIndexOutOfRange if i is out of
// bounds.
func (d *Deque[T]) Remove(i int) (T, error) {
	if i < 0 || i >= d.length {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	switch i {
	case 0:
		return d.PopFront()
	case d.length - 1:
		return d.PopBack()
	}
	var zero T
	pi := d.slot(i)
	v := d.buf[pi]
	if pi > d.off {
		// Close the gap by sliding the prefix [off, pi) right one step.
		copy(d.buf[d.off+1:pi+1], d.buf[d.off:pi])
		d.buf[d.off] = zero
		d.off = d.slot(1)
	} else {
		// Index i is in the wrapped tail; the suffix through the end of
		// the window is contiguous from slot 0. Slide it left one step.
		end := d.off + d.length - len(d.buf)
		copy(d.buf[pi:end-1], d.buf[pi+1:end])
		d.buf[end-1] = zero
	}
	d.length--
	d.maybeShrink()
	return v, nil
}

// Resize sets the logical length to n. Growing fills the new positions with
// zero values; shrinking discards elements from the back and may reduce
// capacity. Returns ErrNegativeCapacity if n is negative.
func (d *Deque[T]) Resize(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	if n > d.length {
		d.reserve(n - d.length)
		var zero T
		for k := d.length; k < n; k++ {
			d.buf[d.slot(k)] = zero
		}
		d.length = n
	} else if n < d.length {
		var zero T
		for k := n; k < d.length; k++ {
			d.buf[d.slot(k)] = zero
		}
		d.length = n
		d.maybeShrink()
	}
	return nil
}

// Reserve ensures there is room to insert at least n more elements without
// reallocating. Returns ErrNegativeCapacity if n is negative.
func (d *Deque[T]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	d.reserve(n)
	return nil
}

// Sort reorders the elements in place so that cmp(a, b) <= 0 for every
// adjacent pair a, b. The comparator returns a negative number when a < b,
// zero when a == b, and a positive number when a > b, and must describe a
// total order. The sort is not stable.
//
// If the window wraps around the buffer end, it is first made contiguous so
// that a regular range sort applies.
func (d *Deque[T]) Sort(cmp func(a, b T) int) {
	if d.off+d.length > len(d.buf) {
		// Slide the leading segment down against the wrapped tail. This
		// scrambles the element order, which the sort is about to discard
		// anyway; the multiset is preserved.
		copy(d.buf[d.off+d.length-len(d.buf):d.length], d.buf[d.off:])
		d.off = 0
	}
	slices.SortFunc(d.buf[d.off:d.off+d.length], cmp)
}

// Clear removes every element, zeroing the occupied slots so references are
// released, but keeps the buffer for reuse.
func (d *Deque[T]) Clear() {
	var zero T
	a, b := d.segments()
	for i := range a {
		a[i] = zero
	}
	for i := range b {
		b[i] = zero
	}
	d.off, d.length = 0, 0
}

// Release drops the buffer entirely, returning the Deque to its zero state.
// The Deque remains usable afterwards and allocates again on the next
// insertion.
func (d *Deque[T]) Release() {
	d.buf = nil
	d.off, d.length = 0, 0
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// segments returns the logical window as one or two physically contiguous
// slices of the buffer, in logical order.
func (d *Deque[T]) segments() (a, b []T) {
	if d == nil || d.length == 0 {
		return nil, nil
	}
	if d.off+d.length <= len(d.buf) {
		return d.buf[d.off : d.off+d.length], nil
	}
	return d.buf[d.off:], d.buf[:d.off+d.length-len(d.buf)]
}

// ToSlice allocates a slice holding a copy of every element in logical
// order. Prefer CopyTo for memory reuse.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, d.Len())
	d.CopyTo(s)
	return s
}

// CopyTo copies elements into buf starting from the logical first element,
// with the semantics of the copy built-in. It returns the number of elements
// copied, the minimum of len(buf) and d.Len().
func (d *Deque[T]) CopyTo(buf []T) int {
	a, b := d.segments()
	n := copy(buf, a)
	return n + copy(buf[n:], b)
}

// Contains reports whether v is an element of d. It is a function rather
// than a method so that Deque itself is not constrained to comparable
// element types.
func Contains[T comparable](d *Deque[T], v T) bool {
	a, b := d.segments()
	return slices.Contains(a, v) || slices.Contains(b, v)
}

// ContainsFunc reports whether any element of d satisfies f.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	a, b := d.segments()
	return slices.ContainsFunc(a, f) || slices.ContainsFunc(b, f)
}

// Index returns the logical index of the first occurrence of v in d, or -1
// if v is absent. It is a function for the same reason as Contains.
func Index[T comparable](d *Deque[T], v T) int {
	a, b := d.segments()
	if i := slices.Index(a, v); i != -1 {
		return i
	}
	if i := slices.Index(b, v); i != -1 {
		return i + len(a)
	}
	return -1
}

// IndexFunc returns the logical index of the first element satisfying f, or
// -1 if none does.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	a, b := d.segments()
	if i := slices.IndexFunc(a, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(b, f); i != -1 {
		return i + len(a)
	}
	return -1
}

// Equal reports whether two Deques hold the same elements in the same order.
// Two nil Deques are equal; a nil Deque and an empty one are not.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.length != d2.length {
		return false
	}
	for i := 0; i < d1.length; i++ {
		if d1.buf[d1.slot(i)] != d2.buf[d2.slot(i)] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, leaving the
// element type unconstrained.
func (d *Deque[T]) EqualFunc(d2 *Deque[T], eq func(T, T) bool) bool {
	if d == nil || d2 == nil {
		return d == d2
	}
	if d.length != d2.length {
		return false
	}
	for i := 0; i < d.length; i++ {
		if !eq(d.buf[d.slot(i)], d2.buf[d2.slot(i)]) {
			return false
		}
	}
	return true
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over the elements in logical order. Mutating the
// Deque during iteration is not detected; the iterator walks a stale window.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.segments()
		for _, v := range a {
			if !yield(v) {
				return
			}
		}
		for _, v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over logical index and element pairs, in order.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.segments()
		for i, v := range a {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range b {
			if !yield(i+len(a), v) {
				return
			}
		}
	}
}

/*****************************************************************************
 * CAPACITY MANAGEMENT
 *****************************************************************************/

// minCapacity is the smallest buffer ever allocated by automatic growth, and
// the floor below which automatic shrinking stops.
const minCapacity = 8

// reserve grows the buffer until n more elements fit. Growth doubles the
// capacity, keeping it a power of two so slot stays a single AND.
func (d *Deque[T]) reserve(n int) {
	if d.length+n <= len(d.buf) {
		return
	}
	newCap := max(len(d.buf), minCapacity)
	for d.length+n > newCap {
		newCap <<= 1
	}
	d.realloc(newCap)
}

// maybeShrink halves the capacity while the deque is at or below a quarter
// full, stopping at minCapacity, so a drained deque does not pin a large
// buffer.
func (d *Deque[T]) maybeShrink() {
	if len(d.buf) <= minCapacity || d.length<<2 > len(d.buf) {
		return
	}
	newCap := len(d.buf)
	for d.length<<2 <= newCap && newCap > minCapacity {
		newCap >>= 1
	}
	d.realloc(newCap)
}

// realloc moves the elements into a fresh buffer of newCap slots. The
// logical window is written contiguously from slot 0, which restores the
// invariant for any combination of old offset and wrap. newCap must be a
// power of two no smaller than the current length.
func (d *Deque[T]) realloc(newCap int) {
	newBuf := make([]T, newCap)
	a, b := d.segments()
	n := copy(newBuf, a)
	copy(newBuf[n:], b)
	d.buf = newBuf
	d.off = 0
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmpty is returned when removing or peeking an element of an empty
// Deque.
var ErrEmpty = errors.New("dcarr: deque is empty")

// ErrIndexOutOfRange is returned when a logical index is outside the bounds
// documented by the operation.
var ErrIndexOutOfRange = errors.New("dcarr: index out of range")

// ErrNegativeCapacity is returned when a capacity or length argument is
// negative.
var ErrNegativeCapacity = errors.New("dcarr: capacity cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// slot maps a logical index to its physical slot. The caller guarantees the
// buffer is allocated; capacity is a power of two, so the wrap is an AND.
func (d *Deque[T]) slot(i int) int {
	return (d.off + i) & (len(d.buf) - 1)
}

func ceilPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x-1))
}
