// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a bit vector type used to track
// which blocks of a client-side buffer have changed since
// they were last uploaded, and which object names are in
// use.
package bitvec

import (
	"iter"
	"unsafe"
)

// Uint represents the granularity of a bit vector.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// V is a growable bit vector with custom granularity.
// The zero value is an empty vector ready for use.
type V[T Uint] struct {
	s   []T
	set int
}

// nbit returns the number of bits in T.
func (*V[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits in the vector.
func (v *V[_]) Len() int { return len(v.s) * v.nbit() }

// Count returns the number of set bits in the vector.
func (v *V[_]) Count() int { return v.set }

// Any returns whether any bit is set.
func (v *V[_]) Any() bool { return v.set > 0 }

// Grow resizes the vector to contain nplus additional Uints.
// The new extent is appended as a contiguous range of unset
// bits. It returns the value of v.Len prior to the call.
// It is valid to call this method with any value of nplus.
func (v *V[T]) Grow(nplus int) (index int) {
	index = v.Len()
	if nplus > 0 {
		v.s = append(v.s, make([]T, nplus)...)
	}
	return
}

// Reset resizes the vector to hold at least n bits and
// unsets every bit.
func (v *V[T]) Reset(n int) {
	nb := v.nbit()
	want := (n + nb - 1) / nb
	if want <= cap(v.s) {
		v.s = v.s[:want]
	} else {
		v.s = make([]T, want)
	}
	clear(v.s)
	v.set = 0
}

// Set sets a given bit.
func (v *V[T]) Set(index int) {
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	if v.s[i]&b == 0 {
		v.s[i] |= b
		v.set++
	}
}

// SetRange sets the bits in the range [index, index + n).
// The range is clamped to the length of the vector.
func (v *V[T]) SetRange(index, n int) {
	end := min(index+n, v.Len())
	for i := max(index, 0); i < end; i++ {
		v.Set(i)
	}
}

// Unset unsets a given bit.
func (v *V[T]) Unset(index int) {
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	if v.s[i]&b != 0 {
		v.s[i] &^= b
		v.set--
	}
}

// IsSet checks whether a given bit is set.
func (v *V[T]) IsSet(index int) bool {
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	return v.s[i]&b != 0
}

// Search returns the index of the first unset bit.
// It returns false if every bit is set.
func (v *V[T]) Search() (index int, ok bool) {
	if v.set == v.Len() {
		return
	}
	for i, x := range v.s {
		if x == ^T(0) {
			continue
		}
		var b int
		for ; x&(1<<b) != 0; b++ {
		}
		index = i*v.nbit() + b
		ok = true
		break
	}
	return
}

// Clear unsets every bit in the vector.
func (v *V[T]) Clear() {
	if v.set == 0 {
		return
	}
	clear(v.s)
	v.set = 0
}

// Runs returns an iterator over the maximal runs of set
// bits. The first value in the pair is the index of the
// first bit of the run, and the second is its length.
func (v *V[T]) Runs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if v.set == 0 {
			return
		}
		n := v.nbit()
		start := -1
		for i, x := range v.s {
			if start < 0 && x == 0 {
				continue
			}
			if start >= 0 && x == ^T(0) {
				continue
			}
			for b := range n {
				on := x&(1<<b) != 0
				switch {
				case on && start < 0:
					start = i*n + b
				case !on && start >= 0:
					if !yield(start, i*n+b-start) {
						return
					}
					start = -1
				}
			}
		}
		if start >= 0 {
			yield(start, v.Len()-start)
		}
	}
}
