// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package names implements an allocator of object names
// (e.g., texture and buffer identifiers). Names are never
// zero and freed names are reused lowest first.
package names

import (
	"gviegas/ardor/internal/bitvec"
)

// Pool is a growable set of names backed by a bit vector.
// The zero value is an empty pool ready for use.
type Pool struct {
	v bitvec.V[uint64]
}

// Len returns the number of names in use.
func (p *Pool) Len() int { return p.v.Count() }

// New allocates a name.
func (p *Pool) New() uint32 {
	idx, ok := p.v.Search()
	if !ok {
		idx = p.v.Grow(1)
	}
	p.v.Set(idx)
	return uint32(idx) + 1
}

// Free releases a name.
// Freeing a name that is not in use has no effect.
func (p *Pool) Free(name uint32) {
	if p.InUse(name) {
		p.v.Unset(int(name - 1))
	}
}

// InUse returns whether name was allocated and not freed.
func (p *Pool) InUse(name uint32) bool {
	if name == 0 || int(name-1) >= p.v.Len() {
		return false
	}
	return p.v.IsSet(int(name - 1))
}

// Clear frees every name.
func (p *Pool) Clear() { p.v.Clear() }
