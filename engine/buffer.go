// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"sync"
	"unsafe"

	"gviegas/ardor/driver"
	"gviegas/ardor/internal/bitvec"
)

// Usage is a hint of how often the data of a Buffer
// changes.
type Usage int

// Usages.
const (
	Static Usage = iota
	Dynamic
	Stream
)

func (u Usage) enum() driver.Enum {
	switch u {
	case Dynamic:
		return driver.DynamicDraw
	case Stream:
		return driver.StreamDraw
	}
	return driver.StaticDraw
}

// BufferState describes how a Buffer is mirrored in a
// given context.
type BufferState int

// Buffer states.
const (
	// The buffer holds no data.
	NoData BufferState = iota
	// The data is sourced from client memory.
	ClientMemory
	// The data is uploaded and up to date.
	Uploaded
	// The data is uploaded but was modified since.
	Stale
)

// Buffer holds vertex or index data.
// It is mirrored into one buffer object per context on
// first use. Buffers may be shared by any number of
// meshes and contexts.
type Buffer struct {
	// Usage is passed to the driver when the buffer object
	// storage is (re)created.
	Usage Usage

	comps   int
	floats  []float32
	indices []uint32

	mu   sync.Mutex
	vbos map[any]*vbo
}

// vbo is the buffer object of a Buffer in one context.
type vbo struct {
	id    uint32
	size  int
	dirty bitvec.V[uint64]
}

// NewFloatBuffer creates a Buffer of vertex attributes
// with comps components per element.
func NewFloatBuffer(comps int, data []float32) *Buffer {
	return &Buffer{comps: max(comps, 1), floats: data}
}

// NewIndexBuffer creates a Buffer of indices.
func NewIndexBuffer(data []uint32) *Buffer {
	return &Buffer{comps: 1, indices: data}
}

// IsIndex returns whether b holds indices.
func (b *Buffer) IsIndex() bool { return b.indices != nil }

// Comps returns the number of components per element.
func (b *Buffer) Comps() int { return b.comps }

// Len returns the number of scalars in b.
func (b *Buffer) Len() int {
	if b.indices != nil {
		return len(b.indices)
	}
	return len(b.floats)
}

// Count returns the number of elements in b.
func (b *Buffer) Count() int { return b.Len() / b.comps }

// Floats returns the vertex data of b.
// After modifying it, call MarkDirty.
func (b *Buffer) Floats() []float32 { return b.floats }

// Indices returns the index data of b.
// After modifying it, call MarkDirty.
func (b *Buffer) Indices() []uint32 { return b.indices }

// MarkDirty notifies that n scalars starting at off were
// modified. Every context re-uploads the affected blocks
// the next time b is drawn.
func (b *Buffer) MarkDirty(off, n int) {
	if n <= 0 || off < 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	first := off / DirtyBlock
	last := (off + n - 1) / DirtyBlock
	for _, v := range b.vbos {
		v.dirty.SetRange(first, last-first+1)
	}
}

// Replace replaces the vertex data of b.
// Every context re-creates the buffer object storage the
// next time b is drawn.
func (b *Buffer) Replace(data []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.floats, b.indices = data, nil
	b.resize()
}

// ReplaceIndices is like Replace but for index data.
func (b *Buffer) ReplaceIndices(data []uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.floats, b.indices = nil, data
	b.comps = 1
	b.resize()
}

func (b *Buffer) resize() {
	for _, v := range b.vbos {
		v.size = -1
	}
}

// ID returns the buffer object of b in the context
// identified by key, or 0 if there is none.
func (b *Buffer) ID(key any) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.vbos[key]; ok {
		return v.id
	}
	return 0
}

// State returns the state of b in the context identified
// by key.
func (b *Buffer) State(key any) BufferState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Len() == 0 {
		return NoData
	}
	v, ok := b.vbos[key]
	switch {
	case !ok:
		return ClientMemory
	case v.size != b.Len() || v.dirty.Any():
		return Stale
	}
	return Uploaded
}

func (b *Buffer) target() driver.Enum {
	if b.indices != nil {
		return driver.ElementArrayBuffer
	}
	return driver.ArrayBuffer
}

// bytes returns the scalars of b in [from, to) as a
// byte slice sharing memory with b.
func (b *Buffer) bytes(from, to int) []byte {
	if from >= to {
		return nil
	}
	if b.indices != nil {
		s := b.indices[from:to]
		return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
	}
	s := b.floats[from:to]
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
}

func blocks(n int) int { return (n + DirtyBlock - 1) / DirtyBlock }

// sync makes the buffer object of b in the context
// identified by key match the data of b, using gl.
// bind is called to bind the buffer object before any
// upload.
// It returns the buffer object and whether it was
// created.
func (b *Buffer) sync(gl driver.GL, key any, bind func(uint32)) (uint32, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.Len()
	target := b.target()
	v, ok := b.vbos[key]
	if !ok {
		id := gl.GenBuffer()
		if id == 0 {
			return 0, false, newRendErr("failed to create buffer object")
		}
		bind(id)
		gl.BufferData(target, b.bytes(0, n), b.Usage.enum())
		v = &vbo{id: id, size: n}
		v.dirty.Reset(blocks(n))
		if b.vbos == nil {
			b.vbos = make(map[any]*vbo)
		}
		b.vbos[key] = v
		return id, true, nil
	}
	switch {
	case v.size != n:
		bind(v.id)
		gl.BufferData(target, b.bytes(0, n), b.Usage.enum())
		v.size = n
		v.dirty.Reset(blocks(n))
	case v.dirty.Any():
		bind(v.id)
		for i, cnt := range v.dirty.Runs() {
			from := i * DirtyBlock
			to := min((i+cnt)*DirtyBlock, n)
			if from < to {
				gl.BufferSubData(target, from*4, b.bytes(from, to))
			}
		}
		v.dirty.Clear()
	}
	return v.id, false, nil
}

// take removes and returns the buffer objects of b.
func (b *Buffer) take() map[any]*vbo {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := b.vbos
	b.vbos = nil
	return m
}

// drop removes the buffer object of b in the context
// identified by key and returns its name.
func (b *Buffer) drop(key any) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.vbos[key]
	if !ok {
		return 0
	}
	delete(b.vbos, key)
	return v.id
}
