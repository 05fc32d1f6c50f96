// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package record

import (
	"gviegas/ardor/driver"
)

// Renderer holds state that the renderer itself changes
// while submitting geometry. Buffer bindings and the
// matrix mode are invalidated independently, since code
// outside the renderer (e.g., a texture upload) may
// disturb one without touching the other.
type Renderer struct {
	ArrayBuffer   uint32
	ElementBuffer uint32
	MatrixMode    driver.Enum
	ClearColor    [4]float32

	arrayValid   bool
	elementValid bool
	matrixValid  bool
	clearValid   bool

	// Client arrays, one bit per array index.
	arrays     uint32
	arraysSeen uint32
	clientUnit int

	// Cleanup holds buffer names whose owners are gone.
	// They are deleted at the end of the frame, while the
	// context is current.
	Cleanup []uint32
}

// NewRenderer creates an Invalid renderer record.
func NewRenderer() *Renderer {
	r := new(Renderer)
	r.Invalidate()
	return r
}

// Valid returns whether every part of r is valid.
// Client array state and the clear color are not
// considered.
func (r *Renderer) Valid() bool { return r.arrayValid && r.elementValid && r.matrixValid }

// Invalidate invalidates every part of r.
// The cleanup list is kept.
func (r *Renderer) Invalidate() {
	r.InvalidateVBO()
	r.InvalidateMatrix()
	r.clearValid = false
	r.ClearColor = UnknownColor
	r.arrays, r.arraysSeen = 0, 0
	r.clientUnit = -1
}

// InvalidateVBO invalidates the buffer bindings.
func (r *Renderer) InvalidateVBO() {
	r.arrayValid, r.elementValid = false, false
	r.ArrayBuffer, r.ElementBuffer = UnknownID, UnknownID
}

// InvalidateMatrix invalidates the matrix mode.
func (r *Renderer) InvalidateMatrix() {
	r.matrixValid = false
	r.MatrixMode = UnknownEnum
}

// SetArrayBuffer records id as the bound array buffer.
// It returns false if id is already known to be bound.
func (r *Renderer) SetArrayBuffer(id uint32) bool {
	ok := Set(r.arrayValid, &r.ArrayBuffer, id)
	r.arrayValid = true
	return ok
}

// SetElementBuffer records id as the bound element array
// buffer. It returns false if id is already known to be
// bound.
func (r *Renderer) SetElementBuffer(id uint32) bool {
	ok := Set(r.elementValid, &r.ElementBuffer, id)
	r.elementValid = true
	return ok
}

// SetMatrixMode records mode as the matrix mode.
// It returns false if mode is already known to be set.
func (r *Renderer) SetMatrixMode(mode driver.Enum) bool {
	ok := Set(r.matrixValid, &r.MatrixMode, mode)
	r.matrixValid = true
	return ok
}

// Forget invalidates the buffer bindings that refer to
// id, which is about to be deleted.
func (r *Renderer) Forget(id uint32) {
	if r.ArrayBuffer == id {
		r.arrayValid = false
		r.ArrayBuffer = UnknownID
	}
	if r.ElementBuffer == id {
		r.elementValid = false
		r.ElementBuffer = UnknownID
	}
}

// SetClearColor records c as the clear color.
// It returns false if c is already known to be set.
func (r *Renderer) SetClearColor(c [4]float32) bool {
	ok := Set(r.clearValid, &r.ClearColor, c)
	r.clearValid = true
	return ok
}

// SetArray records whether client array i (in [0, 32)) is
// enabled. It returns false if the array is already known
// to be in that state.
func (r *Renderer) SetArray(i int, on bool) bool {
	b := uint32(1) << i
	was := r.arrays&b != 0
	known := r.arraysSeen&b != 0
	r.arraysSeen |= b
	if on {
		r.arrays |= b
	} else {
		r.arrays &^= b
	}
	return !known || was != on
}

// SetClientUnit records unit as the active client texture
// unit. It returns false if unit is already active.
func (r *Renderer) SetClientUnit(unit int) bool {
	if r.clientUnit == unit {
		return false
	}
	r.clientUnit = unit
	return true
}
