// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package record implements the per-context caches that
// mirror what was last sent to the native driver.
//
// Every cache is a Record: a two-state machine that is
// either Invalid (the native state is unknown and the next
// apply must push every field) or Valid (fields can be
// diffed against the desired state).
package record

import (
	"math"

	"github.com/chewxy/math32"

	"gviegas/ardor/driver"
)

// Record is a field set of type T plus a validity bit.
// The zero value is not usable; call New.
type Record[T any] struct {
	// F holds the cached fields.
	// Applicators update it through Set.
	F T

	valid   bool
	unknown T
}

// New creates an Invalid record whose fields start as a
// copy of unknown.
// unknown should hold sentinel values that never compare
// equal to a real value (e.g., UnknownEnum, NaN), so that
// fields that were never pushed keep mismatching after
// the record becomes Valid. T must not contain slices,
// maps or pointers since it is copied by value.
func New[T any](unknown T) *Record[T] {
	return &Record[T]{F: unknown, unknown: unknown}
}

// Valid returns whether r is Valid.
func (r *Record[T]) Valid() bool { return r.valid }

// Validate transitions r to Valid.
func (r *Record[T]) Validate() { r.valid = true }

// Invalidate transitions r to Invalid and resets its
// fields to the unknown values.
func (r *Record[T]) Invalidate() {
	r.valid = false
	r.F = r.unknown
}

// Invalidator is implemented by every record.
type Invalidator interface {
	Valid() bool
	Invalidate()
}

// Set is the diff primitive.
// It stores want into *field and returns true if the
// record is not valid or *field differs from want.
// Otherwise it returns false and the native call for
// field must be skipped.
func Set[V comparable](valid bool, field *V, want V) bool {
	if valid && *field == want {
		return false
	}
	*field = want
	return true
}

// Bool is an on/off field that may be unknown.
// Its zero value is UnknownBool, so on/off fields never
// pushed keep mismatching after the record becomes Valid.
type Bool uint8

// Bool values.
const (
	UnknownBool Bool = iota
	False
	True
)

// BoolOf converts b to a Bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Unknown values.
var (
	UnknownEnum  = driver.Enum(math.MaxUint32)
	UnknownFloat = math32.NaN()
	UnknownColor = [4]float32{UnknownFloat, UnknownFloat, UnknownFloat, UnknownFloat}
	UnknownID    = uint32(math.MaxUint32)
)
