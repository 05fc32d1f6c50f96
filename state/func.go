// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// Func is a comparison function used by alpha, depth and
// stencil tests.
type Func int

// Comparison functions.
const (
	Never Func = iota
	Less
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
	Always
)

// Face selects polygon faces.
type Face int

// Faces.
const (
	FaceNone Face = iota
	FaceFront
	FaceBack
	FaceFrontAndBack
)

func clamp01(x float32) float32 { return min(max(x, 0), 1) }
