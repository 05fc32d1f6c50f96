// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/chewxy/math32"

	"gviegas/ardor/driver"
	"gviegas/ardor/state"
)

// Semantic specifies the intended use of a vertex array.
type Semantic int

// Semantics.
const (
	Position Semantic = 1 << iota
	Normal
	Color
	FogCoord
	TexCoord0
	TexCoord1
	TexCoord2
	TexCoord3
	TexCoord4
	TexCoord5
	TexCoord6
	TexCoord7

	MaxSemantic int = iota
)

// I computes log₂(s).
// This value can be used to index into Mesh.Arrays.
func (s Semantic) I() (i int) {
	for s > 1 {
		s >>= 1
		i++
	}
	return
}

// TexCoord returns the Semantic of texture coordinate set
// i, which must be in [0, MaxTexCoord).
func TexCoord(i int) Semantic { return TexCoord0 << i }

// String implements fmt.Stringer.
func (s Semantic) String() string {
	switch s {
	case Position:
		return "Position"
	case Normal:
		return "Normal"
	case Color:
		return "Color"
	case FogCoord:
		return "FogCoord"
	}
	if s >= TexCoord0 && s <= TexCoord7 && s&(s-1) == 0 {
		return "TexCoord" + string(rune('0'+s.I()-TexCoord0.I()))
	}
	return "!engine.Semantic"
}

// array returns the client array enabled for s.
func (s Semantic) array() driver.Enum {
	switch s {
	case Position:
		return driver.VertexArray
	case Normal:
		return driver.NormalArray
	case Color:
		return driver.ColorArray
	case FogCoord:
		return driver.FogCoordArr
	}
	return driver.TexCoordArray
}

// IndexMode is the primitive type of a draw call.
type IndexMode int

// Index modes.
const (
	Triangles IndexMode = iota
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
	Lines
	LineStrip
	LineLoop
	Points
)

func (m IndexMode) enum() driver.Enum {
	switch m {
	case TriangleStrip:
		return driver.TriangleStrip
	case TriangleFan:
		return driver.TriangleFan
	case Quads:
		return driver.Quads
	case QuadStrip:
		return driver.QuadStrip
	case Lines:
		return driver.Lines
	case LineStrip:
		return driver.LineStrip
	case LineLoop:
		return driver.LineLoop
	case Points:
		return driver.Points
	}
	return driver.Triangles
}

// Drawable is the interface of things that a Renderer can
// draw. It is implemented by *Mesh and by any type that
// embeds one.
type Drawable interface {
	// RenderStates returns the states requested by the
	// drawable. Kinds left unset take the enforced or the
	// default state.
	RenderStates() *state.Set

	drawMesh() *Mesh
}

// Mesh is a set of vertex arrays plus the description of
// how they are assembled into primitives.
//
// Lengths partitions the elements (indices when Indices is
// set, vertices otherwise) into consecutive runs, one draw
// call each. Modes gives the mode of each run; when it is
// shorter than Lengths, its last mode is repeated. A nil
// Lengths draws every element in a single call.
type Mesh struct {
	Arrays  [MaxSemantic]*Buffer
	Indices *Buffer
	Lengths []int
	Modes   []IndexMode

	// States are the render states of the mesh.
	States state.Set

	// World is the model transform. It is multiplied onto
	// the modelview matrix for the duration of the draw.
	// Nil means identity.
	World *[16]float32
}

// NewMesh creates a mesh with the given positions (three
// components per vertex) drawn as mode.
func NewMesh(pos []float32, mode IndexMode) *Mesh {
	m := &Mesh{Modes: []IndexMode{mode}}
	m.SetArray(Position, NewFloatBuffer(3, pos))
	return m
}

// SetArray sets the array of semantic s.
func (m *Mesh) SetArray(s Semantic, b *Buffer) { m.Arrays[s.I()] = b }

// Array returns the array of semantic s, or nil.
func (m *Mesh) Array(s Semantic) *Buffer { return m.Arrays[s.I()] }

// Mask returns the semantics that m provides.
func (m *Mesh) Mask() (mask Semantic) {
	for i, b := range m.Arrays {
		if b != nil && b.Len() > 0 {
			mask |= 1 << i
		}
	}
	return
}

// RenderStates implements Drawable.
func (m *Mesh) RenderStates() *state.Set { return &m.States }

func (m *Mesh) drawMesh() *Mesh { return m }

// Box is an axis-aligned bounding box.
type Box struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the center of b.
func (b Box) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the radius of the sphere that encloses
// b.
func (b Box) Radius() float32 {
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	dz := b.Max[2] - b.Min[2]
	return math32.Sqrt(dx*dx+dy*dy+dz*dz) / 2
}

// Bounds computes the bounding box of the positions of m.
// It returns false if m has no positions.
func (m *Mesh) Bounds() (Box, bool) {
	pos := m.Array(Position)
	if pos == nil || pos.Count() == 0 {
		return Box{}, false
	}
	inf := math32.Inf(1)
	b := Box{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
	f := pos.Floats()
	n := pos.Comps()
	for i := 0; i+n <= len(f); i += n {
		for j := range min(n, 3) {
			b.Min[j] = math32.Min(b.Min[j], f[i+j])
			b.Max[j] = math32.Max(b.Max[j], f[i+j])
		}
	}
	for j := n; j < 3; j++ {
		b.Min[j], b.Max[j] = 0, 0
	}
	return b, true
}
