// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package state defines the render states: client-side
// descriptions of the desired pipeline configuration, one
// type per state kind.
//
// States carry only semantic values, never native names.
// They may be shared by any number of drawables and are
// never modified while being applied. A disabled state is
// a valid value describing the default configuration of
// its kind; nil is not a valid State.
package state

// Kind identifies a state kind.
// The declaration order is the order in which renderers
// apply states.
type Kind int

// State kinds.
const (
	KBlend Kind = iota
	KFog
	KLight
	KMaterial
	KShading
	KTexture
	KWireframe
	KZBuffer
	KCull
	KVertexProgram
	KFragmentProgram
	KStencil
	KGLSLShader
	KColorMask
	KClip
	KOffset
	NKind
)

var kindNames = [NKind]string{
	"Blend",
	"Fog",
	"Light",
	"Material",
	"Shading",
	"Texture",
	"Wireframe",
	"ZBuffer",
	"Cull",
	"VertexProgram",
	"FragmentProgram",
	"Stencil",
	"GLSLShader",
	"ColorMask",
	"Clip",
	"Offset",
}

func (k Kind) String() string {
	if k < 0 || k >= NKind {
		return "Kind(?)"
	}
	return kindNames[k]
}

// QuickCompare returns whether states of kind k can be
// skipped when the very same state (at the same version)
// is already current. Kinds whose native configuration
// depends on data outside the state (texture uploads,
// uniforms, light transforms) return false.
func (k Kind) QuickCompare() bool {
	switch k {
	case KTexture, KLight, KGLSLShader:
		return false
	}
	return true
}

// State is the interface that all render states implement.
type State interface {
	// Kind returns the kind of the state.
	Kind() Kind

	// Enabled returns whether the state is enabled.
	// A disabled state restores the defaults of its kind.
	Enabled() bool

	// Version returns a counter that is incremented by
	// Touch.
	Version() uint64

	sealed()
}

// base is embedded by every state.
type base struct {
	ver uint64
}

func (b *base) Version() uint64 { return b.ver }

// Touch notifies that the state was modified.
// It must be called after changing the fields of a state
// that renderers may have already applied, since states of
// kinds that allow quick comparison are otherwise skipped
// while current.
func (b *base) Touch() { b.ver++ }

func (*base) sealed() {}

// Set holds at most one state per kind.
type Set [NKind]State

// Put stores s in the slot of its kind.
// It returns the state previously stored there.
func (s *Set) Put(st State) (prev State) {
	k := st.Kind()
	prev, s[k] = s[k], st
	return
}

// Get returns the state of kind k, or nil if none is set.
func (s *Set) Get(k Kind) State { return s[k] }

// Clear removes the state of kind k.
func (s *Set) Clear(k Kind) { s[k] = nil }

// Of creates a Set holding the given states.
// When states repeat a kind, the last one wins.
func Of(states ...State) (s Set) {
	for _, st := range states {
		s.Put(st)
	}
	return
}

// Defaults returns one disabled state per kind.
// The returned states are shared and must not be
// modified.
func Defaults() *Set { return &defaults }

var defaults Set

func init() {
	blend := NewBlend()
	blend.Enable = false
	fog := NewFog()
	fog.Enable = false
	light := NewLight()
	light.Enable = false
	mat := NewMaterial()
	mat.Enable = false
	shade := NewShading()
	shade.Enable = false
	tex := NewTexture()
	tex.Enable = false
	wire := NewWireframe()
	wire.Enable = false
	zbuf := NewZBuffer()
	zbuf.Enable = false
	cull := NewCull()
	cull.Enable = false
	vp := NewVertexProgram("")
	vp.Enable = false
	fp := NewFragmentProgram("")
	fp.Enable = false
	sten := NewStencil()
	sten.Enable = false
	glsl := NewGLSLShader("", "")
	glsl.Enable = false
	mask := NewColorMask()
	mask.Enable = false
	clip := NewClip()
	clip.Enable = false
	off := NewOffset()
	off.Enable = false

	defaults = Of(blend, fog, light, mat, shade, tex, wire, zbuf, cull, vp, fp, sten, glsl, mask, clip, off)
	for k, s := range defaults {
		if s == nil || s.Kind() != Kind(k) || s.Enabled() {
			panic("state: bad default for " + Kind(k).String())
		}
	}
}
