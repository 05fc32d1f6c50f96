// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package ctxt provides render contexts and the registry
// that tracks which of them is current.
//
// A Context mirrors one native context: it owns the
// capabilities probed from it, one record per state kind
// and the stack of enforced states. A Registry maps opaque
// keys (e.g., a window handle) to contexts.
package ctxt

import (
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

// Records holds one record per state kind.
type Records struct {
	Blend           *record.Record[record.Blend]
	Fog             *record.Record[record.Fog]
	Light           *record.Record[record.Light]
	Material        *record.Record[record.Material]
	Shading         *record.Record[record.Shading]
	Texture         *record.Texture
	Wireframe       *record.Record[record.Wireframe]
	ZBuffer         *record.Record[record.ZBuffer]
	Cull            *record.Record[record.Cull]
	VertexProgram   *record.Record[record.Program]
	FragmentProgram *record.Record[record.Program]
	Stencil         *record.Record[record.Stencil]
	GLSLShader      *record.Record[record.GLSL]
	ColorMask       *record.Record[record.ColorMask]
	Clip            *record.Record[record.Clip]
	Offset          *record.Record[record.Offset]
}

func newRecords(caps *driver.Caps) Records {
	return Records{
		Blend:           record.NewBlend(),
		Fog:             record.NewFog(),
		Light:           record.NewLight(),
		Material:        record.NewMaterial(),
		Shading:         record.NewShading(),
		Texture:         record.NewTexture(caps.TotalUnits()),
		Wireframe:       record.NewWireframe(),
		ZBuffer:         record.NewZBuffer(),
		Cull:            record.NewCull(),
		VertexProgram:   record.NewProgram(),
		FragmentProgram: record.NewProgram(),
		Stencil:         record.NewStencil(),
		GLSLShader:      record.NewGLSL(),
		ColorMask:       record.NewColorMask(),
		Clip:            record.NewClip(),
		Offset:          record.NewOffset(),
	}
}

// Get returns the record of kind k.
func (r *Records) Get(k state.Kind) record.Invalidator {
	switch k {
	case state.KBlend:
		return r.Blend
	case state.KFog:
		return r.Fog
	case state.KLight:
		return r.Light
	case state.KMaterial:
		return r.Material
	case state.KShading:
		return r.Shading
	case state.KTexture:
		return r.Texture
	case state.KWireframe:
		return r.Wireframe
	case state.KZBuffer:
		return r.ZBuffer
	case state.KCull:
		return r.Cull
	case state.KVertexProgram:
		return r.VertexProgram
	case state.KFragmentProgram:
		return r.FragmentProgram
	case state.KStencil:
		return r.Stencil
	case state.KGLSLShader:
		return r.GLSLShader
	case state.KColorMask:
		return r.ColorMask
	case state.KClip:
		return r.Clip
	case state.KOffset:
		return r.Offset
	}
	panic("ctxt: invalid state kind")
}

// Context is a render context.
// It must only be used by the thread that has its native
// context current.
type Context struct {
	key  any
	gl   driver.GL
	caps *driver.Caps
	surf driver.Surface

	// Records are the per-kind state records.
	Records Records
	// Renderer is the record of buffer bindings and
	// matrix mode changed by the renderer itself.
	Renderer *record.Renderer

	enforced []*state.Set
	current  [state.NKind]applied

	programs map[*state.GLSLShader]*Program
	asm      map[asmKey]uint32
}

type applied struct {
	s   state.State
	ver uint64
}

type asmKey struct {
	target driver.Enum
	src    string
}

// New creates a context for gl, identified by key.
// It probes the capabilities of gl once. Every record
// starts Invalid.
func New(key any, gl driver.GL) *Context {
	caps := driver.Probe(gl)
	logger.L().Info("ctxt: new context",
		"vendor", caps.Vendor,
		"renderer", caps.Renderer,
		"version", caps.Version,
		"units", caps.TotalUnits())
	return NewWithCaps(key, gl, caps)
}

// NewWithCaps is like New but uses the given capabilities
// instead of probing gl.
func NewWithCaps(key any, gl driver.GL, caps *driver.Caps) *Context {
	c := &Context{
		key:      key,
		gl:       gl,
		caps:     caps,
		Records:  newRecords(caps),
		Renderer: record.NewRenderer(),
		programs: make(map[*state.GLSLShader]*Program),
		asm:      make(map[asmKey]uint32),
	}
	if s, ok := gl.(driver.Surface); ok {
		c.surf = s
	}
	return c
}

// Key returns the key that identifies c.
func (c *Context) Key() any { return c.key }

// GL returns the native calls of c.
func (c *Context) GL() driver.GL { return c.gl }

// Caps returns the capabilities of c.
// They must not be changed by the caller.
func (c *Context) Caps() *driver.Caps { return c.caps }

// Surface returns the surface of c, or nil if it has none.
func (c *Context) Surface() driver.Surface { return c.surf }

// SetSurface sets the surface that presents c.
func (c *Context) SetSurface(s driver.Surface) { c.surf = s }

// Invalidate invalidates every record of c and forgets
// the current states. The next apply of every kind pushes
// all of its fields.
func (c *Context) Invalidate() {
	for k := range state.NKind {
		c.InvalidateKind(k)
	}
	c.Renderer.Invalidate()
}

// InvalidateKind invalidates the record of kind k.
func (c *Context) InvalidateKind(k state.Kind) {
	c.Records.Get(k).Invalidate()
	c.current[k] = applied{}
}

// SetCurrent records s as the last state applied for its
// kind.
func (c *Context) SetCurrent(s state.State) {
	c.current[s.Kind()] = applied{s, s.Version()}
}

// Current returns the last state applied for kind k, or
// nil.
func (c *Context) Current(k state.Kind) state.State { return c.current[k].s }

// IsCurrent returns whether s, at its current version, is
// the last state applied for its kind.
func (c *Context) IsCurrent(s state.State) bool {
	a := c.current[s.Kind()]
	return a.s == s && a.ver == s.Version()
}
