// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"gviegas/ardor/apply"
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

// Renderer submits geometry to the current context of a
// registry.
// Its methods must be called from the thread that has the
// native context of the current ctxt.Context current.
type Renderer struct {
	reg *ctxt.Registry
	cfg Config
	def *state.Set
	bg  [4]float32
}

// Buffers is a mask of framebuffer planes.
type Buffers int

// Framebuffer planes.
const (
	ColorBuffer Buffers = 1 << iota
	DepthBuffer
	StencilBuffer
)

// New creates a renderer for the contexts of reg.
// It also applies the process-wide parts of cfg (the
// mipmap cache size).
func New(reg *ctxt.Registry, cfg Config) (*Renderer, error) {
	if reg == nil {
		return nil, newRendErr("nil ctxt.Registry in call to New")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	texture.SetCacheSize(cfg.MipmapCache)
	return &Renderer{reg: reg, cfg: cfg, def: state.Defaults(), bg: [4]float32{0, 0, 0, 1}}, nil
}

// Config returns the configuration of r.
func (r *Renderer) Config() Config { return r.cfg }

// Registry returns the registry of r.
func (r *Renderer) Registry() *ctxt.Registry { return r.reg }

// Context returns the current context.
// It fails with driver.ErrNoContext if there is none.
func (r *Renderer) Context() (*ctxt.Context, error) { return r.reg.Current() }

// resolve returns the state to apply for kind k given the
// requested state s, which may be nil.
// Enforced states win over requested ones, which win over
// the defaults.
func (r *Renderer) resolve(c *ctxt.Context, k state.Kind, s state.State) state.State {
	if e := c.Enforced(k); e != nil {
		return e
	}
	if s != nil {
		return s
	}
	return r.def.Get(k)
}

func (r *Renderer) applyResolved(c *ctxt.Context, s state.State) {
	if s.Kind().QuickCompare() && c.IsCurrent(s) {
		return
	}
	apply.Apply(c, s)
}

func (r *Renderer) applyStates(c *ctxt.Context, states *state.Set) {
	for k := range state.NKind {
		var s state.State
		if states != nil {
			s = states.Get(k)
		}
		r.applyResolved(c, r.resolve(c, k, s))
	}
}

// ApplyStates applies one state per kind to the current
// context, in kind order. Kinds not set in states (which
// may be nil) take the enforced or the default state.
func (r *Renderer) ApplyStates(states *state.Set) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	r.applyStates(c, states)
	return nil
}

// ApplyState applies s to the current context unless a
// state of its kind is enforced, in which case the
// enforced state is applied instead.
func (r *Renderer) ApplyState(s state.State) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	r.applyResolved(c, r.resolve(c, s.Kind(), s))
	return nil
}

// EnforceStates pushes states as an enforced overlay of
// the current context.
func (r *Renderer) EnforceStates(states *state.Set) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	c.PushEnforced(states)
	return nil
}

// ClearEnforcedStates removes every enforced overlay of
// the current context.
func (r *Renderer) ClearEnforcedStates() error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	c.ClearEnforced()
	return nil
}

// FlushFrame flushes the native command stream and
// deletes the buffer objects queued for cleanup.
// If doSwap is true, it also restores the default color
// mask, checks for native errors and presents the
// surface of the current context. The surface is not
// presented if an error is found.
func (r *Renderer) FlushFrame(doSwap bool) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	c.GL().Flush()
	r.cleanup(c)
	if !doSwap {
		return nil
	}
	r.applyResolved(c, r.def.Get(state.KColorMask))
	if err := r.checkCardError(c); err != nil {
		return err
	}
	surf := c.Surface()
	if surf == nil {
		return newRendErr("current context has no surface")
	}
	surf.SwapBuffers()
	return nil
}

// SetBackgroundColor sets the color that ClearBuffers
// clears the color buffer to. It defaults to opaque black.
func (r *Renderer) SetBackgroundColor(rgba [4]float32) { r.bg = rgba }

// BackgroundColor returns the clear color of r.
func (r *Renderer) BackgroundColor() [4]float32 { return r.bg }

// ClearBuffers clears the given planes of the current
// context. The default ColorMask is applied before
// clearing color and the default ZBuffer before clearing
// depth, so that no plane is write protected.
func (r *Renderer) ClearBuffers(b Buffers) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	var mask driver.Enum
	if b&ColorBuffer != 0 {
		r.applyResolved(c, r.def.Get(state.KColorMask))
		if c.Renderer.SetClearColor(r.bg) {
			c.GL().ClearColor(r.bg[0], r.bg[1], r.bg[2], r.bg[3])
		}
		mask |= driver.ColorBufferBit
	}
	if b&DepthBuffer != 0 {
		r.applyResolved(c, r.def.Get(state.KZBuffer))
		mask |= driver.DepthBufferBit
	}
	if b&StencilBuffer != 0 {
		mask |= driver.StencilBufferBit
	}
	if mask != 0 {
		c.GL().Clear(mask)
	}
	return nil
}

// FinishGraphics blocks until every command issued to the
// current context has completed.
func (r *Renderer) FinishGraphics() error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	c.GL().Finish()
	return nil
}

// CheckCardError returns the native errors accumulated by
// the current context since the last check, as a
// *driver.CardError. It returns nil if there is none.
func (r *Renderer) CheckCardError() error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	return r.checkCardError(c)
}

func (r *Renderer) checkCardError(c *ctxt.Context) error {
	err := driver.CheckError(c.GL())
	if err != nil {
		logger.L().Error("renderer: native error", "context", c.Key(), "err", err)
	}
	return err
}

// Cleanup deletes the buffer objects queued for deletion
// in the current context.
func (r *Renderer) Cleanup() error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	r.cleanup(c)
	return nil
}

func (r *Renderer) cleanup(c *ctxt.Context) {
	rr := c.Renderer
	if len(rr.Cleanup) == 0 {
		return
	}
	gl := c.GL()
	for _, id := range rr.Cleanup {
		rr.Forget(id)
		gl.DeleteBuffer(id)
	}
	logger.L().Debug("renderer: buffer objects deleted", "context", c.Key(), "count", len(rr.Cleanup))
	clear(rr.Cleanup)
	rr.Cleanup = rr.Cleanup[:0]
}

// LoadTexture uploads tex to the current context using
// texture unit 0.
func (r *Renderer) LoadTexture(tex *texture.Texture) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	_, err = apply.Load(c, 0, tex)
	return err
}

// UpdateTextureSubImage replaces a region of the base
// level of tex in the current context. tex is bound to
// unit 0 and uploaded first if needed. data must hold
// width*height texels in the format of tex's image, which
// is not changed.
func (r *Renderer) UpdateTextureSubImage(tex *texture.Texture, x, y, width, height int, data []byte) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	return apply.SubImage(c, 0, tex, x, y, width, height, data)
}

// DeleteTexture deletes the texture object of tex in the
// current context.
func (r *Renderer) DeleteTexture(tex *texture.Texture) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	apply.DeleteTexture(c, tex)
	return nil
}
