// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"strings"

	"gviegas/ardor/apply"
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

// TexRenderPath identifies how a TextureRenderer gets
// rendered pixels into a texture.
type TexRenderPath int

// Render-to-texture paths.
const (
	// Render into a framebuffer object with the texture
	// attached.
	PathFBO TexRenderPath = iota
	// Render into the back buffer and copy into the
	// texture.
	PathCopy
)

func (p TexRenderPath) String() string {
	if p == PathFBO {
		return "fbo"
	}
	return "copy"
}

// TextureRenderer renders into 2D textures.
// It is bound to the context that is current when it is
// created and must only be used while that context is
// current.
type TextureRenderer struct {
	r    *Renderer
	c    *ctxt.Context
	w, h int
	path TexRenderPath
	fbo  uint32
	auto bool

	// Enforced holds the states enforced while rendering.
	// Kinds left unset are not enforced.
	Enforced state.Set

	// ClearColor is used when a render clears the target.
	ClearColor [4]float32
}

// NewTextureRenderer creates a texture renderer of w by h
// pixels for the current context.
// The path is chosen by the TextureRenderer option of r's
// configuration. The "auto" option tries a framebuffer
// object first and falls back to copying from the back
// buffer. It also falls back later if the framebuffer
// turns out to be incomplete.
func NewTextureRenderer(r *Renderer, w, h int) (*TextureRenderer, error) {
	if w <= 0 || h <= 0 {
		return nil, newRendErr("invalid texture renderer size")
	}
	c, err := r.reg.Current()
	if err != nil {
		return nil, err
	}
	tr := &TextureRenderer{r: r, c: c, w: w, h: h}
	switch strings.ToLower(r.cfg.TextureRenderer) {
	case TexRenderCopy:
		tr.path = PathCopy
	case TexRenderFBO:
		if err := tr.initFBO(); err != nil {
			return nil, err
		}
	default:
		tr.auto = true
		if err := tr.initFBO(); err != nil {
			logger.L().Warn("renderer: falling back to copy-to-texture", "err", err)
			tr.path = PathCopy
		}
	}
	logger.L().Debug("renderer: texture renderer created", "path", tr.path, "width", w, "height", h)
	return tr, nil
}

func (tr *TextureRenderer) initFBO() error {
	if !tr.c.Caps().Supports(driver.FFBO) {
		return newRendErr("framebuffer objects not supported")
	}
	id := tr.c.GL().GenFramebuffer()
	if id == 0 {
		return newRendErr("failed to create framebuffer object")
	}
	tr.path = PathFBO
	tr.fbo = id
	return nil
}

// Path returns the path in use.
func (tr *TextureRenderer) Path() TexRenderPath { return tr.path }

// Size returns the size of the render target.
func (tr *TextureRenderer) Size() (w, h int) { return tr.w, tr.h }

// Render renders into tex. If clear is true, the target
// is cleared first. draw is called to submit the geometry,
// with tr.Enforced pushed as an enforced overlay.
// tex must be a 2D texture with an image of tr's size.
func (tr *TextureRenderer) Render(tex *texture.Texture, clear bool, draw func() error) error {
	if tex.Type != texture.Type2D {
		return newRendErr("render target must be a 2D texture")
	}
	c, err := tr.r.reg.Current()
	if err != nil {
		return err
	}
	if c != tr.c {
		return newRendErr("texture renderer used from another context")
	}
	id, err := apply.Bind(c, 0, tex)
	if err != nil {
		return err
	}
	gl := c.GL()
	if tr.path == PathFBO {
		gl.BindFramebuffer(driver.Framebuffer, tr.fbo)
		gl.FramebufferTexture2D(driver.Framebuffer, driver.ColorAttachment0, driver.Texture2D, id, 0)
		if st := gl.CheckFramebufferStatus(driver.Framebuffer); st != driver.FramebufferComplete {
			gl.BindFramebuffer(driver.Framebuffer, 0)
			if !tr.auto {
				return newRendErr("incomplete framebuffer")
			}
			logger.L().Warn("renderer: incomplete framebuffer, falling back to copy-to-texture", "status", st)
			gl.DeleteFramebuffer(tr.fbo)
			tr.fbo = 0
			tr.path = PathCopy
		}
	}

	gl.Viewport(0, 0, tr.w, tr.h)
	if clear {
		if c.Renderer.SetClearColor(tr.ClearColor) {
			gl.ClearColor(tr.ClearColor[0], tr.ClearColor[1], tr.ClearColor[2], tr.ClearColor[3])
		}
		gl.Clear(driver.ColorBufferBit | driver.DepthBufferBit)
	}
	c.PushEnforced(&tr.Enforced)
	err = draw()
	c.PopEnforced()

	if tr.path == PathFBO {
		gl.BindFramebuffer(driver.Framebuffer, 0)
		return err
	}
	if err != nil {
		return err
	}
	if _, err := apply.Bind(c, 0, tex); err != nil {
		return err
	}
	gl.CopyTexSubImage2D(driver.Texture2D, 0, 0, 0, 0, 0, tr.w, tr.h)
	return nil
}

// Destroy releases the native resources of tr.
func (tr *TextureRenderer) Destroy() {
	if tr.fbo != 0 {
		tr.c.GL().DeleteFramebuffer(tr.fbo)
		tr.fbo = 0
	}
}
