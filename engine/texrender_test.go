// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/ardor/driver"
	"gviegas/ardor/driver/rec"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

func newTexture(t *testing.T, w, h int) *texture.Texture {
	img, err := texture.NewImage(texture.RGBA8, w, h, 1, make([]byte, 4*w*h))
	require.NoError(t, err)
	return texture.New(texture.Type2D, img)
}

func TestTextureRendererFBO(t *testing.T) {
	gl := rec.New()
	r, c := newRenderer(t, DefaultConfig(), gl, driver.FFBO)
	tr, err := NewTextureRenderer(r, 4, 4)
	require.NoError(t, err, "NewTextureRenderer")
	defer tr.Destroy()
	assert.Equal(t, PathFBO, tr.Path())

	z := state.NewZBuffer()
	z.Enable = false
	tr.Enforced.Put(z)
	tex := newTexture(t, 4, 4)
	drawn := false
	err = tr.Render(tex, true, func() error {
		drawn = true
		assert.Same(t, z, c.Enforced(state.KZBuffer), "TextureRenderer.Render: overlay should be enforced")
		return r.Draw(NewMesh(triangle, Triangles))
	})
	require.NoError(t, err, "TextureRenderer.Render")
	assert.True(t, drawn)
	assert.Zero(t, c.EnforcedDepth(), "TextureRenderer.Render: overlay should be popped")
	assert.True(t, c.IsCurrent(z), "TextureRenderer.Render: enforced state should be applied")

	id := tex.ID(c.Key())
	require.NotZero(t, id, "TextureRenderer.Render: texture should be uploaded")
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("BindFramebuffer", driver.Framebuffer, uint32(1)))
	assert.Contains(t, calls, rec.C("FramebufferTexture2D", driver.Framebuffer, driver.ColorAttachment0, driver.Texture2D, id, 0))
	assert.Contains(t, calls, rec.C("Viewport", 0, 0, 4, 4))
	assert.Contains(t, calls, rec.C("Clear", driver.ColorBufferBit|driver.DepthBufferBit))
	assert.Equal(t, rec.C("BindFramebuffer", driver.Framebuffer, uint32(0)), calls[len(calls)-1])
	assert.Zero(t, gl.Count("CopyTexSubImage2D"))

	tr.Destroy()
	assert.Contains(t, gl.Calls(), rec.C("DeleteFramebuffer", uint32(1)))
}

func TestTextureRendererCopy(t *testing.T) {
	gl := rec.New()
	r, c := newRenderer(t, DefaultConfig(), gl)
	tr, err := NewTextureRenderer(r, 8, 4)
	require.NoError(t, err, "NewTextureRenderer: should fall back to copy")
	assert.Equal(t, PathCopy, tr.Path())

	tex := newTexture(t, 8, 4)
	require.NoError(t, tr.Render(tex, false, func() error { return nil }))
	calls := gl.Calls()
	assert.Zero(t, gl.Count("BindFramebuffer"))
	assert.Zero(t, gl.Count("Clear"))
	assert.Equal(t, rec.C("CopyTexSubImage2D", driver.Texture2D, 0, 0, 0, 0, 0, 8, 4), calls[len(calls)-1])
	assert.NotZero(t, tex.ID(c.Key()))
}

func TestTextureRendererIncomplete(t *testing.T) {
	gl := rec.New(rec.WithFramebufferStatus(driver.None))
	r, _ := newRenderer(t, DefaultConfig(), gl, driver.FFBO)
	tr, err := NewTextureRenderer(r, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, PathFBO, tr.Path())
	require.NoError(t, tr.Render(newTexture(t, 4, 4), true, func() error { return nil }))
	assert.Equal(t, PathCopy, tr.Path(), "TextureRenderer.Render: incomplete framebuffer should fall back")
	assert.Contains(t, gl.Calls(), rec.C("DeleteFramebuffer", uint32(1)))
	assert.Equal(t, 1, gl.Count("CopyTexSubImage2D"))

	gl = rec.New(rec.WithFramebufferStatus(driver.None))
	cfg := DefaultConfig()
	cfg.TextureRenderer = TexRenderFBO
	r, _ = newRenderer(t, cfg, gl, driver.FFBO)
	tr, err = NewTextureRenderer(r, 4, 4)
	require.NoError(t, err)
	assert.Error(t, tr.Render(newTexture(t, 4, 4), true, func() error { return nil }), "TextureRenderer.Render: fbo path required")
}

func TestTextureRendererInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TextureRenderer = TexRenderFBO
	r, _ := newRenderer(t, cfg, nil)
	_, err := NewTextureRenderer(r, 4, 4)
	assert.Error(t, err, "NewTextureRenderer: fbo path not supported")

	r, _ = newRenderer(t, DefaultConfig(), nil)
	_, err = NewTextureRenderer(r, 0, 4)
	assert.Error(t, err, "NewTextureRenderer: invalid size")

	tr, err := NewTextureRenderer(r, 4, 4)
	require.NoError(t, err)
	tex := newTexture(t, 4, 4)
	tex.Type = texture.Type1D
	assert.Error(t, tr.Render(tex, false, func() error { return nil }), "TextureRenderer.Render: 1D texture")
	tex = texture.New(texture.Type2D, nil)
	assert.Error(t, tr.Render(tex, false, func() error { return nil }), "TextureRenderer.Render: no image")
}
