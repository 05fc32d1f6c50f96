// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
)

// Draw applies the states of d and draws its mesh.
func (r *Renderer) Draw(d Drawable) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	m := d.drawMesh()
	if m.Array(Position) == nil {
		return newRendErr("mesh has no positions")
	}
	r.applyStates(c, d.RenderStates())

	gl := c.GL()
	if m.World != nil {
		if c.Renderer.SetMatrixMode(driver.Modelview) {
			gl.MatrixMode(driver.Modelview)
		}
		gl.PushMatrix()
		gl.MultMatrix(m.World)
		defer gl.PopMatrix()
	}
	if err := r.setupArrays(c, m); err != nil {
		return err
	}
	if m.Indices != nil {
		err = r.drawElements(c, m.Indices, m.Lengths, m.Modes)
	} else {
		err = r.drawArrays(c, m.Array(Position), m.Lengths, m.Modes)
	}
	if err != nil {
		return err
	}
	if r.cfg.CheckErrors {
		return r.checkCardError(c)
	}
	return nil
}

// DrawElements draws the vertex arrays currently set up
// using the given indices. lengths and modes are as
// described by Mesh.
func (r *Renderer) DrawElements(indices *Buffer, lengths []int, modes []IndexMode) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	return r.drawElements(c, indices, lengths, modes)
}

// DrawArrays draws the vertex arrays currently set up, in
// order. vertices is the position array and determines
// the vertex count when lengths is nil.
func (r *Renderer) DrawArrays(vertices *Buffer, lengths []int, modes []IndexMode) error {
	c, err := r.reg.Current()
	if err != nil {
		return err
	}
	return r.drawArrays(c, vertices, lengths, modes)
}

// modeAt returns the mode of run i.
func modeAt(modes []IndexMode, i int) driver.Enum {
	if len(modes) == 0 {
		return driver.Triangles
	}
	return modes[min(i, len(modes)-1)].enum()
}

func (r *Renderer) drawElements(c *ctxt.Context, indices *Buffer, lengths []int, modes []IndexMode) error {
	if indices == nil || !indices.IsIndex() {
		return newRendErr("DrawElements requires an index Buffer")
	}
	id, err := r.setupVBO(c, indices)
	if err != nil {
		return err
	}
	var data []uint32
	if id == 0 {
		data = indices.Indices()
	}
	gl := c.GL()
	if lengths == nil {
		gl.DrawElements(modeAt(modes, 0), indices.Len(), data, 0)
		return nil
	}
	off := 0
	for i, n := range lengths {
		if n <= 0 {
			continue
		}
		if off+n > indices.Len() {
			return newRendErr("index run out of bounds")
		}
		if data != nil {
			gl.DrawElements(modeAt(modes, i), n, data[off:off+n], 0)
		} else {
			gl.DrawElements(modeAt(modes, i), n, nil, off*4)
		}
		off += n
	}
	return nil
}

func (r *Renderer) drawArrays(c *ctxt.Context, vertices *Buffer, lengths []int, modes []IndexMode) error {
	if vertices == nil || vertices.IsIndex() {
		return newRendErr("DrawArrays requires a vertex Buffer")
	}
	gl := c.GL()
	count := vertices.Count()
	if lengths == nil {
		gl.DrawArrays(modeAt(modes, 0), 0, count)
		return nil
	}
	first := 0
	for i, n := range lengths {
		if n <= 0 {
			continue
		}
		if first+n > count {
			return newRendErr("vertex run out of bounds")
		}
		gl.DrawArrays(modeAt(modes, i), first, n)
		first += n
	}
	return nil
}

// setupArrays enables the client arrays that m provides,
// disables the others and points the enabled ones at
// their data.
func (r *Renderer) setupArrays(c *ctxt.Context, m *Mesh) error {
	gl := c.GL()
	rr := c.Renderer
	units := c.Caps().TotalUnits()
	multi := c.Caps().Supports(driver.FMultitexture)
	fog := c.Caps().Supports(driver.FFogCoords)
	for i, b := range m.Arrays {
		sem := Semantic(1 << i)
		on := b != nil && b.Len() > 0
		unit := -1
		switch {
		case sem == FogCoord:
			if !fog {
				if on {
					logger.L().Warn("renderer: fog coordinates ignored")
				}
				continue
			}
		case sem >= TexCoord0:
			unit = i - TexCoord0.I()
			if unit >= units || (unit > 0 && !multi) {
				if on {
					logger.L().Warn("renderer: texture coordinates ignored", "set", unit, "units", units)
				}
				continue
			}
		}
		if !on && !rr.SetArray(i, false) {
			continue
		}
		if unit >= 0 && multi && rr.SetClientUnit(unit) {
			gl.ClientActiveTexture(driver.Texture0 + driver.Enum(unit))
		}
		if !on {
			gl.DisableClientState(sem.array())
			continue
		}
		if rr.SetArray(i, true) {
			gl.EnableClientState(sem.array())
		}
		if b.IsIndex() {
			return newRendErr("index Buffer used as " + sem.String() + " array")
		}
		if sem == FogCoord && b.Comps() != 1 {
			return newRendErr("FogCoord array must have one component")
		}
		id, err := r.setupVBO(c, b)
		if err != nil {
			return err
		}
		var data []float32
		if id == 0 {
			data = b.Floats()
		}
		switch sem {
		case Position:
			gl.VertexPointer(b.Comps(), 0, data, 0)
		case Normal:
			gl.NormalPointer(0, data, 0)
		case Color:
			gl.ColorPointer(b.Comps(), 0, data, 0)
		case FogCoord:
			gl.FogCoordPointer(0, data, 0)
		default:
			gl.TexCoordPointer(b.Comps(), 0, data, 0)
		}
	}
	return nil
}

// SetupVBO makes sure that b is mirrored into a buffer
// object of the current context, uploading whatever
// changed since its last use, and binds it.
// It returns 0 if b is to be sourced from client memory,
// which is the case when the renderer is configured not
// to use buffer objects, when the context does not support
// them and when b is empty.
func (r *Renderer) SetupVBO(b *Buffer) (uint32, error) {
	c, err := r.reg.Current()
	if err != nil {
		return 0, err
	}
	return r.setupVBO(c, b)
}

func (r *Renderer) setupVBO(c *ctxt.Context, b *Buffer) (uint32, error) {
	use := r.cfg.UseVBO && c.Caps().Supports(driver.FVBO)
	gl := c.GL()
	rr := c.Renderer
	bind := func(id uint32) {
		if b.IsIndex() {
			if rr.SetElementBuffer(id) {
				gl.BindBuffer(driver.ElementArrayBuffer, id)
			}
		} else if rr.SetArrayBuffer(id) {
			gl.BindBuffer(driver.ArrayBuffer, id)
		}
	}
	if !use || b.Len() == 0 {
		if use {
			bind(0)
		}
		return 0, nil
	}
	id, created, err := b.sync(gl, c.Key(), bind)
	if err != nil {
		return 0, err
	}
	if created {
		logger.L().Debug("renderer: buffer object created", "context", c.Key(), "id", id, "len", b.Len())
	}
	bind(id)
	return id, nil
}

// DeleteVBO deletes the buffer objects of b in every
// context. The buffer object of the current context is
// deleted immediately. Those of other contexts are queued
// and deleted the next time the context flushes a frame.
// It must not be called while other contexts are
// rendering.
func (r *Renderer) DeleteVBO(b *Buffer) {
	cur, _ := r.reg.Current()
	for key, v := range b.take() {
		if cur != nil && key == cur.Key() {
			cur.Renderer.Forget(v.id)
			cur.GL().DeleteBuffer(v.id)
			continue
		}
		c := r.reg.Get(key)
		if c == nil {
			logger.L().Debug("renderer: buffer object of removed context dropped", "context", key, "id", v.id)
			continue
		}
		c.Renderer.Cleanup = append(c.Renderer.Cleanup, v.id)
	}
}

// ForgetVBO drops the buffer object of b in the context
// identified by key without deleting it. It is meant for
// contexts whose native resources are already gone.
func (r *Renderer) ForgetVBO(b *Buffer, key any) { b.drop(key) }
