// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyCull(c *ctxt.Context, s state.State) {
	st := s.(*state.Cull)
	gl := c.GL()
	r := c.Records.Cull
	v := r.Valid()
	on := st.Enable && st.Face != state.FaceNone
	toggle(gl, v, &r.F.Enabled, driver.CullFaceCap, on)
	if on {
		if face := faceEnum(st.Face); record.Set(v, &r.F.Face, face) {
			gl.CullFace(face)
		}
	}
	wind := driver.CCW
	if st.Enable && st.Wind == state.CW {
		wind = driver.CW
	}
	if record.Set(v, &r.F.FrontFace, wind) {
		gl.FrontFace(wind)
	}
	r.Validate()
}

func applyShading(c *ctxt.Context, s state.State) {
	st := s.(*state.Shading)
	r := c.Records.Shading
	model := driver.Smooth
	if st.Enable && st.Mode == state.Flat {
		model = driver.Flat
	}
	if record.Set(r.Valid(), &r.F.Model, model) {
		c.GL().ShadeModel(model)
	}
	r.Validate()
}

func applyWireframe(c *ctxt.Context, s state.State) {
	st := s.(*state.Wireframe)
	gl := c.GL()
	r := c.Records.Wireframe
	v := r.Valid()
	front, back := driver.Fill, driver.Fill
	if st.Enable {
		switch st.Face {
		case state.FaceFront:
			front = driver.Line
		case state.FaceBack:
			back = driver.Line
		case state.FaceFrontAndBack:
			front, back = driver.Line, driver.Line
		}
	}
	setFront := record.Set(v, &r.F.FrontMode, front)
	setBack := record.Set(v, &r.F.BackMode, back)
	switch {
	case front == back && (setFront || setBack):
		gl.PolygonMode(driver.FrontAndBack, front)
	case setFront:
		gl.PolygonMode(driver.Front, front)
		if setBack {
			gl.PolygonMode(driver.Back, back)
		}
	case setBack:
		gl.PolygonMode(driver.Back, back)
	}
	if st.Enable {
		width := max(st.LineWidth, 1)
		if record.Set(v, &r.F.LineWidth, width) {
			gl.LineWidth(width)
		}
		toggle(gl, v, &r.F.Smooth, driver.LineSmooth, st.Smooth)
	} else {
		toggle(gl, v, &r.F.Smooth, driver.LineSmooth, false)
	}
	r.Validate()
}

func applyOffset(c *ctxt.Context, s state.State) {
	st := s.(*state.Offset)
	gl := c.GL()
	r := c.Records.Offset
	v := r.Valid()
	on := st.Enable
	toggle(gl, v, &r.F.Fill, driver.PolygonOffsetFill, on && st.Fill)
	toggle(gl, v, &r.F.Line, driver.PolygonOffsetLine, on && st.Line)
	toggle(gl, v, &r.F.Point, driver.PolygonOffsetPt, on && st.Point)
	if on {
		setFactor := record.Set(v, &r.F.Factor, st.Factor)
		setUnits := record.Set(v, &r.F.Units, st.Units)
		if setFactor || setUnits {
			gl.PolygonOffset(st.Factor, st.Units)
		}
	}
	r.Validate()
}

func applyColorMask(c *ctxt.Context, s state.State) {
	st := s.(*state.ColorMask)
	r := c.Records.ColorMask
	want := record.ColorMask{R: true, G: true, B: true, A: true}
	if st.Enable {
		want = record.ColorMask{R: st.R, G: st.G, B: st.B, A: st.A}
	}
	if record.Set(r.Valid(), &r.F, want) {
		c.GL().ColorMask(want.R, want.G, want.B, want.A)
	}
	r.Validate()
}

func applyClip(c *ctxt.Context, s state.State) {
	st := s.(*state.Clip)
	gl := c.GL()
	r := c.Records.Clip
	v := r.Valid()
	n := min(c.Caps().IntLimit(driver.LMaxClipPlanes), record.MaxClipPlanes)
	eye := false
	for i := range n {
		plane := driver.ClipPlane0 + driver.Enum(i)
		on := st.Enable && st.PlaneOn[i]
		toggle(gl, v, &r.F.Enabled[i], plane, on)
		if on && record.Set(v, &r.F.Planes[i], st.Planes[i]) {
			// Planes are given in eye space.
			eyeSpace(c, &eye)
			eq := st.Planes[i]
			gl.ClipPlane(plane, &eq)
		}
	}
	if eye {
		gl.PopMatrix()
	}
	r.Validate()
}
