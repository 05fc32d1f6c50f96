// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyLight(c *ctxt.Context, s state.State) {
	st := s.(*state.Light)
	gl := c.GL()
	r := c.Records.Light
	v := r.Valid()
	toggle(gl, v, &r.F.Enabled, driver.Lighting, st.Enable)
	if !st.Enable {
		r.Validate()
		return
	}

	if record.Set(v, &r.F.Ambient, st.GlobalAmbient) {
		gl.LightModelfv(driver.LightModelAmbient, st.GlobalAmbient[:])
	}
	if record.Set(v, &r.F.TwoSided, record.BoolOf(st.TwoSided)) {
		gl.LightModeli(driver.LightModelTwoSide, boolInt(st.TwoSided))
	}
	if record.Set(v, &r.F.LocalViewer, record.BoolOf(st.LocalViewer)) {
		gl.LightModeli(driver.LightModelLocalViewer, boolInt(st.LocalViewer))
	}
	if record.Set(v, &r.F.SeparateSpecular, record.BoolOf(st.SeparateSpecular)) {
		ctl := driver.SingleColor
		if st.SeparateSpecular {
			ctl = driver.SeparateSpecularColor
		}
		gl.LightModeli(driver.LightModelColorControl, int32(ctl))
	}

	n := min(c.Caps().IntLimit(driver.LMaxLights), record.MaxLights)
	if len(st.Sources) > n {
		warnOnce(-1, "apply: too many light sources, ignoring extra ones", "max", n)
	}
	eye := false
	for i := range n {
		var src *state.LightSource
		if i < len(st.Sources) {
			src = st.Sources[i]
		}
		u := &r.F.Lights[i]
		light := driver.Light0 + driver.Enum(i)
		on := src != nil && src.Enable
		toggle(gl, v, &u.Enabled, light, on)
		if !on {
			continue
		}
		lightSource(c, v, u, light, src, &eye)
	}
	if eye {
		gl.PopMatrix()
	}
	r.Validate()
}

// eyeSpace loads an identity modelview matrix, saving the
// current one, unless *done is already set.
// The caller must pop the matrix if *done is set on
// return.
func eyeSpace(c *ctxt.Context, done *bool) {
	if *done {
		return
	}
	gl := c.GL()
	if c.Renderer.SetMatrixMode(driver.Modelview) {
		gl.MatrixMode(driver.Modelview)
	}
	gl.PushMatrix()
	gl.LoadIdentity()
	*done = true
}

func lightSource(c *ctxt.Context, v bool, u *record.LightUnit, light driver.Enum, src *state.LightSource, eye *bool) {
	gl := c.GL()
	if record.Set(v, &u.Ambient, src.Ambient) {
		gl.Lightfv(light, driver.Ambient, src.Ambient[:])
	}
	if record.Set(v, &u.Diffuse, src.Diffuse) {
		gl.Lightfv(light, driver.Diffuse, src.Diffuse[:])
	}
	if record.Set(v, &u.Specular, src.Specular) {
		gl.Lightfv(light, driver.Specular, src.Specular[:])
	}
	if record.Set(v, &u.Constant, src.Constant) {
		gl.Lightf(light, driver.ConstantAttenuation, src.Constant)
	}
	if record.Set(v, &u.Linear, src.Linear) {
		gl.Lightf(light, driver.LinearAttenuation, src.Linear)
	}
	if record.Set(v, &u.Quadratic, src.Quadratic) {
		gl.Lightf(light, driver.QuadraticAttenuation, src.Quadratic)
	}

	var pos, dir [4]float32
	cut, exp := float32(180), float32(0)
	switch src.Type {
	case state.Directional:
		d := src.Direction
		pos = [4]float32{-d[0], -d[1], -d[2], 0}
		dir = [4]float32{0, 0, -1, 0}
	case state.Point:
		p := src.Position
		pos = [4]float32{p[0], p[1], p[2], 1}
		dir = [4]float32{0, 0, -1, 0}
	case state.Spot:
		p, d := src.Position, src.Direction
		pos = [4]float32{p[0], p[1], p[2], 1}
		dir = [4]float32{d[0], d[1], d[2], 0}
		cut, exp = src.SpotAngle, src.SpotExponent
		if cut > 90 && cut != 180 {
			cut = 90
		}
	}
	// Positions and directions are given in eye space, so
	// the modelview matrix must be identity when pushed.
	setPos := record.Set(v, &u.Position, pos)
	setDir := record.Set(v, &u.SpotDir, dir)
	if setPos || setDir {
		eyeSpace(c, eye)
	}
	if setPos {
		gl.Lightfv(light, driver.Position, pos[:])
	}
	if setDir {
		gl.Lightfv(light, driver.SpotDirection, dir[:3])
	}
	if record.Set(v, &u.SpotCut, cut) {
		gl.Lightf(light, driver.SpotCutoff, cut)
	}
	if record.Set(v, &u.SpotExp, exp) {
		gl.Lightf(light, driver.SpotExponent, exp)
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
