// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyGLSL(c *ctxt.Context, s state.State) {
	st := s.(*state.GLSLShader)
	gl := c.GL()
	if !c.Caps().IsGLSLSupported() {
		if st.Enable {
			warnOnce(driver.FGLSL, "apply: GLSL not supported, ignoring shader")
		}
		r := c.Records.GLSLShader
		r.F.Program = 0
		r.Validate()
		return
	}
	r := c.Records.GLSLShader
	var p *ctxt.Program
	if st.Enable {
		p = program(c, st)
	}
	var id uint32
	if p != nil {
		id = p.ID
	}
	if record.Set(r.Valid(), &r.F.Program, id) {
		gl.UseProgram(id)
	}
	if id != 0 {
		for _, u := range st.Uniforms {
			loc := p.Location(gl, u.Name)
			if loc < 0 || !p.Update(u.Name, u.Value) {
				continue
			}
			uniform(gl, loc, u.Value)
		}
	}
	r.Validate()
}

// program returns the program built for st, building it
// if needed.
func program(c *ctxt.Context, st *state.GLSLShader) *ctxt.Program {
	p := c.Program(st)
	if p != nil && !p.Stale(st) {
		return p
	}
	id, err := c.GL().BuildProgram(st.Vertex, st.Fragment)
	if err != nil {
		logger.L().Error("apply: GLSL program failed to build", "err", err)
		id = 0
	}
	p = &ctxt.Program{ID: id, Vertex: st.Vertex, Fragment: st.Fragment, Err: err}
	c.SetProgram(st, p)
	return p
}

func uniform(gl driver.GL, loc int32, v state.UniformValue) {
	switch v := v.(type) {
	case state.Int:
		gl.Uniform1i(loc, int32(v))
	case state.Float:
		gl.Uniform1f(loc, float32(v))
	case state.Vec4:
		a := [4]float32(v)
		gl.Uniform4fv(loc, &a)
	case state.Mat4:
		m := [16]float32(v)
		gl.UniformMatrix4fv(loc, &m)
	}
}
