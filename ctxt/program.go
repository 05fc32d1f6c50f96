// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ctxt

import (
	"gviegas/ardor/driver"
	"gviegas/ardor/state"
)

// Program is a GLSL program built in a context.
type Program struct {
	// ID is the native name, or 0 if building failed.
	ID uint32
	// Vertex and Fragment are the sources ID was built
	// from.
	Vertex   string
	Fragment string
	// Err is the build error, if any.
	// A failed program is not rebuilt until its sources
	// change.
	Err error

	locs map[string]int32
	vals map[string]state.UniformValue
}

// Stale returns whether s no longer has the sources p was
// built from.
func (p *Program) Stale(s *state.GLSLShader) bool {
	return p.Vertex != s.Vertex || p.Fragment != s.Fragment
}

// Location returns the location of the named uniform,
// querying gl only once per name.
func (p *Program) Location(gl driver.GL, name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	if p.locs == nil {
		p.locs = make(map[string]int32)
	}
	loc := gl.UniformLocation(p.ID, name)
	p.locs[name] = loc
	return loc
}

// Update records v as the value of the named uniform.
// It returns false if v is the value already recorded.
func (p *Program) Update(name string, v state.UniformValue) bool {
	if old, ok := p.vals[name]; ok && old == v {
		return false
	}
	if p.vals == nil {
		p.vals = make(map[string]state.UniformValue)
	}
	p.vals[name] = v
	return true
}

// Program returns the program built for s, or nil.
func (c *Context) Program(s *state.GLSLShader) *Program { return c.programs[s] }

// SetProgram associates p with s.
// The native program previously associated with s, if any,
// is deleted.
func (c *Context) SetProgram(s *state.GLSLShader, p *Program) {
	if old, ok := c.programs[s]; ok && old.ID != 0 && old.ID != p.ID {
		c.deleteProgram(old.ID)
	}
	c.programs[s] = p
}

// ForgetProgram deletes the program built for s.
func (c *Context) ForgetProgram(s *state.GLSLShader) {
	if p, ok := c.programs[s]; ok {
		if p.ID != 0 {
			c.deleteProgram(p.ID)
		}
		delete(c.programs, s)
	}
}

func (c *Context) deleteProgram(id uint32) {
	if c.Records.GLSLShader.F.Program == id {
		c.Records.GLSLShader.Invalidate()
		c.current[state.KGLSLShader] = applied{}
	}
	c.gl.DeleteProgram(id)
}

// AsmProgram returns the assembly program built from src
// for target.
func (c *Context) AsmProgram(target driver.Enum, src string) (id uint32, ok bool) {
	id, ok = c.asm[asmKey{target, src}]
	return
}

// SetAsmProgram records id as the assembly program built
// from src for target.
func (c *Context) SetAsmProgram(target driver.Enum, src string, id uint32) {
	c.asm[asmKey{target, src}] = id
}

// Release deletes every program built in c.
// c must be current.
func (c *Context) Release() {
	for s := range c.programs {
		c.ForgetProgram(s)
	}
	for k, id := range c.asm {
		if id != 0 {
			c.gl.DeleteAsmProgram(id)
		}
		delete(c.asm, k)
	}
	c.Records.VertexProgram.Invalidate()
	c.Records.FragmentProgram.Invalidate()
	c.current[state.KVertexProgram] = applied{}
	c.current[state.KFragmentProgram] = applied{}
}
