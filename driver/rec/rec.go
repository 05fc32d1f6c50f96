// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package rec implements a driver.GL that records every
// call instead of rendering.
//
// Calls are stored in order as Call values. Arguments are
// kept as passed, with a few exceptions: bulk data ([]byte
// and vertex []float32) is reduced to its length, and
// arrays passed by pointer are copied by value. Parameter
// slices (e.g., TexParameterfv) are copied.
package rec

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gviegas/ardor/driver"
	"gviegas/ardor/internal/names"
)

// Call is a recorded native call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e, ok := a.(driver.Enum); ok {
			fmt.Fprintf(&sb, "0x%04X", uint32(e))
		} else {
			fmt.Fprint(&sb, a)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// C creates a Call.
func C(name string, args ...any) Call { return Call{name, args} }

// GL is a call-recording driver.GL.
// It also implements driver.Surface.
type GL struct {
	calls []Call

	strs   map[driver.Enum]string
	ints   map[driver.Enum]int
	floats map[driver.Enum]float32
	errs   []driver.Enum

	tex, buf, fbo, prog, asm names.Pool
	locs                     map[string]int32

	unit    int
	enabled map[capKey]bool

	failCompile bool
	fboStatus   driver.Enum
}

type capKey struct {
	unit int
	cap  driver.Enum
}

// Option configures a GL.
type Option func(*GL)

// WithExtensions sets the extension string.
func WithExtensions(ext ...string) Option {
	return func(g *GL) { g.strs[driver.Extensions] = strings.Join(ext, " ") }
}

// WithVersion sets the version string.
func WithVersion(v string) Option {
	return func(g *GL) { g.strs[driver.Version] = v }
}

// WithInteger sets the value returned by GetInteger(pname).
func WithInteger(pname driver.Enum, v int) Option {
	return func(g *GL) { g.ints[pname] = v }
}

// WithFloat sets the value returned by GetFloat(pname).
func WithFloat(pname driver.Enum, v float32) Option {
	return func(g *GL) { g.floats[pname] = v }
}

// WithCompileFailure causes program compilation to fail.
func WithCompileFailure() Option {
	return func(g *GL) { g.failCompile = true }
}

// WithFramebufferStatus sets the value returned by
// CheckFramebufferStatus.
func WithFramebufferStatus(s driver.Enum) Option {
	return func(g *GL) { g.fboStatus = s }
}

// New creates a new GL.
// With no options, it reports version 2.1 and no
// extensions.
func New(opts ...Option) *GL {
	g := &GL{
		strs: map[driver.Enum]string{
			driver.Vendor:   "gviegas",
			driver.Renderer: "rec",
			driver.Version:  "2.1",
		},
		ints:      make(map[driver.Enum]int),
		floats:    make(map[driver.Enum]float32),
		locs:      make(map[string]int32),
		enabled:   make(map[capKey]bool),
		fboStatus: driver.FramebufferComplete,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Calls returns a copy of the recorded calls.
func (g *GL) Calls() []Call { return slices.Clone(g.calls) }

// Names returns the names of the recorded calls.
func (g *GL) Names() []string {
	s := make([]string, len(g.calls))
	for i := range g.calls {
		s[i] = g.calls[i].Name
	}
	return s
}

// Count returns how many calls named name were recorded.
func (g *GL) Count(name string) (n int) {
	for i := range g.calls {
		if g.calls[i].Name == name {
			n++
		}
	}
	return
}

// Len returns the number of recorded calls.
func (g *GL) Len() int { return len(g.calls) }

// Reset discards the recorded calls.
// Tracked state (enabled capabilities, names) is kept.
func (g *GL) Reset() { g.calls = g.calls[:0] }

// PushError queues an error to be returned by GetError.
func (g *GL) PushError(code driver.Enum) { g.errs = append(g.errs, code) }

// IsEnabled returns whether cap is enabled.
// Texture targets and texture coordinate generation are
// tracked per unit, using the unit that is currently
// active.
func (g *GL) IsEnabled(cap driver.Enum) bool {
	return g.enabled[g.key(cap)]
}

// IsEnabledOn is like IsEnabled but for a specific unit.
func (g *GL) IsEnabledOn(unit int, cap driver.Enum) bool {
	return g.enabled[capKey{unit, cap}]
}

// ActiveUnit returns the active texture unit.
func (g *GL) ActiveUnit() int { return g.unit }

// TextureInUse returns whether id names a live texture.
func (g *GL) TextureInUse(id uint32) bool { return g.tex.InUse(id) }

// BufferInUse returns whether id names a live buffer.
func (g *GL) BufferInUse(id uint32) bool { return g.buf.InUse(id) }

func (g *GL) key(cap driver.Enum) capKey {
	switch cap {
	case driver.Texture1D, driver.Texture2D, driver.Texture3D, driver.TextureCubeMap,
		driver.TextureGenS, driver.TextureGenT, driver.TextureGenR, driver.TextureGenQ:
		return capKey{g.unit, cap}
	}
	return capKey{-1, cap}
}

func (g *GL) rec(name string, args ...any) { g.calls = append(g.calls, Call{name, args}) }

func (g *GL) Enable(cap driver.Enum) {
	g.enabled[g.key(cap)] = true
	g.rec("Enable", cap)
}

func (g *GL) Disable(cap driver.Enum) {
	delete(g.enabled, g.key(cap))
	g.rec("Disable", cap)
}

func (g *GL) Hint(target, mode driver.Enum) { g.rec("Hint", target, mode) }

func (g *GL) GetError() driver.Enum {
	g.rec("GetError")
	if len(g.errs) == 0 {
		return driver.NoError
	}
	e := g.errs[0]
	g.errs = g.errs[1:]
	return e
}

func (g *GL) GetString(name driver.Enum) string {
	g.rec("GetString", name)
	return g.strs[name]
}

func (g *GL) GetInteger(pname driver.Enum) int {
	g.rec("GetInteger", pname)
	return g.ints[pname]
}

func (g *GL) GetFloat(pname driver.Enum) float32 {
	g.rec("GetFloat", pname)
	return g.floats[pname]
}

func (g *GL) BlendEquation(mode driver.Enum) { g.rec("BlendEquation", mode) }

func (g *GL) BlendEquationSeparate(rgb, alpha driver.Enum) {
	g.rec("BlendEquationSeparate", rgb, alpha)
}

func (g *GL) BlendFunc(src, dst driver.Enum) { g.rec("BlendFunc", src, dst) }

func (g *GL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.Enum) {
	g.rec("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (g *GL) BlendColor(r, gr, b, a float32) { g.rec("BlendColor", r, gr, b, a) }

func (g *GL) AlphaFunc(fn driver.Enum, ref float32) { g.rec("AlphaFunc", fn, ref) }

func (g *GL) ActiveTexture(unit driver.Enum) {
	g.unit = int(unit - driver.Texture0)
	g.rec("ActiveTexture", unit)
}

func (g *GL) ClientActiveTexture(unit driver.Enum) { g.rec("ClientActiveTexture", unit) }

func (g *GL) GenTexture() uint32 {
	id := g.tex.New()
	g.rec("GenTexture", id)
	return id
}

func (g *GL) DeleteTexture(id uint32) {
	g.tex.Free(id)
	g.rec("DeleteTexture", id)
}

func (g *GL) BindTexture(target driver.Enum, id uint32) { g.rec("BindTexture", target, id) }

func (g *GL) PixelStore(pname driver.Enum, param int) { g.rec("PixelStore", pname, param) }

func (g *GL) TexImage1D(target driver.Enum, level int, ifmt driver.Enum, width, border int, format, typ driver.Enum, data []byte) {
	g.rec("TexImage1D", target, level, ifmt, width, border, format, typ, len(data))
}

func (g *GL) TexImage2D(target driver.Enum, level int, ifmt driver.Enum, width, height, border int, format, typ driver.Enum, data []byte) {
	g.rec("TexImage2D", target, level, ifmt, width, height, border, format, typ, len(data))
}

func (g *GL) TexImage3D(target driver.Enum, level int, ifmt driver.Enum, width, height, depth, border int, format, typ driver.Enum, data []byte) {
	g.rec("TexImage3D", target, level, ifmt, width, height, depth, border, format, typ, len(data))
}

func (g *GL) TexSubImage2D(target driver.Enum, level, x, y, width, height int, format, typ driver.Enum, data []byte) {
	g.rec("TexSubImage2D", target, level, x, y, width, height, format, typ, len(data))
}

func (g *GL) CopyTexSubImage2D(target driver.Enum, level, x, y, srcX, srcY, width, height int) {
	g.rec("CopyTexSubImage2D", target, level, x, y, srcX, srcY, width, height)
}

func (g *GL) GenerateMipmap(target driver.Enum) { g.rec("GenerateMipmap", target) }

func (g *GL) TexParameteri(target, pname driver.Enum, param int32) {
	g.rec("TexParameteri", target, pname, param)
}

func (g *GL) TexParameterf(target, pname driver.Enum, param float32) {
	g.rec("TexParameterf", target, pname, param)
}

func (g *GL) TexParameterfv(target, pname driver.Enum, params []float32) {
	g.rec("TexParameterfv", target, pname, slices.Clone(params))
}

func (g *GL) TexEnvi(target, pname driver.Enum, param int32) {
	g.rec("TexEnvi", target, pname, param)
}

func (g *GL) TexEnvf(target, pname driver.Enum, param float32) {
	g.rec("TexEnvf", target, pname, param)
}

func (g *GL) TexEnvfv(target, pname driver.Enum, params []float32) {
	g.rec("TexEnvfv", target, pname, slices.Clone(params))
}

func (g *GL) TexGeni(coord, pname driver.Enum, param int32) {
	g.rec("TexGeni", coord, pname, param)
}

func (g *GL) TexGenfv(coord, pname driver.Enum, params []float32) {
	g.rec("TexGenfv", coord, pname, slices.Clone(params))
}

func (g *GL) MatrixMode(mode driver.Enum) { g.rec("MatrixMode", mode) }
func (g *GL) LoadMatrix(m *[16]float32)   { g.rec("LoadMatrix", *m) }
func (g *GL) MultMatrix(m *[16]float32)   { g.rec("MultMatrix", *m) }
func (g *GL) LoadIdentity()               { g.rec("LoadIdentity") }
func (g *GL) PushMatrix()                 { g.rec("PushMatrix") }
func (g *GL) PopMatrix()                  { g.rec("PopMatrix") }

func (g *GL) Materialfv(face, pname driver.Enum, params []float32) {
	g.rec("Materialfv", face, pname, slices.Clone(params))
}

func (g *GL) Materialf(face, pname driver.Enum, param float32) {
	g.rec("Materialf", face, pname, param)
}

func (g *GL) ColorMaterial(face, mode driver.Enum) { g.rec("ColorMaterial", face, mode) }

func (g *GL) Lightfv(light, pname driver.Enum, params []float32) {
	g.rec("Lightfv", light, pname, slices.Clone(params))
}

func (g *GL) Lightf(light, pname driver.Enum, param float32) {
	g.rec("Lightf", light, pname, param)
}

func (g *GL) LightModelfv(pname driver.Enum, params []float32) {
	g.rec("LightModelfv", pname, slices.Clone(params))
}

func (g *GL) LightModeli(pname driver.Enum, param int32) { g.rec("LightModeli", pname, param) }

func (g *GL) CullFace(mode driver.Enum)          { g.rec("CullFace", mode) }
func (g *GL) FrontFace(mode driver.Enum)         { g.rec("FrontFace", mode) }
func (g *GL) ShadeModel(mode driver.Enum)        { g.rec("ShadeModel", mode) }
func (g *GL) PolygonMode(face, mode driver.Enum) { g.rec("PolygonMode", face, mode) }
func (g *GL) LineWidth(width float32)            { g.rec("LineWidth", width) }

func (g *GL) PolygonOffset(factor, units float32) {
	g.rec("PolygonOffset", factor, units)
}

func (g *GL) ClipPlane(plane driver.Enum, eq *[4]float64) { g.rec("ClipPlane", plane, *eq) }
func (g *GL) ColorMask(r, gr, b, a bool)                  { g.rec("ColorMask", r, gr, b, a) }

func (g *GL) Fogi(pname driver.Enum, param int32)   { g.rec("Fogi", pname, param) }
func (g *GL) Fogf(pname driver.Enum, param float32) { g.rec("Fogf", pname, param) }

func (g *GL) Fogfv(pname driver.Enum, params []float32) {
	g.rec("Fogfv", pname, slices.Clone(params))
}

func (g *GL) DepthFunc(fn driver.Enum) { g.rec("DepthFunc", fn) }
func (g *GL) DepthMask(flag bool)      { g.rec("DepthMask", flag) }

func (g *GL) StencilFunc(fn driver.Enum, ref int32, mask uint32) {
	g.rec("StencilFunc", fn, ref, mask)
}

func (g *GL) StencilFuncSeparate(face, fn driver.Enum, ref int32, mask uint32) {
	g.rec("StencilFuncSeparate", face, fn, ref, mask)
}

func (g *GL) StencilOp(sfail, dpfail, dppass driver.Enum) {
	g.rec("StencilOp", sfail, dpfail, dppass)
}

func (g *GL) StencilOpSeparate(face, sfail, dpfail, dppass driver.Enum) {
	g.rec("StencilOpSeparate", face, sfail, dpfail, dppass)
}

func (g *GL) StencilMask(mask uint32) { g.rec("StencilMask", mask) }

func (g *GL) StencilMaskSeparate(face driver.Enum, mask uint32) {
	g.rec("StencilMaskSeparate", face, mask)
}

func (g *GL) GenAsmProgram() uint32 {
	id := g.asm.New()
	g.rec("GenAsmProgram", id)
	return id
}

func (g *GL) DeleteAsmProgram(id uint32) {
	g.asm.Free(id)
	g.rec("DeleteAsmProgram", id)
}

func (g *GL) BindAsmProgram(target driver.Enum, id uint32) {
	g.rec("BindAsmProgram", target, id)
}

func (g *GL) AsmProgramString(target driver.Enum, src string) error {
	g.rec("AsmProgramString", target, len(src))
	if g.failCompile || src == "" {
		return errors.New("rec: assembly program rejected")
	}
	return nil
}

func (g *GL) AsmProgramLocalParameter(target driver.Enum, index int, v *[4]float32) {
	g.rec("AsmProgramLocalParameter", target, index, *v)
}

func (g *GL) BuildProgram(vert, frag string) (uint32, error) {
	if g.failCompile || (vert == "" && frag == "") {
		g.rec("BuildProgram", uint32(0))
		return 0, errors.New("rec: program failed to link")
	}
	id := g.prog.New()
	g.rec("BuildProgram", id)
	return id, nil
}

func (g *GL) DeleteProgram(id uint32) {
	g.prog.Free(id)
	g.rec("DeleteProgram", id)
}

func (g *GL) UseProgram(id uint32) { g.rec("UseProgram", id) }

// UniformLocation assigns locations in order of first query.
func (g *GL) UniformLocation(prog uint32, name string) int32 {
	key := fmt.Sprintf("%d.%s", prog, name)
	loc, ok := g.locs[key]
	if !ok {
		loc = int32(len(g.locs))
		g.locs[key] = loc
	}
	g.rec("UniformLocation", prog, name)
	return loc
}

func (g *GL) Uniform1i(loc int32, v int32)   { g.rec("Uniform1i", loc, v) }
func (g *GL) Uniform1f(loc int32, v float32) { g.rec("Uniform1f", loc, v) }

func (g *GL) Uniform4fv(loc int32, v *[4]float32) {
	g.rec("Uniform4fv", loc, *v)
}

func (g *GL) UniformMatrix4fv(loc int32, m *[16]float32) {
	g.rec("UniformMatrix4fv", loc, *m)
}

func (g *GL) GenBuffer() uint32 {
	id := g.buf.New()
	g.rec("GenBuffer", id)
	return id
}

func (g *GL) DeleteBuffer(id uint32) {
	g.buf.Free(id)
	g.rec("DeleteBuffer", id)
}

func (g *GL) BindBuffer(target driver.Enum, id uint32) { g.rec("BindBuffer", target, id) }

func (g *GL) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	g.rec("BufferData", target, len(data), usage)
}

func (g *GL) BufferSubData(target driver.Enum, off int, data []byte) {
	g.rec("BufferSubData", target, off, len(data))
}

func (g *GL) EnableClientState(array driver.Enum) {
	g.enabled[capKey{-2, array}] = true
	g.rec("EnableClientState", array)
}

func (g *GL) DisableClientState(array driver.Enum) {
	delete(g.enabled, capKey{-2, array})
	g.rec("DisableClientState", array)
}

// IsClientStateEnabled returns whether array is enabled.
func (g *GL) IsClientStateEnabled(array driver.Enum) bool {
	return g.enabled[capKey{-2, array}]
}

func (g *GL) VertexPointer(size, stride int, data []float32, off int) {
	g.rec("VertexPointer", size, stride, len(data), off)
}

func (g *GL) NormalPointer(stride int, data []float32, off int) {
	g.rec("NormalPointer", stride, len(data), off)
}

func (g *GL) ColorPointer(size, stride int, data []float32, off int) {
	g.rec("ColorPointer", size, stride, len(data), off)
}

func (g *GL) TexCoordPointer(size, stride int, data []float32, off int) {
	g.rec("TexCoordPointer", size, stride, len(data), off)
}

func (g *GL) FogCoordPointer(stride int, data []float32, off int) {
	g.rec("FogCoordPointer", stride, len(data), off)
}

func (g *GL) DrawArrays(mode driver.Enum, first, count int) {
	g.rec("DrawArrays", mode, first, count)
}

func (g *GL) DrawElements(mode driver.Enum, count int, indices []uint32, off int) {
	g.rec("DrawElements", mode, count, len(indices), off)
}

func (g *GL) GenFramebuffer() uint32 {
	id := g.fbo.New()
	g.rec("GenFramebuffer", id)
	return id
}

func (g *GL) DeleteFramebuffer(id uint32) {
	g.fbo.Free(id)
	g.rec("DeleteFramebuffer", id)
}

func (g *GL) BindFramebuffer(target driver.Enum, id uint32) {
	g.rec("BindFramebuffer", target, id)
}

func (g *GL) FramebufferTexture2D(target, attachment, texTarget driver.Enum, tex uint32, level int) {
	g.rec("FramebufferTexture2D", target, attachment, texTarget, tex, level)
}

func (g *GL) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	g.rec("CheckFramebufferStatus", target)
	return g.fboStatus
}

func (g *GL) Viewport(x, y, width, height int) { g.rec("Viewport", x, y, width, height) }
func (g *GL) ClearColor(r, gr, b, a float32)   { g.rec("ClearColor", r, gr, b, a) }
func (g *GL) Clear(mask driver.Enum)           { g.rec("Clear", mask) }
func (g *GL) Flush()                           { g.rec("Flush") }
func (g *GL) Finish()                          { g.rec("Finish") }

// SwapBuffers implements driver.Surface.
func (g *GL) SwapBuffers() { g.rec("SwapBuffers") }

// Driver is a driver.Driver that opens a GL created by
// New with the given options.
type Driver struct {
	DriverName string
	Options    []Option

	gl *GL
}

// Open implements driver.Driver.
func (d *Driver) Open() (driver.GL, error) {
	if d.gl == nil {
		d.gl = New(d.Options...)
	}
	return d.gl, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string {
	if d.DriverName == "" {
		return "rec"
	}
	return d.DriverName
}

// Close implements driver.Driver.
func (d *Driver) Close() { d.gl = nil }

var (
	_ driver.GL      = &GL{}
	_ driver.Surface = &GL{}
	_ driver.Driver  = &Driver{}
)
