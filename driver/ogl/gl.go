// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ogl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"gviegas/ardor/driver"
)

// GL implements driver.GL.
// Client arrays given to the pointer calls are read by
// the native implementation when drawing, so they must be
// kept alive and unchanged until the draw call returns.
type GL struct{}

// Assembly programs are not exposed by the profile.
var hiddenExts = map[string]bool{
	"GL_ARB_vertex_program":   true,
	"GL_ARB_fragment_program": true,
}

var errNoAsm = errors.New("ogl: assembly programs not supported")

func bptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func fptr(f []float32) *float32 {
	if len(f) == 0 {
		return nil
	}
	return &f[0]
}

// arrayPtr returns a pointer to data if it is not nil and
// the byte offset off into the bound buffer otherwise.
func arrayPtr(data []float32, off int) unsafe.Pointer {
	if data == nil {
		return gl.PtrOffset(off)
	}
	return unsafe.Pointer(fptr(data))
}

func (*GL) Enable(cap driver.Enum)        { gl.Enable(uint32(cap)) }
func (*GL) Disable(cap driver.Enum)       { gl.Disable(uint32(cap)) }
func (*GL) Hint(target, mode driver.Enum) { gl.Hint(uint32(target), uint32(mode)) }
func (*GL) GetError() driver.Enum         { return driver.Enum(gl.GetError()) }

func (*GL) GetString(name driver.Enum) string {
	p := gl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	s := gl.GoStr(p)
	if name != driver.Extensions {
		return s
	}
	return filterExts(s)
}

// filterExts removes hidden extensions from the
// space-separated list s.
func filterExts(s string) string {
	exts := strings.Fields(s)
	n := 0
	for _, e := range exts {
		if !hiddenExts[e] {
			exts[n] = e
			n++
		}
	}
	return strings.Join(exts[:n], " ")
}

func (*GL) GetInteger(pname driver.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (*GL) GetFloat(pname driver.Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func (*GL) BlendEquation(mode driver.Enum) { gl.BlendEquation(uint32(mode)) }

func (*GL) BlendEquationSeparate(rgb, alpha driver.Enum) {
	gl.BlendEquationSeparate(uint32(rgb), uint32(alpha))
}

func (*GL) BlendFunc(src, dst driver.Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (*GL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*GL) BlendColor(r, g, b, a float32)             { gl.BlendColor(r, g, b, a) }
func (*GL) AlphaFunc(fn driver.Enum, ref float32)     { gl.AlphaFunc(uint32(fn), ref) }
func (*GL) ActiveTexture(unit driver.Enum)            { gl.ActiveTexture(uint32(unit)) }
func (*GL) ClientActiveTexture(unit driver.Enum)      { gl.ClientActiveTexture(uint32(unit)) }
func (*GL) BindTexture(target driver.Enum, id uint32) { gl.BindTexture(uint32(target), id) }
func (*GL) PixelStore(pname driver.Enum, param int)   { gl.PixelStorei(uint32(pname), int32(param)) }
func (*GL) GenerateMipmap(target driver.Enum)         { gl.GenerateMipmap(uint32(target)) }

func (*GL) GenTexture() (id uint32) {
	gl.GenTextures(1, &id)
	return
}

func (*GL) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (*GL) TexImage1D(target driver.Enum, level int, ifmt driver.Enum, width, border int, format, typ driver.Enum, data []byte) {
	gl.TexImage1D(uint32(target), int32(level), int32(ifmt), int32(width), int32(border), uint32(format), uint32(typ), bptr(data))
}

func (*GL) TexImage2D(target driver.Enum, level int, ifmt driver.Enum, width, height, border int, format, typ driver.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(ifmt), int32(width), int32(height), int32(border), uint32(format), uint32(typ), bptr(data))
}

func (*GL) TexImage3D(target driver.Enum, level int, ifmt driver.Enum, width, height, depth, border int, format, typ driver.Enum, data []byte) {
	gl.TexImage3D(uint32(target), int32(level), int32(ifmt), int32(width), int32(height), int32(depth), int32(border), uint32(format), uint32(typ), bptr(data))
}

func (*GL) TexSubImage2D(target driver.Enum, level, x, y, width, height int, format, typ driver.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), bptr(data))
}

func (*GL) CopyTexSubImage2D(target driver.Enum, level, x, y, srcX, srcY, width, height int) {
	gl.CopyTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(srcX), int32(srcY), int32(width), int32(height))
}

func (*GL) TexParameteri(target, pname driver.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (*GL) TexParameterf(target, pname driver.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (*GL) TexParameterfv(target, pname driver.Enum, params []float32) {
	gl.TexParameterfv(uint32(target), uint32(pname), fptr(params))
}

func (*GL) TexEnvi(target, pname driver.Enum, param int32) {
	gl.TexEnvi(uint32(target), uint32(pname), param)
}

func (*GL) TexEnvf(target, pname driver.Enum, param float32) {
	gl.TexEnvf(uint32(target), uint32(pname), param)
}

func (*GL) TexEnvfv(target, pname driver.Enum, params []float32) {
	gl.TexEnvfv(uint32(target), uint32(pname), fptr(params))
}

func (*GL) TexGeni(coord, pname driver.Enum, param int32) {
	gl.TexGeni(uint32(coord), uint32(pname), param)
}

func (*GL) TexGenfv(coord, pname driver.Enum, params []float32) {
	gl.TexGenfv(uint32(coord), uint32(pname), fptr(params))
}

func (*GL) MatrixMode(mode driver.Enum) { gl.MatrixMode(uint32(mode)) }
func (*GL) LoadMatrix(m *[16]float32)   { gl.LoadMatrixf(&m[0]) }
func (*GL) MultMatrix(m *[16]float32)   { gl.MultMatrixf(&m[0]) }
func (*GL) LoadIdentity()               { gl.LoadIdentity() }
func (*GL) PushMatrix()                 { gl.PushMatrix() }
func (*GL) PopMatrix()                  { gl.PopMatrix() }

func (*GL) Materialfv(face, pname driver.Enum, params []float32) {
	gl.Materialfv(uint32(face), uint32(pname), fptr(params))
}

func (*GL) Materialf(face, pname driver.Enum, param float32) {
	gl.Materialf(uint32(face), uint32(pname), param)
}

func (*GL) ColorMaterial(face, mode driver.Enum) { gl.ColorMaterial(uint32(face), uint32(mode)) }

func (*GL) Lightfv(light, pname driver.Enum, params []float32) {
	gl.Lightfv(uint32(light), uint32(pname), fptr(params))
}

func (*GL) Lightf(light, pname driver.Enum, param float32) {
	gl.Lightf(uint32(light), uint32(pname), param)
}

func (*GL) LightModelfv(pname driver.Enum, params []float32) {
	gl.LightModelfv(uint32(pname), fptr(params))
}

func (*GL) LightModeli(pname driver.Enum, param int32) { gl.LightModeli(uint32(pname), param) }

func (*GL) CullFace(mode driver.Enum)                   { gl.CullFace(uint32(mode)) }
func (*GL) FrontFace(mode driver.Enum)                  { gl.FrontFace(uint32(mode)) }
func (*GL) ShadeModel(mode driver.Enum)                 { gl.ShadeModel(uint32(mode)) }
func (*GL) PolygonMode(face, mode driver.Enum)          { gl.PolygonMode(uint32(face), uint32(mode)) }
func (*GL) LineWidth(width float32)                     { gl.LineWidth(width) }
func (*GL) PolygonOffset(factor, units float32)         { gl.PolygonOffset(factor, units) }
func (*GL) ClipPlane(plane driver.Enum, eq *[4]float64) { gl.ClipPlane(uint32(plane), &eq[0]) }
func (*GL) ColorMask(r, g, b, a bool)                   { gl.ColorMask(r, g, b, a) }

func (*GL) Fogi(pname driver.Enum, param int32)       { gl.Fogi(uint32(pname), param) }
func (*GL) Fogf(pname driver.Enum, param float32)     { gl.Fogf(uint32(pname), param) }
func (*GL) Fogfv(pname driver.Enum, params []float32) { gl.Fogfv(uint32(pname), fptr(params)) }

func (*GL) DepthFunc(fn driver.Enum) { gl.DepthFunc(uint32(fn)) }
func (*GL) DepthMask(flag bool)      { gl.DepthMask(flag) }

func (*GL) StencilFunc(fn driver.Enum, ref int32, mask uint32) {
	gl.StencilFunc(uint32(fn), ref, mask)
}

func (*GL) StencilFuncSeparate(face, fn driver.Enum, ref int32, mask uint32) {
	gl.StencilFuncSeparate(uint32(face), uint32(fn), ref, mask)
}

func (*GL) StencilOp(sfail, dpfail, dppass driver.Enum) {
	gl.StencilOp(uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (*GL) StencilOpSeparate(face, sfail, dpfail, dppass driver.Enum) {
	gl.StencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (*GL) StencilMask(mask uint32) { gl.StencilMask(mask) }

func (*GL) StencilMaskSeparate(face driver.Enum, mask uint32) {
	gl.StencilMaskSeparate(uint32(face), mask)
}

func (*GL) GenAsmProgram() uint32                                  { return 0 }
func (*GL) DeleteAsmProgram(uint32)                                {}
func (*GL) BindAsmProgram(driver.Enum, uint32)                     {}
func (*GL) AsmProgramString(driver.Enum, string) error             { return errNoAsm }
func (*GL) AsmProgramLocalParameter(driver.Enum, int, *[4]float32) {}

// compile compiles a shader of type typ.
func compile(typ uint32, src string) (uint32, error) {
	s := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)
	var ok int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(s, n, nil, gl.Str(log))
		gl.DeleteShader(s)
		return 0, fmt.Errorf("ogl: shader compilation failed: %s", strings.TrimRight(log, "\x00"))
	}
	return s, nil
}

func (*GL) BuildProgram(vert, frag string) (uint32, error) {
	if vert == "" && frag == "" {
		return 0, errors.New("ogl: no shader source")
	}
	prog := gl.CreateProgram()
	var shaders []uint32
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()
	for _, x := range [...]struct {
		typ uint32
		src string
	}{
		{gl.VERTEX_SHADER, vert},
		{gl.FRAGMENT_SHADER, frag},
	} {
		if x.src == "" {
			continue
		}
		s, err := compile(x.typ, x.src)
		if err != nil {
			gl.DeleteProgram(prog)
			return 0, err
		}
		gl.AttachShader(prog, s)
		shaders = append(shaders, s)
	}
	gl.LinkProgram(prog)
	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("ogl: program link failed: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func (*GL) DeleteProgram(id uint32) { gl.DeleteProgram(id) }
func (*GL) UseProgram(id uint32)    { gl.UseProgram(id) }

func (*GL) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (*GL) Uniform1i(loc int32, v int32)               { gl.Uniform1i(loc, v) }
func (*GL) Uniform1f(loc int32, v float32)             { gl.Uniform1f(loc, v) }
func (*GL) Uniform4fv(loc int32, v *[4]float32)        { gl.Uniform4fv(loc, 1, &v[0]) }
func (*GL) UniformMatrix4fv(loc int32, m *[16]float32) { gl.UniformMatrix4fv(loc, 1, false, &m[0]) }

func (*GL) GenBuffer() (id uint32) {
	gl.GenBuffers(1, &id)
	return
}

func (*GL) DeleteBuffer(id uint32)                   { gl.DeleteBuffers(1, &id) }
func (*GL) BindBuffer(target driver.Enum, id uint32) { gl.BindBuffer(uint32(target), id) }

func (*GL) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	gl.BufferData(uint32(target), len(data), bptr(data), uint32(usage))
}

func (*GL) BufferSubData(target driver.Enum, off int, data []byte) {
	gl.BufferSubData(uint32(target), off, len(data), bptr(data))
}

func (*GL) EnableClientState(array driver.Enum)  { gl.EnableClientState(uint32(array)) }
func (*GL) DisableClientState(array driver.Enum) { gl.DisableClientState(uint32(array)) }

func (*GL) VertexPointer(size, stride int, data []float32, off int) {
	gl.VertexPointer(int32(size), gl.FLOAT, int32(stride), arrayPtr(data, off))
}

func (*GL) NormalPointer(stride int, data []float32, off int) {
	gl.NormalPointer(gl.FLOAT, int32(stride), arrayPtr(data, off))
}

func (*GL) ColorPointer(size, stride int, data []float32, off int) {
	gl.ColorPointer(int32(size), gl.FLOAT, int32(stride), arrayPtr(data, off))
}

func (*GL) TexCoordPointer(size, stride int, data []float32, off int) {
	gl.TexCoordPointer(int32(size), gl.FLOAT, int32(stride), arrayPtr(data, off))
}

func (*GL) FogCoordPointer(stride int, data []float32, off int) {
	gl.FogCoordPointer(gl.FLOAT, int32(stride), arrayPtr(data, off))
}

func (*GL) DrawArrays(mode driver.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*GL) DrawElements(mode driver.Enum, count int, indices []uint32, off int) {
	p := gl.PtrOffset(off)
	if len(indices) > 0 {
		p = unsafe.Pointer(&indices[0])
	}
	gl.DrawElements(uint32(mode), int32(count), gl.UNSIGNED_INT, p)
}

func (*GL) GenFramebuffer() (id uint32) {
	gl.GenFramebuffers(1, &id)
	return
}

func (*GL) DeleteFramebuffer(id uint32) { gl.DeleteFramebuffers(1, &id) }

func (*GL) BindFramebuffer(target driver.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (*GL) FramebufferTexture2D(target, attachment, texTarget driver.Enum, tex uint32, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), tex, int32(level))
}

func (*GL) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	return driver.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (*GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (*GL) Clear(mask driver.Enum)        { gl.Clear(uint32(mask)) }
func (*GL) Flush()                        { gl.Flush() }
func (*GL) Finish()                       { gl.Finish() }

var (
	_ driver.GL     = &GL{}
	_ driver.Driver = &Driver{}
)
