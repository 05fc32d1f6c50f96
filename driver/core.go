// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// GL is the set of native calls available to the core.
// It mirrors the fixed-function OpenGL API closely so that
// implementations are mostly a direct translation.
// A GL is bound to a single native context and is not safe
// for concurrent use.
//
// Methods taking a client-side slice plus an offset (e.g.,
// VertexPointer) source data from memory when the slice is
// not nil, and from the currently bound buffer object at
// the given byte offset otherwise.
type GL interface {
	// Enable enables a server-side capability.
	Enable(cap Enum)
	// Disable disables a server-side capability.
	Disable(cap Enum)
	// Hint sets an implementation-specific hint.
	Hint(target, mode Enum)
	// GetError returns (and clears) the oldest error flag.
	GetError() Enum
	// GetString queries a string value.
	GetString(name Enum) string
	// GetInteger queries an integer value.
	GetInteger(pname Enum) int
	// GetFloat queries a floating-point value.
	GetFloat(pname Enum) float32

	BlendEquation(mode Enum)
	BlendEquationSeparate(rgb, alpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendColor(r, g, b, a float32)
	AlphaFunc(fn Enum, ref float32)

	// ActiveTexture selects the server-side texture unit
	// (Texture0 + i).
	ActiveTexture(unit Enum)
	// ClientActiveTexture selects the client-side texture
	// unit used by TexCoordPointer.
	ClientActiveTexture(unit Enum)
	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	PixelStore(pname Enum, param int)
	TexImage1D(target Enum, level int, ifmt Enum, width, border int, format, typ Enum, data []byte)
	TexImage2D(target Enum, level int, ifmt Enum, width, height, border int, format, typ Enum, data []byte)
	TexImage3D(target Enum, level int, ifmt Enum, width, height, depth, border int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)
	CopyTexSubImage2D(target Enum, level, x, y, srcX, srcY, width, height int)
	GenerateMipmap(target Enum)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	TexParameterfv(target, pname Enum, params []float32)
	TexEnvi(target, pname Enum, param int32)
	TexEnvf(target, pname Enum, param float32)
	TexEnvfv(target, pname Enum, params []float32)
	TexGeni(coord, pname Enum, param int32)
	TexGenfv(coord, pname Enum, params []float32)

	MatrixMode(mode Enum)
	LoadMatrix(m *[16]float32)
	MultMatrix(m *[16]float32)
	LoadIdentity()
	PushMatrix()
	PopMatrix()

	Materialfv(face, pname Enum, params []float32)
	Materialf(face, pname Enum, param float32)
	ColorMaterial(face, mode Enum)
	Lightfv(light, pname Enum, params []float32)
	Lightf(light, pname Enum, param float32)
	LightModelfv(pname Enum, params []float32)
	LightModeli(pname Enum, param int32)

	CullFace(mode Enum)
	FrontFace(mode Enum)
	ShadeModel(mode Enum)
	PolygonMode(face, mode Enum)
	LineWidth(width float32)
	PolygonOffset(factor, units float32)
	ClipPlane(plane Enum, eq *[4]float64)
	ColorMask(r, g, b, a bool)

	Fogi(pname Enum, param int32)
	Fogf(pname Enum, param float32)
	Fogfv(pname Enum, params []float32)

	DepthFunc(fn Enum)
	DepthMask(flag bool)
	StencilFunc(fn Enum, ref int32, mask uint32)
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32)
	StencilOp(sfail, dpfail, dppass Enum)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	StencilMask(mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)

	// GenAsmProgram creates an assembly (ARB) program name.
	GenAsmProgram() uint32
	DeleteAsmProgram(id uint32)
	BindAsmProgram(target Enum, id uint32)
	// AsmProgramString loads the program source into the
	// program bound to target.
	AsmProgramString(target Enum, src string) error
	AsmProgramLocalParameter(target Enum, index int, v *[4]float32)

	// BuildProgram compiles and links a GLSL program from
	// vertex and fragment sources. Either source may be
	// empty, but not both.
	BuildProgram(vert, frag string) (uint32, error)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	UniformLocation(prog uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform4fv(loc int32, v *[4]float32)
	UniformMatrix4fv(loc int32, m *[16]float32)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, off int, data []byte)
	EnableClientState(array Enum)
	DisableClientState(array Enum)
	VertexPointer(size, stride int, data []float32, off int)
	NormalPointer(stride int, data []float32, off int)
	ColorPointer(size, stride int, data []float32, off int)
	TexCoordPointer(size, stride int, data []float32, off int)
	// FogCoordPointer sources one fog coordinate per
	// vertex. It requires FFogCoords.
	FogCoordPointer(stride int, data []float32, off int)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, indices []uint32, off int)

	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex uint32, level int)
	CheckFramebufferStatus(target Enum) Enum

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Flush()
	Finish()
}

// Surface is implemented by native drawables that can
// present a back buffer.
type Surface interface {
	SwapBuffers()
}
