// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// VertexProgram binds an assembly vertex program.
type VertexProgram struct {
	base

	Enable bool
	Source string
	// Params are local program parameters.
	Params [][4]float32
}

// NewVertexProgram creates an enabled VertexProgram state.
func NewVertexProgram(src string) *VertexProgram {
	return &VertexProgram{Enable: true, Source: src}
}

func (*VertexProgram) Kind() Kind      { return KVertexProgram }
func (s *VertexProgram) Enabled() bool { return s.Enable }

// FragmentProgram binds an assembly fragment program.
type FragmentProgram struct {
	base

	Enable bool
	Source string
	// Params are local program parameters.
	Params [][4]float32
}

// NewFragmentProgram creates an enabled FragmentProgram
// state.
func NewFragmentProgram(src string) *FragmentProgram {
	return &FragmentProgram{Enable: true, Source: src}
}

func (*FragmentProgram) Kind() Kind      { return KFragmentProgram }
func (s *FragmentProgram) Enabled() bool { return s.Enable }

// UniformValue is the value of a shader uniform.
// It is implemented by Int, Float, Vec4 and Mat4.
type UniformValue interface {
	uniform()
}

// Uniform values.
type (
	Int   int32
	Float float32
	Vec4  [4]float32
	Mat4  [16]float32
)

func (Int) uniform()   {}
func (Float) uniform() {}
func (Vec4) uniform()  {}
func (Mat4) uniform()  {}

// Uniform is a named uniform value.
type Uniform struct {
	Name  string
	Value UniformValue
}

// GLSLShader binds a GLSL program.
// The program is compiled once per context, on first use.
type GLSLShader struct {
	base

	Enable   bool
	Vertex   string
	Fragment string
	Uniforms []Uniform
}

// NewGLSLShader creates an enabled GLSLShader state.
func NewGLSLShader(vert, frag string) *GLSLShader {
	return &GLSLShader{Enable: true, Vertex: vert, Fragment: frag}
}

func (*GLSLShader) Kind() Kind      { return KGLSLShader }
func (s *GLSLShader) Enabled() bool { return s.Enable }

// SetUniform sets the value of the named uniform,
// appending it if not present.
func (s *GLSLShader) SetUniform(name string, v UniformValue) {
	s.Touch()
	for i := range s.Uniforms {
		if s.Uniforms[i].Name == name {
			s.Uniforms[i].Value = v
			return
		}
	}
	s.Uniforms = append(s.Uniforms, Uniform{name, v})
}
