// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// ZBuffer configures the depth test.
type ZBuffer struct {
	base

	Enable   bool
	Func     Func
	Writable bool
}

// NewZBuffer creates an enabled ZBuffer state.
func NewZBuffer() *ZBuffer { return &ZBuffer{Enable: true, Func: Less, Writable: true} }

func (*ZBuffer) Kind() Kind      { return KZBuffer }
func (s *ZBuffer) Enabled() bool { return s.Enable }

// StencilOp is a stencil buffer operation.
type StencilOp int

// Stencil operations.
// IncrWrap and DecrWrap fall back to Incr and Decr when
// stencil wrap is not supported.
const (
	Keep StencilOp = iota
	StencilZero
	StencilReplace
	Incr
	Decr
	IncrWrap
	DecrWrap
	Invert
)

// StencilFace holds the stencil configuration of one
// polygon face.
type StencilFace struct {
	Func      Func
	Ref       int32
	FuncMask  uint32
	WriteMask uint32
	Fail      StencilOp
	ZFail     StencilOp
	ZPass     StencilOp
}

// Stencil configures the stencil test.
// When TwoSided is false or not supported, Front applies
// to both faces.
type Stencil struct {
	base

	Enable   bool
	TwoSided bool
	Front    StencilFace
	Back     StencilFace
}

// NewStencil creates an enabled Stencil state that always
// passes and keeps the buffer.
func NewStencil() *Stencil {
	f := StencilFace{
		Func:      Always,
		FuncMask:  ^uint32(0),
		WriteMask: ^uint32(0),
	}
	return &Stencil{Enable: true, Front: f, Back: f}
}

func (*Stencil) Kind() Kind      { return KStencil }
func (s *Stencil) Enabled() bool { return s.Enable }
