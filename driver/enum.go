// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// Enum is a native enumerant.
// Values are those of the OpenGL headers.
type Enum uint32

// Blend factors and equations.
const (
	Zero                  Enum = 0
	One                   Enum = 1
	SrcColor              Enum = 0x0300
	OneMinusSrcColor      Enum = 0x0301
	SrcAlpha              Enum = 0x0302
	OneMinusSrcAlpha      Enum = 0x0303
	DstAlpha              Enum = 0x0304
	OneMinusDstAlpha      Enum = 0x0305
	DstColor              Enum = 0x0306
	OneMinusDstColor      Enum = 0x0307
	SrcAlphaSaturate      Enum = 0x0308
	ConstantColor         Enum = 0x8001
	OneMinusConstantColor Enum = 0x8002
	ConstantAlpha         Enum = 0x8003
	OneMinusConstantAlpha Enum = 0x8004
	FuncAdd               Enum = 0x8006
	Min                   Enum = 0x8007
	Max                   Enum = 0x8008
	FuncSubtract          Enum = 0x800A
	FuncReverseSubtract   Enum = 0x800B
)

// Comparison functions.
const (
	Never    Enum = 0x0200
	Less     Enum = 0x0201
	Equal    Enum = 0x0202
	Lequal   Enum = 0x0203
	Greater  Enum = 0x0204
	Notequal Enum = 0x0205
	Gequal   Enum = 0x0206
	Always   Enum = 0x0207
)

// Capabilities (Enable/Disable).
const (
	Blend             Enum = 0x0BE2
	AlphaTest         Enum = 0x0BC0
	DepthTest         Enum = 0x0B71
	StencilTest       Enum = 0x0B90
	CullFaceCap       Enum = 0x0B44
	Fog               Enum = 0x0B60
	Lighting          Enum = 0x0B50
	Light0            Enum = 0x4000
	ColorMaterialCap  Enum = 0x0B57
	PolygonOffsetFill Enum = 0x8037
	PolygonOffsetLine Enum = 0x2A02
	PolygonOffsetPt   Enum = 0x2A01
	ClipPlane0        Enum = 0x3000
	LineSmooth        Enum = 0x0B20
	Normalize         Enum = 0x0BA1
	RescaleNormal     Enum = 0x803A
	Dither            Enum = 0x0BD0
	VertexProgramARB  Enum = 0x8620
	FragProgramARB    Enum = 0x8804
)

// Texture targets.
const (
	Texture1D       Enum = 0x0DE0
	Texture2D       Enum = 0x0DE1
	Texture3D       Enum = 0x806F
	TextureCubeMap  Enum = 0x8513
	CubeMapPosX     Enum = 0x8515
	CubeMapNegX     Enum = 0x8516
	CubeMapPosY     Enum = 0x8517
	CubeMapNegY     Enum = 0x8518
	CubeMapPosZ     Enum = 0x8519
	CubeMapNegZ     Enum = 0x851A
	Texture0        Enum = 0x84C0
	TextureGenS     Enum = 0x0C60
	TextureGenT     Enum = 0x0C61
	TextureGenR     Enum = 0x0C62
	TextureGenQ     Enum = 0x0C63
	UnpackAlignment Enum = 0x0CF5
)

// Texture parameters and values.
const (
	TexMagFilter       Enum = 0x2800
	TexMinFilter       Enum = 0x2801
	TexWrapS           Enum = 0x2802
	TexWrapT           Enum = 0x2803
	TexWrapR           Enum = 0x8072
	TexBorderColor     Enum = 0x1004
	TexMaxAnisotropy   Enum = 0x84FE
	MaxTexAnisotropy   Enum = 0x84FF
	GenerateMipmapHint Enum = 0x8191
	DepthTexMode       Enum = 0x884B
	TexCompareMode     Enum = 0x884C
	TexCompareFunc     Enum = 0x884D
	CompareRToTexture  Enum = 0x884E
	None               Enum = 0
	Luminance          Enum = 0x1909
	Intensity          Enum = 0x8049
	Alpha              Enum = 0x1906

	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703

	Repeat              Enum = 0x2901
	Clamp               Enum = 0x2900
	ClampToEdge         Enum = 0x812F
	ClampToBorder       Enum = 0x812D
	MirroredRepeat      Enum = 0x8370
	MirrorClamp         Enum = 0x8742
	MirrorClampToEdge   Enum = 0x8743
	MirrorClampToBorder Enum = 0x8912
)

// Texture environment.
const (
	TexEnv        Enum = 0x2300
	TexEnvMode    Enum = 0x2200
	TexEnvColor   Enum = 0x2201
	Modulate      Enum = 0x2100
	Decal         Enum = 0x2101
	Replace       Enum = 0x1E01
	Add           Enum = 0x0104
	Combine       Enum = 0x8570
	CombineRGB    Enum = 0x8571
	CombineAlpha  Enum = 0x8572
	RGBScale      Enum = 0x8573
	AddSigned     Enum = 0x8574
	Interpolate   Enum = 0x8575
	Constant      Enum = 0x8576
	PrimaryColor  Enum = 0x8577
	Previous      Enum = 0x8578
	TextureSrc    Enum = 0x1702
	Source0RGB    Enum = 0x8580
	Source0Alpha  Enum = 0x8588
	Operand0RGB   Enum = 0x8590
	Operand0Alpha Enum = 0x8598
	AlphaScale    Enum = 0x0D1C
	Subtract      Enum = 0x84E7
	Dot3RGB       Enum = 0x86AE
	Dot3RGBA      Enum = 0x86AF

	TexFilterControl Enum = 0x8500
	TexLodBias       Enum = 0x8501
	MaxTexLodBias    Enum = 0x84FD

	S             Enum = 0x2000
	T             Enum = 0x2001
	R             Enum = 0x2002
	Q             Enum = 0x2003
	TexGenMode    Enum = 0x2500
	ObjectPlane   Enum = 0x2501
	EyePlane      Enum = 0x2502
	EyeLinear     Enum = 0x2400
	ObjectLinear  Enum = 0x2401
	SphereMap     Enum = 0x2402
	NormalMap     Enum = 0x8511
	ReflectionMap Enum = 0x8512

	PerspectiveCorrectionHint Enum = 0x0C50
	Fastest                   Enum = 0x1101
	Nicest                    Enum = 0x1102
	DontCare                  Enum = 0x1100
)

// Matrix modes.
const (
	Modelview     Enum = 0x1700
	Projection    Enum = 0x1701
	TextureMatrix Enum = 0x1702
)

// Faces, materials and lights.
const (
	Front        Enum = 0x0404
	Back         Enum = 0x0405
	FrontAndBack Enum = 0x0408
	CW           Enum = 0x0900
	CCW          Enum = 0x0901

	Ambient              Enum = 0x1200
	Diffuse              Enum = 0x1201
	Specular             Enum = 0x1202
	Position             Enum = 0x1203
	SpotDirection        Enum = 0x1204
	SpotExponent         Enum = 0x1205
	SpotCutoff           Enum = 0x1206
	ConstantAttenuation  Enum = 0x1207
	LinearAttenuation    Enum = 0x1208
	QuadraticAttenuation Enum = 0x1209
	Emission             Enum = 0x1600
	Shininess            Enum = 0x1601
	AmbientAndDiffuse    Enum = 0x1602

	LightModelLocalViewer  Enum = 0x0B51
	LightModelTwoSide      Enum = 0x0B52
	LightModelAmbient      Enum = 0x0B53
	LightModelColorControl Enum = 0x81F8
	SingleColor            Enum = 0x81F9
	SeparateSpecularColor  Enum = 0x81FA
)

// Rasterization, fog, depth and stencil.
const (
	Flat   Enum = 0x1D00
	Smooth Enum = 0x1D01
	Point  Enum = 0x1B00
	Line   Enum = 0x1B01
	Fill   Enum = 0x1B02

	FogMode     Enum = 0x0B65
	FogDensity  Enum = 0x0B62
	FogStart    Enum = 0x0B63
	FogEnd      Enum = 0x0B64
	FogColor    Enum = 0x0B66
	FogHint     Enum = 0x0C54
	Exp         Enum = 0x0800
	Exp2        Enum = 0x0801
	FogCoordSrc Enum = 0x8450
	FogCoord    Enum = 0x8451
	FragDepth   Enum = 0x8452
	FogCoordArr Enum = 0x8457
	Keep        Enum = 0x1E00
	Incr        Enum = 0x1E02
	Decr        Enum = 0x1E03
	Invert      Enum = 0x150A
	IncrWrap    Enum = 0x8507
	DecrWrap    Enum = 0x8508
)

// Buffers, arrays and primitives.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4
	DynamicDraw        Enum = 0x88E8
	StreamDraw         Enum = 0x88E0

	VertexArray   Enum = 0x8074
	NormalArray   Enum = 0x8075
	ColorArray    Enum = 0x8076
	TexCoordArray Enum = 0x8078

	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
	Quads         Enum = 0x0007
	QuadStrip     Enum = 0x0008

	Framebuffer         Enum = 0x8D40
	ColorAttachment0    Enum = 0x8CE0
	DepthAttachment     Enum = 0x8D00
	FramebufferComplete Enum = 0x8CD5

	ColorBufferBit   Enum = 0x4000
	DepthBufferBit   Enum = 0x0100
	StencilBufferBit Enum = 0x0400
)

// Errors.
const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	StackOverflow               Enum = 0x0503
	StackUnderflow              Enum = 0x0504
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

// Queries.
const (
	Vendor                 Enum = 0x1F00
	Renderer               Enum = 0x1F01
	Version                Enum = 0x1F02
	Extensions             Enum = 0x1F03
	MaxTextureSize         Enum = 0x0D33
	MaxTextureUnits        Enum = 0x84E2
	MaxTextureImageUnits   Enum = 0x8872
	MaxVertexTexImageUnits Enum = 0x8B4C
	MaxTextureCoords       Enum = 0x8871
	MaxVertexAttribs       Enum = 0x8869
	MaxColorAttachments    Enum = 0x8CDF
	AuxBuffers             Enum = 0x0C00
	MaxLights              Enum = 0x0D31
	MaxClipPlanes          Enum = 0x0D32
)

// Pixel formats and types.
const (
	RGBA           Enum = 0x1908
	RGB            Enum = 0x1907
	RGBA8          Enum = 0x8058
	RGB8           Enum = 0x8051
	Luminance8     Enum = 0x8040
	Alpha8         Enum = 0x803C
	DepthComponent Enum = 0x1902
	UnsignedByte   Enum = 0x1401
	UnsignedInt    Enum = 0x1405
	Float          Enum = 0x1406
)

// ErrorString returns a description of a GetError code.
func ErrorString(code Enum) string {
	switch code {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enumerant"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case OutOfMemory:
		return "out of memory"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	}
	return "unknown error"
}
