// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package record

import (
	"gviegas/ardor/driver"
	"gviegas/ardor/texture"
)

// Combine holds the combiner configuration of a unit.
type Combine struct {
	FuncRGB    driver.Enum
	FuncAlpha  driver.Enum
	SrcRGB     [3]driver.Enum
	SrcAlpha   [3]driver.Enum
	OpRGB      [3]driver.Enum
	OpAlpha    [3]driver.Enum
	ScaleRGB   float32
	ScaleAlpha float32
}

// Unit holds the state of one texture unit.
type Unit struct {
	// Enabled is indexed by texture.Type.
	Enabled    [texture.NType]Bool
	Bound      uint32
	EnvMode    driver.Enum
	BlendColor [4]float32
	LodBias    float32
	Combine    Combine
	// TexGen is indexed by coordinate (S, T, R, Q).
	TexGen   [4]Bool
	GenMode  [4]driver.Enum
	GenPlane [4][4]float32
	Identity Bool
}

// TexParams holds the sampling state of one texture
// object. It is tracked per native name since these
// parameters are stored in the texture object itself.
type TexParams struct {
	Min         driver.Enum
	Mag         driver.Enum
	WrapS       driver.Enum
	WrapT       driver.Enum
	WrapR       driver.Enum
	Border      [4]float32
	Anisotropy  float32
	DepthMode   driver.Enum
	CompareMode driver.Enum
	CompareFunc driver.Enum
}

// TexGlobal holds texture state that is not per unit.
type TexGlobal struct {
	Hint driver.Enum
}

// Texture is the texture record.
// It composes one Record per unit and one per texture
// object, plus the active unit cursor.
type Texture struct {
	*Record[TexGlobal]

	// CurrentUnit is the active unit, or -1 when unknown.
	CurrentUnit int
	Units       []*Record[Unit]

	objects map[uint32]*Record[TexParams]
}

var (
	unknownUnit   Unit
	unknownParams = TexParams{
		Min:         UnknownEnum,
		Mag:         UnknownEnum,
		WrapS:       UnknownEnum,
		WrapT:       UnknownEnum,
		WrapR:       UnknownEnum,
		Border:      UnknownColor,
		Anisotropy:  UnknownFloat,
		DepthMode:   UnknownEnum,
		CompareMode: UnknownEnum,
		CompareFunc: UnknownEnum,
	}
)

func init() {
	u := &unknownUnit
	u.Bound = UnknownID
	u.EnvMode = UnknownEnum
	u.BlendColor = UnknownColor
	u.LodBias = UnknownFloat
	u.Combine = Combine{
		FuncRGB:    UnknownEnum,
		FuncAlpha:  UnknownEnum,
		SrcRGB:     [3]driver.Enum{UnknownEnum, UnknownEnum, UnknownEnum},
		SrcAlpha:   [3]driver.Enum{UnknownEnum, UnknownEnum, UnknownEnum},
		OpRGB:      [3]driver.Enum{UnknownEnum, UnknownEnum, UnknownEnum},
		OpAlpha:    [3]driver.Enum{UnknownEnum, UnknownEnum, UnknownEnum},
		ScaleRGB:   UnknownFloat,
		ScaleAlpha: UnknownFloat,
	}
	for i := range u.GenMode {
		u.GenMode[i] = UnknownEnum
		u.GenPlane[i] = UnknownColor
	}
}

// NewTexture creates an Invalid texture record with the
// given number of units.
func NewTexture(units int) *Texture {
	t := &Texture{
		Record:      New(TexGlobal{UnknownEnum}),
		CurrentUnit: -1,
		Units:       make([]*Record[Unit], max(units, 1)),
		objects:     make(map[uint32]*Record[TexParams]),
	}
	for i := range t.Units {
		t.Units[i] = New(unknownUnit)
	}
	return t
}

// Invalidate invalidates t, every unit and every texture
// object, and resets the active unit cursor.
func (t *Texture) Invalidate() {
	t.Record.Invalidate()
	t.CurrentUnit = -1
	for _, u := range t.Units {
		u.Invalidate()
	}
	for _, o := range t.objects {
		o.Invalidate()
	}
}

// Object returns the record of the texture object named
// id, creating an Invalid one if needed.
func (t *Texture) Object(id uint32) *Record[TexParams] {
	o, ok := t.objects[id]
	if !ok {
		o = New(unknownParams)
		t.objects[id] = o
	}
	return o
}

// RemoveObject forgets the texture object named id.
// Units that have id bound forget their binding, since
// deleting a bound texture reverts the unit to the
// default texture.
func (t *Texture) RemoveObject(id uint32) {
	delete(t.objects, id)
	for _, u := range t.Units {
		if u.F.Bound == id {
			u.F.Bound = UnknownID
		}
	}
}

// Objects returns the number of tracked texture objects.
func (t *Texture) Objects() int { return len(t.objects) }
