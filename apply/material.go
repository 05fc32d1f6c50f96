// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

var defaultMaterial = state.NewMaterial()

var colorMaterials = [...]driver.Enum{
	state.CMNone:              driver.None,
	state.CMAmbient:           driver.Ambient,
	state.CMDiffuse:           driver.Diffuse,
	state.CMAmbientAndDiffuse: driver.AmbientAndDiffuse,
	state.CMSpecular:          driver.Specular,
	state.CMEmissive:          driver.Emission,
}

// Record face indices. Shared, must not be modified.
var (
	frontFace = []int{record.FaceFront}
	backFace  = []int{record.FaceBack}
	bothFaces = []int{record.FaceFront, record.FaceBack}
)

// faceIndices returns the record.FaceFront/FaceBack
// indices that f affects.
func faceIndices(f state.Face) []int {
	switch f {
	case state.FaceFront:
		return frontFace
	case state.FaceBack:
		return backFace
	}
	return bothFaces
}

func applyMaterial(c *ctxt.Context, s state.State) {
	st := s.(*state.Material)
	if !st.Enable {
		st = defaultMaterial
	}
	gl := c.GL()
	r := c.Records.Material
	face := st.Face
	if face == state.FaceNone {
		face = state.FaceFrontAndBack
	}
	idx := faceIndices(face)

	colorMaterial(gl, r, face, colorMaterials[st.ColorMaterial])
	materialColor(gl, r, face, idx, driver.Ambient, &r.F.Ambient, st.Ambient)
	materialColor(gl, r, face, idx, driver.Diffuse, &r.F.Diffuse, st.Diffuse)
	materialColor(gl, r, face, idx, driver.Emission, &r.F.Emission, st.Emissive)
	materialColor(gl, r, face, idx, driver.Specular, &r.F.Specular, st.Specular)

	push := false
	for _, i := range idx {
		if record.Set(r.Valid(), &r.F.Shininess[i], st.Shininess) {
			push = true
		}
	}
	if push {
		gl.Materialf(faceEnum(face), driver.Shininess, st.Shininess)
	}
	r.Validate()
}

func colorMaterial(gl driver.GL, r *record.Record[record.Material], face state.Face, mode driver.Enum) {
	v := r.Valid()
	setMode := record.Set(v, &r.F.ColorMaterial, mode)
	setFace := record.Set(v, &r.F.ColorFace, faceEnum(face))
	if !setMode && !setFace {
		return
	}
	if mode == driver.None {
		gl.Disable(driver.ColorMaterialCap)
		return
	}
	gl.ColorMaterial(faceEnum(face), mode)
	gl.Enable(driver.ColorMaterialCap)
	// Colors tracking the vertex color are no longer known.
	for _, i := range faceIndices(face) {
		switch mode {
		case driver.Ambient:
			r.F.Ambient[i] = record.UnknownColor
		case driver.Diffuse:
			r.F.Diffuse[i] = record.UnknownColor
		case driver.AmbientAndDiffuse:
			r.F.Ambient[i] = record.UnknownColor
			r.F.Diffuse[i] = record.UnknownColor
		case driver.Specular:
			r.F.Specular[i] = record.UnknownColor
		case driver.Emission:
			r.F.Emission[i] = record.UnknownColor
		}
	}
}

// vertexProvided returns whether pname tracks the vertex
// color under the color material mode cm.
func vertexProvided(cm, pname driver.Enum) bool {
	switch pname {
	case driver.Ambient, driver.Diffuse:
		return cm == pname || cm == driver.AmbientAndDiffuse
	}
	return cm == pname
}

func materialColor(gl driver.GL, r *record.Record[record.Material], face state.Face, idx []int, pname driver.Enum, field *[2][4]float32, color [4]float32) {
	if vertexProvided(r.F.ColorMaterial, pname) {
		return
	}
	push := false
	for _, i := range idx {
		if record.Set(r.Valid(), &field[i], color) {
			push = true
		}
	}
	if push {
		gl.Materialfv(faceEnum(face), pname, color[:])
	}
}
