// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package apply implements the state applicators.
//
// An applicator reconciles the record of one state kind
// with a desired state, issuing the minimal set of native
// calls. Every applicator leaves its record Valid and
// mirroring the desired state as clamped to the context's
// capabilities. Requested features that the context lacks
// are downgraded to the nearest supported behavior and
// logged once.
package apply

import (
	"fmt"
	"sync"

	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

type applicator func(c *ctxt.Context, s state.State)

var appliers = [state.NKind]applicator{
	state.KBlend:           applyBlend,
	state.KFog:             applyFog,
	state.KLight:           applyLight,
	state.KMaterial:        applyMaterial,
	state.KShading:         applyShading,
	state.KTexture:         applyTexture,
	state.KWireframe:       applyWireframe,
	state.KZBuffer:         applyZBuffer,
	state.KCull:            applyCull,
	state.KVertexProgram:   applyVertexProgram,
	state.KFragmentProgram: applyFragmentProgram,
	state.KStencil:         applyStencil,
	state.KGLSLShader:      applyGLSL,
	state.KColorMask:       applyColorMask,
	state.KClip:            applyClip,
	state.KOffset:          applyOffset,
}

func init() {
	for k, f := range appliers {
		if f == nil {
			panic("apply: no applicator for " + state.Kind(k).String())
		}
	}
}

// Apply reconciles the record of s's kind in c with s and
// records s as current. c must be current in the calling
// thread.
func Apply(c *ctxt.Context, s state.State) {
	appliers[s.Kind()](c, s)
	c.SetCurrent(s)
}

// toggle enables or disables cp as needed to make *field
// equal to on.
func toggle(gl driver.GL, valid bool, field *record.Bool, cp driver.Enum, on bool) {
	if !record.Set(valid, field, record.BoolOf(on)) {
		return
	}
	if on {
		gl.Enable(cp)
	} else {
		gl.Disable(cp)
	}
}

var warned sync.Map

// warnOnce logs a downgrade warning the first time msg is
// seen with the given feature.
func warnOnce(f driver.Feature, msg string, args ...any) {
	key := fmt.Sprint(f, msg)
	if _, dup := warned.LoadOrStore(key, struct{}{}); dup {
		return
	}
	logger.L().Warn(msg, args...)
}
