// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements the renderer that submits
// geometry through the state tracking core.
//
// A Renderer resolves the states of each drawable against
// the enforced overlays and the defaults of every kind,
// applies them to the current context of a ctxt.Registry
// and then issues the draw calls. Vertex and index data
// live in Buffers, which the renderer mirrors into buffer
// objects when the context supports them.
package engine

import (
	"errors"
	"log/slog"

	"gviegas/ardor/internal/logger"
)

const (
	// The maximum number of texture coordinate sets in a
	// mesh.
	MaxTexCoord = 8

	// The number of elements covered by each dirty flag
	// of a Buffer.
	DirtyBlock = 64
)

func newRendErr(s string) error { return errors.New("renderer: " + s) }

// SetLogger sets the logger used by every package of the
// module. A nil l discards all output, which is the
// default.
func SetLogger(l *slog.Logger) { logger.Set(l) }
