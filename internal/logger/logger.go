// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package logger holds the logger shared by every package
// of the module. Output is discarded until Set is called.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nop discards every record. Enabled reports false so that
// callers skip formatting entirely.
type nop struct{}

func (nop) Enabled(context.Context, slog.Level) bool  { return false }
func (nop) Handle(context.Context, slog.Record) error { return nil }
func (nop) WithAttrs([]slog.Attr) slog.Handler        { return nop{} }
func (nop) WithGroup(string) slog.Handler             { return nop{} }

var ptr atomic.Pointer[slog.Logger]

func init() { ptr.Store(slog.New(nop{})) }

// Set replaces the shared logger.
// A nil l restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nop{})
	}
	ptr.Store(l)
}

// L returns the shared logger.
func L() *slog.Logger { return ptr.Load() }
