// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.False(t, L().Enabled(context.Background(), slog.LevelError), "L: default logger should be silent")
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))
	defer Set(nil)
	L().Warn("downgrade", "feature", "x")
	assert.Contains(t, buf.String(), "downgrade")
	assert.Contains(t, buf.String(), "feature=x")

	Set(nil)
	buf.Reset()
	L().Warn("dropped")
	assert.Empty(t, buf.String(), "Set(nil): logger should be silent")
}
