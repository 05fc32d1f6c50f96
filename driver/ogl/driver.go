// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package ogl implements driver interfaces using the
// OpenGL 3.2 compatibility profile.
//
// The native context must be created (e.g., by a window
// system toolkit) and made current in the calling thread
// before the driver is opened. Every GL call must be made
// from that thread.
package ogl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"gviegas/ardor/driver"
)

const driverName = "opengl"

// Driver implements driver.Driver.
type Driver struct {
	gl *GL
}

func init() {
	driver.Register(&Driver{})
}

// Open implements driver.Driver.
func (d *Driver) Open() (driver.GL, error) {
	if d.gl != nil {
		return d.gl, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", driver.ErrNotInstalled, err)
	}
	d.gl = new(GL)
	return d.gl, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return driverName }

// Close implements driver.Driver.
func (d *Driver) Close() { d.gl = nil }
