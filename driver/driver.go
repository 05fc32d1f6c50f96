// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the boundary between the state
// tracking core and a native OpenGL implementation.
// The GL interface exposes every native call that the
// core is allowed to issue. Applicators never talk to
// the graphics library directly.
package driver

import (
	"errors"
	"log"
	"sync"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver using the native
	// context that is current in the calling thread.
	// If it succeeds, further calls with the same
	// receiver have no effect and must return the same
	// GL instance.
	// Callers should assume that Open is not safe for
	// parallel execution.
	Open() (GL, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// ErrNotInstalled means that a platform-specific library
// required for the driver to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoContext means that an operation required a current
// native context and none was available.
var ErrNoContext = errors.New("driver: no current context")

// ErrFatal means that the driver is in an unrecoverable
// state. Upon encountering such an error, the application
// must discard every context created with the driver and
// then call the Close method.
var ErrFatal = errors.New("driver: fatal error")

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// call this function from init. As such, drivers that do
// not register themselves on init will not be considered
// for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			log.Printf("[!] driver '%s' replaced", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	log.Printf("driver '%s' registered", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers []Driver = make([]Driver, 0, 1)
)
