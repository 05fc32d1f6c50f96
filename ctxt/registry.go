// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ctxt

import (
	"errors"
	"strings"
	"sync"

	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
)

// ErrUnknown means that a key does not identify any
// context of the registry.
var ErrUnknown = errors.New("ctxt: unknown context")

var errNoDriver = errors.New("ctxt: driver not found")

// Registry tracks contexts by key and which of them is
// current.
// The zero value is an empty registry ready for use.
type Registry struct {
	mu   sync.Mutex
	ctxs map[any]*Context
	cur  *Context
}

// Add adds c to r, replacing any context with the same
// key. A replaced current context stops being current.
func (r *Registry) Add(c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ctxs == nil {
		r.ctxs = make(map[any]*Context)
	}
	if old, ok := r.ctxs[c.key]; ok {
		if r.cur == old {
			r.cur = nil
		}
		logger.L().Warn("ctxt: context replaced", "key", c.key)
	}
	r.ctxs[c.key] = c
}

// Remove removes the context identified by key.
// If it is the current context, r is left with no
// current context.
// It returns the removed context, or nil.
func (r *Registry) Remove(key any) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.ctxs[key]
	if !ok {
		return nil
	}
	delete(r.ctxs, key)
	if r.cur == c {
		r.cur = nil
	}
	return c
}

// Get returns the context identified by key, or nil.
func (r *Registry) Get(key any) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctxs[key]
}

// Switch makes the context identified by key current.
// The caller is responsible for making the native context
// current in the calling thread.
func (r *Registry) Switch(key any) (*Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.ctxs[key]
	if !ok {
		return nil, ErrUnknown
	}
	r.cur = c
	return c, nil
}

// Current returns the current context.
// It fails with driver.ErrNoContext if there is none.
func (r *Registry) Current() (*Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur == nil {
		return nil, driver.ErrNoContext
	}
	return r.cur, nil
}

// MustCurrent is like Current but panics if there is no
// current context.
func (r *Registry) MustCurrent() *Context {
	c, err := r.Current()
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of contexts in r.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ctxs)
}

// OpenDriver opens any registered driver whose name
// contains the name string. It is case insensitive.
// If name is the empty string, then all registered
// drivers are considered.
// Drivers are tried in registration order, and the first
// one that opens is returned along with its GL.
func OpenDriver(name string) (driver.Driver, driver.GL, error) {
	drivers := driver.Drivers()
	err := errNoDriver
	name = strings.ToLower(name)
	for i := range drivers {
		if !strings.Contains(strings.ToLower(drivers[i].Name()), name) {
			continue
		}
		var gl driver.GL
		if gl, err = drivers[i].Open(); err != nil {
			logger.L().Debug("ctxt: driver failed to open", "driver", drivers[i].Name(), "err", err)
			continue
		}
		return drivers[i], gl, nil
	}
	return nil, nil, err
}
