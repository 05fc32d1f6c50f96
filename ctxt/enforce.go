// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ctxt

import (
	"gviegas/ardor/state"
)

// PushEnforced pushes an overlay of enforced states.
// While pushed, a state in s takes the place of whatever
// drawables request for its kind. Overlays pushed later
// take precedence.
// s must not be modified while pushed.
func (c *Context) PushEnforced(s *state.Set) { c.enforced = append(c.enforced, s) }

// PopEnforced pops the last overlay pushed.
// It returns nil if there is none.
func (c *Context) PopEnforced() *state.Set {
	n := len(c.enforced)
	if n == 0 {
		return nil
	}
	s := c.enforced[n-1]
	c.enforced[n-1] = nil
	c.enforced = c.enforced[:n-1]
	return s
}

// ClearEnforced pops every overlay.
func (c *Context) ClearEnforced() {
	clear(c.enforced)
	c.enforced = c.enforced[:0]
}

// Enforced returns the enforced state of kind k, searching
// overlays from the top. It returns nil if no overlay
// enforces k.
func (c *Context) Enforced(k state.Kind) state.State {
	for i := len(c.enforced) - 1; i >= 0; i-- {
		if s := c.enforced[i].Get(k); s != nil {
			return s
		}
	}
	return nil
}

// EnforcedDepth returns the number of overlays pushed.
func (c *Context) EnforcedDepth() int { return len(c.enforced) }
