// SPDX-License-Identifier: MPL-2.0

package yangctx

import (
	"errors"

	"yangkit/pkg/yangmod"
)

// The module inventory belongs to the context, but it is populated and
// mutated only by the loader collaborator (yangmod.Loader implementations).
// This file is that collaborator's surface; the context core itself never
// adds modules.

// ModuleSetID returns the module-set version counter. It starts at 1 for a
// ready context and increases on every inventory mutation, so callers can
// detect that a cached view of the inventory went stale. Safe on a nil
// context.
func (c *Context) ModuleSetID() uint32 {
	if c == nil {
		return 0
	}
	return c.moduleSetID
}

// BumpModuleSetID increments the module-set version counter. Reserved for
// loader collaborators; the counter never decreases.
func (c *Context) BumpModuleSetID() {
	if c == nil {
		return
	}
	c.moduleSetID++
}

// InsertModule appends m to the inventory and bumps the version counter.
// The inventory is an ordered list, not a set: a loader may legitimately
// hold several revisions of the same module. Reserved for loader
// collaborators.
func (c *Context) InsertModule(m *yangmod.Module) error {
	if c == nil || c.destroyed || c.modules == nil {
		return ErrDestroyed
	}
	if isValid, errs := m.IsValid(); !isValid {
		return errors.Join(errs...)
	}
	if c.opts&AllImplemented != 0 {
		m.Implemented = true
	}
	c.modules.Add(m, true)
	c.moduleSetID++
	return nil
}

// Modules returns a copy of the inventory in load order.
func (c *Context) Modules() []*yangmod.Module {
	if c == nil || c.modules == nil {
		return nil
	}
	return c.modules.Items()
}
