// SPDX-License-Identifier: MPL-2.0

package yangctx

import (
	"yangkit/pkg/fspath"
)

// SetSearchDir validates dir, resolves it to canonical form, and inserts it
// into the context's deduplicated search-path set. An empty dir is defined
// as a no-op success, so call sites that only conditionally have a directory
// need no guard. Inserting a path already present (under any equivalent
// spelling) changes nothing.
func (c *Context) SetSearchDir(dir string) error {
	if c == nil || c.destroyed {
		return ErrDestroyed
	}
	if dir == "" {
		// No change is not an error.
		return nil
	}
	canon, err := fspath.CanonicalDir(dir)
	if err != nil {
		return err
	}
	c.searchPaths.Add(canon, false)
	return nil
}

// SearchDirs returns a copy of the current search-path list. The order is
// insertion order until the first removal; after any removal it is
// unspecified (see package objset).
func (c *Context) SearchDirs() []string {
	if c == nil || c.searchPaths == nil {
		return nil
	}
	return c.searchPaths.Items()
}

// UnsetSearchDirs removes search directories. An index >= 0 removes exactly
// that entry with swap-removal semantics — indices of the remaining entries
// are not stable afterwards; an index outside the occupied range is an
// error. A negative index removes every entry and resets the container to
// empty but reusable. On an already-empty set any index is a no-op success.
func (c *Context) UnsetSearchDirs(index int) error {
	if c == nil || c.searchPaths == nil {
		return nil
	}
	if c.searchPaths.Len() == 0 {
		return nil
	}
	if index < 0 {
		c.searchPaths.Clean()
		return nil
	}
	return c.searchPaths.RemoveAt(index)
}
