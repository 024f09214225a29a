// SPDX-License-Identifier: MPL-2.0

package yangctx

import (
	"errors"
	"os"
	"strings"

	"yangkit/pkg/diag"
	"yangkit/pkg/dict"
	"yangkit/pkg/objset"
	"yangkit/pkg/yangmod"
)

var (
	// ErrDestroyed is returned when an operation is attempted on a
	// destroyed context.
	ErrDestroyed = errors.New("context already destroyed")
)

// Context is the process-instance configuration and resource owner.
// See the package documentation for the lifecycle and concurrency contract.
type Context struct {
	opts        Option
	searchPaths *objset.Set[string]
	modules     *objset.Set[*yangmod.Module]
	moduleSetID uint32
	dict        *dict.Dict
	diags       *diag.Registry
	destroyed   bool
}

// New creates a ready context.
//
// searchDirSpec is an optional list of directory paths separated by
// os.PathListSeparator. Segments are processed left to right: empty segments
// are skipped, each remaining one must name a readable, traversable
// directory and is inserted in canonical form with duplicates silently
// collapsed. The first failing segment aborts construction: everything
// acquired so far is released in reverse order and the triggering error,
// naming the offending path, is returned. No partial context is ever
// returned.
func New(searchDirSpec string, opts Option) (*Context, error) {
	c := &Context{}

	var rollback []func()
	fail := func(err error) (*Context, error) {
		for i := len(rollback) - 1; i >= 0; i-- {
			rollback[i]()
		}
		return nil, err
	}

	c.dict = dict.New()
	rollback = append(rollback, func() { c.dict.Clean(); c.dict = nil })

	c.diags = diag.NewRegistry()
	rollback = append(rollback, func() { c.diags.Drain(); c.diags = nil })

	c.opts = opts
	c.searchPaths = objset.New[string]()
	rollback = append(rollback, func() { c.searchPaths.Clean(); c.searchPaths = nil })

	if searchDirSpec != "" {
		for _, dir := range strings.Split(searchDirSpec, string(os.PathListSeparator)) {
			if err := c.SetSearchDir(dir); err != nil {
				return fail(err)
			}
		}
	}

	c.modules = objset.New[*yangmod.Module]()
	c.moduleSetID = 1
	return c, nil
}

// Dict returns the context-owned dictionary. Its lifetime equals the
// context's; interned IDs become invalid at Destroy.
func (c *Context) Dict() *dict.Dict {
	if c == nil {
		return nil
	}
	return c.dict
}

// Diagnostics returns the context-owned diagnostic registry.
func (c *Context) Diagnostics() *diag.Registry {
	if c == nil {
		return nil
	}
	return c.diags
}

// Destroy tears the context down: the module inventory from the end
// (invoking cleanup, when non-nil, on each module before removal), then the
// search-path set, then the diagnostic registry, then the dictionary.
//
// A panicking cleanup hook is swallowed so teardown always completes.
// Destroy tolerates a partially constructed context, missing substructures,
// and repeated invocation.
func (c *Context) Destroy(cleanup yangmod.Cleanup) {
	if c == nil || c.destroyed {
		return
	}

	if c.modules != nil {
		for c.modules.Len() > 0 {
			last := c.modules.Len() - 1
			m, err := c.modules.At(last)
			if err == nil && cleanup != nil {
				c.invokeCleanup(cleanup, m)
			}
			_ = c.modules.RemoveAt(last)
		}
		c.modules = nil
	}

	if c.searchPaths != nil {
		_ = c.UnsetSearchDirs(-1)
		c.searchPaths = nil
	}

	if c.diags != nil {
		c.diags.Drain()
		c.diags = nil
	}

	if c.dict != nil {
		c.dict.Clean()
		c.dict = nil
	}

	c.destroyed = true
}

// invokeCleanup shields teardown from a faulting hook.
func (c *Context) invokeCleanup(cleanup yangmod.Cleanup, m *yangmod.Module) {
	defer func() {
		// Teardown must always complete; a hook fault is not propagated.
		_ = recover()
	}()
	cleanup(m)
}
