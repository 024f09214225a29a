// SPDX-License-Identifier: MPL-2.0

package yangctx

// Option is a bitmask of independent context behavior flags. Options combine
// with bitwise OR; set and unset are idempotent per bit.
type Option uint32

const (
	// DisableSearchDirs makes module resolution ignore the configured
	// search-path set entirely.
	DisableSearchDirs Option = 1 << iota
	// DisableSearchDirCwd disables the current-working-directory fallback
	// when resolving module locations.
	DisableSearchDirCwd
	// PreferSearchDirs searches configured directories before any implicit
	// or default locations.
	PreferSearchDirs
	// AllImplemented marks every loaded module as implemented regardless of
	// its own declaration.
	AllImplemented
	// Trusted relaxes validation trust boundaries for externally loaded
	// content.
	Trusted
)

// SetOptions sets every bit of opts in the context's option mask. Safe on a
// nil context; never fails.
func (c *Context) SetOptions(opts Option) {
	if c == nil {
		return
	}
	c.opts |= opts
}

// UnsetOptions clears every bit of opts in the context's option mask,
// leaving other bits untouched. Safe on a nil context; never fails.
func (c *Context) UnsetOptions(opts Option) {
	if c == nil {
		return
	}
	c.opts &^= opts
}

// Options returns the full option mask. Safe on a nil context.
func (c *Context) Options() Option {
	if c == nil {
		return 0
	}
	return c.opts
}
