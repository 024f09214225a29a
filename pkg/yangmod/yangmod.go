// SPDX-License-Identifier: MPL-2.0

// Package yangmod defines the module handles held in a context's inventory
// and the boundary to the external module-loading collaborator.
//
// This package deliberately implements no parsing or compilation: modules are
// produced by a Loader, stored by the context, and released through a Cleanup
// hook during context teardown.
package yangmod

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModule is the sentinel error wrapped by InvalidModuleError.
	ErrInvalidModule = errors.New("invalid module")
)

type (
	// Module is one loaded schema module as held by a context. The compiled
	// schema tree is opaque to the context core; only the loader that
	// produced Node knows its concrete type.
	Module struct {
		// Name is the module name.
		Name string
		// Revision is the module revision date (YYYY-MM-DD), possibly empty.
		Revision string
		// Namespace is the module namespace URI.
		Namespace string
		// Filename is the path the module was loaded from, empty for
		// built-in modules.
		Filename string
		// Implemented marks the module as implemented rather than
		// import-only. A context created with the all-implemented option
		// forces this to true for every loaded module.
		Implemented bool
		// Node is the loader-owned compiled tree handle.
		Node any
	}

	// Cleanup is the caller-supplied release notification invoked once per
	// retained module during context teardown. Implementations release any
	// library-specific resources attached to m.Node; the hook has no return
	// value and its failures never interrupt teardown. Callers needing
	// extra state close over it.
	Cleanup func(m *Module)

	// Loader is the out-of-scope collaborator that parses and compiles
	// schema modules into a context's inventory. Implementations consume
	// the context's search-path set, dictionary, and option flags, and bump
	// the module-set version counter on every inventory mutation.
	Loader interface {
		// Load locates, parses, and compiles the named module (empty
		// revision means latest) and registers it with the context it was
		// created for.
		Load(name, revision string) (*Module, error)
	}

	// InvalidModuleError is returned when a module descriptor is missing
	// required fields. It wraps ErrInvalidModule for errors.Is() compatibility.
	InvalidModuleError struct {
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidModuleError) Error() string {
	return fmt.Sprintf("invalid module: %s", e.Reason)
}

// Unwrap returns ErrInvalidModule for errors.Is() compatibility.
func (e *InvalidModuleError) Unwrap() error {
	return ErrInvalidModule
}

// IsValid reports whether the module carries the fields the inventory
// requires. A nil module is invalid.
func (m *Module) IsValid() (bool, []error) {
	if m == nil {
		return false, []error{&InvalidModuleError{Reason: "nil module"}}
	}
	var errs []error
	if m.Name == "" {
		errs = append(errs, &InvalidModuleError{Reason: "empty name"})
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// String returns "name@revision" or just the name when no revision is set.
func (m *Module) String() string {
	if m.Revision == "" {
		return m.Name
	}
	return m.Name + "@" + m.Revision
}

// BuiltinModules returns descriptors for the modules every context is
// expected to carry once a loader is attached. The entries are descriptors
// only; loading them is the loader's job. ietf-datastores and
// ietf-yang-library must stay last, in this order.
func BuiltinModules() []Module {
	return []Module{
		{Name: "ietf-yang-metadata", Revision: "2016-08-05"},
		{Name: "yang", Revision: "2017-02-20", Implemented: true},
		{Name: "ietf-inet-types", Revision: "2013-07-15"},
		{Name: "ietf-yang-types", Revision: "2013-07-15"},
		{Name: "ietf-datastores", Revision: "2017-08-17"},
		{Name: "ietf-yang-library", Revision: "2018-01-17", Implemented: true},
	}
}
