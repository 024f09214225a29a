// SPDX-License-Identifier: MPL-2.0

// Package yangctx provides the library-instance context: the single owner of
// search directories, behavior options, the loaded-module inventory, the
// string-interning dictionary, and the diagnostic registry. Every other
// subsystem attaches to a Context.
//
// A Context moves through four states: uninitialized, constructing, ready,
// destroyed. New either returns a ready context or fails atomically — any
// resources acquired before the failing step are released in reverse order
// and no partial context is ever observable. Destroy moves a ready context to
// destroyed; no operation is valid afterwards.
//
// Except for the per-handle diagnostic channels, a Context performs no
// internal locking. Concurrent mutation of the same context's configuration
// or module inventory without external synchronization is undefined; the
// contract is single-writer-or-externally-synchronized and it is the
// caller's obligation.
package yangctx
