// SPDX-License-Identifier: MPL-2.0

// Package diag provides the per-caller diagnostic channels owned by a context.
//
// The registry replaces an implicit thread-local association with an explicit
// mapping from caller handles to channels: every caller that wants its own
// diagnostic stream requests a Handle once and passes it back on Channel.
// Channels are created lazily and live until the registry is drained during
// context teardown. Distinct handles never share a channel, so concurrent
// callers need no synchronization between each other for diagnostics.
package diag
