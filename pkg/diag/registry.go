// SPDX-License-Identifier: MPL-2.0

package diag

import "sync"

type (
	// Handle identifies one caller's diagnostic channel within a registry.
	// Handles are issued by NewHandle and are meaningless across registries.
	Handle uint64

	// Registry maps caller handles to lazily created channels. It is owned
	// by a context and torn down with it. Handle issuance and channel lookup
	// are safe for concurrent use; the channels themselves are not shared.
	Registry struct {
		mu       sync.Mutex
		next     Handle
		channels map[Handle]*Channel
	}
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[Handle]*Channel)}
}

// NewHandle issues a fresh handle with no channel attached yet.
func (r *Registry) NewHandle() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// Channel returns the channel for h, creating it on first use.
func (r *Registry) Channel(h Handle) *Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[h]
	if !ok {
		ch = &Channel{}
		r.channels[h] = ch
	}
	return ch
}

// Len returns the number of channels created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels)
}

// Drain clears and releases every channel. Handles issued earlier remain
// usable; their channels are simply recreated on next use. Called during
// context teardown; safe to call repeatedly or on an empty registry.
func (r *Registry) Drain() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for h, ch := range r.channels {
		ch.Clear()
		delete(r.channels, h)
	}
}
