// SPDX-License-Identifier: MPL-2.0

// Package objset provides a generic, order-preserving collection of borrowed
// references, usable either as a deduplicating set or as an unchecked list.
//
// Entries are borrowed: the set never owns the referenced objects, and
// destroying or cleaning a set never touches them. Until the first removal,
// the index of an element equals its insertion order; any removal swaps the
// last element into the vacated slot, so callers must not rely on insertion
// order after removing anything. This is an explicit contract, not an
// implementation accident.
package objset
