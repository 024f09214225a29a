// SPDX-License-Identifier: MPL-2.0

// Package dict provides the string-interning dictionary owned by a context.
//
// Interned strings live exactly as long as the dictionary. Schema and data
// trees store IDs instead of repeated string values; Lookup resolves an ID
// back to its string. The dictionary is not internally synchronized — it
// follows the context's single-writer-or-externally-synchronized contract.
package dict

import "slices"

// ID identifies an interned string within one dictionary.
type ID uint32

// NoID is the reserved ID of the empty string.
const NoID ID = 0

// Dict interns strings and resolves them back by ID.
type Dict struct {
	byID  []string
	index map[string]ID
}

// New creates an empty dictionary. The empty string is pre-interned as NoID.
func New() *Dict {
	return &Dict{
		byID:  []string{""},
		index: map[string]ID{"": NoID},
	}
}

// Insert interns s and returns its ID. Inserting an already-interned string
// returns the existing ID.
func (d *Dict) Insert(s string) ID {
	if id, ok := d.index[s]; ok {
		return id
	}
	// Copy so the entry does not pin the caller's backing buffer.
	cpy := string([]byte(s))
	id := ID(len(d.byID))
	d.byID = append(d.byID, cpy)
	d.index[cpy] = id
	return id
}

// InsertBytes interns b as a string and returns its ID.
func (d *Dict) InsertBytes(b []byte) ID {
	return d.Insert(string(b))
}

// Lookup resolves id to its string. Returns false when id was never issued
// by this dictionary.
func (d *Dict) Lookup(id ID) (string, bool) {
	if !d.Has(id) {
		return "", false
	}
	return d.byID[id], true
}

// MustLookup resolves id to its string and panics on an unknown ID.
// Use only for IDs obtained from this dictionary's Insert.
func (d *Dict) MustLookup(id ID) string {
	s, ok := d.Lookup(id)
	if !ok {
		panic("dict: lookup of unknown string ID")
	}
	return s
}

// Has reports whether id was issued by this dictionary.
func (d *Dict) Has(id ID) bool {
	return int(id) < len(d.byID)
}

// Len returns the number of interned strings, counting the reserved
// empty-string entry. Never less than 1.
func (d *Dict) Len() int {
	return len(d.byID)
}

// Snapshot returns a copy of all interned strings in ID order.
func (d *Dict) Snapshot() []string {
	return slices.Clone(d.byID)
}

// Clean resets the dictionary to its initial state, releasing all interned
// strings. Previously issued IDs become invalid. Called during context
// teardown; safe to call on an already-clean dictionary.
func (d *Dict) Clean() {
	d.byID = []string{""}
	d.index = map[string]ID{"": NoID}
}
