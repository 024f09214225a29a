// SPDX-License-Identifier: MPL-2.0

package diag

// Channel is an ordered queue of diagnostics belonging to one handle.
// It accumulates detail for the owner's most recent operations and must be
// explicitly cleared by that owner. A channel is only ever touched by the
// caller holding its handle, so it needs no internal locking.
type Channel struct {
	records []Diagnostic
}

// Report appends d to the channel.
func (c *Channel) Report(d Diagnostic) {
	c.records = append(c.records, d)
}

// Records returns a copy of the accumulated diagnostics in report order.
func (c *Channel) Records() []Diagnostic {
	out := make([]Diagnostic, len(c.records))
	copy(out, c.records)
	return out
}

// Last returns the most recently reported diagnostic, or false when the
// channel is empty.
func (c *Channel) Last() (Diagnostic, bool) {
	if len(c.records) == 0 {
		return Diagnostic{}, false
	}
	return c.records[len(c.records)-1], true
}

// Len returns the number of accumulated diagnostics.
func (c *Channel) Len() int {
	return len(c.records)
}

// HasErrors reports whether any accumulated diagnostic has error severity.
func (c *Channel) HasErrors() bool {
	for i := range c.records {
		if c.records[i].Severity == SeverityError {
			return true
		}
	}
	return false
}

// Clear drops all accumulated diagnostics, keeping storage for reuse.
func (c *Channel) Clear() {
	c.records = c.records[:0]
}
