// Package forms declares the shape and constraints of untrusted form input
// and converts validated string fields into domain-typed values. It is a leaf
// package: it performs no I/O and holds no state, so every rule in it is
// directly unit-testable.
package forms

import "net/url"

// Values is a raw mapping of form field name to submitted string value.
//
// The zero-value lookup distinguishes "field absent" from "field present but
// empty": validation messages depend on that distinction, so handlers must
// build Values with FromURLValues (or set keys explicitly) rather than
// treating missing keys as "".
type Values map[string]string

// FromURLValues builds Values from a parsed form body. Only fields that were
// actually submitted appear as keys; repeated fields keep their first value.
func FromURLValues(src url.Values) Values {
	v := make(Values, len(src))
	for key, vals := range src {
		if len(vals) > 0 {
			v[key] = vals[0]
		}
	}
	return v
}

// Get returns the submitted value for key and whether the field was present
// at all in the submission.
func (v Values) Get(key string) (string, bool) {
	s, ok := v[key]
	return s, ok
}
