// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// ParseOptions configures the one behavioural knob spec.md's Open
// Question leaves to implementers, plus an opt-in ASCII
// whitespace-trimming policy adapted from chfloat.h's from_chars_ws
// variants. It plays the same role the teacher's context.Context plays
// for rounding mode and precision (context/context.go), scaled down to
// this package's single grammar knob.
//
// The zero value reproduces spec.md's default grammar exactly: both
// "1." and "1.e5" parse as valid numbers equal to 1 and 1e5.
type ParseOptions struct {
	// StrictGrammar rejects a '.' that is not followed by at least one
	// fractional digit before any exponent tag - i.e. it makes "1."
	// and "1.e5" invalid, while "1.0" and "1.0e5" remain valid. This
	// is the parameterisation point spec.md's Open Question asks for.
	StrictGrammar bool

	// TrimSpace skips leading ASCII whitespace (space, tab, newline,
	// carriage return, form feed, vertical tab) before parsing,
	// matching chfloat.h's is_space_ascii / from_chars_ws. Trailing
	// garbage is still accepted per spec.md §6; only leading space is
	// affected.
	TrimSpace bool
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func skipLeadingASCIISpace(s []byte, p int) int {
	for p < len(s) && isASCIISpace(s[p]) {
		p++
	}
	return p
}
