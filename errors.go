// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// Status reports the outcome of a parse, mirroring chfloat.h's errc
// enum (spec.md §7) rather than Go's usual single error value: a
// parse that consumes no input is a different outcome from one that
// consumes input but overflows the target format, and callers branch
// on which happened.
type Status int

//go:generate stringer -type=Status

const (
	// StatusOK reports a successful parse; Result.Ptr advanced by at
	// least one byte.
	StatusOK Status = iota
	// StatusInvalid reports no valid prefix was found; the returned
	// value is zero and Result.Ptr is 0, or with ParseOptions.TrimSpace
	// the index of the first byte after the leading whitespace.
	StatusInvalid
	// StatusRange reports a valid number outside the representable
	// range of the target format; the value is clamped to a signed
	// infinity (overflow) or signed zero (underflow). Underflow is
	// reported only for a decimal exponent below -342 (binary64) or
	// -64 (binary32); a smaller value with an exponent at or above
	// that bound that rounds to zero is returned as a signed zero with
	// StatusOK.
	StatusRange
)
