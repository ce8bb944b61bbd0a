// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math"

// ParseUint parses an unsigned integer literal in the given base
// (2..36) at the start of s, reporting overflow via StatusRange rather
// than a Go error, matching this package's status-based contract
// (spec.md §7). It is a SUPPLEMENTED FEATURE (see SPEC_FULL.md):
// chfloat.h treats integer parsing as a peer sibling of from_chars
// rather than a separate library, so this module reinstates it as a
// peer of ParseFloat64/ParseFloat32.
//
// Grounded directly on chfloat.h's parse_ull_any_base: the overflow
// check is done by division bound (value > (max-digit)/base) before
// multiplying, rather than after, so it never overflows a uint64
// itself while checking for overflow.
func ParseUint(s []byte, base int, opts ParseOptions) (uint64, Result) {
	start, p := 0, 0
	if opts.TrimSpace {
		p = skipLeadingASCIISpace(s, p)
		start = p
	}
	if base < 2 || base > 36 {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}

	var value uint64
	any := false
	overflow := false
	ub := uint64(base)

	for p < len(s) {
		dv, ok := digitValBase(s[p], base)
		if !ok {
			break
		}
		any = true
		if !overflow && value > (math.MaxUint64-uint64(dv))/ub {
			overflow = true
		}
		if !overflow {
			value = value*ub + uint64(dv)
		}
		p++
	}

	if !any {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}
	if overflow {
		return math.MaxUint64, Result{Ptr: p, Status: StatusRange}
	}
	return value, Result{Ptr: p, Status: StatusOK}
}

// ParseInt parses a signed integer literal (optional leading '+'/'-')
// in the given base at the start of s. It follows chfloat.h's signed
// from_chars: the magnitude is parsed unsigned first via ParseUint's
// logic, then range-checked against int64's asymmetric two's-complement
// range, allowing math.MinInt64's magnitude (which has no positive
// int64 counterpart) as a special case.
func ParseInt(s []byte, base int, opts ParseOptions) (int64, Result) {
	start, p := 0, 0
	if opts.TrimSpace {
		p = skipLeadingASCIISpace(s, p)
		start = p
	}
	if base < 2 || base > 36 {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}

	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
	}

	mag, r := ParseUint(s[p:], base, ParseOptions{})
	if r.Status == StatusInvalid {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}
	p += r.Ptr

	const posMax = uint64(math.MaxInt64)
	const negMax = posMax + 1

	if r.Status == StatusRange {
		return 0, Result{Ptr: p, Status: StatusRange}
	}
	if !neg {
		if mag > posMax {
			return 0, Result{Ptr: p, Status: StatusRange}
		}
		return int64(mag), Result{Ptr: p, Status: StatusOK}
	}
	if mag > negMax {
		return 0, Result{Ptr: p, Status: StatusRange}
	}
	if mag == negMax {
		return math.MinInt64, Result{Ptr: p, Status: StatusOK}
	}
	return -int64(mag), Result{Ptr: p, Status: StatusOK}
}

// digitValBase reports the value of a digit character in the given
// base (2..36, letters case-insensitive beyond base 10), or ok ==
// false if c is not a valid digit in that base. Extends digitVal
// (scanner.go) to arbitrary bases, per chfloat.h's digit_value.
func digitValBase(c byte, base int) (v int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = 10 + int(c-'a')
	case c >= 'A' && c <= 'Z':
		v = 10 + int(c-'A')
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}
