// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math"

// Result is the (ptr, status) pair every parse returns (spec.md §4.5),
// named after chfloat.h's from_chars_result. The parsed value is not
// part of it: each parse function returns the value alongside the
// Result, so callers don't need an extra out-parameter.
type Result struct {
	// Ptr is the count of input bytes consumed: one-past-the-last
	// accepted byte, measured from the start of the slice passed in
	// (not from any earlier buffer the caller may have sliced from).
	Ptr int
	// Status is StatusOK, StatusInvalid, or StatusRange.
	Status Status
}

const (
	qnan64 = 0x7FF8000000000000
	inf64  = 0x7FF0000000000000

	qnan32 = 0x7FC00000
	inf32  = 0x7F800000
)

// ParseFloat64 converts the ASCII decimal literal at the start of s
// into a float64 per spec.md's grammar (§6), returning the value and a
// Result describing how much of s was consumed and with what status.
// It never allocates and never panics on malformed input.
//
// This is spec.md §4.4's dispatcher for binary64, following
// chfloat.h's parse_fp_double: sign, special tokens, the bounded
// scanner, then fast paths before falling back to the pow5-table
// builder (builder.go).
func ParseFloat64(s []byte, opts ParseOptions) (float64, Result) {
	start, p := 0, 0
	if opts.TrimSpace {
		p = skipLeadingASCIISpace(s, p)
		start = p
	}

	neg, p := scanSign(s, p)

	if tok, ok := matchSpecialToken(s, p); ok {
		bits := signBit64(neg) | specialBits64(tok)
		return bitsToFloat64(bits), Result{Ptr: p + specialTokenLen(tok), Status: StatusOK}
	}

	np, mant, exp10, exact, any, emptyFrac := scanBounded(s, p, 19)
	if !any || (opts.StrictGrammar && emptyFrac) {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}
	p = np

	if mant == 0 {
		return signedZero64(neg), Result{Ptr: p, Status: StatusOK}
	}

	// shortLiteralFastPath64's guard is a strict subset of
	// exactFastPath64's (exp10 in {-1,-2} and mant <= 1e8 both satisfy
	// exact && mant <= 2**53-1 && exp10 in [-15,15]), so it must be
	// tried first or it would never fire.
	if v, ok := shortLiteralFastPath64(mant, exp10, exact); ok {
		return signedValue64(v, neg), Result{Ptr: p, Status: StatusOK}
	}
	if v, ok := exactFastPath64(mant, exp10, exact); ok {
		return signedValue64(v, neg), Result{Ptr: p, Status: StatusOK}
	}

	if exp10 < pow5MinQ || exp10 > pow5MaxQ {
		if exp10 > pow5MaxQ {
			return bitsToFloat64(signBit64(neg) | inf64), Result{Ptr: p, Status: StatusRange}
		}
		return signedZero64(neg), Result{Ptr: p, Status: StatusRange}
	}

	var mb uint64
	var be int32
	if exp10 == 0 {
		mb, be = buildExactInt(mant, binary64Format)
	} else {
		var isInf bool
		mb, be, isInf = buildBinary(exp10, mant, binary64Format)
		if isInf {
			return bitsToFloat64(signBit64(neg) | inf64), Result{Ptr: p, Status: StatusRange}
		}
	}
	bits := signBit64(neg) | uint64(be)<<binary64Format.fracBits | mb
	return bitsToFloat64(bits), Result{Ptr: p, Status: StatusOK}
}

// ParseFloat32 is ParseFloat64's binary32 counterpart (spec.md §4.4's
// "analogously binary32 with its 10-digit bounded scanner"), following
// chfloat.h's parse_fp_float.
func ParseFloat32(s []byte, opts ParseOptions) (float32, Result) {
	start, p := 0, 0
	if opts.TrimSpace {
		p = skipLeadingASCIISpace(s, p)
		start = p
	}

	neg, p := scanSign(s, p)

	if tok, ok := matchSpecialToken(s, p); ok {
		bits := signBit32(neg) | specialBits32(tok)
		return bitsToFloat32(bits), Result{Ptr: p + specialTokenLen(tok), Status: StatusOK}
	}

	np, mant, exp10, exact, any, emptyFrac := scanBounded(s, p, 10)
	if !any || (opts.StrictGrammar && emptyFrac) {
		return 0, Result{Ptr: start, Status: StatusInvalid}
	}
	p = np

	if mant == 0 {
		return signedZero32(neg), Result{Ptr: p, Status: StatusOK}
	}

	if v, ok := exactFastPath32(mant, exp10, exact); ok {
		return signedValue32(v, neg), Result{Ptr: p, Status: StatusOK}
	}

	if exp10 < -64 || exp10 > 38 {
		if exp10 > 38 {
			return bitsToFloat32(signBit32(neg) | inf32), Result{Ptr: p, Status: StatusRange}
		}
		return signedZero32(neg), Result{Ptr: p, Status: StatusRange}
	}

	var mb uint64
	var be int32
	if exp10 == 0 {
		mb, be = buildExactInt(mant, binary32Format)
	} else {
		var isInf bool
		mb, be, isInf = buildBinary(exp10, mant, binary32Format)
		if isInf {
			return bitsToFloat32(signBit32(neg) | inf32), Result{Ptr: p, Status: StatusRange}
		}
	}
	bits := signBit32(neg) | uint32(be)<<binary32Format.fracBits | uint32(mb)
	return bitsToFloat32(bits), Result{Ptr: p, Status: StatusOK}
}

// shortLiteralFastPath64 implements spec.md §4.4 step 6: literals with
// one or two fractional digits (exp10 in {-1,-2}) and a small mantissa
// can be split into an integer quotient and a remainder looked up in a
// table of exactly-representable k/10 or k/100 values, instead of
// going through exactFastPath64's power-of-10 multiply/divide. Its
// guard is a strict subset of exactFastPath64's, so the dispatcher
// tries this one first (see ParseFloat64).
func shortLiteralFastPath64(mant uint64, exp10 int32, exact bool) (float64, bool) {
	if !exact || mant > 1e8 {
		return 0, false
	}
	switch exp10 {
	case -1:
		q, r := mant/10, mant%10
		return float64(q) + frac10[r], true
	case -2:
		q, r := mant/100, mant%100
		return float64(q) + frac100[r], true
	}
	return 0, false
}

// exactFastPath64 implements spec.md §4.4 step 5: when the scanner
// reported an exact (no digit dropped) mantissa that fits in 53 bits
// and a small exponent, IEEE multiplication/division alone is
// correctly rounded, so there is no need to go through the pow5-table
// builder at all.
func exactFastPath64(mant uint64, exp10 int32, exact bool) (float64, bool) {
	if !exact || mant > 1<<53-1 || exp10 < -15 || exp10 > 15 {
		return 0, false
	}
	v := float64(mant)
	if exp10 >= 0 {
		v *= pow10f64[exp10]
	} else {
		v /= pow10f64[-exp10]
	}
	return v, true
}

// exactFastPath32 implements spec.md §4.4's binary32 fast path: when
// exact and exp10 is within the wide [-38,38] table range, compute the
// value in binary64 (itself correctly rounded, by IEEE semantics) and
// narrow to binary32 with correct half-to-even rounding.
func exactFastPath32(mant uint64, exp10 int32, exact bool) (float32, bool) {
	if !exact || exp10 < pow10dMinE || exp10 > pow10dMaxE {
		return 0, false
	}
	v := float64(mant) * pow10dTable[exp10-pow10dMinE]
	return float32(v), true
}

func signBit64(neg bool) uint64 {
	if neg {
		return 1 << 63
	}
	return 0
}

func signBit32(neg bool) uint32 {
	if neg {
		return 1 << 31
	}
	return 0
}

func signedZero64(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedZero32(neg bool) float32 {
	if neg {
		return float32(math.Copysign(0, -1))
	}
	return 0
}

func signedValue64(v float64, neg bool) float64 {
	if neg {
		return -v
	}
	return v
}

func signedValue32(v float32, neg bool) float32 {
	if neg {
		return -v
	}
	return v
}

func scanSign(s []byte, p int) (neg bool, np int) {
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		return s[p] == '-', p + 1
	}
	return false, p
}

type specialToken int

const (
	specialNone specialToken = iota
	specialNaN
	specialInf
	specialInfinity
)

func specialTokenLen(t specialToken) int {
	switch t {
	case specialNaN, specialInf:
		return 3
	case specialInfinity:
		return 8
	}
	return 0
}

// matchSpecialToken recognises "nan", "inf", "infinity" at s[p:],
// case-insensitively, per spec.md §6. "infinity" is only matched in
// full; "inf" alone is also accepted, matching chfloat.h's token
// matching (ascii_ieq3 / ascii_ieq8).
func matchSpecialToken(s []byte, p int) (specialToken, bool) {
	if asciiIEq(s, p, "nan") {
		return specialNaN, true
	}
	if asciiIEq(s, p, "infinity") {
		return specialInfinity, true
	}
	if asciiIEq(s, p, "inf") {
		return specialInf, true
	}
	return specialNone, false
}

func asciiIEq(s []byte, p int, lit string) bool {
	if p+len(lit) > len(s) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		c := s[p+i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lit[i] {
			return false
		}
	}
	return true
}

func specialBits64(t specialToken) uint64 {
	if t == specialNaN {
		return qnan64
	}
	return inf64
}

func specialBits32(t specialToken) uint32 {
	if t == specialNaN {
		return qnan32
	}
	return inf32
}
