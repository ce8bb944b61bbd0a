// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// decimalScan is the bounded significand decimal scanner (component 3):
// it reads an unsigned decimal literal's digits (no sign, that is the
// dispatcher's job) and returns a truncated (mant, exp10) pair bounded
// to sigLimit significant digits, with enough sticky-bit state to
// round-to-nearest-even exactly once.
//
// This mirrors the teacher's dec.scan (dec_conv.go) in spirit — a
// single forward pass over a byte cursor building up a bounded integer
// — but dec.scan accumulates into an arbitrary-length base-10**19 word
// slice for an unbounded-precision Decimal, where this scan is capped
// at a single uint64 mantissa by construction, per spec.
type decimalScan struct {
	mant        uint64
	exp10       int32
	sig         int
	any         bool
	dropped     bool
	droppedFirst uint8
	droppedTail bool
}

// digitVal reports the value of an ASCII decimal digit byte, or ok ==
// false if c is not '0'..'9'. Ported from chfloat.h's parse_digit.
func digitVal(c byte) (v uint8, ok bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return c - '0', true
}

// scanDigitRunFast bulk-scans a run of ASCII digits starting at s[p],
// in 8-byte blocks validated by the SWAR all8Digits check, falling back
// to one byte at a time for the final partial block and whenever a
// block does not validate. It returns the new cursor, the count of
// digits consumed, and whether any of them was nonzero. This is
// float_parse.h's scan_digits_fast.
func scanDigitRunFast(s []byte, p int) (np, n int, nz bool) {
	for p+8 <= len(s) {
		w := loadU64Unaligned(s[p:])
		if !all8Digits(w) {
			break
		}
		if any8NonzeroDigit(w) {
			nz = true
		}
		p += 8
		n += 8
	}
	for p < len(s) {
		d, ok := digitVal(s[p])
		if !ok {
			break
		}
		if d != 0 {
			nz = true
		}
		p++
		n++
	}
	return p, n, nz
}

// scanSigDigits runs the significant-digit-accumulation loop shared by
// the integer and fractional runs: absorb digits into mant while sig <
// sigLimit, treating leading zeros specially (see SPEC_FULL.md's
// "Leading-zero fix" — a digit observed while mant is still exactly
// zero does not consume the significant-digit budget), then on the
// first digit that would overflow the budget mark the drop and bulk
// skip the remainder.
//
// isFraction controls the exp10 bookkeeping: integer-run drops pad with
// implicit trailing zeros (exp10 += 1 per dropped digit, including the
// bulk-skipped remainder); fraction-run *absorbed* digits shift the
// decimal point left (exp10 -= 1 each); fraction-run *dropped* digits
// must not additionally touch exp10 (see SPEC_FULL.md's "Dropped-
// fraction exp10 fix" — they are less significant than the retained
// mantissa and carry no positional weight of their own).
func (d *decimalScan) scanSigDigits(s []byte, p int, sigLimit int, isFraction bool) int {
	for p < len(s) {
		dv, ok := digitVal(s[p])
		if !ok {
			break
		}
		d.any = true
		if d.mant == 0 && dv == 0 {
			if isFraction {
				d.exp10--
			}
			p++
			continue
		}
		if d.sig < sigLimit {
			d.mant = d.mant*10 + uint64(dv)
			d.sig++
			if isFraction {
				d.exp10--
			}
			p++
			continue
		}
		// digit dv at s[p] does not fit in the window.
		if !d.dropped {
			d.dropped = true
			d.droppedFirst = dv
		} else {
			d.droppedTail = d.droppedTail || dv != 0
		}
		if !isFraction {
			d.exp10++
		}
		p++
		np, n, nz := scanDigitRunFast(s, p)
		if !isFraction {
			d.exp10 += int32(n)
		}
		d.droppedTail = d.droppedTail || nz
		p = np
		break
	}
	return p
}

// roundTruncated applies the single round-to-nearest-even step over the
// dropped tail (spec.md §4.1 step 6).
func (d *decimalScan) roundTruncated(sigLimit int) {
	if !d.dropped {
		return
	}
	roundUp := d.droppedFirst > 5 || (d.droppedFirst == 5 && (d.droppedTail || d.mant&1 != 0))
	if !roundUp {
		return
	}
	d.mant++
	if d.mant == pow10u64(sigLimit) {
		d.mant = pow10u64(sigLimit - 1)
		d.exp10++
	}
}

// scanExponent reads an optional 'e'/'E' exponent tag per spec.md
// §4.1 step 4: optional sign, then 1 or more digits; the accumulator
// stops taking digits once it reaches 10000 (so it never exceeds
// 99999), since anything that large is already out of range.
// If 'e' is not followed by at least one digit, the cursor rolls back
// to just before 'e' and no exponent is applied.
func scanExponent(s []byte, p int) (np int, exp int32, ok bool) {
	if p >= len(s) || (s[p] != 'e' && s[p] != 'E') {
		return p, 0, false
	}
	start := p
	p++
	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
	}
	if p >= len(s) {
		return start, 0, false
	}
	if _, digOk := digitVal(s[p]); !digOk {
		return start, 0, false
	}
	e := 0
	for p < len(s) {
		dv, digOk := digitVal(s[p])
		if !digOk {
			break
		}
		if e < 10000 {
			e = e*10 + int(dv)
		}
		p++
	}
	if neg {
		e = -e
	}
	return p, int32(e), true
}

func pow10u64(n int) uint64 {
	return pow10Table[n]
}

// scanBounded implements spec.md §4.1 end to end for a given
// significant-digit budget (19 for binary64, 10 for binary32): sign is
// assumed already consumed by the caller. It returns the cursor
// position one past the last consumed byte, whether any digit was
// seen at all (status=invalid iff not any), and whether a '.' was
// seen with no fractional digit following it before any exponent tag
// (for ParseOptions.StrictGrammar - spec.md's Open Question).
func scanBounded(s []byte, p int, sigLimit int) (np int, mant uint64, exp10 int32, exact bool, any bool, emptyFrac bool) {
	var d decimalScan
	p = d.scanSigDigits(s, p, sigLimit, false)
	if p < len(s) && s[p] == '.' {
		p++
		anyBeforeFrac := d.any
		fracStart := p
		p = d.scanSigDigits(s, p, sigLimit, true)
		emptyFrac = anyBeforeFrac && p == fracStart
	}
	if !d.any {
		return p, 0, 0, true, false, emptyFrac
	}
	if np, e, ok := scanExponent(s, p); ok {
		p = np
		d.exp10 += e
	}
	d.roundTruncated(sigLimit)
	return p, d.mant, d.exp10, !d.dropped, true, emptyFrac
}
