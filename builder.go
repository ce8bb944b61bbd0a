// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// format bundles the per-target-format constants build_binary_q is
// parameterised by in spec.md §4.2: fraction width, exponent bias, the
// maximum (all-ones) biased exponent, and the narrow "ambiguous
// halfway" q window described in §4.2 step 9.
type format struct {
	fracBits    uint
	bias        int32
	eMax        int32
	ambigMinQ   int32
	ambigMaxQ   int32
}

var binary64Format = format{fracBits: 52, bias: 1023, eMax: 2047, ambigMinQ: -4, ambigMaxQ: 23}
var binary32Format = format{fracBits: 23, bias: 127, eMax: 255, ambigMinQ: -17, ambigMaxQ: 10}

// approxLog2Pow5 is the 16.16-bit rational approximation of
// floor(log2(10)*q) + 63 from spec.md §4.2 step 7: 217706/65536 is
// log2(10), i.e. log2(5) for the 5**q table factor plus 1 for the 2**q
// factor of 10**q, which the builder folds into the binary exponent
// here. It is exact (never off by one from the true floor) across the
// full supported q range, which is what lets the builder use it
// instead of a real logarithm.
func approxLog2Pow5(q int32) int32 {
	return int32((int64(152170+65536)*int64(q))>>16) + 63
}

// buildExactInt implements spec.md §4.3: the exp10 == 0 path, where the
// decimal value is the exact unsigned integer w (w <= 10**19-1, so it
// always fits; no infinity/overflow check is needed here).
func buildExactInt(w uint64, f format) (mant uint64, exp2 int32) {
	e2 := int32(63 - clz64(w))
	if e2 <= int32(f.fracBits) {
		m := w << (f.fracBits - uint(e2))
		return m & (1<<f.fracBits - 1), e2 + f.bias
	}
	shift := uint(e2) - f.fracBits
	m := w >> shift
	rem := w & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rem > halfway || (rem == halfway && m&1 != 0) {
		m++
		if m == 1<<(f.fracBits+1) {
			m >>= 1
			e2++
		}
	}
	return m & (1<<f.fracBits - 1), e2 + f.bias
}

// buildBinary implements spec.md §4.2 steps 2-11: given a nonzero,
// truncated decimal mantissa w and its power-of-ten scale q10 != 0, it
// assembles the correctly-rounded binary mantissa and biased exponent
// via the pow5Table fixed-point approximation. q10 must lie in
// [pow5MinQ, pow5MaxQ]; callers range-check it first.
//
// isInf reports that the magnitude overflowed the target format's
// range (e2 reached f.eMax); mant and exp2 are then the encoded
// infinity's fields.
func buildBinary(q10 int32, w uint64, f format) (mant uint64, exp2 int32, isInf bool) {
	z := clz64(w)
	wnorm := w << uint(z)

	c := pow5Table[int(q10)-pow5MinQ]
	phi, plo := mul64x64To128(wnorm, c.hi)

	truncMaskBits := 64 - f.fracBits - 3
	truncMask := uint64(1)<<truncMaskBits - 1
	if phi&truncMask == truncMask {
		p2hi, _ := mul64x64To128(wnorm, c.lo)
		newLo := plo + p2hi
		var carry uint64
		if newLo < plo {
			carry = 1
		}
		plo = newLo
		phi += carry
	}

	upper := int32(phi >> 63)
	shift := uint(upper) + 64 - f.fracBits - 3
	m := phi >> shift
	e2 := approxLog2Pow5(q10) + upper - int32(z) + f.bias

	if e2 <= 0 {
		rshift := uint(-e2 + 1)
		if rshift >= 64 {
			return 0, 0, false
		}
		m >>= rshift
		m += m & 1
		m >>= 1
		var be int32
		if m >= 1<<f.fracBits {
			be = 1
		}
		return m & (1<<f.fracBits - 1), be, false
	}

	if m&3 == 1 {
		if q10 >= f.ambigMinQ && q10 <= f.ambigMaxQ && plo <= 1 {
			if (m << shift) == phi {
				m &^= 1
			}
		}
	}

	m += m & 1
	m >>= 1
	if m >= 2<<f.fracBits {
		m = 1 << f.fracBits
		e2++
	}
	m &^= 1 << f.fracBits

	if e2 >= f.eMax {
		return 0, f.eMax, true
	}
	return m, e2, false
}
