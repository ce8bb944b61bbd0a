// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

var scanBoundedTests = []struct {
	in        string
	sigLimit  int
	mant      uint64
	exp10     int32
	exact     bool
	any       bool
	emptyFrac bool
}{
	{"0", 19, 0, 0, true, true, false},
	{"123", 19, 123, 0, true, true, false},
	{"123.456", 19, 123456, -3, true, true, false},
	{"0.001", 19, 1, -3, true, true, false},
	{"100", 19, 100, 0, true, true, false},
	{"1.", 19, 1, 0, true, true, true},
	{"1.e5", 19, 1, 5, true, true, true},
	{".5", 19, 5, -1, true, true, false},
	{"1e5", 19, 1, 5, true, true, false},
	{"1E-5", 19, 1, -5, true, true, false},
	// 20 significant digits, one dropped and rounded away.
	{"12345678901234567895", 19, 1234567890123456790, 1, false, true, false},
	// leading zeros in the fraction must not consume the sig-digit
	// budget: 17 significant digits after the leading zeros.
	{"0.0037440829273285422", 19, 37440829273285422, -19, true, true, false},
	{"abc", 19, 0, 0, true, false, false},
	{"", 19, 0, 0, true, false, false},
}

func TestScanBounded(t *testing.T) {
	for _, tt := range scanBoundedTests {
		t.Run(tt.in, func(t *testing.T) {
			_, mant, exp10, exact, any, emptyFrac := scanBounded([]byte(tt.in), 0, tt.sigLimit)
			if mant != tt.mant || exp10 != tt.exp10 || exact != tt.exact || any != tt.any || emptyFrac != tt.emptyFrac {
				t.Errorf("scanBounded(%q) = (mant=%d exp10=%d exact=%v any=%v emptyFrac=%v); want (mant=%d exp10=%d exact=%v any=%v emptyFrac=%v)",
					tt.in, mant, exp10, exact, any, emptyFrac, tt.mant, tt.exp10, tt.exact, tt.any, tt.emptyFrac)
			}
		})
	}
}

func TestScanBoundedLeadingZeroDoesNotConsumeBudget(t *testing.T) {
	// 19 zeros then 19 significant digits: none of the leading zeros
	// should count against the budget, so all 19 following digits
	// should be retained exactly.
	in := "0000000000000000000.1234567890123456789"
	_, mant, _, exact, _, _ := scanBounded([]byte(in), 0, 19)
	if !exact {
		t.Errorf("scanBounded(%q) exact = false; want true", in)
	}
	if mant != 1234567890123456789 {
		t.Errorf("scanBounded(%q) mant = %d; want 1234567890123456789", in, mant)
	}
}

func TestScanDigitRunFast(t *testing.T) {
	s := []byte("12345678901234567890abc")
	p, n, nz := scanDigitRunFast(s, 0)
	if n != 20 || p != 20 || !nz {
		t.Errorf("scanDigitRunFast = (%d, %d, %v); want (20, 20, true)", p, n, nz)
	}
}

func TestScanDigitRunFastAllZero(t *testing.T) {
	s := []byte("00000000")
	p, n, nz := scanDigitRunFast(s, 0)
	if n != 8 || p != 8 || nz {
		t.Errorf("scanDigitRunFast(all-zero) = (%d, %d, %v); want (8, 8, false)", p, n, nz)
	}
}

func TestScanExponent(t *testing.T) {
	tests := []struct {
		in   string
		np   int
		exp  int32
		ok   bool
	}{
		{"e10", 3, 10, true},
		{"E-10", 4, -10, true},
		{"e+5", 3, 5, true},
		{"e", 0, 0, false},
		{"ex", 0, 0, false},
		{"", 0, 0, false},
		{"x10", 0, 0, false},
	}
	for _, tt := range tests {
		np, exp, ok := scanExponent([]byte(tt.in), 0)
		if np != tt.np || exp != tt.exp || ok != tt.ok {
			t.Errorf("scanExponent(%q) = (%d, %d, %v); want (%d, %d, %v)", tt.in, np, exp, ok, tt.np, tt.exp, tt.ok)
		}
	}
}

func TestDigitVal(t *testing.T) {
	for c := byte(0); c < 255; c++ {
		v, ok := digitVal(c)
		want := c >= '0' && c <= '9'
		if ok != want {
			t.Errorf("digitVal(%q) ok = %v; want %v", c, ok, want)
		}
		if ok && v != c-'0' {
			t.Errorf("digitVal(%q) = %d; want %d", c, v, c-'0')
		}
	}
}
