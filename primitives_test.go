// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

func TestClz64(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, 64},
		{1, 63},
		{1 << 63, 0},
		{0xFF, 56},
	}
	for _, tt := range tests {
		if got := clz64(tt.x); got != tt.want {
			t.Errorf("clz64(%#x) = %d; want %d", tt.x, got, tt.want)
		}
	}
}

func TestMul64x64To128(t *testing.T) {
	hi, lo := mul64x64To128(1<<32, 1<<32)
	if hi != 1 || lo != 0 {
		t.Errorf("mul64x64To128(2**32, 2**32) = (%d, %d); want (1, 0)", hi, lo)
	}
	hi, lo = mul64x64To128(^uint64(0), ^uint64(0))
	if hi != 0xFFFFFFFFFFFFFFFE || lo != 1 {
		t.Errorf("mul64x64To128(max, max) = (%#x, %#x); want (0xFFFFFFFFFFFFFFFE, 1)", hi, lo)
	}
}

func TestAll8Digits(t *testing.T) {
	if !all8Digits(loadU64Unaligned([]byte("12345678"))) {
		t.Error("all8Digits(\"12345678\") = false; want true")
	}
	if all8Digits(loadU64Unaligned([]byte("1234567a"))) {
		t.Error("all8Digits(\"1234567a\") = true; want false")
	}
	if all8Digits(loadU64Unaligned([]byte("1234567/"))) {
		t.Error("all8Digits(\"1234567/\") = true; want false")
	}
	if all8Digits(loadU64Unaligned([]byte("1234567:"))) {
		t.Error("all8Digits(\"1234567:\") = true; want false")
	}
}

func TestAny8NonzeroDigit(t *testing.T) {
	if any8NonzeroDigit(loadU64Unaligned([]byte("00000000"))) {
		t.Error("any8NonzeroDigit(\"00000000\") = true; want false")
	}
	if !any8NonzeroDigit(loadU64Unaligned([]byte("00000001"))) {
		t.Error("any8NonzeroDigit(\"00000001\") = false; want true")
	}
}

func TestBitsToFloat(t *testing.T) {
	if got := bitsToFloat64(0); got != 0 {
		t.Errorf("bitsToFloat64(0) = %v; want 0", got)
	}
	if got := bitsToFloat32(0); got != 0 {
		t.Errorf("bitsToFloat32(0) = %v; want 0", got)
	}
}
