// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"testing"
)

func TestBuildExactInt(t *testing.T) {
	tests := []struct {
		w    uint64
		want float64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{1023, 1023},
		{1 << 52, 1 << 52},
		{1<<53 - 1, float64(1<<53 - 1)},
		{1 << 60, float64(1 << 60)},
	}
	for _, tt := range tests {
		if tt.w == 0 {
			continue
		}
		m, e := buildExactInt(tt.w, binary64Format)
		bits := uint64(e)<<binary64Format.fracBits | m
		got := math.Float64frombits(bits)
		if got != tt.want {
			t.Errorf("buildExactInt(%d) = %v; want %v", tt.w, got, tt.want)
		}
	}
}

func TestBuildBinaryAgainstKnownValues(t *testing.T) {
	tests := []struct {
		mant  uint64
		exp10 int32
		want  float64
	}{
		{1, 1, 10},
		{1, -1, 0.1},
		{5, -1, 0.5},
		{314159265358979, -14, 3.14159265358979},
		{1, 23, 1e23},
		{2, 23, 2e23},
	}
	for _, tt := range tests {
		m, e, isInf := buildBinary(tt.exp10, tt.mant, binary64Format)
		if isInf {
			t.Fatalf("buildBinary(%d, %d) unexpectedly reported infinity", tt.exp10, tt.mant)
		}
		bits := uint64(e)<<binary64Format.fracBits | m
		got := math.Float64frombits(bits)
		if got != tt.want {
			t.Errorf("buildBinary(%d, %d) = %v; want %v", tt.exp10, tt.mant, got, tt.want)
		}
	}
}

func TestBuildBinaryOverflow(t *testing.T) {
	// 2e308 is above math.MaxFloat64 with q10 still inside the table.
	_, _, isInf := buildBinary(308, 2, binary64Format)
	if !isInf {
		t.Errorf("buildBinary(308, 2) isInf = false; want true")
	}
}

func TestApproxLog2Pow5(t *testing.T) {
	// approxLog2Pow5(q) - 63 should equal floor(q*log2(10)); spot
	// check a handful of values against math.Log2(10)*q.
	for _, q := range []int32{0, 1, -1, 10, -10, 100, -100, 308, -342} {
		got := approxLog2Pow5(q) - 63
		want := int32(math.Floor(float64(q) * math.Log2(10)))
		if got != want {
			t.Errorf("approxLog2Pow5(%d)-63 = %d; want %d", q, got, want)
		}
	}
}
