// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var parseFloat64Tests = []struct {
	in   string
	want float64
	r    Result
}{
	{"0", 0, Result{1, StatusOK}},
	{"-0", math.Copysign(0, -1), Result{2, StatusOK}},
	{"1", 1, Result{1, StatusOK}},
	{"-1", -1, Result{2, StatusOK}},
	{"1.5", 1.5, Result{3, StatusOK}},
	{"1.", 1, Result{2, StatusOK}},
	{".5", 0.5, Result{2, StatusOK}},
	{"1e10", 1e10, Result{4, StatusOK}},
	{"1.5e2", 150, Result{5, StatusOK}},
	{"1e-10", 1e-10, Result{5, StatusOK}},
	{"3.14159265358979", 3.14159265358979, Result{16, StatusOK}},
	{"1.7976931348623157e308", math.MaxFloat64, Result{22, StatusOK}},
	{"1e400", math.Inf(1), Result{5, StatusRange}},
	{"-1e400", math.Inf(-1), Result{6, StatusRange}},
	{"1e-400", 0, Result{6, StatusRange}},
	{"inf", math.Inf(1), Result{3, StatusOK}},
	{"-Infinity", math.Inf(-1), Result{9, StatusOK}},
	{"NaN", math.NaN(), Result{3, StatusOK}},
	{"  1.5", 0, Result{0, StatusInvalid}},
	{"abc", 0, Result{0, StatusInvalid}},
	{"0.0037440829273285422", 0.0037440829273285422, Result{21, StatusOK}},
	{"123abc", 123, Result{3, StatusOK}},
}

func TestParseFloat64(t *testing.T) {
	for _, tt := range parseFloat64Tests {
		t.Run(tt.in, func(t *testing.T) {
			got, r := ParseFloat64([]byte(tt.in), ParseOptions{})
			if r != tt.r {
				t.Errorf("ParseFloat64(%q) result = %+v; want %+v", tt.in, r, tt.r)
			}
			if r.Status == StatusOK || r.Status == StatusRange {
				if math.IsNaN(tt.want) {
					if !math.IsNaN(got) {
						t.Errorf("ParseFloat64(%q) = %v; want NaN", tt.in, got)
					}
					return
				}
				if got != tt.want && !(math.Signbit(got) == math.Signbit(tt.want) && got == 0 && tt.want == 0) {
					t.Errorf("ParseFloat64(%q) = %v; want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestParseFloat64TrimSpace(t *testing.T) {
	got, r := ParseFloat64([]byte("  1.5"), ParseOptions{TrimSpace: true})
	if r.Status != StatusOK || got != 1.5 {
		t.Errorf("ParseFloat64 with TrimSpace = %v, %+v; want 1.5, OK", got, r)
	}
}

func TestParseFloat64StrictGrammar(t *testing.T) {
	_, r := ParseFloat64([]byte("1."), ParseOptions{StrictGrammar: true})
	if r.Status != StatusInvalid {
		t.Errorf("ParseFloat64(\"1.\", StrictGrammar) status = %v; want StatusInvalid", r.Status)
	}
	got, r := ParseFloat64([]byte("1.0"), ParseOptions{StrictGrammar: true})
	if r.Status != StatusOK || got != 1.0 {
		t.Errorf("ParseFloat64(\"1.0\", StrictGrammar) = %v, %+v; want 1.0, OK", got, r)
	}
}

var parseFloat32Tests = []struct {
	in   string
	want float32
	r    Result
}{
	{"0", 0, Result{1, StatusOK}},
	{"1", 1, Result{1, StatusOK}},
	{"3.14", 3.14, Result{4, StatusOK}},
	{"1e10", 1e10, Result{4, StatusOK}},
	{"3.4028235e38", math.MaxFloat32, Result{12, StatusOK}},
	{"1e40", float32(math.Inf(1)), Result{4, StatusRange}},
	{"inf", float32(math.Inf(1)), Result{3, StatusOK}},
}

func TestParseFloat32(t *testing.T) {
	for _, tt := range parseFloat32Tests {
		t.Run(tt.in, func(t *testing.T) {
			got, r := ParseFloat32([]byte(tt.in), ParseOptions{})
			if r != tt.r {
				t.Errorf("ParseFloat32(%q) result = %+v; want %+v", tt.in, r, tt.r)
			}
			if got != tt.want {
				t.Errorf("ParseFloat32(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestShortLiteralFastPath64 exercises shortLiteralFastPath64 directly
// rather than through ParseFloat64, since its guard (exp10 in {-1,-2},
// mant <= 1e8) is a strict subset of exactFastPath64's guard and every
// input satisfying it would therefore also satisfy exactFastPath64 -
// calling ParseFloat64 alone wouldn't prove this function's own table
// lookup is correct, only that the dispatcher picks it first.
func TestShortLiteralFastPath64(t *testing.T) {
	tests := []struct {
		mant  uint64
		exp10 int32
		exact bool
		want  float64
		ok    bool
	}{
		{15, -1, true, 1.5, true},
		{5, -1, true, 0.5, true},
		{1234, -2, true, 12.34, true},
		{0, -1, true, 0, true},
		{100000000, -1, true, 10000000, true},
		{15, -1, false, 0, false},  // dropped digits: not exact
		{15, -3, true, 0, false},   // exp10 outside {-1,-2}
		{100000001, -1, true, 0, false}, // mant > 1e8
	}
	for _, tt := range tests {
		got, ok := shortLiteralFastPath64(tt.mant, tt.exp10, tt.exact)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("shortLiteralFastPath64(%d, %d, %v) = (%v, %v); want (%v, %v)",
				tt.mant, tt.exp10, tt.exact, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFloat64ResultShape(t *testing.T) {
	_, r := ParseFloat64([]byte("2.5"), ParseOptions{})
	want := Result{Ptr: 3, Status: StatusOK}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("ParseFloat64 result mismatch (-want +got):\n%s", diff)
	}
}
