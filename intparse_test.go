// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"testing"
)

var parseUintTests = []struct {
	in   string
	base int
	want uint64
	r    Result
}{
	{"123", 10, 123, Result{3, StatusOK}},
	{"0", 10, 0, Result{1, StatusOK}},
	{"ff", 16, 255, Result{2, StatusOK}},
	{"FF", 16, 255, Result{2, StatusOK}},
	{"101", 2, 5, Result{3, StatusOK}},
	{"z", 36, 35, Result{1, StatusOK}},
	{"18446744073709551615", 10, math.MaxUint64, Result{20, StatusOK}},
	{"18446744073709551616", 10, math.MaxUint64, Result{20, StatusRange}},
	{"99999999999999999999999999", 10, math.MaxUint64, Result{26, StatusRange}},
	{"", 10, 0, Result{0, StatusInvalid}},
	{"abc", 10, 0, Result{0, StatusInvalid}},
	{"123", 1, 0, Result{0, StatusInvalid}},
	{"123", 37, 0, Result{0, StatusInvalid}},
	{"123xyz", 10, 123, Result{3, StatusOK}},
}

func TestParseUint(t *testing.T) {
	for _, tt := range parseUintTests {
		t.Run(tt.in, func(t *testing.T) {
			got, r := ParseUint([]byte(tt.in), tt.base, ParseOptions{})
			if got != tt.want || r != tt.r {
				t.Errorf("ParseUint(%q, %d) = (%d, %+v); want (%d, %+v)", tt.in, tt.base, got, r, tt.want, tt.r)
			}
		})
	}
}

var parseIntTests = []struct {
	in   string
	base int
	want int64
	r    Result
}{
	{"123", 10, 123, Result{3, StatusOK}},
	{"-123", 10, -123, Result{4, StatusOK}},
	{"+123", 10, 123, Result{4, StatusOK}},
	{"9223372036854775807", 10, math.MaxInt64, Result{19, StatusOK}},
	{"-9223372036854775808", 10, math.MinInt64, Result{20, StatusOK}},
	{"9223372036854775808", 10, 0, Result{19, StatusRange}},
	{"-9223372036854775809", 10, 0, Result{20, StatusRange}},
	{"-ff", 16, -255, Result{3, StatusOK}},
	{"", 10, 0, Result{0, StatusInvalid}},
	{"-", 10, 0, Result{0, StatusInvalid}},
}

func TestParseInt(t *testing.T) {
	for _, tt := range parseIntTests {
		t.Run(tt.in, func(t *testing.T) {
			got, r := ParseInt([]byte(tt.in), tt.base, ParseOptions{})
			if got != tt.want || r != tt.r {
				t.Errorf("ParseInt(%q, %d) = (%d, %+v); want (%d, %+v)", tt.in, tt.base, got, r, tt.want, tt.r)
			}
		})
	}
}

func TestDigitValBase(t *testing.T) {
	tests := []struct {
		c    byte
		base int
		want int
		ok   bool
	}{
		{'0', 10, 0, true},
		{'9', 10, 9, true},
		{'a', 16, 10, true},
		{'A', 16, 10, true},
		{'z', 36, 35, true},
		{'g', 16, 0, false},
		{'9', 2, 0, false},
	}
	for _, tt := range tests {
		v, ok := digitValBase(tt.c, tt.base)
		if ok != tt.ok || (ok && v != tt.want) {
			t.Errorf("digitValBase(%q, %d) = (%d, %v); want (%d, %v)", tt.c, tt.base, v, ok, tt.want, tt.ok)
		}
	}
}
