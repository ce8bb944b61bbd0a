// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package floatparse converts ASCII decimal literals into IEEE-754
binary64/binary32 values with correctly-rounded results, and allocates
nothing while doing it.

The API is pointer-free and byte-slice based, in the spirit of C++'s
std::from_chars: each parse function takes a []byte and returns both
the decoded value and a Result reporting how many bytes were consumed
and whether the parse succeeded:

    v, r := floatparse.ParseFloat64([]byte("3.14159"), floatparse.ParseOptions{})
    if r.Status == floatparse.StatusOK {
        fmt.Println(v, "consumed", r.Ptr, "bytes")
    }

ParseFloat32 is the binary32 counterpart. Both accept an optional
ParseOptions value to opt into ASCII whitespace trimming
(ParseOptions.TrimSpace) or a stricter grammar that rejects a bare
trailing '.' with no fractional digit (ParseOptions.StrictGrammar);
the zero value reproduces the default, permissive grammar.

Internally, parsing proceeds in two stages: a bounded decimal scanner
(scanner.go) reads up to 19 (binary64) or 10 (binary32) significant
digits plus a decimal exponent, with enough sticky-bit state to
round-to-nearest-even exactly once if digits beyond the budget are
dropped; a fixed-point binary builder (builder.go) then assembles the
final mantissa and exponent using a precomputed table of power-of-five
reciprocals (pow5table.go), falling back to it only when a handful of
narrower fast paths (parse.go) don't already apply.

ParseInt and ParseUint (intparse.go) round out the package with
base-2-through-36 integer parsing sharing the same Result contract,
for callers that would otherwise reach for strconv for a sibling need.
*/
package floatparse
