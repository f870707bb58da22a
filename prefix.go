// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "unicode/utf8"

// A metricPrefix associates a scale factor with the runes that denote it.
type metricPrefix struct {
	symbols string  // accepted suffix runes; the first one is used for display
	factor  float64 // scale factor
}

// Metric prefixes covering 10**-15 through 10**15. Table order matters:
// formatting and parsing both scan it front to back and take the first
// match. No two entries share a rune.
var metricPrefixes = [...]metricPrefix{
	{"f", 1e-15},
	{"p", 1e-12},
	{"n", 1e-9},
	{"µu", 1e-6}, // micro displays as µ, parses as either µ or u
	{"m", 1e-3},
	{"k", 1e3},
	{"M", 1e6},
	{"G", 1e9},
	{"T", 1e12},
	{"P", 1e15},
}

// symbol returns the display rune for p.
func (p *metricPrefix) symbol() rune {
	r, _ := utf8.DecodeRuneInString(p.symbols)
	return r
}
