// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Nums and their human-readable
// string forms: prefixed numbers ("1.50k") and ratios ("2:3").

package num

import (
	"math"
	"strconv"
	"strings"
)

// ratioTolerance is how close a·x must come to an integer for the ratio
// search in DisplayRatio to accept denominator a.
const ratioTolerance = 0.0001

// maxRatioDenominator bounds the denominator search in DisplayRatio.
// Ratios a user would actually enter have small denominators; without a
// bound the search would not terminate on inputs that are not close to
// any small rational.
const maxRatioDenominator = 1000

// Display formats x's value with a metric prefix and the given total
// number of significant figures, for instance "1.50k" for 1500 with 3
// significant figures. The prefix is chosen as the first table entry
// that scales the absolute value into [1, 1000); if none does (zero,
// values below 10**-15 or at or above 10**18) the value is rendered
// unscaled with no prefix. Display returns the empty string if x is
// absent.
func (x Num) Display(significantFigures int) string {
	if x.k == absent {
		return ""
	}
	v := x.val
	prefix := ""
	for i := range metricPrefixes {
		p := &metricPrefixes[i]
		if a := math.Abs(v) / p.factor; 1 <= a && a < 1000 {
			v /= p.factor
			prefix = string(p.symbol())
			break
		}
	}
	// Digits left of the decimal point, at least 1 (|v| < 1 and v == 0
	// included, the latter having no defined log10).
	intFigures := 1
	if a := math.Abs(v); a >= 10 {
		intFigures += int(math.Floor(math.Log10(a)))
	}
	fracFigures := 0
	if significantFigures > intFigures {
		fracFigures = significantFigures - intFigures
	}
	return strconv.FormatFloat(v, 'f', fracFigures, 64) + prefix
}

// DisplayRatio formats x's value as a ratio string "a:b" such that
// b/a approximates the value, searching for the smallest denominator a
// whose multiple a·x lies within ratioTolerance of an integer b. It
// returns the empty string if x is absent, or if no denominator up to
// maxRatioDenominator qualifies.
func (x Num) DisplayRatio() string {
	if x.k == absent {
		return ""
	}
	acc := x.val
	var a int64 = 1
	for {
		// fract keeps the sign of acc, so negative values with a
		// fractional part ≤ 0 terminate immediately.
		f := acc - math.Trunc(acc)
		if f <= ratioTolerance || f >= 1-ratioTolerance {
			break
		}
		if a == maxRatioDenominator {
			return ""
		}
		a++
		acc += x.val
	}
	b := int64(math.Round(acc))
	return strconv.FormatInt(a, 10) + ":" + strconv.FormatInt(b, 10)
}

// Parse parses s as a floating-point number with an optional trailing
// metric prefix, returning the scaled value tagged as input. A comma is
// accepted as the decimal separator. Parse never fails loudly: if s does
// not parse, the result is absent.
func Parse(s string) Num {
	s = strings.ReplaceAll(s, ",", ".")
	factor := 1.0
outer:
	for i := range metricPrefixes {
		for _, c := range metricPrefixes[i].symbols {
			if strings.HasSuffix(s, string(c)) {
				s = strings.TrimSuffix(s, string(c))
				factor = metricPrefixes[i].factor
				break outer
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Num{}
	}
	return FromInput(v * factor)
}

// ParseRatio parses s as a ratio string "a:b" and returns the value b/a,
// each part parsed like Parse (prefixes and comma separators included).
// The result is absent if s does not split into exactly two parts on ":"
// or if either part does not parse. Division follows Div's tagged
// semantics, so "0:5" yields +Inf.
func ParseRatio(s string) Num {
	parts := strings.Split(strings.ReplaceAll(s, ",", "."), ":")
	if len(parts) != 2 {
		return Num{}
	}
	return Parse(parts[1]).Div(Parse(parts[0]))
}
