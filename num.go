// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math"

// A kind describes the provenance of a Num's value.
type kind byte

//go:generate stringer -type=kind

// The kind value order is relevant - do not change!
const (
	absent kind = iota // no value
	input              // value typed in by the user
	output             // value produced by a computation
)

// A Num is a float64 tagged with its provenance: user input, computed
// output, or absent. Nums are immutable values; operations return new
// Nums and never modify their operands.
//
// The zero value for a Num is absent.
type Num struct {
	val float64
	k   kind
}

// FromInput returns a Num holding v, tagged as user input.
func FromInput(v float64) Num {
	return Num{val: v, k: input}
}

// FromOutput returns a Num holding v, tagged as a computed result.
func FromOutput(v float64) Num {
	return Num{val: v, k: output}
}

// Absent returns a Num holding no value.
func Absent() Num {
	return Num{}
}

// IsInput reports whether x holds a value typed in by the user.
func (x Num) IsInput() bool {
	return x.k == input
}

// IsOutput reports whether x holds a computed value.
func (x Num) IsOutput() bool {
	return x.k == output
}

// IsAbsent reports whether x holds no value.
func (x Num) IsAbsent() bool {
	return x.k == absent
}

// IsNumber reports whether x holds a value, input or output.
func (x Num) IsNumber() bool {
	return x.k != absent
}

// Float64 returns the value of x, and ok set to false if x is absent.
func (x Num) Float64() (v float64, ok bool) {
	return x.val, x.k != absent
}

// Value returns the value of x.
//
// Value panics if x is absent. Callers must check IsNumber or IsAbsent
// first; calling Value on an absent Num is a programming error, not a
// recoverable condition.
func (x Num) Value() float64 {
	if x.k == absent {
		panic("num: Value called on an absent Num")
	}
	return x.val
}

// Sqrt returns the square root of x's value, with x's tag. The square
// root of an absent Num is absent. The value's sign is not checked: the
// square root of a negative value is NaN, which propagates through
// further arithmetic as usual.
func (x Num) Sqrt() Num {
	if x.k == absent {
		return Num{}
	}
	return Num{val: math.Sqrt(x.val), k: x.k}
}
