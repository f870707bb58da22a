// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package num implements tagged floating-point numbers for calculator front
ends.

A Num is a float64 annotated with its provenance: typed in by the user
(input), produced by a computation (output), or holding no value at all
(absent). Absent is an ordinary, inspectable state — the result of parsing
garbage or of computing with a missing operand — not an error.

The zero value for a Num is absent. Thus, new values can be declared in
the usual ways and denote "no value" without further initialization:

    var x num.Num // x is absent

Alternatively, new Num values are created with the functions

    func FromInput(v float64) Num
    func FromOutput(v float64) Num
    func Absent() Num

or by parsing text:

    func Parse(s string) Num
    func ParseRatio(s string) Num

Operations never mutate their operands; every method returns a new Num, so
values are safe to share and to use concurrently. Binary operations keep
the tag of their left operand and yield an absent result as soon as any
Num operand is absent:

    num.FromOutput(3).Add(num.FromInput(2)) // output, 5
    num.FromInput(3).Add(num.Absent())      // absent

Display renders a value with a metric prefix and a fixed number of
significant figures, and Parse accepts the same prefixes back, so values
round-trip through their displayed form up to display rounding:

    num.FromInput(1500).Display(3) // "1.50k"
    num.Parse("1.50k")             // input, 1500

Values are checked for presence with IsNumber or IsAbsent before their
payload is read. Float64 returns the payload with a comma-ok flag; Value
returns it directly and panics when called on an absent Num — such a call
is a bug in the caller, not a recoverable condition.

Num implements the TextMarshaler, TextUnmarshaler, json.Marshaler,
json.Unmarshaler, GobEncoder and GobDecoder interfaces for persisting
values, for instance calculator variables, between sessions.
*/
package num
