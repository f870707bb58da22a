// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
)

var (
	_ encoding.TextMarshaler   = Num{}
	_ encoding.TextUnmarshaler = (*Num)(nil)
	_ json.Marshaler           = Num{}
	_ json.Unmarshaler         = (*Num)(nil)
	_ gob.GobEncoder           = Num{}
	_ gob.GobDecoder           = (*Num)(nil)
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		x    Num
		want string
	}{
		{FromInput(3.5), "input:3.5"},
		{FromOutput(-0.25), "output:-0.25"},
		{FromInput(1e6), "input:1e+06"},
		{Absent(), "absent"},
	} {
		if got := test.x.String(); got != test.want {
			t.Errorf("String() = %q; want %q", got, test.want)
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Num
		ok   bool
	}{
		{"input:3.5", FromInput(3.5), true},
		{"output:-0.25", FromOutput(-0.25), true},
		{"input:1e+06", FromInput(1e6), true},
		{"absent", Absent(), true},
		{"", Absent(), false},
		{"input", Absent(), false},
		{"input:abc", Absent(), false},
		{"wibble:1", Absent(), false},
	} {
		var got Num
		err := got.UnmarshalText([]byte(test.in))
		if (err == nil) != test.ok {
			t.Errorf("UnmarshalText(%q) error = %v; want ok = %v", test.in, err, test.ok)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("UnmarshalText(%q) = %v; want %v", test.in, got, test.want)
		}
	}
}

func TestUnmarshalJSONNull(t *testing.T) {
	x := FromInput(1)
	if err := json.Unmarshal([]byte("null"), &x); err != nil {
		t.Fatalf("Unmarshal(null) failed: %v", err)
	}
	if !x.IsAbsent() {
		t.Errorf("Unmarshal(null) = %v; want absent", x)
	}
}

var fuzzer = fuzz.New().Funcs(
	func(n *Num, c fuzz.Continue) {
		// cover the whole prefix table and both sides of it
		v := c.NormFloat64() * math.Pow(10, float64(c.Intn(41)-20))
		switch c.Intn(3) {
		case 0:
			*n = FromInput(v)
		case 1:
			*n = FromOutput(v)
		default:
			*n = Absent()
		}
	},
)

func TestJSONRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		var x Num
		fuzzer.Fuzz(&x)
		b, err := json.Marshal(x)
		if err != nil {
			t.Fatalf("error encoding %v: %v", x, err)
		}
		var y Num
		if err = json.Unmarshal(b, &y); err != nil {
			t.Fatalf("%v: error decoding %q: %v", x, b, err)
		}
		if x != y {
			t.Errorf("expected equal: %v, %v (json was %q)", x, y, b)
		}
	}
}

func TestGobRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		var x Num
		fuzzer.Fuzz(&x)
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(x); err != nil {
			t.Fatalf("error encoding %v: %v", x, err)
		}
		var y Num
		if err := gob.NewDecoder(&buf).Decode(&y); err != nil {
			t.Fatalf("%v: error decoding: %v", x, err)
		}
		if x != y {
			t.Errorf("expected equal: %v, %v", x, y)
		}
	}
}

func TestGobDecodeBadData(t *testing.T) {
	for _, test := range []struct {
		name string
		buf  []byte
	}{
		{"bad version", []byte{42, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"bad kind", []byte{numGobVersion, 7}},
		{"short buffer", []byte{numGobVersion, 1, 0}},
	} {
		var x Num
		if err := x.GobDecode(test.buf); err == nil {
			t.Errorf("%s: GobDecode(% x) did not fail", test.name, test.buf)
		}
	}
}
