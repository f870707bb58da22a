// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Nums.

package num

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const numGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x Num) GobEncode() ([]byte, error) {
	if x.k == absent {
		return []byte{numGobVersion, byte(absent)}, nil
	}
	buf := make([]byte, 2+8)
	buf[0] = numGobVersion
	buf[1] = byte(x.k)
	binary.BigEndian.PutUint64(buf[2:], math.Float64bits(x.val))
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Num) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a zero-length slice; treat as absent.
		*z = Num{}
		return nil
	}
	if buf[0] != numGobVersion {
		return fmt.Errorf("num: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return fmt.Errorf("num: buffer too small to decode a Num")
	}
	k := kind(buf[1])
	switch k {
	case absent:
		*z = Num{}
		return nil
	case input, output:
		if len(buf) < 2+8 {
			return fmt.Errorf("num: buffer too small to decode a Num")
		}
		*z = Num{val: math.Float64frombits(binary.BigEndian.Uint64(buf[2:])), k: k}
		return nil
	}
	return fmt.Errorf("num: unknown kind %d", buf[1])
}

// String returns the exact textual form of x: "input:<value>" or
// "output:<value>" with the value in its shortest exact decimal
// representation, or "absent". This form round-trips through
// UnmarshalText exactly; for the human-readable prefixed form use
// Display.
func (x Num) String() string {
	if x.k == absent {
		return absent.String()
	}
	return x.k.String() + ":" + strconv.FormatFloat(x.val, 'g', -1, 64)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Num) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Num) UnmarshalText(text []byte) error {
	s := string(text)
	if s == absent.String() {
		*z = Num{}
		return nil
	}
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return fmt.Errorf("num: cannot unmarshal %q into a Num", s)
	}
	var k kind
	switch s[:i] {
	case input.String():
		k = input
	case output.String():
		k = output
	default:
		return fmt.Errorf("num: cannot unmarshal %q into a Num", s)
	}
	v, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return fmt.Errorf("num: cannot unmarshal %q into a Num: %v", s, err)
	}
	*z = Num{val: v, k: k}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. A Num encodes as
// its String form in a JSON string.
func (x Num) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. JSON null
// decodes to an absent Num.
func (z *Num) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*z = Num{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("num: cannot unmarshal %s into a Num", s)
	}
	return z.UnmarshalText([]byte(s[1 : len(s)-1]))
}
