// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flag binds Nums to command line flags.
//
// Values are set using the same syntax that num.Parse accepts, so
//
//    app --rate 1,5k
//
// stores 1500 in the bound Num.
package flag

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/db47h/num"
)

// numFlagValue wraps a *num.Num as a pflag.Value.
type numFlagValue struct {
	n *num.Num
}

// NewNumFlagValue wraps n so that it can be registered as a command line
// flag with pflag's Var functions.
func NewNumFlagValue(n *num.Num) pflag.Value {
	return numFlagValue{n}
}

func (f numFlagValue) String() string {
	if f.n == nil {
		return ""
	}
	return f.n.Display(6)
}

func (f numFlagValue) Set(s string) error {
	v := num.Parse(s)
	if v.IsAbsent() && s != "" {
		return fmt.Errorf("invalid numeric value %q", s)
	}
	*f.n = v
	return nil
}

func (f numFlagValue) Type() string {
	return "num"
}

// NumFlag defines a Num flag with the specified name, default value and
// usage string on the default pflag command line, and returns the Num
// the flag is bound to.
func NumFlag(flagName, defaultValue, description string) *num.Num {
	n := num.Parse(defaultValue)
	pflag.Var(NewNumFlagValue(&n), flagName, description)
	return &n
}
