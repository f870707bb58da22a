// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic operators on Nums. Go has no
// operator overloading, so each operator comes as a pair of methods: one
// taking a Num and one taking a raw float64 on the right-hand side.
//
// All operators share the same tag rules: the result carries the tag of
// the left operand, and is absent if the left operand is absent or if a
// right-hand Num operand is absent. A raw float64 operand cannot be
// absent and never clears a result.
//
// No operator checks for division by zero or overflow; IEEE 754
// semantics apply and infinities and NaNs propagate unchanged.

package num

// Add returns x + y, with x's tag.
func (x Num) Add(y Num) Num {
	if x.k == absent || y.k == absent {
		return Num{}
	}
	return Num{val: x.val + y.val, k: x.k}
}

// AddFloat64 returns x + y, with x's tag.
func (x Num) AddFloat64(y float64) Num {
	if x.k == absent {
		return Num{}
	}
	return Num{val: x.val + y, k: x.k}
}

// Sub returns x - y, with x's tag.
func (x Num) Sub(y Num) Num {
	if x.k == absent || y.k == absent {
		return Num{}
	}
	return Num{val: x.val - y.val, k: x.k}
}

// SubFloat64 returns x - y, with x's tag.
func (x Num) SubFloat64(y float64) Num {
	if x.k == absent {
		return Num{}
	}
	return Num{val: x.val - y, k: x.k}
}

// Mul returns x × y, with x's tag.
func (x Num) Mul(y Num) Num {
	if x.k == absent || y.k == absent {
		return Num{}
	}
	return Num{val: x.val * y.val, k: x.k}
}

// MulFloat64 returns x × y, with x's tag.
func (x Num) MulFloat64(y float64) Num {
	if x.k == absent {
		return Num{}
	}
	return Num{val: x.val * y, k: x.k}
}

// Div returns x / y, with x's tag.
func (x Num) Div(y Num) Num {
	if x.k == absent || y.k == absent {
		return Num{}
	}
	return Num{val: x.val / y.val, k: x.k}
}

// DivFloat64 returns x / y, with x's tag.
func (x Num) DivFloat64(y float64) Num {
	if x.k == absent {
		return Num{}
	}
	return Num{val: x.val / y, k: x.k}
}
