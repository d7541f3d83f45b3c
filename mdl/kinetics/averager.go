// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/num/dual"
)

// Averager computes the interface temperature from the two-sided values
type Averager interface {
	Average(T, Tn dual.Number) dual.Number
}

// NewAverager returns an averaging policy by name; "" gives "arithmetic"
func NewAverager(name string) (Averager, error) {
	switch name {
	case "", "arithmetic":
		return Arithmetic{}, nil
	case "harmonic":
		return Harmonic{}, nil
	case "geometric":
		return Geometric{}, nil
	}
	return nil, chk.Err("averaging policy %q is not available. options are arithmetic, harmonic and geometric", name)
}

// Arithmetic computes (T + Tn) / 2
type Arithmetic struct{}

// Average implements Averager
func (Arithmetic) Average(T, Tn dual.Number) dual.Number {
	return dual.Scale(0.5, dual.Add(T, Tn))
}

// Harmonic computes 2 T Tn / (T + Tn)
type Harmonic struct{}

// Average implements Averager
func (Harmonic) Average(T, Tn dual.Number) dual.Number {
	return dual.Scale(2, dual.Mul(dual.Mul(T, Tn), dual.Inv(dual.Add(T, Tn))))
}

// Geometric computes √(T Tn)
type Geometric struct{}

// Average implements Averager
func (Geometric) Average(T, Tn dual.Number) dual.Number {
	return dual.Sqrt(dual.Mul(T, Tn))
}
