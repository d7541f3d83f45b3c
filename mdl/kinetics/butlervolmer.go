// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/num/dual"
)

// ButlerVolmer implements the Butler-Volmer law
//
//          F
//   f = ─────      i = i₀ (exp(αa f η) - exp(-αc f η))
//        R T
//
//   di/dη = i₀ f (αa exp(αa f η) + αc exp(-αc f η))
//
type ButlerVolmer struct {
	I0     float64 // exchange current density
	AlphaA float64 // anodic charge transfer coefficient
	AlphaC float64 // cathodic charge transfer coefficient
	F      float64 // Faraday's constant
	R      float64 // ideal gas constant
}

// add model to factory
func init() {
	allocators["butler-volmer"] = func() Model { return new(ButlerVolmer) }
}

// Init initialises this structure
func (o *ButlerVolmer) Init(prms dbf.Params) (err error) {
	for _, p := range []struct {
		key string
		val *float64
	}{
		{"i0", &o.I0},
		{"alpha_a", &o.AlphaA},
		{"alpha_c", &o.AlphaC},
		{"F", &o.F},
		{"R", &o.R},
	} {
		if *p.val, err = prop.ScalarPrm(prms, p.key, "butler-volmer model"); err != nil {
			return
		}
	}
	if o.R <= 0 {
		return chk.Err("butler-volmer model: ideal gas constant must be positive. R=%g is invalid", o.R)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ButlerVolmer) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "i0", V: 1e-3},
		&dbf.P{N: "alpha_a", V: 0.5},
		&dbf.P{N: "alpha_c", V: 0.5},
		&dbf.P{N: "F", V: 96485},
		&dbf.P{N: "R", V: 8.314},
	}
}

// CurrentDual computes the current density and its derivative with respect to η
func (o *ButlerVolmer) CurrentDual(eta, T dual.Number) (i, didEta dual.Number) {
	f := dual.Scale(o.F/o.R, dual.Inv(T))
	fη := dual.Mul(f, eta)
	ea := dual.Exp(dual.Scale(o.AlphaA, fη))
	ec := dual.Exp(dual.Scale(-o.AlphaC, fη))
	i = dual.Scale(o.I0, dual.Sub(ea, ec))
	didEta = dual.Scale(o.I0, dual.Mul(f, dual.Add(dual.Scale(o.AlphaA, ea), dual.Scale(o.AlphaC, ec))))
	return
}

// Current computes the current density and its derivative with respect to η
func (o *ButlerVolmer) Current(eta, T float64) (i, didEta float64) {
	di, dd := o.CurrentDual(dual.Number{Real: eta}, dual.Number{Real: T})
	return di.Real, dd.Real
}
