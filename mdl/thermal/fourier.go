// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/mat"
)

// Fourier implements heat conduction with a nonlinear conductivity coefficient
//
//   kten = kval(T) * kcte
//
//   kval = a0  +  a1 T  +  a2 T²  +  a3 T³
//
type Fourier struct {
	a0, a1, a2, a3 float64
	kcte           *mat.Dense
}

// add model to factory
func init() {
	allocators["fourier"] = func() Model { return new(Fourier) }
}

// Init initialises this structure
func (o *Fourier) Init(prms dbf.Params) (err error) {

	// a[i] parameters
	o.a0 = prop.ScalarPrmOrDefault(prms, "a0", 1)
	o.a1 = prop.ScalarPrmOrDefault(prms, "a1", 0)
	o.a2 = prop.ScalarPrmOrDefault(prms, "a2", 0)
	o.a3 = prop.ScalarPrmOrDefault(prms, "a3", 0)

	// ktensor
	o.kcte, err = prop.TensorPrm(prms, "k", 1e-14, "fourier model")
	return
}

// GetPrms gets (an example) of parameters
func (o Fourier) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "a0", V: 1.0},
		&dbf.P{N: "a1", V: 2e-3},
		&dbf.P{N: "a2", V: 0},
		&dbf.P{N: "a3", V: 0},
		&dbf.P{N: "k", V: 0.5},
	}
}

// Kval computes k(T)
func (o *Fourier) Kval(T float64) float64 {
	return o.a0 + o.a1*T + o.a2*T*T + o.a3*T*T*T
}

// DkDT computes dk/dT
func (o *Fourier) DkDT(T float64) float64 {
	return o.a1 + 2.0*o.a2*T + 3.0*o.a3*T*T
}

// Kcte returns the constant conductivity tensor
func (o *Fourier) Kcte() *mat.Dense { return o.kcte }
