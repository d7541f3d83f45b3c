// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/mdl/prop"
)

// SwellingName is the (unprefixed) name of the swelling deformation gradient property
const SwellingName = "swelling_deformation_gradient"

// SwellingData holds the names of variables and properties used by Swelling
type SwellingData struct {
	Base       string   // base name prepended to declared and requested properties
	Conc       []string // names of concentration variables c_i
	ConcRef    []string // names of reference concentration variables c_ref,i
	MolarVols  []string // names of molar volume properties Ω_i
	SwellCoeff string   // (unprefixed) name of the swelling coefficient β; default "swelling_coefficient"
}

// Swelling computes the eigen deformation gradient due to swelling of chemical species
//
//   Js = 1 + Σ β Ωᵢ (cᵢ - c_refᵢ)
//
//   Fs = ∛Js I
//
//   ∂Fs/∂cᵢ = ⅓ Js^(-2/3) β Ωᵢ I
//
type Swelling struct {
	C     []*prop.Variable // concentrations
	Cref  []*prop.Variable // reference concentrations
	Omega []*prop.Scalar   // molar volumes
	Beta  *prop.Scalar     // swelling coefficient
	Fs    *prop.Tensor     // swelling deformation gradient
	DFsDc []*prop.Tensor   // derivatives of Fs with respect to each concentration
}

// NewSwelling declares the swelling deformation gradient and its derivatives
func NewSwelling(reg *prop.Registry, dat *SwellingData) (o *Swelling, err error) {

	// check lists
	nc := len(dat.Conc)
	if len(dat.ConcRef) != nc || len(dat.MolarVols) != nc {
		return nil, chk.Err("number of chemical species concentrations (%d), reference concentrations (%d), and molar volumes (%d) must be the same", nc, len(dat.ConcRef), len(dat.MolarVols))
	}
	if nc == 0 {
		return nil, chk.Err("swelling requires at least one chemical species")
	}

	// coupled variables and properties
	me := prop.Prefix(dat.Base, SwellingName)
	o = new(Swelling)
	o.C = make([]*prop.Variable, nc)
	o.Cref = make([]*prop.Variable, nc)
	o.Omega = make([]*prop.Scalar, nc)
	for i := 0; i < nc; i++ {
		if o.C[i], err = reg.Couple(dat.Conc[i], me); err != nil {
			return nil, err
		}
		if o.Cref[i], err = reg.Couple(dat.ConcRef[i], me); err != nil {
			return nil, err
		}
		if o.Omega[i], err = reg.GetScalar(dat.MolarVols[i], me); err != nil {
			return nil, err
		}
	}
	beta := dat.SwellCoeff
	if beta == "" {
		beta = "swelling_coefficient"
	}
	if o.Beta, err = reg.GetScalar(prop.Prefix(dat.Base, beta), me); err != nil {
		return nil, err
	}

	// declare Fs and ∂Fs/∂cᵢ
	if o.Fs, err = reg.DeclareTensor(me, me); err != nil {
		return nil, err
	}
	o.DFsDc = make([]*prop.Tensor, nc)
	for i := 0; i < nc; i++ {
		if o.DFsDc[i], err = reg.DeclareTensor(prop.DerivName(me, dat.Conc[i]), me); err != nil {
			return nil, err
		}
	}
	return
}

// Js computes the swelling volume ratio at quadrature point qp
func (o *Swelling) Js(qp int) float64 {
	Js := 1.0
	β := o.Beta.V[qp]
	for i := range o.C {
		Js += β * o.Omega[i].V[qp] * (o.C[i].Val[qp] - o.Cref[i].Val[qp])
	}
	return Js
}

// Compute computes Fs and ∂Fs/∂cᵢ at quadrature point qp
func (o *Swelling) Compute(qp int) error {
	Js := o.Js(qp)
	β := o.Beta.V[qp]
	setIsotropic(o.Fs, qp, math.Cbrt(Js))
	for i := range o.C {
		setIsotropic(o.DFsDc[i], qp, math.Pow(Js, -2.0/3.0)/3.0*β*o.Omega[i].V[qp])
	}
	return nil
}

// setIsotropic sets t[qp] = s I
func setIsotropic(t *prop.Tensor, qp int, s float64) {
	t.V[qp].Zero()
	for i := 0; i < prop.Dim; i++ {
		t.V[qp].Set(i, i, s)
	}
}
