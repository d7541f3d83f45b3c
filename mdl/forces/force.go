// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package forces implements thermodynamic forces conjugate to energy densities
package forces

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/mdl/prop"
)

// Data holds the names used by a thermodynamic force
type Data struct {
	Name string   // name of the total force
	Base string   // base name prepended to the force and to the energy densities
	Psis []string // (unprefixed) names of the energy densities contributing to the force
}

// ThermodynamicForce sums the derivatives of energy densities with respect to one variable
//
//   f = Σ ∂ψᵢ/∂v
//
type ThermodynamicForce struct {
	Kind prop.Kind // scalar or vector

	// scalar forces
	Scalar  *prop.Scalar   // total force
	DScalar []*prop.Scalar // contributions

	// vector forces
	Vector  *prop.Vector   // total force
	DVector []*prop.Vector // contributions
}

// NewHeatFlux returns the heat flux conjugate to ∇ln(T)
func NewHeatFlux(reg *prop.Registry, dat *Data, temperature string) (*ThermodynamicForce, error) {
	return New(reg, dat, prop.Grad(prop.Ln(temperature)), prop.KindVector)
}

// NewCurrentDensity returns the current density conjugate to ∇Φ
func NewCurrentDensity(reg *prop.Registry, dat *Data, phi string) (*ThermodynamicForce, error) {
	return New(reg, dat, prop.Grad(phi), prop.KindVector)
}

// NewChemicalPotential returns the chemical potential conjugate to c
func NewChemicalPotential(reg *prop.Registry, dat *Data, conc string) (*ThermodynamicForce, error) {
	return New(reg, dat, conc, prop.KindScalar)
}

// New returns a new thermodynamic force conjugate to variable v
//  Note: every energy density must have published ∂ψ/∂v already
func New(reg *prop.Registry, dat *Data, v string, kind prop.Kind) (o *ThermodynamicForce, err error) {
	if dat.Name == "" {
		return nil, chk.Err("name of thermodynamic force must be given")
	}
	me := prop.Prefix(dat.Base, dat.Name)
	if len(dat.Psis) == 0 {
		return nil, chk.Err("thermodynamic force %q requires at least one energy density", me)
	}
	o = &ThermodynamicForce{Kind: kind}
	for _, psi := range dat.Psis {
		name := prop.DerivName(prop.Prefix(dat.Base, psi), v)
		switch kind {
		case prop.KindScalar:
			d, err := reg.GetScalar(name, me)
			if err != nil {
				return nil, err
			}
			o.DScalar = append(o.DScalar, d)
		case prop.KindVector:
			d, err := reg.GetVector(name, me)
			if err != nil {
				return nil, err
			}
			o.DVector = append(o.DVector, d)
		default:
			return nil, chk.Err("thermodynamic force %q cannot be a %s", me, kind)
		}
	}
	if kind == prop.KindScalar {
		o.Scalar, err = reg.DeclareScalar(me, me)
	} else {
		o.Vector, err = reg.DeclareVector(me, me)
	}
	if err != nil {
		return nil, err
	}
	return
}

// Compute computes the total force at quadrature point qp
func (o *ThermodynamicForce) Compute(qp int) error {
	if o.Kind == prop.KindScalar {
		o.Scalar.V[qp] = 0
		for _, d := range o.DScalar {
			o.Scalar.V[qp] += d.V[qp]
		}
		return nil
	}
	f := o.Vector.V[qp]
	for i := range f {
		f[i] = 0
	}
	for _, d := range o.DVector {
		for i := range f {
			f[i] += d.V[qp][i]
		}
	}
	return nil
}
