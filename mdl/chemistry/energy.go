// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chemistry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/mdl/kinematics"
	"github.com/tianjuchen/eel/mdl/prop"
)

// Data holds the names used by a chemical energy density
type Data struct {
	Name        string // name of the chemical energy density ψ
	Base        string // base name prepended to declared and requested properties
	Conc        string // name of the concentration variable
	Phi         string // name of the electric potential variable; required by charged species
	Temperature string // name of the temperature variable; required by some models
}

// EnergyDensity computes a chemical energy density and its derivatives
type EnergyDensity struct {

	// input
	Data Data  // names
	Mdl  Model // model

	// coupling
	Def *kinematics.Deformation // deformation gradient capability
	C   *prop.Variable          // concentration

	// declared properties
	Psi        *prop.Scalar // ψ
	DPsiDC     *prop.Scalar // ∂ψ/∂c
	DPsiDGradC *prop.Vector // ∂ψ/∂∇c
	DPsiDF     *prop.Tensor // ∂ψ/∂F; nil if !Def.Coupled

	// auxiliary
	extra WithExtraDerivs // model with extra derivatives; may be nil
}

// NewEnergyDensity declares ψ and its derivatives
func NewEnergyDensity(reg *prop.Registry, dat *Data, mdl Model) (o *EnergyDensity, err error) {

	// check
	if dat.Name == "" {
		return nil, chk.Err("name of chemical energy density must be given")
	}
	if dat.Conc == "" {
		return nil, chk.Err("chemical energy density %q requires the name of the concentration", dat.Name)
	}

	// new structure
	o = &EnergyDensity{Data: *dat, Mdl: mdl}
	psi := o.PsiName()

	// coupled variables
	if o.C, err = reg.Couple(dat.Conc, psi); err != nil {
		return nil, err
	}
	if o.Def, err = kinematics.NewDeformation(reg, dat.Base, psi); err != nil {
		return nil, err
	}
	if err = mdl.Connect(reg, &o.Data); err != nil {
		return nil, err
	}

	// declare ψ and derivatives
	if o.Psi, err = reg.DeclareScalar(psi, psi); err != nil {
		return nil, err
	}
	if o.DPsiDC, err = reg.DeclareScalar(prop.DerivName(psi, dat.Conc), psi); err != nil {
		return nil, err
	}
	if o.DPsiDGradC, err = reg.DeclareVector(prop.DerivName(psi, prop.Grad(dat.Conc)), psi); err != nil {
		return nil, err
	}
	if o.Def.Coupled {
		if o.DPsiDF, err = reg.DeclareTensor(prop.DerivName(psi, o.Def.Name), psi); err != nil {
			return nil, err
		}
	}

	// extra derivatives
	if m, ok := mdl.(WithExtraDerivs); ok {
		if err = m.DeclareExtra(reg, psi, &o.Data); err != nil {
			return nil, err
		}
		o.extra = m
	}
	return
}

// PsiName returns the (prefixed) name of ψ
func (o *EnergyDensity) PsiName() string {
	return prop.Prefix(o.Data.Base, o.Data.Name)
}

// Compute computes ψ and all declared derivatives at quadrature point qp
//  Note: the derivatives are computed before ψ
func (o *EnergyDensity) Compute(qp int) (err error) {

	// input
	p := &Point{
		Qp:         qp,
		C:          o.C.Val[qp],
		GradC:      o.C.Grad[qp],
		F:          o.Def.At(qp),
		DPsiDGradC: o.DPsiDGradC.V[qp],
	}

	// precursors
	if err = o.Mdl.Precompute(p); err != nil {
		return chk.Err("%q failed at quadrature point %d:\n%v", o.PsiName(), qp, err)
	}

	// ∂ψ/∂c and ∂ψ/∂∇c
	p.DPsiDC = o.Mdl.DPsiDC(p)
	o.DPsiDC.V[qp] = p.DPsiDC
	o.Mdl.DPsiDGradC(p.DPsiDGradC, p)

	// ∂ψ/∂F
	if o.Def.Coupled {
		p.DPsiDF = o.DPsiDF.V[qp]
		if err = o.Mdl.DPsiDF(p.DPsiDF, p); err != nil {
			return chk.Err("%q failed at quadrature point %d:\n%v", o.PsiName(), qp, err)
		}
	}

	// ψ
	p.Psi = o.Mdl.Psi(p)
	o.Psi.V[qp] = p.Psi

	// extra derivatives
	if o.extra != nil {
		return o.extra.ComputeExtra(p)
	}
	return
}
