// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/mdl/kinematics"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Data holds the names used by a heat conduction energy density
type Data struct {
	Name        string // name of the energy density ψ
	Base        string // base name prepended to declared and requested properties
	Temperature string // name of the temperature variable
}

// EnergyDensity computes the heat conduction energy density
//
//   κ₀ = J F⁻¹ kcte F⁻ᵀ        ∇ln(T) = ∇T / T
//
//   ∂ψ/∂∇ln(T) = T k(T) κ₀ ∇ln(T)        ψ = ½ ∂ψ/∂∇ln(T) · ∇ln(T)
//
//   ∂ψ/∂T = ½ (k + T dk/dT) (κ₀ ∇ln(T)) · ∇ln(T)    with ∇ln(T) fixed
//
type EnergyDensity struct {
	Data Data                    // names
	Mdl  Model                   // model
	Def  *kinematics.Deformation // deformation gradient capability
	T    *prop.Variable          // temperature

	// declared properties
	Psi         *prop.Scalar // ψ
	DPsiDT      *prop.Scalar // ∂ψ/∂T
	DPsiDGradLn *prop.Vector // ∂ψ/∂∇ln(T)
	DPsiDF      *prop.Tensor // ∂ψ/∂F; nil if !Def.Coupled
}

// NewEnergyDensity declares ψ and its derivatives
func NewEnergyDensity(reg *prop.Registry, dat *Data, mdl Model) (o *EnergyDensity, err error) {
	if dat.Name == "" || dat.Temperature == "" {
		return nil, chk.Err("heat conduction energy density requires a name and the name of the temperature")
	}
	o = &EnergyDensity{Data: *dat, Mdl: mdl}
	psi := prop.Prefix(dat.Base, dat.Name)
	if o.T, err = reg.Couple(dat.Temperature, psi); err != nil {
		return nil, err
	}
	if o.Def, err = kinematics.NewDeformation(reg, dat.Base, psi); err != nil {
		return nil, err
	}
	if o.Psi, err = reg.DeclareScalar(psi, psi); err != nil {
		return nil, err
	}
	if o.DPsiDT, err = reg.DeclareScalar(prop.DerivName(psi, dat.Temperature), psi); err != nil {
		return nil, err
	}
	if o.DPsiDGradLn, err = reg.DeclareVector(prop.DerivName(psi, prop.Grad(prop.Ln(dat.Temperature))), psi); err != nil {
		return nil, err
	}
	if o.Def.Coupled {
		if o.DPsiDF, err = reg.DeclareTensor(prop.DerivName(psi, o.Def.Name), psi); err != nil {
			return nil, err
		}
	}
	return
}

// PsiName returns the (prefixed) name of ψ
func (o *EnergyDensity) PsiName() string {
	return prop.Prefix(o.Data.Base, o.Data.Name)
}

// Compute computes ψ and all declared derivatives at quadrature point qp
func (o *EnergyDensity) Compute(qp int) (err error) {

	// precursors
	T := o.T.Val[qp]
	if T <= 0 {
		return chk.Err("%q: temperature must be positive. T=%g is invalid", o.Psi.Name, T)
	}
	g := make([]float64, prop.Dim)
	floats.ScaleTo(g, 1/T, o.T.Grad[qp])
	F := o.Def.At(qp)
	kappa0, _, err := kinematics.Pullback(o.Mdl.Kcte(), F)
	if err != nil {
		return chk.Err("%q failed at quadrature point %d:\n%v", o.Psi.Name, qp, err)
	}
	kg := make([]float64, prop.Dim)
	kinematics.MatVec(kg, kappa0, g)
	q := floats.Dot(kg, g)
	k := o.Mdl.Kval(T)

	// ∂ψ/∂T
	o.DPsiDT.V[qp] = 0.5 * (k + T*o.Mdl.DkDT(T)) * q

	// ∂ψ/∂∇ln(T)
	floats.ScaleTo(o.DPsiDGradLn.V[qp], T*k, kg)

	// ∂ψ/∂F
	psi := 0.5 * T * k * q
	if o.Def.Coupled {
		var Tkappa mat.Dense
		Tkappa.Scale(T*k, kappa0)
		if err = kinematics.DQuadraticDF(o.DPsiDF.V[qp], F, &Tkappa, g, psi); err != nil {
			return
		}
	}

	// ψ
	o.Psi.V[qp] = psi
	return
}
