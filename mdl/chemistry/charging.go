// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chemistry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/kinematics"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Charging implements the mass transport of a charged species driven by the electric potential
//
//        z F σ
//   Ξ = ───────        M = J F⁻¹ (Ξ I) F⁻ᵀ
//         R T
//
//   ∂ψ/∂∇Φ = c M ∇Φ        ψ = ½ ∂ψ/∂∇Φ · ∇Φ
//
//   ∂ψ/∂c = ½ M ∇Φ · ∇Φ    ∂ψ/∂∇c = 0        ∂ψ/∂ln(T) = -ψ
//
type Charging struct {

	// parameters
	Z     float64 // charge number
	Sigma float64 // mobility
	F     float64 // Faraday's constant
	R     float64 // ideal gas constant

	// coupling
	Phi *prop.Variable // electric potential
	T   *prop.Variable // temperature

	// declared properties
	DPsiDGradPhi *prop.Vector // ∂ψ/∂∇Φ
	DPsiDlnT     *prop.Scalar // ∂ψ/∂ln(T)
}

// add model to factory
func init() {
	allocators["charging"] = func() Model { return new(Charging) }
}

// Init initialises this structure
func (o *Charging) Init(prms dbf.Params) (err error) {
	if o.Z, err = prop.ScalarPrm(prms, "z", "charging model"); err != nil {
		return
	}
	if o.Sigma, err = prop.ScalarPrm(prms, "sigma", "charging model"); err != nil {
		return
	}
	if o.F, err = prop.ScalarPrm(prms, "F", "charging model"); err != nil {
		return
	}
	if o.R, err = prop.ScalarPrm(prms, "R", "charging model"); err != nil {
		return
	}
	if o.Sigma < 0 {
		return chk.Err("charging model: mobility must be non-negative. sigma=%g is invalid", o.Sigma)
	}
	if o.R <= 0 {
		return chk.Err("charging model: ideal gas constant must be positive. R=%g is invalid", o.R)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Charging) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "z", V: 1},
		&dbf.P{N: "sigma", V: 1e-3},
		&dbf.P{N: "F", V: 96485.33212},
		&dbf.P{N: "R", V: 8.314462618},
	}
}

// Connect couples the electric potential and the temperature
func (o *Charging) Connect(reg *prop.Registry, dat *Data) (err error) {
	me := prop.Prefix(dat.Base, dat.Name)
	if dat.Phi == "" || dat.Temperature == "" {
		return chk.Err("charging model %q requires the names of the electric potential and the temperature", me)
	}
	if o.Phi, err = reg.Couple(dat.Phi, me); err != nil {
		return
	}
	o.T, err = reg.Couple(dat.Temperature, me)
	return
}

// DeclareExtra declares ∂ψ/∂∇Φ and ∂ψ/∂ln(T)
func (o *Charging) DeclareExtra(reg *prop.Registry, psiName string, dat *Data) (err error) {
	if o.DPsiDGradPhi, err = reg.DeclareVector(prop.DerivName(psiName, prop.Grad(dat.Phi)), psiName); err != nil {
		return
	}
	o.DPsiDlnT, err = reg.DeclareScalar(prop.DerivName(psiName, prop.Ln(dat.Temperature)), psiName)
	return
}

// Precompute computes the pulled back mobility tensor and ∂ψ/∂∇Φ
func (o *Charging) Precompute(p *Point) (err error) {
	T := o.T.Val[p.Qp]
	if T <= 0 {
		return chk.Err("charging model: temperature must be positive. T=%g is invalid", T)
	}
	Ξ := o.Z * o.F * o.Sigma / (o.R * T)
	p.Sigma, _, err = kinematics.Pullback(scaledIdentity(Ξ), p.F)
	if err != nil {
		return
	}
	d := o.DPsiDGradPhi.V[p.Qp]
	kinematics.MatVec(d, p.Sigma, o.Phi.Grad[p.Qp])
	floats.Scale(p.C, d)
	return
}

// DPsiDC returns ∂ψ/∂c
func (o *Charging) DPsiDC(p *Point) float64 {
	gradPhi := o.Phi.Grad[p.Qp]
	Mg := make([]float64, prop.Dim)
	kinematics.MatVec(Mg, p.Sigma, gradPhi)
	return 0.5 * floats.Dot(Mg, gradPhi)
}

// DPsiDGradC computes ∂ψ/∂∇c
func (o *Charging) DPsiDGradC(res []float64, p *Point) {
	for i := range res {
		res[i] = 0
	}
}

// DPsiDF computes ∂ψ/∂F
func (o *Charging) DPsiDF(res *mat.Dense, p *Point) error {
	gradPhi := o.Phi.Grad[p.Qp]
	var cM mat.Dense
	cM.Scale(p.C, p.Sigma)
	psi := 0.5 * floats.Dot(o.DPsiDGradPhi.V[p.Qp], gradPhi)
	return kinematics.DQuadraticDF(res, p.F, &cM, gradPhi, psi)
}

// Psi returns ψ
func (o *Charging) Psi(p *Point) float64 {
	return 0.5 * floats.Dot(o.DPsiDGradPhi.V[p.Qp], o.Phi.Grad[p.Qp])
}

// ComputeExtra computes ∂ψ/∂ln(T)
func (o *Charging) ComputeExtra(p *Point) error {
	o.DPsiDlnT.V[p.Qp] = -p.Psi
	return nil
}

// scaledIdentity returns s I
func scaledIdentity(s float64) *mat.Dense {
	I := kinematics.Identity()
	I.Scale(s, I)
	return I
}
