// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electro

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/kinematics"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BulkChargeTransport implements the electrical energy density of charge transfer in the bulk
//
//   σ = J F⁻¹ σ₀ F⁻ᵀ
//
//   ∂ψ/∂∇Φ = σ ∇Φ        ψ = ½ ∂ψ/∂∇Φ · ∇Φ        ∂ψ/∂Φ = 0
//
//   ∂ψ/∂ln(T) = ∂ψ/∂∇Φ · ∇Φ
//
type BulkChargeTransport struct {
	Sigma0   *mat.Dense   // electric conductivity σ₀
	DPsiDlnT *prop.Scalar // ∂ψ/∂ln(T)
}

// add model to factory
func init() {
	allocators["bulk-charge-transport"] = func() Model { return new(BulkChargeTransport) }
}

// Init initialises this structure
func (o *BulkChargeTransport) Init(prms dbf.Params) (err error) {
	o.Sigma0, err = prop.TensorPrm(prms, "sigma", 1e-14, "bulk-charge-transport model")
	return
}

// GetPrms gets (an example) of parameters
func (o BulkChargeTransport) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "sigma", V: 1.0},
	}
}

// DeclareExtra declares ∂ψ/∂ln(T)
func (o *BulkChargeTransport) DeclareExtra(reg *prop.Registry, psiName string, dat *Data) (err error) {
	if dat.Temperature == "" {
		return chk.Err("bulk-charge-transport model %q requires the name of the temperature", psiName)
	}
	o.DPsiDlnT, err = reg.DeclareScalar(prop.DerivName(psiName, prop.Ln(dat.Temperature)), psiName)
	return
}

// Precompute pulls back the electric conductivity
func (o *BulkChargeTransport) Precompute(p *Point) (err error) {
	p.Sigma, p.J, err = kinematics.Pullback(o.Sigma0, p.F)
	return
}

// DPsiDPhi returns ∂ψ/∂Φ
func (o *BulkChargeTransport) DPsiDPhi(p *Point) float64 { return 0 }

// DPsiDGradPhi computes ∂ψ/∂∇Φ
func (o *BulkChargeTransport) DPsiDGradPhi(res []float64, p *Point) {
	kinematics.MatVec(res, p.Sigma, p.GradPhi)
}

// DPsiDF computes ∂ψ/∂F
func (o *BulkChargeTransport) DPsiDF(res *mat.Dense, p *Point) error {
	psi := 0.5 * floats.Dot(p.DPsiDGradPhi, p.GradPhi)
	return kinematics.DQuadraticDF(res, p.F, p.Sigma, p.GradPhi, psi)
}

// Psi returns ψ
func (o *BulkChargeTransport) Psi(p *Point) float64 {
	return 0.5 * floats.Dot(p.DPsiDGradPhi, p.GradPhi)
}

// ComputeExtra computes ∂ψ/∂ln(T)
func (o *BulkChargeTransport) ComputeExtra(p *Point) error {
	o.DPsiDlnT.V[p.Qp] = floats.Dot(p.DPsiDGradPhi, p.GradPhi)
	return nil
}
