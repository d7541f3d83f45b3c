// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package electro implements electrical energy densities and their thermodynamic forces
//
//  The electrical energy density ψ depends on at least the electric potential Φ, its
//  gradient ∇Φ and, if a deformation gradient F exists, on F. Each model provides the
//  derivatives; EnergyDensity publishes ψ and all derivatives in the registry.
package electro

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/mat"
)

// Point holds the inputs and intermediate results of an energy density at one quadrature point
type Point struct {

	// input
	Qp      int        // index of quadrature point
	Phi     float64    // Φ
	GradPhi []float64  // ∇Φ
	F       mat.Matrix // deformation gradient; nil if not deformation-coupled

	// precomputed by models
	Sigma *mat.Dense // pulled back conductivity
	J     float64    // det(F)

	// computed by EnergyDensity, in this order
	DPsiDPhi     float64    // ∂ψ/∂Φ
	DPsiDGradPhi []float64  // ∂ψ/∂∇Φ
	DPsiDF       *mat.Dense // ∂ψ/∂F; nil if not deformation-coupled
	Psi          float64    // ψ
}

// Model defines electrical energy density models
type Model interface {
	Init(prms dbf.Params) error            // Init initialises this structure
	GetPrms(example bool) dbf.Params       // gets (an example) of parameters
	Precompute(p *Point) error             // computes intermediate quantities
	DPsiDPhi(p *Point) float64             // ∂ψ/∂Φ
	DPsiDGradPhi(res []float64, p *Point)  // ∂ψ/∂∇Φ
	DPsiDF(res *mat.Dense, p *Point) error // ∂ψ/∂F; only called if p.F != nil
	Psi(p *Point) float64                  // ψ; called after all derivatives
}

// WithExtraDerivs defines models publishing derivatives besides ∂ψ/∂Φ, ∂ψ/∂∇Φ and ∂ψ/∂F
type WithExtraDerivs interface {
	DeclareExtra(reg *prop.Registry, psiName string, dat *Data) error // declares at construction
	ComputeExtra(p *Point) error                                      // computes after ψ
}

// New electrical energy density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'electro' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
