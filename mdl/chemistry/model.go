// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chemistry implements chemical energy densities of (charged) species
package chemistry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/mat"
)

// Point holds the inputs and intermediate results of a chemical energy density at one quadrature point
type Point struct {

	// input
	Qp    int        // index of quadrature point
	C     float64    // concentration c
	GradC []float64  // ∇c
	F     mat.Matrix // deformation gradient; nil if not deformation-coupled

	// precomputed by models
	Sigma *mat.Dense // pulled back mobility tensor

	// computed by EnergyDensity, in this order
	DPsiDC     float64    // ∂ψ/∂c
	DPsiDGradC []float64  // ∂ψ/∂∇c
	DPsiDF     *mat.Dense // ∂ψ/∂F; nil if not deformation-coupled
	Psi        float64    // ψ
}

// Model defines chemical energy density models
type Model interface {
	Init(prms dbf.Params) error                  // Init initialises this structure
	GetPrms(example bool) dbf.Params             // gets (an example) of parameters
	Connect(reg *prop.Registry, dat *Data) error // couples variables needed by the model
	Precompute(p *Point) error                   // computes intermediate quantities
	DPsiDC(p *Point) float64                     // ∂ψ/∂c
	DPsiDGradC(res []float64, p *Point)          // ∂ψ/∂∇c
	DPsiDF(res *mat.Dense, p *Point) error       // ∂ψ/∂F; only called if p.F != nil
	Psi(p *Point) float64                        // ψ; called after all derivatives
}

// WithExtraDerivs defines models publishing derivatives besides ∂ψ/∂c, ∂ψ/∂∇c and ∂ψ/∂F
type WithExtraDerivs interface {
	DeclareExtra(reg *prop.Registry, psiName string, dat *Data) error // declares at construction
	ComputeExtra(p *Point) error                                      // computes after ψ
}

// New chemical energy density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'chemistry' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
