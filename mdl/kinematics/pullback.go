// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kinematics implements the pull back of material tensors and eigen deformation gradients
package kinematics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// JMIN is the smallest Jacobian accepted by Pullback
const JMIN = 1e-14

// Identity returns a new Dim×Dim identity tensor
func Identity() *mat.Dense {
	I := mat.NewDense(prop.Dim, prop.Dim, nil)
	for i := 0; i < prop.Dim; i++ {
		I.Set(i, i, 1)
	}
	return I
}

// Pullback maps the material tensor sigma0 with the deformation gradient F
//
//   σ = J F⁻¹ σ₀ F⁻ᵀ    with    J = det(F)
//
//  Note: F == nil corresponds to the identity deformation; then σ = σ₀ and J = 1.
//        The result is symmetrised so that a symmetric σ₀ stays exactly symmetric.
func Pullback(sigma0, F mat.Matrix) (sigma *mat.Dense, J float64, err error) {
	sigma = mat.DenseCopyOf(sigma0)
	if F == nil {
		return sigma, 1, nil
	}
	Finv, J, err := inverse(F)
	if err != nil {
		return nil, 0, err
	}
	var tmp mat.Dense
	tmp.Mul(Finv, sigma0)
	sigma.Mul(&tmp, Finv.T())
	sigma.Scale(J, sigma)
	symmetrise(sigma)
	return
}

// DQuadraticDF computes the derivative of the quadratic form
//
//   ψ = ½ (σ g) · g    with    σ = J F⁻¹ σ₀ F⁻ᵀ
//
// with respect to the deformation gradient, keeping g fixed:
//
//   ∂ψ/∂F = ψ F⁻ᵀ - (F⁻ᵀ g) ⊗ (σ g)
//
//  Input:
//   F     -- deformation gradient
//   sigma -- pulled back tensor σ (output of Pullback)
//   g     -- [Dim] gradient vector
//   psi   -- ψ (already computed)
//  Output:
//   res -- ∂ψ/∂F
func DQuadraticDF(res *mat.Dense, F, sigma mat.Matrix, g []float64, psi float64) (err error) {
	Finv, _, err := inverse(F)
	if err != nil {
		return
	}
	a := make([]float64, prop.Dim) // F⁻ᵀ g
	b := make([]float64, prop.Dim) // σ g
	for i := 0; i < prop.Dim; i++ {
		for j := 0; j < prop.Dim; j++ {
			a[i] += Finv.At(j, i) * g[j]
			b[i] += sigma.At(i, j) * g[j]
		}
	}
	for i := 0; i < prop.Dim; i++ {
		for j := 0; j < prop.Dim; j++ {
			res.Set(i, j, psi*Finv.At(j, i)-a[i]*b[j])
		}
	}
	return
}

// MatVec computes res = a · v
func MatVec(res []float64, a mat.Matrix, v []float64) {
	r, _ := a.Dims()
	for i := 0; i < r; i++ {
		res[i] = floats.Dot(mat.Row(nil, i, a), v)
	}
}

// inverse returns F⁻¹ and det(F)
func inverse(F mat.Matrix) (Finv *mat.Dense, J float64, err error) {
	J = mat.Det(F)
	if J < JMIN {
		return nil, 0, chk.Err("deformation gradient must have a positive determinant. J=%g is invalid", J)
	}
	Finv = mat.NewDense(prop.Dim, prop.Dim, nil)
	err = Finv.Inverse(F)
	if err != nil {
		return nil, 0, chk.Err("cannot invert deformation gradient:\n%v", err)
	}
	return
}

// symmetrise sets a = ½(a + aᵀ)
func symmetrise(a *mat.Dense) {
	r, _ := a.Dims()
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			m := (a.At(i, j) + a.At(j, i)) / 2
			a.Set(i, j, m)
			a.Set(j, i, m)
		}
	}
}
