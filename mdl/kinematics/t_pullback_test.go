// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func dense(a [][]float64) *mat.Dense {
	m := mat.NewDense(len(a), len(a[0]), nil)
	for i := range a {
		m.SetRow(i, a[i])
	}
	return m
}

func rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	res := make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = m.At(i, j)
		}
	}
	return res
}

var sigma0 = [][]float64{
	{2.0, 0.3, 0.1},
	{0.3, 1.5, 0.2},
	{0.1, 0.2, 1.0},
}

var Fdef = [][]float64{
	{1.10, 0.05, 0.02},
	{0.03, 0.95, 0.04},
	{0.01, 0.02, 1.20},
}

func Test_pullback01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pullback01. identity")

	// absent deformation gradient
	sig, J, err := Pullback(dense(sigma0), nil)
	require.NoError(tst, err)
	chk.Float64(tst, "J", 1e-17, J, 1)
	chk.Deep2(tst, "σ", 1e-17, rows(sig), sigma0)

	// explicit identity
	sig, J, err = Pullback(dense(sigma0), Identity())
	require.NoError(tst, err)
	chk.Float64(tst, "J", 1e-15, J, 1)
	chk.Deep2(tst, "σ", 1e-15, rows(sig), sigma0)
}

func Test_pullback02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pullback02. symmetry and positive-definiteness")

	F := dense(Fdef)
	sig, J, err := Pullback(dense(sigma0), F)
	require.NoError(tst, err)
	chk.Float64(tst, "J", 1e-14, J, mat.Det(F))

	// reference: J F⁻¹ σ₀ F⁻ᵀ
	var Finv, tmp, ref mat.Dense
	require.NoError(tst, Finv.Inverse(F))
	tmp.Mul(&Finv, dense(sigma0))
	ref.Mul(&tmp, Finv.T())
	ref.Scale(J, &ref)
	chk.Deep2(tst, "σ", 1e-14, rows(sig), rows(&ref))

	// symmetric
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Float64(tst, io.Sf("σ%d%d-σ%d%d", i, j, j, i), 1e-17, sig.At(i, j), sig.At(j, i))
		}
	}

	// positive-definite
	var chol mat.Cholesky
	ok := chol.Factorize(mat.NewSymDense(3, mat.DenseCopyOf(sig).RawMatrix().Data))
	require.True(tst, ok)
}

func Test_pullback03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pullback03. invalid deformation gradient")

	_, _, err := Pullback(dense(sigma0), mat.NewDense(3, 3, nil))
	require.Error(tst, err)

	reflection := Identity()
	reflection.Set(0, 0, -1)
	_, _, err = Pullback(dense(sigma0), reflection)
	require.Error(tst, err)
}

func Test_pullback04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pullback04. ∂ψ/∂F")

	g := []float64{0.7, -1.2, 0.4}
	psiOf := func(F mat.Matrix) float64 {
		sig, _, err := Pullback(dense(sigma0), F)
		if err != nil {
			tst.Fatalf("pullback failed: %v", err)
		}
		sg := make([]float64, 3)
		MatVec(sg, sig, g)
		return 0.5 * (sg[0]*g[0] + sg[1]*g[1] + sg[2]*g[2])
	}

	F := dense(Fdef)
	sig, _, err := Pullback(dense(sigma0), F)
	require.NoError(tst, err)
	psi := psiOf(F)
	dpsidF := mat.NewDense(3, 3, nil)
	require.NoError(tst, DQuadraticDF(dpsidF, F, sig, g, psi))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			num := fd.Derivative(func(x float64) float64 {
				Ftmp := mat.DenseCopyOf(F)
				Ftmp.Set(i, j, x)
				return psiOf(Ftmp)
			}, F.At(i, j), &fd.Settings{Formula: fd.Central})
			if chk.Verbose {
				io.Pforan("∂ψ/∂F%d%d: ana=%v num=%v\n", i, j, dpsidF.At(i, j), num)
			}
			chk.Float64(tst, io.Sf("∂ψ/∂F%d%d", i, j), 1e-7, dpsidF.At(i, j), num)
		}
	}
}
