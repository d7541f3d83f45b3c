// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rows returns the rows of a
func rows(a mat.Matrix) (res [][]float64) {
	r, _ := a.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = mat.Row(nil, i, a)
	}
	return
}

// setT sets T and ∇T such that ∇ln(T) = g
func setT(T *prop.Variable, val float64, g []float64) {
	T.Val[0] = val
	floats.ScaleTo(T.Grad[0], val, g)
}

func newFourier(tst *testing.T, reg *prop.Registry, base string) *EnergyDensity {
	mdl, err := New("fourier")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))
	ed, err := NewEnergyDensity(reg, &Data{Name: "psi_h", Base: base, Temperature: "T"}, mdl)
	require.NoError(tst, err)
	return ed
}

func Test_fourier01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourier01. conductivity")

	mdl, err := New("fourier")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(dbf.Params{
		&dbf.P{N: "a0", V: 1},
		&dbf.P{N: "a1", V: 2},
		&dbf.P{N: "a2", V: 3},
		&dbf.P{N: "a3", V: 4},
		&dbf.P{N: "kx", V: 1},
		&dbf.P{N: "ky", V: 2},
		&dbf.P{N: "kz", V: 3},
	}))
	chk.Float64(tst, "k(2)", 1e-15, mdl.Kval(2), 1+2*2+3*4+4*8)
	chk.Float64(tst, "dk/dT(2)", 1e-15, mdl.DkDT(2), 2+2*3*2+3*4*4)
	chk.Deep2(tst, "kcte", 1e-17, rows(mdl.Kcte()), [][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	chk.Float64(tst, "dk/dT (num)", 1e-7, mdl.DkDT(2), fd.Derivative(mdl.Kval, 2, &fd.Settings{Formula: fd.Central}))

	// errors
	_, err = New("fick")
	require.Error(tst, err)
	require.Error(tst, mdl.Init(nil))
	require.Error(tst, mdl.Init(dbf.Params{&dbf.P{N: "k", V: -1}}))
}

func Test_fourier02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourier02. rigid energy density")

	reg := prop.NewRegistry(1)
	T := reg.AddVariable("T")
	g := []float64{0.01, -0.02, 0.03}
	setT(T, 300, g)
	ed := newFourier(tst, reg, "")
	require.False(tst, ed.Def.Coupled)
	require.True(tst, reg.HasVector("dpsi_h/dgrad_ln(T)"))
	require.True(tst, reg.HasScalar("dpsi_h/dT"))
	require.NoError(tst, ed.Compute(0))

	// k = 1 + 2e-3 300 = 1.6 and kcte = 0.5 I
	g2 := floats.Dot(g, g)
	chk.Float64(tst, "ψ", 1e-15, ed.Psi.V[0], 0.5*300*1.6*0.5*g2)
	chk.Array(tst, "∂ψ/∂∇ln(T)", 1e-14, ed.DPsiDGradLn.V[0], []float64{300 * 1.6 * 0.5 * 0.01, -300 * 1.6 * 0.5 * 0.02, 300 * 1.6 * 0.5 * 0.03})

	// ∂ψ/∂∇ln(T) against finite differences
	num := fd.Gradient(nil, func(x []float64) float64 {
		setT(T, 300, x)
		if err := ed.Compute(0); err != nil {
			tst.Fatalf("compute failed: %v", err)
		}
		return ed.Psi.V[0]
	}, g, &fd.Settings{Formula: fd.Central, Step: 1e-4})
	setT(T, 300, g)
	require.NoError(tst, ed.Compute(0))
	chk.Array(tst, "∂ψ/∂∇ln(T) (num)", 1e-8, ed.DPsiDGradLn.V[0], num)

	// ∂ψ/∂T against finite differences
	dT := fd.Derivative(func(x float64) float64 {
		setT(T, x, g)
		if err := ed.Compute(0); err != nil {
			tst.Fatalf("compute failed: %v", err)
		}
		return ed.Psi.V[0]
	}, 300, &fd.Settings{Formula: fd.Central, Step: 1e-3})
	setT(T, 300, g)
	require.NoError(tst, ed.Compute(0))
	chk.Float64(tst, "∂ψ/∂T", 1e-9, ed.DPsiDT.V[0], dT)
}

func Test_fourier03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourier03. deformable energy density")

	reg := prop.NewRegistry(2)
	T := reg.AddVariable("T")
	g := []float64{0.01, -0.02, 0.03}
	setT(T, 300, g)
	F, err := reg.DeclareTensor("anode_deformation_gradient", "host")
	require.NoError(tst, err)
	F.V[0].SetRow(0, []float64{1.1, 0.05, 0.0})
	F.V[0].SetRow(1, []float64{0.0, 0.95, 0.02})
	F.V[0].SetRow(2, []float64{0.01, 0.0, 1.02})
	ed := newFourier(tst, reg, "anode")
	require.True(tst, ed.Def.Coupled)
	require.True(tst, reg.HasTensor("danode_psi_h/danode_deformation_gradient"))

	F0 := mat.DenseCopyOf(F.V[0])
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			num := fd.Derivative(func(x float64) float64 {
				F.V[0].Copy(F0)
				F.V[0].Set(i, j, x)
				if err := ed.Compute(0); err != nil {
					tst.Fatalf("compute failed: %v", err)
				}
				return ed.Psi.V[0]
			}, F0.At(i, j), &fd.Settings{Formula: fd.Central})
			F.V[0].Copy(F0)
			require.NoError(tst, ed.Compute(0))
			chk.Float64(tst, io.Sf("∂ψ/∂F%d%d", i, j), 1e-8, ed.DPsiDF.V[0].At(i, j), num)
		}
	}

	// second point has a zero deformation gradient and a zero temperature
	require.Error(tst, ed.Compute(1))
	T.Val[1] = 300
	require.Error(tst, ed.Compute(1))
}
