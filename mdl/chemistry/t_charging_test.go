// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chemistry

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func chargingRegistry() *prop.Registry {
	reg := prop.NewRegistry(1)
	c := reg.AddVariable("c")
	c.Val[0] = 0.8
	copy(c.Grad[0], []float64{0.1, 0.2, 0.3})
	Phi := reg.AddVariable("Phi")
	copy(Phi.Grad[0], []float64{0.02, -0.01, 0.03})
	reg.AddVariable("T").Val[0] = 300
	return reg
}

func newCharging(tst *testing.T, reg *prop.Registry) *EnergyDensity {
	mdl, err := New("charging")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))
	ed, err := NewEnergyDensity(reg, &Data{Name: "psi_c", Conc: "c", Phi: "Phi", Temperature: "T"}, mdl)
	require.NoError(tst, err)
	return ed
}

func Test_charging01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("charging01. rigid")

	reg := chargingRegistry()
	ed := newCharging(tst, reg)
	require.False(tst, ed.Def.Coupled)
	require.NoError(tst, ed.Compute(0))

	m := ed.Mdl.(*Charging)
	Ξ := m.Z * m.F * m.Sigma / (m.R * 300)
	gradPhi := []float64{0.02, -0.01, 0.03}
	g2 := floats.Dot(gradPhi, gradPhi)
	chk.Float64(tst, "ψ", 1e-15, ed.Psi.V[0], 0.5*Ξ*0.8*g2)
	chk.Float64(tst, "∂ψ/∂c", 1e-15, ed.DPsiDC.V[0], 0.5*Ξ*g2)
	chk.Array(tst, "∂ψ/∂∇c", 1e-17, ed.DPsiDGradC.V[0], []float64{0, 0, 0})
	d := m.DPsiDGradPhi.V[0]
	chk.Array(tst, "∂ψ/∂∇Φ", 1e-15, d, []float64{Ξ * 0.8 * 0.02, -Ξ * 0.8 * 0.01, Ξ * 0.8 * 0.03})
	chk.Float64(tst, "ψ = ½ ∂ψ/∂∇Φ·∇Φ", 1e-15, ed.Psi.V[0], 0.5*floats.Dot(d, gradPhi))

	// ∂ψ/∂ln(T) against finite differences
	T := reg.AddVariable("T")
	num := fd.Derivative(func(lnT float64) float64 {
		T.Val[0] = math.Exp(lnT)
		if err := ed.Compute(0); err != nil {
			tst.Fatalf("compute failed: %v", err)
		}
		return ed.Psi.V[0]
	}, math.Log(300), &fd.Settings{Formula: fd.Central})
	T.Val[0] = 300
	require.NoError(tst, ed.Compute(0))
	chk.Float64(tst, "∂ψ/∂ln(T)", 1e-9, m.DPsiDlnT.V[0], num)

	// ∂ψ/∂c against finite differences
	c := reg.AddVariable("c")
	num = fd.Derivative(func(x float64) float64 {
		c.Val[0] = x
		if err := ed.Compute(0); err != nil {
			tst.Fatalf("compute failed: %v", err)
		}
		return ed.Psi.V[0]
	}, 0.8, &fd.Settings{Formula: fd.Central})
	chk.Float64(tst, "∂ψ/∂c (num)", 1e-9, 0.5*Ξ*g2, num)
}

func Test_charging02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("charging02. deformable")

	reg := chargingRegistry()
	F, err := reg.DeclareTensor("cathode_deformation_gradient", "host")
	require.NoError(tst, err)
	F.V[0].SetRow(0, []float64{1.05, 0.02, 0.0})
	F.V[0].SetRow(1, []float64{0.01, 0.97, 0.0})
	F.V[0].SetRow(2, []float64{0.0, 0.03, 1.1})

	mdl, err := New("charging")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))
	ed, err := NewEnergyDensity(reg, &Data{Name: "psi_c", Base: "cathode", Conc: "c", Phi: "Phi", Temperature: "T"}, mdl)
	require.NoError(tst, err)
	require.True(tst, ed.Def.Coupled)
	require.True(tst, reg.HasTensor("dcathode_psi_c/dcathode_deformation_gradient"))

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
			chk.Float64(tst, io.Sf("∂ψ/∂F%d%d", i, j), 1e-9, ed.DPsiDF.V[0].At(i, j), num)
		}
	}
}

func Test_charging03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("charging03. configuration errors")

	_, err := New("nernst-planck")
	require.Error(tst, err)

	mdl, err := New("charging")
	require.NoError(tst, err)
	require.Error(tst, mdl.Init(nil))
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))

	// missing temperature name
	_, err = NewEnergyDensity(chargingRegistry(), &Data{Name: "psi_c", Conc: "c", Phi: "Phi"}, mdl)
	require.Error(tst, err)

	// missing concentration variable
	_, err = NewEnergyDensity(chargingRegistry(), &Data{Name: "psi_c", Conc: "c_Li", Phi: "Phi", Temperature: "T"}, mdl)
	require.Error(tst, err)
}
