// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/diff/fd"
)

func swellingRegistry(tst *testing.T) *prop.Registry {
	reg := prop.NewRegistry(1)
	reg.AddVariable("c").Val[0] = 2.0
	reg.AddVariable("c_ref").Val[0] = 1.0
	_, err := prop.NewConstant(reg, "Omega", 1.0)
	require.NoError(tst, err)
	_, err = prop.NewConstant(reg, "swelling_coefficient", 0.1)
	require.NoError(tst, err)
	return reg
}

func Test_swelling01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swelling01")

	reg := swellingRegistry(tst)
	sw, err := NewSwelling(reg, &SwellingData{
		Conc:      []string{"c"},
		ConcRef:   []string{"c_ref"},
		MolarVols: []string{"Omega"},
	})
	require.NoError(tst, err)
	require.NoError(tst, sw.Compute(0))

	chk.Float64(tst, "Js", 1e-15, sw.Js(0), 1.1)
	s := math.Cbrt(1.1)
	chk.Deep2(tst, "Fs", 1e-15, rows(sw.Fs.V[0]), [][]float64{{s, 0, 0}, {0, s, 0}, {0, 0, s}})
	d := math.Pow(1.1, -2.0/3.0) / 3.0 * 0.1 * 1.0
	chk.Deep2(tst, "dFs/dc", 1e-15, rows(sw.DFsDc[0].V[0]), [][]float64{{d, 0, 0}, {0, d, 0}, {0, 0, d}})

	// published names
	require.True(tst, reg.HasTensor("swelling_deformation_gradient"))
	require.True(tst, reg.HasTensor(prop.DerivName("swelling_deformation_gradient", "c")))

	// numerical check
	c := reg.AddVariable("c")
	num := fd.Derivative(func(x float64) float64 {
		c.Val[0] = x
		return math.Cbrt(sw.Js(0))
	}, 2.0, &fd.Settings{Formula: fd.Central})
	chk.Float64(tst, "dFs/dc (num)", 1e-8, d, num)
}

func Test_swelling02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swelling02. configuration errors")

	reg := swellingRegistry(tst)

	// mismatched lists
	_, err := NewSwelling(reg, &SwellingData{
		Conc:      []string{"c", "c"},
		ConcRef:   []string{"c_ref"},
		MolarVols: []string{"Omega"},
	})
	require.Error(tst, err)
	_, err = NewSwelling(reg, &SwellingData{
		Conc:      []string{"c"},
		ConcRef:   []string{"c_ref"},
		MolarVols: []string{"Omega", "Omega"},
	})
	require.Error(tst, err)

	// missing molar volume
	_, err = NewSwelling(reg, &SwellingData{
		Conc:      []string{"c"},
		ConcRef:   []string{"c_ref"},
		MolarVols: []string{"Omega_Li"},
	})
	require.ErrorIs(tst, err, prop.ErrUndeclared)

	// missing swelling coefficient for base name
	_, err = NewSwelling(reg, &SwellingData{
		Base:      "anode",
		Conc:      []string{"c"},
		ConcRef:   []string{"c_ref"},
		MolarVols: []string{"Omega"},
	})
	require.ErrorIs(tst, err, prop.ErrUndeclared)
}
