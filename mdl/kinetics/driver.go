// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/dual"
)

// State holds the results of one evaluation of an interface kinetics law
type State struct {
	Eta    float64 // overpotential
	T      float64 // averaged temperature
	I      float64 // current density
	DiDeta float64 // di/dη
	Num    float64 // di/dη computed with finite differences
	RelErr float64 // |DiDeta - Num| / max(1, |DiDeta|)
}

// Driver sweeps the overpotential of interface kinetics laws
type Driver struct {

	// input
	Mdl Model    // kinetics law
	Avg Averager // temperature averaging policy

	// settings
	Silent bool    // do not show messages
	TolD   float64 // tolerance to check di/dη
	VerD   bool    // verbose check of di/dη

	// check di/dη
	TstD *testing.T // if != nil, do check di/dη

	// results
	Res    []*State // results
	MaxErr float64  // largest relative error of di/dη
}

// Init initialises driver
func (o *Driver) Init(mdl Model, avg Averager) (err error) {
	if mdl == nil {
		return chk.Err("driver requires a kinetics law")
	}
	if avg == nil {
		avg = Arithmetic{}
	}
	o.Mdl = mdl
	o.Avg = avg
	o.TolD = 1e-7
	o.VerD = chk.Verbose
	return
}

// Run runs the sweep with element and neighbor temperatures T and Tn
func (o *Driver) Run(Eta []float64, T, Tn float64) (err error) {
	Tavg := o.Avg.Average(dual.Number{Real: T}, dual.Number{Real: Tn}).Real
	if Tavg <= 0 {
		return chk.Err("averaged temperature must be positive. T=%g is invalid", Tavg)
	}
	o.Res = make([]*State, len(Eta))
	o.MaxErr = 0
	for k, η := range Eta {
		s := &State{Eta: η, T: Tavg}
		s.I, s.DiDeta = o.Mdl.Current(η, Tavg)
		s.Num = fd.Derivative(func(x float64) float64 {
			i, _ := o.Mdl.Current(x, Tavg)
			return i
		}, η, &fd.Settings{Formula: fd.Central})
		s.RelErr = math.Abs(s.DiDeta-s.Num) / math.Max(1, math.Abs(s.DiDeta))
		o.MaxErr = math.Max(o.MaxErr, s.RelErr)
		o.Res[k] = s
		if o.TstD != nil {
			chk.Float64(o.TstD, io.Sf("di/dη @ η=%g", η), o.TolD*math.Max(1, math.Abs(s.DiDeta)), s.DiDeta, s.Num)
		}
		if o.VerD && !o.Silent {
			io.Pf("η = %13.6e  i = %13.6e  di/dη = %13.6e  err = %9.2e\n", η, s.I, s.DiDeta, s.RelErr)
		}
	}
	return
}
