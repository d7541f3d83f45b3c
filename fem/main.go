// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the host-facing domain of electrochemical coupling terms
package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianjuchen/eel/ele"
	"github.com/tianjuchen/eel/ele/redox"
	"github.com/tianjuchen/eel/inp"
	"github.com/tianjuchen/eel/mdl/kinetics"
	"gonum.org/v1/gonum/diff/fd"
)

// Main holds all data for evaluating the coupling terms of a model
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // domain
	ShowMsg bool            // show messages
}

// CheckResult holds the result of checking the Jacobian of an interface kernel
type CheckResult struct {
	Name   string  // name of interface
	Npts   int     // number of points checked
	MaxErr float64 // largest relative difference between analytic and numerical derivatives
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim, .json, .yaml) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	o = &Main{ShowMsg: verbose}
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Simulation file read: %s\n", o.Sim.Data.Desc)
	}
	o.Dom, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Domain with %d properties and %d interfaces allocated\n", len(o.Dom.Props), len(o.Dom.Interfaces))
	}
	return
}

// Sweep sweeps the overpotential of the kinetics law of all interfaces
func (o *Main) Sweep() (drivers map[string]*kinetics.Driver, err error) {
	cputime := time.Now()
	drivers = make(map[string]*kinetics.Driver)
	for _, name := range o.Dom.InterfaceNames() {
		dat := o.Sim.MatModels.GetInterface(name)
		drv := new(kinetics.Driver)
		if err = drv.Init(dat.Kinetics, dat.Avg); err != nil {
			return
		}
		drv.VerD = o.ShowMsg
		if o.ShowMsg {
			io.Pf("> Interface %q\n", name)
		}
		if err = drv.Run(o.Sim.Data.Etas, o.Sim.Data.T, o.Sim.Data.T); err != nil {
			return nil, chk.Err("sweep of interface %q failed:\n%v", name, err)
		}
		drivers[name] = drv
	}
	if o.ShowMsg {
		io.Pf("> Sweep completed in %v\n", time.Since(cputime))
	}
	return
}

// Check computes all properties at all points and compares the Jacobian of all interface
// kernels with finite differences
//  Note: an error is returned if any relative difference is greater than tol
func (o *Main) Check(tol float64) (res []*CheckResult, err error) {

	// properties
	if err = o.Dom.ComputeAll(); err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> %d properties computed at %d points\n", len(o.Dom.Reg.Names()), o.Dom.Reg.Nqp)
	}

	// interfaces
	for _, name := range o.Dom.InterfaceNames() {
		kernel := o.Dom.Interfaces[name]
		r := &CheckResult{Name: name}
		for _, p := range o.samplePoints(name) {
			for _, side := range []ele.Side{ele.Element, ele.Neighbor} {
				e, err := checkJacobian(kernel, p, side)
				if err != nil {
					return nil, chk.Err("check of interface %q failed:\n%v", name, err)
				}
				r.MaxErr = math.Max(r.MaxErr, e)
				r.Npts++
			}
		}
		if o.ShowMsg {
			io.Pf("> Interface %-24q points = %3d  max error = %9.2e\n", name, r.Npts, r.MaxErr)
		}
		if r.MaxErr > tol {
			return nil, chk.Err("Jacobian of interface %q differs from finite differences by %g > %g", name, r.MaxErr, tol)
		}
		res = append(res, r)
	}
	return
}

// samplePoints returns points on both sides of an interface for each overpotential in Etas
func (o *Main) samplePoints(name string) (pts []*ele.Point) {
	info := o.Dom.Infos[name]
	T := o.Sim.Data.T
	etas := o.Sim.Data.Etas
	if len(etas) == 0 {
		etas = []float64{0}
	}
	for _, eta := range etas {
		for k, subs := range [][2]int{{info.Subs[0], info.Subs[1]}, {info.Subs[1], info.Subs[0]}} {
			sign := 1.0 - 2.0*float64(k)
			pts = append(pts, &ele.Point{
				X:         [ele.NDOF]float64{sign * eta, 0, 1, -1, T, 1.01 * T},
				Test:      0.5,
				TestN:     0.25,
				GradTest:  []float64{0, 0.3, 1},
				GradTestN: []float64{0.2, 0, -1},
				Normal:    []float64{0, 0, 1},
				Sub:       subs[0],
				SubN:      subs[1],
			})
		}
	}
	return
}

// checkJacobian returns the largest relative difference between the Jacobian and its finite
// differences approximation
func checkJacobian(kernel ele.InterfaceKernel, p *ele.Point, side ele.Side) (maxErr float64, err error) {
	jac := make([]float64, ele.NDOF)
	if err = kernel.Jacobian(jac, p, side); err != nil {
		return
	}
	q := *p
	for k := 0; k < ele.NDOF; k++ {
		x0 := p.X[k]
		num := fd.Derivative(func(x float64) float64 {
			q.X[k] = x
			r, e := kernel.Residual(&q, side)
			if e != nil {
				err = e
			}
			return r
		}, x0, &fd.Settings{Formula: fd.Central, Step: 1e-6 * math.Max(1, math.Abs(x0))})
		q.X[k] = x0
		if err != nil {
			return
		}
		maxErr = math.Max(maxErr, math.Abs(jac[k]-num)/math.Max(1, math.Abs(jac[k])))
	}
	return
}

// Currents returns the interfacial current densities of a redox interface at each overpotential
// given in the simulation data
func (o *Main) Currents(name string) (eta, i []float64, err error) {
	kernel, ok := o.Dom.Interfaces[name].(*redox.Redox)
	if !ok {
		return nil, nil, chk.Err("interface %q is not a redox interface", name)
	}
	for _, p := range o.samplePoints(name) {
		if p.Sub != kernel.Electrode {
			continue
		}
		e, _, err := kernel.Overpotential(p)
		if err != nil {
			return nil, nil, err
		}
		c, _, err := kernel.Current(p)
		if err != nil {
			return nil, nil, err
		}
		eta = append(eta, e)
		i = append(i, c)
	}
	return
}
