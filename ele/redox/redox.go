// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package redox implements the Lagrange multiplier enforcing the interface kinetics law
// across an electrode/electrolyte interface
package redox

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/ele"
	"github.com/tianjuchen/eel/inp"
	"github.com/tianjuchen/eel/mdl/kinetics"
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/dual"
)

// Redox implements the redox interface kernel
//
//   electrode on element side:      η = u - uₙ    s = +1
//   electrolyte on element side:    η = uₙ - u    s = -1
//
//   Rₑ = λ (σ ∇v·n - v (di/dη) s)
//
//   Rₙ = -λₙ (σ ∇vₙ·n - vₙ (di/dη) s)
//
type Redox struct {
	Name        string            // name of interface
	Law         kinetics.Model    // interface kinetics law
	Avg         kinetics.Averager // temperature averaging policy
	Sigma       float64           // interfacial conductivity
	Electrode   int               // subdomain id of electrode
	Electrolyte int               // subdomain id of electrolyte

	// auxiliary
	dat  inp.Interface  // input data
	subs ele.Subdomains // subdomains
}

// register kernel
func init() {
	ele.SetAllocator("redox", func(dat *inp.Interface, subs ele.Subdomains) (ele.InterfaceKernel, error) {
		return New(dat, subs)
	})
}

// New returns a new redox kernel
//  Note: the kinetics law and the averaging policy are allocated here if dat does not hold them
func New(dat *inp.Interface, subs ele.Subdomains) (o *Redox, err error) {
	o = &Redox{Name: dat.Name, Law: dat.Kinetics, Avg: dat.Avg, dat: *dat, subs: subs}

	// kinetics
	if o.Law == nil {
		law := dat.Law
		if law == "" {
			law = "butler-volmer"
		}
		if o.Law, err = kinetics.New(law); err != nil {
			return nil, err
		}
		if err = o.Law.Init(dat.Prms); err != nil {
			return nil, err
		}
	}
	if o.Avg == nil {
		if o.Avg, err = kinetics.NewAverager(dat.Averaging); err != nil {
			return nil, err
		}
	}
	if o.Sigma, err = prop.ScalarPrm(dat.Prms, "sigma", "redox kernel"); err != nil {
		return nil, err
	}

	// subdomains
	if o.Electrode, err = subs.Id(dat.Electrode); err != nil {
		return nil, chk.Err("electrode of interface %q: %v", dat.Name, err)
	}
	if o.Electrolyte, err = subs.Id(dat.Electrolyte); err != nil {
		return nil, chk.Err("electrolyte of interface %q: %v", dat.Name, err)
	}
	if o.Electrode == o.Electrolyte {
		return nil, chk.Err("electrode (%q) and electrolyte (%q) of interface %q must be different subdomains", dat.Electrode, dat.Electrolyte, dat.Name)
	}
	return
}

// Sign classifies the pair of subdomains at an interface point
//  Output:
//   sign -- +1 if the element is the electrode; -1 if the element is the electrolyte
func (o *Redox) Sign(sub, subN int) (sign float64, err error) {
	switch {
	case sub == o.Electrode && subN == o.Electrolyte:
		return 1, nil
	case sub == o.Electrolyte && subN == o.Electrode:
		return -1, nil
	}
	return 0, chk.Err("interface %q: element in subdomain %d (%s) and neighbor in subdomain %d (%s) do not form the electrode/electrolyte pair {%q=%d, %q=%d}",
		o.Name, sub, o.subs.Name(sub), subN, o.subs.Name(subN), o.dat.Electrode, o.Electrode, o.dat.Electrolyte, o.Electrolyte)
}

// Overpotential returns the surface overpotential η and the sign coefficient at one point
func (o *Redox) Overpotential(p *ele.Point) (eta, sign float64, err error) {
	sign, err = o.Sign(p.Sub, p.SubN)
	if err != nil {
		return
	}
	eta = sign * (p.X[ele.U] - p.X[ele.Un])
	return
}

// Current returns the interfacial current density and the averaged temperature at one point
func (o *Redox) Current(p *ele.Point) (i, T float64, err error) {
	eta, _, err := o.Overpotential(p)
	if err != nil {
		return
	}
	T = o.Avg.Average(dual.Number{Real: p.X[ele.T]}, dual.Number{Real: p.X[ele.Tn]}).Real
	i, _ = o.Law.Current(eta, T)
	return
}

// Residual implements ele.InterfaceKernel
func (o *Redox) Residual(p *ele.Point, side ele.Side) (float64, error) {
	var x [ele.NDOF]dual.Number
	for k := range x {
		x[k].Real = p.X[k]
	}
	r, err := o.residual(&x, p, side)
	return r.Real, err
}

// Jacobian implements ele.InterfaceKernel
func (o *Redox) Jacobian(res []float64, p *ele.Point, side ele.Side) error {
	if len(res) < ele.NDOF {
		return chk.Err("interface %q: length of Jacobian array must be at least %d. %d is invalid", o.Name, ele.NDOF, len(res))
	}
	var x [ele.NDOF]dual.Number
	for k := range x {
		x[k].Real = p.X[k]
	}
	for k := range x {
		x[k].Emag = 1
		r, err := o.residual(&x, p, side)
		if err != nil {
			return err
		}
		res[k] = r.Emag
		x[k].Emag = 0
	}
	return nil
}

// residual computes the residual with derivatives carried by x
func (o *Redox) residual(x *[ele.NDOF]dual.Number, p *ele.Point, side ele.Side) (r dual.Number, err error) {
	sign, err := o.Sign(p.Sub, p.SubN)
	if err != nil {
		return
	}
	eta := dual.Scale(sign, dual.Sub(x[ele.U], x[ele.Un]))
	T := o.Avg.Average(x[ele.T], x[ele.Tn])
	if T.Real <= 0 {
		return r, chk.Err("interface %q: averaged temperature must be positive. T=%g is invalid", o.Name, T.Real)
	}
	_, didEta := o.Law.CurrentDual(eta, T)
	switch side {
	case ele.Element:
		flux := dual.Number{Real: o.Sigma * floats.Dot(p.GradTest, p.Normal)}
		return dual.Mul(x[ele.Lm], dual.Sub(flux, dual.Scale(p.Test*sign, didEta))), nil
	case ele.Neighbor:
		flux := dual.Number{Real: o.Sigma * floats.Dot(p.GradTestN, p.Normal)}
		return dual.Scale(-1, dual.Mul(x[ele.Lmn], dual.Sub(flux, dual.Scale(p.TestN*sign, didEta)))), nil
	}
	return r, chk.Err("interface %q: side %d is invalid", o.Name, side)
}
