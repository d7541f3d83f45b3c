// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
)

// Property defines what all per-point properties must implement
type Property interface {
	Compute(qp int) error // computes values and derivatives at quadrature point qp
}

// TensorPrm reads a diagonal material tensor from parameters given either as an isotropic
// value (key) or as the three components (keyx, keyy, keyz)
//  Note: all components must be greater than or equal to kmin
func TensorPrm(prms dbf.Params, key string, kmin float64, caller string) (t *mat.Dense, err error) {
	var vals [Dim]float64
	px, py, pz := prms.Find(key+"x"), prms.Find(key+"y"), prms.Find(key+"z")
	if px == nil || py == nil || pz == nil {
		p := prms.Find(key)
		if p == nil {
			return nil, chk.Err("%s: either %q (isotropic) or [%q, %q, %q] must be given in database of material parameters", caller, key, key+"x", key+"y", key+"z")
		}
		vals = [Dim]float64{p.V, p.V, p.V}
	} else {
		vals = [Dim]float64{px.V, py.V, pz.V}
	}
	t = mat.NewDense(Dim, Dim, nil)
	for i, v := range vals {
		if v < kmin {
			return nil, chk.Err("%s: components of %q must be greater than or equal to %g. %g is invalid", caller, key, kmin, v)
		}
		t.Set(i, i, v)
	}
	return
}

// ScalarPrm reads a required scalar parameter
func ScalarPrm(prms dbf.Params, key, caller string) (float64, error) {
	p := prms.Find(key)
	if p == nil {
		return 0, chk.Err("%s: parameter %q must be given in database of material parameters", caller, key)
	}
	return p.V, nil
}

// ScalarPrmOrDefault reads an optional scalar parameter
func ScalarPrmOrDefault(prms dbf.Params, key string, def float64) float64 {
	if p := prms.Find(key); p != nil {
		return p.V
	}
	return def
}
