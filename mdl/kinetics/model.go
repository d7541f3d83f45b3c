// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kinetics implements interface kinetics laws relating the interfacial current
// density to the surface overpotential
package kinetics

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/num/dual"
)

// Model defines interface kinetics laws
//  Note: laws are written in dual arithmetic so that derivatives of i and di/dη with
//        respect to any unknown seeded in η or T are exact
type Model interface {
	Init(prms dbf.Params) error                             // Init initialises this structure
	GetPrms(example bool) dbf.Params                        // gets (an example) of parameters
	CurrentDual(eta, T dual.Number) (i, didEta dual.Number) // current density and its derivative w.r.t η
	Current(eta, T float64) (i, didEta float64)             // real part of CurrentDual
}

// New returns a new interface kinetics law
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'kinetics' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
