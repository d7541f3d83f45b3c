// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/tianjuchen/eel/inp"

// Info holds all information required by the host to evaluate an interface kernel
type Info struct {
	Dofs [NDOF]string // names of coupled unknowns; e.g. ["Phi", "Phi", "lm", "lm", "T", "T"]
	Subs [2]int       // subdomain ids of the two sides; e.g. [electrode, electrolyte]
}

// NewInfo returns the information about an interface
func NewInfo(dat *inp.Interface, subs Subdomains) (info *Info, err error) {
	info = &Info{Dofs: [NDOF]string{
		dat.Variable, dat.Variable,
		dat.Multiplier, dat.Multiplier,
		dat.Temperature, dat.Temperature,
	}}
	if info.Subs[0], err = subs.Id(dat.Electrode); err != nil {
		return nil, err
	}
	if info.Subs[1], err = subs.Id(dat.Electrolyte); err != nil {
		return nil, err
	}
	return
}
