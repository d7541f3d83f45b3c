// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim and .mat) JSON or YAML files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	Matfile string `json:"matfile" yaml:"matfile"` // materials file path; relative to the directory of the .sim file

	// host data
	Nqp        int                `json:"nqp" yaml:"nqp"`               // number of quadrature points per element
	Variables  []string           `json:"variables" yaml:"variables"`   // coupled variables provided by the host; e.g. "Phi", "c", "T"
	Deformed   []string           `json:"deformed" yaml:"deformed"`     // base names of deformation gradients provided by the host; "" means no base
	Subdomains map[string]int     `json:"subdomains" yaml:"subdomains"` // subdomain ids by name
	Values     map[string]float64 `json:"values" yaml:"values"`         // initial values of variables

	// checks
	Etas []float64 `json:"etas" yaml:"etas"` // overpotentials to sweep
	T    float64   `json:"T" yaml:"T"`       // temperature for sweeps and checks
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data `json:"data" yaml:"data"` // stores global simulation data

	// derived
	DirIn     string // directory of the .sim file
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	MatModels *MatDb // materials and models
}

// ReadSim reads all simulation data from a .sim (JSON), .json, .yaml or .yml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	o = new(Simulation)
	if err = readFile(simfilepath, o); err != nil {
		return nil, err
	}
	o.DirIn = filepath.Dir(simfilepath)
	o.Key = strings.TrimSuffix(filepath.Base(simfilepath), filepath.Ext(simfilepath))

	// default values
	if o.Data.Nqp == 0 {
		o.Data.Nqp = 1
	}
	if o.Data.T == 0 {
		o.Data.T = 298
	}
	if o.Data.Nqp < 0 {
		return nil, chk.Err("number of quadrature points must be positive. nqp=%d is invalid", o.Data.Nqp)
	}
	if o.Data.Matfile == "" {
		return nil, chk.Err("%q: materials file must be given", simfilepath)
	}

	// materials
	o.MatModels, err = ReadMat(o.DirIn, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", o.Data.Matfile, err)
	}
	return
}

// readFile decodes a JSON or YAML file depending on its extension
func readFile(fn string, v interface{}) (err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read file %q:\n%v", fn, err)
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	case ".sim", ".mat", ".json":
		err = json.Unmarshal(b, v)
	default:
		return chk.Err("cannot decode file %q; extension must be .sim, .mat, .json, .yaml or .yml", fn)
	}
	if err != nil {
		return chk.Err("cannot decode file %q:\n%v", fn, err)
	}
	return
}
