// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/tianjuchen/eel/mdl/chemistry"
	"github.com/tianjuchen/eel/mdl/electro"
	"github.com/tianjuchen/eel/mdl/kinetics"
	"github.com/tianjuchen/eel/mdl/prop"
	"github.com/tianjuchen/eel/mdl/thermal"
)

// Material holds material data
//  Note: which of the names below are required depends on Type
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name"`   // name of material; e.g. name of energy density
	Type  string     `json:"type" yaml:"type"`   // type of material; e.g. "electrical", "chemical", "thermal", "swelling", "constant", "force"
	Model string     `json:"model" yaml:"model"` // name of model; e.g. "bulk-charge-transport", "charging", "fourier", "heat-flux"
	Base  string     `json:"base" yaml:"base"`   // base name prepended to declared and requested properties
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material

	// coupled variables
	Phi         string `json:"phi" yaml:"phi"`                 // electric potential
	Conc        string `json:"conc" yaml:"conc"`               // concentration
	Temperature string `json:"temperature" yaml:"temperature"` // temperature

	// swelling
	Concs      []string `json:"concs" yaml:"concs"`           // concentrations
	ConcRefs   []string `json:"concrefs" yaml:"concrefs"`     // reference concentrations
	MolarVols  []string `json:"molarvols" yaml:"molarvols"`   // names of molar volumes
	SwellCoeff string   `json:"swellcoeff" yaml:"swellcoeff"` // name of swelling coefficient

	// constants
	Value float64 `json:"value" yaml:"value"` // value of constant

	// forces
	Psis []string `json:"psis" yaml:"psis"` // energy densities contributing to force

	// derived
	Electro   electro.Model   `json:"-" yaml:"-"` // pointer to actual electrical model
	Chemistry chemistry.Model `json:"-" yaml:"-"` // pointer to actual chemical model
	Thermal   thermal.Model   `json:"-" yaml:"-"` // pointer to actual heat conduction model
}

// Interface holds the data of an interface kernel
type Interface struct {

	// input
	Name        string     `json:"name" yaml:"name"`               // name of interface
	Kernel      string     `json:"kernel" yaml:"kernel"`           // name of interface kernel; e.g. "redox"
	Law         string     `json:"law" yaml:"law"`                 // kinetics law; default "butler-volmer"
	Averaging   string     `json:"averaging" yaml:"averaging"`     // temperature averaging policy; default "arithmetic"
	Variable    string     `json:"variable" yaml:"variable"`       // primary unknown; e.g. "Phi"
	Multiplier  string     `json:"multiplier" yaml:"multiplier"`   // Lagrange multiplier; e.g. "lm"
	Temperature string     `json:"temperature" yaml:"temperature"` // temperature; e.g. "T"
	Electrode   string     `json:"electrode" yaml:"electrode"`     // subdomain name of electrode
	Electrolyte string     `json:"electrolyte" yaml:"electrolyte"` // subdomain name of electrolyte
	Prms        dbf.Params `json:"prms" yaml:"prms"`               // kinetics parameters and interfacial conductivity

	// derived
	Kinetics kinetics.Model    `json:"-" yaml:"-"` // pointer to actual kinetics law
	Avg      kinetics.Averager `json:"-" yaml:"-"` // temperature averaging policy
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials  MatsData     `json:"materials" yaml:"materials"`   // all materials
	Interfaces []*Interface `json:"interfaces" yaml:"interfaces"` // all interfaces

	// derived
	Electricals map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: electrical energy densities
	Chemicals   map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: chemical energy densities
	Thermals    map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: heat conduction energy densities
	Swellings   map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: swelling deformation gradients
	Constants   map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: constants
	Forces      map[string]*Material `json:"-" yaml:"-"` // [base_name] subset with materials/models: thermodynamic forces
}

// ReadMat reads all materials data from a .mat (JSON), .json, .yaml or .yml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	mdb = new(MatDb)
	err = readFile(filepath.Join(dir, fn), mdb)
	if err != nil {
		return nil, err
	}

	// subsets and models
	err = mdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init allocates and initialises all models
func (o *MatDb) Init() (err error) {

	// subsets
	o.Electricals = make(map[string]*Material)
	o.Chemicals = make(map[string]*Material)
	o.Thermals = make(map[string]*Material)
	o.Swellings = make(map[string]*Material)
	o.Constants = make(map[string]*Material)
	o.Forces = make(map[string]*Material)
	names := make(map[string]bool)
	for _, m := range o.Materials {
		key := prop.Prefix(m.Base, m.Name)
		if m.Name == "" || names[key] {
			return chk.Err("material name %q (base=%q) is either empty or given more than once", m.Name, m.Base)
		}
		names[key] = true
		switch m.Type {
		case "electrical":
			o.Electricals[key] = m
		case "chemical":
			o.Chemicals[key] = m
		case "thermal":
			o.Thermals[key] = m
		case "swelling":
			o.Swellings[key] = m
		case "constant":
			o.Constants[key] = m
		case "force":
			o.Forces[key] = m
		default:
			return chk.Err("material type %q is incorrect; options are \"electrical\", \"chemical\", \"thermal\", \"swelling\", \"constant\" and \"force\"", m.Type)
		}
	}

	// alloc/init: models
	for _, m := range o.Materials {
		switch m.Type {
		case "electrical":
			if m.Electro, err = electro.New(m.Model); err != nil {
				return
			}
			err = m.Electro.Init(m.Prms)
		case "chemical":
			if m.Chemistry, err = chemistry.New(m.Model); err != nil {
				return
			}
			err = m.Chemistry.Init(m.Prms)
		case "thermal":
			if m.Thermal, err = thermal.New(m.Model); err != nil {
				return
			}
			err = m.Thermal.Init(m.Prms)
		case "force":
			switch m.Model {
			case "heat-flux", "current-density", "chemical-potential":
			default:
				err = chk.Err("force %q: model %q is incorrect; options are \"heat-flux\", \"current-density\" and \"chemical-potential\"", m.Name, m.Model)
			}
		}
		if err != nil {
			return chk.Err("material %q:\n%v", m.Name, err)
		}
	}

	// alloc/init: interfaces
	for _, f := range o.Interfaces {
		if f.Law == "" {
			f.Law = "butler-volmer"
		}
		if f.Kinetics, err = kinetics.New(f.Law); err != nil {
			return
		}
		if err = f.Kinetics.Init(f.Prms); err != nil {
			return chk.Err("interface %q:\n%v", f.Name, err)
		}
		if f.Avg, err = kinetics.NewAverager(f.Averaging); err != nil {
			return chk.Err("interface %q:\n%v", f.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetInterface returns an interface
//  Note: returns nil if not found
func (o MatDb) GetInterface(name string) *Interface {
	for _, f := range o.Interfaces {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	prms := make([]string, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"base\"  : %q,\n      \"prms\"  : [%s]\n    }", o.Name, o.Type, o.Model, o.Base, strings.Join(prms, ", "))
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}
