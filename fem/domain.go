// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tianjuchen/eel/ele"
	"github.com/tianjuchen/eel/inp"
	"github.com/tianjuchen/eel/mdl/chemistry"
	"github.com/tianjuchen/eel/mdl/electro"
	"github.com/tianjuchen/eel/mdl/forces"
	"github.com/tianjuchen/eel/mdl/kinematics"
	"github.com/tianjuchen/eel/mdl/prop"
	"github.com/tianjuchen/eel/mdl/thermal"
)

// Domain holds the registry of per-point properties and the interface kernels of one model
//  Note: properties are constructed in dependency order; i.e. constants, swelling deformation
//        gradients, energy densities and thermodynamic forces. Compute follows the same order.
type Domain struct {

	// input
	Sim     *inp.Simulation // simulation data
	ShowMsg bool            // show messages

	// host data
	Reg  *prop.Registry            // registry with all variables and properties
	Vars map[string]*prop.Variable // coupled variables
	Defs map[string]*prop.Tensor   // deformation gradients provided by the host; by base name
	Subs ele.Subdomains            // subdomain ids by name

	// properties
	Props []prop.Property          // all properties in evaluation order
	Psis  map[string]prop.Property // energy densities by full name

	// interfaces
	Interfaces map[string]ele.InterfaceKernel // interface kernels by name
	Infos      map[string]*ele.Info           // information about interfaces by name
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new structure
	o = &Domain{Sim: sim, ShowMsg: verbose}
	o.Reg = prop.NewRegistry(sim.Data.Nqp)
	o.Vars = make(map[string]*prop.Variable)
	o.Defs = make(map[string]*prop.Tensor)
	o.Subs = ele.Subdomains(sim.Data.Subdomains)
	o.Psis = make(map[string]prop.Property)
	o.Interfaces = make(map[string]ele.InterfaceKernel)
	o.Infos = make(map[string]*ele.Info)

	// variables
	for _, name := range sim.Data.Variables {
		o.Vars[name] = o.Reg.AddVariable(name)
	}
	for name, val := range sim.Data.Values {
		v, ok := o.Vars[name]
		if !ok {
			return nil, chk.Err("cannot set initial value of variable %q because it does not exist", name)
		}
		for i := range v.Val {
			v.Val[i] = val
		}
	}

	// deformation gradients
	for _, base := range sim.Data.Deformed {
		F, err := o.Reg.DeclareTensor(prop.Prefix(base, kinematics.DeformationGradientName), "host")
		if err != nil {
			return nil, err
		}
		for _, Fq := range F.V {
			Fq.Copy(kinematics.Identity())
		}
		o.Defs[base] = F
	}

	// properties
	mats := sim.MatModels.Materials
	for _, step := range []struct {
		kind string
		add  func(m *inp.Material) (prop.Property, error)
	}{
		{"constant", o.addConstant},
		{"swelling", o.addSwelling},
		{"electrical", o.addElectrical},
		{"chemical", o.addChemical},
		{"thermal", o.addThermal},
		{"force", o.addForce},
	} {
		for _, m := range mats {
			if m.Type != step.kind {
				continue
			}
			p, err := step.add(m)
			if err != nil {
				return nil, chk.Err("cannot add %s material %q:\n%v", m.Type, prop.Prefix(m.Base, m.Name), err)
			}
			o.Props = append(o.Props, p)
			if o.ShowMsg {
				io.Pf("> %-10s %q\n", m.Type, prop.Prefix(m.Base, m.Name))
			}
		}
	}

	// interfaces
	for _, dat := range sim.MatModels.Interfaces {
		if _, ok := o.Interfaces[dat.Name]; ok {
			return nil, chk.Err("interface %q is given more than once", dat.Name)
		}
		if dat.Kernel == "" {
			dat.Kernel = "redox"
		}
		kernel, err := ele.New(dat, o.Subs)
		if err != nil {
			return nil, err
		}
		info, err := ele.NewInfo(dat, o.Subs)
		if err != nil {
			return nil, err
		}
		for _, name := range info.Dofs {
			if _, ok := o.Vars[name]; !ok {
				return nil, chk.Err("interface %q requires variable %q which does not exist", dat.Name, name)
			}
		}
		o.Interfaces[dat.Name] = kernel
		o.Infos[dat.Name] = info
		if o.ShowMsg {
			io.Pf("> %-10s %q\n", "interface", dat.Name)
		}
	}
	return
}

// Compute computes all properties at quadrature point qp
func (o *Domain) Compute(qp int) (err error) {
	if qp < 0 || qp >= o.Reg.Nqp {
		return chk.Err("quadrature point index must be in [0, %d). %d is invalid", o.Reg.Nqp, qp)
	}
	for _, p := range o.Props {
		if err = p.Compute(qp); err != nil {
			return
		}
	}
	return
}

// ComputeAll computes all properties at all quadrature points
func (o *Domain) ComputeAll() (err error) {
	for qp := 0; qp < o.Reg.Nqp; qp++ {
		if err = o.Compute(qp); err != nil {
			return
		}
	}
	return
}

// InterfaceNames returns the sorted names of all interfaces
func (o *Domain) InterfaceNames() (names []string) {
	for name := range o.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *Domain) addConstant(m *inp.Material) (prop.Property, error) {
	return prop.NewConstant(o.Reg, prop.Prefix(m.Base, m.Name), m.Value)
}

func (o *Domain) addSwelling(m *inp.Material) (prop.Property, error) {
	return kinematics.NewSwelling(o.Reg, &kinematics.SwellingData{
		Base:       m.Base,
		Conc:       m.Concs,
		ConcRef:    m.ConcRefs,
		MolarVols:  m.MolarVols,
		SwellCoeff: m.SwellCoeff,
	})
}

func (o *Domain) addElectrical(m *inp.Material) (prop.Property, error) {
	ed, err := electro.NewEnergyDensity(o.Reg, &electro.Data{Name: m.Name, Base: m.Base, Phi: m.Phi, Temperature: m.Temperature}, m.Electro)
	if err != nil {
		return nil, err
	}
	o.Psis[ed.PsiName()] = ed
	return ed, nil
}

func (o *Domain) addChemical(m *inp.Material) (prop.Property, error) {
	ed, err := chemistry.NewEnergyDensity(o.Reg, &chemistry.Data{Name: m.Name, Base: m.Base, Conc: m.Conc, Phi: m.Phi, Temperature: m.Temperature}, m.Chemistry)
	if err != nil {
		return nil, err
	}
	o.Psis[ed.PsiName()] = ed
	return ed, nil
}

func (o *Domain) addThermal(m *inp.Material) (prop.Property, error) {
	ed, err := thermal.NewEnergyDensity(o.Reg, &thermal.Data{Name: m.Name, Base: m.Base, Temperature: m.Temperature}, m.Thermal)
	if err != nil {
		return nil, err
	}
	o.Psis[ed.PsiName()] = ed
	return ed, nil
}

func (o *Domain) addForce(m *inp.Material) (prop.Property, error) {
	dat := &forces.Data{Name: m.Name, Base: m.Base, Psis: m.Psis}
	switch m.Model {
	case "heat-flux":
		return forces.NewHeatFlux(o.Reg, dat, m.Temperature)
	case "current-density":
		return forces.NewCurrentDensity(o.Reg, dat, m.Phi)
	case "chemical-potential":
		return forces.NewChemicalPotential(o.Reg, dat, m.Conc)
	}
	return nil, chk.Err("model %q is not available for thermodynamic forces", m.Model)
}
