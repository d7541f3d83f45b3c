// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import (
	"github.com/tianjuchen/eel/mdl/prop"
	"gonum.org/v1/gonum/mat"
)

// DeformationGradientName is the (unprefixed) name of the deformation gradient property
const DeformationGradientName = "deformation_gradient"

// Deformation tells whether a model is coupled to large deformations
//  Note: the flag is resolved once, at construction. When the deformation gradient has
//        not been declared, Coupled is false, F is nil and no derivative with respect to
//        F may be declared or requested.
type Deformation struct {
	Coupled bool         // a deformation gradient property exists
	Name    string       // name of the deformation gradient property
	F       *prop.Tensor // the deformation gradient; nil if !Coupled
}

// NewDeformation resolves the deformation gradient named <base>_deformation_gradient
func NewDeformation(reg *prop.Registry, base, requester string) (o *Deformation, err error) {
	o = &Deformation{Name: prop.Prefix(base, DeformationGradientName)}
	if !reg.HasTensor(o.Name) {
		return
	}
	o.F, err = reg.GetTensor(o.Name, requester)
	if err != nil {
		return nil, err
	}
	o.Coupled = true
	return
}

// At returns F at quadrature point qp or nil if not coupled
func (o *Deformation) At(qp int) mat.Matrix {
	if !o.Coupled {
		return nil
	}
	return o.F.V[qp]
}
