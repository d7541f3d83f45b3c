// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// Constant implements a scalar property with the same value at all quadrature points;
// e.g. molar volumes and swelling coefficients given as material parameters
type Constant struct {
	Value float64 // the constant value
	P     *Scalar // the declared property
}

// NewConstant declares a constant scalar property
func NewConstant(reg *Registry, name string, value float64) (o *Constant, err error) {
	o = &Constant{Value: value}
	o.P, err = reg.DeclareScalar(name, "constant:"+name)
	if err != nil {
		return nil, err
	}
	for i := range o.P.V {
		o.P.V[i] = value
	}
	return
}

// Compute sets the value at quadrature point qp
func (o *Constant) Compute(qp int) error {
	o.P.V[qp] = o.Value
	return nil
}
