// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements interface kernels coupling the two sides of an internal boundary
package ele

// Side indicates on which side of the interface a residual is evaluated
type Side int

const (
	Element  Side = iota // side of the current element
	Neighbor             // side of the neighbor element
)

// String returns the name of the side
func (s Side) String() string {
	if s == Element {
		return "element"
	}
	return "neighbor"
}

// indices of coupled unknowns
const (
	U    = iota // primary unknown on the element side
	Un          // primary unknown on the neighbor side
	Lm          // Lagrange multiplier on the element side
	Lmn         // Lagrange multiplier on the neighbor side
	T           // temperature on the element side
	Tn          // temperature on the neighbor side
	NDOF        // number of coupled unknowns
)

// Point holds two-sided data at one interface quadrature point
//  Note: the host (assembly engine) fills all fields
type Point struct {

	// unknowns
	X [NDOF]float64 // coupled unknowns ordered by U, Un, Lm, Lmn, T, Tn

	// test functions
	Test      float64   // test function on the element side
	TestN     float64   // test function on the neighbor side
	GradTest  []float64 // gradient of test function on the element side
	GradTestN []float64 // gradient of test function on the neighbor side

	// geometry
	Normal []float64 // unit normal to the interface
	Sub    int       // subdomain id of the element
	SubN   int       // subdomain id of the neighbor
}

// InterfaceKernel defines what all interface kernels must implement
//  Note: kernels must not modify p and must not keep state between points
type InterfaceKernel interface {
	Residual(p *Point, side Side) (float64, error)     // residual contribution at one point
	Jacobian(res []float64, p *Point, side Side) error // res[k] = ∂residual/∂X[k]
}
