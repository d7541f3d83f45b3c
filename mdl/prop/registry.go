// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements the registry of per-point properties and their derivatives
//
//  A producer declares a property (or the derivative of a property with respect to a
//  variable) while being constructed; consumers look it up, also while being
//  constructed. Storage for all quadrature points is allocated at declaration and is
//  overwritten at each evaluation. Nothing is resolved by name during evaluation.
package prop

import (
	"errors"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Dim is the space dimension of vectors and tensors held by the registry
const Dim = 3

// sentinel errors
var (
	ErrUndeclared = errors.New("property has not been declared")
	ErrDuplicate  = errors.New("property has been declared already")
	ErrKind       = errors.New("property has been declared with another kind")
)

// Error is a configuration error concerning one property
type Error struct {
	Prop  string // name of property
	Who   string // object declaring or requesting the property
	Kind  Kind   // kind declared or requested by Who
	Found Kind   // kind found in the registry; for ErrDuplicate and ErrKind
	Err   error  // one of the sentinel errors
}

// Error implements error
func (e *Error) Error() string {
	switch e.Err {
	case ErrDuplicate:
		return io.Sf("%q cannot declare %s property %q: %v (by %s)", e.Who, e.Kind, e.Prop, e.Err, e.Found)
	case ErrKind:
		return io.Sf("%q requested %s property %q: %v (%s)", e.Who, e.Kind, e.Prop, e.Err, e.Found)
	}
	return io.Sf("%q requested %s property %q: %v", e.Who, e.Kind, e.Prop, e.Err)
}

// Unwrap returns the sentinel error
func (e *Error) Unwrap() error { return e.Err }

// Kind is the kind of value stored by a property
type Kind int

const (
	KindScalar Kind = iota
	KindVector
	KindTensor
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindTensor:
		return "tensor"
	}
	return "unknown"
}

// Variable holds values and gradients of a coupled variable at all quadrature points
//  Note: the host (assembly engine) owns and fills Val and Grad
type Variable struct {
	Name string      // name of variable; e.g. "Phi", "T"
	Val  []float64   // [nqp] values
	Grad [][]float64 // [nqp][Dim] gradients
}

// Scalar holds a scalar property at all quadrature points
type Scalar struct {
	Name  string    // name of property
	Owner string    // name of object that declared this property
	V     []float64 // [nqp] values
}

// Vector holds a vector property at all quadrature points
type Vector struct {
	Name  string      // name of property
	Owner string      // name of object that declared this property
	V     [][]float64 // [nqp][Dim] values
}

// Tensor holds a rank-2 tensor property at all quadrature points
type Tensor struct {
	Name  string       // name of property
	Owner string       // name of object that declared this property
	V     []*mat.Dense // [nqp] Dim×Dim values
}

// Registry holds all variables and properties of a model evaluated at nqp points
type Registry struct {
	Nqp     int                  // number of quadrature points
	vars    map[string]*Variable // coupled variables
	kinds   map[string]Kind      // kind of each declared property
	scalars map[string]*Scalar   // scalar properties
	vectors map[string]*Vector   // vector properties
	tensors map[string]*Tensor   // tensor properties
}

// NewRegistry returns a new registry for nqp quadrature points
func NewRegistry(nqp int) (o *Registry) {
	if nqp < 1 {
		chk.Panic("number of quadrature points must be positive. nqp=%d is invalid", nqp)
	}
	return &Registry{
		Nqp:     nqp,
		vars:    make(map[string]*Variable),
		kinds:   make(map[string]Kind),
		scalars: make(map[string]*Scalar),
		vectors: make(map[string]*Vector),
		tensors: make(map[string]*Tensor),
	}
}

// variables ////////////////////////////////////////////////////////////////////////////////////////

// AddVariable allocates a coupled variable; to be called by the host
//  Note: adding an existing variable returns the existing one
func (o *Registry) AddVariable(name string) *Variable {
	if v, ok := o.vars[name]; ok {
		return v
	}
	v := &Variable{Name: name, Val: make([]float64, o.Nqp), Grad: make([][]float64, o.Nqp)}
	for i := 0; i < o.Nqp; i++ {
		v.Grad[i] = make([]float64, Dim)
	}
	o.vars[name] = v
	return v
}

// Couple returns a coupled variable
func (o *Registry) Couple(name, requester string) (*Variable, error) {
	v, ok := o.vars[name]
	if !ok {
		return nil, chk.Err("%q cannot couple to variable %q because it does not exist", requester, name)
	}
	return v, nil
}

// HasVariable tells whether a coupled variable exists
func (o *Registry) HasVariable(name string) bool {
	_, ok := o.vars[name]
	return ok
}

// declarations /////////////////////////////////////////////////////////////////////////////////////

// DeclareScalar declares a scalar property
func (o *Registry) DeclareScalar(name, owner string) (*Scalar, error) {
	if err := o.declare(name, owner, KindScalar); err != nil {
		return nil, err
	}
	p := &Scalar{Name: name, Owner: owner, V: make([]float64, o.Nqp)}
	o.scalars[name] = p
	return p, nil
}

// DeclareVector declares a vector property
func (o *Registry) DeclareVector(name, owner string) (*Vector, error) {
	if err := o.declare(name, owner, KindVector); err != nil {
		return nil, err
	}
	p := &Vector{Name: name, Owner: owner, V: make([][]float64, o.Nqp)}
	for i := 0; i < o.Nqp; i++ {
		p.V[i] = make([]float64, Dim)
	}
	o.vectors[name] = p
	return p, nil
}

// DeclareTensor declares a rank-2 tensor property
func (o *Registry) DeclareTensor(name, owner string) (*Tensor, error) {
	if err := o.declare(name, owner, KindTensor); err != nil {
		return nil, err
	}
	p := &Tensor{Name: name, Owner: owner, V: make([]*mat.Dense, o.Nqp)}
	for i := 0; i < o.Nqp; i++ {
		p.V[i] = mat.NewDense(Dim, Dim, nil)
	}
	o.tensors[name] = p
	return p, nil
}

// lookups //////////////////////////////////////////////////////////////////////////////////////////

// GetScalar returns a declared scalar property
func (o *Registry) GetScalar(name, requester string) (*Scalar, error) {
	if err := o.lookup(name, requester, KindScalar); err != nil {
		return nil, err
	}
	return o.scalars[name], nil
}

// GetVector returns a declared vector property
func (o *Registry) GetVector(name, requester string) (*Vector, error) {
	if err := o.lookup(name, requester, KindVector); err != nil {
		return nil, err
	}
	return o.vectors[name], nil
}

// GetTensor returns a declared tensor property
func (o *Registry) GetTensor(name, requester string) (*Tensor, error) {
	if err := o.lookup(name, requester, KindTensor); err != nil {
		return nil, err
	}
	return o.tensors[name], nil
}

// HasScalar tells whether a scalar property has been declared
func (o *Registry) HasScalar(name string) bool { return o.has(name, KindScalar) }

// HasVector tells whether a vector property has been declared
func (o *Registry) HasVector(name string) bool { return o.has(name, KindVector) }

// HasTensor tells whether a tensor property has been declared
func (o *Registry) HasTensor(name string) bool { return o.has(name, KindTensor) }

// Names returns the sorted names of all declared properties
func (o *Registry) Names() (names []string) {
	names = make([]string, 0, len(o.kinds))
	for name := range o.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// KindOf returns the kind of a declared property
func (o *Registry) KindOf(name string) (k Kind, ok bool) {
	k, ok = o.kinds[name]
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *Registry) declare(name, owner string, kind Kind) error {
	if name == "" {
		return chk.Err("%q cannot declare a %s property with an empty name", owner, kind)
	}
	if k, ok := o.kinds[name]; ok {
		return &Error{Prop: name, Who: owner, Kind: kind, Found: k, Err: ErrDuplicate}
	}
	o.kinds[name] = kind
	return nil
}

func (o *Registry) lookup(name, requester string, kind Kind) error {
	k, ok := o.kinds[name]
	if !ok {
		return &Error{Prop: name, Who: requester, Kind: kind, Err: ErrUndeclared}
	}
	if k != kind {
		return &Error{Prop: name, Who: requester, Kind: kind, Found: k, Err: ErrKind}
	}
	return nil
}

func (o *Registry) has(name string, kind Kind) bool {
	k, ok := o.kinds[name]
	return ok && k == kind
}
