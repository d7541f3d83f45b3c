// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"strconv"
	"strings"
)

// DerivName returns the name under which the derivative of property prop with respect
// to the variables vars is published
//
//   DerivName("psi", "c")             →  "dpsi/dc"
//   DerivName("psi", Grad("Phi"))     →  "dpsi/dgrad_Phi"
//   DerivName("psi", "c", Ln("T"))    →  "d^2psi/dc/dln(T)"
//
func DerivName(prop string, vars ...string) string {
	if len(vars) == 0 {
		return prop
	}
	var b strings.Builder
	b.WriteString("d")
	if len(vars) > 1 {
		b.WriteString("^")
		b.WriteString(strconv.Itoa(len(vars)))
	}
	b.WriteString(prop)
	for _, v := range vars {
		b.WriteString("/d")
		b.WriteString(v)
	}
	return b.String()
}

// Grad returns the name of the gradient of variable v
func Grad(v string) string { return "grad_" + v }

// Ln returns the name of the logarithm of variable v
func Ln(v string) string { return "ln(" + v + ")" }

// Prefix prepends base to name; e.g. Prefix("cathode", "deformation_gradient") gives
// "cathode_deformation_gradient"
func Prefix(base, name string) string {
	if base == "" {
		return name
	}
	return base + "_" + name
}
