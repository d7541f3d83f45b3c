// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Subdomains maps subdomain names to ids as defined by the host mesh
type Subdomains map[string]int

// Id returns the id of a named subdomain
func (o Subdomains) Id(name string) (int, error) {
	if id, ok := o[name]; ok {
		return id, nil
	}
	return 0, chk.Err("subdomain %q does not exist. available subdomains are %v", name, o.Names())
}

// Name returns the name of a subdomain; or "?" if id is unknown
func (o Subdomains) Name(id int) string {
	for name, i := range o {
		if i == id {
			return name
		}
	}
	return "?"
}

// Names returns the sorted names of all subdomains
func (o Subdomains) Names() (names []string) {
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
