// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tianjuchen/eel/inp"
)

// AllocatorType defines a function that allocates an interface kernel
type AllocatorType func(dat *inp.Interface, subs Subdomains) (InterfaceKernel, error)

// New returns a new interface kernel from factory
func New(dat *inp.Interface, subs Subdomains) (kernel InterfaceKernel, err error) {
	fcn, ok := allocators[dat.Kernel]
	if !ok {
		return nil, chk.Err("cannot get allocator for interface kernel {kernel=%q, name=%q}", dat.Kernel, dat.Name)
	}
	kernel, err = fcn(dat, subs)
	if err != nil {
		return nil, chk.Err("interface kernel {kernel=%q, name=%q} is not available:\n%v", dat.Kernel, dat.Name, err)
	}
	return
}

// SetAllocator sets a new callback function to allocate an interface kernel
func SetAllocator(kernelName string, fcn AllocatorType) {
	if _, ok := allocators[kernelName]; ok {
		chk.Panic("cannot set allocator function for %q because kernel name exists already", kernelName)
	}
	allocators[kernelName] = fcn
}

// GetAllocator gets callback function to allocate an interface kernel
func GetAllocator(kernelName string) AllocatorType {
	if fcn, ok := allocators[kernelName]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for interface kernel %q", kernelName)
	return nil
}

// allocators holds all interface kernel allocators
var allocators = make(map[string]AllocatorType)
