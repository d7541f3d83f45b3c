// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. commands")

	for _, args := range [][]string{
		{"check", "inp/data/cathode.sim"},
		{"check", "--tol", "1e-5", "inp/data/anode.yaml"},
		{"sweep", "inp/data/cathode.sim"},
	} {
		rootCmd.SetArgs(args)
		require.NoError(tst, rootCmd.Execute(), "%v", args)
	}

	for _, args := range [][]string{
		{"check"},
		{"sweep", "inp/data/none.sim"},
		{"plot", "inp/data/cathode.sim"},
	} {
		rootCmd.SetArgs(args)
		require.Error(tst, rootCmd.Execute(), "%v", args)
	}
}
