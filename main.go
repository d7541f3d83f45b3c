// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/tianjuchen/eel/fem"
)

var (
	verbose bool    // show messages
	tol     float64 // tolerance for Jacobian checks

	rootCmd = &cobra.Command{
		Use:   "eel",
		Short: "Electrochemical coupling terms for finite element solvers",
		Long: `eel evaluates energy densities, thermodynamic forces and redox interface
kernels defined in (.sim and .mat) JSON or YAML files.`,
		SilenceUsage: true,
	}

	checkCmd = &cobra.Command{
		Use:   "check [simfile]",
		Short: "Computes all properties and checks the Jacobian of all interface kernels",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep [simfile]",
		Short: "Sweeps the overpotential of the kinetics law of all interfaces",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	checkCmd.Flags().Float64Var(&tol, "tol", 1e-6, "tolerance for the relative difference between analytic and numerical derivatives")
	rootCmd.AddCommand(checkCmd, sweepCmd)
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	analysis, err := fem.NewMain(args[0], verbose)
	if err != nil {
		return
	}
	res, err := analysis.Check(tol)
	if err != nil {
		return
	}
	for _, r := range res {
		io.Pf("%-24s points = %3d  max error = %9.2e\n", r.Name, r.Npts, r.MaxErr)
	}
	io.PfGreen("OK\n")
	return
}

func runSweep(cmd *cobra.Command, args []string) (err error) {
	analysis, err := fem.NewMain(args[0], verbose)
	if err != nil {
		return
	}
	drivers, err := analysis.Sweep()
	if err != nil {
		return
	}
	for _, name := range analysis.Dom.InterfaceNames() {
		io.Pf("\n%s\n%13s %13s %13s %13s\n", name, "η", "T", "i", "di/dη")
		for _, s := range drivers[name].Res {
			io.Pf("%13.6e %13.6e %13.6e %13.6e\n", s.Eta, s.T, s.I, s.DiDeta)
		}
	}
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// run command
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
