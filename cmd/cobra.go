// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the cobra-based alternative entry point to the plain
// flag.FlagSet dispatch in main(), mirroring the teacher's pedumper.go
// command tree against the DWG domain instead of PE. main() hands over to it
// through the "cli" subcommand; every other subcommand goes through the
// flag-based dispatch.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dwgctl",
		Short: "Inspect and convert DWG drawing containers",
	}

	var wantHeader, wantClasses, wantObjects, wantAnomalies bool
	decodeCmd := &cobra.Command{
		Use:   "decode [path]",
		Short: "Decode a DWG file and print selected sections",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config{
				wantHeader:  wantHeader,
				wantClasses: wantClasses,
				wantObjects: wantObjects,
				wantAnomaly: wantAnomalies,
			}
			parse(args[0], cfg)
		},
	}
	decodeCmd.Flags().BoolVar(&wantHeader, "header", false, "Dump header variables")
	decodeCmd.Flags().BoolVar(&wantClasses, "classes", false, "Dump the class table")
	decodeCmd.Flags().BoolVar(&wantObjects, "objects", false, "Dump the object set")
	decodeCmd.Flags().BoolVar(&wantAnomalies, "anomalies", false, "Dump recorded anomalies")

	var dxfOut string
	dxfCmd := &cobra.Command{
		Use:   "dxf [path]",
		Short: "Decode a DWG file and emit its DXF interchange form",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parse(args[0], config{dxfOut: dxfOut})
		},
	}
	dxfCmd.Flags().StringVarP(&dxfOut, "output", "o", "", "Write DXF output to this path instead of stdout")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the decoder version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	root.AddCommand(decodeCmd, dxfCmd, versionCmd)
	return root
}

// execCobra runs the cobra command tree; main() calls it for the "cli"
// subcommand.
func execCobra() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
