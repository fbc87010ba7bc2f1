// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
)

type config struct {
	wantHeader  bool
	wantClasses bool
	wantObjects bool
	wantAnomaly bool
	dxfOut      string
}

func main() {
	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)
	decodeHeader := decodeCmd.Bool("header", false, "Dump header variables")
	decodeClasses := decodeCmd.Bool("classes", false, "Dump the class table")
	decodeObjects := decodeCmd.Bool("objects", false, "Dump the object set")
	decodeAnomalies := decodeCmd.Bool("anomalies", false, "Dump recorded anomalies")

	dxfCmd := flag.NewFlagSet("dxf", flag.ExitOnError)
	dxfOutFile := dxfCmd.String("o", "", "Write DXF output to this path instead of stdout")

	verCmd := flag.NewFlagSet("version", flag.ExitOnError)

	if len(os.Args) < 2 {
		showHelp()
	}

	switch os.Args[1] {
	case "cli":
		// Cobra-based subcommand tree (decode/dxf/version with flag help and
		// completion support), offered alongside the plain flag.FlagSet
		// dispatch above rather than replacing it.
		os.Args = os.Args[1:]
		execCobra()
		return

	case "decode":
		if len(os.Args) < 3 {
			showHelp()
		}
		decodeCmd.Parse(os.Args[3:])
		cfg := config{
			wantHeader:  *decodeHeader,
			wantClasses: *decodeClasses,
			wantObjects: *decodeObjects,
			wantAnomaly: *decodeAnomalies,
		}
		parse(os.Args[2], cfg)

	case "dxf":
		if len(os.Args) < 3 {
			showHelp()
		}
		dxfCmd.Parse(os.Args[3:])
		cfg := config{dxfOut: *dxfOutFile}
		parse(os.Args[2], cfg)

	case "version":
		verCmd.Parse(os.Args[2:])
		fmt.Println("You are using version 0.1.0")

	default:
		showHelp()
	}
}

func showHelp() {
	fmt.Print(
		`
╔╦╗╦ ╦╔═╗  ┌─┐┌─┐┬─┐┌─┐┌─┐┬─┐
 ║║║║║║ ╦  ├─┘├─┤├┬┘└─┐├┤ ├┬┘
═╩╝╚╩╝╚═╝  ┴  ┴ ┴┴└─└─┘└─┘┴└─

	A DWG drawing container decoder and DXF emitter.
	Brought to you by Saferwall (c) 2018 MIT
`)
	fmt.Println("\nAvailable sub-commands: 'decode', 'dxf' or 'version'")
	os.Exit(1)
}
