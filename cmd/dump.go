// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	dwgparser "github.com/saferwall/dwg"
	"github.com/saferwall/dwg/internal/log"
)

func isDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

// parse dispatches a single path or, if it names a directory, every file
// found by a recursive walk, exactly the way the teacher's parse() fanned
// dumpPE out over a directory tree.
func parse(filePath string, cfg config) {
	if !isDirectory(filePath) {
		parseDWG(filePath, cfg)
		return
	}

	fileList := []string{}
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if err == nil && !isDirectory(path) {
			fileList = append(fileList, path)
		}
		return nil
	})
	for _, file := range fileList {
		parseDWG(file, cfg)
	}
}

func parseDWG(filename string, cfg config) {
	logger := log.NewStdLogger(os.Stdout)
	logger = log.NewFilter(logger, log.FilterLevel(log.LevelInfo))
	helper := log.NewHelper(logger)

	helper.Infof("parsing filename %s", filename)

	file, err := dwgparser.New(filename, &dwgparser.Options{Logger: logger})
	if err != nil {
		helper.Infof("error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer file.Close()

	if err := file.Parse(); err != nil {
		helper.Infof("error while parsing file: %s, reason: %s", filename, err)
		return
	}

	if cfg.dxfOut != "" {
		writeDXF(file, cfg.dxfOut)
		return
	}

	if cfg.wantHeader {
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 3, ' ', tabwriter.AlignRight)
		fmt.Print("\n\t------[ Header ]------\n\n")
		fmt.Fprintf(w, "Version:\t %s\n", file.Header.Version)
		fmt.Fprintf(w, "Handseed:\t 0x%s\n", file.Header.HandseedRaw.String())
		w.Flush()
	}

	if cfg.wantClasses && file.ClassTable != nil {
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 3, ' ', tabwriter.AlignRight)
		fmt.Print("\n\t------[ Classes ]------\n\n")
		fmt.Fprintln(w, "Number\tDxfName\tCppName\tAppName\t")
		for _, c := range file.ClassTable.Entries() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", c.Number, c.DxfName, c.CppName, c.AppName)
		}
		w.Flush()
	}

	if cfg.wantObjects {
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 3, ' ', tabwriter.AlignRight)
		fmt.Print("\n\t------[ Objects ]------\n\n")
		fmt.Fprintln(w, "Index\tHandle\tTypeCode\tKind\t")
		for _, obj := range file.Objects {
			fmt.Fprintf(w, "%d\t0x%s\t%d\t%d\t\n", obj.Index, obj.Handle.String(), obj.TypeCode, obj.Body.Kind)
		}
		w.Flush()
	}

	if cfg.wantAnomaly {
		if err := file.GetAnomalies(); err != nil {
			helper.Infof("error computing anomalies: %v", err)
		}
		fmt.Print("\n\t------[ Anomalies ]------\n\n")
		for _, a := range file.Anomalies {
			fmt.Println(" -", a)
		}
	}

	fmt.Print("\n")
}

func writeDXF(file *dwgparser.File, out string) {
	var w = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", out, err)
			return
		}
		defer f.Close()
		if err := file.Document.WriteDXF(f); err != nil {
			fmt.Fprintf(os.Stderr, "error writing dxf: %v\n", err)
		}
		return
	}
	if err := file.Document.WriteDXF(w); err != nil {
		fmt.Fprintf(os.Stderr, "error writing dxf: %v\n", err)
	}
}
