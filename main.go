// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/kyle-tennison/magnetite/fem"
	"github.com/kyle-tennison/magnetite/inp"
	"github.com/kyle-tennison/magnetite/out"
)

func main() {

	// options
	cmap := flag.String("cmap", "coolwarm", "colormap passed to the plotter")
	noplot := flag.Bool("noplot", false, "skip the plotting step and keep the output CSVs")
	script := flag.String("script", "scripts/plot.py", "path to the python plotter")
	verbose := flag.Bool("verbose", true, "show messages")
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "usage: magnetite [options] <input.json> <geometry>...\n")
		os.Exit(1)
	}

	// message
	if *verbose {
		io.PfWhite("\nMagnetite -- 2D Linear-Elastic FEM\n\n")
	}

	// start per-run log
	if err := inp.InitLogFile(".", io.FnKey(flag.Arg(0))); err != nil {
		io.Pfyel("warning: cannot create log file: %v\n", err)
	}
	defer inp.FlushLog()

	// profiling?
	defer utl.DoProf(false)()

	// run analysis
	if err := run(flag.Arg(0), flag.Args()[1:], *cmap, *script, *noplot, *verbose); err != nil {
		inp.LogErr(err, "analysis failed")
		inp.FlushLog()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run executes the full pipeline: input -> geometry -> mesher -> solver ->
// output -> plotter. The first error is returned unchanged.
func run(inputfile string, geomfiles []string, cmap, script string, noplot, verbose bool) (err error) {

	// input document
	sim, err := inp.ReadSim(inputfile)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("info: loaded %d boundary rules from input file\n", len(sim.Rules))
	}

	// geometry
	loops, err := inp.ReadGeometries(geomfiles, sim.Data.ClMin)
	if err != nil {
		return
	}

	// mesh
	mshfile := "geom.msh"
	if err = inp.ComputeMesh(loops, mshfile, sim.Data.ClMin, sim.Data.ClMax, verbose); err != nil {
		return
	}
	msh, err := inp.ReadMsh(mshfile)
	if err != nil {
		return
	}
	os.Remove(mshfile)
	log.Printf("msh: nverts=%d ncells=%d", len(msh.Verts), len(msh.Cells))
	if verbose {
		io.Pf("info: loaded %d nodes and %d elements\n", len(msh.Verts), len(msh.Cells))
	}

	// solve
	analysis, err := fem.NewFEM(sim, msh, verbose)
	if err != nil {
		return
	}
	if err = analysis.Run(); err != nil {
		return
	}

	// results
	nodesCsv, elemsCsv := "nodes.csv", "elements.csv"
	if err = out.WriteCsv(analysis.Dom.Nodes, analysis.Dom.Elems, nodesCsv, elemsCsv, verbose); err != nil {
		return
	}

	// plot; the CSVs are kept when plotting is skipped
	if noplot {
		return
	}
	if err = out.Pyplot(nodesCsv, elemsCsv, script, cmap, verbose); err != nil {
		return
	}
	os.Remove(nodesCsv)
	os.Remove(elemsCsv)
	return
}
