// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes analysis results to CSV files and drives the external
// plotting script
package out

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/fem"
	"github.com/kyle-tennison/magnetite/mag"
)

// NodeRow is one record of nodes.csv
type NodeRow struct {
	X, Y   float64 // vertex coordinates
	Ux, Uy float64 // solved displacements
}

// ElemRow is one record of elements.csv
type ElemRow struct {
	N0, N1, N2 int     // connectivity
	Stress     float64 // scalar stress magnitude
}

// WriteCsv writes the post-solve nodes and elements to two CSV files:
//  nodes.csv    -- header x,y,ux,uy; one row per node in node-index order
//  elements.csv -- header n0,n1,n2,stress; one row per element
// Floats are written with enough digits to round-trip exactly.
func WriteCsv(nodes []*fem.Node, elems []*fem.ElemU, nodesFn, elemsFn string, verbose bool) (err error) {

	// nodes
	nb := new(bytes.Buffer)
	io.Ff(nb, "x,y,ux,uy\n")
	for _, nod := range nodes {
		io.Ff(nb, "%.17g,%.17g,%.17g,%.17g\n", nod.Vert.C[0], nod.Vert.C[1], nod.Dofs[0].U, nod.Dofs[1].U)
	}
	if err = writeFile(nodesFn, nb); err != nil {
		return
	}

	// elements
	eb := new(bytes.Buffer)
	io.Ff(eb, "n0,n1,n2,stress\n")
	for _, e := range elems {
		io.Ff(eb, "%d,%d,%d,%.17g\n", e.Cell.Verts[0], e.Cell.Verts[1], e.Cell.Verts[2], e.Stress)
	}
	if err = writeFile(elemsFn, eb); err != nil {
		return
	}
	if verbose {
		io.Pf("info: wrote output to %s and %s\n", nodesFn, elemsFn)
	}
	return
}

// ReadNodesCsv parses a nodes.csv file written by WriteCsv
func ReadNodesCsv(fn string) (rows []NodeRow, err error) {
	records, err := readCsv(fn, "x,y,ux,uy", 4)
	if err != nil {
		return
	}
	for _, rec := range records {
		rows = append(rows, NodeRow{rec[0], rec[1], rec[2], rec[3]})
	}
	return
}

// ReadElemsCsv parses an elements.csv file written by WriteCsv
func ReadElemsCsv(fn string) (rows []ElemRow, err error) {
	records, err := readCsv(fn, "n0,n1,n2,stress", 4)
	if err != nil {
		return
	}
	for _, rec := range records {
		rows = append(rows, ElemRow{int(rec[0]), int(rec[1]), int(rec[2]), rec[3]})
	}
	return
}

// readCsv reads a results file checking its header and column count
func readCsv(fn, header string, ncols int) (records [][]float64, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, mag.PostProcessorErr("unable to open results file %s", fn)
	}
	first := true
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first {
			first = false
			if line != header {
				return nil, mag.PostProcessorErr("results file %s has header %q; want %q", fn, line, header)
			}
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != ncols {
			return nil, mag.PostProcessorErr("results file %s has malformed row %q", fn, line)
		}
		rec := make([]float64, ncols)
		for i, f := range fields {
			rec[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, mag.PostProcessorErr("non-float value %q in results file %s", f, fn)
			}
		}
		records = append(records, rec)
	}
	return
}

// writeFile writes a buffer wrapping failures in a PostProcessor error
func writeFile(fn string, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mag.PostProcessorErr("failed to create %s: %v", fn, r)
		}
	}()
	io.WriteFile(fn, buf)
	return
}
