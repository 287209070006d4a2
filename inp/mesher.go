// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/mag"
)

// GeoBuffer builds the .geo description of the part: points, connecting
// lines, one line loop per boundary (outer first, holes subsequent), a single
// plane surface referencing all loops, and the mesh sizing directives.
func GeoBuffer(loops [][]Vertex, clmin, clmax float64) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)

	// offset of the first point of each loop
	offsets := make([]int, len(loops))
	npts := 0
	for i, loop := range loops {
		offsets[i] = npts
		npts += len(loop)
	}

	// points
	io.Ff(buf, "// Define outer points\n")
	for i, v := range loops[0] {
		io.Ff(buf, "Point(%d) = { %g, %g, 0, 1.0 };\n", i, v.X, v.Y)
	}
	io.Ff(buf, "\n// Define inner points\n")
	for l, loop := range loops {
		if l == 0 {
			continue
		}
		for i, v := range loop {
			io.Ff(buf, "Point(%d) = { %g, %g, 0, 1.0 };\n", offsets[l]+i, v.X, v.Y)
		}
	}

	// connecting lines, closing each loop back onto its first point
	io.Ff(buf, "\n// Connect points\n")
	for l, loop := range loops {
		io.Ff(buf, "\n// Point connections for surface %d\n", l)
		n := len(loop)
		for i := 1; i < n; i++ {
			io.Ff(buf, "Line(%d) = { %d, %d };\n", offsets[l]+i-1, offsets[l]+i-1, offsets[l]+i)
		}
		io.Ff(buf, "Line(%d) = { %d, %d };\n", offsets[l]+n-1, offsets[l]+n-1, offsets[l])
	}

	// line loops: outer first, then holes
	io.Ff(buf, "\n// Register loops\n")
	for l, loop := range loops {
		io.Ff(buf, "Line Loop(%d) = {", l+1)
		for i := range loop {
			if i > 0 {
				io.Ff(buf, ",")
			}
			io.Ff(buf, " %d", offsets[l]+i)
		}
		io.Ff(buf, " };\n")
	}

	// one plane surface referencing all loops
	io.Ff(buf, "\n// Define surface\n")
	io.Ff(buf, "Plane Surface(1) = {")
	for l := range loops {
		if l > 0 {
			io.Ff(buf, ",")
		}
		io.Ff(buf, " %d", l+1)
	}
	io.Ff(buf, " };\n")

	// sizing directives
	io.Ff(buf, "\n// Define mesh settings\n")
	io.Ff(buf, "Mesh.ElementOrder = 1;\n")
	io.Ff(buf, "Mesh.Algorithm = 1;\n")
	io.Ff(buf, "Mesh.CharacteristicLengthMin = %g;\n", clmin)
	io.Ff(buf, "Mesh.CharacteristicLengthMax = %g;\n", clmax)
	io.Ff(buf, "Mesh 2;\n")
	return
}

// ComputeMesh writes the .geo description for loops and invokes gmsh to
// produce mshfile. The intermediate .geo file is removed on success.
func ComputeMesh(loops [][]Vertex, mshfile string, clmin, clmax float64, verbose bool) (err error) {
	geofile := "geom.geo"
	if verbose {
		io.Pf("info: building .geo for gmsh with %.3g < CL < %.3g\n", clmin, clmax)
	}
	io.WriteFile(geofile, GeoBuffer(loops, clmin, clmax))

	// run gmsh
	if verbose {
		io.Pf("info: running gmsh...\n")
	}
	cmd := exec.Command("gmsh", geofile, "-2", "-o", mshfile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if e := cmd.Run(); e != nil {
		return mag.MesherErr("gmsh failed: %v\n%s", e, stderr.String())
	}
	os.Remove(geofile)
	return
}
