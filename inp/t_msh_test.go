// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/kyle-tennison/magnetite/mag"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. read .msh with out-of-order node blocks")

	msh, err := ReadMsh("data/square.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed: %v\n", err)
		return
	}

	// nodes reordered by tag-minus-one
	chk.IntAssert(len(msh.Verts), 4)
	chk.Vector(tst, "v0", 1e-15, msh.Verts[0].C, []float64{0, 0})
	chk.Vector(tst, "v1", 1e-15, msh.Verts[1].C, []float64{1, 0})
	chk.Vector(tst, "v2", 1e-15, msh.Verts[2].C, []float64{1, 1})
	chk.Vector(tst, "v3", 1e-15, msh.Verts[3].C, []float64{0, 1})
	for i, v := range msh.Verts {
		chk.IntAssert(v.Id, i)
	}

	// only the two triangles survive; the 1D element is dropped
	chk.IntAssert(len(msh.Cells), 2)
	chk.Ints(tst, "cell0", msh.Cells[0].Verts, []int{0, 1, 2})
	chk.Ints(tst, "cell1", msh.Cells[1].Verts, []int{0, 2, 3})

	// limits
	chk.Scalar(tst, "xmin", 1e-15, msh.Xmin, 0)
	chk.Scalar(tst, "xmax", 1e-15, msh.Xmax, 1)
	chk.Scalar(tst, "ymin", 1e-15, msh.Ymin, 0)
	chk.Scalar(tst, "ymax", 1e-15, msh.Ymax, 1)

	// plot
	if chk.Verbose {
		msh.Draw2d()
		plt.SaveD("/tmp/magnetite", "mesh.png")
	}
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. unreadable mesh files produce Mesher errors")

	_, err := ReadMsh("data/does-not-exist.msh")
	if err == nil || mag.Kind(err) != mag.KindMesher {
		tst.Errorf("missing file must produce a Mesher error; got %v\n", err)
	}
}

func Test_mesher01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesher01. .geo emission")

	loops := [][]Vertex{
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0.25, 0.25}, {0.75, 0.25}, {0.5, 0.5}},
	}
	geo := GeoBuffer(loops, 0.05, 0.2).String()

	for _, want := range []string{
		"Point(0) = { 0, 0, 0, 1.0 };",
		"Point(3) = { 0, 1, 0, 1.0 };",
		"Point(4) = { 0.25, 0.25, 0, 1.0 };",
		"Point(6) = { 0.5, 0.5, 0, 1.0 };",
		"Line(3) = { 3, 0 };",
		"Line(6) = { 6, 4 };",
		"Line Loop(1) = { 0, 1, 2, 3 };",
		"Line Loop(2) = { 4, 5, 6 };",
		"Plane Surface(1) = { 1, 2 };",
		"Mesh.ElementOrder = 1;",
		"Mesh.CharacteristicLengthMin = 0.05;",
		"Mesh.CharacteristicLengthMax = 0.2;",
		"Mesh 2;",
	} {
		if !strings.Contains(geo, want) {
			tst.Errorf("geo file is missing %q\n", want)
		}
	}
}
