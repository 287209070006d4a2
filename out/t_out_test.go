// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/fem"
	"github.com/kyle-tennison/magnetite/inp"
	"github.com/kyle-tennison/magnetite/mag"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fp returns a pointer to v
func fp(v float64) *float64 { return &v }

// solveSquare runs the clamp-left pull-right square analysis
func solveSquare(tst *testing.T) *fem.Domain {
	sim := &inp.Simulation{
		Data: inp.Metadata{Elasticity: 1, Poisson: 0, Thickness: 1, ClMin: 0.1, ClMax: 0.5},
		Rules: []*inp.BcRule{
			{
				Name:   "clamp_left",
				Region: inp.Region{Xmin: math.Inf(-1), Xmax: 0.1, Ymin: math.Inf(-1), Ymax: math.Inf(1)},
				Tgt:    inp.Targets{Ux: fp(0), Uy: fp(0)},
			},
			{
				Name:   "pull_right",
				Region: inp.Region{Xmin: 0.9, Xmax: math.Inf(1), Ymin: math.Inf(-1), Ymax: math.Inf(1)},
				Tgt:    inp.Targets{Fx: fp(1), Fy: fp(0)},
			},
		},
	}
	msh := &inp.Mesh{
		Verts: []*inp.Vert{
			{Id: 0, C: []float64{0, 0}},
			{Id: 1, C: []float64{1, 0}},
			{Id: 2, C: []float64{1, 1}},
			{Id: 3, C: []float64{0, 1}},
		},
		Cells: []*inp.Cell{
			{Id: 0, Verts: []int{0, 1, 2}},
			{Id: 1, Verts: []int{0, 2, 3}},
		},
	}
	fe, err := fem.NewFEM(sim, msh, chk.Verbose)
	if err != nil {
		tst.Fatalf("NewFEM failed: %v\n", err)
	}
	if err = fe.Run(); err != nil {
		tst.Fatalf("Run failed: %v\n", err)
	}
	return fe.Dom
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. csv round-trip preserves full precision")

	dom := solveSquare(tst)

	dir := "/tmp/magnetite"
	os.MkdirAll(dir, 0777)
	nfn := filepath.Join(dir, "nodes.csv")
	efn := filepath.Join(dir, "elements.csv")
	if err := WriteCsv(dom.Nodes, dom.Elems, nfn, efn, chk.Verbose); err != nil {
		tst.Errorf("WriteCsv failed: %v\n", err)
		return
	}

	// nodes
	nrows, err := ReadNodesCsv(nfn)
	if err != nil {
		tst.Errorf("ReadNodesCsv failed: %v\n", err)
		return
	}
	chk.IntAssert(len(nrows), len(dom.Nodes))
	for i, nod := range dom.Nodes {
		chk.Scalar(tst, "x", 1e-12, nrows[i].X, nod.Vert.C[0])
		chk.Scalar(tst, "y", 1e-12, nrows[i].Y, nod.Vert.C[1])
		chk.Scalar(tst, "ux", 1e-12, nrows[i].Ux, nod.Dofs[0].U)
		chk.Scalar(tst, "uy", 1e-12, nrows[i].Uy, nod.Dofs[1].U)
	}

	// elements
	erows, err := ReadElemsCsv(efn)
	if err != nil {
		tst.Errorf("ReadElemsCsv failed: %v\n", err)
		return
	}
	chk.IntAssert(len(erows), len(dom.Elems))
	for i, e := range dom.Elems {
		chk.Ints(tst, "conn", []int{erows[i].N0, erows[i].N1, erows[i].N2}, e.Cell.Verts)
		chk.Scalar(tst, "stress", 1e-12, erows[i].Stress, e.Stress)
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. malformed results files are rejected")

	dir := "/tmp/magnetite"
	os.MkdirAll(dir, 0777)
	fn := filepath.Join(dir, "bad.csv")
	os.WriteFile(fn, []byte("a,b,c\n1,2,3\n"), 0644)
	_, err := ReadNodesCsv(fn)
	if err == nil || mag.Kind(err) != mag.KindPostProcessor {
		tst.Errorf("wrong header must produce a PostProcessor error; got %v\n", err)
	}

	_, err = ReadNodesCsv(filepath.Join(dir, "does-not-exist.csv"))
	if err == nil {
		tst.Errorf("missing file must be an error\n")
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. failing plotter surfaces as PostProcessor error")

	err := Pyplot("nodes.csv", "elements.csv", "/definitely/not/a/script.py", "coolwarm", false)
	if err == nil {
		tst.Errorf("missing plot script must fail\n")
		return
	}
	if mag.Kind(err) != mag.KindPostProcessor {
		tst.Errorf("failure must be a PostProcessor error; got %v\n", err)
	}
}
