// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/kyle-tennison/magnetite/inp"
	"github.com/kyle-tennison/magnetite/mag"
	"github.com/kyle-tennison/magnetite/msolid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fp returns a pointer to v; handy for boundary rule targets
func fp(v float64) *float64 { return &v }

// newMesh builds a mesh from flat coordinates and connectivities
func newMesh(xy [][]float64, cells [][]int) *inp.Mesh {
	msh := new(inp.Mesh)
	for i, c := range xy {
		msh.Verts = append(msh.Verts, &inp.Vert{Id: i, C: []float64{c[0], c[1]}})
	}
	for i, v := range cells {
		msh.Cells = append(msh.Cells, &inp.Cell{Id: i, Verts: v})
	}
	return msh
}

// newSim builds a simulation with the given material and rules
func newSim(E, ν, t float64, rules ...*inp.BcRule) *inp.Simulation {
	return &inp.Simulation{
		Data:  inp.Metadata{Elasticity: E, Poisson: ν, Thickness: t, ClMin: 0.1, ClMax: 0.5},
		Rules: rules,
	}
}

// newElem builds a standalone element for kernel tests
func newElem(tst *testing.T, xy [][]float64, E, ν, t float64) *ElemU {
	msh := newMesh(xy, [][]int{{0, 1, 2}})
	mdl := new(msolid.LinElast)
	err := mdl.Init(fun.Prms{&fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: ν}})
	if err != nil {
		tst.Fatalf("model Init failed: %v\n", err)
	}
	return newElemU(msh.Cells[0], msh.Verts, mdl, t)
}

// checkSymmetric verifies that K is symmetric within a relative tolerance
func checkSymmetric(tst *testing.T, msg string, K [][]float64, tol float64) {
	ref := la.MatLargest(K, 1)
	if ref == 0 {
		ref = 1
	}
	for i := 0; i < len(K); i++ {
		for j := i + 1; j < len(K); j++ {
			if diff := math.Abs(K[i][j] - K[j][i]); diff > tol*ref {
				tst.Errorf("%s: K[%d][%d] and K[%d][%d] differ by %g\n", msg, i, j, j, i, diff)
				return
			}
		}
	}
}

func Test_elem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem01. stiffness of the unit right triangle")

	e := newElem(tst, [][]float64{{0, 0}, {1, 0}, {0, 1}}, 1, 0, 1)
	if err := e.StiffK(); err != nil {
		tst.Errorf("StiffK failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "A", 1e-15, e.A, 0.5)

	// K = t*A * trans(B)*D*B computed by hand for E=1, ν=0, t=1
	chk.Matrix(tst, "K", 1e-14, e.K, [][]float64{
		{0.75, 0.25, -0.5, -0.25, -0.25, 0},
		{0.25, 0.75, 0, -0.25, -0.25, -0.5},
		{-0.5, 0, 0.5, 0, 0, 0},
		{-0.25, -0.25, 0, 0.25, 0.25, 0},
		{-0.25, -0.25, 0, 0.25, 0.25, 0},
		{0, -0.5, 0, 0, 0, 0.5},
	})
}

func Test_elem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem02. element stiffness symmetry")

	triangles := [][][]float64{
		{{0, 0}, {1, 0}, {0, 1}},
		{{0.3, -0.2}, {1.7, 0.1}, {0.9, 1.4}},
		{{-2, -1}, {4, 0.5}, {1, 8}},
		{{0, 0}, {100, 1}, {50, 60}},
	}
	for i, xy := range triangles {
		e := newElem(tst, xy, 210e9, 0.3, 0.02)
		if err := e.StiffK(); err != nil {
			tst.Errorf("StiffK failed for triangle %d: %v\n", i, err)
			return
		}
		checkSymmetric(tst, io.Sf("Ke %d", i), e.K, 1e-9)
	}
}

func Test_elem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem03. degenerate elements are rejected")

	// collinear vertices
	e := newElem(tst, [][]float64{{0, 0}, {1, 1}, {2, 2}}, 1, 0, 1)
	err := e.StiffK()
	if err == nil {
		tst.Errorf("collinear element must be rejected\n")
		return
	}
	if mag.Kind(err) != mag.KindSolver {
		tst.Errorf("degenerate element must produce a Solver error; got %v\n", err)
	}

	// clockwise orientation (negative area)
	e = newElem(tst, [][]float64{{0, 0}, {0, 1}, {1, 0}}, 1, 0, 1)
	if err = e.StiffK(); err == nil {
		tst.Errorf("negative-area element must be rejected\n")
	}
}

func Test_elem04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem04. stress recovery under homogeneous strain")

	e := newElem(tst, [][]float64{{0.3, -0.2}, {1.7, 0.1}, {0.9, 1.4}}, 30e6, 0.25, 1)
	if err := e.StiffK(); err != nil {
		tst.Errorf("StiffK failed: %v\n", err)
		return
	}

	// homogeneous strain εxx = a with zero lateral strain, scattered to a
	// global-sized vector indexed by the cell connectivity
	a := 1e-3
	ug := make([]float64, 6)
	for i, n := range e.Cell.Verts {
		ug[2*n] = a * e.X[i][0]
	}
	e.RecoverStress(ug)

	c := 30e6 / (1.0 - 0.0625)
	chk.Scalar(tst, "σxx", 1e-8, e.Sig[0], c*a)
	chk.Scalar(tst, "σyy", 1e-8, e.Sig[1], c*0.25*a)
	chk.Scalar(tst, "τxy", 1e-8, e.Sig[2], 0)
	chk.Scalar(tst, "stress scalar", 1e-8, e.Stress, math.Sqrt(c*a*c*a*(1+0.0625)))
}
