// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem assembles and solves plane-stress linear-elastic problems on
// triangular meshes using the finite element method
package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/inp"
)

// FEM holds all data for one analysis
type FEM struct {
	Sim     *inp.Simulation // input data
	Dom     *Domain         // nodes, elements and linear system
	Solver  *ConjGrad       // iterative solver for the reduced system
	ShowMsg bool            // show messages
}

// NewFEM returns a new FEM structure ready to run
func NewFEM(sim *inp.Simulation, msh *inp.Mesh, verbose bool) (o *FEM, err error) {
	o = &FEM{Sim: sim, ShowMsg: verbose}
	o.Dom, err = NewDomain(sim, msh)
	if err != nil {
		return nil, err
	}
	o.Solver = NewConjGrad()
	o.Solver.ShowMsg = verbose
	return
}

// Run performs the analysis:
//  element stiffnesses -> global K -> partition -> conjugate gradient ->
//  reactions -> per-element stress
// The first failing stage terminates the run with its error unchanged.
// On success the nodes carry (ux,uy,fx,fy) and the elements their stress.
func (o *FEM) Run() (err error) {

	// assemble global stiffness matrix
	if o.ShowMsg {
		io.Pf("info: building stiffness matrices for %d elements...\n", len(o.Dom.Elems))
	}
	if err = o.Dom.AssembleK(); err != nil {
		return
	}

	// partition according to prescribed displacements
	o.Dom.Partition()
	nu := len(o.Dom.UnkEqs)
	if o.ShowMsg {
		io.Pf("info: %d of %d dofs have unknown displacement\n", nu, o.Dom.Ny)
	}

	// solve reduced system; a fully constrained part has nothing to solve
	x := make([]float64, nu)
	if nu > 0 {
		if err = o.Solver.Solve(x, o.Dom.Kuu, o.Dom.Rhs); err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("info: conjugate gradient converged after %d iterations\n", o.Solver.It)
		}
	}
	o.Dom.ScatterU(x)

	// reactions
	o.Dom.Reactions()

	// stress recovery
	for _, e := range o.Dom.Elems {
		e.RecoverStress(o.Dom.U)
	}
	if o.ShowMsg {
		io.Pf("info: solve completed\n")
	}
	return
}
