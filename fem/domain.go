// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"

	"github.com/kyle-tennison/magnetite/inp"
	"github.com/kyle-tennison/magnetite/mag"
	"github.com/kyle-tennison/magnetite/msolid"
)

// Domain holds the nodes, elements and linear system of one analysis.
// Equation numbers follow the flat dof convention: eq 2i is the x-dof of
// node i and eq 2i+1 is its y-dof.
type Domain struct {

	// input
	Sim *inp.Simulation // input data
	Msh *inp.Mesh       // the mesh
	Mdl *msolid.LinElast // constitutive model shared by all elements

	// nodes and elements
	Nodes []*Node  // active nodes
	Elems []*ElemU // active elements
	Ny    int      // total number of dofs == 2 * len(Nodes)

	// global system
	K [][]float64 // dense global stiffness matrix (Ny x Ny)
	U []float64   // flat displacement vector
	F []float64   // flat force vector

	// partitioning
	UnkEqs []int       // equations with unknown displacement, ascending
	KnoEqs []int       // equations with prescribed displacement, ascending
	Kuu    [][]float64 // sub-matrix K[UnkEqs, UnkEqs]
	Rhs    []float64   // f_U - K_UD * u_D
}

// NewDomain builds a domain: allocates nodes from the mesh vertices, stamps
// the boundary rules onto them and allocates one CST element per cell
func NewDomain(sim *inp.Simulation, msh *inp.Mesh) (o *Domain, err error) {

	// constitutive model
	o = &Domain{Sim: sim, Msh: msh}
	o.Mdl = new(msolid.LinElast)
	err = o.Mdl.Init(fun.Prms{
		&fun.Prm{N: "E", V: sim.Data.Elasticity},
		&fun.Prm{N: "nu", V: sim.Data.Poisson},
	})
	if err != nil {
		return nil, mag.InputErr("%v", err)
	}

	// nodes
	o.Nodes = make([]*Node, len(msh.Verts))
	for i, v := range msh.Verts {
		o.Nodes[i] = NewNode(v)
	}
	o.Ny = 2 * len(o.Nodes)

	// boundary conditions
	o.SetBcs()

	// elements
	o.Elems = make([]*ElemU, len(msh.Cells))
	for i, c := range msh.Cells {
		o.Elems[i] = newElemU(c, msh.Verts, o.Mdl, sim.Data.Thickness)
	}
	return
}

// SetBcs stamps the boundary rules onto the nodes. Rules are consulted in
// document order; a later rule overrides an earlier one on the nodes it
// selects. Region containment uses strict inequalities.
func (o *Domain) SetBcs() {
	for _, nod := range o.Nodes {
		x, y := nod.Vert.C[0], nod.Vert.C[1]
		for _, rule := range o.Sim.Rules {
			if !rule.Region.Contains(x, y) {
				continue
			}
			if rule.Tgt.Ux != nil {
				nod.Dofs[0].SetU(*rule.Tgt.Ux)
			} else {
				nod.Dofs[0].SetF(*rule.Tgt.Fx)
			}
			if rule.Tgt.Uy != nil {
				nod.Dofs[1].SetU(*rule.Tgt.Uy)
			} else {
				nod.Dofs[1].SetF(*rule.Tgt.Fy)
			}
		}
	}
}

// AssembleK builds the dense global stiffness matrix by scattering each
// element stiffness. Elements are visited in ascending index order, which is
// the reference summation order for floating-point reproducibility.
func (o *Domain) AssembleK() (err error) {
	o.K = la.MatAlloc(o.Ny, o.Ny)
	for _, e := range o.Elems {
		if err = e.StiffK(); err != nil {
			return
		}
		for a, I := range e.Cell.Verts {
			for b, J := range e.Cell.Verts {
				for p := 0; p < 2; p++ {
					for q := 0; q < 2; q++ {
						o.K[2*I+p][2*J+q] += e.K[2*a+p][2*b+q]
					}
				}
			}
		}
	}
	return
}

// Partition classifies each dof as prescribed-displacement or
// prescribed-force and reduces the global system:
//  Kuu = K[U,U]
//  rhs = f_U - K_UD * u_D
// where U collects the unknown-displacement equations and D the prescribed
// ones, both in ascending equation order.
func (o *Domain) Partition() {

	// flat vectors
	o.U = make([]float64, o.Ny)
	o.F = make([]float64, o.Ny)
	o.UnkEqs = o.UnkEqs[:0]
	o.KnoEqs = o.KnoEqs[:0]
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			o.U[dof.Eq] = dof.U
			o.F[dof.Eq] = dof.F
			if dof.UKnown {
				o.KnoEqs = append(o.KnoEqs, dof.Eq)
			} else {
				o.UnkEqs = append(o.UnkEqs, dof.Eq)
			}
		}
	}

	// reduced system
	nu := len(o.UnkEqs)
	o.Kuu = la.MatAlloc(nu, nu)
	o.Rhs = make([]float64, nu)
	for i, r := range o.UnkEqs {
		for j, c := range o.UnkEqs {
			o.Kuu[i][j] = o.K[r][c]
		}
		o.Rhs[i] = o.F[r]
		for _, c := range o.KnoEqs {
			o.Rhs[i] -= o.K[r][c] * o.U[c]
		}
	}
}

// ScatterU loads the reduced solution x back into the flat displacement
// vector and onto the node records; all displacements become known
func (o *Domain) ScatterU(x []float64) {
	for i, eq := range o.UnkEqs {
		o.U[eq] = x[i]
	}
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			dof.U = o.U[dof.Eq]
			dof.UKnown = true
		}
	}
}

// Reactions back-substitutes the full displacement vector to recover the
// forces at prescribed-displacement dofs:
//  f_i = Σ_j K[i,j] * u[j]
// After this call all forces are known, on the flat vector and on the nodes.
func (o *Domain) Reactions() {
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			if !dof.FKnown {
				f := 0.0
				for j := 0; j < o.Ny; j++ {
					f += o.K[dof.Eq][j] * o.U[j]
				}
				o.F[dof.Eq] = f
			}
			dof.F = o.F[dof.Eq]
			dof.FKnown = true
		}
	}
}
