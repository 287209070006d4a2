// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/kyle-tennison/magnetite/inp"
	"github.com/kyle-tennison/magnetite/mag"
	"github.com/kyle-tennison/magnetite/msolid"
	"github.com/kyle-tennison/magnetite/shp"
)

// ElemU is a constant-strain triangle for plane-stress mechanical analyses.
// The local dof order is [u0x, u0y, u1x, u1y, u2x, u2y].
type ElemU struct {

	// basic data
	Cell *inp.Cell       // the cell structure
	X    [3][2]float64   // nodal coordinates
	Mdl  *msolid.LinElast // constitutive model
	Th   float64         // part thickness

	// geometry and matrices
	A float64     // signed area
	B [][]float64 // 3x6 strain-displacement matrix
	K [][]float64 // 6x6 stiffness matrix

	// derived after solve
	Sig    []float64 // 3-vector {σxx, σyy, τxy}
	Stress float64   // scalar stress magnitude

	// scratchpad
	d  [][]float64 // 3x3 elasticity matrix
	ue []float64   // local displacement vector
}

// newElemU allocates a new CST element
func newElemU(cell *inp.Cell, verts []*inp.Vert, mdl *msolid.LinElast, thickness float64) *ElemU {
	o := &ElemU{Cell: cell, Mdl: mdl, Th: thickness}
	for i, n := range cell.Verts {
		o.X[i][0] = verts[n].C[0]
		o.X[i][1] = verts[n].C[1]
	}
	o.B = la.MatAlloc(3, 6)
	o.K = la.MatAlloc(6, 6)
	o.Sig = make([]float64, 3)
	o.d = la.MatAlloc(3, 3)
	o.ue = make([]float64, 6)
	return o
}

// StiffK computes the element stiffness matrix
//  K = t * A * trans(B) * D * B
// and fails with a Solver error if the element is degenerate (A <= 0)
func (o *ElemU) StiffK() (err error) {

	// signed area; orientation must be positive
	o.A = shp.Tri3Area(o.X[0][0], o.X[0][1], o.X[1][0], o.X[1][1], o.X[2][0], o.X[2][1])
	if o.A <= 0 {
		return mag.SolverErr("degenerate element %d: signed area = %g", o.Cell.Id, o.A)
	}

	// strain-displacement and elasticity matrices
	shp.Tri3Bmat(o.B, o.X[0][0], o.X[0][1], o.X[1][0], o.X[1][1], o.X[2][0], o.X[2][1], o.A)
	o.Mdl.CalcD(o.d)

	// stiffness
	la.MatFill(o.K, 0)
	la.MatTrMulAdd3(o.K, o.Th*o.A, o.B, o.d, o.B) // K += t*A * trans(B) * D * B
	return
}

// RecoverStress computes the element stress vector σ = D·B·ue from the
// solved global displacements and stores the scalar stress magnitude
func (o *ElemU) RecoverStress(u []float64) {
	for i, n := range o.Cell.Verts {
		o.ue[2*i] = u[2*n]
		o.ue[2*i+1] = u[2*n+1]
	}
	o.Mdl.CalcSig(o.Sig, o.B, o.ue)
	o.Stress = msolid.StressScalar(o.Sig)
}
