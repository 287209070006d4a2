// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/kyle-tennison/magnetite/mag"
)

// solver defaults
const (
	CgTol    = 1e-4 // default residual tolerance on ‖r‖²
	CgNmaxIt = 1e7  // default iteration bound
)

// ConjGrad solves the symmetric positive-definite system A·x = b by the
// conjugate gradient method with zero initial guess. A is accessed only
// through matrix-vector products.
type ConjGrad struct {

	// configuration
	Tol     float64 // tolerance on the squared residual norm ‖b - A·x‖²
	NmaxIt  int     // iteration bound
	ShowMsg bool    // print progress messages

	// results
	It   int     // number of iterations taken by the last Solve
	Rho  float64 // last squared residual norm
	r    []float64
	p    []float64
	q    []float64
}

// NewConjGrad returns a conjugate gradient solver with default settings
func NewConjGrad() *ConjGrad {
	return &ConjGrad{Tol: CgTol, NmaxIt: CgNmaxIt}
}

// Solve computes x such that A·x = b.
//  Termination: ‖r‖² ≤ Tol, or NmaxIt iterations reached (Solver error).
//  A search direction with p·A·p ≤ 0 (non-SPD matrix) stops the solve at
//  once with a Solver error naming the iteration; callers should read it
//  as under-constrained geometry.
func (o *ConjGrad) Solve(x []float64, A [][]float64, b []float64) (err error) {

	// trivial system
	n := len(b)
	la.VecFill(x, 0)
	if n == 0 {
		o.It, o.Rho = 0, 0
		return
	}

	// allocate workspace
	if len(o.r) != n {
		o.r = make([]float64, n)
		o.p = make([]float64, n)
		o.q = make([]float64, n)
	}

	// x0 = 0  =>  r0 = b
	la.VecCopy(o.r, 1, b)
	la.VecCopy(o.p, 1, o.r)
	o.Rho = la.VecDot(o.r, o.r)

	// iterate
	for o.It = 0; o.It < o.NmaxIt; o.It++ {

		// converged?
		if o.Rho <= o.Tol {
			return
		}

		// α = ρ / (p·A·p)
		la.MatVecMul(o.q, 1, A, o.p) // q := A·p
		den := la.VecDot(o.p, o.q)
		if den <= 0 {
			return mag.SolverErr("conjugate gradient hit non-positive curvature at iteration %d; system is not SPD", o.It)
		}
		α := o.Rho / den

		// updates
		la.VecAdd(x, α, o.p)    // x += α·p
		la.VecAdd(o.r, -α, o.q) // r -= α·q
		ρnew := la.VecDot(o.r, o.r)
		β := ρnew / o.Rho
		la.VecAdd2(o.p, 1, o.r, β, o.p) // p := r + β·p
		o.Rho = ρnew

		// progress
		if o.ShowMsg && o.It > 0 && o.It%100000 == 0 {
			io.Pf("  cg: it=%d  rho=%g\n", o.It, o.Rho)
		}
	}
	if o.Rho <= o.Tol {
		return
	}
	return mag.SolverErr("did not converge within %d iterations; last residual %g", o.NmaxIt, o.Rho)
}
