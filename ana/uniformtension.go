// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the solver
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// UniformTension holds the uniform-strain solution of a rectangular
// plane-stress plate clamped on one edge and pulled by a uniform traction qn
// on the opposite edge. The strain field is homogeneous:
//  σxx = qn    εxx = qn/E    εyy = -ν·qn/E
//  ux(x) = εxx·x    uy(y) = εyy·y
type UniformTension struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio
	Qn float64 // traction (force per unit cross-section area)
}

// Ux returns the analytical x-displacement at coordinate x
func (o *UniformTension) Ux(x float64) float64 {
	return o.Qn / o.E * x
}

// Uy returns the analytical y-displacement at coordinate y
func (o *UniformTension) Uy(y float64) float64 {
	return -o.Nu * o.Qn / o.E * y
}

// Sig returns the analytical stress vector {σxx, σyy, τxy}
func (o *UniformTension) Sig() []float64 {
	return []float64{o.Qn, 0, 0}
}

// CheckDispl compares a computed displacement pair at (x,y) against the
// analytical field
func (o *UniformTension) CheckDispl(tst *testing.T, tol, x, y, ux, uy float64) {
	chk.Scalar(tst, io.Sf("ux(%g,%g)", x, y), tol, ux, o.Ux(x))
	chk.Scalar(tst, io.Sf("uy(%g,%g)", x, y), tol, uy, o.Uy(y))
}
