// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements the plane-stress linear-elastic constitutive
// model relating strains to stresses
package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// LinElast implements plane-stress linear elasticity.
// Stress and strain vectors use the Voigt order {xx, yy, xy}.
type LinElast struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio
}

// Init initialises the model from a parameter set; "E" and "nu" are required
func (o *LinElast) Init(prms fun.Prms) (err error) {
	var hasE, hasν bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasν = p.V, true
		}
	}
	if !hasE || !hasν {
		return chk.Err("plane-stress elasticity requires both E and nu parameters")
	}
	if math.Abs(o.Nu) >= 1 {
		return chk.Err("Poisson's ratio must satisfy |nu| < 1; got %g", o.Nu)
	}
	return
}

// CalcD fills the 3x3 plane-stress elasticity matrix
//  D = E/(1-ν²) * | 1  ν  0       |
//                 | ν  1  0       |
//                 | 0  0  (1-ν)/2 |
func (o *LinElast) CalcD(D [][]float64) {
	c := o.E / (1.0 - o.Nu*o.Nu)
	la.MatFill(D, 0)
	D[0][0] = c
	D[0][1] = c * o.Nu
	D[1][0] = c * o.Nu
	D[1][1] = c
	D[2][2] = c * (1.0 - o.Nu) / 2.0
}

// CalcSig computes the element stress vector σ = D·B·ue
//  Input:
//   B  -- 3x6 strain-displacement matrix
//   ue -- 6-vector of element nodal displacements
//  Output:
//   σ -- 3-vector {σxx, σyy, τxy}
func (o *LinElast) CalcSig(σ []float64, B [][]float64, ue []float64) {
	var ε [3]float64
	la.MatVecMul(ε[:], 1, B, ue) // ε := B·ue
	c := o.E / (1.0 - o.Nu*o.Nu)
	σ[0] = c * (ε[0] + o.Nu*ε[1])
	σ[1] = c * (o.Nu*ε[0] + ε[1])
	σ[2] = c * (1.0 - o.Nu) / 2.0 * ε[2]
}

// StressScalar returns the scalar stress magnitude √(σxx² + σyy²) reported
// for each element. The shear component is excluded to keep output
// compatible with the plotting script.
func StressScalar(σ []float64) float64 {
	return math.Sqrt(σ[0]*σ[0] + σ[1]*σ[1])
}
