// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the geometric kernels of the 3-node triangle
// (constant-strain triangle)
package shp

// Tri3Area returns the signed area of the triangle with vertices
// (x0,y0), (x1,y1), (x2,y2). The sign carries the orientation: negative or
// zero area flags a degenerate element.
func Tri3Area(x0, y0, x1, y1, x2, y2 float64) float64 {
	return 0.5 * (x0*(y1-y2) + x1*(y2-y0) + x2*(y0-y1))
}

// Tri3Bmat fills the 3x6 strain-displacement matrix B of the constant-strain
// triangle. The local column order is [u0x, u0y, u1x, u1y, u2x, u2y].
//  B = 1/(2A) * | β1  0   β2  0   β3  0  |
//               | 0   γ1  0   γ2  0   γ3 |
//               | γ1  β1  γ2  β2  γ3  β3 |
//  with βi from y-differences and γi from x-differences of the vertices
func Tri3Bmat(B [][]float64, x0, y0, x1, y1, x2, y2, A float64) {

	β1 := y1 - y2
	β2 := y2 - y0
	β3 := y0 - y1

	γ1 := x2 - x1
	γ2 := x0 - x2
	γ3 := x1 - x0

	c := 1.0 / (2.0 * A)

	B[0][0], B[0][1], B[0][2], B[0][3], B[0][4], B[0][5] = c*β1, 0, c*β2, 0, c*β3, 0
	B[1][0], B[1][1], B[1][2], B[1][3], B[1][4], B[1][5] = 0, c*γ1, 0, c*γ2, 0, c*γ3
	B[2][0], B[2][1], B[2][2], B[2][3], B[2][4], B[2][5] = c*γ1, c*β1, c*γ2, c*β2, c*γ3, c*β3
}
