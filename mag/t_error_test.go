// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mag

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_error01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("error01. kinds and rendering")

	err := InputErr("boundary %q is over-constrained in x-axis", "pin")
	chk.StrAssert(err.Error(), "Input error: boundary \"pin\" is over-constrained in x-axis")
	chk.StrAssert(Kind(err), KindInput)

	err = MesherErr("gmsh failed: %v", "exit status 1")
	chk.StrAssert(Kind(err), KindMesher)

	err = SolverErr("did not converge within %d iterations", 10)
	chk.StrAssert(err.Error(), "Solver error: did not converge within 10 iterations")

	err = PostProcessorErr("plot script failed")
	chk.StrAssert(Kind(err), KindPostProcessor)

	if Kind(chk.Err("plain")) != "" {
		tst.Errorf("foreign errors must have no kind\n")
	}
}
