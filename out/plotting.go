// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os/exec"

	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/mag"
)

// Pyplot calls the external python plotter on the two results files:
//  python <script> <nodesCsv> <elemsCsv> <cmap>
// A process lookup failure or non-zero exit surfaces as a PostProcessor
// error including the script's stderr.
func Pyplot(nodesCsv, elemsCsv, script, cmap string, verbose bool) (err error) {
	if verbose {
		io.Pf("info: plotting in python...\n")
	}
	cmd := exec.Command("python", script, nodesCsv, elemsCsv, cmap)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if e := cmd.Run(); e != nil {
		return mag.PostProcessorErr("python plotter raised error: %v\n\n%s", e, stderr.String())
	}
	return
}
