// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/kyle-tennison/magnetite/mag"
)

func Test_log01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("log01. per-run log file")

	dir := "/tmp/magnetite"
	os.MkdirAll(dir, 0777)
	if err := InitLogFile(dir, "t_log01"); err != nil {
		tst.Errorf("InitLogFile failed: %v\n", err)
		return
	}

	// nil errors do not stop; real errors are recorded
	if LogErr(nil, "must not stop") {
		tst.Errorf("LogErr(nil) must return false\n")
	}
	if !LogErr(mag.InputErr("no OUTER geometry"), "reading geometry") {
		tst.Errorf("LogErr(err) must return true\n")
	}
	FlushLog()

	b, err := os.ReadFile(dir + "/t_log01.log")
	if err != nil {
		tst.Errorf("cannot read log file: %v\n", err)
		return
	}
	if !strings.Contains(string(b), "Input error: no OUTER geometry") {
		tst.Errorf("log file is missing the error record:\n%s\n", string(b))
	}
}
