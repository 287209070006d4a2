// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mag defines the error kinds shared by all stages of an analysis
package mag

import "github.com/cpmech/gosl/io"

// error kinds, one per stage of the pipeline
const (
	KindInput         = "Input"
	KindMesher        = "Mesher"
	KindSolver        = "Solver"
	KindPostProcessor = "PostProcessor"
)

// Error associates a message with the stage that produced it. Errors travel
// unchanged from the failing stage to the command line.
type Error struct {
	Kind string // one of the Kind... constants
	Msg  string // description of the failure
}

// Error returns the message prefixed by the originating stage
func (o *Error) Error() string {
	return io.Sf("%s error: %s", o.Kind, o.Msg)
}

// InputErr returns a new Input error
func InputErr(msg string, prm ...interface{}) *Error {
	return &Error{KindInput, io.Sf(msg, prm...)}
}

// MesherErr returns a new Mesher error
func MesherErr(msg string, prm ...interface{}) *Error {
	return &Error{KindMesher, io.Sf(msg, prm...)}
}

// SolverErr returns a new Solver error
func SolverErr(msg string, prm ...interface{}) *Error {
	return &Error{KindSolver, io.Sf(msg, prm...)}
}

// PostProcessorErr returns a new PostProcessor error
func PostProcessorErr(msg string, prm ...interface{}) *Error {
	return &Error{KindPostProcessor, io.Sf(msg, prm...)}
}

// Kind returns the kind of err or an empty string if err does not carry one
func Kind(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}
