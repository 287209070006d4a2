// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

// logFile holds a handle to the log file of the current run
var logFile *os.File

// InitLogFile initialises the per-run logger
func InitLogFile(dirout, fnamekey string) (err error) {

	// create log file
	logFile, err = os.Create(io.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return
	}

	// connect logger to output file
	log.SetOutput(logFile)
	return
}

// FlushLog saves the log (flushes to disk)
func FlushLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// LogErr logs err with a context message and returns a stop flag
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s : %v", msg, err)
		return true
	}
	return false
}
