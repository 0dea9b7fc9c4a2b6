/*
 * Piet - CLI configuration: flags controlling the source image, codel
 * size, step limit and logging.
 *
 * Copyright 2025, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package config builds a Config from command-line flags, the Go
// equivalent of the original Rust CLI's structopt Opt struct
// (original_source/src/main.rs), extended per SPEC_FULL 1.3 with a step
// limit and logging flags, parsed the way the teacher's main.go parses
// its own flags.
package config

import (
	"errors"
	"os"

	getopt "github.com/pborman/getopt/v2"
)

// Config holds everything the CLI needs to run one Piet program.
type Config struct {
	SourcePath string
	CodelSize  int
	StepLimit  int
	LogFile    string
	Debug      bool
}

// ErrNoSource is returned when no positional source path was given.
var ErrNoSource = errors.New("piet: no source image specified")

// Parse builds a Config from os.Args, matching the teacher's
// getopt.StringLong/BoolLong/Parse/Usage pattern in main.go.
func Parse() (*Config, error) {
	optCodelSize := getopt.IntLong("codel-size", 'c', 1, "Codel size in pixels")
	optSteps := getopt.IntLong("steps", 's', 0, "Step limit (0 = unbounded)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug-level trace to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) < 1 {
		getopt.Usage()
		return nil, ErrNoSource
	}

	return &Config{
		SourcePath: args[0],
		CodelSize:  *optCodelSize,
		StepLimit:  *optSteps,
		LogFile:    *optLogFile,
		Debug:      *optDebug,
	}, nil
}
