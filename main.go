/*
 * Piet - Main process: decode a source image, build a Program and an
 * Interpreter, run it to completion, report the outcome.
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

package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rcornwell/piet/config"
	"github.com/rcornwell/piet/decode"
	"github.com/rcornwell/piet/interp"
	"github.com/rcornwell/piet/internal/logger"
	"github.com/rcornwell/piet/ioiface"
	"github.com/rcornwell/piet/perrors"
)

var Logger *slog.Logger

func main() {
	cfg, err := config.Parse()
	if err != nil {
		os.Exit(1)
	}

	var file *os.File
	if cfg.LogFile != "" {
		file, _ = os.Create(cfg.LogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, &cfg.Debug))
	slog.SetDefault(Logger)

	Logger.Info("Piet started", "source", cfg.SourcePath)

	prog, err := decode.Load(cfg.SourcePath, cfg.CodelSize)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	stdio := ioiface.NewStdio(os.Stdin, os.Stdout)
	ip, err := interp.New(prog, stdio)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	// Let SIGINT/SIGTERM interrupt a long-running program by forcing the
	// step budget closed, mirroring the teacher's signal-handling pattern
	// in its own main.go.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	interrupted := make(chan struct{})
	go func() {
		<-sigChan
		Logger.Info("Got quit signal")
		close(interrupted)
	}()

	runErr := runInterpreter(ip, cfg.StepLimit, interrupted)
	_ = stdio.Flush()

	Logger.Debug("Piet finished", "state", ip.String())

	switch {
	case runErr == nil:
		os.Exit(0)
	case errors.Is(runErr, perrors.ErrStepLimitExceeded):
		Logger.Error(runErr.Error())
		os.Exit(2)
	default:
		Logger.Error(runErr.Error())
		os.Exit(1)
	}
}

// runInterpreter steps ip to completion, respecting both a positive
// step limit (spec.md 5, cancellation contract) and an external
// interrupt signal, which it treats the same as hitting the limit.
func runInterpreter(ip *interp.Interpreter, stepLimit int, interrupted <-chan struct{}) error {
	steps := 0
	for {
		select {
		case <-interrupted:
			return perrors.ErrStepLimitExceeded
		default:
		}

		if stepLimit > 0 && steps >= stepLimit {
			return perrors.ErrStepLimitExceeded
		}
		if ip.Step() {
			return nil
		}
		steps++
	}
}
