/*
 * Piet - Interpreter: the step loop that drives Program + Stack through
 * the navigation protocol, dispatching the command implied by each
 * successful color transition.
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

// Package interp implements the Piet interpreter's step loop: it holds
// the Program, Stack and (DP, CC, position) state of spec.md 3 and
// advances it one codel-transition at a time via Step, or to completion
// via Run.
package interp

import (
	"fmt"
	"log/slog"

	"github.com/rcornwell/piet/color"
	"github.com/rcornwell/piet/command"
	"github.com/rcornwell/piet/ioiface"
	"github.com/rcornwell/piet/navigation"
	"github.com/rcornwell/piet/perrors"
	"github.com/rcornwell/piet/program"
	"github.com/rcornwell/piet/stack"
)

// visitKey identifies a (position, DP, CC) tuple for the white-slide
// cycle check of spec.md 4.5.
type visitKey struct {
	pos program.Coord
	dp  navigation.DP
	cc  navigation.CC
}

// Interpreter is the mutable execution state of spec.md 3: a Program
// reference plus an owned Stack, DP, CC and position. It is created from
// a Program and mutated only by Step/Run.
type Interpreter struct {
	prog  *program.Program
	stk   *stack.Stack
	io    ioiface.Surface
	dp    navigation.DP
	cc    navigation.CC
	pos   program.Coord
	retry navigation.RetryState

	done bool
}

// New builds an Interpreter over prog, reading/writing through io. The
// initial state is DP=Right, CC=Left, position=(0,0), empty stack
// (spec.md 3). It returns perrors.ErrInvalidStart if the starting codel
// is Black: there is no block to begin execution from.
func New(prog *program.Program, io ioiface.Surface) (*Interpreter, error) {
	start := program.Coord{X: 0, Y: 0}
	c, ok := prog.Get(start)
	if !ok {
		return nil, fmt.Errorf("%w: program is empty", perrors.ErrInvalidStart)
	}
	if c.Kind == color.Black {
		return nil, perrors.ErrInvalidStart
	}

	return &Interpreter{
		prog: prog,
		stk:  stack.New(),
		io:   io,
		dp:   navigation.Right,
		cc:   navigation.CCLeft,
		pos:  start,
	}, nil
}

// Position, DP, CC and Stack expose the current state for diagnostics
// and tests.
func (ip *Interpreter) Position() program.Coord { return ip.pos }
func (ip *Interpreter) DP() navigation.DP        { return ip.dp }
func (ip *Interpreter) CC() navigation.CC        { return ip.cc }
func (ip *Interpreter) Stack() []int64           { return ip.stk.Slice() }

// Done reports whether the interpreter has reached normal termination
// (spec.md 4.5: eight consecutive blocked attempts with no movement).
func (ip *Interpreter) Done() bool { return ip.done }

// String renders the interpreter's state for debug logging, echoing the
// original implementation's derived Debug rendering (spec.md, SPEC_FULL 3).
func (ip *Interpreter) String() string {
	return fmt.Sprintf("pos=%v dp=%v cc=%v stack=%v done=%t", ip.pos, ip.dp, ip.cc, ip.stk.Slice(), ip.done)
}

// Step performs one of: execute a command and move, slide through
// white, retry a blocked move, or terminate (spec.md 4.6). It returns
// true once the interpreter has reached normal termination; calling
// Step again after that is a no-op.
func (ip *Interpreter) Step() bool {
	if ip.done {
		return true
	}

	block := ip.prog.ColorBlock(ip.pos)
	fromColor, _ := ip.prog.Get(ip.pos)
	exitSize := len(block)

	exit := navigation.ExitCodel(block, ip.dp, ip.cc)
	target := navigation.Target(exit, ip.dp)

	tColor, ok := ip.prog.Get(target)
	if !ok || tColor.Kind == color.Black {
		ip.blocked()
		return ip.done
	}

	if tColor.Kind == color.White {
		ip.slide(target)
		return ip.done
	}

	h, l, _ := color.Transition(fromColor, tColor)
	cmd := command.FromTransition(h, l)
	slog.Debug("piet: executing", "command", cmd, "from", ip.pos, "to", target)
	ip.dispatch(cmd, exitSize)
	ip.pos = target
	ip.retry.Reset()
	return false
}

// blocked applies one retry-protocol step (spec.md 4.5) from the
// interpreter's current DP/CC, terminating normally once the budget is
// exhausted.
func (ip *Interpreter) blocked() {
	dp, cc, exhausted := ip.retry.Next(ip.dp, ip.cc)
	ip.dp, ip.cc = dp, cc
	if exhausted {
		slog.Debug("piet: terminated", "reason", "retry budget exhausted", "pos", ip.pos)
		ip.done = true
	}
}

// slide traverses White codels in a straight line starting at from (the
// already-probed white target), executing no command, until it reaches a
// composite color (arrival is NoOp — white erases the transition), hits
// black/the edge (retry protocol applies), or detects a (pos, DP, CC)
// cycle, which forces normal termination (spec.md 4.5).
func (ip *Interpreter) slide(from program.Coord) {
	pos, dp, cc := from, ip.dp, ip.cc
	seen := map[visitKey]struct{}{}

	for {
		key := visitKey{pos, dp, cc}
		if _, ok := seen[key]; ok {
			slog.Debug("piet: terminated", "reason", "white-slide cycle", "pos", pos)
			ip.done = true
			return
		}
		seen[key] = struct{}{}

		next := navigation.Target(pos, dp)
		nColor, ok := ip.prog.Get(next)
		if !ok || nColor.Kind == color.Black {
			var exhausted bool
			dp, cc, exhausted = ip.retry.Next(dp, cc)
			if exhausted {
				ip.dp, ip.cc = dp, cc
				slog.Debug("piet: terminated", "reason", "retry budget exhausted during slide", "pos", pos)
				ip.done = true
				return
			}
			continue
		}

		if nColor.Kind == color.White {
			pos = next
			continue
		}

		// Arrived at a composite color through white: NoOp, no transition.
		ip.retry.Reset()
		ip.dp, ip.cc = dp, cc
		ip.pos = next
		return
	}
}

// dispatch executes cmd against the stack, DP and CC, per spec.md 4.6.
// Every precondition failure (underflow, divide/mod by zero, bad roll
// depth, output on empty stack, input EOF) is silent: the stack is left
// unchanged and execution continues (spec.md 7).
func (ip *Interpreter) dispatch(cmd command.Command, exitBlockSize int) {
	switch cmd {
	case command.NoOp:

	case command.Push:
		ip.stk.Push(int64(exitBlockSize))

	case command.Pop:
		ip.stk.Pop()

	case command.Add:
		ip.stk.FoldTop(func(a, b int64) int64 { return a + b })

	case command.Subtract:
		ip.stk.FoldTop(func(a, b int64) int64 { return a - b })

	case command.Multiply:
		ip.stk.FoldTop(func(a, b int64) int64 { return a * b })

	case command.Divide:
		ip.foldDivMod(floorDiv)

	case command.Mod:
		ip.foldDivMod(floorMod)

	case command.Not:
		if v, ok := ip.stk.Pop(); ok {
			if v == 0 {
				ip.stk.Push(1)
			} else {
				ip.stk.Push(0)
			}
		}

	case command.Greater:
		ip.stk.FoldTop(func(a, b int64) int64 {
			if a > b {
				return 1
			}
			return 0
		})

	case command.Pointer:
		if v, ok := ip.stk.Pop(); ok {
			ip.rotatePointer(v)
		}

	case command.Switch:
		if v, ok := ip.stk.Pop(); ok && v%2 != 0 {
			ip.cc = ip.cc.Toggle()
		}

	case command.Duplicate:
		if v, ok := ip.stk.Peek(); ok {
			ip.stk.Push(v)
		}

	case command.Roll:
		ip.roll()

	case command.InNum:
		if v, ok := ip.io.ReadNumber(); ok {
			ip.stk.Push(v)
		}

	case command.InChar:
		if r, ok := ip.io.ReadChar(); ok {
			ip.stk.Push(int64(r))
		}

	case command.OutNum:
		if v, ok := ip.stk.Pop(); ok {
			_ = ip.io.WriteNumber(v)
		}

	case command.OutChar:
		if v, ok := ip.stk.Pop(); ok {
			_ = ip.io.WriteChar(rune(v))
		}
	}
}

// rotatePointer rotates DP clockwise v times (v >= 0) or counter-
// clockwise |v| times (v < 0), per spec.md 4.6.
func (ip *Interpreter) rotatePointer(v int64) {
	n := v % 4
	if n < 0 {
		n += 4
	}
	for i := int64(0); i < n; i++ {
		ip.dp = ip.dp.RotateClockwise()
	}
}

// roll pops times (top) then depth (second) and applies Stack.Roll. An
// out-of-range depth discards the operation without restoring the two
// popped values (spec.md 4.6).
func (ip *Interpreter) roll() {
	if ip.stk.Len() < 2 {
		return
	}
	times, _ := ip.stk.Pop()
	depth, _ := ip.stk.Pop()

	if depth < 0 || depth > int64(ip.stk.Len()) {
		return
	}
	ip.stk.Roll(int(depth), times)
}

// foldDivMod implements Divide/Mod: f computes the floored result when b
// != 0. Divide/Mod by zero is a silent no-op that restores both popped
// operands untouched (spec.md 4.6, 7).
func (ip *Interpreter) foldDivMod(f func(a, b int64) int64) {
	if ip.stk.Len() < 2 {
		return
	}
	b, _ := ip.stk.Pop()
	a, _ := ip.stk.Pop()
	if b == 0 {
		ip.stk.Push(a)
		ip.stk.Push(b)
		return
	}
	ip.stk.Push(f(a, b))
}

// floorDiv is integer division truncated toward negative infinity
// (spec.md 4.6), unlike Go's native truncate-toward-zero "/".
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the floored modulo matching the divisor's sign.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// Run steps the interpreter to normal termination. maxSteps <= 0 means
// unbounded; a positive maxSteps enforces the cancellation contract of
// spec.md 5: once reached without termination, Run returns
// perrors.ErrStepLimitExceeded without mutating further state.
func (ip *Interpreter) Run(maxSteps int) error {
	for steps := 0; ; steps++ {
		if maxSteps > 0 && steps >= maxSteps {
			return perrors.ErrStepLimitExceeded
		}
		if ip.Step() {
			return nil
		}
	}
}
