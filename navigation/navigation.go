/*
 * Piet - Navigation: the direction pointer, codel chooser, exit-codel
 * selection and the bounded wall/black-codel retry protocol.
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

package navigation

import "github.com/rcornwell/piet/program"

// DP is the direction pointer: the compass direction of travel.
type DP uint8

const (
	Right DP = iota
	Down
	Left
	Up

	numDirections = 4
)

func (d DP) String() string {
	names := [numDirections]string{"Right", "Down", "Left", "Up"}
	return names[d]
}

// RotateClockwise advances the DP by one step (Right -> Down -> Left ->
// Up -> Right).
func (d DP) RotateClockwise() DP {
	return (d + 1) % numDirections
}

// RotateCounterClockwise retreats the DP by one step.
func (d DP) RotateCounterClockwise() DP {
	return (d + numDirections - 1) % numDirections
}

// Delta returns the (dx, dy) unit step for this direction.
func (d DP) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}

// CC is the codel chooser, a tiebreaker for exit-codel selection.
type CC uint8

const (
	CCLeft CC = iota
	CCRight
)

func (c CC) String() string {
	if c == CCLeft {
		return "Left"
	}
	return "Right"
}

// Toggle flips the codel chooser.
func (c CC) Toggle() CC {
	if c == CCLeft {
		return CCRight
	}
	return CCLeft
}

// ExitCodel selects the exit codel of block under (dp, cc), per spec.md
// 4.5: first the edge farthest in the DP direction, then within that
// edge the codel farthest to the CC side.
func ExitCodel(block map[program.Coord]struct{}, dp DP, cc CC) program.Coord {
	switch dp {
	case Right:
		edge := filterExtreme(block, func(c program.Coord) int { return c.X }, true)
		return extreme(edge, func(c program.Coord) int { return c.Y }, cc == CCLeft)
	case Left:
		edge := filterExtreme(block, func(c program.Coord) int { return c.X }, false)
		return extreme(edge, func(c program.Coord) int { return c.Y }, cc == CCRight)
	case Down:
		edge := filterExtreme(block, func(c program.Coord) int { return c.Y }, true)
		return extreme(edge, func(c program.Coord) int { return c.X }, cc == CCRight)
	case Up:
		edge := filterExtreme(block, func(c program.Coord) int { return c.Y }, false)
		return extreme(edge, func(c program.Coord) int { return c.X }, cc == CCLeft)
	default:
		panic("navigation: invalid DP")
	}
}

// filterExtreme returns every coordinate achieving the maximum (wantMax)
// or minimum key value within block.
func filterExtreme(block map[program.Coord]struct{}, key func(program.Coord) int, wantMax bool) []program.Coord {
	best := 0
	first := true
	for c := range block {
		k := key(c)
		if first || (wantMax && k > best) || (!wantMax && k < best) {
			best = k
			first = false
		}
	}

	var out []program.Coord
	for c := range block {
		if key(c) == best {
			out = append(out, c)
		}
	}
	return out
}

// extreme returns the single coordinate in coords with the maximum
// (wantMax) or minimum key value.
func extreme(coords []program.Coord, key func(program.Coord) int, wantMax bool) program.Coord {
	best := coords[0]
	bestKey := key(best)
	for _, c := range coords[1:] {
		k := key(c)
		if (wantMax && k > bestKey) || (!wantMax && k < bestKey) {
			best = c
			bestKey = k
		}
	}
	return best
}

// Target returns the neighbor of exit in direction dp.
func Target(exit program.Coord, dp DP) program.Coord {
	dx, dy := dp.Delta()
	return program.Coord{X: exit.X + dx, Y: exit.Y + dy}
}

// RetryState tracks the alternating CC-toggle/DP-rotate protocol used
// when a move is blocked by an edge or a black codel (spec.md 4.5). Per
// the spec, attempt 1 toggles CC, attempt 2 rotates DP, and so on; after
// MaxAttempts consecutive blocked attempts without a successful move,
// the interpreter terminates normally.
type RetryState struct {
	attempts int
}

// MaxAttempts is the number of blocked attempts tolerated before normal
// termination (spec.md 4.5, 8: "deterministic termination").
const MaxAttempts = 8

// Next applies one retry step to (dp, cc) and reports whether the retry
// budget is exhausted.
func (r *RetryState) Next(dp DP, cc CC) (newDP DP, newCC CC, exhausted bool) {
	if r.attempts%2 == 0 {
		cc = cc.Toggle()
	} else {
		dp = dp.RotateClockwise()
	}
	r.attempts++
	return dp, cc, r.attempts >= MaxAttempts
}

// Reset clears the blocked-attempt counter after a successful move.
func (r *RetryState) Reset() {
	r.attempts = 0
}
