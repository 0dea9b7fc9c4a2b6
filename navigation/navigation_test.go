/*
 * Piet - Navigation tests.
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

import (
	"testing"

	"github.com/rcornwell/piet/program"
)

func rect(x0, y0, x1, y1 int) map[program.Coord]struct{} {
	block := make(map[program.Coord]struct{})
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			block[program.Coord{X: x, Y: y}] = struct{}{}
		}
	}
	return block
}

func TestRotate(t *testing.T) {
	if Right.RotateClockwise() != Down {
		t.Error("Right rotated clockwise should be Down")
	}
	if Up.RotateClockwise() != Right {
		t.Error("Up rotated clockwise should be Right")
	}
	if Right.RotateCounterClockwise() != Up {
		t.Error("Right rotated counter-clockwise should be Up")
	}
}

func TestExitCodel(t *testing.T) {
	block := rect(0, 0, 2, 2) // 3x3 square

	tests := []struct {
		dp   DP
		cc   CC
		want program.Coord
	}{
		{Right, CCLeft, program.Coord{2, 2}},
		{Right, CCRight, program.Coord{2, 0}},
		{Down, CCLeft, program.Coord{0, 2}},
		{Down, CCRight, program.Coord{2, 2}},
		{Left, CCLeft, program.Coord{0, 0}},
		{Left, CCRight, program.Coord{0, 2}},
		{Up, CCLeft, program.Coord{2, 0}},
		{Up, CCRight, program.Coord{0, 0}},
	}

	for _, tt := range tests {
		if got := ExitCodel(block, tt.dp, tt.cc); got != tt.want {
			t.Errorf("ExitCodel(dp=%v,cc=%v) = %v, want %v", tt.dp, tt.cc, got, tt.want)
		}
	}
}

func TestTarget(t *testing.T) {
	if got := Target(program.Coord{2, 2}, Right); got != (program.Coord{3, 2}) {
		t.Errorf("Target(Right) = %v, want (3,2)", got)
	}
	if got := Target(program.Coord{2, 2}, Up); got != (program.Coord{2, 1}) {
		t.Errorf("Target(Up) = %v, want (2,1)", got)
	}
}

// TestRetryStateEightAttempts verifies testable property 6: an
// empty-move program terminates in exactly 8 retries.
func TestRetryStateEightAttempts(t *testing.T) {
	var r RetryState
	dp, cc := Right, CCLeft
	for i := 1; i <= 7; i++ {
		var exhausted bool
		dp, cc, exhausted = r.Next(dp, cc)
		if exhausted {
			t.Fatalf("exhausted too early, at attempt %d", i)
		}
	}
	_, _, exhausted := r.Next(dp, cc)
	if !exhausted {
		t.Fatal("should be exhausted after 8 attempts")
	}
}

func TestRetryStateAlternates(t *testing.T) {
	var r RetryState
	dp, cc := Right, CCLeft

	ndp, ncc, _ := r.Next(dp, cc)
	if ncc != CCRight || ndp != Right {
		t.Errorf("attempt 1 should toggle CC only, got dp=%v cc=%v", ndp, ncc)
	}

	ndp2, ncc2, _ := r.Next(ndp, ncc)
	if ndp2 != Down || ncc2 != CCRight {
		t.Errorf("attempt 2 should rotate DP only, got dp=%v cc=%v", ndp2, ncc2)
	}
}
