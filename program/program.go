/*
 * Piet - Program grid: the immutable codel array and color-block
 * (connected-component) discovery.
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

// Package program owns the decoded Piet image: a flat, row-major grid of
// colors plus the flood-fill that discovers a codel's maximal same-color
// block. The grid is immutable once constructed (spec.md 3: "the Program
// is referenced by the Interpreter for the lifetime of execution, not
// mutated").
package program

import (
	"fmt"

	"github.com/rcornwell/piet/color"
)

// Coord is an (x, y) codel coordinate; (0,0) is the top-left.
type Coord struct {
	X, Y int
}

// Program is an immutable width x height grid of colors.
type Program struct {
	width, height int
	grid          []color.Color
}

// New builds a Program from a row-major color slice. It returns an error
// if the dimensions are zero or the slice length does not match
// width*height (spec.md 3 invariant).
func New(width, height int, grid []color.Color) (*Program, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("program: non-positive dimensions %dx%d", width, height)
	}
	if len(grid) != width*height {
		return nil, fmt.Errorf("program: grid length %d does not match %dx%d", len(grid), width, height)
	}
	return &Program{width: width, height: height, grid: grid}, nil
}

// Width and Height report the grid dimensions.
func (p *Program) Width() int  { return p.width }
func (p *Program) Height() int { return p.height }

// InBounds reports whether c falls inside the grid.
func (p *Program) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < p.width && c.Y >= 0 && c.Y < p.height
}

// Get returns the color at c and whether c is in bounds.
func (p *Program) Get(c Coord) (color.Color, bool) {
	if !p.InBounds(c) {
		return color.Color{}, false
	}
	return p.grid[c.Y*p.width+c.X], true
}

// neighbors returns the four orthogonal neighbors of c (4-connectivity).
func neighbors(c Coord) [4]Coord {
	return [4]Coord{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// ColorBlock returns the maximal 4-connected set of codels sharing c's
// color, as a coordinate -> present set. The search is an explicit-queue
// BFS rather than recursion, per spec.md 4.3/9: a solid-color image can
// be larger than the host call stack.
func (p *Program) ColorBlock(start Coord) map[Coord]struct{} {
	block := make(map[Coord]struct{})
	target, ok := p.Get(start)
	if !ok {
		return block
	}

	queue := []Coord{start}
	block[start] = struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range neighbors(cur) {
			if _, seen := block[n]; seen {
				continue
			}
			c, ok := p.Get(n)
			if !ok || c != target {
				continue
			}
			block[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return block
}

// BlockSize is a convenience wrapper returning len(ColorBlock(c)), the
// value the Push command pushes for the exited block (spec.md 4.6). The
// interpreter takes that count from the block it has already computed.
func (p *Program) BlockSize(c Coord) int {
	return len(p.ColorBlock(c))
}
