/*
 * Piet - Program grid tests.
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

package program

import (
	"testing"

	"github.com/rcornwell/piet/color"
)

func TestNewValidatesDimensions(t *testing.T) {
	if _, err := New(0, 3, nil); err == nil {
		t.Error("New with zero width should error")
	}
	if _, err := New(3, 0, nil); err == nil {
		t.Error("New with zero height should error")
	}
	if _, err := New(2, 2, make([]color.Color, 3)); err == nil {
		t.Error("New with mismatched grid length should error")
	}
	if _, err := New(2, 2, make([]color.Color, 4)); err != nil {
		t.Errorf("New with matching dimensions should not error: %v", err)
	}
}

func TestGetBounds(t *testing.T) {
	p, err := New(3, 2, make([]color.Color, 6))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Get(Coord{0, 0}); !ok {
		t.Error("Get(0,0) should be in bounds")
	}
	if _, ok := p.Get(Coord{2, 1}); !ok {
		t.Error("Get(2,1) should be in bounds")
	}
	if _, ok := p.Get(Coord{3, 0}); ok {
		t.Error("Get(3,0) should be out of bounds")
	}
	if _, ok := p.Get(Coord{0, -1}); ok {
		t.Error("Get(0,-1) should be out of bounds")
	}
}

func solidWithHole(w, h int, hole Coord) *Program {
	grid := make([]color.Color, w*h)
	for i := range grid {
		grid[i] = color.ColorWhite
	}
	grid[hole.Y*w+hole.X] = color.ColorBlack
	p, err := New(w, h, grid)
	if err != nil {
		panic(err)
	}
	return p
}

// TestColorBlockSingleton mirrors original_source/src/program.rs's
// test_program_color_block: a single off-color codel surrounded by
// another color is its own block of size one.
func TestColorBlockSingleton(t *testing.T) {
	p := solidWithHole(5, 5, Coord{2, 2})
	block := p.ColorBlock(Coord{2, 2})
	if len(block) != 1 {
		t.Fatalf("ColorBlock size = %d, want 1", len(block))
	}
	if _, ok := block[Coord{2, 2}]; !ok {
		t.Error("ColorBlock should contain the starting coordinate")
	}
}

func TestColorBlockClosureAndConnectivity(t *testing.T) {
	// Testable property 4: closure, same color, 4-connected.
	grid := []color.Color{
		color.ColorWhite, color.ColorWhite, color.ColorBlack,
		color.ColorWhite, color.ColorWhite, color.ColorBlack,
		color.ColorBlack, color.ColorBlack, color.ColorBlack,
	}
	p, err := New(3, 3, grid)
	if err != nil {
		t.Fatal(err)
	}

	block := p.ColorBlock(Coord{0, 0})
	if len(block) != 4 {
		t.Fatalf("ColorBlock(0,0) size = %d, want 4", len(block))
	}

	for q := range block {
		c, _ := p.Get(q)
		if c != color.ColorWhite {
			t.Errorf("member %v has color %v, want White", q, c)
		}
		blockQ := p.ColorBlock(q)
		if len(blockQ) != len(block) {
			t.Errorf("ColorBlock(%v) size %d != ColorBlock(start) size %d", q, len(blockQ), len(block))
		}
	}

	if _, ok := block[Coord{2, 0}]; ok {
		t.Error("block should not include the black codel at (2,0)")
	}
}

func TestBlockSizeOnLargeSolidGrid(t *testing.T) {
	// Guards against recursion-depth failures on large uniform blocks
	// (spec.md 9): 200x200 solid color must flood-fill without a stack
	// overflow.
	const side = 200
	grid := make([]color.Color, side*side)
	for i := range grid {
		grid[i] = color.NewComposite(color.Red, color.Normal)
	}
	p, err := New(side, side, grid)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.BlockSize(Coord{0, 0}); got != side*side {
		t.Fatalf("BlockSize = %d, want %d", got, side*side)
	}
}
