/*
 * Piet - Decoder tests: downsampling and palette mapping.
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

package decode

import (
	"image"
	imgcolor "image/color"
	"testing"

	pietcolor "github.com/rcornwell/piet/color"
	"github.com/rcornwell/piet/program"
)

func TestFromImageDownsamples(t *testing.T) {
	// A 4x2 pixel image with codelSize=2 should yield a 2x1 codel grid:
	// left half red, right half white.
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	red := imgcolor.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}
	white := imgcolor.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, white)
			}
		}
	}

	prog, err := fromImage(img, 2)
	if err != nil {
		t.Fatalf("fromImage: %v", err)
	}
	if prog.Width() != 2 || prog.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 2x1", prog.Width(), prog.Height())
	}

	c0, _ := prog.Get(program.Coord{X: 0, Y: 0})
	c1, _ := prog.Get(program.Coord{X: 1, Y: 0})
	if c0.Kind != pietcolor.Composite || c0.Hue != pietcolor.Red || c0.Lightness != pietcolor.Normal {
		t.Errorf("codel (0,0) = %v, want Red/Normal", c0)
	}
	if c1.Kind != pietcolor.White {
		t.Errorf("codel (1,0) = %v, want White", c1)
	}
}

func TestFromImageZeroSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := fromImage(img, 1); err == nil {
		t.Fatal("expected error for zero-size image")
	}
}

func TestMapDim(t *testing.T) {
	cases := []struct{ px, codel, want int }{
		{10, 2, 5},
		{10, 3, 4},
		{1, 1, 1},
	}
	for _, c := range cases {
		if got := mapDim(c.px, c.codel); got != c.want {
			t.Errorf("mapDim(%d,%d) = %d, want %d", c.px, c.codel, got, c.want)
		}
	}
}
