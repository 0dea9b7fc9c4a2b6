/*
 * Piet - Image decoder: turns a PNG/GIF/BMP source into a Program,
 * downsampling by codel size and mapping RGB through the canonical
 * Piet palette.
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

// Package decode implements the external decoder collaborator of
// spec.md 6: it reads a PNG/GIF/BMP file, downsamples by codel size (one
// representative pixel per NxN block), and maps each sampled pixel
// through color.FromRGB into a program.Program.
package decode

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/rcornwell/piet/color"
	"github.com/rcornwell/piet/perrors"
	"github.com/rcornwell/piet/program"
)

// Load opens path, decodes it as PNG/GIF/BMP (registered via the blank
// imports above), and builds a Program by sampling one pixel per
// codelSize x codelSize block. codelSize < 1 is treated as 1 (no
// downsampling).
func Load(path string, codelSize int) (*program.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrDecode, err)
	}

	return fromImage(img, codelSize)
}

// fromImage performs the downsampling and palette mapping described in
// §6.b/c/d of spec.md: sample the top-left pixel of each codelSize x
// codelSize block, map it via color.FromRGB.
func fromImage(img image.Image, codelSize int) (*program.Program, error) {
	if codelSize < 1 {
		codelSize = 1
	}

	bounds := img.Bounds()
	pxWidth := bounds.Dx()
	pxHeight := bounds.Dy()

	width := mapDim(pxWidth, codelSize)
	height := mapDim(pxHeight, codelSize)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: zero-size image", perrors.ErrMalformedImage)
	}

	grid := make([]color.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := bounds.Min.X + x*codelSize
			py := bounds.Min.Y + y*codelSize
			r, g, b, _ := img.At(px, py).RGBA()
			// image.Color.RGBA returns 16-bit-per-channel premultiplied
			// values; Piet palette colors are opaque, so the high byte
			// of each 16-bit channel is the 8-bit component.
			grid[y*width+x] = color.FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return program.New(width, height, grid)
}

// mapDim divides a pixel dimension by the codel size, rounding up so a
// trailing partial block still contributes one codel (mirrors the
// original's util.map_pair integer-division-based dimension scaling).
func mapDim(pixels, codelSize int) int {
	return (pixels + codelSize - 1) / codelSize
}
