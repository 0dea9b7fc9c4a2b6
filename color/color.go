/*
 * Piet - Color model: hue, lightness and the 20-color Piet palette.
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

// Package color implements Piet's color model: the six hues, three
// lightness levels, the resulting 18 composite colors plus black and
// white, and the hue/lightness shift arithmetic that drives command
// lookup.
package color

import "fmt"

// Hue is one of the six chromatic values a Piet codel can carry.
type Hue uint8

const (
	Red Hue = iota
	Yellow
	Green
	Cyan
	Blue
	Magenta

	numHues = 6
)

func (h Hue) String() string {
	names := [numHues]string{"Red", "Yellow", "Green", "Cyan", "Blue", "Magenta"}
	if int(h) >= len(names) {
		return fmt.Sprintf("Hue(%d)", uint8(h))
	}
	return names[h]
}

// HueShift returns (to - from) mod 6, per spec.md 4.1.
func HueShift(from, to Hue) uint8 {
	return uint8(mod(int(to)-int(from), int(numHues)))
}

// Lightness is one of the three shades a Piet codel can carry.
type Lightness uint8

const (
	Light Lightness = iota
	Normal
	Dark

	numLightness = 3
)

func (l Lightness) String() string {
	names := [numLightness]string{"Light", "Normal", "Dark"}
	if int(l) >= len(names) {
		return fmt.Sprintf("Lightness(%d)", uint8(l))
	}
	return names[l]
}

// LightnessShift returns (to - from) mod 3, per spec.md 4.1.
func LightnessShift(from, to Lightness) uint8 {
	return uint8(mod(int(to)-int(from), int(numLightness)))
}

// mod is floored modulo, matching the divisor's sign (Go's % truncates
// toward zero, which gives a negative result for a negative dividend).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Kind distinguishes a Color's three possible shapes.
type Kind uint8

const (
	Composite Kind = iota
	Black
	White
)

// Color is a tagged value: a composite (Hue, Lightness) pair, or one of
// the two achromatic codel colors. Black and White carry zero Hue/
// Lightness; callers must switch on Kind before reading Hue/Lightness.
type Color struct {
	Kind
	Hue
	Lightness
}

// NewComposite builds a composite color from a hue and lightness.
func NewComposite(h Hue, l Lightness) Color {
	return Color{Kind: Composite, Hue: h, Lightness: l}
}

// ColorBlack and ColorWhite are the two achromatic colors.
var (
	ColorBlack = Color{Kind: Black}
	ColorWhite = Color{Kind: White}
)

func (c Color) String() string {
	switch c.Kind {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("%s-%s", c.Lightness, c.Hue)
	}
}

// rgbTable is the canonical Piet palette: 18 composite triplets, plus
// pure white and pure black. Ported from original_source/src/color.rs.
var rgbTable = map[uint32]Color{
	0xffc0c0: NewComposite(Red, Light),
	0xffffc0: NewComposite(Yellow, Light),
	0xc0ffc0: NewComposite(Green, Light),
	0xc0ffff: NewComposite(Cyan, Light),
	0xc0c0ff: NewComposite(Blue, Light),
	0xffc0ff: NewComposite(Magenta, Light),

	0xff0000: NewComposite(Red, Normal),
	0xffff00: NewComposite(Yellow, Normal),
	0x00ff00: NewComposite(Green, Normal),
	0x00ffff: NewComposite(Cyan, Normal),
	0x0000ff: NewComposite(Blue, Normal),
	0xff00ff: NewComposite(Magenta, Normal),

	0xc00000: NewComposite(Red, Dark),
	0xc0c000: NewComposite(Yellow, Dark),
	0x00c000: NewComposite(Green, Dark),
	0x00c0c0: NewComposite(Cyan, Dark),
	0x0000c0: NewComposite(Blue, Dark),
	0xc000c0: NewComposite(Magenta, Dark),

	0xffffff: ColorWhite,
	0x000000: ColorBlack,
}

// FromRGB maps an 8-bit RGB triplet to a Color using the canonical Piet
// palette. Any value outside the 20-entry table is implementation
// defined; per spec.md 4.1 this implementation treats it as White so
// that unrecognized codels never execute a command.
func FromRGB(r, g, b uint8) Color {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if c, ok := rgbTable[key]; ok {
		return c
	}
	return ColorWhite
}

// Transition computes the (hue shift, lightness shift) pair encoding the
// command implied by moving from one composite color to another. It is
// defined only when both colors are composite; Black or White on either
// side yields ok=false (spec.md 4.1, 4.5, testable property 3).
func Transition(from, to Color) (hueShift, lightnessShift uint8, ok bool) {
	if from.Kind != Composite || to.Kind != Composite {
		return 0, 0, false
	}
	return HueShift(from.Hue, to.Hue), LightnessShift(from.Lightness, to.Lightness), true
}
